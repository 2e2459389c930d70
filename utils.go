package chainmap

import "unsafe"

// Estimates the number of entries that fit in the given memory size in
// bytes, counting one bucket-head pointer per entry on top of the entry
// itself. Useful for sizing the capacity of a map meant to stay around one
// entry per bucket.
func EntriesForSize[K, V any](size uintptr) int {
	perEntry := unsafe.Sizeof(entry[K, V]{}) + unsafe.Sizeof(uintptr(0))

	return int(size / perEntry)
}
