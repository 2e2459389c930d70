package chainmap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// HashFunc must be a pure function of the key content. The map enforces no
// distribution quality, but a skewed hash degrades chain length.
type HashFunc[K any] func(K) uint64

// EqualFunc reports whether two keys are the same key.
type EqualFunc[K any] func(a, b K) bool

// Hash function for any comparable key, backed by the runtime hash.
// Seeded once, so it's deterministic for the lifetime of the map it serves.
func MakeDefaultHashFunc[K comparable]() HashFunc[K] {
	seed := maphash.MakeSeed()

	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// Equality for any comparable key, plain ==.
func MakeDefaultEqualFunc[K comparable]() EqualFunc[K] {
	return func(a, b K) bool {
		return a == b
	}
}

// xxHash64 for string keys.
func XXHashString() HashFunc[string] {
	return xxhash.Sum64String
}

// xxHash64 for byte-slice keys.
func XXHashBytes() HashFunc[[]byte] {
	return xxhash.Sum64
}

// XXH3 for string keys. Faster than xxHash64 on short keys.
func XXH3String() HashFunc[string] {
	return xxh3.HashString
}

// XXH3 for byte-slice keys.
func XXH3Bytes() HashFunc[[]byte] {
	return xxh3.Hash
}

// Murmur3 (x64, 64-bit half) for string keys.
func Murmur3String() HashFunc[string] {
	return func(s string) uint64 {
		return murmur3.Sum64([]byte(s))
	}
}

// Murmur3 (x64, 64-bit half) for byte-slice keys.
func Murmur3Bytes() HashFunc[[]byte] {
	return murmur3.Sum64
}
