package chainmap

// entry is a single node of a bucket chain: one key, one value and a link
// to the next node sharing the bucket index. Chains are singly linked and
// grow at the tail, so an older key is always visited before a newer
// colliding one.
type entry[K, V any] struct {
	key   K
	value V
	next  *entry[K, V]
}
