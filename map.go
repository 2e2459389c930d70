package chainmap

// ChainMap is a map-like data structure resolving collisions with separate
// chaining: a fixed array of buckets, each the head of a singly linked chain
// of entries. The capacity is set at creation and never changes - bucket
// addressing is always hash(key) mod capacity, and entries never move once
// stored. Hashing and equality are supplied by the caller, so the key type
// is unconstrained; an optional ownership policy (see Callbacks) lets the
// map copy data on the way in and release it on the way out.
// Since chains never rehash, iteration is safe and Range is provided.
type ChainMap[K, V any] struct {
	table[K, V]
}

// Returns a new instance of the chain map.
// The hash and equality functions are required; capacity must be at least 1.
func New[K, V any](capacity int, hashFunc HashFunc[K], equalFunc EqualFunc[K], opts ...Option[K, V]) (*ChainMap[K, V], error) {
	var cm ChainMap[K, V]
	if err := cm.init(capacity, hashFunc, equalFunc, opts...); err != nil {
		return nil, err
	}

	return &cm, nil
}

// Returns the value stored for a key.
// The value is the live stored one, valid until the next Set, Delete or
// Close affecting its entry.
func (cm *ChainMap[K, V]) Get(key K) (V, bool) {
	if cm.closed {
		return cm.emptyV, false
	}

	return cm.get(key)
}

// Stores a value for a key. An equal key already in the map keeps its
// stored key and gets its value replaced in place; the replaced value is
// released through the ownership policy. After the call exactly one entry
// exists for the key.
func (cm *ChainMap[K, V]) Set(key K, value V) error {
	if cm.closed {
		cm.logger.Error("set on a closed map")
		return ErrClosed
	}

	cm.set(key, value)

	return nil
}

// Deletes a key from the map, releasing its key and value through the
// ownership policy. Returns false if the key is not present; the map is
// unchanged in that case.
func (cm *ChainMap[K, V]) Delete(key K) bool {
	if cm.closed {
		cm.logger.Error("delete on a closed map")
		return false
	}

	return cm.delete(key)
}

// Number of entries currently stored.
func (cm *ChainMap[K, V]) Len() int {
	return cm.size
}

// Range visits every entry exactly once, in no particular order, until fn
// returns false. Entries never move between buckets, so visiting is safe;
// mutating the map from within fn is not.
func (cm *ChainMap[K, V]) Range(fn func(key K, value V) bool) {
	if cm.closed {
		return
	}

	cm.rangeEntries(fn)
}

// Reset releases every entry through the ownership policy and empties all
// buckets. The map stays usable with the same capacity and callbacks.
func (cm *ChainMap[K, V]) Reset() {
	if cm.closed {
		return
	}

	cm.releaseAll()
}

// Close releases every entry through the ownership policy, drops the bucket
// array and marks the map closed. Further Set calls return ErrClosed,
// lookups report not-found.
func (cm *ChainMap[K, V]) Close() error {
	if cm.closed {
		return ErrClosed
	}

	cm.releaseAll()
	cm.buckets = nil
	cm.closed = true

	return nil
}

func (cm *ChainMap[K, V]) Stats() Stats {
	if cm.closed {
		return Stats{}
	}

	return cm.stats()
}
