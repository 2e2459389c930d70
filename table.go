package chainmap

import "log/slog"

type table[K, V any] struct {
	buckets []*entry[K, V]
	size    int

	hashFunc  HashFunc[K]
	equalFunc EqualFunc[K]
	cbs       Callbacks[K, V]

	logger *slog.Logger
	closed bool

	emptyV V
}

type Option[K, V any] func(t *table[K, V])

// Install an ownership policy. Missing hooks inside the policy fall back
// to passthrough individually, see Callbacks.
func WithCallbacks[K, V any](cbs Callbacks[K, V]) Option[K, V] {
	return func(t *table[K, V]) {
		t.cbs = cbs
	}
}

// Override the logger consulted on invalid-usage paths.
// By default everything is discarded.
func WithLogger[K, V any](logger *slog.Logger) Option[K, V] {
	return func(t *table[K, V]) {
		t.logger = logger
	}
}

func (t *table[K, V]) init(capacity int, hashFunc HashFunc[K], equalFunc EqualFunc[K], opts ...Option[K, V]) error {
	t.hashFunc = hashFunc
	t.equalFunc = equalFunc
	t.logger = slog.New(slog.DiscardHandler)

	for _, opt := range opts {
		opt(t)
	}

	t.cbs = t.cbs.normalized()

	if capacity < 1 {
		return ErrZeroCapacity
	}
	if t.hashFunc == nil {
		return ErrNilHashFunc
	}
	if t.equalFunc == nil {
		return ErrNilEqualFunc
	}

	t.buckets = make([]*entry[K, V], capacity)

	return nil
}

// The bucket index for a key is always hash(key) mod capacity.
// Capacity is exact, not rounded to a power of two, so this is a real modulo.
func (t *table[K, V]) bucketIndex(key K) uint64 {
	return t.hashFunc(key) % uint64(len(t.buckets))
}

func (t *table[K, V]) get(key K) (V, bool) {
	for e := t.buckets[t.bucketIndex(key)]; e != nil; e = e.next {
		if t.equalFunc(e.key, key) {
			return e.value, true
		}
	}

	return t.emptyV, false
}

// Stores a value for a key. Returns whether the key is new.
func (t *table[K, V]) set(key K, value V) bool {
	idx := t.bucketIndex(key)

	var prev *entry[K, V]
	for e := t.buckets[idx]; e != nil; e = e.next {
		if t.equalFunc(e.key, key) {
			// The stored key is already equal, only the value changes.
			// The displaced value is released before being overwritten.
			t.cbs.FreeValue(e.value)
			e.value = t.cbs.CopyValue(value)

			return false
		}

		prev = e
	}

	node := &entry[K, V]{
		key:   t.cbs.CopyKey(key),
		value: t.cbs.CopyValue(value),
	}

	// Append at the tail to keep chain order stable.
	if prev == nil {
		t.buckets[idx] = node
	} else {
		prev.next = node
	}

	t.size++

	return true
}

func (t *table[K, V]) delete(key K) bool {
	idx := t.bucketIndex(key)

	var prev *entry[K, V]
	for e := t.buckets[idx]; e != nil; e = e.next {
		if !t.equalFunc(e.key, key) {
			prev = e
			continue
		}

		// Unlink: either a new bucket head or a shortcut over the node.
		if prev == nil {
			t.buckets[idx] = e.next
		} else {
			prev.next = e.next
		}

		t.cbs.FreeKey(e.key)
		t.cbs.FreeValue(e.value)
		t.size--

		return true
	}

	return false
}

// Releases every entry in every bucket, invoking the free hooks once per
// key and once per value, and leaves all buckets empty.
func (t *table[K, V]) releaseAll() {
	for i, head := range t.buckets {
		for e := head; e != nil; e = e.next {
			t.cbs.FreeKey(e.key)
			t.cbs.FreeValue(e.value)
		}

		t.buckets[i] = nil
	}

	t.size = 0
}

// Visits every entry exactly once, in no particular order.
// Stops early if fn returns false.
func (t *table[K, V]) rangeEntries(fn func(key K, value V) bool) {
	for _, head := range t.buckets {
		for e := head; e != nil; e = e.next {
			if !fn(e.key, e.value) {
				return
			}
		}
	}
}

func (t *table[K, V]) stats() Stats {
	s := Stats{
		Size:    t.size,
		Buckets: len(t.buckets),
	}

	for _, head := range t.buckets {
		n := 0
		for e := head; e != nil; e = e.next {
			n++
		}

		if n > s.MaxChain {
			s.MaxChain = n
		}
	}

	s.LoadFactor = float32(t.size) / float32(len(t.buckets))

	return s
}
