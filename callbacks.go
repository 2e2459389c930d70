package chainmap

// Callbacks is the ownership policy for stored keys and values.
//
// Copy hooks run when data enters the map (Set), free hooks run when data
// leaves it (value replacement, Delete, Reset, Close). A nil hook falls
// back to passthrough for that hook only: the data is stored as given and
// never released, and the caller must keep whatever it points to alive for
// as long as it is reachable from the map. A map created without
// WithCallbacks is full passthrough.
type Callbacks[K, V any] struct {
	CopyKey   func(K) K
	CopyValue func(V) V
	FreeKey   func(K)
	FreeValue func(V)
}

// Fills nil hooks with the passthrough defaults.
func (c Callbacks[K, V]) normalized() Callbacks[K, V] {
	if c.CopyKey == nil {
		c.CopyKey = func(k K) K { return k }
	}
	if c.CopyValue == nil {
		c.CopyValue = func(v V) V { return v }
	}
	if c.FreeKey == nil {
		c.FreeKey = func(K) {}
	}
	if c.FreeValue == nil {
		c.FreeValue = func(V) {}
	}

	return c
}
