package chainmap

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/xxh3"
)

func TestMakeDefaultHashFunc(t *testing.T) {
	hash := MakeDefaultHashFunc[string]()

	// Deterministic for the lifetime of the function.
	require.Equal(t, hash("foo"), hash("foo"))
	require.Equal(t, hash(""), hash(""))
}

func TestMakeDefaultEqualFunc(t *testing.T) {
	equal := MakeDefaultEqualFunc[int]()

	assert.True(t, equal(42, 42))
	assert.False(t, equal(42, 43))
}

func TestHashFuncs(t *testing.T) {
	const key = "the quick brown fox"

	tests := []struct {
		name string
		got  uint64
		want uint64
	}{
		{"XXHashString", XXHashString()(key), xxhash.Sum64String(key)},
		{"XXHashBytes", XXHashBytes()([]byte(key)), xxhash.Sum64([]byte(key))},
		{"XXH3String", XXH3String()(key), xxh3.HashString(key)},
		{"XXH3Bytes", XXH3Bytes()([]byte(key)), xxh3.Hash([]byte(key))},
		{"Murmur3String", Murmur3String()(key), murmur3.Sum64([]byte(key))},
		{"Murmur3Bytes", Murmur3Bytes()([]byte(key)), murmur3.Sum64([]byte(key))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.got)
		})
	}
}

func TestHashFuncs_WithMap(t *testing.T) {
	hashes := map[string]HashFunc[string]{
		"xxhash":  XXHashString(),
		"xxh3":    XXH3String(),
		"murmur3": Murmur3String(),
	}

	for name, hash := range hashes {
		t.Run(name, func(t *testing.T) {
			cm, err := New[string, int](16, hash, MakeDefaultEqualFunc[string]())
			require.NoError(t, err)

			require.NoError(t, cm.Set("foo", 1))
			require.NoError(t, cm.Set("bar", 2))

			v, ok := cm.Get("foo")
			require.True(t, ok)
			assert.Equal(t, 1, v)

			v, ok = cm.Get("bar")
			require.True(t, ok)
			assert.Equal(t, 2, v)
		})
	}
}
