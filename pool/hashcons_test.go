package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type tagged struct {
	key int
	tag string
}

func (t tagged) Hash() uint64        { return uint64(t.key) }
func (t tagged) Equal(o tagged) bool { return t.key == o.key }

func TestFindOrInsertInternsEqualValues(t *testing.T) {
	h := NewHashCons[tagged]()
	a, inserted := h.FindOrInsert(tagged{key: 1, tag: "first"})
	require.True(t, inserted)
	require.Equal(t, 1, h.Len())

	b, inserted := h.FindOrInsert(tagged{key: 1, tag: "second"})
	require.False(t, inserted)
	require.Equal(t, "first", b.tag) // canonical representative, not the new candidate
	require.Equal(t, a, b)
	require.Equal(t, 1, h.Len())
}

func TestRemoveThenReinsert(t *testing.T) {
	h := NewHashCons[tagged]()
	h.FindOrInsert(tagged{key: 7})
	require.True(t, h.Remove(tagged{key: 7}))
	require.Equal(t, 0, h.Len())
	require.False(t, h.Remove(tagged{key: 7}))

	_, inserted := h.FindOrInsert(tagged{key: 7, tag: "again"})
	require.True(t, inserted)
	require.Equal(t, 1, h.Len())
}

func TestGrowsPastLoadFactor(t *testing.T) {
	h := NewHashCons[tagged]()
	for i := 0; i < initialTableSize; i++ {
		h.FindOrInsert(tagged{key: i})
	}
	require.Greater(t, len(h.slots), initialTableSize)
	require.Equal(t, initialTableSize, h.Len())
}

func TestTombstoneReclaimedDuringProbe(t *testing.T) {
	h := NewHashCons[tagged]()
	// Two distinct keys mapping into the same bucket in a 16-slot table.
	h.FindOrInsert(tagged{key: 2})
	h.FindOrInsert(tagged{key: 18}) // collides with key 2 (18 % 16 == 2)
	require.True(t, h.Remove(tagged{key: 2}))

	_, inserted := h.FindOrInsert(tagged{key: 34}) // also collides; should reuse the tombstone
	require.True(t, inserted)
	require.Equal(t, 2, h.Len())
}
