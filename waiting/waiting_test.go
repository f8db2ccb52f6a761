package waiting

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFIFOOrdersAndSkipsInactive(t *testing.T) {
	f := NewFIFO[int]()
	f.Push(1)
	f.Push(2)
	f.Push(3)
	inactive := map[int]bool{2: true}
	v, ok := f.Pop(func(x int) bool { return !inactive[x] })
	require.True(t, ok)
	require.Equal(t, 1, v)
	v, ok = f.Pop(func(x int) bool { return !inactive[x] })
	require.True(t, ok)
	require.Equal(t, 3, v) // 2 was tombstoned and skipped
	require.True(t, f.Empty())
}

func TestLIFOOrdering(t *testing.T) {
	l := NewLIFO[int]()
	l.Push(1)
	l.Push(2)
	l.Push(3)
	v, ok := l.Pop(nil)
	require.True(t, ok)
	require.Equal(t, 3, v)
}

func TestPopOnEmptyReturnsFalse(t *testing.T) {
	f := NewFIFO[int]()
	_, ok := f.Pop(nil)
	require.False(t, ok)
}
