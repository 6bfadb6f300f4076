package trajwriter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReferenceRing_PushAndAt(t *testing.T) {
	r := newReferenceRing(0)
	for i := 0; i < 5; i++ {
		r.push(i)
	}
	require.Equal(t, 5, r.len())
	require.Equal(t, 4, r.at(-1))
	require.Equal(t, 0, r.at(-5))
}

func TestReferenceRing_TrimKeepsLogicalLength(t *testing.T) {
	r := newReferenceRing(2)
	for i := 0; i < 5; i++ {
		r.push(i)
	}
	require.Equal(t, 5, r.len(), "len counts every push regardless of trimming")
	require.Equal(t, 4, r.at(-1))
	require.Equal(t, 3, r.at(-2))
}

func TestReferenceRing_Clear(t *testing.T) {
	r := newReferenceRing(0)
	r.push(1)
	r.push(2)
	r.clear()
	require.Equal(t, 0, r.len())
}

func TestRingSet_LazyPerColumn(t *testing.T) {
	s := newRingSet(map[SourceColumn]int{0: 2, 1: 3})
	require.Equal(t, 0, s.len(0))

	s.push(0, "a")
	s.push(1, "b")
	require.Equal(t, 1, s.len(0))
	require.Equal(t, 1, s.len(1))
	require.Equal(t, "a", s.at(0, -1))

	s.clearAll()
	require.Equal(t, 0, s.len(0))
	require.Equal(t, 0, s.len(1))
}
