package trajwriter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func ringOf(values ...CellRef) *referenceRing {
	r := newReferenceRing(0)
	for _, v := range values {
		r.push(v)
	}
	return r
}

func TestSliceColumn_SqueezeNewest(t *testing.T) {
	r := ringOf(10, 11, 12, 13, 14)
	col := sliceColumn(r, NewFlatNodeStop(0, -1))
	require.True(t, col.Squeezed)
	require.Equal(t, []CellRef{14}, col.Refs)
}

func TestSliceColumn_SqueezeSecondNewest(t *testing.T) {
	r := ringOf(30, 31, 32, 33)
	col := sliceColumn(r, NewFlatNodeStop(2, -2))
	require.True(t, col.Squeezed)
	require.Equal(t, []CellRef{32}, col.Refs)
}

func TestSliceColumn_Window(t *testing.T) {
	r := ringOf(20, 21, 22, 23, 24)
	col := sliceColumn(r, NewFlatNodeStart(1, -2))
	require.False(t, col.Squeezed)
	require.Equal(t, []CellRef{23, 24}, col.Refs)
}

func TestSliceColumn_WindowWithStop(t *testing.T) {
	r := ringOf(30, 31, 32, 33)
	col := sliceColumn(r, NewFlatNode(2, -3, -1))
	require.False(t, col.Squeezed)
	require.Equal(t, []CellRef{31, 32}, col.Refs)
}

func TestSliceColumn_Strided(t *testing.T) {
	r := ringOf(20, 21, 22, 23)
	col := sliceColumn(r, NewFlatNodeStart(1, -4).WithStep(3))
	require.False(t, col.Squeezed)
	require.Equal(t, []CellRef{20, 23}, col.Refs)
}
