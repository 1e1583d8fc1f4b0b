package matrix_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/apsp/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense_Shapes(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDense(-1)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	empty, err := matrix.NewDense(0)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Order())
	assert.Equal(t, "", empty.String())

	d, err := matrix.NewDense(3)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Rows())
	assert.Equal(t, 3, d.Cols())
	want := [][]matrix.Distance{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	if diff := cmp.Diff(want, cells(t, d)); diff != "" {
		t.Errorf("NewDense(3): mismatch (-want +got):\n%s", diff)
	}
}

func TestNewGraph_DiagonalZeroOffDiagonalInf(t *testing.T) {
	t.Parallel()

	g := MustGraph(t, 3)
	want := [][]matrix.Distance{
		{0, inf, inf},
		{inf, 0, inf},
		{inf, inf, 0},
	}
	if diff := cmp.Diff(want, cells(t, g)); diff != "" {
		t.Errorf("NewGraph(3): mismatch (-want +got):\n%s", diff)
	}
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	g := MustGraph(t, 2)
	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := g.At(ij[0], ij[1])
		assert.ErrorIs(t, err, matrix.ErrOutOfRange, "At%v", ij)
		assert.ErrorIs(t, g.Set(ij[0], ij[1], 1), matrix.ErrOutOfRange, "Set%v", ij)
	}

	MustSet(t, g, 0, 1, 7)
	v, err := g.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, matrix.Distance(7), v)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	g := MustGraph(t, 2)
	MustSet(t, g, 0, 1, 4)
	cp := g.Clone()
	require.True(t, g.Equal(cp))

	MustSet(t, cp, 0, 1, 9)
	assert.False(t, g.Equal(cp))
	v, _ := g.At(0, 1)
	assert.Equal(t, matrix.Distance(4), v)
}

func TestDense_Equal(t *testing.T) {
	t.Parallel()

	var a, b *matrix.Dense
	assert.True(t, a.Equal(b))
	assert.False(t, MustGraph(t, 1).Equal(nil))
	assert.False(t, MustGraph(t, 1).Equal(MustGraph(t, 2)))
	assert.True(t, MustGraph(t, 2).Equal(MustGraph(t, 2)))
}

func TestDense_ToRowsAndString(t *testing.T) {
	t.Parallel()

	g := MustGraph(t, 2)
	MustSet(t, g, 1, 0, -3)

	got := g.ToRows(-1)
	want := [][]int64{{0, -1}, {-3, 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToRows(-1): mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "[0, Inf]\n[-3, 0]\n", g.String())
}

func TestValidators(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	g := MustGraph(t, 3)
	require.NoError(t, matrix.ValidateNotNil(g))
	require.NoError(t, matrix.ValidateVertex(g, 0))
	require.NoError(t, matrix.ValidateVertex(g, 2))
	require.ErrorIs(t, matrix.ValidateVertex(g, 3), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidateVertex(g, -1), matrix.ErrOutOfRange)
}
