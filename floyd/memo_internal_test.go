package floyd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apsp/matrix"
)

func TestDenseMemo_GetPut(t *testing.T) {
	m, err := newDenseMemo(3)
	require.NoError(t, err)

	_, ok := m.get(1, 2, 0)
	assert.False(t, ok, "empty table must miss")

	m.put(1, 2, 0, 7)
	m.put(2, 1, 0, matrix.Inf)
	m.put(1, 2, 2, -4)
	m.put(1, 2, 0, 7) // overwrite keeps the count
	assert.Equal(t, 3, m.size())

	d, ok := m.get(1, 2, 0)
	require.True(t, ok)
	assert.Equal(t, matrix.Distance(7), d)

	d, ok = m.get(2, 1, 0)
	require.True(t, ok)
	assert.True(t, d.IsInf(), "cached Inf is a hit, not a miss")

	_, ok = m.get(1, 2, 1)
	assert.False(t, ok, "planes are independent")
}

func TestDenseMemo_TooLarge(t *testing.T) {
	_, err := newDenseMemo(1 << 22)
	assert.ErrorIs(t, err, ErrGraphTooLarge)

	m, err := newDenseMemo(0)
	require.NoError(t, err)
	assert.Zero(t, m.size())
}

func TestBoundedMemo_Evicts(t *testing.T) {
	m, err := newBoundedMemo(2)
	require.NoError(t, err)

	m.put(0, 0, 0, 1)
	m.put(0, 1, 0, 2)
	_, _ = m.get(0, 0, 0) // refresh (0,0,0)
	m.put(1, 1, 0, 3)     // evicts (0,1,0)

	assert.Equal(t, 2, m.size())
	_, ok := m.get(0, 1, 0)
	assert.False(t, ok)
	d, ok := m.get(0, 0, 0)
	require.True(t, ok)
	assert.Equal(t, matrix.Distance(1), d)
}

func TestNewMemo_SelectsMode(t *testing.T) {
	o := DefaultOptions()

	tbl, err := newMemo(o, 2)
	require.NoError(t, err)
	assert.IsType(t, &denseMemo{}, tbl)

	o.Memo = MemoBounded
	tbl, err = newMemo(o, 2)
	require.NoError(t, err)
	assert.IsType(t, &boundedMemo{}, tbl)

	o.Memo = MemoNone
	tbl, err = newMemo(o, 2)
	require.NoError(t, err)
	tbl.put(0, 0, 0, 5)
	_, ok := tbl.get(0, 0, 0)
	assert.False(t, ok)

	o.Memo = MemoMode(9)
	_, err = newMemo(o, 2)
	assert.ErrorIs(t, err, ErrUnknownMemoMode)

	_, err = newBoundedMemo(0)
	assert.Error(t, err)
}
