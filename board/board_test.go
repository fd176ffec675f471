package board_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellref/board"
	"github.com/katalvlaran/cellref/cell"
)

// TestNew_Errors verifies that New rejects malformed shapes.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		sizes []int
		err   error
	}{
		{"NoAxes", nil, board.ErrAxisCount},
		{"FourAxes", []int{8, 8, 8, 8}, board.ErrAxisCount},
		{"ZeroSize", []int{8, 0}, board.ErrAxisSize},
		{"NegativeSize", []int{-1}, board.ErrAxisSize},
		{"OversizedAxis", []int{257}, board.ErrAxisSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := board.New(tc.sizes...)
			require.Truef(t, errors.Is(err, tc.err), "New(%v) error = %v; want %v", tc.sizes, err, tc.err)
		})
	}
}

// TestNew_Shape checks dimensions and cell counts across dimensionalities.
func TestNew_Shape(t *testing.T) {
	b, err := board.New(8, 8, 2)
	require.NoError(t, err)
	require.Equal(t, 3, b.Axes())
	require.Equal(t, 8, b.Size(0))
	require.Equal(t, 8, b.Size(1))
	require.Equal(t, 2, b.Size(2))
	require.Equal(t, 128, b.Cells())
	require.Panics(t, func() { b.Size(3) })

	line, err := board.New(256)
	require.NoError(t, err)
	require.Equal(t, 256, line.Cells())
}

// TestContains covers on-board, off-board, and wrong-dimension references.
func TestContains(t *testing.T) {
	b, err := board.New(8, 8)
	require.NoError(t, err)

	on := cell.MustParse("h8")  // (7,7), the far corner of an 8×8 board
	off := cell.MustParse("i8") // (8,7), one step past axis 0
	flat := cell.MustParse("a") // right value count for a 1-axis board only

	require.True(t, b.Contains(on))
	require.False(t, b.Contains(off))
	require.False(t, b.Contains(flat))
}

// TestIndexRefAt_Inverse walks every cell of a small 3-axis board and checks
// Index and RefAt invert each other with the expected row-major order.
func TestIndexRefAt_Inverse(t *testing.T) {
	b, err := board.New(4, 3, 2)
	require.NoError(t, err)
	require.Equal(t, 24, b.Cells())

	seen := make(map[int]bool, b.Cells())
	for idx := 0; idx < b.Cells(); idx++ {
		r, err := b.RefAt(idx)
		require.NoErrorf(t, err, "RefAt(%d)", idx)
		require.True(t, b.Contains(r))

		back, err := b.Index(r)
		require.NoErrorf(t, err, "Index(%v)", r)
		require.Equalf(t, idx, back, "Index(RefAt(%d))", idx)
		require.Falsef(t, seen[back], "index %d produced twice", back)
		seen[back] = true
	}

	// Axis 0 varies fastest: cell 1 is (1,0,0), cell 4 is (0,1,0).
	r1, _ := b.RefAt(1)
	require.Equal(t, cell.MustParse("b1A"), r1)
	r4, _ := b.RefAt(4)
	require.Equal(t, cell.MustParse("a2A"), r4)
}

// TestIndex_Errors pins the addressing error split.
func TestIndex_Errors(t *testing.T) {
	b, err := board.New(8, 8)
	require.NoError(t, err)

	_, err = b.Index(cell.MustParse("a"))
	require.ErrorIs(t, err, board.ErrDimensionMismatch)

	_, err = b.Index(cell.MustParse("a9"))
	require.ErrorIs(t, err, board.ErrOutOfBounds)

	_, err = b.RefAt(-1)
	require.ErrorIs(t, err, board.ErrIndexRange)
	_, err = b.RefAt(64)
	require.ErrorIs(t, err, board.ErrIndexRange)
}

// TestParse covers the decode-plus-bounds path, including codec errors
// passing through untouched.
func TestParse(t *testing.T) {
	b, err := board.New(8, 8)
	require.NoError(t, err)

	r, err := b.Parse("c2")
	require.NoError(t, err)
	require.Equal(t, cell.MustParse("c2"), r)

	_, err = b.Parse("c9")
	require.ErrorIs(t, err, board.ErrOutOfBounds)

	_, err = b.Parse("c2B")
	require.ErrorIs(t, err, board.ErrDimensionMismatch)

	_, err = b.Parse("c0")
	require.ErrorIs(t, err, cell.ErrLeadingZero)

	_, err = b.Parse("iw")
	require.ErrorIs(t, err, cell.ErrIndexOutOfRange)
}
