package board

import (
	"errors"

	"github.com/katalvlaran/cellref/cell"
)

// Sentinel errors for board construction and addressing.
var (
	// ErrAxisCount indicates New received no sizes or more than cell.MaxAxes.
	ErrAxisCount = errors.New("board: board must have between 1 and 3 axes")
	// ErrAxisSize indicates an axis size outside 1..256.
	ErrAxisSize = errors.New("board: axis size must be between 1 and 256")
	// ErrDimensionMismatch indicates a reference whose axis count differs
	// from the board's.
	ErrDimensionMismatch = errors.New("board: reference dimensionality does not match board")
	// ErrOutOfBounds indicates a reference value at or past an axis size.
	ErrOutOfBounds = errors.New("board: reference outside board bounds")
	// ErrIndexRange indicates a row-major index outside [0, Cells()).
	ErrIndexRange = errors.New("board: cell index out of range")
)

// maxAxisSize is the largest addressable extent along one axis: indices are
// uint8, so 256 cells (0..255).
const maxAxisSize = 256

// Board is a fixed-size 1–3 axis board. It is immutable once built; all
// methods are safe for concurrent use.
type Board struct {
	sizes [cell.MaxAxes]int
	n     int
	cells int
}

// New constructs a Board from 1–3 per-axis sizes, each 1..256.
// Returns ErrAxisCount or ErrAxisSize on invalid shapes.
// Complexity: O(axes).
func New(sizes ...int) (*Board, error) {
	if len(sizes) == 0 || len(sizes) > cell.MaxAxes {
		return nil, ErrAxisCount
	}
	b := &Board{n: len(sizes), cells: 1}
	for axis, size := range sizes {
		if size < 1 || size > maxAxisSize {
			return nil, ErrAxisSize
		}
		b.sizes[axis] = size
		b.cells *= size
	}

	return b, nil
}

// Axes reports the board's dimensionality.
func (b *Board) Axes() int {
	return b.n
}

// Size returns the extent along the given zero-based axis.
// Panics if axis is outside [0, Axes()), matching slice-indexing policy.
func (b *Board) Size(axis int) int {
	if axis < 0 || axis >= b.n {
		panic("board: axis out of range")
	}

	return b.sizes[axis]
}

// Cells returns the total number of cells (the product of all axis sizes).
func (b *Board) Cells() int {
	return b.cells
}

// Contains reports whether r addresses a cell on the board: same axis count
// and every value inside its axis extent.
// Complexity: O(axes).
func (b *Board) Contains(r cell.Ref) bool {
	if r.Axes() != b.n {
		return false
	}
	for axis := 0; axis < b.n; axis++ {
		if int(r.At(axis)) >= b.sizes[axis] {
			return false
		}
	}

	return true
}

// Index maps r to its row-major cell index, with axis 0 varying fastest:
// index = v0 + v1·size0 + v2·size0·size1.
// Returns ErrDimensionMismatch or ErrOutOfBounds for references that do not
// land on the board.
// Complexity: O(axes).
func (b *Board) Index(r cell.Ref) (int, error) {
	if r.Axes() != b.n {
		return 0, ErrDimensionMismatch
	}
	idx, stride := 0, 1
	for axis := 0; axis < b.n; axis++ {
		v := int(r.At(axis))
		if v >= b.sizes[axis] {
			return 0, ErrOutOfBounds
		}
		idx += v * stride
		stride *= b.sizes[axis]
	}

	return idx, nil
}

// RefAt converts a row-major cell index back into a reference; the exact
// inverse of Index over [0, Cells()).
// Returns ErrIndexRange for indices off the board.
// Complexity: O(axes).
func (b *Board) RefAt(idx int) (cell.Ref, error) {
	if idx < 0 || idx >= b.cells {
		return cell.Ref{}, ErrIndexRange
	}
	values := make([]uint8, 0, cell.MaxAxes)
	for axis := 0; axis < b.n; axis++ {
		values = append(values, uint8(idx%b.sizes[axis]))
		idx /= b.sizes[axis]
	}

	return cell.New(values...)
}

// Parse decodes a reference string and bounds-checks it against the board
// in one call. Codec errors pass through unchanged; on-board failures are
// ErrDimensionMismatch or ErrOutOfBounds.
func (b *Board) Parse(s string) (cell.Ref, error) {
	r, err := cell.Parse(s)
	if err != nil {
		return cell.Ref{}, err
	}
	if r.Axes() != b.n {
		return cell.Ref{}, ErrDimensionMismatch
	}
	for axis := 0; axis < b.n; axis++ {
		if int(r.At(axis)) >= b.sizes[axis] {
			return cell.Ref{}, ErrOutOfBounds
		}
	}

	return r, nil
}
