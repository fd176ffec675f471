// Package board models fixed-size boards of one to three axes whose cells
// are addressed by cell.Ref references.
//
// What:
//
//   - Board wraps per-axis sizes (1..256 cells along each axis) and is
//     immutable once built.
//   - Contains reports whether a reference lands on the board.
//   - Index and RefAt convert between references and row-major cell indices
//     (axis 0 varies fastest).
//   - Parse decodes a reference string and bounds-checks it in one call.
//
// Why:
//
//   - Game boards: map "c8B" straight to a slot in a flat cell array.
//   - Spreadsheet-like sheets: enumerate or address cells without nested
//     index bookkeeping.
//   - Validation at the boundary: reject off-board references with a
//     distinct error before they reach storage.
//
// Complexity:
//
//   - New:      O(axes)
//   - Contains, Index, RefAt, Parse: O(axes) time, O(1) memory, axes ≤ 3.
//
// Errors:
//
//   - ErrAxisCount: no sizes, or more than cell.MaxAxes sizes.
//   - ErrAxisSize: an axis size outside 1..256.
//   - ErrDimensionMismatch: reference axis count differs from the board's.
//   - ErrOutOfBounds: reference value at or past an axis size.
//   - ErrIndexRange: row-major index outside [0, Cells()).
package board
