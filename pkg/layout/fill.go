package layout

// FillOrder maps a flat item index onto a grid cell. Which order a block
// uses is a fixed per-block policy; changing one changes where items land
// between regenerated documents.
type FillOrder int

const (
	// RowMajor fills left to right, wrapping to the next row.
	RowMajor FillOrder = iota
	// ColumnMajor fills top to bottom, wrapping to the next column.
	ColumnMajor
)

// Per-block fill policy.
const (
	practiceFill = RowMajor
	clozeFill    = ColumnMajor
	vocabFill    = ColumnMajor
)

// Cell returns the grid cell of item i. RowMajor only uses cols; ColumnMajor
// only uses rows.
func (f FillOrder) Cell(i, cols, rows int) (row, col int) {
	if f == ColumnMajor {
		return i % rows, i / rows
	}
	return i / cols, i % cols
}
