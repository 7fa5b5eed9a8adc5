// Package board implements the rectangular letter grid the solver
// walks. Cells are stored flat; the index of (row, col) is
// row*width + col.
package board

import (
	"fmt"
	"strings"
)

// offsets are the 8 grid-adjacent directions, as (drow, dcol).
var offsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is an immutable width x height grid of single-letter cells.
type Board struct {
	width  int
	height int
	cells  []rune
}

// New constructs a board from a flat, row-major cell sequence. Letters
// are lowercased at construction so searches are case-insensitive. It
// returns an error if the cell count does not match the dimensions;
// a zero-by-anything board is legal and simply has no cells.
func New(width, height int, cells []string) (*Board, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("board dimensions must be non-negative, got %dx%d", width, height)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("board has %d cells, want %d for a %dx%d grid",
			len(cells), width*height, width, height)
	}
	b := &Board{width: width, height: height, cells: make([]rune, len(cells))}
	for i, c := range cells {
		rs := []rune(strings.ToLower(c))
		if len(rs) != 1 {
			return nil, fmt.Errorf("cell %d is %q, want a single character", i, c)
		}
		b.cells[i] = rs[0]
	}
	return b, nil
}

// Dim returns the board dimensions.
func (b *Board) Dim() (width, height int) {
	return b.width, b.height
}

// NumCells returns the total cell count.
func (b *Board) NumCells() int {
	return len(b.cells)
}

// Letter returns the letter at the given flat index.
func (b *Board) Letter(idx int) rune {
	return b.cells[idx]
}

// Neighbors returns the flat indices of the up to 8 cells grid-adjacent
// to idx. Bounds are checked per axis, so a cell in the rightmost
// column is not adjacent to the leftmost cell of the next row.
func (b *Board) Neighbors(idx int) []int {
	row := idx / b.width
	col := idx % b.width
	ns := make([]int, 0, 8)
	for _, off := range offsets {
		r, c := row+off[0], col+off[1]
		if r < 0 || r >= b.height || c < 0 || c >= b.width {
			continue
		}
		ns = append(ns, r*b.width+c)
	}
	return ns
}

// String renders the grid one row per line, for logs and debugging.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.height; r++ {
		for c := 0; c < b.width; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(b.cells[r*b.width+c])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
