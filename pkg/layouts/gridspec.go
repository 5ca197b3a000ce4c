package layouts

import (
	"math"

	"github.com/matzehuels/plotkit/pkg/errors"
	"github.com/matzehuels/plotkit/pkg/models"
)

// End used as a span bound reaches the last row or column.
const End = math.MaxInt

type cell struct{ row, col int }

// GridSpec assigns layout entities to the cells of a fixed-size grid.
// Rows feeds GridPlot.
type GridSpec struct {
	nrows, ncols int
	cells        map[cell]models.LayoutDOM
}

// NewGridSpec creates an empty nrows x ncols grid.
func NewGridSpec(nrows, ncols int) (*GridSpec, error) {
	if nrows < 0 || ncols < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "grid size %dx%d is negative", nrows, ncols)
	}
	return &GridSpec{nrows: nrows, ncols: ncols, cells: make(map[cell]models.LayoutDOM)}, nil
}

// Size returns the number of rows and columns.
func (g *GridSpec) Size() (nrows, ncols int) { return g.nrows, g.ncols }

// Set places obj at (row, col). Negative indices count from the end.
// A nil obj empties the cell.
func (g *GridSpec) Set(row, col int, obj models.LayoutDOM) error {
	r, err := index(row, g.nrows)
	if err != nil {
		return err
	}
	c, err := index(col, g.ncols)
	if err != nil {
		return err
	}
	g.cells[cell{r, c}] = obj
	return nil
}

// SetRowSpan fills columns [c1, c2) of row with objs in order. Cells past
// the end of objs are emptied.
func (g *GridSpec) SetRowSpan(row, c1, c2 int, objs []models.LayoutDOM) error {
	r, err := index(row, g.nrows)
	if err != nil {
		return err
	}
	lo, hi := bounds(c1, c2, g.ncols)
	for c := lo; c < hi; c++ {
		g.cells[cell{r, c}] = at(objs, c-lo)
	}
	return nil
}

// SetColSpan fills rows [r1, r2) of col with objs in order. Cells past the
// end of objs are emptied.
func (g *GridSpec) SetColSpan(r1, r2, col int, objs []models.LayoutDOM) error {
	c, err := index(col, g.ncols)
	if err != nil {
		return err
	}
	lo, hi := bounds(r1, r2, g.nrows)
	for r := lo; r < hi; r++ {
		g.cells[cell{r, c}] = at(objs, r-lo)
	}
	return nil
}

// SetBlock walks rows [r1, r2) and columns [c1, c2) in lockstep: the i-th
// step assigns objs[i][i] to (r1+i, c1+i) and stops at the shorter span.
// Only those diagonal cells are touched.
func (g *GridSpec) SetBlock(r1, r2, c1, c2 int, objs [][]models.LayoutDOM) {
	rlo, rhi := bounds(r1, r2, g.nrows)
	clo, chi := bounds(c1, c2, g.ncols)
	for i := 0; rlo+i < rhi && clo+i < chi; i++ {
		var obj models.LayoutDOM
		if i < len(objs) {
			obj = at(objs[i], i)
		}
		g.cells[cell{rlo + i, clo + i}] = obj
	}
}

// Rows returns the dense grid, nil for empty cells.
func (g *GridSpec) Rows() [][]models.LayoutDOM {
	rows := make([][]models.LayoutDOM, g.nrows)
	for r := range rows {
		rows[r] = make([]models.LayoutDOM, g.ncols)
	}
	for k, obj := range g.cells {
		rows[k.row][k.col] = obj
	}
	return rows
}

func index(i, n int) (int, error) {
	j := i
	if j < 0 {
		j += n
	}
	if j < 0 || j >= n {
		return 0, errors.New(errors.ErrCodeIndexOutOfRange, "index %d out of range for size %d", i, n)
	}
	return j, nil
}

// bounds clamps a half-open span to [0, n] the way slice indices do,
// with negative bounds counting from the end.
func bounds(lo, hi, n int) (int, int) {
	return clamp(lo, n), clamp(hi, n)
}

func clamp(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
	}
	return min(i, n)
}

func at(objs []models.LayoutDOM, i int) models.LayoutDOM {
	if i < len(objs) {
		return objs[i]
	}
	return nil
}
