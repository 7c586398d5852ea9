package engine

import (
	"fmt"

	"github.com/piwi3910/PatioPlan/internal/model"
)

// row is one placement in the exact-cover matrix: a tile type index plus
// the columns (free-cell indices) it covers.
type row struct {
	tile  int
	cols  []int
	cells []model.Cell
}

// table holds the precomputed exact-cover matrix for one problem:
// columns are the free cells in row-major order, rows are placements.
type table struct {
	board   model.Board
	free    []model.Cell // column index -> cell
	colAt   []int        // packed cell key -> column index, -1 for holes
	rows    []row        // placement id -> row
	colRows [][]int      // column index -> incident placement ids
	stock   []int        // tile type -> stock limit, UnlimitedStock for none
}

// buildTable enumerates all placements for the problem. For each tile
// type and orientation, every offset whose covered cells all lie in the
// free set yields one row with a stable id.
func buildTable(p model.Problem) (*table, error) {
	b := p.Board
	free := b.FreeCells()

	colAt := make([]int, b.Width*b.Height)
	for i := range colAt {
		colAt[i] = -1
	}
	for col, c := range free {
		colAt[c.Key(b.Width)] = col
	}

	t := &table{
		board:   b,
		free:    free,
		colAt:   colAt,
		colRows: make([][]int, len(free)),
		stock:   make([]int, len(p.TileTypes)),
	}

	for ti, tile := range p.TileTypes {
		t.stock[ti] = tile.Stock()
		for _, orient := range model.Orientations(tile.Base, tile.AllowRotate, tile.AllowReflect) {
			mx, my := 0, 0
			for _, c := range orient {
				if c.X > mx {
					mx = c.X
				}
				if c.Y > my {
					my = c.Y
				}
			}
			for oy := 0; oy <= b.Height-1-my; oy++ {
				for ox := 0; ox <= b.Width-1-mx; ox++ {
					cols := make([]int, 0, len(orient))
					cells := make([]model.Cell, 0, len(orient))
					fits := true
					for _, c := range orient {
						abs := model.Cell{X: c.X + ox, Y: c.Y + oy}
						if !b.InBounds(abs) {
							return nil, fmt.Errorf("placement cell (%d,%d) escaped the board", abs.X, abs.Y)
						}
						col := colAt[abs.Key(b.Width)]
						if col < 0 {
							fits = false
							break
						}
						cols = append(cols, col)
						cells = append(cells, abs)
					}
					if !fits {
						continue
					}
					pid := len(t.rows)
					t.rows = append(t.rows, row{tile: ti, cols: cols, cells: cells})
					for _, col := range cols {
						t.colRows[col] = append(t.colRows[col], pid)
					}
				}
			}
		}
	}
	return t, nil
}
