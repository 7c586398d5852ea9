// Package autofill provides a fast greedy filler. Unlike the exact-cover
// engine it makes no completeness promise: it sweeps the board once and
// reports whatever it could not cover.
package autofill

import (
	"sort"

	"github.com/piwi3910/PatioPlan/internal/model"
)

// Result holds the partial layout produced by the greedy pass.
type Result struct {
	Layout    model.Layout
	Uncovered []model.Cell
}

// Covered reports how many cells the greedy pass managed to tile.
func (r Result) Covered() int {
	return r.Layout.CellCount()
}

// candidate is one orientation of one tile type, anchored by its first
// cell in (y, x) order.
type candidate struct {
	tile   int
	cells  []model.Cell
	anchor model.Cell
}

// Fill sweeps the free cells in row-major order. At each uncovered cell
// it tries the candidate orientations largest-area first, anchored so
// the orientation's first cell lands on the scan cell, and places the
// first one that fits within stock. Cells nothing fits on are reported
// uncovered.
func Fill(p model.Problem) Result {
	b := p.Board

	var candidates []candidate
	for ti, tile := range p.TileTypes {
		if !tile.Available() {
			continue
		}
		for _, orient := range model.Orientations(tile.Base, tile.AllowRotate, tile.AllowReflect) {
			candidates = append(candidates, candidate{
				tile:   ti,
				cells:  orient,
				anchor: orient[0],
			})
		}
	}
	// Largest tiles first so small fillers go into the gaps.
	sort.SliceStable(candidates, func(i, j int) bool {
		return len(candidates[i].cells) > len(candidates[j].cells)
	})

	holes := b.HoleSet()
	taken := make([]bool, b.Width*b.Height)
	stockLeft := make([]int, len(p.TileTypes))
	for ti, t := range p.TileTypes {
		stockLeft[ti] = t.Stock()
	}

	fits := func(c candidate, ox, oy int) []model.Cell {
		cells := make([]model.Cell, len(c.cells))
		for i, cc := range c.cells {
			abs := model.Cell{X: cc.X + ox, Y: cc.Y + oy}
			if !b.InBounds(abs) || holes[abs] || taken[abs.Key(b.Width)] {
				return nil
			}
			cells[i] = abs
		}
		return cells
	}

	var result Result
	for _, scan := range b.FreeCells() {
		if taken[scan.Key(b.Width)] {
			continue
		}
		placed := false
		for _, c := range candidates {
			if stockLeft[c.tile] == 0 {
				continue
			}
			cells := fits(c, scan.X-c.anchor.X, scan.Y-c.anchor.Y)
			if cells == nil {
				continue
			}
			for _, cc := range cells {
				taken[cc.Key(b.Width)] = true
			}
			if stockLeft[c.tile] > 0 {
				stockLeft[c.tile]--
			}
			result.Layout = append(result.Layout, model.Placement{Tile: c.tile, Cells: cells})
			placed = true
			break
		}
		if !placed {
			result.Uncovered = append(result.Uncovered, scan)
		}
	}
	return result
}
