package model

import (
	"fmt"
	"sort"
	"strings"
)

// SortCells orders cells by (y, x), the board's row-major order.
func SortCells(cells []Cell) {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
}

// Normalize translates the cells so the minimum x and y are both zero and
// sorts them by (y, x). Normalizing a normalized shape is a fixed point,
// and shapes differing only by translation normalize identically.
func Normalize(cells []Cell) []Cell {
	if len(cells) == 0 {
		return nil
	}
	minX, minY := cells[0].X, cells[0].Y
	for _, c := range cells[1:] {
		if c.X < minX {
			minX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
	}
	out := make([]Cell, len(cells))
	for i, c := range cells {
		out[i] = Cell{X: c.X - minX, Y: c.Y - minY}
	}
	SortCells(out)
	return out
}

// Rotate90 maps every cell (x, y) to (-y, x).
func Rotate90(cells []Cell) []Cell {
	out := make([]Cell, len(cells))
	for i, c := range cells {
		out[i] = Cell{X: -c.Y, Y: c.X}
	}
	return out
}

// Reflect mirrors every cell (x, y) to (-x, y).
func Reflect(cells []Cell) []Cell {
	out := make([]Cell, len(cells))
	for i, c := range cells {
		out[i] = Cell{X: -c.X, Y: c.Y}
	}
	return out
}

// CellsKey serializes a cell list for use as a dedup key.
func CellsKey(cells []Cell) string {
	var sb strings.Builder
	for i, c := range cells {
		if i > 0 {
			sb.WriteByte(';')
		}
		fmt.Fprintf(&sb, "%d,%d", c.X, c.Y)
	}
	return sb.String()
}

// Orientations expands a base shape into its distinct orientations.
// With rotate, the three further 90-degree rotations are candidates; with
// reflect, the mirror of every candidate is too. Candidates are normalized
// and deduplicated, so symmetric shapes collapse.
func Orientations(base []Cell, rotate, reflect bool) [][]Cell {
	candidates := [][]Cell{base}
	if rotate {
		cur := base
		for i := 0; i < 3; i++ {
			cur = Rotate90(cur)
			candidates = append(candidates, cur)
		}
	}
	if reflect {
		for _, c := range candidates {
			candidates = append(candidates, Reflect(c))
		}
	}

	seen := make(map[string]bool, len(candidates))
	var out [][]Cell
	for _, c := range candidates {
		n := Normalize(c)
		key := CellsKey(n)
		if !seen[key] {
			seen[key] = true
			out = append(out, n)
		}
	}
	return out
}

// BoundingBox returns the width and height of the cells' footprint.
func BoundingBox(cells []Cell) (w, h int) {
	if len(cells) == 0 {
		return 0, 0
	}
	minX, maxX := cells[0].X, cells[0].X
	minY, maxY := cells[0].Y, cells[0].Y
	for _, c := range cells[1:] {
		if c.X < minX {
			minX = c.X
		}
		if c.X > maxX {
			maxX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
		if c.Y > maxY {
			maxY = c.Y
		}
	}
	return maxX - minX + 1, maxY - minY + 1
}
