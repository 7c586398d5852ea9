package export

import (
	"fmt"

	"github.com/piwi3910/PatioPlan/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"
)

// Layer names used in the exported drawing.
const (
	layerBoard = "BOARD"
	layerHoles = "HOLES"
	layerTiles = "TILES"
)

// ExportDXF writes the solved layout as a DXF drawing: the board frame,
// hole cells and every placement outline as LINE entities on their own
// layers. cellSize is the drawing size of one grid cell (e.g. 100 for
// 100mm pavers). DXF has a y-up axis, so board rows are flipped.
func ExportDXF(path string, plan model.Plan, cellSize float64) error {
	if plan.Result == nil || !plan.Result.Found {
		return fmt.Errorf("plan %q has no solved layout to export", plan.Name)
	}
	if cellSize <= 0 {
		cellSize = 100.0
	}

	board := plan.Problem.Board
	d := dxf.NewDrawing()

	toX := func(x int) float64 { return float64(x) * cellSize }
	toY := func(y int) float64 { return float64(board.Height-y) * cellSize }

	if _, err := d.AddLayer(layerBoard, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return err
	}
	w, h := toX(board.Width), toY(0)
	frame := [][4]float64{
		{0, 0, w, 0},
		{w, 0, w, h},
		{w, h, 0, h},
		{0, h, 0, 0},
	}
	for _, ln := range frame {
		if _, err := d.Line(ln[0], ln[1], 0, ln[2], ln[3], 0); err != nil {
			return err
		}
	}

	if len(board.Holes) > 0 {
		if _, err := d.AddLayer(layerHoles, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
			return err
		}
		for _, hole := range board.Holes {
			x0, y0 := toX(hole.X), toY(hole.Y+1)
			x1, y1 := toX(hole.X+1), toY(hole.Y)
			// Cell box plus a diagonal so the hole reads as crossed out.
			lines := [][4]float64{
				{x0, y0, x1, y0},
				{x1, y0, x1, y1},
				{x1, y1, x0, y1},
				{x0, y1, x0, y0},
				{x0, y0, x1, y1},
			}
			for _, ln := range lines {
				if _, err := d.Line(ln[0], ln[1], 0, ln[2], ln[3], 0); err != nil {
					return err
				}
			}
		}
	}

	if _, err := d.AddLayer(layerTiles, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return err
	}
	for _, p := range plan.Result.Layout {
		if err := drawPlacementDXF(d, p, toX, toY); err != nil {
			return err
		}
	}

	return d.SaveAs(path)
}

// drawPlacementDXF traces the placement boundary, emitting only the
// unit-cell edges whose neighbor lies outside the placement.
func drawPlacementDXF(d *drawing.Drawing, p model.Placement, toX, toY func(int) float64) error {
	inside := make(map[model.Cell]bool, len(p.Cells))
	for _, c := range p.Cells {
		inside[c] = true
	}
	for _, c := range p.Cells {
		x0, y0 := toX(c.X), toY(c.Y+1)
		x1, y1 := toX(c.X+1), toY(c.Y)
		if !inside[model.Cell{X: c.X, Y: c.Y - 1}] {
			if _, err := d.Line(x0, y1, 0, x1, y1, 0); err != nil {
				return err
			}
		}
		if !inside[model.Cell{X: c.X, Y: c.Y + 1}] {
			if _, err := d.Line(x0, y0, 0, x1, y0, 0); err != nil {
				return err
			}
		}
		if !inside[model.Cell{X: c.X - 1, Y: c.Y}] {
			if _, err := d.Line(x0, y0, 0, x0, y1, 0); err != nil {
				return err
			}
		}
		if !inside[model.Cell{X: c.X + 1, Y: c.Y}] {
			if _, err := d.Line(x1, y0, 0, x1, y1, 0); err != nil {
				return err
			}
		}
	}
	return nil
}
