// Package export provides functionality for exporting solved plans to
// various file formats.
package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/PatioPlan/internal/model"
)

// tileColor represents an RGB color for a placed tile.
type tileColor struct {
	R, G, B int
}

// tileColors is the cycling per-type color scheme used in the layout diagram.
var tileColors = []tileColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendWidth  = 60.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF document for a solved plan: a layout diagram
// page followed by a tile schedule page.
func ExportPDF(path string, plan model.Plan) error {
	if plan.Result == nil || !plan.Result.Found {
		return fmt.Errorf("plan %q has no solved layout to export", plan.Name)
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderLayoutPage(pdf, plan)

	pdf.AddPage()
	renderSchedulePage(pdf, plan)

	return pdf.OutputFileAndClose(path)
}

// renderLayoutPage draws the board with every placement colored by its
// tile type, hole cells hatched gray, and placement borders emphasized.
func renderLayoutPage(pdf *fpdf.Fpdf, plan model.Plan) {
	board := plan.Problem.Board
	layout := plan.Result.Layout

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s (%d x %d cells)", plan.Name, board.Width, board.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	stats := fmt.Sprintf("Tiles: %d | Free cells: %d", len(layout), board.FreeCount())
	if plan.Result.Score != nil {
		stats += fmt.Sprintf(" | Balance score: %.4f", *plan.Result.Score)
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Scale the grid to the draw area, leaving room for the legend.
	availW := pageWidth - marginLeft - marginRight - legendWidth
	availH := pageHeight - drawAreaTop - marginBottom
	cellSize := availW / float64(board.Width)
	if s := availH / float64(board.Height); s < cellSize {
		cellSize = s
	}
	originX := marginLeft
	originY := drawAreaTop + 5

	// Hole cells first, light gray with a diagonal tick.
	pdf.SetFillColor(230, 230, 230)
	pdf.SetDrawColor(180, 180, 180)
	pdf.SetLineWidth(0.2)
	for _, hole := range board.Holes {
		x := originX + float64(hole.X)*cellSize
		y := originY + float64(hole.Y)*cellSize
		pdf.Rect(x, y, cellSize, cellSize, "FD")
		pdf.Line(x, y, x+cellSize, y+cellSize)
	}

	for _, p := range layout {
		col := tileColors[p.Tile%len(tileColors)]
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(60, 60, 60)
		pdf.SetLineWidth(0.4)
		for _, c := range p.Cells {
			x := originX + float64(c.X)*cellSize
			y := originY + float64(c.Y)*cellSize
			pdf.Rect(x, y, cellSize, cellSize, "F")
		}
		drawPlacementOutline(pdf, p, originX, originY, cellSize)
	}

	// Board frame.
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.6)
	pdf.Rect(originX, originY, float64(board.Width)*cellSize, float64(board.Height)*cellSize, "D")

	renderLegend(pdf, plan, originX+float64(board.Width)*cellSize+10, originY)
}

// drawPlacementOutline traces the placement boundary by drawing each
// unit-cell edge whose neighbor is outside the placement.
func drawPlacementOutline(pdf *fpdf.Fpdf, p model.Placement, originX, originY, cellSize float64) {
	inside := make(map[model.Cell]bool, len(p.Cells))
	for _, c := range p.Cells {
		inside[c] = true
	}
	for _, c := range p.Cells {
		x := originX + float64(c.X)*cellSize
		y := originY + float64(c.Y)*cellSize
		if !inside[model.Cell{X: c.X, Y: c.Y - 1}] {
			pdf.Line(x, y, x+cellSize, y)
		}
		if !inside[model.Cell{X: c.X, Y: c.Y + 1}] {
			pdf.Line(x, y+cellSize, x+cellSize, y+cellSize)
		}
		if !inside[model.Cell{X: c.X - 1, Y: c.Y}] {
			pdf.Line(x, y, x, y+cellSize)
		}
		if !inside[model.Cell{X: c.X + 1, Y: c.Y}] {
			pdf.Line(x+cellSize, y, x+cellSize, y+cellSize)
		}
	}
}

// renderLegend lists each tile type next to its color swatch.
func renderLegend(pdf *fpdf.Fpdf, plan model.Plan, x, y float64) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(x, y)
	pdf.CellFormat(legendWidth, 5, "Tile types", "", 1, "L", false, 0, "")

	counts := plan.Result.Layout.CountsByType()
	pdf.SetFont("Helvetica", "", 8)
	rowY := y + 7
	for ti, t := range plan.Problem.TileTypes {
		col := tileColors[ti%len(tileColors)]
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(x, rowY, 4, 4, "F")
		pdf.SetXY(x+6, rowY)
		pdf.CellFormat(legendWidth-6, 4, fmt.Sprintf("%s (%d placed)", t.Name, counts[ti]), "", 0, "L", false, 0, "")
		rowY += 6
	}
}

// renderSchedulePage prints the tile schedule as a table.
func renderSchedulePage(pdf *fpdf.Fpdf, plan model.Plan) {
	schedule := model.BuildSchedule(plan.Problem, plan.Result.Layout)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, "Tile Schedule", "", 1, "L", false, 0, "")

	colWidths := []float64{80, 30, 35, 30, 35}
	headers := []string{"Tile", "Count", "Cells covered", "Stock", "Remaining"}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight+5)
	for i, hdr := range headers {
		pdf.CellFormat(colWidths[i], 7, hdr, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, e := range schedule.Entries {
		stock, remaining := "unlimited", "-"
		if e.Stock != model.UnlimitedStock {
			stock = fmt.Sprintf("%d", e.Stock)
			remaining = fmt.Sprintf("%d", e.Remaining)
		}
		pdf.SetX(marginLeft)
		pdf.CellFormat(colWidths[0], 6, e.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 6, fmt.Sprintf("%d", e.Count), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[2], 6, fmt.Sprintf("%d", e.CellsCovered), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], 6, stock, "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[4], 6, remaining, "1", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetX(marginLeft)
	summary := fmt.Sprintf("Total: %d tiles covering %d of %d free cells",
		schedule.TotalTiles, schedule.CoveredCells, schedule.FreeCells)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 6, summary, "", 1, "L", false, 0, "")
}
