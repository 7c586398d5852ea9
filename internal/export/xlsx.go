package export

import (
	"fmt"

	"github.com/piwi3910/PatioPlan/internal/model"
	"github.com/xuri/excelize/v2"
)

const (
	scheduleSheet = "Schedule"
	layoutSheet   = "Layout"
)

// ExportXLSX writes the tile schedule and the layout grid of a solved
// plan to an Excel workbook.
func ExportXLSX(path string, plan model.Plan) error {
	if plan.Result == nil || !plan.Result.Found {
		return fmt.Errorf("plan %q has no solved layout to export", plan.Name)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeScheduleSheet(f, plan); err != nil {
		return err
	}
	if err := writeLayoutSheet(f, plan); err != nil {
		return err
	}

	// Drop the default sheet and activate the schedule.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	idx, err := f.GetSheetIndex(scheduleSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)

	return f.SaveAs(path)
}

func writeScheduleSheet(f *excelize.File, plan model.Plan) error {
	if _, err := f.NewSheet(scheduleSheet); err != nil {
		return err
	}

	headers := []string{"Tile", "Count", "Cells covered", "Stock", "Remaining"}
	for i, hdr := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(scheduleSheet, cell, hdr); err != nil {
			return err
		}
	}

	schedule := model.BuildSchedule(plan.Problem, plan.Result.Layout)
	for r, e := range schedule.Entries {
		values := []interface{}{e.Name, e.Count, e.CellsCovered}
		if e.Stock == model.UnlimitedStock {
			values = append(values, "unlimited", "-")
		} else {
			values = append(values, e.Stock, e.Remaining)
		}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(scheduleSheet, cell, v); err != nil {
				return err
			}
		}
	}

	totalRow := len(schedule.Entries) + 3
	cell, err := excelize.CoordinatesToCellName(1, totalRow)
	if err != nil {
		return err
	}
	summary := fmt.Sprintf("Total: %d tiles covering %d of %d free cells",
		schedule.TotalTiles, schedule.CoveredCells, schedule.FreeCells)
	return f.SetCellValue(scheduleSheet, cell, summary)
}

// writeLayoutSheet renders the board as a grid of placement numbers, with
// X for holes, so the layout can be read off row by row on site.
func writeLayoutSheet(f *excelize.File, plan model.Plan) error {
	if _, err := f.NewSheet(layoutSheet); err != nil {
		return err
	}

	board := plan.Problem.Board
	owner := make([]int, board.Width*board.Height)
	for i := range owner {
		owner[i] = -1
	}
	for i, p := range plan.Result.Layout {
		for _, c := range p.Cells {
			owner[c.Key(board.Width)] = i
		}
	}

	holes := board.HoleSet()
	for y := 0; y < board.Height; y++ {
		for x := 0; x < board.Width; x++ {
			cell, err := excelize.CoordinatesToCellName(x+1, y+1)
			if err != nil {
				return err
			}
			var value interface{}
			switch {
			case holes[model.Cell{X: x, Y: y}]:
				value = "X"
			case owner[y*board.Width+x] >= 0:
				value = owner[y*board.Width+x] + 1
			default:
				value = ""
			}
			if err := f.SetCellValue(layoutSheet, cell, value); err != nil {
				return err
			}
		}
	}
	return nil
}
