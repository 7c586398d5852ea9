package model

// ScheduleEntry summarizes one tile type's usage in a solved layout.
type ScheduleEntry struct {
	Name         string `json:"name"`
	Count        int    `json:"count"`         // tiles placed
	CellsCovered int    `json:"cells_covered"` // count * tile area
	Stock        int    `json:"stock"`         // UnlimitedStock when no limit
	Remaining    int    `json:"remaining"`     // UnlimitedStock when no limit
}

// TileSchedule is the purchasing/usage summary for a solved plan.
type TileSchedule struct {
	Entries      []ScheduleEntry `json:"entries"`
	TotalTiles   int             `json:"total_tiles"`
	CoveredCells int             `json:"covered_cells"`
	FreeCells    int             `json:"free_cells"`
}

// BuildSchedule tallies the layout against the problem's tile catalog.
// Tile types that were never placed still get an entry so the user sees
// the unused stock.
func BuildSchedule(p Problem, layout Layout) TileSchedule {
	counts := layout.CountsByType()

	schedule := TileSchedule{FreeCells: p.Board.FreeCount()}
	for ti, t := range p.TileTypes {
		n := counts[ti]
		entry := ScheduleEntry{
			Name:         t.Name,
			Count:        n,
			CellsCovered: n * t.Area(),
			Stock:        t.Stock(),
			Remaining:    UnlimitedStock,
		}
		if !t.Unlimited() {
			entry.Remaining = *t.Count - n
		}
		schedule.Entries = append(schedule.Entries, entry)
		schedule.TotalTiles += n
		schedule.CoveredCells += entry.CellsCovered
	}
	return schedule
}
