package engine

import (
	"math"

	"github.com/piwi3910/PatioPlan/internal/model"
)

// ScoreBreakdown holds the four aesthetic terms and their weighted sum.
// All terms are nonnegative; lower totals are better.
type ScoreBreakdown struct {
	MixErr      float64 `json:"mix_err"`
	OrientErr   float64 `json:"orient_err"`
	SeamPenalty float64 `json:"seam_penalty"`
	CrossJoints float64 `json:"cross_joints"`
	Total       float64 `json:"total"`
}

const mixEpsilon = 1e-9

// Score rates a completed layout by mix, orientation balance, seam runs
// and four-corner joint crosses. The layout is not modified.
func Score(b model.Board, types []model.TileType, l model.Layout, cfg model.BalanceConfig) ScoreBreakdown {
	counts := make(map[string]int)
	horiz, vert := 0, 0
	for _, p := range l {
		counts[types[p.Tile].Name]++
		w, h := p.BoundingBox()
		if w > h {
			horiz++
		} else if h > w {
			vert++
		}
	}

	var out ScoreBreakdown
	out.MixErr = mixError(counts, cfg.DesiredMix)
	if horiz+vert > 0 {
		out.OrientErr = math.Abs(float64(horiz-vert)) / float64(horiz+vert)
	}

	grid := layoutGrid(b, l)
	out.SeamPenalty = seamPenalty(grid, b.Width, b.Height)
	out.CrossJoints = 0.1 * float64(crossJoints(grid, b.Width, b.Height))

	w := cfg.Weights
	out.Total = w.TileCountVariance*out.MixErr +
		w.OrientationBalance*out.OrientErr +
		w.SeamPenalty*out.SeamPenalty +
		w.CrossJoints*out.CrossJoints
	return out
}

// mixError measures how far the per-name tile counts are from the target
// mix. Without a target it is the squared coefficient of variation of
// the counts; with one it is the squared L2 distance between normalized
// actual and target proportions.
func mixError(counts map[string]int, desired map[string]float64) float64 {
	if len(desired) == 0 {
		if len(counts) == 0 {
			return 0
		}
		var sum float64
		for _, n := range counts {
			sum += float64(n)
		}
		mean := sum / float64(len(counts))
		var variance float64
		for _, n := range counts {
			d := float64(n) - mean
			variance += d * d
		}
		variance /= float64(len(counts))
		return variance / (mean*mean + mixEpsilon)
	}

	var totalActual float64
	for _, n := range counts {
		totalActual += float64(n)
	}
	var totalDesired float64
	for _, w := range desired {
		totalDesired += w
	}

	names := make(map[string]bool, len(counts)+len(desired))
	for name := range counts {
		names[name] = true
	}
	for name := range desired {
		names[name] = true
	}

	var dist float64
	for name := range names {
		var actual, target float64
		if totalActual > 0 {
			actual = float64(counts[name]) / totalActual
		}
		if totalDesired > 0 {
			target = desired[name] / totalDesired
		}
		d := actual - target
		dist += d * d
	}
	return dist
}

// layoutGrid maps every board cell to the index of the placement covering
// it, -1 for holes.
func layoutGrid(b model.Board, l model.Layout) []int {
	grid := make([]int, b.Width*b.Height)
	for i := range grid {
		grid[i] = -1
	}
	for i, p := range l {
		for _, c := range p.Cells {
			grid[c.Key(b.Width)] = i
		}
	}
	return grid
}

// seamPenalty scans every row and column for chains of consecutive cells
// in which each cell belongs to a different placement than the one
// before it. A chain of length > 1 adds 0.2 per cell in the chain.
func seamPenalty(grid []int, w, h int) float64 {
	var penalty float64

	flush := func(run int) {
		if run > 1 {
			penalty += 0.2 * float64(run)
		}
	}

	for y := 0; y < h; y++ {
		run := 1
		for x := 1; x < w; x++ {
			cur, prev := grid[y*w+x], grid[y*w+x-1]
			if cur >= 0 && prev >= 0 && cur != prev {
				run++
			} else {
				flush(run)
				run = 1
			}
		}
		flush(run)
	}

	for x := 0; x < w; x++ {
		run := 1
		for y := 1; y < h; y++ {
			cur, prev := grid[y*w+x], grid[(y-1)*w+x]
			if cur >= 0 && prev >= 0 && cur != prev {
				run++
			} else {
				flush(run)
				run = 1
			}
		}
		flush(run)
	}

	return penalty
}

// crossJoints counts 2x2 windows whose four cells belong to three or
// more distinct placements, the unsightly four-corner joints.
func crossJoints(grid []int, w, h int) int {
	crosses := 0
	for y := 0; y+1 < h; y++ {
		for x := 0; x+1 < w; x++ {
			a := grid[y*w+x]
			b := grid[y*w+x+1]
			c := grid[(y+1)*w+x]
			d := grid[(y+1)*w+x+1]
			if a < 0 || b < 0 || c < 0 || d < 0 {
				continue
			}
			distinct := 1
			owners := [4]int{a, b, c, d}
			for i := 1; i < 4; i++ {
				seen := false
				for j := 0; j < i; j++ {
					if owners[j] == owners[i] {
						seen = true
						break
					}
				}
				if !seen {
					distinct++
				}
			}
			if distinct >= 3 {
				crosses++
			}
		}
	}
	return crosses
}
