package engine

import (
	"fmt"

	"github.com/piwi3910/PatioPlan/internal/model"
)

// Preflight runs the cheap necessary-condition tests before any search.
// It returns ok=false with one human-readable reason per failing test.
// A failing preflight is a proof that no exact layout exists.
func Preflight(p model.Problem) (bool, []string) {
	var reasons []string

	n := p.Board.FreeCount()

	var available []model.TileType
	for _, t := range p.TileTypes {
		if t.Available() {
			available = append(available, t)
		}
	}

	if len(available) == 0 {
		reasons = append(reasons, "no tiles available: every tile type has a stock of zero")
		return false, reasons
	}

	// Maximum coverable area, only bounding when every type is limited.
	allLimited := true
	maxArea := 0
	for _, t := range available {
		if t.Unlimited() {
			allLimited = false
			break
		}
		maxArea += *t.Count * t.Area()
	}
	if allLimited && maxArea < n {
		reasons = append(reasons, fmt.Sprintf(
			"the available tiles cover at most %d cells but the board has %d free cells", maxArea, n))
	}

	allEven := true
	for _, t := range available {
		if t.Area()%2 != 0 {
			allEven = false
			break
		}
	}
	if n%2 != 0 && allEven {
		reasons = append(reasons,
			"the board has an odd number of unit cells but all available tiles cover an even number of cells")
	}

	g := 0
	for _, t := range available {
		g = gcd(g, t.Area())
	}
	if g > 1 && n%g != 0 {
		reasons = append(reasons, fmt.Sprintf(
			"every available tile covers a multiple of %d cells but the board has %d free cells", g, n))
	}

	// Checkerboard coloring. A tile whose base splits evenly between the
	// two colors covers an equal split from every position and under every
	// orientation; a fleet of such tiles can never fix a color imbalance.
	imbalance := colorImbalance(p.Board)
	if imbalance != 0 {
		allNeutral := true
		for _, t := range available {
			if !parityNeutral(t.Base) {
				allNeutral = false
				break
			}
		}
		if allNeutral {
			reasons = append(reasons, fmt.Sprintf(
				"the free board has a checkerboard imbalance of %d cells but every available tile covers both colors equally", imbalance))
		}
	}

	return len(reasons) == 0, reasons
}

// parityNeutral reports whether the shape covers as many black cells as
// white under the (x+y) mod 2 coloring. Translation and the rotations
// and reflections can at most swap the two tallies, so equality of the
// base tallies decides every placement. For a w x h rectangle this is
// equivalent to at least one side being even.
func parityNeutral(cells []model.Cell) bool {
	black := 0
	for _, c := range cells {
		if (c.X+c.Y)%2 == 0 {
			black++
		}
	}
	return 2*black == len(cells)
}

// colorImbalance returns |black - white| over the free cells.
func colorImbalance(b model.Board) int {
	black, white := 0, 0
	for _, c := range b.FreeCells() {
		if (c.X+c.Y)%2 == 0 {
			black++
		} else {
			white++
		}
	}
	if black > white {
		return black - white
	}
	return white - black
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
