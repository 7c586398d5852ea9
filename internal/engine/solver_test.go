package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/PatioPlan/internal/model"
)

// assertExactCover verifies the layout invariants: every free cell is
// covered exactly once, no placement escapes the free set, and no tile
// type exceeds its stock.
func assertExactCover(t *testing.T, p model.Problem, layout model.Layout) {
	t.Helper()

	holes := p.Board.HoleSet()
	covered := make(map[model.Cell]int)
	for _, pl := range layout {
		for _, c := range pl.Cells {
			require.True(t, p.Board.InBounds(c), "cell (%d,%d) is off-board", c.X, c.Y)
			require.False(t, holes[c], "cell (%d,%d) is a hole", c.X, c.Y)
			covered[c]++
		}
	}
	for _, c := range p.Board.FreeCells() {
		assert.Equal(t, 1, covered[c], "free cell (%d,%d) must be covered exactly once", c.X, c.Y)
	}

	for ti, n := range layout.CountsByType() {
		tile := p.TileTypes[ti]
		if !tile.Unlimited() {
			assert.LessOrEqual(t, n, *tile.Count, "tile %s exceeds its stock", tile.Name)
		}
	}
}

func firstOnly(p model.Problem) model.Problem {
	p.Balance.NoBalance = true
	return p
}

// Scenario: 2x2, no holes, one unbounded rotating domino.
func TestSolve_Domino2x2_FirstOnly(t *testing.T) {
	p := model.Problem{
		Board:     model.Board{Width: 2, Height: 2},
		TileTypes: []model.TileType{domino()},
	}

	result, err := Solve(firstOnly(p), Options{Seed: 1})
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Nil(t, result.Score, "first-only mode reports no score")
	require.Len(t, result.Layout, 2)
	assertExactCover(t, p, result.Layout)
}

func TestSolve_Domino2x2_BalancedUnique(t *testing.T) {
	p := model.Problem{
		Board:                 model.Board{Width: 2, Height: 2},
		TileTypes:             []model.TileType{domino()},
		UniqueByBoardSymmetry: true,
		Balance:               model.DefaultBalance(),
	}

	result, err := Solve(p, Options{Seed: 1})
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, 1, result.Evaluated,
		"the two domino tilings of a square are board-symmetric, exactly one distinct layout remains")
	require.NotNil(t, result.Score)
	assertExactCover(t, p, result.Layout)
}

// Scenario: 3x3, only dominoes. Pre-flight must fire without searching.
func TestSolve_OddBoard_Infeasible(t *testing.T) {
	p := model.Problem{
		Board:     model.Board{Width: 3, Height: 3},
		TileTypes: []model.TileType{domino()},
	}

	result, err := Solve(firstOnly(p), Options{Seed: 1})
	require.NoError(t, err)
	assert.True(t, result.Infeasible())
	assert.Zero(t, result.Nodes, "pre-flight failures must not invoke the search")

	joined := ""
	for _, r := range result.Reasons {
		joined += r + "\n"
	}
	assert.Contains(t, joined, "odd number of unit cells")
}

// Scenario: the mutilated chessboard.
func TestSolve_MutilatedChessboard_Infeasible(t *testing.T) {
	p := model.Problem{
		Board: model.Board{
			Width:  8,
			Height: 8,
			Holes:  []model.Cell{{X: 0, Y: 0}, {X: 7, Y: 7}},
		},
		TileTypes: []model.TileType{domino()},
	}

	result, err := Solve(firstOnly(p), Options{Seed: 1})
	require.NoError(t, err)
	require.True(t, result.Infeasible())
	assert.Contains(t, result.Reasons[0], "checkerboard imbalance")
	assert.Zero(t, result.Nodes)
}

// Scenario: 4x4 with a single 2x2 block type limited to four.
func TestSolve_Blocks4x4_SingleLayout(t *testing.T) {
	block := model.NewRectTile("Block", 2, 2)
	block.AllowRotate = false
	block.Count = model.Limit(4)

	p := model.Problem{
		Board:                 model.Board{Width: 4, Height: 4},
		TileTypes:             []model.TileType{block},
		UniqueByBoardSymmetry: true,
		Balance:               model.DefaultBalance(),
	}

	result, err := Solve(p, Options{Seed: 1})
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Len(t, result.Layout, 4)
	assert.Equal(t, 1, result.Evaluated, "the block grid is the only tiling")
	assertExactCover(t, p, result.Layout)
}

// Scenario: 6x4 with unlimited 1x3 runners and an out-of-stock domino.
func TestSolve_MixedCatalog_OutOfStockIgnored(t *testing.T) {
	out := domino()
	out.Count = model.Limit(0)

	p := model.Problem{
		Board:     model.Board{Width: 6, Height: 4},
		TileTypes: []model.TileType{model.NewRectTile("Runner 3", 1, 3), out},
	}

	result, err := Solve(firstOnly(p), Options{Seed: 7})
	require.NoError(t, err)
	require.True(t, result.Found)
	require.Len(t, result.Layout, 8)
	for _, pl := range result.Layout {
		assert.Equal(t, 0, pl.Tile, "only the runner has stock")
	}
	assertExactCover(t, p, result.Layout)
}

// Scenario: 3x1 with only dominoes fails the gcd rule.
func TestSolve_Strip3x1_Infeasible(t *testing.T) {
	p := model.Problem{
		Board:     model.Board{Width: 3, Height: 1},
		TileTypes: []model.TileType{domino()},
	}

	result, err := Solve(firstOnly(p), Options{Seed: 1})
	require.NoError(t, err)
	require.True(t, result.Infeasible())

	// Both the parity and the gcd oracle fire here: N=3 is odd and not a
	// multiple of the tile area.
	joined := ""
	for _, r := range result.Reasons {
		joined += r + "\n"
	}
	assert.Contains(t, joined, "odd number of unit cells")
	assert.Contains(t, joined, "multiple of 2 cells")
}

func TestSolve_SearchExhausted_GenericReason(t *testing.T) {
	// A 2x2 block on a 3x3 board with a corner hole passes every oracle
	// (N=8 is even and divisible by the tile area, colors balance) but
	// no block arrangement fits around the hole.
	block := model.NewRectTile("Block", 2, 2)
	p := model.Problem{
		Board:     model.Board{Width: 3, Height: 3, Holes: []model.Cell{{X: 2, Y: 2}}},
		TileTypes: []model.TileType{block},
	}

	ok, _ := Preflight(p)
	require.True(t, ok, "pre-flight must pass so the search itself proves infeasibility")

	result, err := Solve(firstOnly(p), Options{Seed: 1})
	require.NoError(t, err)
	require.True(t, result.Infeasible())
	assert.Equal(t, []string{NoLayoutReason}, result.Reasons)
}

func TestSolve_SeedReproducible(t *testing.T) {
	p := model.Problem{
		Board:     model.Board{Width: 4, Height: 4},
		TileTypes: []model.TileType{domino()},
	}

	a, err := Solve(firstOnly(p), Options{Seed: 99})
	require.NoError(t, err)
	b, err := Solve(firstOnly(p), Options{Seed: 99})
	require.NoError(t, err)

	assert.Equal(t, a.Layout, b.Layout, "identical seeds must reproduce the search exactly")
	assert.Equal(t, a.Nodes, b.Nodes)
}

func TestSolve_ProgressMonotonic(t *testing.T) {
	// Full enumeration of domino tilings of a 6x6 board burns enough
	// decision nodes to emit several progress events.
	p := model.Problem{
		Board:     model.Board{Width: 6, Height: 6},
		TileTypes: []model.TileType{domino()},
		Balance:   model.DefaultBalance(),
	}
	p.Balance.MaxSolutionsToEvaluate = 1000000

	var events []Progress
	_, err := Solve(p, Options{
		Seed:     5,
		Progress: func(pr Progress) { events = append(events, pr) },
	})
	require.NoError(t, err)

	require.NotEmpty(t, events, "a full 6x6 enumeration must pass 5000 nodes")
	for i := 1; i < len(events); i++ {
		assert.Greater(t, events[i].Nodes, events[i-1].Nodes)
		assert.GreaterOrEqual(t, events[i].Found, events[i-1].Found)
	}
}

func TestSolve_BalancedPicksLowerScore(t *testing.T) {
	// On a 2x3 board with dominoes and unit weights the enumeration sees
	// all three tilings, so the best score it returns must be the same
	// whichever seed orders the search.
	p := model.Problem{
		Board:     model.Board{Width: 3, Height: 2},
		TileTypes: []model.TileType{domino()},
		Balance:   model.DefaultBalance(),
	}

	result, err := Solve(p, Options{Seed: 3})
	require.NoError(t, err)
	require.True(t, result.Found)
	require.NotNil(t, result.Score)
	assert.Equal(t, 3, result.Evaluated, "a 2x3 board has three domino tilings")

	for i := 0; i < 5; i++ {
		alt, err := Solve(p, Options{Seed: int64(10 + i)})
		require.NoError(t, err)
		require.NotNil(t, alt.Score)
		assert.InDelta(t, *result.Score, *alt.Score, 1e-9,
			"the best layout's score must not depend on search order")
	}
}

func TestSolve_ValidationErrors(t *testing.T) {
	_, err := Solve(model.Problem{Board: model.Board{Width: 0, Height: 2}}, Options{})
	assert.Error(t, err)

	_, err = Solve(model.Problem{
		Board: model.Board{Width: 2, Height: 2, Holes: []model.Cell{{X: 5, Y: 0}}},
	}, Options{})
	assert.Error(t, err)

	_, err = Solve(model.Problem{
		Board:     model.Board{Width: 2, Height: 2},
		TileTypes: []model.TileType{{Name: "empty"}},
	}, Options{})
	assert.Error(t, err)

	bad := domino()
	bad.Count = model.Limit(-1)
	_, err = Solve(model.Problem{
		Board:     model.Board{Width: 2, Height: 2},
		TileTypes: []model.TileType{bad},
	}, Options{})
	assert.Error(t, err)
}

func TestSolve_StockLimitRespected(t *testing.T) {
	// Force the solver to combine types: 4x1 strip with dominoes capped
	// at one, so the rest must be squares.
	limited := domino()
	limited.Count = model.Limit(1)

	p := model.Problem{
		Board:     model.Board{Width: 4, Height: 1},
		TileTypes: []model.TileType{limited, model.NewRectTile("Square", 1, 1)},
	}

	result, err := Solve(firstOnly(p), Options{Seed: 2})
	require.NoError(t, err)
	require.True(t, result.Found)
	assertExactCover(t, p, result.Layout)
	assert.LessOrEqual(t, result.Layout.CountsByType()[0], 1)
}
