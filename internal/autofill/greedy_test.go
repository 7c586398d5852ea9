package autofill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/PatioPlan/internal/model"
)

func TestFill_CoversSimpleBoard(t *testing.T) {
	p := model.Problem{
		Board:     model.Board{Width: 4, Height: 2},
		TileTypes: []model.TileType{model.NewRectTile("Runner", 1, 2)},
	}

	result := Fill(p)

	assert.Empty(t, result.Uncovered)
	assert.Equal(t, 8, result.Covered())
	assert.Len(t, result.Layout, 4)
}

func TestFill_NoOverlapNoHoles(t *testing.T) {
	p := model.Problem{
		Board: model.Board{Width: 5, Height: 4, Holes: []model.Cell{{X: 2, Y: 1}}},
		TileTypes: []model.TileType{
			model.NewRectTile("Block", 2, 2),
			model.NewRectTile("Square", 1, 1),
		},
	}

	result := Fill(p)

	holes := p.Board.HoleSet()
	seen := make(map[model.Cell]bool)
	for _, pl := range result.Layout {
		for _, c := range pl.Cells {
			require.True(t, p.Board.InBounds(c))
			require.False(t, holes[c], "greedy fill placed a tile over the hole")
			require.False(t, seen[c], "cell (%d,%d) covered twice", c.X, c.Y)
			seen[c] = true
		}
	}
	assert.Equal(t, p.Board.FreeCount(), result.Covered()+len(result.Uncovered))
}

func TestFill_PrefersLargerTiles(t *testing.T) {
	p := model.Problem{
		Board: model.Board{Width: 4, Height: 4},
		TileTypes: []model.TileType{
			model.NewRectTile("Square", 1, 1),
			model.NewRectTile("Block", 2, 2),
		},
	}

	result := Fill(p)

	require.Empty(t, result.Uncovered)
	counts := result.Layout.CountsByType()
	assert.Equal(t, 4, counts[1], "the 2x2 block should win every anchor cell")
	assert.Zero(t, counts[0])
}

func TestFill_RespectsStock(t *testing.T) {
	block := model.NewRectTile("Block", 2, 2)
	block.Count = model.Limit(1)

	p := model.Problem{
		Board:     model.Board{Width: 4, Height: 2},
		TileTypes: []model.TileType{block, model.NewRectTile("Square", 1, 1)},
	}

	result := Fill(p)

	assert.Empty(t, result.Uncovered)
	counts := result.Layout.CountsByType()
	assert.Equal(t, 1, counts[0])
	assert.Equal(t, 4, counts[1])
}

func TestFill_ReportsUncoverable(t *testing.T) {
	// A lone 2x2 block cannot reach the last column of a 3x3 board.
	block := model.NewRectTile("Block", 2, 2)

	p := model.Problem{
		Board:     model.Board{Width: 3, Height: 3},
		TileTypes: []model.TileType{block},
	}

	result := Fill(p)

	assert.NotEmpty(t, result.Uncovered)
	assert.Equal(t, p.Board.FreeCount(), result.Covered()+len(result.Uncovered))
}

func TestFill_OutOfStockTypeUnused(t *testing.T) {
	out := model.NewRectTile("Block", 2, 2)
	out.Count = model.Limit(0)

	p := model.Problem{
		Board:     model.Board{Width: 2, Height: 2},
		TileTypes: []model.TileType{out, model.NewRectTile("Square", 1, 1)},
	}

	result := Fill(p)

	assert.Empty(t, result.Uncovered)
	assert.Zero(t, result.Layout.CountsByType()[0])
}
