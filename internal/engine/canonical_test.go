package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piwi3910/PatioPlan/internal/model"
)

func TestCanonicalKey_SymmetricLayoutsCollapse(t *testing.T) {
	board := model.Board{Width: 2, Height: 2}
	tfs := boardTransforms(board)

	horizontal := model.Layout{
		{Tile: 0, Cells: []model.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}}},
		{Tile: 0, Cells: []model.Cell{{X: 0, Y: 1}, {X: 1, Y: 1}}},
	}
	vertical := model.Layout{
		{Tile: 0, Cells: []model.Cell{{X: 0, Y: 0}, {X: 0, Y: 1}}},
		{Tile: 0, Cells: []model.Cell{{X: 1, Y: 0}, {X: 1, Y: 1}}},
	}

	assert.Equal(t,
		canonicalKey(horizontal, tfs, board),
		canonicalKey(vertical, tfs, board),
		"the two domino tilings of a 2x2 square are rotations of each other")
}

func TestCanonicalKey_IdentityOnlyKeepsBothDistinct(t *testing.T) {
	board := model.Board{Width: 2, Height: 2}
	tfs := identityOnly()

	horizontal := model.Layout{
		{Tile: 0, Cells: []model.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}}},
		{Tile: 0, Cells: []model.Cell{{X: 0, Y: 1}, {X: 1, Y: 1}}},
	}
	vertical := model.Layout{
		{Tile: 0, Cells: []model.Cell{{X: 0, Y: 0}, {X: 0, Y: 1}}},
		{Tile: 0, Cells: []model.Cell{{X: 1, Y: 0}, {X: 1, Y: 1}}},
	}

	assert.NotEqual(t,
		canonicalKey(horizontal, tfs, board),
		canonicalKey(vertical, tfs, board))
}

func TestCanonicalKey_PlacementOrderIrrelevant(t *testing.T) {
	board := model.Board{Width: 2, Height: 2}
	tfs := identityOnly()

	a := model.Layout{
		{Tile: 0, Cells: []model.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}}},
		{Tile: 0, Cells: []model.Cell{{X: 0, Y: 1}, {X: 1, Y: 1}}},
	}
	b := model.Layout{
		{Tile: 0, Cells: []model.Cell{{X: 1, Y: 1}, {X: 0, Y: 1}}},
		{Tile: 0, Cells: []model.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}}},
	}

	assert.Equal(t, canonicalKey(a, tfs, board), canonicalKey(b, tfs, board),
		"the key must not depend on placement or cell ordering")
}

func TestCanonicalKey_TileTypeMatters(t *testing.T) {
	board := model.Board{Width: 2, Height: 1}
	tfs := identityOnly()

	a := model.Layout{{Tile: 0, Cells: []model.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}}}}
	b := model.Layout{{Tile: 1, Cells: []model.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}}}}

	assert.NotEqual(t, canonicalKey(a, tfs, board), canonicalKey(b, tfs, board))
}
