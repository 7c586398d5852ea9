package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinTiles(t *testing.T) {
	tiles := BuiltinTiles()
	require.NotEmpty(t, tiles)

	names := make(map[string]bool)
	for _, tile := range tiles {
		assert.NotEmpty(t, tile.Base, "%s must have a shape", tile.Name)
		assert.True(t, tile.Unlimited(), "catalog tiles carry no stock limit")
		assert.False(t, names[tile.Name], "duplicate catalog name %s", tile.Name)
		names[tile.Name] = true
	}

	corner, ok := FindTile(tiles, "Corner L")
	require.True(t, ok)
	assert.True(t, corner.AllowReflect, "the corner piece enables reflection")
	assert.Equal(t, 3, corner.Area())

	herringbone, ok := FindTile(tiles, "Herringbone Pair")
	require.True(t, ok)
	assert.Equal(t, 4, herringbone.Area(), "the pair covers two runners")
	assert.True(t, herringbone.AllowReflect, "the pair is chiral and must reflect")
	assert.Len(t, Orientations(herringbone.Base, herringbone.AllowRotate, herringbone.AllowReflect), 8,
		"an asymmetric tetromino has four rotations per handedness")

	_, ok = FindTile(tiles, "no such tile")
	assert.False(t, ok)
}

func TestDemoPlans(t *testing.T) {
	for _, plan := range DemoPlans() {
		assert.NotEmpty(t, plan.Name)
		assert.Positive(t, plan.Problem.Board.Width)
		assert.Positive(t, plan.Problem.Board.Height)
		assert.NotEmpty(t, plan.Problem.TileTypes)
		for _, hole := range plan.Problem.Board.Holes {
			assert.True(t, plan.Problem.Board.InBounds(hole),
				"%s has a hole outside its board", plan.Name)
		}
	}
}
