package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTilePreset_ToTileType(t *testing.T) {
	limited := NewTilePreset("Runner", 1, 2, 12)
	tile := limited.ToTileType()
	assert.Equal(t, "Runner", tile.Name)
	assert.Equal(t, 2, tile.Area())
	require.NotNil(t, tile.Count)
	assert.Equal(t, 12, *tile.Count)

	unlimited := NewTilePreset("Square", 1, 1, UnlimitedStock)
	assert.Nil(t, unlimited.ToTileType().Count)
}

func TestInventory_Lookups(t *testing.T) {
	inv := DefaultInventory()
	require.NotEmpty(t, inv.Tiles)

	first := inv.Tiles[0]
	assert.Equal(t, &inv.Tiles[0], inv.FindTileByID(first.ID))
	assert.Equal(t, &inv.Tiles[0], inv.FindTileByName(first.Name))
	assert.Nil(t, inv.FindTileByID("missing"))
	assert.Nil(t, inv.FindTileByName("missing"))

	names := inv.TileNames()
	require.Len(t, names, len(inv.Tiles))
	assert.Equal(t, first.Name, names[0])
}
