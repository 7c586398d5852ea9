package model

import "github.com/google/uuid"

// TilePreset represents a reusable paver definition with the stock a user
// actually has on hand.
type TilePreset struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Width  int    `json:"width"`  // cells
	Height int    `json:"height"` // cells
	Stock  int    `json:"stock"`  // 0 means out of stock, UnlimitedStock means no limit
}

// NewTilePreset creates a new TilePreset with a generated ID.
func NewTilePreset(name string, width, height, stock int) TilePreset {
	return TilePreset{
		ID:     uuid.New().String()[:8],
		Name:   name,
		Width:  width,
		Height: height,
		Stock:  stock,
	}
}

// ToTileType converts a preset into a solvable tile type carrying the
// preset's stock as the count limit.
func (tp TilePreset) ToTileType() TileType {
	t := NewRectTile(tp.Name, tp.Width, tp.Height)
	if tp.Stock != UnlimitedStock {
		t.Count = Limit(tp.Stock)
	}
	return t
}

// Inventory holds the user's saved paver presets.
type Inventory struct {
	Tiles []TilePreset `json:"tiles"`
}

// DefaultInventory returns an inventory populated with common paver sizes.
func DefaultInventory() Inventory {
	return Inventory{
		Tiles: []TilePreset{
			NewTilePreset("Square 10x10", 1, 1, UnlimitedStock),
			NewTilePreset("Runner 10x20", 1, 2, UnlimitedStock),
			NewTilePreset("Runner 10x30", 1, 3, UnlimitedStock),
			NewTilePreset("Block 20x20", 2, 2, UnlimitedStock),
			NewTilePreset("Grande 20x30", 2, 3, UnlimitedStock),
		},
	}
}

// FindTileByID returns a pointer to the preset with the given ID, or nil.
func (inv *Inventory) FindTileByID(id string) *TilePreset {
	for i := range inv.Tiles {
		if inv.Tiles[i].ID == id {
			return &inv.Tiles[i]
		}
	}
	return nil
}

// FindTileByName returns a pointer to the first preset with the given name, or nil.
func (inv *Inventory) FindTileByName(name string) *TilePreset {
	for i := range inv.Tiles {
		if inv.Tiles[i].Name == name {
			return &inv.Tiles[i]
		}
	}
	return nil
}

// TileNames returns the preset names in inventory order.
func (inv *Inventory) TileNames() []string {
	names := make([]string, len(inv.Tiles))
	for i, t := range inv.Tiles {
		names[i] = t.Name
	}
	return names
}
