package model

// BuiltinTiles returns the built-in paver shapes available to every plan.
// Rectangular pavers rotate; the shaped corner piece also reflects.
func BuiltinTiles() []TileType {
	square := NewRectTile("Square 10x10", 1, 1)
	runner2 := NewRectTile("Runner 10x20", 1, 2)
	runner3 := NewRectTile("Runner 10x30", 1, 3)
	block := NewRectTile("Block 20x20", 2, 2)
	grande := NewRectTile("Grande 20x30", 2, 3)

	corner := NewTileType("Corner L", []Cell{
		{X: 0, Y: 0},
		{X: 0, Y: 1},
		{X: 1, Y: 1},
	})
	corner.AllowReflect = true

	// Two 10x20 runners interlocked at a right angle, the repeating unit
	// of a herringbone course. Chiral, so the mirror is enumerated too.
	herringbone := NewTileType("Herringbone Pair", []Cell{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 0, Y: 1},
		{X: 0, Y: 2},
	})
	herringbone.AllowReflect = true

	return []TileType{square, runner2, runner3, block, grande, corner, herringbone}
}

// FindTile returns the first catalog tile with the given name, or false.
func FindTile(tiles []TileType, name string) (TileType, bool) {
	for _, t := range tiles {
		if t.Name == name {
			return t, true
		}
	}
	return TileType{}, false
}

// DemoPlans returns small ready-to-solve plans used by the CLI's init
// command (--demo).
func DemoPlans() []Plan {
	runner := NewRectTile("Runner 10x20", 1, 2)

	courtyard := NewPlan()
	courtyard.Name = "Courtyard 6x4"
	courtyard.Problem.Board = Board{Width: 6, Height: 4}
	courtyard.Problem.TileTypes = []TileType{
		NewRectTile("Runner 10x30", 1, 3),
		NewRectTile("Block 20x20", 2, 2),
	}
	courtyard.Problem.UniqueByBoardSymmetry = true

	walkway := NewPlan()
	walkway.Name = "Walkway with drain"
	walkway.Problem.Board = Board{
		Width:  8,
		Height: 3,
		Holes:  []Cell{{X: 3, Y: 1}, {X: 4, Y: 1}},
	}
	walkway.Problem.TileTypes = []TileType{runner}
	walkway.Problem.UniqueByBoardSymmetry = true

	return []Plan{courtyard, walkway}
}
