package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_IsFixedPoint(t *testing.T) {
	cells := []Cell{{X: 3, Y: 2}, {X: 4, Y: 2}, {X: 3, Y: 3}}

	once := Normalize(cells)
	twice := Normalize(once)

	assert.Equal(t, once, twice, "normalizing a normalized shape must be a no-op")
	assert.Equal(t, Cell{X: 0, Y: 0}, once[0], "min corner must move to the origin")
}

func TestNormalize_TranslationInvariant(t *testing.T) {
	a := []Cell{{X: 0, Y: 0}, {X: 1, Y: 0}}
	b := []Cell{{X: 7, Y: 5}, {X: 8, Y: 5}}

	assert.Equal(t, Normalize(a), Normalize(b))
}

func TestNormalize_PermutationInvariant(t *testing.T) {
	a := []Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	b := []Cell{{X: 1, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 0}}

	assert.Equal(t, Normalize(a), Normalize(b))
}

func TestRotate90(t *testing.T) {
	cells := []Cell{{X: 1, Y: 0}}
	rotated := Rotate90(cells)
	assert.Equal(t, []Cell{{X: 0, Y: 1}}, rotated)
}

func TestReflect(t *testing.T) {
	cells := []Cell{{X: 2, Y: 1}}
	assert.Equal(t, []Cell{{X: -2, Y: 1}}, Reflect(cells))
}

func TestOrientations_Domino(t *testing.T) {
	domino := []Cell{{X: 0, Y: 0}, {X: 1, Y: 0}}

	assert.Len(t, Orientations(domino, false, false), 1)
	assert.Len(t, Orientations(domino, true, false), 2, "a domino has horizontal and vertical orientations")
	assert.Len(t, Orientations(domino, true, true), 2, "reflection adds nothing for a domino")
}

func TestOrientations_Square(t *testing.T) {
	square := []Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	assert.Len(t, Orientations(square, true, true), 1, "a 2x2 square is fully symmetric")
}

func TestOrientations_SkewTetromino(t *testing.T) {
	// The S tetromino has 180-degree symmetry, so rotation yields two
	// orientations; its mirror (the Z) adds two more.
	s := []Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}}

	assert.Len(t, Orientations(s, true, false), 2)
	assert.Len(t, Orientations(s, true, true), 4)
}

func TestOrientations_OffsetIndependent(t *testing.T) {
	base := []Cell{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	shifted := []Cell{{X: 10, Y: 20}, {X: 10, Y: 21}, {X: 11, Y: 21}}

	a := Orientations(base, true, true)
	b := Orientations(shifted, true, true)
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i], b[i])
	}
}

func TestBoundingBox(t *testing.T) {
	w, h := BoundingBox([]Cell{{X: 2, Y: 3}, {X: 4, Y: 3}, {X: 3, Y: 5}})
	assert.Equal(t, 3, w)
	assert.Equal(t, 3, h)

	w, h = BoundingBox(nil)
	assert.Zero(t, w)
	assert.Zero(t, h)
}
