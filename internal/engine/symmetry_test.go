package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/PatioPlan/internal/model"
)

func transformNames(tfs []transform) []string {
	names := make([]string, len(tfs))
	for i, tf := range tfs {
		names[i] = tf.name
	}
	return names
}

func TestBoardTransforms_SquareNoHoles(t *testing.T) {
	tfs := boardTransforms(model.Board{Width: 4, Height: 4})
	assert.Len(t, tfs, 8, "a holeless square keeps the full D4 group")
}

func TestBoardTransforms_RectangleNoHoles(t *testing.T) {
	tfs := boardTransforms(model.Board{Width: 6, Height: 4})
	assert.ElementsMatch(t, []string{"identity", "flip-h", "flip-v", "rot180"}, transformNames(tfs))
}

func TestBoardTransforms_AsymmetricHole(t *testing.T) {
	// A hole in one corner of a square survives only the transforms that
	// fix that corner: identity and the main diagonal.
	tfs := boardTransforms(model.Board{
		Width:  3,
		Height: 3,
		Holes:  []model.Cell{{X: 0, Y: 0}},
	})
	assert.ElementsMatch(t, []string{"identity", "diag"}, transformNames(tfs))
}

func TestBoardTransforms_CentralHoleKeepsAll(t *testing.T) {
	tfs := boardTransforms(model.Board{
		Width:  3,
		Height: 3,
		Holes:  []model.Cell{{X: 1, Y: 1}},
	})
	assert.Len(t, tfs, 8, "the center cell is fixed by every D4 transform")
}

func TestBoardTransforms_OppositeCorners(t *testing.T) {
	// Opposite corners of a rectangle survive the 180-degree rotation but
	// not the axial flips.
	tfs := boardTransforms(model.Board{
		Width:  8,
		Height: 3,
		Holes:  []model.Cell{{X: 0, Y: 0}, {X: 7, Y: 2}},
	})
	assert.ElementsMatch(t, []string{"identity", "rot180"}, transformNames(tfs))
}

func TestBoardTransforms_AreBijections(t *testing.T) {
	b := model.Board{Width: 5, Height: 5}
	for _, tf := range boardTransforms(b) {
		seen := make(map[model.Cell]bool)
		for y := 0; y < b.Height; y++ {
			for x := 0; x < b.Width; x++ {
				mapped := tf.apply(model.Cell{X: x, Y: y})
				require.True(t, b.InBounds(mapped), "%s maps (%d,%d) off-board", tf.name, x, y)
				require.False(t, seen[mapped], "%s is not injective", tf.name)
				seen[mapped] = true
			}
		}
	}
}
