package engine

import (
	"sort"
	"strconv"
	"strings"

	"github.com/piwi3910/PatioPlan/internal/model"
)

// canonicalKey reduces a layout to its canonical string: for every
// retained symmetry transform, the layout is mapped, ordered
// deterministically and serialized; the lexicographically smallest
// serialization wins. Two layouts related by a retained transform share
// a key.
func canonicalKey(l model.Layout, tfs []transform, b model.Board) string {
	best := ""
	for _, tf := range tfs {
		s := serializeLayout(l, tf, b)
		if best == "" || s < best {
			best = s
		}
	}
	return best
}

// canonPlacement is one placement reduced to packed cell keys.
type canonPlacement struct {
	tile int
	keys []int
}

// serializeLayout maps every placement through tf, sorts cells within
// each placement by (y, x), then sorts the placements by their cell
// sequence with the tile type as the final tiebreaker.
func serializeLayout(l model.Layout, tf transform, b model.Board) string {
	placements := make([]canonPlacement, len(l))
	for i, p := range l {
		keys := make([]int, len(p.Cells))
		for j, c := range p.Cells {
			keys[j] = tf.apply(c).Key(b.Width)
		}
		sort.Ints(keys)
		placements[i] = canonPlacement{tile: p.Tile, keys: keys}
	}

	sort.Slice(placements, func(i, j int) bool {
		a, c := placements[i], placements[j]
		for k := 0; k < len(a.keys) && k < len(c.keys); k++ {
			if a.keys[k] != c.keys[k] {
				return a.keys[k] < c.keys[k]
			}
		}
		if len(a.keys) != len(c.keys) {
			return len(a.keys) < len(c.keys)
		}
		return a.tile < c.tile
	})

	var sb strings.Builder
	for i, p := range placements {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(strconv.Itoa(p.tile))
		sb.WriteByte(':')
		for j, k := range p.keys {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(k))
		}
	}
	return sb.String()
}
