package engine

import "github.com/piwi3910/PatioPlan/internal/model"

// transform is one rigid symmetry of the board rectangle.
type transform struct {
	name  string
	apply func(model.Cell) model.Cell
}

// boardTransforms returns the symmetry transforms under which the free
// set is invariant. Squares start from the full D4 group, rectangles from
// the Klein four-group; a candidate survives iff it maps the hole set
// onto exactly the hole set.
func boardTransforms(b model.Board) []transform {
	w, h := b.Width, b.Height

	candidates := []transform{
		{"identity", func(c model.Cell) model.Cell { return c }},
		{"flip-h", func(c model.Cell) model.Cell { return model.Cell{X: w - 1 - c.X, Y: c.Y} }},
		{"flip-v", func(c model.Cell) model.Cell { return model.Cell{X: c.X, Y: h - 1 - c.Y} }},
		{"rot180", func(c model.Cell) model.Cell { return model.Cell{X: w - 1 - c.X, Y: h - 1 - c.Y} }},
	}
	if w == h {
		candidates = append(candidates,
			transform{"rot90", func(c model.Cell) model.Cell { return model.Cell{X: w - 1 - c.Y, Y: c.X} }},
			transform{"rot270", func(c model.Cell) model.Cell { return model.Cell{X: c.Y, Y: w - 1 - c.X} }},
			transform{"diag", func(c model.Cell) model.Cell { return model.Cell{X: c.Y, Y: c.X} }},
			transform{"anti-diag", func(c model.Cell) model.Cell { return model.Cell{X: w - 1 - c.Y, Y: w - 1 - c.X} }},
		)
	}

	holes := newBitset(w * h)
	for _, c := range b.Holes {
		holes.set(c.Key(w))
	}

	var retained []transform
	for _, tf := range candidates {
		mapped := newBitset(w * h)
		for _, c := range b.Holes {
			mapped.set(tf.apply(c).Key(w))
		}
		if mapped.equal(holes) {
			retained = append(retained, tf)
		}
	}
	return retained
}

// identityOnly is the trivial group used when symmetry dedup is off.
func identityOnly() []transform {
	return []transform{{"identity", func(c model.Cell) model.Cell { return c }}}
}
