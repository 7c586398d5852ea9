// Package engine implements the exact-cover tiling solver: placement
// enumeration, the pre-flight infeasibility oracle, the Algorithm-X
// search with MRV branching and inventory limits, board-symmetry
// canonicalization and the balance scorer.
package engine

import (
	"fmt"
	"time"

	"github.com/piwi3910/PatioPlan/internal/model"
)

// Options carries per-solve knobs. A zero Seed means "seed from the
// clock"; any nonzero seed reproduces the search order exactly.
type Options struct {
	Seed     int64
	Progress func(Progress)
}

// NoLayoutReason is the generic reason reported when pre-flight passes
// but the search exhausts without a layout.
const NoLayoutReason = "no exact layout found"

// Solve runs one complete solve: validation, pre-flight, then either the
// first-only search or the balanced enumeration. Infeasibility is
// reported through SolveResult.Reasons; the error return is reserved for
// malformed problems and internal failures.
func Solve(p model.Problem, opts Options) (model.SolveResult, error) {
	if err := validate(p); err != nil {
		return model.SolveResult{}, err
	}

	if ok, reasons := Preflight(p); !ok {
		return model.SolveResult{Reasons: reasons}, nil
	}

	t, err := buildTable(p)
	if err != nil {
		return model.SolveResult{}, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := newSearcher(t, seed, opts.Progress)

	if p.Balance.NoBalance {
		return solveFirst(p, s)
	}
	return solveBalanced(p, s)
}

// solveFirst stops at the first exact cover. The score is nil by
// contract in this mode.
func solveFirst(p model.Problem, s *searcher) (model.SolveResult, error) {
	var first model.Layout
	s.emit = func(l model.Layout) bool {
		first = l
		s.found = 1
		return false
	}
	s.run()

	if first == nil {
		return model.SolveResult{Reasons: []string{NoLayoutReason}, Nodes: s.nodes}, nil
	}
	return model.SolveResult{Found: true, Layout: first, Nodes: s.nodes}, nil
}

// solveBalanced enumerates distinct layouts up to the cap and returns
// the one with the lowest balance score. The cap counts layouts retained
// after canonical dedup, not raw completions. Ties keep the first-found
// layout.
func solveBalanced(p model.Problem, s *searcher) (model.SolveResult, error) {
	limit := p.SolutionCap()

	tfs := identityOnly()
	if p.UniqueByBoardSymmetry {
		tfs = boardTransforms(p.Board)
	}

	seen := make(map[string]bool)
	var layouts []model.Layout
	s.emit = func(l model.Layout) bool {
		key := canonicalKey(l, tfs, p.Board)
		if seen[key] {
			return true
		}
		seen[key] = true
		layouts = append(layouts, l)
		s.found = len(layouts)
		return len(layouts) < limit
	}
	s.run()

	if len(layouts) == 0 {
		return model.SolveResult{Reasons: []string{NoLayoutReason}, Nodes: s.nodes}, nil
	}

	bestIdx := 0
	best := Score(p.Board, p.TileTypes, layouts[0], p.Balance)
	for i := 1; i < len(layouts); i++ {
		sc := Score(p.Board, p.TileTypes, layouts[i], p.Balance)
		if sc.Total < best.Total {
			best = sc
			bestIdx = i
		}
	}

	total := best.Total
	return model.SolveResult{
		Found:     true,
		Layout:    layouts[bestIdx],
		Score:     &total,
		Nodes:     s.nodes,
		Evaluated: len(layouts),
	}, nil
}

// validate rejects malformed problems. These are caller bugs, not
// infeasibility, so they surface as errors.
func validate(p model.Problem) error {
	b := p.Board
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("board dimensions must be positive, got %dx%d", b.Width, b.Height)
	}
	seen := make(map[model.Cell]bool, len(b.Holes))
	for _, hole := range b.Holes {
		if !b.InBounds(hole) {
			return fmt.Errorf("hole (%d,%d) is outside the %dx%d board", hole.X, hole.Y, b.Width, b.Height)
		}
		if seen[hole] {
			return fmt.Errorf("duplicate hole (%d,%d)", hole.X, hole.Y)
		}
		seen[hole] = true
	}
	for i, t := range p.TileTypes {
		if len(t.Base) == 0 {
			return fmt.Errorf("tile type %d (%s) has an empty shape", i, t.Name)
		}
		cells := make(map[model.Cell]bool, len(t.Base))
		for _, c := range t.Base {
			if cells[c] {
				return fmt.Errorf("tile type %d (%s) repeats cell (%d,%d)", i, t.Name, c.X, c.Y)
			}
			cells[c] = true
		}
		if t.Count != nil && *t.Count < 0 {
			return fmt.Errorf("tile type %d (%s) has a negative count", i, t.Name)
		}
	}
	return nil
}
