package engine

import (
	"math/rand"

	"github.com/piwi3910/PatioPlan/internal/model"
)

// Progress is emitted to the progress callback every progressInterval
// decision nodes. Nodes values across one solve are strictly increasing.
type Progress struct {
	Nodes int
	Found int
}

const progressInterval = 5000

// searcher runs Algorithm X over a placement table. All state lives in
// the struct and is discarded when the solve returns.
type searcher struct {
	t       *table
	covered bitset // columns already covered
	rowUsed bitset // rows used or banned
	usedBy  []int  // placements per tile type
	chosen  []int  // current partial solution, row ids

	// banned is a single contiguous trail of newly banned rows; each
	// frame remembers its base offset and pops only its own span.
	banned []int

	rng      *rand.Rand
	nodes    int
	found    int
	progress func(Progress)

	// emit receives each completed layout; returning false stops the
	// whole search.
	emit func(model.Layout) bool
}

func newSearcher(t *table, seed int64, progress func(Progress)) *searcher {
	return &searcher{
		t:        t,
		covered:  newBitset(len(t.free)),
		rowUsed:  newBitset(len(t.rows)),
		usedBy:   make([]int, len(t.stock)),
		rng:      rand.New(rand.NewSource(seed)),
		progress: progress,
	}
}

// available reports whether row r may still be chosen: not used or
// banned, and its tile type has stock remaining.
func (s *searcher) available(r int) bool {
	if s.rowUsed.get(r) {
		return false
	}
	ti := s.t.rows[r].tile
	return s.t.stock[ti] == model.UnlimitedStock || s.usedBy[ti] < s.t.stock[ti]
}

// chooseColumn scans the uncovered columns and returns the one with the
// fewest available rows (MRV), together with that count. A count of zero
// is an immediate dead end; the scan stops early at counts of one or
// less. Returns column -1 when every column is covered.
func (s *searcher) chooseColumn() (int, int) {
	best, bestCount := -1, -1
	for c := range s.t.colRows {
		if s.covered.get(c) {
			continue
		}
		n := 0
		for _, r := range s.t.colRows[c] {
			if s.available(r) {
				n++
			}
		}
		if best < 0 || n < bestCount {
			best, bestCount = c, n
			if n <= 1 {
				break
			}
		}
	}
	return best, bestCount
}

// candidates collects the rows of col that are available and whose every
// cell is still uncovered.
func (s *searcher) candidates(col int) []int {
	var cands []int
	for _, r := range s.t.colRows[col] {
		if !s.available(r) {
			continue
		}
		open := true
		for _, c := range s.t.rows[r].cols {
			if s.covered.get(c) {
				open = false
				break
			}
		}
		if open {
			cands = append(cands, r)
		}
	}
	return cands
}

// cover applies row r: marks it used, charges its tile type, bans every
// other row incident to any of its columns, and covers the columns.
// Newly banned rows go onto the shared trail; the returned mark is the
// trail offset uncover needs to restore exactly this frame.
func (s *searcher) cover(r int) int {
	mark := len(s.banned)
	rw := &s.t.rows[r]
	s.rowUsed.set(r)
	s.usedBy[rw.tile]++
	for _, c := range rw.cols {
		for _, other := range s.t.colRows[c] {
			if other == r || s.rowUsed.get(other) {
				continue
			}
			s.rowUsed.set(other)
			s.banned = append(s.banned, other)
		}
		s.covered.set(c)
	}
	s.chosen = append(s.chosen, r)
	return mark
}

// uncover inverts cover in reverse order, unbanning only the rows this
// frame banned.
func (s *searcher) uncover(r, mark int) {
	s.chosen = s.chosen[:len(s.chosen)-1]
	rw := &s.t.rows[r]
	for i := len(rw.cols) - 1; i >= 0; i-- {
		s.covered.clear(rw.cols[i])
	}
	for i := len(s.banned) - 1; i >= mark; i-- {
		s.rowUsed.clear(s.banned[i])
	}
	s.banned = s.banned[:mark]
	s.usedBy[rw.tile]--
	s.rowUsed.clear(r)
}

// shuffle is a Fisher-Yates pass over the candidate rows. The random
// order only affects which solutions are found first, never whether one
// is found.
func (s *searcher) shuffle(rows []int) {
	for i := len(rows) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		rows[i], rows[j] = rows[j], rows[i]
	}
}

func (s *searcher) tick() {
	s.nodes++
	if s.progress != nil && s.nodes%progressInterval == 0 {
		s.progress(Progress{Nodes: s.nodes, Found: s.found})
	}
}

func (s *searcher) run() {
	s.search()
}

// search descends one branching level. Single-candidate columns are
// applied iteratively in a forced-move loop without recursion; the
// per-call trail of forced frames is unwound before returning so the
// caller's state is untouched. Returns false when the emit callback
// asked to stop the whole search.
func (s *searcher) search() bool {
	type frame struct{ row, mark int }
	var forced []frame
	unwind := func() {
		for i := len(forced) - 1; i >= 0; i-- {
			s.uncover(forced[i].row, forced[i].mark)
		}
	}

	for {
		col, n := s.chooseColumn()
		if col < 0 {
			keep := s.emitSolution()
			unwind()
			return keep
		}
		s.tick()
		if n == 0 {
			unwind()
			return true
		}

		cands := s.candidates(col)
		if len(cands) == 0 {
			unwind()
			return true
		}
		if len(cands) == 1 {
			forced = append(forced, frame{cands[0], s.cover(cands[0])})
			continue
		}

		s.shuffle(cands)
		for _, r := range cands {
			mark := s.cover(r)
			keep := s.search()
			s.uncover(r, mark)
			if !keep {
				unwind()
				return false
			}
		}
		unwind()
		return true
	}
}

// emitSolution materializes the chosen rows into a layout and hands it
// to the emit callback.
func (s *searcher) emitSolution() bool {
	layout := make(model.Layout, len(s.chosen))
	for i, r := range s.chosen {
		rw := s.t.rows[r]
		cells := make([]model.Cell, len(rw.cells))
		copy(cells, rw.cells)
		layout[i] = model.Placement{Tile: rw.tile, Cells: cells}
	}
	if s.emit == nil {
		return false
	}
	return s.emit(layout)
}
