package model

import "github.com/google/uuid"

// Cell is one unit square on the board grid. Coordinates start at the
// top-left origin with x growing right and y growing down.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Key packs the cell into a row-major integer index for a board of the
// given width.
func (c Cell) Key(width int) int {
	return c.Y*width + c.X
}

// Board is an axis-aligned rectangle of unit cells minus a set of holes.
// The free set is everything that is not a hole.
type Board struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Holes  []Cell `json:"holes,omitempty"`
}

// InBounds reports whether the cell lies inside the board rectangle.
func (b Board) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

// HoleSet returns the holes as a lookup set.
func (b Board) HoleSet() map[Cell]bool {
	set := make(map[Cell]bool, len(b.Holes))
	for _, h := range b.Holes {
		set[h] = true
	}
	return set
}

// FreeCells returns all non-hole cells in row-major order (y outer, x inner).
func (b Board) FreeCells() []Cell {
	holes := b.HoleSet()
	free := make([]Cell, 0, b.Width*b.Height-len(holes))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := Cell{X: x, Y: y}
			if !holes[c] {
				free = append(free, c)
			}
		}
	}
	return free
}

// FreeCount returns the number of cells the layout must cover exactly.
func (b Board) FreeCount() int {
	return b.Width*b.Height - len(b.HoleSet())
}

// UnlimitedStock marks a tile type with no stock limit.
const UnlimitedStock = -1

// TileType describes one tile shape in the catalog of a problem.
type TileType struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Base         []Cell `json:"base"`
	AllowRotate  bool   `json:"allow_rotate"`
	AllowReflect bool   `json:"allow_reflect"`
	Count        *int   `json:"count,omitempty"` // nil means unlimited stock
}

// NewTileType creates a tile type with a generated ID. Rotation is allowed
// by default; reflection and a stock limit are opt-in.
func NewTileType(name string, base []Cell) TileType {
	return TileType{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Base:        base,
		AllowRotate: true,
	}
}

// NewRectTile creates a rectangular w x h tile type.
func NewRectTile(name string, w, h int) TileType {
	base := make([]Cell, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			base = append(base, Cell{X: x, Y: y})
		}
	}
	return NewTileType(name, base)
}

// Limit returns a stock-count pointer, for assigning to TileType.Count.
func Limit(n int) *int {
	return &n
}

// Area returns the number of cells one tile of this type covers.
func (t TileType) Area() int {
	return len(t.Base)
}

// Unlimited reports whether the type has no stock limit.
func (t TileType) Unlimited() bool {
	return t.Count == nil
}

// Stock returns the remaining stock limit, or UnlimitedStock.
func (t TileType) Stock() int {
	if t.Count == nil {
		return UnlimitedStock
	}
	return *t.Count
}

// Available reports whether at least one tile of this type may be placed.
func (t TileType) Available() bool {
	return t.Count == nil || *t.Count > 0
}

// Placement is one concrete positioning of one tile orientation on the
// board. Tile indexes into the problem's tile type list.
type Placement struct {
	Tile  int    `json:"tile"`
	Cells []Cell `json:"cells"`
}

// BoundingBox returns the width and height of the placement's footprint.
func (p Placement) BoundingBox() (w, h int) {
	return BoundingBox(p.Cells)
}

// Layout is an ordered list of placements that partition the free set.
type Layout []Placement

// CellCount returns the total number of cells covered by the layout.
func (l Layout) CellCount() int {
	var n int
	for _, p := range l {
		n += len(p.Cells)
	}
	return n
}

// CountsByType tallies placements per tile type index.
func (l Layout) CountsByType() map[int]int {
	counts := make(map[int]int)
	for _, p := range l {
		counts[p.Tile]++
	}
	return counts
}

// BalanceWeights are the multipliers applied to the four score terms.
type BalanceWeights struct {
	TileCountVariance  float64 `json:"tile_count_variance"`
	OrientationBalance float64 `json:"orientation_balance"`
	SeamPenalty        float64 `json:"seam_penalty"`
	CrossJoints        float64 `json:"cross_joints"`
}

// BalanceConfig selects between first-only and balanced solving and
// carries the scoring parameters for the balanced mode.
type BalanceConfig struct {
	NoBalance              bool               `json:"no_balance"`
	Weights                BalanceWeights     `json:"weights"`
	DesiredMix             map[string]float64 `json:"desired_mix,omitempty"`
	MaxSolutionsToEvaluate int                `json:"max_solutions_to_evaluate"`
}

// DefaultMaxSolutions bounds the balanced enumeration when neither the
// balance config nor the problem cap provides a limit.
const DefaultMaxSolutions = 200

// DefaultBalance returns a balanced config with all weights at 1.
func DefaultBalance() BalanceConfig {
	return BalanceConfig{
		Weights: BalanceWeights{
			TileCountVariance:  1,
			OrientationBalance: 1,
			SeamPenalty:        1,
			CrossJoints:        1,
		},
		MaxSolutionsToEvaluate: DefaultMaxSolutions,
	}
}

// Problem is one complete solve request.
type Problem struct {
	Board                 Board         `json:"board"`
	TileTypes             []TileType    `json:"tile_types"`
	UniqueByBoardSymmetry bool          `json:"unique_by_board_symmetry"`
	Balance               BalanceConfig `json:"balance"`
	Cap                   int           `json:"cap,omitempty"` // fallback solution cap
}

// SolutionCap resolves the effective cap on distinct layouts to retain.
func (p Problem) SolutionCap() int {
	if p.Balance.NoBalance {
		return 1
	}
	if p.Balance.MaxSolutionsToEvaluate > 0 {
		return p.Balance.MaxSolutionsToEvaluate
	}
	if p.Cap > 0 {
		return p.Cap
	}
	return DefaultMaxSolutions
}

// SolveResult is the terminal outcome of one solve call. Reasons is
// non-empty exactly when the problem is infeasible; Score is nil in
// first-only mode.
type SolveResult struct {
	Found     bool     `json:"found"`
	Layout    Layout   `json:"layout,omitempty"`
	Score     *float64 `json:"score,omitempty"`
	Reasons   []string `json:"reasons,omitempty"`
	Nodes     int      `json:"nodes"`
	Evaluated int      `json:"evaluated"` // distinct layouts scored in balanced mode
}

// Infeasible reports whether the solve ended without any layout.
func (r SolveResult) Infeasible() bool {
	return len(r.Reasons) > 0
}

// Plan ties a named problem, its solver settings and its latest result
// together for save/load.
type Plan struct {
	Name    string       `json:"name"`
	Problem Problem      `json:"problem"`
	Seed    int64        `json:"seed,omitempty"`
	Result  *SolveResult `json:"result,omitempty"`
}

// NewPlan returns an empty plan with default balance settings.
func NewPlan() Plan {
	return Plan{
		Name: "Untitled",
		Problem: Problem{
			Balance: DefaultBalance(),
		},
	}
}
