package model

import (
	"time"

	"github.com/google/uuid"
)

// PlanTemplate represents a reusable plan configuration that captures the
// board, tile catalog and solver settings but not solve results.
type PlanTemplate struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	CreatedAt   string        `json:"created_at"`
	UpdatedAt   string        `json:"updated_at"`
	Board       Board         `json:"board"`
	TileTypes   []TileType    `json:"tile_types"`
	Unique      bool          `json:"unique_by_board_symmetry"`
	Balance     BalanceConfig `json:"balance"`
}

// NewPlanTemplate creates a template from a plan, intentionally excluding
// any solve result.
func NewPlanTemplate(name, description string, plan Plan) PlanTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return PlanTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Board:       plan.Problem.Board,
		TileTypes:   copyTileTypes(plan.Problem.TileTypes),
		Unique:      plan.Problem.UniqueByBoardSymmetry,
		Balance:     plan.Problem.Balance,
	}
}

// ToPlan creates a new Plan from this template. Tile types get fresh IDs
// so they are independent of the template.
func (t PlanTemplate) ToPlan(planName string) Plan {
	tiles := make([]TileType, len(t.TileTypes))
	for i, tt := range t.TileTypes {
		fresh := NewTileType(tt.Name, tt.Base)
		fresh.AllowRotate = tt.AllowRotate
		fresh.AllowReflect = tt.AllowReflect
		if tt.Count != nil {
			fresh.Count = Limit(*tt.Count)
		}
		tiles[i] = fresh
	}

	plan := NewPlan()
	plan.Name = planName
	plan.Problem = Problem{
		Board:                 t.Board,
		TileTypes:             tiles,
		UniqueByBoardSymmetry: t.Unique,
		Balance:               t.Balance,
	}
	return plan
}

// TemplateStore holds a collection of plan templates.
type TemplateStore struct {
	Templates []PlanTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{Templates: []PlanTemplate{}}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t PlanTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *PlanTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *PlanTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns the template names in store order.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

func copyTileTypes(tiles []TileType) []TileType {
	if tiles == nil {
		return []TileType{}
	}
	cp := make([]TileType, len(tiles))
	copy(cp, tiles)
	return cp
}
