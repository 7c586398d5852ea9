package engine

import "github.com/piwi3910/PatioPlan/internal/model"

// ComparisonScenario defines a named balance configuration to compare.
type ComparisonScenario struct {
	Name    string
	Balance model.BalanceConfig
}

// ComparisonResult holds the solve outcome and computed statistics for a
// single scenario.
type ComparisonResult struct {
	Scenario  ComparisonScenario
	Result    model.SolveResult
	TilesUsed int
	Score     float64 // 0 when the scenario ran in first-only mode
}

// CompareScenarios solves the same problem under each scenario's balance
// settings and returns the results in scenario order. Every scenario gets
// the same opts; with a nonzero Seed the scenarios then differ only in
// their configuration, while a zero Seed reseeds each solve from the clock.
func CompareScenarios(p model.Problem, scenarios []ComparisonScenario, opts Options) ([]ComparisonResult, error) {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		problem := p
		problem.Balance = scenario.Balance

		result, err := Solve(problem, opts)
		if err != nil {
			return nil, err
		}

		cr := ComparisonResult{
			Scenario:  scenario,
			Result:    result,
			TilesUsed: len(result.Layout),
		}
		if result.Score != nil {
			cr.Score = *result.Score
		}
		results = append(results, cr)
	}

	return results, nil
}

// BuildDefaultScenarios generates a set of what-if scenarios from the
// given balance settings, varying one knob at a time.
func BuildDefaultScenarios(base model.BalanceConfig) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{Name: "Current Settings", Balance: base},
	}

	firstOnly := base
	firstOnly.NoBalance = true
	scenarios = append(scenarios, ComparisonScenario{Name: "First Layout", Balance: firstOnly})

	if base.Weights.SeamPenalty > 0 {
		noSeams := base
		noSeams.NoBalance = false
		noSeams.Weights.SeamPenalty = 0
		scenarios = append(scenarios, ComparisonScenario{Name: "Ignore Seams", Balance: noSeams})
	}

	mixFocus := base
	mixFocus.NoBalance = false
	mixFocus.Weights.TileCountVariance = base.Weights.TileCountVariance * 2
	scenarios = append(scenarios, ComparisonScenario{Name: "Mix Focused", Balance: mixFocus})

	return scenarios
}
