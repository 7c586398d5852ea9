package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/PatioPlan/internal/autofill"
	"github.com/piwi3910/PatioPlan/internal/engine"
	"github.com/piwi3910/PatioPlan/internal/project"
)

func runCheck(cmd *cobra.Command, args []string) error {
	plan, err := project.LoadPlan(args[0])
	if err != nil {
		return err
	}

	ok, reasons := engine.Preflight(plan.Problem)
	if ok {
		fmt.Printf("%s: pre-flight passed (%d free cells)\n", plan.Name, plan.Problem.Board.FreeCount())
		return nil
	}
	fmt.Printf("%s: infeasible\n", plan.Name)
	for _, r := range reasons {
		fmt.Printf("  - %s\n", r)
	}
	return nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	path := args[0]
	plan, err := project.LoadPlan(path)
	if err != nil {
		return err
	}

	if flagSeed != 0 {
		plan.Seed = flagSeed
	}
	if flagFirst {
		plan.Problem.Balance.NoBalance = true
	}

	opts := engine.Options{Seed: plan.Seed}
	if flagProgress {
		opts.Progress = func(p engine.Progress) {
			fmt.Printf("  ... %d nodes, %d layouts\n", p.Nodes, p.Found)
		}
	}

	result, err := engine.Solve(plan.Problem, opts)
	if err != nil {
		return err
	}
	plan.Result = &result

	if result.Infeasible() {
		fmt.Printf("%s: infeasible\n", plan.Name)
		for _, r := range result.Reasons {
			fmt.Printf("  - %s\n", r)
		}
	} else {
		fmt.Printf("%s: %d tiles placed over %d free cells (%d nodes",
			plan.Name, len(result.Layout), plan.Problem.Board.FreeCount(), result.Nodes)
		if result.Score != nil {
			fmt.Printf(", best of %d layouts, score %.4f", result.Evaluated, *result.Score)
		}
		fmt.Println(")")
	}

	out := path
	if flagOut != "" {
		out = flagOut
	}
	if err := project.SavePlan(out, plan); err != nil {
		return err
	}

	rememberPlan(out)
	return nil
}

func runAutofill(cmd *cobra.Command, args []string) error {
	plan, err := project.LoadPlan(args[0])
	if err != nil {
		return err
	}

	result := autofill.Fill(plan.Problem)
	fmt.Printf("%s: greedy pass covered %d of %d free cells with %d tiles\n",
		plan.Name, result.Covered(), plan.Problem.Board.FreeCount(), len(result.Layout))
	if len(result.Uncovered) > 0 {
		var cells []string
		for _, c := range result.Uncovered {
			cells = append(cells, fmt.Sprintf("(%d,%d)", c.X, c.Y))
		}
		fmt.Printf("  uncovered: %s\n", strings.Join(cells, " "))
	}
	return nil
}

// rememberPlan records the plan path in the recent list, best effort.
func rememberPlan(path string) {
	cfgPath, err := project.DefaultConfigPath()
	if err != nil {
		return
	}
	cfg, err := project.LoadAppConfig(cfgPath)
	if err != nil {
		return
	}
	cfg.RememberPlan(path)
	_ = project.SaveAppConfig(cfgPath, cfg)
}
