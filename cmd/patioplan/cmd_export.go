package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/PatioPlan/internal/export"
	"github.com/piwi3910/PatioPlan/internal/model"
	"github.com/piwi3910/PatioPlan/internal/project"
)

func loadSolvedPlan(path string) (model.Plan, error) {
	plan, err := project.LoadPlan(path)
	if err != nil {
		return model.Plan{}, err
	}
	if plan.Result == nil || !plan.Result.Found {
		return model.Plan{}, fmt.Errorf("plan %q is not solved yet, run 'patioplan solve' first", plan.Name)
	}
	return plan, nil
}

func runExportPDF(cmd *cobra.Command, args []string) error {
	plan, err := loadSolvedPlan(args[0])
	if err != nil {
		return err
	}
	if err := export.ExportPDF(args[1], plan); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[1])
	return nil
}

func runExportXLSX(cmd *cobra.Command, args []string) error {
	plan, err := loadSolvedPlan(args[0])
	if err != nil {
		return err
	}
	if err := export.ExportXLSX(args[1], plan); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[1])
	return nil
}

func runExportDXF(cmd *cobra.Command, args []string) error {
	plan, err := loadSolvedPlan(args[0])
	if err != nil {
		return err
	}
	if err := export.ExportDXF(args[1], plan, flagCellSize); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[1])
	return nil
}

func runExportLabels(cmd *cobra.Command, args []string) error {
	plan, err := loadSolvedPlan(args[0])
	if err != nil {
		return err
	}
	if err := export.ExportLabels(args[1], plan); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[1])
	return nil
}
