package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/PatioPlan/internal/model"
	"github.com/piwi3910/PatioPlan/internal/project"
)

func runTemplateSave(cmd *cobra.Command, args []string) error {
	planPath, name := args[0], args[1]

	plan, err := project.LoadPlan(planPath)
	if err != nil {
		return err
	}

	storePath, err := project.DefaultTemplatesPath()
	if err != nil {
		return err
	}
	store, err := project.LoadTemplates(storePath)
	if err != nil {
		return err
	}
	if store.FindByName(name) != nil {
		return fmt.Errorf("a template named %q already exists", name)
	}

	store.Add(model.NewPlanTemplate(name, flagDesc, plan))
	if err := project.SaveTemplates(storePath, store); err != nil {
		return err
	}
	fmt.Printf("saved template %q (%dx%d board, %d tile types)\n",
		name, plan.Problem.Board.Width, plan.Problem.Board.Height, len(plan.Problem.TileTypes))
	return nil
}

func runTemplateList(cmd *cobra.Command, args []string) error {
	storePath, err := project.DefaultTemplatesPath()
	if err != nil {
		return err
	}
	store, err := project.LoadTemplates(storePath)
	if err != nil {
		return err
	}

	if len(store.Templates) == 0 {
		fmt.Println("no templates saved, use 'patioplan template save' to create one")
		return nil
	}
	for _, t := range store.Templates {
		fmt.Printf("  %-20s %dx%d board, %d tile types", t.Name, t.Board.Width, t.Board.Height, len(t.TileTypes))
		if t.Description != "" {
			fmt.Printf("  - %s", t.Description)
		}
		fmt.Println()
	}
	return nil
}

func runTemplateNew(cmd *cobra.Command, args []string) error {
	name, planPath := args[0], args[1]

	storePath, err := project.DefaultTemplatesPath()
	if err != nil {
		return err
	}
	store, err := project.LoadTemplates(storePath)
	if err != nil {
		return err
	}

	tmpl := store.FindByName(name)
	if tmpl == nil {
		return fmt.Errorf("no template named %q, run 'patioplan template list'", name)
	}

	plan := tmpl.ToPlan(name)
	if err := project.SavePlan(planPath, plan); err != nil {
		return err
	}
	fmt.Printf("created %s from template %q\n", planPath, name)
	return nil
}

func runTemplateDelete(cmd *cobra.Command, args []string) error {
	name := args[0]

	storePath, err := project.DefaultTemplatesPath()
	if err != nil {
		return err
	}
	store, err := project.LoadTemplates(storePath)
	if err != nil {
		return err
	}

	tmpl := store.FindByName(name)
	if tmpl == nil {
		return fmt.Errorf("no template named %q", name)
	}
	store.Remove(tmpl.ID)
	if err := project.SaveTemplates(storePath, store); err != nil {
		return err
	}
	fmt.Printf("deleted template %q\n", name)
	return nil
}
