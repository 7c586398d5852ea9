package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/PatioPlan/internal/importer"
	"github.com/piwi3910/PatioPlan/internal/model"
	"github.com/piwi3910/PatioPlan/internal/project"
)

func runInit(cmd *cobra.Command, args []string) error {
	path := args[0]

	var plan model.Plan
	if flagTemplate != "" {
		found := false
		for _, demo := range model.DemoPlans() {
			if demo.Name == flagTemplate {
				plan = demo
				found = true
				break
			}
		}
		if !found {
			var names []string
			for _, demo := range model.DemoPlans() {
				names = append(names, demo.Name)
			}
			return fmt.Errorf("unknown demo %q, available: %s", flagTemplate, strings.Join(names, ", "))
		}
	} else {
		if flagWidth <= 0 || flagHeight <= 0 {
			return fmt.Errorf("either --demo or positive --width and --height are required")
		}
		plan = model.NewPlan()
		plan.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		plan.Problem.Board = model.Board{Width: flagWidth, Height: flagHeight}
		plan.Problem.UniqueByBoardSymmetry = true

		for _, h := range flagHoles {
			cell, err := parseCell(h)
			if err != nil {
				return err
			}
			plan.Problem.Board.Holes = append(plan.Problem.Board.Holes, cell)
		}

		builtin := model.BuiltinTiles()
		for _, name := range flagTiles {
			tile, ok := model.FindTile(builtin, name)
			if !ok {
				return fmt.Errorf("unknown tile %q, run 'patioplan catalog' to list shapes", name)
			}
			plan.Problem.TileTypes = append(plan.Problem.TileTypes, tile)
		}
	}

	// New plans inherit the user's saved defaults.
	if cfgPath, err := project.DefaultConfigPath(); err == nil {
		if cfg, err := project.LoadAppConfig(cfgPath); err == nil {
			cfg.ApplyToBalance(&plan.Problem.Balance)
			plan.Seed = cfg.DefaultSeed
		}
	}

	if err := project.SavePlan(path, plan); err != nil {
		return err
	}
	fmt.Printf("created %s (%dx%d board, %d tile types)\n",
		path, plan.Problem.Board.Width, plan.Problem.Board.Height, len(plan.Problem.TileTypes))
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	planPath, tilesPath := args[0], args[1]

	plan, err := project.LoadPlan(planPath)
	if err != nil {
		return err
	}

	var result importer.ImportResult
	switch strings.ToLower(filepath.Ext(tilesPath)) {
	case ".xlsx", ".xlsm":
		result = importer.ImportXLSX(tilesPath)
	default:
		result = importer.ImportCSV(tilesPath)
	}

	for _, w := range result.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			fmt.Printf("error: %s\n", e)
		}
		return fmt.Errorf("import failed with %d errors", len(result.Errors))
	}

	plan.Problem.TileTypes = append(plan.Problem.TileTypes, result.Tiles...)
	if err := project.SavePlan(planPath, plan); err != nil {
		return err
	}
	fmt.Printf("imported %d tile types into %s\n", len(result.Tiles), planPath)
	return nil
}

func runCatalog(cmd *cobra.Command, args []string) error {
	fmt.Println("Built-in shapes:")
	for _, t := range model.BuiltinTiles() {
		w, h := model.BoundingBox(t.Base)
		traits := []string{}
		if t.AllowRotate {
			traits = append(traits, "rotates")
		}
		if t.AllowReflect {
			traits = append(traits, "reflects")
		}
		fmt.Printf("  %-16s %dx%d footprint, %d cells (%s)\n",
			t.Name, w, h, t.Area(), strings.Join(traits, ", "))
	}

	inv, _, err := project.LoadOrCreateInventory()
	if err != nil {
		fmt.Printf("inventory unavailable: %v\n", err)
		return nil
	}
	fmt.Println("Inventory:")
	for _, p := range inv.Tiles {
		stock := "unlimited"
		if p.Stock != model.UnlimitedStock {
			stock = strconv.Itoa(p.Stock)
		}
		fmt.Printf("  %-16s %dx%d, stock %s\n", p.Name, p.Width, p.Height, stock)
	}
	return nil
}

func parseCell(s string) (model.Cell, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return model.Cell{}, fmt.Errorf("invalid cell %q, expected x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return model.Cell{}, fmt.Errorf("invalid cell %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return model.Cell{}, fmt.Errorf("invalid cell %q: %w", s, err)
	}
	return model.Cell{X: x, Y: y}, nil
}
