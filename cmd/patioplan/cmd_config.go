package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/PatioPlan/internal/project"
)

func runConfigExport(cmd *cobra.Command, args []string) error {
	cfgPath, err := project.DefaultConfigPath()
	if err != nil {
		return err
	}
	cfg, err := project.LoadAppConfig(cfgPath)
	if err != nil {
		return err
	}
	inv, _, err := project.LoadOrCreateInventory()
	if err != nil {
		return err
	}

	if err := project.ExportAllData(args[0], cfg, inv); err != nil {
		return err
	}
	fmt.Printf("exported config and %d inventory tiles to %s\n", len(inv.Tiles), args[0])
	return nil
}

func runConfigImport(cmd *cobra.Command, args []string) error {
	backup, err := project.ImportAllData(args[0])
	if err != nil {
		return err
	}

	cfgPath, err := project.DefaultConfigPath()
	if err != nil {
		return err
	}
	if err := project.SaveAppConfig(cfgPath, backup.Config); err != nil {
		return err
	}

	invPath, err := project.DefaultInventoryPath()
	if err != nil {
		return err
	}
	if err := project.SaveInventory(invPath, backup.Inventory); err != nil {
		return err
	}

	fmt.Printf("restored config and %d inventory tiles from backup created %s\n",
		len(backup.Inventory.Tiles), backup.CreatedAt)
	return nil
}
