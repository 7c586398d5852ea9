package main

import "github.com/spf13/cobra"

// --- Global Command Variables ---
var (
	flagOut      string
	flagSeed     int64
	flagProgress bool
	flagFirst    bool
	flagWidth    int
	flagHeight   int
	flagHoles    []string
	flagTiles    []string
	flagTemplate string
	flagCellSize float64
	flagDesc     string

	rootCmd = &cobra.Command{
		Use:   "patioplan",
		Short: "Plan whole-tile paver layouts for rectangular patios",
		Long: `PatioPlan solves exact-cover tiling problems: given a patio grid
with obstructions and a catalog of paver shapes with stock limits, it
finds a layout covering every free cell exactly once, optionally
choosing the most balanced one by mix, orientation, seam and
cross-joint criteria.`,
	}

	initCmd = &cobra.Command{
		Use:   "init [plan.json]",
		Short: "Create a new plan file from flags or a built-in demo",
		Args:  cobra.ExactArgs(1),
		RunE:  runInit, // Defined in cmd_plan.go
	}

	checkCmd = &cobra.Command{
		Use:   "check [plan.json]",
		Short: "Run only the pre-flight feasibility checks on a plan",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheck, // Defined in cmd_solve.go
	}

	solveCmd = &cobra.Command{
		Use:   "solve [plan.json]",
		Short: "Solve a plan and store the layout back into the file",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve, // Defined in cmd_solve.go
	}

	autofillCmd = &cobra.Command{
		Use:   "autofill [plan.json]",
		Short: "Greedily fill the plan without the exact solver (may leave gaps)",
		Args:  cobra.ExactArgs(1),
		RunE:  runAutofill, // Defined in cmd_solve.go
	}

	importCmd = &cobra.Command{
		Use:   "import [plan.json] [tiles.csv|tiles.xlsx]",
		Short: "Import a tile list from CSV or Excel into a plan",
		Args:  cobra.ExactArgs(2),
		RunE:  runImport, // Defined in cmd_plan.go
	}

	catalogCmd = &cobra.Command{
		Use:   "catalog",
		Short: "List the built-in paver shapes and saved inventory",
		RunE:  runCatalog, // Defined in cmd_plan.go
	}

	templateCmd = &cobra.Command{
		Use:   "template",
		Short: "Manage reusable plan templates",
	}
	templateSaveCmd = &cobra.Command{
		Use:   "save [plan.json] [name]",
		Short: "Save a plan's board, tiles and settings as a named template",
		Args:  cobra.ExactArgs(2),
		RunE:  runTemplateSave, // Defined in cmd_template.go
	}
	templateListCmd = &cobra.Command{
		Use:   "list",
		Short: "List the saved plan templates",
		RunE:  runTemplateList, // Defined in cmd_template.go
	}
	templateNewCmd = &cobra.Command{
		Use:   "new [name] [plan.json]",
		Short: "Create a new plan file from a saved template",
		Args:  cobra.ExactArgs(2),
		RunE:  runTemplateNew, // Defined in cmd_template.go
	}
	templateDeleteCmd = &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a saved plan template",
		Args:  cobra.ExactArgs(1),
		RunE:  runTemplateDelete, // Defined in cmd_template.go
	}

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Back up or restore the app config and paver inventory",
	}
	configExportCmd = &cobra.Command{
		Use:   "export [backup.json]",
		Short: "Export the config and inventory to a single backup file",
		Args:  cobra.ExactArgs(1),
		RunE:  runConfigExport, // Defined in cmd_config.go
	}
	configImportCmd = &cobra.Command{
		Use:   "import [backup.json]",
		Short: "Restore the config and inventory from a backup file",
		Args:  cobra.ExactArgs(1),
		RunE:  runConfigImport, // Defined in cmd_config.go
	}

	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export a solved plan to another format",
	}
	exportPDFCmd = &cobra.Command{
		Use:   "pdf [plan.json] [out.pdf]",
		Short: "Export the layout diagram and tile schedule as PDF",
		Args:  cobra.ExactArgs(2),
		RunE:  runExportPDF, // Defined in cmd_export.go
	}
	exportXLSXCmd = &cobra.Command{
		Use:   "xlsx [plan.json] [out.xlsx]",
		Short: "Export the tile schedule and layout grid as an Excel workbook",
		Args:  cobra.ExactArgs(2),
		RunE:  runExportXLSX, // Defined in cmd_export.go
	}
	exportDXFCmd = &cobra.Command{
		Use:   "dxf [plan.json] [out.dxf]",
		Short: "Export the layout outlines as a DXF drawing",
		Args:  cobra.ExactArgs(2),
		RunE:  runExportDXF, // Defined in cmd_export.go
	}
	exportLabelsCmd = &cobra.Command{
		Use:   "labels [plan.json] [out.pdf]",
		Short: "Export QR-coded placement labels as PDF",
		Args:  cobra.ExactArgs(2),
		RunE:  runExportLabels, // Defined in cmd_export.go
	}
)

func init() {
	initCmd.Flags().IntVar(&flagWidth, "width", 0, "board width in cells")
	initCmd.Flags().IntVar(&flagHeight, "height", 0, "board height in cells")
	initCmd.Flags().StringSliceVar(&flagHoles, "hole", nil, "hole cell as x,y (repeatable)")
	initCmd.Flags().StringSliceVar(&flagTiles, "tile", nil, "built-in tile name (repeatable)")
	initCmd.Flags().StringVar(&flagTemplate, "demo", "", "start from a built-in demo plan")

	solveCmd.Flags().Int64Var(&flagSeed, "seed", 0, "PRNG seed, 0 seeds from the clock")
	solveCmd.Flags().BoolVar(&flagProgress, "progress", false, "print progress every 5000 search nodes")
	solveCmd.Flags().BoolVar(&flagFirst, "first", false, "return the first layout found instead of the most balanced")
	solveCmd.Flags().StringVar(&flagOut, "out", "", "write the solved plan to this path instead of in place")

	exportDXFCmd.Flags().Float64Var(&flagCellSize, "cell-size", 100.0, "drawing size of one grid cell")

	templateSaveCmd.Flags().StringVar(&flagDesc, "description", "", "template description")

	templateCmd.AddCommand(templateSaveCmd, templateListCmd, templateNewCmd, templateDeleteCmd)
	configCmd.AddCommand(configExportCmd, configImportCmd)
	exportCmd.AddCommand(exportPDFCmd, exportXLSXCmd, exportDXFCmd, exportLabelsCmd)
	rootCmd.AddCommand(initCmd, checkCmd, solveCmd, autofillCmd, importCmd, catalogCmd, templateCmd, configCmd, exportCmd)
}
