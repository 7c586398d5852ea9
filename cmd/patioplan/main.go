// PatioPlan - exact-cover patio tiling planner
//
// A command-line tool that plans whole-tile paver layouts for
// rectangular patios with obstructions, and exports the result as
// PDF, XLSX, DXF or QR label sheets.
//
// Build:
//   go build -o patioplan ./cmd/patioplan

package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
