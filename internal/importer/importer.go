// Package importer provides CSV and Excel import functionality for tile
// lists. It supports automatic delimiter detection, flexible column
// mapping, and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/PatioPlan/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Tiles    []model.TileType
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Name     int
	Width    int
	Height   int
	Quantity int
	Rotate   int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"name":     {"name", "label", "tile", "tile name", "paver", "description", "desc"},
	"width":    {"width", "w", "cells wide", "x"},
	"height":   {"height", "h", "cells high", "y"},
	"quantity": {"quantity", "qty", "count", "stock", "num", "amount", "pcs", "pieces"},
	"rotate":   {"rotate", "rotation", "allow rotate", "rotatable"},
}

// DetectCSVDelimiter reads the file content and determines the most likely
// CSV delimiter. It tries comma, semicolon, tab, and pipe; the delimiter
// producing the most consistent multi-column row shape wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping. It
// performs case-insensitive matching against known aliases for each
// column role. Returns the mapping and true if a header was detected, or
// a default positional mapping and false if not.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Name: -1, Width: -1, Height: -1, Quantity: -1, Rotate: -1}

	matched := 0
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				switch role {
				case "name":
					if mapping.Name < 0 {
						mapping.Name = i
						matched++
					}
				case "width":
					if mapping.Width < 0 {
						mapping.Width = i
						matched++
					}
				case "height":
					if mapping.Height < 0 {
						mapping.Height = i
						matched++
					}
				case "quantity":
					if mapping.Quantity < 0 {
						mapping.Quantity = i
						matched++
					}
				case "rotate":
					if mapping.Rotate < 0 {
						mapping.Rotate = i
						matched++
					}
				}
			}
		}
	}

	// A real header needs at least name plus one dimension.
	if mapping.Name >= 0 && (mapping.Width >= 0 || mapping.Height >= 0) {
		return mapping, true
	}
	return ColumnMapping{Name: 0, Width: 1, Height: 2, Quantity: 3, Rotate: 4}, false
}

// ImportCSV imports tile types from a CSV file.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read file: %v", err))
		return result
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = DetectCSVDelimiter(data)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot parse CSV: %v", err))
		return result
	}

	return parseRows(records)
}

// ImportXLSX imports tile types from the first sheet of an Excel workbook.
func ImportXLSX(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	return parseRows(rows)
}

// parseRows converts raw rows into tile types, skipping the header row
// when one is detected.
func parseRows(rows [][]string) ImportResult {
	result := ImportResult{}
	if len(rows) == 0 {
		result.Errors = append(result.Errors, "File contains no rows")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	start := 0
	if hasHeader {
		start = 1
	}

	for i := start; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		tile, warn, err := parseTileRow(row, mapping)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}
		if warn != "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Row %d: %s", i+1, warn))
		}
		result.Tiles = append(result.Tiles, tile)
	}

	if len(result.Tiles) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "No tile rows found")
	}
	return result
}

func parseTileRow(row []string, m ColumnMapping) (model.TileType, string, error) {
	get := func(idx int) string {
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	name := get(m.Name)
	if name == "" {
		return model.TileType{}, "", fmt.Errorf("missing tile name")
	}

	width, err := parsePositiveInt(get(m.Width))
	if err != nil {
		return model.TileType{}, "", fmt.Errorf("invalid width %q", get(m.Width))
	}
	height, err := parsePositiveInt(get(m.Height))
	if err != nil {
		return model.TileType{}, "", fmt.Errorf("invalid height %q", get(m.Height))
	}

	tile := model.NewRectTile(name, width, height)

	warn := ""
	if q := get(m.Quantity); q != "" {
		qty, err := strconv.Atoi(q)
		if err != nil || qty < 0 {
			warn = fmt.Sprintf("ignoring invalid quantity %q, treating stock as unlimited", q)
		} else {
			tile.Count = model.Limit(qty)
		}
	}

	if r := get(m.Rotate); r != "" {
		tile.AllowRotate = parseBool(r)
	}

	return tile, warn, nil
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("not positive")
	}
	return n, nil
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "1", "y", "yes", "true", "t":
		return true
	default:
		return false
	}
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
