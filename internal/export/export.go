// Package export writes the recipe snapshot to a spreadsheet.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/atomicstack/recipebox/internal/api"
	"github.com/atomicstack/recipebox/internal/format/richtext"
)

const sheetName = "Recipes"

var header = []string{"id", "item", "category", "image", "ingredients"}

// CategoryNamer resolves category ids to display names.
type CategoryNamer interface {
	Name(id api.ID) string
}

// Format is the output file type.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// FormatFor picks the format from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return FormatXLSX, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("export %s: unsupported extension (want .xlsx or .csv)", path)
	}
}

// Write stores recipes at path and returns the number of rows written.
func Write(path string, recipes []api.Recipe, names CategoryNamer) (int, error) {
	format, err := FormatFor(path)
	if err != nil {
		return 0, err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("export %s: %w", path, err)
		}
	}
	rows := Rows(recipes, names)
	switch format {
	case FormatCSV:
		err = writeCSV(path, rows)
	default:
		err = writeXLSX(path, rows)
	}
	if err != nil {
		return 0, fmt.Errorf("export %s: %w", path, err)
	}
	return len(rows), nil
}

// Rows flattens recipes into export rows. Ingredients are reduced to plain
// text, one line per list entry.
func Rows(recipes []api.Recipe, names CategoryNamer) [][]string {
	rows := make([][]string, 0, len(recipes))
	for _, r := range recipes {
		category := string(r.Category)
		if names != nil {
			if name := names.Name(r.Category); name != "" {
				category = name
			}
		}
		rows = append(rows, []string{
			string(r.ID),
			r.Item,
			category,
			r.Image,
			richtext.PlainText(r.Ingredient),
		})
	}
	return rows
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return f.Close()
}

func writeXLSX(path string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}
	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return err
	}
	if err := sw.SetRow("A1", toCells(header)); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, toCells(row)); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	return f.SaveAs(path)
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}
