package input

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX returns the non-blank cells of column in sheet, top to bottom.
// An empty sheet selects the first sheet and an empty column selects "A".
func ReadXLSX(path, sheet, column string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
		if sheet == "" {
			return nil, fmt.Errorf("no sheets found in spreadsheet")
		}
	} else if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("sheet %q not found (have %s)", sheet, strings.Join(f.GetSheetList(), ", "))
	}

	if column == "" {
		column = "A"
	}
	col, err := excelize.ColumnNameToNumber(strings.ToUpper(column))
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", column, err)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("get rows: %w", err)
	}
	var texts []string
	for _, row := range rows {
		if col > len(row) {
			continue
		}
		if cell := row[col-1]; strings.TrimSpace(cell) != "" {
			texts = append(texts, cell)
		}
	}
	return texts, nil
}
