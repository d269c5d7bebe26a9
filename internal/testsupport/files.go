package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteLines writes one text per line to path.
func WriteLines(t testing.TB, path string, lines ...string) string {
	t.Helper()
	return WriteFile(t, path, strings.Join(lines, "\n")+"\n")
}

// WriteSpreadsheet writes an XLSX file whose sheets hold the given cell
// values. Each sheet maps cell references ("A1") to values.
func WriteSpreadsheet(t testing.TB, path string, sheets map[string]map[string]string, order ...string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if len(order) == 0 {
		for name := range sheets {
			order = append(order, name)
		}
	}
	for i, name := range order {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("new sheet %s: %v", name, err)
		}
		for cell, value := range sheets[name] {
			if err := f.SetCellValue(name, cell, value); err != nil {
				t.Fatalf("set %s!%s: %v", name, cell, err)
			}
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save spreadsheet: %v", err)
	}
	return path
}
