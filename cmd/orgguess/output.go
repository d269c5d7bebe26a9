package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputAuto  = ""
	outputTable = "table"
	outputTSV   = "tsv"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

const outputFlagUsage = "Output format: table, tsv, json or yaml (default table on a terminal, tsv otherwise)"

// resolveOutput validates --output. An empty value means a table on a
// terminal and TSV when piped.
func resolveOutput(cmd *cobra.Command, value string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(value))
	switch format {
	case outputTable, outputTSV, outputJSON, outputYAML:
		return format, nil
	case outputAuto:
		if isTerminal(cmd.OutOrStdout()) {
			return outputTable, nil
		}
		return outputTSV, nil
	}
	return "", fmt.Errorf("unknown output format %q (want table, tsv, json or yaml)", value)
}

// column is one tabular field of T.
type column[T any] struct {
	title string
	right bool
	cell  func(T) string
}

// emit writes items in format. Structured formats encode the items
// themselves; tabular formats render one row per item using columns.
func emit[T any](cmd *cobra.Command, format string, items []T, columns []column[T]) error {
	if written, err := writeStructured(cmd, format, items); written {
		return err
	}
	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = make([]string, len(columns))
		for j, col := range columns {
			rows[i][j] = col.cell(item)
		}
	}
	out := cmd.OutOrStdout()
	if format == outputTSV {
		return writeTSV(out, columns, rows)
	}
	_, err := fmt.Fprintln(out, renderTable(columns, rows))
	return err
}

// writeStructured encodes v when format is json or yaml and reports whether
// it did.
func writeStructured(cmd *cobra.Command, format string, v any) (bool, error) {
	switch format {
	case outputJSON:
		return true, writeJSON(cmd, v)
	case outputYAML:
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	}
	return false, nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var tsvEscaper = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")

func writeTSV[T any](w io.Writer, columns []column[T], rows [][]string) error {
	titles := make([]string, len(columns))
	for i, col := range columns {
		titles[i] = col.title
	}
	lines := append([][]string{titles}, rows...)
	for _, line := range lines {
		cells := make([]string, len(line))
		for i, cell := range line {
			cells[i] = tsvEscaper.Replace(cell)
		}
		if _, err := io.WriteString(w, strings.Join(cells, "\t")+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func renderTable[T any](columns []column[T], rows [][]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(columns))
	configs := make([]table.ColumnConfig, len(columns))
	for i, col := range columns {
		header[i] = col.title
		configs[i] = table.ColumnConfig{Number: i + 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft}
		if col.right {
			configs[i].Align = text.AlignRight
		}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)
	for _, row := range rows {
		cells := make(table.Row, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		tw.AppendRow(cells)
	}
	return tw.Render()
}
