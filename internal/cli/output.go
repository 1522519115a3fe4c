package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#D97706"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

type printer struct {
	w      io.Writer
	format string
}

func newPrinter(w io.Writer, format string) (*printer, error) {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return &printer{w: w, format: format}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// print renders v as JSON or YAML, or as a table of header and rows.
func (p *printer) print(v any, header []string, rows [][]string) error {
	switch p.format {
	case formatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	if len(rows) == 0 {
		_, err := fmt.Fprintln(p.w, dimStyle.Render("no items"))
		return err
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	cells := make([]string, len(header))
	for i, h := range header {
		cells[i] = pad(h, widths[i])
	}
	if _, err := fmt.Fprintln(p.w, headerStyle.Render(strings.Join(cells, "  "))); err != nil {
		return err
	}
	for _, row := range rows {
		for i, cell := range row {
			cells[i] = pad(cell, widths[i])
		}
		if _, err := fmt.Fprintln(p.w, strings.TrimRight(strings.Join(cells, "  "), " ")); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) message(format string, args ...any) error {
	if p.format != formatTable {
		return nil
	}
	_, err := fmt.Fprintf(p.w, format+"\n", args...)
	return err
}

func pad(s string, width int) string {
	return s + strings.Repeat(" ", width-len(s))
}
