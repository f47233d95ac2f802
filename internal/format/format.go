// Package format renders the object list for CLI output.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cristianoliveira/objlist/internal/detail"
	"github.com/cristianoliveira/objlist/internal/listmodel"
	"github.com/cristianoliveira/objlist/internal/window"
)

// Row is one list row as seen by a formatter.
type Row struct {
	Index    int            `json:"index"`
	Label    string         `json:"label"`
	Selected bool           `json:"selected"`
	Fields   []detail.Field `json:"fields,omitempty"`
}

// Rows builds the rows of model. Printable items contribute their fields.
func Rows(model *listmodel.Model) []Row {
	items := model.Items()
	rows := make([]Row, len(items))
	for i, item := range items {
		rows[i] = Row{Index: i, Label: item.Label(), Selected: model.IsSelected(i)}
		if p, ok := item.(detail.Printable); ok {
			rows[i].Fields = p.Fields()
		}
	}
	return rows
}

// Formatter writes rows to w.
type Formatter interface {
	Format(rows []Row, w io.Writer) error
}

// Type names a formatter.
type Type string

const (
	// TypeSimple prints a checkbox, the index and the label per row.
	TypeSimple Type = "simple"
	// TypeTable prints a bordered table.
	TypeTable Type = "table"
	// TypeJSON prints the rows as a JSON array.
	TypeJSON Type = "json"
)

// New returns the formatter for t, or an error for an unknown type.
func New(t Type) (Formatter, error) {
	switch t {
	case "", TypeSimple:
		return simpleFormatter{}, nil
	case TypeTable:
		return tableFormatter{}, nil
	case TypeJSON:
		return jsonFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q: must be one of simple, table, json", t)
	}
}

func selectedCount(rows []Row) int {
	n := 0
	for _, r := range rows {
		if r.Selected {
			n++
		}
	}
	return n
}

type simpleFormatter struct{}

func (simpleFormatter) Format(rows []Row, w io.Writer) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, window.EmptyMessage)
		return err
	}
	for _, r := range rows {
		mark := "[ ]"
		if r.Selected {
			mark = "[x]"
		}
		if _, err := fmt.Fprintf(w, "%s %3d  %s\n", mark, r.Index, r.Label); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d items, %d selected\n", len(rows), selectedCount(rows))
	return err
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

type tableFormatter struct{}

func (tableFormatter) Format(rows []Row, w io.Writer) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, window.EmptyMessage)
		return err
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "SEL", "OBJECT").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, r := range rows {
		sel := ""
		if r.Selected {
			sel = "x"
		}
		t.Row(strconv.Itoa(r.Index), sel, r.Label)
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

type jsonFormatter struct{}

func (jsonFormatter) Format(rows []Row, w io.Writer) error {
	if rows == nil {
		rows = []Row{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
