// Package render draws the object list screen: header, rows, footer and
// detail window panes.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/objlist/internal/detail"
	"github.com/cristianoliveira/objlist/internal/errors"
	"github.com/cristianoliveira/objlist/internal/listmodel"
)

const (
	cursorSymbol   = "›"
	selectedSymbol = "●"
	unselectSymbol = "○"
	paneMinWidth   = 24
	paneMaxWidth   = 60
)

var (
	headerStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	rowStyle         = lipgloss.NewStyle()
	cursorRowStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
	selectedRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	placeholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	paneStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("5")).Padding(0, 1)
	paneTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	fieldNameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	statusStyles = map[errors.MessageType]lipgloss.Style{
		errors.MessageTypeError:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		errors.MessageTypeWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		errors.MessageTypeInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		errors.MessageTypeSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}
)

// Header renders the title line with item and selection counts.
func Header(title string, items, selected, width int) string {
	if title == "" {
		title = "Objects"
	}
	line := fmt.Sprintf("%s  %d items, %d selected", title, items, selected)
	return headerStyle.Render(truncate(line, width))
}

// RowState defines the inputs needed to render one list row.
type RowState struct {
	Label    string
	Cursor   bool
	Selected bool
	Width    int
}

// Row renders one list row.
func Row(s RowState) string {
	prefix := " "
	if s.Cursor {
		prefix = cursorSymbol
	}
	mark := unselectSymbol
	if s.Selected {
		mark = selectedSymbol
	}
	line := truncate(fmt.Sprintf("%s %s %s", prefix, mark, s.Label), s.Width)

	switch {
	case s.Cursor:
		return cursorRowStyle.Render(padRight(line, s.Width))
	case s.Selected:
		return selectedRowStyle.Render(line)
	default:
		return rowStyle.Render(line)
	}
}

// Placeholder renders the message shown instead of an empty list.
func Placeholder(message string) string {
	return placeholderStyle.Render(message)
}

// FooterState defines the inputs needed to render the footer.
type FooterState struct {
	Help       string
	Status     string
	StatusType errors.MessageType
	Width      int
}

// Footer renders the status line above the help line.
func Footer(s FooterState) string {
	help := helpStyle.Render(s.Help)
	if s.Status == "" {
		return help
	}
	style, ok := statusStyles[s.StatusType]
	if !ok {
		style = rowStyle
	}
	return style.Render(truncate(s.Status, s.Width)) + "\n" + help
}

// Pane renders a detail window box listing each item and its fields.
func Pane(title string, items []listmodel.Item, width int) string {
	inner := max(paneMinWidth, min(paneMaxWidth, width-4))

	var b strings.Builder
	b.WriteString(paneTitleStyle.Render(truncate(title, inner)))
	for _, item := range items {
		b.WriteString("\n")
		b.WriteString(truncate(item.Label(), inner))
		p, ok := item.(detail.Printable)
		if !ok {
			continue
		}
		for _, f := range p.Fields() {
			b.WriteString("\n")
			b.WriteString(truncate("  "+fieldNameStyle.Render(f.Name+":")+" "+f.Value, inner))
		}
	}
	return paneStyle.Width(inner + 2).Render(b.String())
}
