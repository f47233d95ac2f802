package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/cristianoliveira/objlist/internal/detail"
	"github.com/cristianoliveira/objlist/internal/errors"
	"github.com/cristianoliveira/objlist/internal/listmodel"
	"github.com/stretchr/testify/assert"
)

type printable struct{ name string }

func (p printable) Label() string { return p.name }
func (p printable) Fields() []detail.Field {
	return []detail.Field{{Name: "owner", Value: "ops"}}
}

func TestHeader(t *testing.T) {
	out := ansi.Strip(Header("Parts", 4, 2, 80))
	assert.Equal(t, "Parts  4 items, 2 selected", out)

	out = ansi.Strip(Header("", 0, 0, 80))
	assert.True(t, strings.HasPrefix(out, "Objects"))
}

func TestRow(t *testing.T) {
	tests := []struct {
		name  string
		state RowState
		want  string
	}{
		{"plain", RowState{Label: "alpha", Width: 40}, "  ○ alpha"},
		{"selected", RowState{Label: "alpha", Selected: true, Width: 40}, "  ● alpha"},
		{"cursor", RowState{Label: "alpha", Cursor: true, Width: 12}, "› ○ alpha   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ansi.Strip(Row(tt.state)))
		})
	}
}

func TestRowTruncates(t *testing.T) {
	out := ansi.Strip(Row(RowState{Label: "a very long label indeed", Width: 10}))
	assert.Equal(t, 10, ansi.StringWidth(out))
}

func TestFooter(t *testing.T) {
	assert.Equal(t, "q quit", ansi.Strip(Footer(FooterState{Help: "q quit", Width: 80})))

	out := ansi.Strip(Footer(FooterState{Help: "q quit", Status: "saved", StatusType: errors.MessageTypeSuccess, Width: 80}))
	assert.Equal(t, "saved\nq quit", out)
}

func TestPaneListsFields(t *testing.T) {
	items := []listmodel.Item{printable{name: "db"}, listmodel.Label("cache")}
	out := ansi.Strip(Pane("Object info", items, 80))

	assert.Contains(t, out, "Object info")
	assert.Contains(t, out, "db")
	assert.Contains(t, out, "owner: ops")
	assert.Contains(t, out, "cache")
}

func TestOverlayAt(t *testing.T) {
	base := "aaaaa\nbbbbb\nccccc"
	out := OverlayAt(base, "XY\nZW", 1, 1, 5, 3)
	assert.Equal(t, "aaaaa\nbXYbb\ncZWcc", out)
}

func TestOverlayAtClipsRows(t *testing.T) {
	base := "aaa\nbbb"
	out := OverlayAt(base, "X\nY\nZ", 0, 1, 3, 2)
	assert.Equal(t, "aaa\nXbb", out)
}

func TestFit(t *testing.T) {
	x, y := Fit(30, 30, 10, 5, 80, 24)
	assert.Equal(t, 30, x)
	assert.Equal(t, 19, y)

	x, y = Fit(30, 30, 100, 50, 80, 24)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}

func TestSize(t *testing.T) {
	w, h := Size("ab\nabcd")
	assert.Equal(t, 4, w)
	assert.Equal(t, 2, h)
}
