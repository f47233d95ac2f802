package state

import (
	"github.com/cristianoliveira/objlist/internal/detail"
	"github.com/cristianoliveira/objlist/internal/listmodel"
	"github.com/google/uuid"
)

// pane is a detail window drawn as an overlay box.
type pane struct {
	id       string
	title    string
	items    []listmodel.Item
	position detail.Point
	parentID string
	disposed bool
	stack    *paneStack
}

func (p *pane) ID() string { return p.id }

// Dispose removes the pane from the screen. Disposing twice is a no-op.
func (p *pane) Dispose() error {
	if p.disposed {
		return nil
	}
	p.disposed = true
	p.stack.remove(p.id)
	return nil
}

// paneStack is the detail.Factory of the TUI. It keeps the open panes in
// drawing order, newest last.
type paneStack struct {
	panes []*pane
}

var _ detail.Factory = (*paneStack)(nil)

func (s *paneStack) Create(req detail.Request) (detail.Window, error) {
	p := &pane{
		id:       uuid.NewString(),
		title:    req.Title,
		items:    req.Items,
		position: req.Position,
		parentID: req.ParentID,
		stack:    s,
	}
	s.panes = append(s.panes, p)
	return p, nil
}

func (s *paneStack) top() *pane {
	if len(s.panes) == 0 {
		return nil
	}
	return s.panes[len(s.panes)-1]
}

// closeTop disposes the newest pane and reports whether one was open.
func (s *paneStack) closeTop() bool {
	p := s.top()
	if p == nil {
		return false
	}
	_ = p.Dispose()
	return true
}

func (s *paneStack) remove(id string) {
	for i, p := range s.panes {
		if p.id == id {
			s.panes = append(s.panes[:i], s.panes[i+1:]...)
			return
		}
	}
}

func (s *paneStack) len() int { return len(s.panes) }
