// Package detail tracks the detail windows opened from an object list
// selection and owns their lifecycle.
package detail

import (
	"errors"
	"fmt"

	"github.com/cristianoliveira/objlist/internal/listmodel"
	"github.com/cristianoliveira/objlist/internal/logging"
)

// ErrEmptySelection is returned by Open when there is nothing to show.
var ErrEmptySelection = errors.New("detail: empty selection")

// DefaultOffset is how far a new detail window is placed from its anchor.
var DefaultOffset = Point{X: 30, Y: 30}

// DefaultTitle is the title given to detail windows.
const DefaultTitle = "Object info"

// Point is a screen position.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p shifted by o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Window is a live detail window. The registry only needs to dispose it.
type Window interface {
	ID() string
	Dispose() error
}

// Request describes the detail window to create.
type Request struct {
	Title string
	// Items is a snapshot; later selection changes in the parent do not
	// reach it.
	Items    []listmodel.Item
	Position Point
	// ParentID identifies the owning list window. It is a lookup key, not
	// a reference.
	ParentID string
}

// Factory builds detail windows.
type Factory interface {
	Create(req Request) (Window, error)
}

// FactoryFunc adapts a function to Factory.
type FactoryFunc func(req Request) (Window, error)

// Create calls f.
func (f FactoryFunc) Create(req Request) (Window, error) { return f(req) }

// Field is one printable property of an item.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Printable items expose extra fields to detail windows.
type Printable interface {
	listmodel.Item
	Fields() []Field
}

// Option configures a Registry.
type Option func(*Registry)

// WithTitle sets the title passed to created windows.
func WithTitle(title string) Option {
	return func(r *Registry) { r.title = title }
}

// WithParentID sets the back-reference passed to created windows.
func WithParentID(id string) Option {
	return func(r *Registry) { r.parentID = id }
}

// WithOffset sets the offset from the anchor position.
func WithOffset(offset Point) Option {
	return func(r *Registry) { r.offset = offset }
}

// WithLogger sets the logger used for disposal failures.
func WithLogger(l logging.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// Registry holds every detail window opened by one list window, in
// registration order. Windows closed elsewhere stay registered until
// DisposeAll.
type Registry struct {
	factory  Factory
	windows  []Window
	title    string
	parentID string
	offset   Point
	logger   logging.Logger
}

// NewRegistry returns an empty registry creating windows through factory.
func NewRegistry(factory Factory, opts ...Option) *Registry {
	r := &Registry{
		factory: factory,
		title:   DefaultTitle,
		offset:  DefaultOffset,
		logger:  logging.GetGlobal(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Open creates and registers a detail window for items at anchor+offset.
func (r *Registry) Open(items []listmodel.Item, anchor Point) (Window, error) {
	if len(items) == 0 {
		return nil, ErrEmptySelection
	}
	if r.factory == nil {
		return nil, errors.New("detail: no window factory")
	}
	snapshot := make([]listmodel.Item, len(items))
	copy(snapshot, items)

	w, err := r.factory.Create(Request{
		Title:    r.title,
		Items:    snapshot,
		Position: anchor.Add(r.offset),
		ParentID: r.parentID,
	})
	if err != nil {
		return nil, fmt.Errorf("detail: create window: %w", err)
	}
	r.windows = append(r.windows, w)
	r.logger.Debug("detail window opened", "id", w.ID(), "items", len(snapshot), "parent", r.parentID)
	return w, nil
}

// DisposeAll disposes every registered window in registration order and
// empties the registry. A failing window does not stop the others; all
// failures are logged and returned joined.
func (r *Registry) DisposeAll() error {
	var errs []error
	for _, w := range r.windows {
		if w == nil {
			continue
		}
		if err := w.Dispose(); err != nil {
			r.logger.Warn("detail window dispose failed", "id", w.ID(), "error", err)
			errs = append(errs, fmt.Errorf("dispose %s: %w", w.ID(), err))
		}
	}
	r.windows = nil
	return errors.Join(errs...)
}

// Len returns the number of registered windows.
func (r *Registry) Len() int {
	return len(r.windows)
}

// Windows returns the registered windows in registration order.
func (r *Registry) Windows() []Window {
	out := make([]Window, len(r.windows))
	copy(out, r.windows)
	return out
}
