// Package window implements the object list window: a selectable list of
// host objects that opens detail windows for the selection and saves its
// selection ahead of the generic frame state.
package window

import (
	"errors"
	"fmt"
	"io"

	"github.com/cristianoliveira/objlist/internal/detail"
	"github.com/cristianoliveira/objlist/internal/listmodel"
	"github.com/cristianoliveira/objlist/internal/logging"
	"github.com/cristianoliveira/objlist/internal/persist"
	"github.com/google/uuid"
)

// DefaultRows is the number of list rows shown at once.
const DefaultRows = 20

// ErrDisposed is returned by operations on a closed window.
var ErrDisposed = errors.New("window: disposed")

// State is the lifecycle state of a window.
type State int

const (
	Hidden State = iota
	Displayed
	// Disposed is terminal.
	Disposed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Displayed:
		return "displayed"
	case Disposed:
		return "disposed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Options configures an ObjectListWindow.
type Options struct {
	// Title is the window title.
	Title string
	// DetailTitle is passed to detail windows. Defaults to detail.DefaultTitle.
	DetailTitle string
	// Factory creates detail windows.
	Factory detail.Factory
	// DetailOffset places detail windows relative to this window.
	// Zero means detail.DefaultOffset.
	DetailOffset detail.Point
	// Rows is the visible row count. Zero means DefaultRows.
	Rows int
	// Logger defaults to the global logger.
	Logger logging.Logger
}

// ObjectListWindow composes the list model and the detail registry.
// It is single-owner and not safe for concurrent use.
type ObjectListWindow struct {
	Frame

	id          string
	title       string
	detailTitle string
	rows        int
	state       State
	hooks       Hooks
	model       *listmodel.Model
	registry    *detail.Registry
	view        *View
	logger      logging.Logger
}

// New returns a hidden window driven by hooks.
func New(hooks Hooks, opts Options) *ObjectListWindow {
	if hooks == nil {
		hooks = HookFuncs{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.GetGlobal()
	}
	detailTitle := opts.DetailTitle
	if detailTitle == "" {
		detailTitle = detail.DefaultTitle
	}
	offset := opts.DetailOffset
	if offset == (detail.Point{}) {
		offset = detail.DefaultOffset
	}
	rows := opts.Rows
	if rows <= 0 {
		rows = DefaultRows
	}

	id := uuid.NewString()
	logger = logger.With("window", opts.Title, "window_id", id)
	return &ObjectListWindow{
		id:          id,
		title:       opts.Title,
		detailTitle: detailTitle,
		rows:        rows,
		state:       Hidden,
		hooks:       hooks,
		model:       listmodel.New(),
		registry: detail.NewRegistry(opts.Factory,
			detail.WithTitle(detailTitle),
			detail.WithParentID(id),
			detail.WithOffset(offset),
			detail.WithLogger(logger),
		),
		logger: logger,
	}
}

// ID returns the window identifier, used as the detail windows' parent key.
func (w *ObjectListWindow) ID() string { return w.id }

// Title returns the window title.
func (w *ObjectListWindow) Title() string { return w.title }

// DetailTitle returns the title passed to detail windows.
func (w *ObjectListWindow) DetailTitle() string { return w.detailTitle }

// Rows returns the visible row count.
func (w *ObjectListWindow) Rows() int { return w.rows }

// State returns the lifecycle state.
func (w *ObjectListWindow) State() State { return w.state }

// Model returns the list model. Callers must not keep it across Recalculate.
func (w *ObjectListWindow) Model() *listmodel.Model { return w.model }

// Details returns the detail window registry.
func (w *ObjectListWindow) Details() *detail.Registry { return w.registry }

// View returns the view built by the last recalculation, or nil before
// the first one.
func (w *ObjectListWindow) View() *View { return w.view }

// SetVisible shows or hides the window. Showing always recalculates.
func (w *ObjectListWindow) SetVisible(visible bool) error {
	if w.state == Disposed {
		return ErrDisposed
	}
	if visible {
		if err := w.Recalculate(); err != nil {
			return err
		}
		w.state = Displayed
	} else {
		w.state = Hidden
	}
	w.Frame.state.Visible = visible
	return nil
}

// Recalculate rebuilds the list from the host, rebuilds the view and
// re-attaches the activation handler. The previous view is detached first.
func (w *ObjectListWindow) Recalculate() error {
	if w.state == Disposed {
		return ErrDisposed
	}
	if w.view != nil {
		w.view.detach()
	}
	w.model.Rebuild(w.hooks.FillList)

	mode := ViewList
	if w.model.IsEmpty() {
		mode = ViewEmpty
	}
	v := newView(mode, min(w.model.Len(), w.rows))
	v.OnActivate(func() { w.SelectInstances() })
	w.view = v

	w.logger.Debug("list recalculated", "items", w.model.Len(), "view", mode.String())
	return nil
}

// Select replaces the selection. Out-of-range indices are dropped.
func (w *ObjectListWindow) Select(indices ...int) {
	if w.state == Disposed {
		return
	}
	w.model.Select(indices...)
}

// Toggle flips the selection of one row.
func (w *ObjectListWindow) Toggle(i int) {
	if w.state == Disposed {
		return
	}
	w.model.Toggle(i)
}

// InvertSelection replaces the selection with its complement.
func (w *ObjectListWindow) InvertSelection() {
	if w.state == Disposed {
		return
	}
	w.model.InvertSelection()
}

// SelectInstances hands the selected items to the host.
func (w *ObjectListWindow) SelectInstances() {
	if w.state == Disposed {
		return
	}
	w.hooks.SelectInstances(w.model.SelectedItems())
}

// ShowSelected opens a detail window for the current selection, offset from
// this window. With nothing selected it does nothing and returns nil, nil.
func (w *ObjectListWindow) ShowSelected() (detail.Window, error) {
	if w.state == Disposed {
		return nil, ErrDisposed
	}
	dw, err := w.registry.Open(w.model.SelectedItems(), w.Location())
	if errors.Is(err, detail.ErrEmptySelection) {
		return nil, nil
	}
	if err != nil {
		w.logger.Error("show selected failed", "error", err)
		return nil, err
	}
	return dw, nil
}

// Close disposes every detail window, then the window itself. Detail
// disposal failures are returned after all windows were attempted.
// Closing a disposed window is a no-op.
func (w *ObjectListWindow) Close() error {
	if w.state == Disposed {
		return nil
	}
	err := w.registry.DisposeAll()
	if w.view != nil {
		w.view.detach()
	}
	w.state = Disposed
	w.Frame.state.Visible = false
	w.logger.Debug("window disposed")
	return err
}

// Save writes the selection, then the frame state. A failed selection
// write is logged and the frame state is still written; the returned error
// wraps persist.ErrWrite and callers may ignore it.
func (w *ObjectListWindow) Save(out io.Writer) error {
	indices := []int{}
	if w.view != nil {
		indices = w.model.SelectedIndices()
	}
	pw := persist.NewWriter(out)

	var errs []error
	if err := pw.WriteSelection(persist.NewSnapshot(indices)); err != nil {
		w.logger.Error("save selection failed", "error", err)
		errs = append(errs, err)
	}
	if err := w.Frame.Save(pw); err != nil {
		w.logger.Error("save frame failed", "error", err)
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Read restores from a stream written by Save. A missing or malformed
// selection fails the whole restore and leaves the window untouched. The
// frame state is read next and may show the window, which recalculates the
// list; the saved indices are then applied to it, dropping those that no
// longer fit.
func (w *ObjectListWindow) Read(in io.Reader) error {
	if w.state == Disposed {
		return ErrDisposed
	}
	pr := persist.NewReader(in)
	snap, err := pr.ReadSelection()
	if err != nil {
		w.logger.Error("read selection failed", "error", err)
		return err
	}

	var frameErr error
	wasVisible := w.Visible()
	if err := w.Frame.Read(pr); err != nil {
		w.logger.Error("read frame failed", "error", err)
		frameErr = err
	} else if w.Visible() != wasVisible || (w.Visible() && w.view == nil) {
		// apply the restored visibility through the lifecycle
		if err := w.SetVisible(w.Visible()); err != nil {
			return err
		}
	}

	if w.view != nil && len(snap.Indices) > 0 {
		restored := snap.Clamp(w.model.Len())
		if dropped := len(snap.Indices) - len(restored); dropped > 0 {
			w.logger.Debug("restored selection clamped", "dropped", dropped)
		}
		w.model.Select(restored...)
	}
	return frameErr
}
