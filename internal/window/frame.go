package window

import (
	"io"

	"github.com/cristianoliveira/objlist/internal/detail"
	"github.com/cristianoliveira/objlist/internal/persist"
)

// FrameState is the generic, savable state shared by every window.
type FrameState struct {
	X       int  `json:"x"`
	Y       int  `json:"y"`
	Width   int  `json:"width"`
	Height  int  `json:"height"`
	Visible bool `json:"visible"`
}

// Frame holds window geometry and visibility. Specialised windows embed it
// and delegate to Save/Read after writing their own prefix.
type Frame struct {
	state FrameState
}

// Location returns the top-left corner of the window.
func (f *Frame) Location() detail.Point {
	return detail.Point{X: f.state.X, Y: f.state.Y}
}

// SetLocation moves the window.
func (f *Frame) SetLocation(p detail.Point) {
	f.state.X, f.state.Y = p.X, p.Y
}

// Size returns the window width and height.
func (f *Frame) Size() (width, height int) {
	return f.state.Width, f.state.Height
}

// SetSize resizes the window. Negative values are treated as zero.
func (f *Frame) SetSize(width, height int) {
	f.state.Width, f.state.Height = max(width, 0), max(height, 0)
}

// Visible reports whether the window is shown.
func (f *Frame) Visible() bool {
	return f.state.Visible
}

// State returns a copy of the frame state.
func (f *Frame) State() FrameState {
	return f.state
}

// Save writes the frame state as the next stream value.
func (f *Frame) Save(w *persist.Writer) error {
	return w.Encode(f.state)
}

// Read replaces the frame state with the next stream value. On failure the
// state is left untouched.
func (f *Frame) Read(r *persist.Reader) error {
	var s FrameState
	if err := r.Decode(&s); err != nil {
		return err
	}
	s.Width, s.Height = max(s.Width, 0), max(s.Height, 0)
	f.state = s
	return nil
}

// Inspect decodes a stream written by ObjectListWindow.Save without a
// window to apply it to.
func Inspect(in io.Reader) (persist.SelectionSnapshot, FrameState, error) {
	pr := persist.NewReader(in)
	snap, err := pr.ReadSelection()
	if err != nil {
		return persist.SelectionSnapshot{}, FrameState{}, err
	}
	var s FrameState
	if err := pr.Decode(&s); err != nil {
		return snap, FrameState{}, err
	}
	return snap, s, nil
}
