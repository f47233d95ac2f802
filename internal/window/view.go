package window

// ViewMode is the presentation derived from the list content.
type ViewMode int

const (
	// ViewList shows the rows.
	ViewList ViewMode = iota
	// ViewEmpty shows the empty-list placeholder.
	ViewEmpty
)

// EmptyMessage is the placeholder shown instead of an empty list.
const EmptyMessage = "list is empty"

// String returns the mode name.
func (m ViewMode) String() string {
	if m == ViewEmpty {
		return "empty"
	}
	return "list"
}

// View is the presentation built by one recalculation. Detaching it drops
// its handlers, so a stale view never triggers actions.
type View struct {
	mode       ViewMode
	rows       int
	onActivate func()
}

func newView(mode ViewMode, rows int) *View {
	return &View{mode: mode, rows: rows}
}

// Mode returns the derived presentation.
func (v *View) Mode() ViewMode {
	if v == nil {
		return ViewEmpty
	}
	return v.mode
}

// Rows returns the number of rows the view was built with.
func (v *View) Rows() int {
	if v == nil {
		return 0
	}
	return v.rows
}

// OnActivate registers the handler for double-click activation, replacing
// any previous handler.
func (v *View) OnActivate(fn func()) {
	v.onActivate = fn
}

// Attached reports whether the view still has an activation handler.
func (v *View) Attached() bool {
	return v != nil && v.onActivate != nil
}

// Activate delivers a click gesture with the given click count. Only a
// multi-click activates. It reports whether the handler ran.
func (v *View) Activate(clicks int) bool {
	if v == nil || clicks < 2 || v.onActivate == nil {
		return false
	}
	v.onActivate()
	return true
}

func (v *View) detach() {
	v.onActivate = nil
}
