package detail

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cristianoliveira/objlist/internal/listmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func items(labels ...string) []listmodel.Item {
	out := make([]listmodel.Item, len(labels))
	for i, l := range labels {
		out[i] = listmodel.Label(l)
	}
	return out
}

func newMockWindow(id string, disposeErr error) *MockWindow {
	w := new(MockWindow)
	w.On("ID").Return(id).Maybe()
	w.On("Dispose").Return(disposeErr).Maybe()
	return w
}

func TestOpenEmptySelection(t *testing.T) {
	factory := new(MockFactory)
	r := NewRegistry(factory)

	w, err := r.Open(nil, Point{})

	assert.Nil(t, w)
	assert.ErrorIs(t, err, ErrEmptySelection)
	assert.Equal(t, 0, r.Len())
	factory.AssertNotCalled(t, "Create", mock.Anything)
}

func TestOpenPositionsAndRegisters(t *testing.T) {
	factory := new(MockFactory)
	win := newMockWindow("w1", nil)
	factory.On("Create", Request{
		Title:    DefaultTitle,
		Items:    items("B", "D"),
		Position: Point{X: 130, Y: 80},
		ParentID: "parent-1",
	}).Return(win, nil).Once()

	r := NewRegistry(factory, WithParentID("parent-1"))
	got, err := r.Open(items("B", "D"), Point{X: 100, Y: 50})

	require.NoError(t, err)
	assert.Same(t, win, got)
	assert.Equal(t, 1, r.Len())
	factory.AssertExpectations(t)
}

func TestOpenSnapshotsItems(t *testing.T) {
	var captured Request
	r := NewRegistry(FactoryFunc(func(req Request) (Window, error) {
		captured = req
		return newMockWindow("w", nil), nil
	}), WithTitle("Parts"), WithOffset(Point{X: 5, Y: 7}))

	selection := items("A", "B")
	_, err := r.Open(selection, Point{X: 1, Y: 1})
	require.NoError(t, err)

	selection[0] = listmodel.Label("mutated")

	assert.Equal(t, "A", captured.Items[0].Label())
	assert.Equal(t, "Parts", captured.Title)
	assert.Equal(t, Point{X: 6, Y: 8}, captured.Position)
}

func TestOpenFactoryFailureRegistersNothing(t *testing.T) {
	factory := new(MockFactory)
	factory.On("Create", mock.Anything).Return(nil, errors.New("no screen"))

	r := NewRegistry(factory)
	_, err := r.Open(items("A"), Point{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no screen")
	assert.Equal(t, 0, r.Len())
}

func TestOpenWithoutFactory(t *testing.T) {
	r := NewRegistry(nil)
	_, err := r.Open(items("A"), Point{})
	assert.Error(t, err)
}

func TestDisposeAllEmptyIsNoop(t *testing.T) {
	r := NewRegistry(new(MockFactory))
	assert.NoError(t, r.DisposeAll())
	assert.NoError(t, r.DisposeAll())
}

func TestDisposeAllContinuesPastFailures(t *testing.T) {
	var order []string
	windows := []*MockWindow{}
	for i := 0; i < 3; i++ {
		id := fmt.Sprintf("w%d", i)
		w := new(MockWindow)
		w.On("ID").Return(id).Maybe()
		var err error
		if i == 1 {
			err = errors.New("stuck")
		}
		w.On("Dispose").Run(func(mock.Arguments) { order = append(order, id) }).Return(err).Once()
		windows = append(windows, w)
	}
	next := 0
	r := NewRegistry(FactoryFunc(func(req Request) (Window, error) {
		w := windows[next]
		next++
		return w, nil
	}))
	for i := 0; i < 3; i++ {
		_, err := r.Open(items("A"), Point{})
		require.NoError(t, err)
	}
	require.Equal(t, 3, r.Len())

	err := r.DisposeAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "stuck")
	assert.Equal(t, []string{"w0", "w1", "w2"}, order)
	assert.Equal(t, 0, r.Len())
	for _, w := range windows {
		w.AssertNumberOfCalls(t, "Dispose", 1)
	}

	// already cleared: nothing disposed twice
	require.NoError(t, r.DisposeAll())
	for _, w := range windows {
		w.AssertNumberOfCalls(t, "Dispose", 1)
	}
}

func TestWindowsReturnsRegistrationOrder(t *testing.T) {
	n := 0
	r := NewRegistry(FactoryFunc(func(req Request) (Window, error) {
		n++
		return newMockWindow(fmt.Sprintf("w%d", n), nil), nil
	}))
	_, _ = r.Open(items("A"), Point{})
	_, _ = r.Open(items("B"), Point{})

	ws := r.Windows()
	require.Len(t, ws, 2)
	assert.Equal(t, "w1", ws[0].ID())
	assert.Equal(t, "w2", ws[1].ID())
}

func TestPointAdd(t *testing.T) {
	assert.Equal(t, Point{X: 3, Y: -1}, Point{X: 1, Y: 1}.Add(Point{X: 2, Y: -2}))
}
