// Package listmodel holds the ordered items of an object list window and the
// set of selected row indices.
//
// Indices are only meaningful against the item sequence that produced them.
// Rebuild clears the selection; callers that need to keep a selection across
// a rebuild must re-apply it. No operation fails on out-of-range input:
// invalid indices are dropped.
package listmodel

import "sort"

// Item is one displayable row. Identity and equality belong to the host.
type Item interface {
	Label() string
}

// Label is a plain string Item.
type Label string

// Label returns the string itself.
func (l Label) Label() string { return string(l) }

// Producer appends items to the model during Rebuild, one call to add per item.
type Producer func(add func(Item))

// Model is the list of items and the selected indices.
// The zero value is an empty model ready for use.
type Model struct {
	items    []Item
	selected map[int]struct{}
}

// New returns an empty model.
func New() *Model {
	return &Model{}
}

// Rebuild discards the current items and selection and refills the model
// from fill. A nil fill leaves the model empty.
func (m *Model) Rebuild(fill Producer) {
	m.items = nil
	m.selected = nil
	if fill == nil {
		return
	}
	fill(func(item Item) {
		m.items = append(m.items, item)
	})
}

// IsEmpty reports whether the last rebuild produced no items.
func (m *Model) IsEmpty() bool {
	return len(m.items) == 0
}

// Len returns the number of items.
func (m *Model) Len() int {
	return len(m.items)
}

// Items returns a copy of the items in display order.
func (m *Model) Items() []Item {
	out := make([]Item, len(m.items))
	copy(out, m.items)
	return out
}

// Item returns the item at index i.
func (m *Model) Item(i int) (Item, bool) {
	if !m.inRange(i) {
		return nil, false
	}
	return m.items[i], true
}

// Select replaces the selection with indices. Out-of-range indices are dropped.
func (m *Model) Select(indices ...int) {
	m.selected = nil
	for _, i := range indices {
		m.add(i)
	}
}

// Toggle flips the selection state of index i.
func (m *Model) Toggle(i int) {
	if !m.inRange(i) {
		return
	}
	if _, ok := m.selected[i]; ok {
		delete(m.selected, i)
		return
	}
	m.add(i)
}

// ClearSelection deselects every row.
func (m *Model) ClearSelection() {
	m.selected = nil
}

// IsSelected reports whether index i is selected.
func (m *Model) IsSelected(i int) bool {
	_, ok := m.selected[i]
	return ok
}

// SelectedCount returns the number of selected rows.
func (m *Model) SelectedCount() int {
	return len(m.selected)
}

// InvertSelection selects every unselected row and deselects every selected
// one, computed against the current length.
func (m *Model) InvertSelection() {
	inverted := make(map[int]struct{}, len(m.items)-len(m.selected))
	for i := range m.items {
		if _, ok := m.selected[i]; !ok {
			inverted[i] = struct{}{}
		}
	}
	m.selected = inverted
}

// SelectedIndices returns the selected indices in ascending order.
func (m *Model) SelectedIndices() []int {
	out := make([]int, 0, len(m.selected))
	for i := range m.selected {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// SelectedItems returns the selected items in ascending index order.
func (m *Model) SelectedItems() []Item {
	indices := m.SelectedIndices()
	out := make([]Item, 0, len(indices))
	for _, i := range indices {
		out = append(out, m.items[i])
	}
	return out
}

func (m *Model) add(i int) {
	if !m.inRange(i) {
		return
	}
	if m.selected == nil {
		m.selected = make(map[int]struct{})
	}
	m.selected[i] = struct{}{}
}

func (m *Model) inRange(i int) bool {
	return i >= 0 && i < len(m.items)
}
