package listmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillWith(labels ...string) Producer {
	return func(add func(Item)) {
		for _, l := range labels {
			add(Label(l))
		}
	}
}

func labels(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Label()
	}
	return out
}

func TestZeroValueIsEmpty(t *testing.T) {
	var m Model

	assert.True(t, m.IsEmpty())
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.SelectedIndices())
	assert.Empty(t, m.SelectedItems())
	m.InvertSelection()
	assert.Empty(t, m.SelectedIndices())
}

func TestRebuildIsIdempotentAndClearsSelection(t *testing.T) {
	m := New()
	fill := fillWith("A", "B", "C")

	m.Rebuild(fill)
	m.Select(0, 2)
	require.Equal(t, []int{0, 2}, m.SelectedIndices())

	m.Rebuild(fill)
	assert.Equal(t, []string{"A", "B", "C"}, labels(m.Items()))
	assert.Empty(t, m.SelectedIndices(), "rebuild invalidates the previous selection")

	m.Rebuild(nil)
	assert.True(t, m.IsEmpty())
}

func TestSelectDropsOutOfRange(t *testing.T) {
	m := New()
	m.Rebuild(fillWith("A", "B", "C"))

	m.Select(-1, 1, 3, 100, 1)

	assert.Equal(t, []int{1}, m.SelectedIndices())
	assert.Equal(t, 1, m.SelectedCount())

	m.Select()
	assert.Empty(t, m.SelectedIndices())
}

func TestSelectedItemsAscendingOrder(t *testing.T) {
	m := New()
	m.Rebuild(fillWith("A", "B", "C", "D", "E"))

	m.Select(4, 0, 2)

	assert.Equal(t, []int{0, 2, 4}, m.SelectedIndices())
	assert.Equal(t, []string{"A", "C", "E"}, labels(m.SelectedItems()))
}

func TestInvertSelection(t *testing.T) {
	m := New()
	m.Rebuild(fillWith("A", "B", "C", "D"))
	m.Select(1, 3)

	m.InvertSelection()
	assert.Equal(t, []int{0, 2}, m.SelectedIndices())
	assert.Equal(t, []string{"A", "C"}, labels(m.SelectedItems()))

	m.InvertSelection()
	assert.Equal(t, []int{1, 3}, m.SelectedIndices())
}

func TestInvertTwiceRestoresForAnySize(t *testing.T) {
	for size := 0; size <= 6; size++ {
		m := New()
		m.Rebuild(func(add func(Item)) {
			for i := 0; i < size; i++ {
				add(Label(string(rune('a' + i))))
			}
		})
		// every other row
		var sel []int
		for i := 0; i < size; i += 2 {
			sel = append(sel, i)
		}
		m.Select(sel...)
		before := m.SelectedIndices()

		m.InvertSelection()
		assert.Len(t, m.SelectedIndices(), size-len(before))
		m.InvertSelection()
		assert.Equal(t, before, m.SelectedIndices(), "size %d", size)
	}
}

func TestToggleAndClear(t *testing.T) {
	m := New()
	m.Rebuild(fillWith("A", "B"))

	m.Toggle(1)
	assert.True(t, m.IsSelected(1))
	m.Toggle(1)
	assert.False(t, m.IsSelected(1))
	m.Toggle(5)
	m.Toggle(-1)
	assert.Empty(t, m.SelectedIndices())

	m.Select(0, 1)
	m.ClearSelection()
	assert.Empty(t, m.SelectedIndices())
}

func TestItemLookup(t *testing.T) {
	m := New()
	m.Rebuild(fillWith("A"))

	item, ok := m.Item(0)
	require.True(t, ok)
	assert.Equal(t, "A", item.Label())

	_, ok = m.Item(1)
	assert.False(t, ok)
}

func TestItemsReturnsCopy(t *testing.T) {
	m := New()
	m.Rebuild(fillWith("A", "B"))

	items := m.Items()
	items[0] = Label("changed")

	first, _ := m.Item(0)
	assert.Equal(t, "A", first.Label())
}
