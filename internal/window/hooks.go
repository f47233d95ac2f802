package window

import "github.com/cristianoliveira/objlist/internal/listmodel"

// Hooks are the host-specific parts of an object list window.
type Hooks interface {
	// FillList appends the objects to display, one add call per object.
	// It must be deterministic for a given host state.
	FillList(add func(listmodel.Item))
	// SelectInstances reacts to an explicit selection-confirm gesture.
	// It may be called repeatedly with the same items.
	SelectInstances(items []listmodel.Item)
}

// HookFuncs adapts plain functions to Hooks. Nil fields are no-ops.
type HookFuncs struct {
	Fill   func(add func(listmodel.Item))
	Select func(items []listmodel.Item)
}

// FillList calls h.Fill.
func (h HookFuncs) FillList(add func(listmodel.Item)) {
	if h.Fill != nil {
		h.Fill(add)
	}
}

// SelectInstances calls h.Select.
func (h HookFuncs) SelectInstances(items []listmodel.Item) {
	if h.Select != nil {
		h.Select(items)
	}
}
