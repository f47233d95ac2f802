package errors

import (
	"bytes"
	"testing"

	"github.com/cristianoliveira/objlist/internal/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUIHandlerStoresMessages(t *testing.T) {
	var seen []Message
	h := NewTUIHandler(func(msg Message) { seen = append(seen, msg) })

	_, ok := h.GetLatest()
	assert.False(t, ok)

	h.Error("boom")
	h.Warning("careful")
	h.Info("fyi")
	h.Success("done")

	all := h.GetAll()
	require.Len(t, all, 4)
	assert.Equal(t, []MessageType{MessageTypeError, MessageTypeWarning, MessageTypeInfo, MessageTypeSuccess},
		[]MessageType{all[0].Type, all[1].Type, all[2].Type, all[3].Type})
	assert.Equal(t, all, seen)

	latest, ok := h.GetLatest()
	require.True(t, ok)
	assert.Equal(t, "done", latest.Text)

	h.Clear()
	assert.Empty(t, h.GetAll())
}

func TestTUIHandlerNilCallback(t *testing.T) {
	h := NewTUIHandler(nil)
	h.Error("no panic")
	assert.Len(t, h.GetAll(), 1)
}

func TestMessageTypeString(t *testing.T) {
	assert.Equal(t, "error", MessageTypeError.String())
	assert.Equal(t, "success", MessageTypeSuccess.String())
	assert.Equal(t, "unknown", MessageType(99).String())
}

func TestCLIHandlerPrints(t *testing.T) {
	var out, errOut bytes.Buffer
	restore := colors.SetOutput(&out, &errOut)
	defer restore()

	h := NewCLIHandler()
	h.Error("bad")
	h.Success("good")

	assert.Contains(t, errOut.String(), "bad")
	assert.Contains(t, out.String(), "good")
}
