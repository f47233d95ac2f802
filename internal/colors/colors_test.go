package colors

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	entries []string
}

func (r *recordingLogger) Debug(msg string, args ...any) { r.entries = append(r.entries, "debug:"+msg) }
func (r *recordingLogger) Info(msg string, args ...any)  { r.entries = append(r.entries, "info:"+msg) }
func (r *recordingLogger) Warn(msg string, args ...any)  { r.entries = append(r.entries, "warn:"+msg) }
func (r *recordingLogger) Error(msg string, args ...any) { r.entries = append(r.entries, "error:"+msg) }

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	restore := SetOutput(&out, &errOut)
	t.Cleanup(restore)
	return &out, &errOut
}

func TestErrorGoesToStderr(t *testing.T) {
	out, errOut := capture(t)

	Error("something went wrong")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Error:")
	assert.Contains(t, errOut.String(), "something went wrong")
}

func TestSuccessAndInfoGoToStdout(t *testing.T) {
	out, errOut := capture(t)

	Success("operation", "completed")
	Info("hello")

	assert.Contains(t, out.String(), checkmark)
	assert.Contains(t, out.String(), "operation completed")
	assert.Contains(t, out.String(), "hello")
	assert.Empty(t, errOut.String())
}

func TestQuietSuppressesInfo(t *testing.T) {
	out, errOut := capture(t)
	SetQuiet(true)
	defer SetQuiet(false)

	Info("hidden")
	Success("hidden")
	Warning("shown")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "shown")
}

func TestDebugIsGated(t *testing.T) {
	_, errOut := capture(t)

	SetDebug(false)
	Debug("invisible")
	assert.Empty(t, errOut.String())

	SetDebug(true)
	defer SetDebug(false)
	Debug("visible")
	assert.Contains(t, errOut.String(), "visible")
}

func TestOutputIsMirroredToLogger(t *testing.T) {
	capture(t)
	rec := &recordingLogger{}
	SetLogger(rec)
	defer SetLogger(nil)

	Warning("w")
	Error("e")
	Success("s")

	assert.Equal(t, []string{"warn:w", "error:e", "info:s"}, rec.entries)
}
