// Package errors routes user-facing messages to the CLI or the TUI status line.
package errors

import (
	"time"

	"github.com/cristianoliveira/objlist/internal/colors"
)

// ErrorHandler is the interface for reporting messages to the user.
// Implementations decide where the message ends up.
type ErrorHandler interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
	Success(msg string)
}

// MessageType classifies a message for styling.
type MessageType int

const (
	MessageTypeError MessageType = iota
	MessageTypeWarning
	MessageTypeInfo
	MessageTypeSuccess
)

// String returns the lower-case name of the type.
func (t MessageType) String() string {
	switch t {
	case MessageTypeError:
		return "error"
	case MessageTypeWarning:
		return "warning"
	case MessageTypeInfo:
		return "info"
	case MessageTypeSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// Message is one reported message.
type Message struct {
	Text      string
	Type      MessageType
	Timestamp time.Time
}

// CLIHandler prints messages through the colors package.
type CLIHandler struct{}

// NewCLIHandler returns a handler printing to the console.
func NewCLIHandler() *CLIHandler { return &CLIHandler{} }

func (CLIHandler) Error(msg string)   { colors.Error(msg) }
func (CLIHandler) Warning(msg string) { colors.Warning(msg) }
func (CLIHandler) Info(msg string)    { colors.Info(msg) }
func (CLIHandler) Success(msg string) { colors.Success(msg) }
