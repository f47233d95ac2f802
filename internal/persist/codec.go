// Package persist encodes window state as a positional stream of JSON values.
//
// A window stream is, in order:
//
//	{"schema":"objlist.window","version":1}
//	{"indices":[0,2]}
//	<delegated window state>
//
// The selection snapshot is a required prefix. Readers must consume values
// in the order writers produced them; the stream is not self-describing
// beyond the header.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
)

const (
	// Schema names the stream format.
	Schema = "objlist.window"
	// Version is the current stream version.
	Version = 1
)

var (
	// ErrRead marks a failure to restore state from a stream.
	ErrRead = errors.New("persist: read failed")
	// ErrWrite marks a failure to save state to a stream.
	ErrWrite = errors.New("persist: write failed")
	// ErrUnsupportedVersion is returned for streams from another schema or version.
	ErrUnsupportedVersion = errors.New("persist: unsupported stream version")
)

// Header opens every window stream.
type Header struct {
	Schema  string `json:"schema"`
	Version int    `json:"version"`
}

// SelectionSnapshot is the persisted selected-index set, ascending.
type SelectionSnapshot struct {
	Indices []int `json:"indices"`
}

// NewSnapshot returns a snapshot of indices in ascending order without
// duplicates. Negative indices are dropped.
func NewSnapshot(indices []int) SelectionSnapshot {
	return SelectionSnapshot{Indices: normalize(indices, -1)}
}

// Clamp returns the indices of s that fit a list of length n, ascending and
// without duplicates.
func (s SelectionSnapshot) Clamp(n int) []int {
	return Clamp(s.Indices, n)
}

// Clamp keeps the indices in [0, n), sorted ascending, each at most once.
func Clamp(indices []int, n int) []int {
	if n <= 0 {
		return []int{}
	}
	return normalize(indices, n)
}

// normalize sorts and dedupes indices, dropping negatives and, when limit
// is non-negative, values >= limit.
func normalize(indices []int, limit int) []int {
	seen := make(map[int]struct{}, len(indices))
	out := make([]int, 0, len(indices))
	for _, i := range indices {
		if i < 0 || (limit >= 0 && i >= limit) {
			continue
		}
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Writer writes the values of a window stream. Each value gets its own
// encoder so a failed write does not block the values after it.
type Writer struct {
	out io.Writer
}

// NewWriter returns a Writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{out: w}
}

func (w *Writer) encode(v any) error {
	return json.NewEncoder(w.out).Encode(v)
}

// WriteSelection writes the stream header followed by the snapshot.
func (w *Writer) WriteSelection(s SelectionSnapshot) error {
	if err := w.encode(Header{Schema: Schema, Version: Version}); err != nil {
		return fmt.Errorf("%w: header: %w", ErrWrite, err)
	}
	if s.Indices == nil {
		s.Indices = []int{}
	}
	if err := w.encode(s); err != nil {
		return fmt.Errorf("%w: selection: %w", ErrWrite, err)
	}
	return nil
}

// Encode writes the next delegated value.
func (w *Writer) Encode(v any) error {
	if err := w.encode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// Reader reads the values of a window stream.
type Reader struct {
	dec *json.Decoder
}

// NewReader returns a Reader on r.
func NewReader(r io.Reader) *Reader {
	return &Reader{dec: json.NewDecoder(r)}
}

// ReadSelection reads and checks the header, then reads the snapshot.
func (r *Reader) ReadSelection() (SelectionSnapshot, error) {
	var h Header
	if err := r.dec.Decode(&h); err != nil {
		return SelectionSnapshot{}, fmt.Errorf("%w: header: %w", ErrRead, err)
	}
	if h.Schema != Schema || h.Version != Version {
		return SelectionSnapshot{}, fmt.Errorf("%w: %w: %q v%d", ErrRead, ErrUnsupportedVersion, h.Schema, h.Version)
	}
	var s SelectionSnapshot
	if err := r.dec.Decode(&s); err != nil {
		return SelectionSnapshot{}, fmt.Errorf("%w: selection: %w", ErrRead, err)
	}
	if s.Indices == nil {
		return SelectionSnapshot{}, fmt.Errorf("%w: selection: missing indices", ErrRead)
	}
	return s, nil
}

// Decode reads the next delegated value into v.
func (r *Reader) Decode(v any) error {
	if err := r.dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrRead, err)
	}
	return nil
}
