// Package catalog loads the objects listed by the object list window from a
// TOML file.
//
// A catalog looks like:
//
//	[[object]]
//	name = "db-primary"
//	kind = "database"
//
//	[object.fields]
//	region = "eu-west-1"
package catalog

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/cristianoliveira/objlist/internal/detail"
	"github.com/cristianoliveira/objlist/internal/listmodel"
	"github.com/pelletier/go-toml/v2"
)

// ErrNotFound is returned when the catalog file does not exist.
var ErrNotFound = errors.New("catalog not found")

// Entry is one catalog object.
type Entry struct {
	Name  string            `toml:"name"`
	Kind  string            `toml:"kind"`
	Props map[string]string `toml:"fields"`
}

// Label renders the entry as a list row.
func (e Entry) Label() string {
	if e.Kind == "" {
		return e.Name
	}
	return fmt.Sprintf("%s (%s)", e.Name, e.Kind)
}

// Fields returns name and kind first and then the extra fields sorted by name.
func (e Entry) Fields() []detail.Field {
	out := []detail.Field{{Name: "name", Value: e.Name}}
	if e.Kind != "" {
		out = append(out, detail.Field{Name: "kind", Value: e.Kind})
	}
	keys := make([]string, 0, len(e.Props))
	for k := range e.Props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, detail.Field{Name: k, Value: e.Props[k]})
	}
	return out
}

var (
	_ listmodel.Item   = Entry{}
	_ detail.Printable = Entry{}
)

// Catalog is an ordered list of entries.
type Catalog struct {
	Entries []Entry `toml:"object"`
}

// Load reads the catalog at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes catalog TOML. Entries without a name are rejected.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	for i, e := range c.Entries {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("object %d: name is required", i+1)
		}
	}
	return &c, nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Entries)
}

// Fill feeds every entry to add in file order.
func (c *Catalog) Fill(add func(listmodel.Item)) {
	if c == nil {
		return
	}
	for _, e := range c.Entries {
		add(e)
	}
}
