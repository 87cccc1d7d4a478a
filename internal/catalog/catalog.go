// Package catalog is the registry behind the CLI: it maps pattern names to
// runnable demonstrations plus the metadata the list and info commands
// display.
//
// The registry is built explicitly by Default rather than through init-time
// side effects, so tests can also assemble small registries of their own.
// Iteration order is always name order, keeping command output stable.
package catalog

import (
	"fmt"
	"io"
	"sort"

	"github.com/mmr-tortoise/gopatterns/internal/model"
)

// Entry describes one runnable pattern demonstration.
type Entry struct {
	// Name is the unique key used on the command line, e.g. "decorator".
	Name string

	// Category is the classic grouping the pattern belongs to.
	Category model.Category

	// Summary is the one-line intent shown by the list command.
	Summary string

	// Properties are the laws the pattern's tests encode, shown by the
	// info command.
	Properties []string

	// Run executes the demonstration, writing its transcript to w.
	Run func(w io.Writer) error
}

// Catalog is a set of entries keyed by name.
type Catalog struct {
	entries map[string]Entry
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{entries: make(map[string]Entry)}
}

// Add registers an entry. Incomplete entries and duplicate names are
// programming errors, reported rather than silently merged.
func (c *Catalog) Add(e Entry) error {
	if e.Name == "" || e.Run == nil {
		return fmt.Errorf("catalog: entry %q must have a name and a run function", e.Name)
	}
	if !e.Category.IsValid() {
		return fmt.Errorf("catalog: entry %q has invalid category %q", e.Name, e.Category)
	}
	if _, exists := c.entries[e.Name]; exists {
		return fmt.Errorf("catalog: duplicate entry %q", e.Name)
	}
	c.entries[e.Name] = e
	return nil
}

// Get returns the entry for name.
func (c *Catalog) Get(name string) (Entry, bool) {
	e, ok := c.entries[name]
	return e, ok
}

// Len returns the number of registered entries.
func (c *Catalog) Len() int { return len(c.entries) }

// All returns every entry sorted by name.
func (c *Catalog) All() []Entry {
	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ByCategory returns the entries of one category sorted by name.
func (c *Catalog) ByCategory(cat model.Category) []Entry {
	var out []Entry
	for _, e := range c.All() {
		if e.Category == cat {
			out = append(out, e)
		}
	}
	return out
}
