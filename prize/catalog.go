// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package prize

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoSpecialEntry       = errors.New("catalog has no special entry")
	ErrMultipleSpecialEntry = errors.New("catalog has more than one special entry")
	ErrEmptyRegularPool     = errors.New("catalog has no regular entries")
)

// Entry is one slice of the wheel.
type Entry struct {
	Name    string `json:"name"`
	Special bool   `json:"special"`
	Loss    bool   `json:"loss"`
}

// Catalog is an immutable ordered list of wheel entries with exactly one
// special entry. Everything else forms the regular pool.
type Catalog struct {
	entries []Entry
	special int
	regular []int
}

// NewCatalog validates entries and builds a Catalog. The slice is copied.
func NewCatalog(entries []Entry) (Catalog, error) {
	c := Catalog{
		entries: make([]Entry, len(entries)),
		special: -1,
	}
	copy(c.entries, entries)

	for i, e := range c.entries {
		if strings.TrimSpace(e.Name) == "" {
			return Catalog{}, fmt.Errorf("entry %d: name is required", i)
		}
		if !e.Special {
			c.regular = append(c.regular, i)
			continue
		}
		if c.special >= 0 {
			return Catalog{}, ErrMultipleSpecialEntry
		}
		c.special = i
	}

	if c.special < 0 {
		return Catalog{}, ErrNoSpecialEntry
	}
	if len(c.regular) == 0 {
		return Catalog{}, ErrEmptyRegularPool
	}
	return c, nil
}

// DefaultCatalog returns the promotion's wheel. The loss entry appears twice
// so it is drawn twice as often as any single prize.
func DefaultCatalog() Catalog {
	c, err := NewCatalog([]Entry{
		{Name: "Papitas GRATIS"},
		{Name: "Postre GRATIS"},
		{Name: LossName, Loss: true},
		{Name: "4 Combos JBs Classic", Special: true},
		{Name: "Papas Refresco GRATIS"},
		{Name: LossName, Loss: true},
	})
	if err != nil {
		panic(err)
	}
	return c
}

// LossName is the label of the "no win" outcome.
const LossName = "Intenta de nuevo"

func (c Catalog) Len() int { return len(c.entries) }

// Entry returns the entry at index i.
func (c Catalog) Entry(i int) Entry { return c.entries[i] }

// Entries returns a copy of all entries in wheel order.
func (c Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c Catalog) SpecialIndex() int { return c.special }

// RegularIndices returns a copy of the regular pool.
func (c Catalog) RegularIndices() []int {
	out := make([]int, len(c.regular))
	copy(out, c.regular)
	return out
}

// Lookup finds the first entry with the given name.
func (c Catalog) Lookup(name string) (int, bool) {
	for i, e := range c.entries {
		if e.Name == name {
			return i, true
		}
	}
	return -1, false
}
