// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package prize

import (
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"testing"
)

// fixedSource replays the same values on every call.
type fixedSource struct {
	f float64
	n int
}

func (s fixedSource) Float64() float64 { return s.f }
func (s fixedSource) IntN(n int) int   { return s.n % n }

func TestSelectNeverReturnsSpecialWhenUnavailable(t *testing.T) {
	catalogs := map[string]Catalog{
		"default": DefaultCatalog(),
		"special first": mustCatalog(t, []Entry{
			{Name: "Grand", Special: true},
			{Name: "Small"},
		}),
		"special last": mustCatalog(t, []Entry{
			{Name: "Lose", Loss: true},
			{Name: "Lose", Loss: true},
			{Name: "Lose", Loss: true},
			{Name: "Grand", Special: true},
		}),
	}

	for name, catalog := range catalogs {
		t.Run(name, func(t *testing.T) {
			// Chance 1 would always pick special if availability were ignored.
			sel, err := NewSelector(catalog, 1)
			if err != nil {
				t.Fatal(err)
			}
			src := rand.New(rand.NewPCG(1, 2))

			for i := 0; i < 10000; i++ {
				if idx := sel.Select(false, src); idx == catalog.SpecialIndex() {
					t.Fatalf("trial %d: got special index %d while unavailable", i, idx)
				}
			}
		})
	}
}

func TestSelectSpecialFrequency(t *testing.T) {
	sel, err := NewSelector(DefaultCatalog(), DefaultSpecialChance)
	if err != nil {
		t.Fatal(err)
	}
	src := rand.New(rand.NewPCG(42, 7))

	const trials = 200000
	special := 0
	for i := 0; i < trials; i++ {
		if sel.Select(true, src) == DefaultCatalog().SpecialIndex() {
			special++
		}
	}

	freq := float64(special) / trials
	if math.Abs(freq-DefaultSpecialChance) > 0.003 {
		t.Errorf("special frequency %.4f, want about %.4f", freq, DefaultSpecialChance)
	}
}

func TestSelectRegularPoolIsUniform(t *testing.T) {
	catalog := DefaultCatalog()
	sel, err := NewSelector(catalog, 0)
	if err != nil {
		t.Fatal(err)
	}
	src := rand.New(rand.NewPCG(3, 4))

	const trials = 50000
	counts := make(map[int]int)
	for i := 0; i < trials; i++ {
		counts[sel.Select(true, src)]++
	}

	regular := catalog.RegularIndices()
	if len(counts) != len(regular) {
		t.Fatalf("drew %d distinct indices, want %d", len(counts), len(regular))
	}
	want := float64(trials) / float64(len(regular))
	for _, idx := range regular {
		if got := float64(counts[idx]); math.Abs(got-want) > want*0.05 {
			t.Errorf("index %d drawn %v times, want about %v", idx, got, want)
		}
	}
}

func TestSelectDeterministicSource(t *testing.T) {
	catalog := DefaultCatalog()
	sel, err := NewSelector(catalog, DefaultSpecialChance)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		available bool
		src       fixedSource
		want      int
	}{
		{"below threshold wins special", true, fixedSource{f: 0.001}, catalog.SpecialIndex()},
		{"at threshold falls to regular", true, fixedSource{f: DefaultSpecialChance, n: 0}, 0},
		{"unavailable ignores roll", false, fixedSource{f: 0, n: 2}, 2},
		{"regular pool skips special", true, fixedSource{f: 0.5, n: 3}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sel.Select(tt.available, tt.src); got != tt.want {
				t.Errorf("Select() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewSelectorRejectsBadChance(t *testing.T) {
	for _, chance := range []float64{-0.1, 1.5} {
		if _, err := NewSelector(DefaultCatalog(), chance); err == nil {
			t.Errorf("chance %v: expected error", chance)
		}
	}
	if _, err := NewSelector(Catalog{}, 0.5); err == nil {
		t.Error("empty catalog: expected error")
	}
}

func TestNewCatalog(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		wantErr error
	}{
		{"no special", []Entry{{Name: "A"}, {Name: "B"}}, ErrNoSpecialEntry},
		{"two specials", []Entry{{Name: "A", Special: true}, {Name: "B", Special: true}, {Name: "C"}}, ErrMultipleSpecialEntry},
		{"only special", []Entry{{Name: "A", Special: true}}, ErrEmptyRegularPool},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.entries)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewCatalog() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := NewCatalog([]Entry{{Name: " ", Special: true}, {Name: "B"}}); err == nil {
		t.Error("blank name: expected error")
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	if c.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", c.Len())
	}
	if got := c.Entry(c.SpecialIndex()).Name; got != "4 Combos JBs Classic" {
		t.Errorf("special entry = %q", got)
	}
	if idx, ok := c.Lookup(LossName); !ok || !c.Entry(idx).Loss {
		t.Errorf("Lookup(%q) = %d, %v", LossName, idx, ok)
	}
	if _, ok := c.Lookup("Pizza familiar"); ok {
		t.Error("Lookup of unknown prize should fail")
	}

	// Both loss slices are in the regular pool, the special one is not.
	if got, want := c.RegularIndices(), []int{0, 1, 2, 4, 5}; !slices.Equal(got, want) {
		t.Errorf("RegularIndices() = %v, want %v", got, want)
	}
	if c.SpecialIndex() != 3 {
		t.Errorf("SpecialIndex() = %d, want 3", c.SpecialIndex())
	}

	// Callers must not be able to mutate the catalog through copies.
	entries := c.Entries()
	entries[0].Name = "changed"
	regular := c.RegularIndices()
	regular[0] = c.SpecialIndex()
	if c.Entry(0).Name == "changed" || c.RegularIndices()[0] == c.SpecialIndex() {
		t.Error("catalog was mutated through a returned slice")
	}
}

func mustCatalog(t *testing.T, entries []Entry) Catalog {
	t.Helper()
	c, err := NewCatalog(entries)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return c
}
