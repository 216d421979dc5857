// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package prize

import (
	"fmt"
	"math/rand/v2"
)

// DefaultSpecialChance is the probability of landing on the special entry
// while it is still available.
const DefaultSpecialChance = 0.01

// Source is the randomness a Selector draws from. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
func (globalSource) IntN(n int) int   { return rand.IntN(n) }

// GlobalSource returns a Source backed by the math/rand/v2 top-level
// functions, which are safe for concurrent use.
func GlobalSource() Source { return globalSource{} }

// Selector picks catalog indices. It holds no mutable state.
type Selector struct {
	catalog Catalog
	chance  float64
}

func NewSelector(catalog Catalog, chance float64) (*Selector, error) {
	if chance < 0 || chance > 1 {
		return nil, fmt.Errorf("special chance %v outside [0, 1]", chance)
	}
	if catalog.Len() == 0 {
		return nil, ErrNoSpecialEntry
	}
	return &Selector{catalog: catalog, chance: chance}, nil
}

func (s *Selector) Catalog() Catalog { return s.catalog }

func (s *Selector) Chance() float64 { return s.chance }

// Select returns one catalog index. The special index is only eligible when
// available is true, and then only with probability chance; every other
// draw is uniform over the regular pool.
func (s *Selector) Select(available bool, src Source) int {
	if available && src.Float64() < s.chance {
		return s.catalog.special
	}
	return s.catalog.regular[src.IntN(len(s.catalog.regular))]
}
