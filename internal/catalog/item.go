// Package catalog holds the item domain model and the candidate pool that
// filters the item catalog against per-session constraints.
package catalog

import (
	"context"
	"time"
)

// Default external scores applied when the catalog or scoring service
// provides none.
const (
	DefaultEffectiveness = 0.5
	DefaultBias          = 0.1
)

// Item is one assessment item with its IRT parameters and content metadata.
// Items are immutable within a session; the pool's TTL cache is the only
// refresh path.
type Item struct {
	ID             string
	Difficulty     float64 // b
	Discrimination float64 // a
	Guessing       float64 // c
	Type           string
	Skills         []string
	Technologies   []string
	Duration       time.Duration

	// Effectiveness and Bias are the externally supplied scores carried on
	// the catalog row. The scoring service may override them per request.
	Effectiveness float64
	Bias          float64

	Active bool
}

// HasTechnology reports whether the item covers any of the wanted
// technologies. An empty want list matches everything.
func (it Item) HasTechnology(want []string) bool {
	return overlaps(it.Technologies, want)
}

// CoversSkill reports whether the item overlaps any of the wanted skill
// areas. An empty want list matches everything.
func (it Item) CoversSkill(want []string) bool {
	return overlaps(it.Skills, want)
}

func overlaps(have, want []string) bool {
	if len(want) == 0 {
		return true
	}
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

// Catalog is the read-only item store collaborator. Implementations return
// only active items.
type Catalog interface {
	ActiveItems(ctx context.Context) ([]Item, error)
}
