package catalog

import (
	"time"

	"github.com/proctorly/itemsel/internal/irt"
)

// Constraints narrow the candidate pool for one selection decision.
// The zero value imposes no restrictions beyond the theta scale bounds.
type Constraints struct {
	// MinDifficulty and MaxDifficulty bound item difficulty. Both zero means
	// the full scale.
	MinDifficulty float64
	MaxDifficulty float64

	// ExcludedIDs are item ids that must never be returned: already
	// answered items, retired items, and caller-supplied exclusions.
	ExcludedIDs []string

	// RequiredTechnologies, when non-empty, keeps only items matching at
	// least one technology.
	RequiredTechnologies []string

	// SkillAreas, when non-empty, keeps only items overlapping at least one
	// skill area.
	SkillAreas []string

	// PreferredTypes, when non-empty, keeps only items of the listed types.
	PreferredTypes []string

	// MaxDuration caps expected item duration. Zero means no cap.
	MaxDuration time.Duration

	// AvoidSimilar collapses items sharing a type and identical skill set to
	// a single representative, so near-duplicate questions don't crowd the
	// pool.
	AvoidSimilar bool
}

// difficultyRange resolves the effective difficulty bounds.
func (c Constraints) difficultyRange() (float64, float64) {
	lo, hi := c.MinDifficulty, c.MaxDifficulty
	if lo == 0 && hi == 0 {
		return irt.ThetaMin, irt.ThetaMax
	}
	return lo, hi
}

// excludedSet builds a lookup set over the excluded ids.
func (c Constraints) excludedSet() map[string]bool {
	if len(c.ExcludedIDs) == 0 {
		return nil
	}
	set := make(map[string]bool, len(c.ExcludedIDs))
	for _, id := range c.ExcludedIDs {
		set[id] = true
	}
	return set
}

// WithExcluded returns a copy of the constraints with extra excluded ids
// appended. The receiver is not modified.
func (c Constraints) WithExcluded(ids ...string) Constraints {
	out := c
	out.ExcludedIDs = make([]string, 0, len(c.ExcludedIDs)+len(ids))
	out.ExcludedIDs = append(out.ExcludedIDs, c.ExcludedIDs...)
	out.ExcludedIDs = append(out.ExcludedIDs, ids...)
	return out
}

// Allows reports whether a single item satisfies every constraint.
func (c Constraints) Allows(it Item) bool {
	return c.matcher()(it)
}

// matcher compiles the constraints once so pool filtering doesn't rebuild
// the exclusion set per item.
func (c Constraints) matcher() func(Item) bool {
	lo, hi := c.difficultyRange()
	excluded := c.excludedSet()
	return func(it Item) bool {
		if it.Difficulty < lo || it.Difficulty > hi {
			return false
		}
		if excluded[it.ID] {
			return false
		}
		if !it.HasTechnology(c.RequiredTechnologies) {
			return false
		}
		if !it.CoversSkill(c.SkillAreas) {
			return false
		}
		if len(c.PreferredTypes) > 0 && !containsString(c.PreferredTypes, it.Type) {
			return false
		}
		if c.MaxDuration > 0 && it.Duration > c.MaxDuration {
			return false
		}
		return true
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
