package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Pool defaults.
const (
	DefaultPoolCap  = 200
	DefaultCacheTTL = time.Hour
)

// PoolConfig tunes the candidate pool.
type PoolConfig struct {
	// Cap limits the number of candidates returned per load.
	Cap int

	// TTL is how long a catalog snapshot is served before a refresh is
	// attempted. Catalog content changes rarely relative to request rate,
	// so stale reads between refreshes are acceptable.
	TTL time.Duration
}

// DefaultPoolConfig returns the standard pool settings.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{Cap: DefaultPoolCap, TTL: DefaultCacheTTL}
}

// Pool filters the item catalog against session constraints. The catalog
// snapshot is cached and shared across sessions: reads are the common case,
// refreshes are rare exclusive writes, and readers may observe the
// pre-refresh snapshot without correctness impact.
type Pool struct {
	catalog Catalog
	cfg     PoolConfig
	log     *zap.Logger

	mu        sync.RWMutex
	items     []Item
	fetchedAt time.Time
	loaded    bool
}

// NewPool creates a pool over the given catalog collaborator.
func NewPool(cat Catalog, cfg PoolConfig, log *zap.Logger) *Pool {
	if cfg.Cap <= 0 {
		cfg.Cap = DefaultPoolCap
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultCacheTTL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Pool{catalog: cat, cfg: cfg, log: log}
}

// Load returns the candidate items satisfying the constraints, ordered by
// ascending difficulty and capped at the pool ceiling. The returned slice
// never contains an excluded id.
func (p *Pool) Load(ctx context.Context, c Constraints) ([]Item, error) {
	snapshot, err := p.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	match := c.matcher()
	var out []Item
	for _, it := range snapshot {
		if match(it) {
			out = append(out, it)
		}
	}

	if c.AvoidSimilar {
		out = dedupeSimilar(out)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Difficulty != out[j].Difficulty {
			return out[i].Difficulty < out[j].Difficulty
		}
		return out[i].ID < out[j].ID
	})

	if len(out) > p.cfg.Cap {
		out = out[:p.cfg.Cap]
	}
	return out, nil
}

// snapshot returns the cached catalog, refreshing it when the TTL expired.
// A failed refresh falls back to the previous snapshot; only a failure with
// no snapshot at all is returned to the caller.
func (p *Pool) snapshot(ctx context.Context) ([]Item, error) {
	p.mu.RLock()
	fresh := p.loaded && time.Since(p.fetchedAt) < p.cfg.TTL
	items := p.items
	p.mu.RUnlock()
	if fresh {
		return items, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	// Another goroutine may have refreshed while we waited for the lock.
	if p.loaded && time.Since(p.fetchedAt) < p.cfg.TTL {
		return p.items, nil
	}

	loaded, err := p.catalog.ActiveItems(ctx)
	if err != nil {
		if p.loaded {
			// DataUnavailable: degrade to the stale snapshot.
			p.log.Warn("catalog refresh failed, serving stale snapshot",
				zap.Error(err),
				zap.Time("fetched_at", p.fetchedAt))
			return p.items, nil
		}
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	p.items = loaded
	p.fetchedAt = time.Now()
	p.loaded = true
	p.log.Debug("catalog snapshot refreshed", zap.Int("items", len(loaded)))
	return p.items, nil
}

// ItemByID returns the cached catalog item with the given id. The second
// return is false when no active item has that id.
func (p *Pool) ItemByID(ctx context.Context, id string) (Item, bool, error) {
	snapshot, err := p.snapshot(ctx)
	if err != nil {
		return Item{}, false, err
	}
	for _, it := range snapshot {
		if it.ID == id {
			return it, true, nil
		}
	}
	return Item{}, false, nil
}

// Invalidate drops the cached snapshot so the next load refreshes.
func (p *Pool) Invalidate() {
	p.mu.Lock()
	p.loaded = false
	p.mu.Unlock()
}

// dedupeSimilar keeps one representative per (type, skill set) group,
// preferring the lowest item id for determinism.
func dedupeSimilar(items []Item) []Item {
	keep := make(map[string]Item, len(items))
	for _, it := range items {
		key := similarityKey(it)
		best, ok := keep[key]
		if !ok || it.ID < best.ID {
			keep[key] = it
		}
	}
	out := make([]Item, 0, len(keep))
	for _, it := range keep {
		out = append(out, it)
	}
	return out
}

func similarityKey(it Item) string {
	skills := make([]string, len(it.Skills))
	copy(skills, it.Skills)
	sort.Strings(skills)
	return it.Type + "|" + strings.Join(skills, ",")
}
