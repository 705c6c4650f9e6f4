package store

import (
	"context"
	"time"

	"github.com/proctorly/itemsel/internal/catalog"
)

// CatalogRepo is the persistent item catalog. It implements
// catalog.Catalog for the candidate pool.
type CatalogRepo interface {
	catalog.Catalog

	// ReplaceAll swaps the whole catalog for the given items in one
	// transaction. Used by catalog imports.
	ReplaceAll(ctx context.Context, items []catalog.Item) error

	// Count returns the number of catalog rows, active or not.
	Count(ctx context.Context) (int, error)
}

// DecisionRecord is one row of the append-only selection decision log.
type DecisionRecord struct {
	Sequence    int64
	Timestamp   time.Time
	SessionID   string
	ItemID      string
	Strategy    string
	Breakdown   map[string]float64
	Rationale   string
	PoolSize    int
	BiasRelaxed bool
}

// DecisionRepo appends and reads selection decisions. The log is
// append-only: records are never updated or deleted.
type DecisionRepo interface {
	Append(ctx context.Context, rec *DecisionRecord) error
	Recent(ctx context.Context, limit int) ([]DecisionRecord, error)
	BySession(ctx context.Context, sessionID string) ([]DecisionRecord, error)
}

// ResponseRecord is one row of the ability-update log.
type ResponseRecord struct {
	Sequence      int64
	Timestamp     time.Time
	SessionID     string
	ItemID        string
	ResponseScore float64
	ThetaBefore   float64
	ThetaAfter    float64
	SEAfter       float64
	Converged     bool
	Degraded      bool
}

// ResponseRepo appends and reads ability updates.
type ResponseRepo interface {
	Append(ctx context.Context, rec *ResponseRecord) error
	BySession(ctx context.Context, sessionID string) ([]ResponseRecord, error)
}

// SessionSnapshot is the read-only final state of a finalized session.
type SessionSnapshot struct {
	SessionID     string
	Model         string
	Theta         float64
	StandardError float64
	CILower       float64
	CIUpper       float64
	AnsweredItems []string
	FinalizedAt   time.Time
}

// SnapshotRepo persists finalized-session snapshots.
type SnapshotRepo interface {
	Save(ctx context.Context, snap *SessionSnapshot) error

	// BySession returns the snapshot for a session, or nil if the session
	// was never finalized.
	BySession(ctx context.Context, sessionID string) (*SessionSnapshot, error)
}
