package store

import (
	"context"
	"fmt"
	"time"

	"github.com/proctorly/itemsel/ent"
	"github.com/proctorly/itemsel/ent/sessionsnapshot"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Save(ctx context.Context, snap *SessionSnapshot) error {
	ts := snap.FinalizedAt
	if ts.IsZero() {
		ts = time.Now()
	}

	// Finalize is idempotent: a re-save replaces the existing snapshot.
	_, err := r.client.SessionSnapshot.Delete().
		Where(sessionsnapshot.SessionID(snap.SessionID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("replace session snapshot: %w", err)
	}

	_, err = r.client.SessionSnapshot.Create().
		SetSessionID(snap.SessionID).
		SetModel(snap.Model).
		SetTheta(snap.Theta).
		SetStandardError(snap.StandardError).
		SetCiLower(snap.CILower).
		SetCiUpper(snap.CIUpper).
		SetAnsweredItems(snap.AnsweredItems).
		SetFinalizedAt(ts).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session snapshot: %w", err)
	}

	snap.FinalizedAt = ts
	return nil
}

func (r *snapshotRepo) BySession(ctx context.Context, sessionID string) (*SessionSnapshot, error) {
	row, err := r.client.SessionSnapshot.Query().
		Where(sessionsnapshot.SessionID(sessionID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query session snapshot: %w", err)
	}

	return &SessionSnapshot{
		SessionID:     row.SessionID,
		Model:         row.Model,
		Theta:         row.Theta,
		StandardError: row.StandardError,
		CILower:       row.CiLower,
		CIUpper:       row.CiUpper,
		AnsweredItems: row.AnsweredItems,
		FinalizedAt:   row.FinalizedAt,
	}, nil
}
