package store

import (
	"context"
	"fmt"
	"time"

	"github.com/proctorly/itemsel/ent"
	"github.com/proctorly/itemsel/ent/responseevent"
)

// responseRepo implements ResponseRepo using the ent client.
type responseRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *responseRepo) Append(ctx context.Context, rec *ResponseRecord) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	ts := rec.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	_, err = r.client.ResponseEvent.Create().
		SetSequence(seq).
		SetTimestamp(ts).
		SetSessionID(rec.SessionID).
		SetItemID(rec.ItemID).
		SetResponseScore(rec.ResponseScore).
		SetThetaBefore(rec.ThetaBefore).
		SetThetaAfter(rec.ThetaAfter).
		SetSeAfter(rec.SEAfter).
		SetConverged(rec.Converged).
		SetDegraded(rec.Degraded).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append response: %w", err)
	}

	rec.Sequence = seq
	rec.Timestamp = ts
	return nil
}

func (r *responseRepo) BySession(ctx context.Context, sessionID string) ([]ResponseRecord, error) {
	rows, err := r.client.ResponseEvent.Query().
		Where(responseevent.SessionID(sessionID)).
		Order(ent.Asc(responseevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session responses: %w", err)
	}

	recs := make([]ResponseRecord, len(rows))
	for i, row := range rows {
		recs[i] = ResponseRecord{
			Sequence:      row.Sequence,
			Timestamp:     row.Timestamp,
			SessionID:     row.SessionID,
			ItemID:        row.ItemID,
			ResponseScore: row.ResponseScore,
			ThetaBefore:   row.ThetaBefore,
			ThetaAfter:    row.ThetaAfter,
			SEAfter:       row.SeAfter,
			Converged:     row.Converged,
			Degraded:      row.Degraded,
		}
	}
	return recs, nil
}
