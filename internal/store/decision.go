package store

import (
	"context"
	"fmt"
	"time"

	"github.com/proctorly/itemsel/ent"
	"github.com/proctorly/itemsel/ent/decisionevent"
)

// decisionRepo implements DecisionRepo using the ent client.
type decisionRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *decisionRepo) Append(ctx context.Context, rec *DecisionRecord) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	ts := rec.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	_, err = r.client.DecisionEvent.Create().
		SetSequence(seq).
		SetTimestamp(ts).
		SetSessionID(rec.SessionID).
		SetItemID(rec.ItemID).
		SetStrategy(rec.Strategy).
		SetBreakdown(rec.Breakdown).
		SetRationale(rec.Rationale).
		SetPoolSize(rec.PoolSize).
		SetBiasRelaxed(rec.BiasRelaxed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append decision: %w", err)
	}

	rec.Sequence = seq
	rec.Timestamp = ts
	return nil
}

func (r *decisionRepo) Recent(ctx context.Context, limit int) ([]DecisionRecord, error) {
	rows, err := r.client.DecisionEvent.Query().
		Order(ent.Desc(decisionevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent decisions: %w", err)
	}
	return decisionRecords(rows), nil
}

func (r *decisionRepo) BySession(ctx context.Context, sessionID string) ([]DecisionRecord, error) {
	rows, err := r.client.DecisionEvent.Query().
		Where(decisionevent.SessionID(sessionID)).
		Order(ent.Asc(decisionevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session decisions: %w", err)
	}
	return decisionRecords(rows), nil
}

func decisionRecords(rows []*ent.DecisionEvent) []DecisionRecord {
	recs := make([]DecisionRecord, len(rows))
	for i, row := range rows {
		recs[i] = DecisionRecord{
			Sequence:    row.Sequence,
			Timestamp:   row.Timestamp,
			SessionID:   row.SessionID,
			ItemID:      row.ItemID,
			Strategy:    row.Strategy,
			Breakdown:   row.Breakdown,
			Rationale:   row.Rationale,
			PoolSize:    row.PoolSize,
			BiasRelaxed: row.BiasRelaxed,
		}
	}
	return recs
}
