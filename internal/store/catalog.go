package store

import (
	"context"
	"fmt"
	"time"

	"github.com/proctorly/itemsel/ent"
	"github.com/proctorly/itemsel/ent/item"
	"github.com/proctorly/itemsel/internal/catalog"
)

// catalogRepo implements CatalogRepo using the ent client.
type catalogRepo struct {
	client *ent.Client
}

func (r *catalogRepo) ActiveItems(ctx context.Context) ([]catalog.Item, error) {
	rows, err := r.client.Item.Query().
		Where(item.Active(true)).
		Order(ent.Asc(item.FieldDifficulty)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query active items: %w", err)
	}

	items := make([]catalog.Item, len(rows))
	for i, row := range rows {
		items[i] = entItemToItem(row)
	}
	return items, nil
}

func (r *catalogRepo) ReplaceAll(ctx context.Context, items []catalog.Item) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin catalog replace: %w", err)
	}

	if _, err := tx.Item.Delete().Exec(ctx); err != nil {
		return rollback(tx, fmt.Errorf("clear catalog: %w", err))
	}

	builders := make([]*ent.ItemCreate, len(items))
	for i, it := range items {
		builders[i] = tx.Item.Create().
			SetItemID(it.ID).
			SetDifficulty(it.Difficulty).
			SetDiscrimination(it.Discrimination).
			SetGuessing(it.Guessing).
			SetItemType(it.Type).
			SetSkills(it.Skills).
			SetTechnologies(it.Technologies).
			SetDurationSecs(int64(it.Duration / time.Second)).
			SetEffectivenessScore(it.Effectiveness).
			SetBiasScore(it.Bias).
			SetActive(it.Active)
	}
	if _, err := tx.Item.CreateBulk(builders...).Save(ctx); err != nil {
		return rollback(tx, fmt.Errorf("insert catalog: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit catalog replace: %w", err)
	}
	return nil
}

func (r *catalogRepo) Count(ctx context.Context) (int, error) {
	n, err := r.client.Item.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}

func entItemToItem(row *ent.Item) catalog.Item {
	return catalog.Item{
		ID:             row.ItemID,
		Difficulty:     row.Difficulty,
		Discrimination: row.Discrimination,
		Guessing:       row.Guessing,
		Type:           row.ItemType,
		Skills:         row.Skills,
		Technologies:   row.Technologies,
		Duration:       time.Duration(row.DurationSecs) * time.Second,
		Effectiveness:  row.EffectivenessScore,
		Bias:           row.BiasScore,
		Active:         row.Active,
	}
}

// rollback rolls the transaction back, preserving the original error.
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w (rollback: %v)", err, rerr)
	}
	return err
}
