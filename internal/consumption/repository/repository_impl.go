package repository

import (
	"context"
	"time"

	consumptiondomain "github.com/aquamitra/aquamitra/internal/consumption/domain"
	"github.com/aquamitra/aquamitra/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() consumptiondomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, event *consumptiondomain.ConsumptionEvent) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO consumption_events (id, account_id, amount, occurred_at, metadata, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		event.ID,
		event.AccountID,
		event.Amount,
		event.OccurredAt,
		event.Metadata,
		event.CreatedAt,
	).Error
}

func (r *repo) ListByAccount(ctx context.Context, db *gorm.DB, accountID string, cursor *pagination.Cursor, limit int) ([]consumptiondomain.ConsumptionEvent, error) {
	var events []consumptiondomain.ConsumptionEvent

	query := `SELECT id, account_id, amount, occurred_at, metadata, created_at
		 FROM consumption_events WHERE account_id = ?`
	args := []any{accountID}

	if cursor != nil {
		query += ` AND (occurred_at < ? OR (occurred_at = ? AND id < ?))`
		args = append(args, cursor.OccurredAt, cursor.OccurredAt, cursor.ID)
	}
	query += ` ORDER BY occurred_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	err := db.WithContext(ctx).Raw(query, args...).Scan(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *repo) ListByAccountsBetween(ctx context.Context, db *gorm.DB, accountIDs []string, from, to time.Time) ([]consumptiondomain.ConsumptionEvent, error) {
	if len(accountIDs) == 0 {
		return nil, nil
	}

	var events []consumptiondomain.ConsumptionEvent
	err := db.WithContext(ctx).Raw(
		`SELECT id, account_id, amount, occurred_at, metadata, created_at
		 FROM consumption_events
		 WHERE account_id IN ? AND occurred_at >= ? AND occurred_at < ?
		 ORDER BY occurred_at ASC, id ASC`,
		accountIDs, from, to,
	).Scan(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *repo) SumBetween(ctx context.Context, db *gorm.DB, accountID string, from, to time.Time) (float64, error) {
	var total float64
	err := db.WithContext(ctx).Raw(
		`SELECT COALESCE(SUM(amount), 0)
		 FROM consumption_events
		 WHERE account_id = ? AND occurred_at >= ? AND occurred_at < ?`,
		accountID, from, to,
	).Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
