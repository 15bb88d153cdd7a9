package domain

import (
	"context"
	"time"

	"github.com/aquamitra/aquamitra/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, event *ConsumptionEvent) error
	ListByAccount(ctx context.Context, db *gorm.DB, accountID string, cursor *pagination.Cursor, limit int) ([]ConsumptionEvent, error)
	ListByAccountsBetween(ctx context.Context, db *gorm.DB, accountIDs []string, from, to time.Time) ([]ConsumptionEvent, error)
	SumBetween(ctx context.Context, db *gorm.DB, accountID string, from, to time.Time) (float64, error)
}
