package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, account *Account) error
	Update(ctx context.Context, db *gorm.DB, account *Account) error
	FindByAccountID(ctx context.Context, db *gorm.DB, accountID string) (*Account, error)
	ListRefs(ctx context.Context, db *gorm.DB, filter JurisdictionFilter) ([]AccountRef, error)
	DistinctCities(ctx context.Context, db *gorm.DB, country, state string) ([]string, error)
}
