package repository

import (
	"context"

	accountdomain "github.com/aquamitra/aquamitra/internal/account/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() accountdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, a *accountdomain.Account) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO accounts (id, account_id, country, state, city, address, pincode, occupants, password_hash, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID,
		a.AccountID,
		a.Country,
		a.State,
		a.City,
		a.Address,
		a.Pincode,
		a.Occupants,
		a.PasswordHash,
		a.CreatedAt,
		a.UpdatedAt,
	).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, a *accountdomain.Account) error {
	return db.WithContext(ctx).Exec(
		`UPDATE accounts
		 SET country = ?, state = ?, city = ?, address = ?, pincode = ?, occupants = ?, password_hash = ?, updated_at = ?
		 WHERE account_id = ?`,
		a.Country,
		a.State,
		a.City,
		a.Address,
		a.Pincode,
		a.Occupants,
		a.PasswordHash,
		a.UpdatedAt,
		a.AccountID,
	).Error
}

func (r *repo) FindByAccountID(ctx context.Context, db *gorm.DB, accountID string) (*accountdomain.Account, error) {
	var account accountdomain.Account
	err := db.WithContext(ctx).Raw(
		`SELECT id, account_id, country, state, city, address, pincode, occupants, password_hash, created_at, updated_at
		 FROM accounts WHERE account_id = ?`,
		accountID,
	).Scan(&account).Error
	if err != nil {
		return nil, err
	}
	if account.ID == 0 {
		return nil, nil
	}
	return &account, nil
}

func (r *repo) ListRefs(ctx context.Context, db *gorm.DB, filter accountdomain.JurisdictionFilter) ([]accountdomain.AccountRef, error) {
	query := `SELECT account_id, city, occupants FROM accounts WHERE country = ? AND state = ?`
	args := []any{filter.Country, filter.State}
	if filter.City != "" {
		query += " AND city = ?"
		args = append(args, filter.City)
	}
	query += " ORDER BY account_id ASC"

	var refs []accountdomain.AccountRef
	if err := db.WithContext(ctx).Raw(query, args...).Scan(&refs).Error; err != nil {
		return nil, err
	}
	return refs, nil
}

func (r *repo) DistinctCities(ctx context.Context, db *gorm.DB, country, state string) ([]string, error) {
	var cities []string
	err := db.WithContext(ctx).Raw(
		`SELECT DISTINCT city FROM accounts WHERE country = ? AND state = ? ORDER BY city ASC`,
		country,
		state,
	).Scan(&cities).Error
	if err != nil {
		return nil, err
	}
	return cities, nil
}
