package repository

import (
	"context"

	complaintdomain "github.com/aquamitra/aquamitra/internal/complaint/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() complaintdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, c *complaintdomain.Complaint) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO complaints (id, account_id, type, description, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID,
		c.AccountID,
		c.Type,
		c.Description,
		c.Status,
		c.CreatedAt,
		c.UpdatedAt,
	).Error
}

func (r *repo) UpdateStatus(ctx context.Context, db *gorm.DB, c *complaintdomain.Complaint) error {
	return db.WithContext(ctx).Exec(
		`UPDATE complaints SET status = ?, updated_at = ? WHERE id = ?`,
		c.Status,
		c.UpdatedAt,
		c.ID,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*complaintdomain.Complaint, error) {
	var complaint complaintdomain.Complaint
	err := db.WithContext(ctx).Raw(
		`SELECT id, account_id, type, description, status, created_at, updated_at
		 FROM complaints WHERE id = ?`,
		id,
	).Scan(&complaint).Error
	if err != nil {
		return nil, err
	}
	if complaint.ID == 0 {
		return nil, nil
	}
	return &complaint, nil
}

func (r *repo) ListByAccount(ctx context.Context, db *gorm.DB, accountID string) ([]complaintdomain.Complaint, error) {
	var complaints []complaintdomain.Complaint
	err := db.WithContext(ctx).Raw(
		`SELECT id, account_id, type, description, status, created_at, updated_at
		 FROM complaints WHERE account_id = ?
		 ORDER BY created_at DESC, id DESC`,
		accountID,
	).Scan(&complaints).Error
	if err != nil {
		return nil, err
	}
	return complaints, nil
}
