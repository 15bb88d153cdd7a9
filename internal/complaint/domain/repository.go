package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, complaint *Complaint) error
	UpdateStatus(ctx context.Context, db *gorm.DB, complaint *Complaint) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Complaint, error)
	ListByAccount(ctx context.Context, db *gorm.DB, accountID string) ([]Complaint, error)
}
