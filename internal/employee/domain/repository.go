package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, employee *Employee) error
	Update(ctx context.Context, db *gorm.DB, employee *Employee) error
	FindByEmployeeID(ctx context.Context, db *gorm.DB, employeeID string) (*Employee, error)
}
