package repository

import (
	"context"

	employeedomain "github.com/aquamitra/aquamitra/internal/employee/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() employeedomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, e *employeedomain.Employee) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO employees (id, employee_id, name, country, state, password_hash, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID,
		e.EmployeeID,
		e.Name,
		e.Country,
		e.State,
		e.PasswordHash,
		e.CreatedAt,
		e.UpdatedAt,
	).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, e *employeedomain.Employee) error {
	return db.WithContext(ctx).Exec(
		`UPDATE employees
		 SET name = ?, country = ?, state = ?, password_hash = ?, updated_at = ?
		 WHERE employee_id = ?`,
		e.Name,
		e.Country,
		e.State,
		e.PasswordHash,
		e.UpdatedAt,
		e.EmployeeID,
	).Error
}

func (r *repo) FindByEmployeeID(ctx context.Context, db *gorm.DB, employeeID string) (*employeedomain.Employee, error) {
	var employee employeedomain.Employee
	err := db.WithContext(ctx).Raw(
		`SELECT id, employee_id, name, country, state, password_hash, created_at, updated_at
		 FROM employees WHERE employee_id = ?`,
		employeeID,
	).Scan(&employee).Error
	if err != nil {
		return nil, err
	}
	if employee.ID == 0 {
		return nil, nil
	}
	return &employee, nil
}
