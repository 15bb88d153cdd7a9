// Package domain contains regional administrator records.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Employee is a government official assigned to oversee a state's water
// distribution. Records are pre-provisioned; the password is configured on
// first signup.
type Employee struct {
	ID           snowflake.ID `json:"id" gorm:"primaryKey"`
	EmployeeID   string       `json:"employee_id" gorm:"type:text;not null;uniqueIndex"`
	Name         string       `json:"name" gorm:"type:text;not null"`
	Country      string       `json:"country" gorm:"type:text;not null"`
	State        string       `json:"state" gorm:"type:text;not null"`
	PasswordHash *string      `json:"-" gorm:"type:text"`
	CreatedAt    time.Time    `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time    `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Employee) TableName() string { return "employees" }

// Registered reports whether the employee has completed account setup.
func (e Employee) Registered() bool {
	return e.PasswordHash != nil && *e.PasswordHash != ""
}
