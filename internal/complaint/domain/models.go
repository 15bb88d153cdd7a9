// Package domain contains service complaints filed by households.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Type string

const (
	TypeLeakage       Type = "Leakage"
	TypeMeterIssue    Type = "Meter Issue"
	TypeBillingError  Type = "Billing Error"
	TypeNoWaterSupply Type = "No Water Supply"
	TypeOther         Type = "Other"
)

func (t Type) Valid() bool {
	switch t {
	case TypeLeakage, TypeMeterIssue, TypeBillingError, TypeNoWaterSupply, TypeOther:
		return true
	}
	return false
}

type Status string

const (
	StatusSubmitted  Status = "Submitted"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
	StatusClosed     Status = "Closed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusSubmitted, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

type Complaint struct {
	ID          snowflake.ID `json:"id" gorm:"primaryKey"`
	AccountID   string       `json:"account_id" gorm:"type:text;not null;index:ix_complaints_account"`
	Type        Type         `json:"type" gorm:"type:text;not null"`
	Description string       `json:"description" gorm:"type:text;not null"`
	Status      Status       `json:"status" gorm:"type:text;not null"`
	CreatedAt   time.Time    `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time    `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Complaint) TableName() string { return "complaints" }
