// Package domain contains metered water consumption events.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// ConsumptionEvent is a single metered reading for a household. OccurredAt is
// always stored in UTC; presentation layers convert to the viewer's timezone.
type ConsumptionEvent struct {
	ID         snowflake.ID      `json:"id" gorm:"primaryKey"`
	AccountID  string            `json:"account_id" gorm:"type:text;not null;index:ix_consumption_account"`
	Amount     float64           `json:"amount" gorm:"not null"`
	OccurredAt time.Time         `json:"occurred_at" gorm:"not null;index:ix_consumption_occurred_at"`
	Metadata   datatypes.JSONMap `json:"metadata,omitempty"`
	CreatedAt  time.Time         `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (ConsumptionEvent) TableName() string { return "consumption_events" }
