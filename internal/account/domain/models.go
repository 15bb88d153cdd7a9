// Package domain contains household account records and jurisdiction lookups.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Account is a registered household connected to the water network.
// AccountID is the consumer-facing identifier printed on the meter;
// records are provisioned by the utility before residents sign up.
type Account struct {
	ID           snowflake.ID `json:"id" gorm:"primaryKey"`
	AccountID    string       `json:"account_id" gorm:"type:text;not null;uniqueIndex"`
	Country      string       `json:"country" gorm:"type:text;not null;index:ix_accounts_jurisdiction,priority:1"`
	State        string       `json:"state" gorm:"type:text;not null;index:ix_accounts_jurisdiction,priority:2"`
	City         string       `json:"city" gorm:"type:text;not null;index:ix_accounts_jurisdiction,priority:3"`
	Address      string       `json:"address" gorm:"type:text"`
	Pincode      string       `json:"pincode" gorm:"type:text"`
	Occupants    int          `json:"occupants" gorm:"not null;default:0"`
	PasswordHash *string      `json:"-" gorm:"type:text"`
	CreatedAt    time.Time    `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time    `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Account) TableName() string { return "accounts" }

// Registered reports whether the resident has completed signup.
func (a Account) Registered() bool {
	return a.PasswordHash != nil && *a.PasswordHash != ""
}

// Jurisdiction is the country/state[/city] scope an account belongs to.
// It is a derived grouping key, not a stored entity.
type Jurisdiction struct {
	Country string `json:"country"`
	State   string `json:"state"`
	City    string `json:"city,omitempty"`
}
