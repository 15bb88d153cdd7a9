package domain

import (
	"context"
	"errors"
)

type Service interface {
	Get(ctx context.Context, accountID string) (*Account, error)
	ResolveJurisdiction(ctx context.Context, accountID string) (Jurisdiction, error)
	// ListInJurisdiction returns all accounts under the filter, ordered by
	// account id. Country and State are matched exactly; City narrows the
	// result when non-empty.
	ListInJurisdiction(ctx context.Context, filter JurisdictionFilter) ([]AccountRef, error)
	// DistinctCities lists the city names with at least one account in the
	// given state, sorted lexicographically ascending.
	DistinctCities(ctx context.Context, country, state string) ([]string, error)
	// Provision creates an unclaimed household record. Residents later claim
	// it through Register.
	Provision(ctx context.Context, req ProvisionRequest) (*Account, error)
	Register(ctx context.Context, req RegisterRequest) error
	Login(ctx context.Context, req LoginRequest) (*Account, error)
}

type ProvisionRequest struct {
	AccountID string `json:"userid"`
	Country   string `json:"country"`
	State     string `json:"state"`
	City      string `json:"city"`
	Address   string `json:"address"`
	Pincode   string `json:"pincode"`
	Occupants int    `json:"occupants"`
}

type JurisdictionFilter struct {
	Country string
	State   string
	City    string
}

// AccountRef is the slim projection used when aggregating across a region.
type AccountRef struct {
	AccountID string `json:"account_id"`
	City      string `json:"city"`
	Occupants int    `json:"occupants"`
}

type RegisterRequest struct {
	AccountID string `json:"userid"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	AccountID string `json:"userid"`
	Password  string `json:"password"`
}

var (
	ErrNotFound            = errors.New("account_not_found")
	ErrAlreadyExists       = errors.New("account_already_exists")
	ErrAlreadyRegistered   = errors.New("account_already_registered")
	ErrInvalidCredentials  = errors.New("invalid_credentials")
	ErrInvalidAccountID    = errors.New("invalid_account_id")
	ErrInvalidPassword     = errors.New("invalid_password")
	ErrInvalidJurisdiction = errors.New("invalid_jurisdiction")
)
