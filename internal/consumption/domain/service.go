package domain

import (
	"context"
	"errors"
	"time"

	"github.com/aquamitra/aquamitra/pkg/db/pagination"
)

// TimestampLayout is the wire format meters report readings in. It is parsed
// in the deployment's default timezone, never the server's.
const TimestampLayout = "02-01-2006 15:04:05"

type Service interface {
	Ingest(ctx context.Context, req IngestRequest) (*ConsumptionEvent, error)
	ListByAccount(ctx context.Context, req ListRequest) (*ListResponse, error)
	ListByAccounts(ctx context.Context, accountIDs []string, from, to time.Time) ([]ConsumptionEvent, error)
	SumForAccountBetween(ctx context.Context, accountID string, from, to time.Time) (float64, error)
}

type IngestRequest struct {
	AccountID string         `json:"userid"`
	Amount    float64        `json:"amount"`
	Timestamp string         `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

type ListRequest struct {
	AccountID  string
	Pagination pagination.Pagination
}

type ListResponse struct {
	Events   []ConsumptionEvent  `json:"events"`
	PageInfo pagination.PageInfo `json:"page_info"`
}

var (
	ErrInvalidAccount   = errors.New("invalid_account")
	ErrInvalidAmount    = errors.New("invalid_amount")
	ErrInvalidTimestamp = errors.New("invalid_timestamp")
)
