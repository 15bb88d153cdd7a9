package domain

import (
	"context"
	"errors"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Complaint, error)
	ListByAccount(ctx context.Context, accountID string) ([]Complaint, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (*Complaint, error)
}

type CreateRequest struct {
	AccountID   string `json:"userid"`
	Type        Type   `json:"type"`
	Description string `json:"description"`
}

type UpdateStatusRequest struct {
	ComplaintID int64  `json:"complaint_id"`
	Status      Status `json:"status"`
}

var (
	ErrNotFound           = errors.New("complaint_not_found")
	ErrInvalidAccount     = errors.New("invalid_account")
	ErrInvalidType        = errors.New("invalid_complaint_type")
	ErrInvalidStatus      = errors.New("invalid_complaint_status")
	ErrInvalidDescription = errors.New("invalid_complaint_description")
)
