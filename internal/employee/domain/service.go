package domain

import (
	"context"
	"errors"
)

type Service interface {
	Get(ctx context.Context, employeeID string) (*Employee, error)
	ResolveJurisdiction(ctx context.Context, employeeID string) (Jurisdiction, error)
	// Provision creates an unclaimed employee record for a state assignment.
	Provision(ctx context.Context, req ProvisionRequest) (*Employee, error)
	Register(ctx context.Context, req RegisterRequest) error
	Login(ctx context.Context, req LoginRequest) (*Employee, error)
}

type ProvisionRequest struct {
	EmployeeID string `json:"userid"`
	Name       string `json:"name"`
	Country    string `json:"country"`
	State      string `json:"state"`
}

// Jurisdiction is the region an employee oversees.
type Jurisdiction struct {
	Country string `json:"country"`
	State   string `json:"state"`
}

type RegisterRequest struct {
	EmployeeID string `json:"userid"`
	Password   string `json:"password"`
}

type LoginRequest struct {
	EmployeeID string `json:"userid"`
	Password   string `json:"password"`
}

var (
	ErrNotFound               = errors.New("employee_not_found")
	ErrAlreadyExists          = errors.New("employee_already_exists")
	ErrAlreadyRegistered      = errors.New("employee_already_registered")
	ErrInvalidCredentials     = errors.New("invalid_credentials")
	ErrInvalidEmployeeID      = errors.New("invalid_employee_id")
	ErrInvalidPassword        = errors.New("invalid_password")
	ErrJurisdictionUnassigned = errors.New("jurisdiction_unassigned")
)
