package service

import (
	"context"
	"strings"

	"github.com/aquamitra/aquamitra/internal/auth/password"
	"github.com/aquamitra/aquamitra/internal/clock"
	employeedomain "github.com/aquamitra/aquamitra/internal/employee/domain"
	"github.com/aquamitra/aquamitra/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Node  *snowflake.Node
	Clock clock.Clock
	Repo  employeedomain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	node  *snowflake.Node
	clock clock.Clock
	repo  employeedomain.Repository
}

func New(p Params) employeedomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("employee.service"),
		node:  p.Node,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Get(ctx context.Context, employeeID string) (*employeedomain.Employee, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return nil, employeedomain.ErrInvalidEmployeeID
	}

	employee, err := s.repo.FindByEmployeeID(ctx, s.db, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, employeedomain.ErrNotFound
	}
	return employee, nil
}

// ResolveJurisdiction returns the region the employee administers. An employee
// without a state assignment cannot see any regional dashboard.
func (s *Service) ResolveJurisdiction(ctx context.Context, employeeID string) (employeedomain.Jurisdiction, error) {
	employee, err := s.Get(ctx, employeeID)
	if err != nil {
		return employeedomain.Jurisdiction{}, err
	}
	if strings.TrimSpace(employee.State) == "" {
		return employeedomain.Jurisdiction{}, employeedomain.ErrJurisdictionUnassigned
	}
	return employeedomain.Jurisdiction{
		Country: employee.Country,
		State:   employee.State,
	}, nil
}

func (s *Service) Provision(ctx context.Context, req employeedomain.ProvisionRequest) (*employeedomain.Employee, error) {
	employeeID := strings.TrimSpace(req.EmployeeID)
	if employeeID == "" {
		return nil, employeedomain.ErrInvalidEmployeeID
	}
	if strings.TrimSpace(req.State) == "" {
		return nil, employeedomain.ErrJurisdictionUnassigned
	}

	now := s.clock.Now().UTC()
	employee := &employeedomain.Employee{
		ID:         s.node.Generate(),
		EmployeeID: employeeID,
		Name:       strings.TrimSpace(req.Name),
		Country:    strings.TrimSpace(req.Country),
		State:      strings.TrimSpace(req.State),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Insert(ctx, s.db, employee); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, employeedomain.ErrAlreadyExists
		}
		return nil, err
	}
	return employee, nil
}

// Register configures the password on a pre-provisioned employee record. A
// record can only be claimed once.
func (s *Service) Register(ctx context.Context, req employeedomain.RegisterRequest) error {
	if strings.TrimSpace(req.Password) == "" {
		return employeedomain.ErrInvalidPassword
	}

	employee, err := s.Get(ctx, req.EmployeeID)
	if err != nil {
		return err
	}
	if employee.Registered() {
		return employeedomain.ErrAlreadyRegistered
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return err
	}
	employee.PasswordHash = &hashed
	employee.UpdatedAt = s.clock.Now().UTC()

	return s.repo.Update(ctx, s.db, employee)
}

func (s *Service) Login(ctx context.Context, req employeedomain.LoginRequest) (*employeedomain.Employee, error) {
	employee, err := s.repo.FindByEmployeeID(ctx, s.db, strings.TrimSpace(req.EmployeeID))
	if err != nil {
		return nil, err
	}
	if employee == nil || !employee.Registered() {
		return nil, employeedomain.ErrInvalidCredentials
	}
	if !password.Verify(*employee.PasswordHash, req.Password) {
		return nil, employeedomain.ErrInvalidCredentials
	}
	return employee, nil
}
