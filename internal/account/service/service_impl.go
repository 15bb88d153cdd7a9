package service

import (
	"context"
	"strings"

	accountdomain "github.com/aquamitra/aquamitra/internal/account/domain"
	"github.com/aquamitra/aquamitra/internal/auth/password"
	"github.com/aquamitra/aquamitra/internal/clock"
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
	Repo  accountdomain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	node  *snowflake.Node
	clock clock.Clock
	repo  accountdomain.Repository
}

func New(p Params) accountdomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("account.service"),
		node:  p.Node,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Get(ctx context.Context, accountID string) (*accountdomain.Account, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return nil, accountdomain.ErrInvalidAccountID
	}

	account, err := s.repo.FindByAccountID(ctx, s.db, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, accountdomain.ErrNotFound
	}
	return account, nil
}

func (s *Service) ResolveJurisdiction(ctx context.Context, accountID string) (accountdomain.Jurisdiction, error) {
	account, err := s.Get(ctx, accountID)
	if err != nil {
		return accountdomain.Jurisdiction{}, err
	}
	return accountdomain.Jurisdiction{
		Country: account.Country,
		State:   account.State,
		City:    account.City,
	}, nil
}

func (s *Service) ListInJurisdiction(ctx context.Context, filter accountdomain.JurisdictionFilter) ([]accountdomain.AccountRef, error) {
	filter.Country = strings.TrimSpace(filter.Country)
	filter.State = strings.TrimSpace(filter.State)
	filter.City = strings.TrimSpace(filter.City)
	return s.repo.ListRefs(ctx, s.db, filter)
}

func (s *Service) DistinctCities(ctx context.Context, country, state string) ([]string, error) {
	return s.repo.DistinctCities(ctx, s.db, strings.TrimSpace(country), strings.TrimSpace(state))
}

func (s *Service) Provision(ctx context.Context, req accountdomain.ProvisionRequest) (*accountdomain.Account, error) {
	accountID := strings.TrimSpace(req.AccountID)
	if accountID == "" {
		return nil, accountdomain.ErrInvalidAccountID
	}
	if strings.TrimSpace(req.Country) == "" || strings.TrimSpace(req.State) == "" || strings.TrimSpace(req.City) == "" {
		return nil, accountdomain.ErrInvalidJurisdiction
	}

	now := s.clock.Now().UTC()
	account := &accountdomain.Account{
		ID:        s.node.Generate(),
		AccountID: accountID,
		Country:   strings.TrimSpace(req.Country),
		State:     strings.TrimSpace(req.State),
		City:      strings.TrimSpace(req.City),
		Address:   strings.TrimSpace(req.Address),
		Pincode:   strings.TrimSpace(req.Pincode),
		Occupants: req.Occupants,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, s.db, account); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, accountdomain.ErrAlreadyExists
		}
		return nil, err
	}

	s.log.Info("account provisioned",
		zap.String("account_id", account.AccountID),
		zap.String("city", account.City),
	)
	return account, nil
}

// Register sets the password on a pre-provisioned account. An account can only
// be claimed once.
func (s *Service) Register(ctx context.Context, req accountdomain.RegisterRequest) error {
	if strings.TrimSpace(req.Password) == "" {
		return accountdomain.ErrInvalidPassword
	}

	account, err := s.Get(ctx, req.AccountID)
	if err != nil {
		return err
	}
	if account.Registered() {
		return accountdomain.ErrAlreadyRegistered
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return err
	}
	account.PasswordHash = &hashed
	account.UpdatedAt = s.clock.Now().UTC()

	return s.repo.Update(ctx, s.db, account)
}

func (s *Service) Login(ctx context.Context, req accountdomain.LoginRequest) (*accountdomain.Account, error) {
	account, err := s.repo.FindByAccountID(ctx, s.db, strings.TrimSpace(req.AccountID))
	if err != nil {
		return nil, err
	}
	if account == nil || !account.Registered() {
		return nil, accountdomain.ErrInvalidCredentials
	}
	if !password.Verify(*account.PasswordHash, req.Password) {
		return nil, accountdomain.ErrInvalidCredentials
	}
	return account, nil
}
