package service

import (
	"context"
	"errors"
	"strings"

	accountdomain "github.com/aquamitra/aquamitra/internal/account/domain"
	"github.com/aquamitra/aquamitra/internal/clock"
	complaintdomain "github.com/aquamitra/aquamitra/internal/complaint/domain"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	Node     *snowflake.Node
	Clock    clock.Clock
	Repo     complaintdomain.Repository
	Accounts accountdomain.Service
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	node     *snowflake.Node
	clock    clock.Clock
	repo     complaintdomain.Repository
	accounts accountdomain.Service
}

func New(p Params) complaintdomain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("complaint.service"),
		node:     p.Node,
		clock:    p.Clock,
		repo:     p.Repo,
		accounts: p.Accounts,
	}
}

func (s *Service) Create(ctx context.Context, req complaintdomain.CreateRequest) (*complaintdomain.Complaint, error) {
	accountID := strings.TrimSpace(req.AccountID)
	if accountID == "" {
		return nil, complaintdomain.ErrInvalidAccount
	}
	if !req.Type.Valid() {
		return nil, complaintdomain.ErrInvalidType
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, complaintdomain.ErrInvalidDescription
	}

	if _, err := s.accounts.Get(ctx, accountID); err != nil {
		if errors.Is(err, accountdomain.ErrNotFound) || errors.Is(err, accountdomain.ErrInvalidAccountID) {
			return nil, complaintdomain.ErrInvalidAccount
		}
		return nil, err
	}

	now := s.clock.Now()
	complaint := &complaintdomain.Complaint{
		ID:          s.node.Generate(),
		AccountID:   accountID,
		Type:        req.Type,
		Description: strings.TrimSpace(req.Description),
		Status:      complaintdomain.StatusSubmitted,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, s.db, complaint); err != nil {
		return nil, err
	}

	s.log.Info("complaint filed",
		zap.String("account_id", complaint.AccountID),
		zap.String("type", string(complaint.Type)),
	)
	return complaint, nil
}

func (s *Service) ListByAccount(ctx context.Context, accountID string) ([]complaintdomain.Complaint, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return nil, complaintdomain.ErrInvalidAccount
	}

	complaints, err := s.repo.ListByAccount(ctx, s.db, accountID)
	if err != nil {
		return nil, err
	}
	if complaints == nil {
		complaints = []complaintdomain.Complaint{}
	}
	return complaints, nil
}

func (s *Service) UpdateStatus(ctx context.Context, req complaintdomain.UpdateStatusRequest) (*complaintdomain.Complaint, error) {
	if !req.Status.Valid() {
		return nil, complaintdomain.ErrInvalidStatus
	}

	complaint, err := s.repo.FindByID(ctx, s.db, snowflake.ID(req.ComplaintID))
	if err != nil {
		return nil, err
	}
	if complaint == nil {
		return nil, complaintdomain.ErrNotFound
	}

	complaint.Status = req.Status
	complaint.UpdatedAt = s.clock.Now()
	if err := s.repo.UpdateStatus(ctx, s.db, complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}
