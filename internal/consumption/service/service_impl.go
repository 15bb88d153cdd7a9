package service

import (
	"context"
	"errors"
	"strings"
	"time"

	accountdomain "github.com/aquamitra/aquamitra/internal/account/domain"
	"github.com/aquamitra/aquamitra/internal/clock"
	"github.com/aquamitra/aquamitra/internal/config"
	consumptiondomain "github.com/aquamitra/aquamitra/internal/consumption/domain"
	"github.com/aquamitra/aquamitra/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	Config   config.Config
	DB       *gorm.DB
	Log      *zap.Logger
	Node     *snowflake.Node
	Clock    clock.Clock
	Repo     consumptiondomain.Repository
	Accounts accountdomain.Service
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	node     *snowflake.Node
	clock    clock.Clock
	repo     consumptiondomain.Repository
	accounts accountdomain.Service
	loc      *time.Location
}

func New(p Params) (consumptiondomain.Service, error) {
	loc, err := time.LoadLocation(p.Config.DefaultTimezone)
	if err != nil {
		return nil, err
	}

	return &Service{
		db:       p.DB,
		log:      p.Log.Named("consumption.service"),
		node:     p.Node,
		clock:    p.Clock,
		repo:     p.Repo,
		accounts: p.Accounts,
		loc:      loc,
	}, nil
}

// Ingest records a metered reading. The wire timestamp is interpreted in the
// deployment timezone and normalised to UTC before it hits storage.
func (s *Service) Ingest(ctx context.Context, req consumptiondomain.IngestRequest) (*consumptiondomain.ConsumptionEvent, error) {
	accountID := strings.TrimSpace(req.AccountID)
	if accountID == "" {
		return nil, consumptiondomain.ErrInvalidAccount
	}
	if req.Amount <= 0 {
		return nil, consumptiondomain.ErrInvalidAmount
	}

	occurredAt, err := time.ParseInLocation(consumptiondomain.TimestampLayout, strings.TrimSpace(req.Timestamp), s.loc)
	if err != nil {
		return nil, consumptiondomain.ErrInvalidTimestamp
	}

	if _, err := s.accounts.Get(ctx, accountID); err != nil {
		if errors.Is(err, accountdomain.ErrNotFound) || errors.Is(err, accountdomain.ErrInvalidAccountID) {
			return nil, consumptiondomain.ErrInvalidAccount
		}
		return nil, err
	}

	event := &consumptiondomain.ConsumptionEvent{
		ID:         s.node.Generate(),
		AccountID:  accountID,
		Amount:     req.Amount,
		OccurredAt: occurredAt.UTC(),
		Metadata:   req.Metadata,
		CreatedAt:  s.clock.Now(),
	}

	if err := s.repo.Insert(ctx, s.db, event); err != nil {
		return nil, err
	}

	s.log.Debug("event ingested",
		zap.String("account_id", event.AccountID),
		zap.Float64("amount", event.Amount),
		zap.Time("occurred_at", event.OccurredAt),
	)
	return event, nil
}

func (s *Service) ListByAccount(ctx context.Context, req consumptiondomain.ListRequest) (*consumptiondomain.ListResponse, error) {
	accountID := strings.TrimSpace(req.AccountID)
	if accountID == "" {
		return nil, consumptiondomain.ErrInvalidAccount
	}

	limit := req.Pagination.Limit()
	cursor, err := pagination.DecodeCursor(req.Pagination.PageToken)
	if err != nil {
		return nil, err
	}

	events, err := s.repo.ListByAccount(ctx, s.db, accountID, cursor, limit+1)
	if err != nil {
		return nil, err
	}

	resp := &consumptiondomain.ListResponse{Events: events}
	if len(events) > limit {
		resp.Events = events[:limit]
		last := resp.Events[limit-1]
		resp.PageInfo = pagination.PageInfo{
			NextPageToken: pagination.EncodeCursor(pagination.Cursor{ID: int64(last.ID), OccurredAt: last.OccurredAt}),
			HasMore:       true,
		}
	}
	if resp.Events == nil {
		resp.Events = []consumptiondomain.ConsumptionEvent{}
	}
	return resp, nil
}

func (s *Service) ListByAccounts(ctx context.Context, accountIDs []string, from, to time.Time) ([]consumptiondomain.ConsumptionEvent, error) {
	return s.repo.ListByAccountsBetween(ctx, s.db, accountIDs, from, to)
}

func (s *Service) SumForAccountBetween(ctx context.Context, accountID string, from, to time.Time) (float64, error) {
	return s.repo.SumBetween(ctx, s.db, accountID, from, to)
}
