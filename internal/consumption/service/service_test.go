package service

import (
	"context"
	"testing"
	"time"

	accountdomain "github.com/aquamitra/aquamitra/internal/account/domain"
	accountrepository "github.com/aquamitra/aquamitra/internal/account/repository"
	accountservice "github.com/aquamitra/aquamitra/internal/account/service"
	"github.com/aquamitra/aquamitra/internal/clock"
	"github.com/aquamitra/aquamitra/internal/config"
	consumptiondomain "github.com/aquamitra/aquamitra/internal/consumption/domain"
	"github.com/aquamitra/aquamitra/internal/consumption/repository"
	"github.com/aquamitra/aquamitra/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (consumptiondomain.Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&accountdomain.Account{}, &consumptiondomain.ConsumptionEvent{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	now := time.Now().UTC()
	require.NoError(t, db.Create(&accountdomain.Account{
		ID:        node.Generate(),
		AccountID: "user1",
		Country:   "India",
		State:     "Tamil Nadu",
		City:      "Chennai",
		Occupants: 4,
		CreatedAt: now,
		UpdatedAt: now,
	}).Error)

	fake := clock.NewFakeClock(now)
	accounts := accountservice.New(accountservice.Params{
		DB:    db,
		Log:   zap.NewNop(),
		Node:  node,
		Clock: fake,
		Repo:  accountrepository.Provide(),
	})

	svc, err := New(Params{
		Config:   config.Config{DefaultTimezone: "Asia/Kolkata"},
		DB:       db,
		Log:      zap.NewNop(),
		Node:     node,
		Clock:    fake,
		Repo:     repository.Provide(),
		Accounts: accounts,
	})
	require.NoError(t, err)
	return svc, db
}

func TestIngestParsesTimestampInDefaultTimezone(t *testing.T) {
	svc, _ := newTestService(t)

	event, err := svc.Ingest(context.Background(), consumptiondomain.IngestRequest{
		AccountID: "user1",
		Amount:    150,
		Timestamp: "10-03-2025 08:30:00",
	})
	require.NoError(t, err)

	// 08:30 IST is 03:00 UTC.
	want := time.Date(2025, time.March, 10, 3, 0, 0, 0, time.UTC)
	assert.True(t, event.OccurredAt.Equal(want), "got %v", event.OccurredAt)
	assert.Equal(t, time.UTC, event.OccurredAt.Location())
}

func TestIngestValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Ingest(ctx, consumptiondomain.IngestRequest{
		AccountID: "user1", Amount: 10, Timestamp: "2025-03-10T08:30:00Z",
	})
	assert.ErrorIs(t, err, consumptiondomain.ErrInvalidTimestamp)

	_, err = svc.Ingest(ctx, consumptiondomain.IngestRequest{
		AccountID: "user1", Amount: 10, Timestamp: "31-02-2025 08:30:00",
	})
	assert.ErrorIs(t, err, consumptiondomain.ErrInvalidTimestamp)

	_, err = svc.Ingest(ctx, consumptiondomain.IngestRequest{
		AccountID: "user1", Amount: -5, Timestamp: "10-03-2025 08:30:00",
	})
	assert.ErrorIs(t, err, consumptiondomain.ErrInvalidAmount)

	_, err = svc.Ingest(ctx, consumptiondomain.IngestRequest{
		AccountID: "user1", Amount: 0, Timestamp: "10-03-2025 08:30:00",
	})
	assert.ErrorIs(t, err, consumptiondomain.ErrInvalidAmount)

	_, err = svc.Ingest(ctx, consumptiondomain.IngestRequest{
		AccountID: "  ", Amount: 10, Timestamp: "10-03-2025 08:30:00",
	})
	assert.ErrorIs(t, err, consumptiondomain.ErrInvalidAccount)

	_, err = svc.Ingest(ctx, consumptiondomain.IngestRequest{
		AccountID: "ghost", Amount: 10, Timestamp: "10-03-2025 08:30:00",
	})
	assert.ErrorIs(t, err, consumptiondomain.ErrInvalidAccount)
}

func TestListByAccountNewestFirstWithPaging(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for day := 1; day <= 5; day++ {
		_, err := svc.Ingest(ctx, consumptiondomain.IngestRequest{
			AccountID: "user1",
			Amount:    float64(day * 10),
			Timestamp: time.Date(2025, time.March, day, 8, 0, 0, 0, time.UTC).Format(consumptiondomain.TimestampLayout),
		})
		require.NoError(t, err)
	}

	resp, err := svc.ListByAccount(ctx, consumptiondomain.ListRequest{
		AccountID:  "user1",
		Pagination: pagination.Pagination{PageSize: 2},
	})
	require.NoError(t, err)
	require.Len(t, resp.Events, 2)
	assert.True(t, resp.PageInfo.HasMore)
	assert.Equal(t, 50.0, resp.Events[0].Amount)
	assert.Equal(t, 40.0, resp.Events[1].Amount)

	resp, err = svc.ListByAccount(ctx, consumptiondomain.ListRequest{
		AccountID:  "user1",
		Pagination: pagination.Pagination{PageSize: 2, PageToken: resp.PageInfo.NextPageToken},
	})
	require.NoError(t, err)
	require.Len(t, resp.Events, 2)
	assert.Equal(t, 30.0, resp.Events[0].Amount)
	assert.Equal(t, 20.0, resp.Events[1].Amount)

	resp, err = svc.ListByAccount(ctx, consumptiondomain.ListRequest{
		AccountID:  "user1",
		Pagination: pagination.Pagination{PageSize: 2, PageToken: resp.PageInfo.NextPageToken},
	})
	require.NoError(t, err)
	require.Len(t, resp.Events, 1)
	assert.Equal(t, 10.0, resp.Events[0].Amount)
	assert.False(t, resp.PageInfo.HasMore)
}

func TestListByAccountEmptyIsNotAnError(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.ListByAccount(context.Background(), consumptiondomain.ListRequest{AccountID: "user1"})
	require.NoError(t, err)
	assert.Empty(t, resp.Events)
	assert.False(t, resp.PageInfo.HasMore)
}
