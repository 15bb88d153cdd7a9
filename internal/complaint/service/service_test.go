package service

import (
	"context"
	"testing"
	"time"

	accountdomain "github.com/aquamitra/aquamitra/internal/account/domain"
	accountrepository "github.com/aquamitra/aquamitra/internal/account/repository"
	accountservice "github.com/aquamitra/aquamitra/internal/account/service"
	"github.com/aquamitra/aquamitra/internal/clock"
	complaintdomain "github.com/aquamitra/aquamitra/internal/complaint/domain"
	"github.com/aquamitra/aquamitra/internal/complaint/repository"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (complaintdomain.Service, *clock.FakeClock) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&accountdomain.Account{}, &complaintdomain.Complaint{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	now := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
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

	svc := New(Params{
		DB:       db,
		Log:      zap.NewNop(),
		Node:     node,
		Clock:    fake,
		Repo:     repository.Provide(),
		Accounts: accounts,
	})
	return svc, fake
}

func TestCreateComplaint(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	complaint, err := svc.Create(ctx, complaintdomain.CreateRequest{
		AccountID:   "user1",
		Type:        complaintdomain.TypeLeakage,
		Description: "water pooling near the meter",
	})
	require.NoError(t, err)
	assert.Equal(t, complaintdomain.StatusSubmitted, complaint.Status)
	assert.NotZero(t, complaint.ID)
}

func TestCreateComplaintValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, complaintdomain.CreateRequest{
		AccountID: "user1", Type: "Broken Dam", Description: "x",
	})
	assert.ErrorIs(t, err, complaintdomain.ErrInvalidType)

	_, err = svc.Create(ctx, complaintdomain.CreateRequest{
		AccountID: "user1", Type: complaintdomain.TypeOther, Description: "  ",
	})
	assert.ErrorIs(t, err, complaintdomain.ErrInvalidDescription)

	_, err = svc.Create(ctx, complaintdomain.CreateRequest{
		AccountID: "ghost", Type: complaintdomain.TypeOther, Description: "x",
	})
	assert.ErrorIs(t, err, complaintdomain.ErrInvalidAccount)
}

func TestListByAccountNewestFirst(t *testing.T) {
	svc, fake := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, complaintdomain.CreateRequest{
		AccountID: "user1", Type: complaintdomain.TypeLeakage, Description: "first",
	})
	require.NoError(t, err)

	fake.Advance(time.Hour)
	second, err := svc.Create(ctx, complaintdomain.CreateRequest{
		AccountID: "user1", Type: complaintdomain.TypeMeterIssue, Description: "second",
	})
	require.NoError(t, err)

	complaints, err := svc.ListByAccount(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, complaints, 2)
	assert.Equal(t, second.ID, complaints[0].ID)
	assert.Equal(t, first.ID, complaints[1].ID)
}

func TestUpdateStatus(t *testing.T) {
	svc, fake := newTestService(t)
	ctx := context.Background()

	complaint, err := svc.Create(ctx, complaintdomain.CreateRequest{
		AccountID: "user1", Type: complaintdomain.TypeNoWaterSupply, Description: "dry taps since morning",
	})
	require.NoError(t, err)

	fake.Advance(time.Hour)
	updated, err := svc.UpdateStatus(ctx, complaintdomain.UpdateStatusRequest{
		ComplaintID: int64(complaint.ID),
		Status:      complaintdomain.StatusInProgress,
	})
	require.NoError(t, err)
	assert.Equal(t, complaintdomain.StatusInProgress, updated.Status)
	assert.True(t, updated.UpdatedAt.After(complaint.UpdatedAt))

	_, err = svc.UpdateStatus(ctx, complaintdomain.UpdateStatusRequest{
		ComplaintID: int64(complaint.ID),
		Status:      "Escalated",
	})
	assert.ErrorIs(t, err, complaintdomain.ErrInvalidStatus)

	_, err = svc.UpdateStatus(ctx, complaintdomain.UpdateStatusRequest{
		ComplaintID: 12345,
		Status:      complaintdomain.StatusResolved,
	})
	assert.ErrorIs(t, err, complaintdomain.ErrNotFound)
}
