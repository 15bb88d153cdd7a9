package service

import (
	"context"
	"testing"
	"time"

	accountdomain "github.com/aquamitra/aquamitra/internal/account/domain"
	"github.com/aquamitra/aquamitra/internal/account/repository"
	"github.com/aquamitra/aquamitra/internal/clock"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testNow = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (accountdomain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&accountdomain.Account{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		Node:  node,
		Clock: clock.NewFakeClock(testNow),
		Repo:  repository.Provide(),
	})
	return svc, db, node
}

func seedAccount(t *testing.T, db *gorm.DB, node *snowflake.Node, accountID, city string, occupants int) {
	t.Helper()

	now := time.Now().UTC()
	require.NoError(t, db.Create(&accountdomain.Account{
		ID:        node.Generate(),
		AccountID: accountID,
		Country:   "India",
		State:     "Tamil Nadu",
		City:      city,
		Occupants: occupants,
		CreatedAt: now,
		UpdatedAt: now,
	}).Error)
}

func TestProvision(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	account, err := svc.Provision(ctx, accountdomain.ProvisionRequest{
		AccountID: "user9",
		Country:   "India",
		State:     "Tamil Nadu",
		City:      "Salem",
		Occupants: 5,
	})
	require.NoError(t, err)
	assert.NotZero(t, account.ID)
	assert.False(t, account.Registered())
	assert.True(t, account.CreatedAt.Equal(testNow))

	_, err = svc.Provision(ctx, accountdomain.ProvisionRequest{
		AccountID: "user9",
		Country:   "India",
		State:     "Tamil Nadu",
		City:      "Salem",
	})
	assert.ErrorIs(t, err, accountdomain.ErrAlreadyExists)

	_, err = svc.Provision(ctx, accountdomain.ProvisionRequest{AccountID: "user10", Country: "India"})
	assert.ErrorIs(t, err, accountdomain.ErrInvalidJurisdiction)
}

func TestRegisterAndLogin(t *testing.T) {
	svc, db, node := newTestService(t)
	ctx := context.Background()
	seedAccount(t, db, node, "user1", "Chennai", 4)

	_, err := svc.Login(ctx, accountdomain.LoginRequest{AccountID: "user1", Password: "secret"})
	assert.ErrorIs(t, err, accountdomain.ErrInvalidCredentials)

	require.NoError(t, svc.Register(ctx, accountdomain.RegisterRequest{AccountID: "user1", Password: "secret"}))

	err = svc.Register(ctx, accountdomain.RegisterRequest{AccountID: "user1", Password: "again"})
	assert.ErrorIs(t, err, accountdomain.ErrAlreadyRegistered)

	account, err := svc.Login(ctx, accountdomain.LoginRequest{AccountID: "user1", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "user1", account.AccountID)

	_, err = svc.Login(ctx, accountdomain.LoginRequest{AccountID: "user1", Password: "wrong"})
	assert.ErrorIs(t, err, accountdomain.ErrInvalidCredentials)
}

func TestRegisterValidation(t *testing.T) {
	svc, db, node := newTestService(t)
	ctx := context.Background()
	seedAccount(t, db, node, "user1", "Chennai", 4)

	err := svc.Register(ctx, accountdomain.RegisterRequest{AccountID: "user1", Password: "   "})
	assert.ErrorIs(t, err, accountdomain.ErrInvalidPassword)

	err = svc.Register(ctx, accountdomain.RegisterRequest{AccountID: "ghost", Password: "secret"})
	assert.ErrorIs(t, err, accountdomain.ErrNotFound)
}

func TestGet(t *testing.T) {
	svc, db, node := newTestService(t)
	ctx := context.Background()
	seedAccount(t, db, node, "user1", "Chennai", 4)

	account, err := svc.Get(ctx, " user1 ")
	require.NoError(t, err)
	assert.Equal(t, "Chennai", account.City)
	assert.Equal(t, 4, account.Occupants)

	_, err = svc.Get(ctx, "ghost")
	assert.ErrorIs(t, err, accountdomain.ErrNotFound)

	_, err = svc.Get(ctx, "  ")
	assert.ErrorIs(t, err, accountdomain.ErrInvalidAccountID)
}

func TestListInJurisdiction(t *testing.T) {
	svc, db, node := newTestService(t)
	ctx := context.Background()
	seedAccount(t, db, node, "user2", "Madurai", 3)
	seedAccount(t, db, node, "user1", "Chennai", 4)
	seedAccount(t, db, node, "user3", "Chennai", 2)

	refs, err := svc.ListInJurisdiction(ctx, accountdomain.JurisdictionFilter{Country: "India", State: "Tamil Nadu"})
	require.NoError(t, err)
	require.Len(t, refs, 3)
	assert.Equal(t, "user1", refs[0].AccountID)

	refs, err = svc.ListInJurisdiction(ctx, accountdomain.JurisdictionFilter{Country: "India", State: "Tamil Nadu", City: "Chennai"})
	require.NoError(t, err)
	require.Len(t, refs, 2)
	for _, ref := range refs {
		assert.Equal(t, "Chennai", ref.City)
	}

	refs, err = svc.ListInJurisdiction(ctx, accountdomain.JurisdictionFilter{Country: "India", State: "Kerala"})
	require.NoError(t, err)
	assert.Empty(t, refs)
}

func TestDistinctCitiesSorted(t *testing.T) {
	svc, db, node := newTestService(t)
	ctx := context.Background()
	seedAccount(t, db, node, "user2", "Madurai", 3)
	seedAccount(t, db, node, "user1", "Chennai", 4)
	seedAccount(t, db, node, "user3", "Chennai", 2)

	cities, err := svc.DistinctCities(ctx, "India", "Tamil Nadu")
	require.NoError(t, err)
	assert.Equal(t, []string{"Chennai", "Madurai"}, cities)
}
