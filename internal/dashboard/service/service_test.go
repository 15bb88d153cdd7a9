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
	complaintrepository "github.com/aquamitra/aquamitra/internal/complaint/repository"
	complaintservice "github.com/aquamitra/aquamitra/internal/complaint/service"
	"github.com/aquamitra/aquamitra/internal/config"
	consumptiondomain "github.com/aquamitra/aquamitra/internal/consumption/domain"
	consumptionrepository "github.com/aquamitra/aquamitra/internal/consumption/repository"
	consumptionservice "github.com/aquamitra/aquamitra/internal/consumption/service"
	dashboarddomain "github.com/aquamitra/aquamitra/internal/dashboard/domain"
	employeedomain "github.com/aquamitra/aquamitra/internal/employee/domain"
	employeerepository "github.com/aquamitra/aquamitra/internal/employee/repository"
	employeeservice "github.com/aquamitra/aquamitra/internal/employee/service"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	svc  dashboarddomain.Service
	db   *gorm.DB
	node *snowflake.Node
	ist  *time.Location
	now  time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&accountdomain.Account{},
		&employeedomain.Employee{},
		&consumptiondomain.ConsumptionEvent{},
		&complaintdomain.Complaint{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	now := time.Date(2025, time.March, 10, 18, 0, 0, 0, ist)

	cfg := config.Config{DefaultTimezone: "Asia/Kolkata", FallbackOccupants: 4}
	log := zap.NewNop()
	fake := clock.NewFakeClock(now)

	accounts := accountservice.New(accountservice.Params{
		DB: db, Log: log, Node: node, Clock: fake, Repo: accountrepository.Provide(),
	})
	employees := employeeservice.New(employeeservice.Params{
		DB: db, Log: log, Node: node, Clock: fake, Repo: employeerepository.Provide(),
	})
	consumption, err := consumptionservice.New(consumptionservice.Params{
		Config: cfg, DB: db, Log: log, Node: node, Clock: fake,
		Repo: consumptionrepository.Provide(), Accounts: accounts,
	})
	require.NoError(t, err)

	complaints := complaintservice.New(complaintservice.Params{
		DB: db, Log: log, Node: node, Clock: fake,
		Repo: complaintrepository.Provide(), Accounts: accounts,
	})

	svc := New(Params{
		Config: cfg, Log: log, Clock: fake,
		Accounts: accounts, Employees: employees,
		Consumption: consumption, Complaints: complaints,
	})

	f := &fixture{svc: svc, db: db, node: node, ist: ist, now: now}
	f.seed(t)
	return f
}

func (f *fixture) seed(t *testing.T) {
	t.Helper()
	created := f.now.UTC()

	accounts := []accountdomain.Account{
		{ID: f.node.Generate(), AccountID: "user1", Country: "India", State: "Tamil Nadu", City: "Chennai", Occupants: 4, CreatedAt: created, UpdatedAt: created},
		{ID: f.node.Generate(), AccountID: "user2", Country: "India", State: "Tamil Nadu", City: "Madurai", Occupants: 3, CreatedAt: created, UpdatedAt: created},
	}
	for i := range accounts {
		require.NoError(t, f.db.Create(&accounts[i]).Error)
	}

	employees := []employeedomain.Employee{
		{ID: f.node.Generate(), EmployeeID: "emp1", Name: "TN Officer", Country: "India", State: "Tamil Nadu", CreatedAt: created, UpdatedAt: created},
		{ID: f.node.Generate(), EmployeeID: "emp2", Name: "Kerala Officer", Country: "India", State: "Kerala", CreatedAt: created, UpdatedAt: created},
	}
	for i := range employees {
		require.NoError(t, f.db.Create(&employees[i]).Error)
	}

	f.addEvent(t, "user1", 50, time.Date(2025, time.March, 10, 7, 0, 0, 0, f.ist))
	f.addEvent(t, "user1", 30, time.Date(2025, time.March, 10, 12, 0, 0, 0, f.ist))
	f.addEvent(t, "user1", 120, time.Date(2025, time.March, 4, 9, 0, 0, 0, f.ist))
	f.addEvent(t, "user2", 40, time.Date(2025, time.March, 5, 9, 0, 0, 0, f.ist))
}

func (f *fixture) addEvent(t *testing.T, accountID string, amount float64, at time.Time) {
	t.Helper()
	require.NoError(t, f.db.Create(&consumptiondomain.ConsumptionEvent{
		ID:         f.node.Generate(),
		AccountID:  accountID,
		Amount:     amount,
		OccurredAt: at.UTC(),
		CreatedAt:  f.now.UTC(),
	}).Error)
}

func TestBuildHouseholdView(t *testing.T) {
	f := newFixture(t)

	view, err := f.svc.BuildHouseholdView(context.Background(), dashboarddomain.HouseholdRequest{AccountID: "user1"})
	require.NoError(t, err)

	assert.Equal(t, "Chennai", view.City)
	assert.Equal(t, 4, view.Occupants)
	assert.Equal(t, 220.0, view.Usage.Threshold)
	assert.Equal(t, 80.0, view.Usage.ConsumedToday)
	assert.Equal(t, 140.0, view.Usage.RemainingToday)
	assert.Equal(t, 200.0, view.Usage.MonthToDate)
	assert.Equal(t, 20.0, view.Usage.AvgDaily)

	require.Len(t, view.Daily.Labels, 7)
	assert.Equal(t, "Mar 4", view.Daily.Labels[0])
	assert.Equal(t, "Mar 10", view.Daily.Labels[6])
	require.Len(t, view.Daily.Series, 1)
	assert.Equal(t, 120.0, view.Daily.Series[0].Values[0])
	assert.Equal(t, 80.0, view.Daily.Series[0].Values[6])

	require.Equal(t, []string{"Mar 2025"}, view.Monthly.Labels)
	assert.Equal(t, []float64{200}, view.Monthly.Series[0].Values)

	require.Equal(t, []string{"2025"}, view.Yearly.Labels)
	assert.Equal(t, []float64{200}, view.Yearly.Series[0].Values)

	require.Len(t, view.RecentEvents, 3)
	assert.Equal(t, 30.0, view.RecentEvents[0].Amount)
	assert.Equal(t, 120.0, view.RecentEvents[2].Amount)
	assert.Empty(t, view.Complaints)
}

func TestBuildHouseholdViewIncludesComplaints(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	complaints := complaintservice.New(complaintservice.Params{
		DB: f.db, Log: zap.NewNop(), Node: f.node, Clock: clock.NewFakeClock(f.now),
		Repo: complaintrepository.Provide(),
		Accounts: accountservice.New(accountservice.Params{
			DB: f.db, Log: zap.NewNop(), Node: f.node, Clock: clock.NewFakeClock(f.now),
			Repo: accountrepository.Provide(),
		}),
	})
	_, err := complaints.Create(ctx, complaintdomain.CreateRequest{
		AccountID: "user1", Type: complaintdomain.TypeLeakage, Description: "dripping main valve",
	})
	require.NoError(t, err)

	view, err := f.svc.BuildHouseholdView(ctx, dashboarddomain.HouseholdRequest{AccountID: "user1"})
	require.NoError(t, err)
	require.Len(t, view.Complaints, 1)
	assert.Equal(t, complaintdomain.StatusSubmitted, view.Complaints[0].Status)
}

func TestBuildHouseholdViewErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.BuildHouseholdView(ctx, dashboarddomain.HouseholdRequest{AccountID: "ghost"})
	assert.ErrorIs(t, err, dashboarddomain.ErrAccountNotFound)

	_, err = f.svc.BuildHouseholdView(ctx, dashboarddomain.HouseholdRequest{AccountID: "user1", Timezone: "Mars/Olympus"})
	assert.ErrorIs(t, err, dashboarddomain.ErrInvalidTimezone)
}

func TestBuildJurisdictionView(t *testing.T) {
	f := newFixture(t)

	view, err := f.svc.BuildJurisdictionView(context.Background(), dashboarddomain.JurisdictionRequest{
		EmployeeID:  "emp1",
		Granularity: "month",
	})
	require.NoError(t, err)

	assert.Equal(t, "emp1", view.EmployeeID)
	assert.Equal(t, "TN Officer", view.EmployeeName)
	assert.Equal(t, "Tamil Nadu", view.State)
	assert.Equal(t, []string{"Chennai", "Madurai"}, view.Cities)
	assert.Equal(t, 2, view.Households)

	require.Equal(t, []string{"Mar 2025"}, view.Chart.Labels)
	require.Len(t, view.Chart.Series, 2)
	assert.Equal(t, "Chennai", view.Chart.Series[0].Key)
	assert.Equal(t, []float64{200}, view.Chart.Series[0].Values)
	assert.Equal(t, "Madurai", view.Chart.Series[1].Key)
	assert.Equal(t, []float64{40}, view.Chart.Series[1].Values)

	// Chennai leads today's leaderboard with 50+30; the Mar 4/5 events only
	// count toward the chart and grand total.
	assert.Equal(t, "Chennai", view.TopCity)
	assert.Equal(t, 80.0, view.TopCityTotal)
	assert.Equal(t, 240.0, view.TotalConsumption)
}

func TestTopCityRanksCurrentDayOnly(t *testing.T) {
	f := newFixture(t)
	// Madurai dominates the trailing window but recorded nothing today.
	f.addEvent(t, "user2", 500, time.Date(2025, time.March, 4, 10, 0, 0, 0, f.ist))

	view, err := f.svc.BuildJurisdictionView(context.Background(), dashboarddomain.JurisdictionRequest{
		EmployeeID:  "emp1",
		Granularity: "day",
	})
	require.NoError(t, err)

	assert.Equal(t, "Chennai", view.TopCity)
	assert.Equal(t, 80.0, view.TopCityTotal)
}

func TestBuildJurisdictionViewCityFilter(t *testing.T) {
	f := newFixture(t)

	view, err := f.svc.BuildJurisdictionView(context.Background(), dashboarddomain.JurisdictionRequest{
		EmployeeID:  "emp1",
		City:        "Madurai",
		Granularity: "month",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, view.Households)
	require.Len(t, view.Chart.Series, 1)
	assert.Equal(t, "Madurai", view.Chart.Series[0].Key)
	assert.Equal(t, []float64{40}, view.Chart.Series[0].Values)

	// Madurai recorded nothing today, so there is no leaderboard entry.
	assert.Empty(t, view.TopCity)
	assert.Zero(t, view.TopCityTotal)

	// The full city list is unaffected by the filter.
	assert.Equal(t, []string{"Chennai", "Madurai"}, view.Cities)
}

func TestBuildJurisdictionViewEmptyRegion(t *testing.T) {
	f := newFixture(t)

	view, err := f.svc.BuildJurisdictionView(context.Background(), dashboarddomain.JurisdictionRequest{
		EmployeeID:  "emp2",
		Granularity: "month",
	})
	require.NoError(t, err)

	assert.Zero(t, view.Households)
	assert.Empty(t, view.Cities)
	assert.Empty(t, view.Chart.Labels)
	assert.Empty(t, view.TopCity)
	assert.Zero(t, view.TotalConsumption)
}

func TestBuildJurisdictionViewErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.BuildJurisdictionView(ctx, dashboarddomain.JurisdictionRequest{EmployeeID: "ghost"})
	assert.ErrorIs(t, err, dashboarddomain.ErrEmployeeNotFound)

	_, err = f.svc.BuildJurisdictionView(ctx, dashboarddomain.JurisdictionRequest{EmployeeID: "emp1", Granularity: "fortnight"})
	assert.ErrorIs(t, err, dashboarddomain.ErrInvalidGranularity)
}
