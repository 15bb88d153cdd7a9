package service

import (
	"context"
	"errors"
	"time"

	accountdomain "github.com/aquamitra/aquamitra/internal/account/domain"
	"github.com/aquamitra/aquamitra/internal/clock"
	complaintdomain "github.com/aquamitra/aquamitra/internal/complaint/domain"
	"github.com/aquamitra/aquamitra/internal/config"
	consumptiondomain "github.com/aquamitra/aquamitra/internal/consumption/domain"
	dashboarddomain "github.com/aquamitra/aquamitra/internal/dashboard/domain"
	"github.com/aquamitra/aquamitra/internal/dashboard/metrics"
	"github.com/aquamitra/aquamitra/internal/dashboard/rollup"
	employeedomain "github.com/aquamitra/aquamitra/internal/employee/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	trailingDays      = 7
	recentEventsLimit = 10
)

type Params struct {
	fx.In

	Config      config.Config
	Log         *zap.Logger
	Clock       clock.Clock
	Accounts    accountdomain.Service
	Employees   employeedomain.Service
	Consumption consumptiondomain.Service
	Complaints  complaintdomain.Service
}

type Service struct {
	cfg         config.Config
	log         *zap.Logger
	clock       clock.Clock
	accounts    accountdomain.Service
	employees   employeedomain.Service
	consumption consumptiondomain.Service
	complaints  complaintdomain.Service
}

func New(p Params) dashboarddomain.Service {
	return &Service{
		cfg:         p.Config,
		log:         p.Log.Named("dashboard.service"),
		clock:       p.Clock,
		accounts:    p.Accounts,
		employees:   p.Employees,
		consumption: p.Consumption,
		complaints:  p.Complaints,
	}
}

func (s *Service) BuildHouseholdView(ctx context.Context, req dashboarddomain.HouseholdRequest) (*dashboarddomain.HouseholdView, error) {
	loc, err := s.location(req.Timezone)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.Get(ctx, req.AccountID)
	if err != nil {
		if errors.Is(err, accountdomain.ErrNotFound) {
			return nil, dashboarddomain.ErrAccountNotFound
		}
		return nil, err
	}

	now := s.clock.Now()
	events, err := s.consumption.ListByAccounts(ctx, []string{account.AccountID}, time.Unix(0, 0).UTC(), now.Add(24*time.Hour))
	if err != nil {
		return nil, err
	}

	complaints, err := s.complaints.ListByAccount(ctx, account.AccountID)
	if err != nil {
		return nil, err
	}

	occupants := account.Occupants
	if occupants <= 0 {
		occupants = s.cfg.FallbackOccupants
	}

	view := &dashboarddomain.HouseholdView{
		AccountID:    account.AccountID,
		City:         account.City,
		State:        account.State,
		Country:      account.Country,
		Occupants:    occupants,
		Usage:        metrics.Compute(events, occupants, now, loc),
		Daily:        s.chart(events, rollup.GranularityDay, loc, now, nil),
		Weekly:       s.chart(events, rollup.GranularityWeek, loc, now, nil),
		Monthly:      s.chart(events, rollup.GranularityMonth, loc, now, nil),
		Yearly:       s.chart(events, rollup.GranularityYear, loc, now, nil),
		RecentEvents: recentEvents(events, recentEventsLimit),
		Complaints:   complaints,
		GeneratedAt:  now,
	}
	return view, nil
}

// recentEvents returns the newest events from a slice ordered oldest first.
func recentEvents(events []consumptiondomain.ConsumptionEvent, limit int) []consumptiondomain.ConsumptionEvent {
	if len(events) < limit {
		limit = len(events)
	}
	recent := make([]consumptiondomain.ConsumptionEvent, 0, limit)
	for i := len(events) - 1; i >= len(events)-limit; i-- {
		recent = append(recent, events[i])
	}
	return recent
}

func (s *Service) BuildJurisdictionView(ctx context.Context, req dashboarddomain.JurisdictionRequest) (*dashboarddomain.JurisdictionView, error) {
	loc, err := s.location(req.Timezone)
	if err != nil {
		return nil, err
	}

	granularity, err := rollup.ParseGranularity(req.Granularity)
	if err != nil {
		return nil, dashboarddomain.ErrInvalidGranularity
	}

	employee, err := s.employees.Get(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employeedomain.ErrNotFound) {
			return nil, dashboarddomain.ErrEmployeeNotFound
		}
		return nil, err
	}

	jurisdiction, err := s.employees.ResolveJurisdiction(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	cities, err := s.accounts.DistinctCities(ctx, jurisdiction.Country, jurisdiction.State)
	if err != nil {
		return nil, err
	}

	refs, err := s.accounts.ListInJurisdiction(ctx, accountdomain.JurisdictionFilter{
		Country: jurisdiction.Country,
		State:   jurisdiction.State,
		City:    req.City,
	})
	if err != nil {
		return nil, err
	}

	accountIDs := make([]string, 0, len(refs))
	cityOf := make(map[string]string, len(refs))
	for _, ref := range refs {
		accountIDs = append(accountIDs, ref.AccountID)
		cityOf[ref.AccountID] = ref.City
	}

	now := s.clock.Now()
	events, err := s.consumption.ListByAccounts(ctx, accountIDs, time.Unix(0, 0).UTC(), now.Add(24*time.Hour))
	if err != nil {
		return nil, err
	}

	seed := cities
	if req.City != "" {
		seed = []string{req.City}
	}

	opts := rollup.Options{
		Granularity: granularity,
		Location:    loc,
		SeriesKey: func(ev consumptiondomain.ConsumptionEvent) string {
			return cityOf[ev.AccountID]
		},
		SeriesSeed: seed,
		Now:        now,
	}
	if granularity == rollup.GranularityDay {
		opts.TrailingDays = trailingDays
	}

	buckets := rollup.Rollup(events, opts)
	keys := rollup.Keys(buckets, seed)

	var grandTotal float64
	for _, b := range buckets {
		for _, v := range b.Totals {
			grandTotal += v
		}
	}

	// The ranking is a today-only leaderboard, independent of the chart
	// granularity.
	dayTotals := metrics.SameDayTotals(events, func(ev consumptiondomain.ConsumptionEvent) string {
		return cityOf[ev.AccountID]
	}, now, loc)

	var consumedToday float64
	for _, v := range dayTotals {
		consumedToday += v
	}
	var topCity string
	var topTotal float64
	if consumedToday > 0 {
		topCity, topTotal = metrics.TopConsumer(keys, dayTotals)
	}

	view := &dashboarddomain.JurisdictionView{
		EmployeeID:       employee.EmployeeID,
		EmployeeName:     employee.Name,
		Country:          jurisdiction.Country,
		State:            jurisdiction.State,
		Cities:           cities,
		Households:       len(refs),
		Chart:            rollup.BuildChart(buckets, keys),
		TopCity:          topCity,
		TopCityTotal:     topTotal,
		TotalConsumption: rollup.Round2(grandTotal),
		GeneratedAt:      now,
	}
	return view, nil
}

func (s *Service) chart(events []consumptiondomain.ConsumptionEvent, g rollup.Granularity, loc *time.Location, now time.Time, seed []string) rollup.Chart {
	opts := rollup.Options{Granularity: g, Location: loc, SeriesSeed: seed, Now: now}
	if g == rollup.GranularityDay {
		opts.TrailingDays = trailingDays
	}
	buckets := rollup.Rollup(events, opts)
	return rollup.BuildChart(buckets, rollup.Keys(buckets, seed))
}

func (s *Service) location(name string) (*time.Location, error) {
	if name == "" {
		name = s.cfg.DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, dashboarddomain.ErrInvalidTimezone
	}
	return loc, nil
}
