// Package domain defines the dashboard views served to households and
// regional employees.
package domain

import (
	"context"
	"errors"
	"time"

	complaintdomain "github.com/aquamitra/aquamitra/internal/complaint/domain"
	consumptiondomain "github.com/aquamitra/aquamitra/internal/consumption/domain"
	"github.com/aquamitra/aquamitra/internal/dashboard/metrics"
	"github.com/aquamitra/aquamitra/internal/dashboard/rollup"
)

type Service interface {
	BuildHouseholdView(ctx context.Context, req HouseholdRequest) (*HouseholdView, error)
	BuildJurisdictionView(ctx context.Context, req JurisdictionRequest) (*JurisdictionView, error)
}

type HouseholdRequest struct {
	AccountID string
	// Timezone is an IANA name; empty falls back to the deployment default.
	Timezone string
}

// HouseholdView is the full per-household dashboard payload. Daily covers a
// dense trailing seven day window; the other charts only contain periods with
// recorded consumption.
type HouseholdView struct {
	AccountID    string                               `json:"account_id"`
	City         string                               `json:"city"`
	State        string                               `json:"state"`
	Country      string                               `json:"country"`
	Occupants    int                                  `json:"occupants"`
	Usage        metrics.Usage                        `json:"usage"`
	Daily        rollup.Chart                         `json:"daily"`
	Weekly       rollup.Chart                         `json:"weekly"`
	Monthly      rollup.Chart                         `json:"monthly"`
	Yearly       rollup.Chart                         `json:"yearly"`
	RecentEvents []consumptiondomain.ConsumptionEvent `json:"recent_events"`
	Complaints   []complaintdomain.Complaint          `json:"complaints"`
	GeneratedAt  time.Time                            `json:"generated_at"`
}

type JurisdictionRequest struct {
	EmployeeID  string
	City        string
	Granularity string
	Timezone    string
}

// JurisdictionView aggregates every household in an employee's region, one
// chart series per city. TopCity ranks cities by consumption on the current
// day only, regardless of the chart granularity. A region with no households
// is a valid, empty view.
type JurisdictionView struct {
	EmployeeID       string       `json:"employee_id"`
	EmployeeName     string       `json:"employee_name"`
	Country          string       `json:"country"`
	State            string       `json:"state"`
	Cities           []string     `json:"cities"`
	Households       int          `json:"households"`
	Chart            rollup.Chart `json:"chart"`
	TopCity          string       `json:"top_city"`
	TopCityTotal     float64      `json:"top_city_total"`
	TotalConsumption float64      `json:"total_consumption"`
	GeneratedAt      time.Time    `json:"generated_at"`
}

var (
	ErrAccountNotFound    = errors.New("dashboard_account_not_found")
	ErrEmployeeNotFound   = errors.New("dashboard_employee_not_found")
	ErrInvalidTimezone    = errors.New("invalid_timezone")
	ErrInvalidGranularity = errors.New("invalid_granularity")
)
