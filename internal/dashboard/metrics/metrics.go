// Package metrics derives household usage figures from raw consumption
// events.
package metrics

import (
	"math"
	"time"

	consumptiondomain "github.com/aquamitra/aquamitra/internal/consumption/domain"
)

// PerCapitaDailyRate is the sanctioned daily allowance per household member,
// in litres.
const PerCapitaDailyRate = 55.0

// DefaultOccupants stands in when a household has no recorded headcount.
const DefaultOccupants = 4

// Usage is the per-household summary shown at the top of the dashboard.
// RemainingToday goes negative once the household exceeds its allowance.
type Usage struct {
	Threshold      float64 `json:"threshold"`
	ConsumedToday  float64 `json:"consumed_today"`
	RemainingToday float64 `json:"remaining_today"`
	MonthToDate    float64 `json:"month_to_date"`
	AvgDaily       float64 `json:"avg_daily"`
}

// Compute summarises events for a single household as of now. Day and month
// boundaries follow loc, not the server timezone.
func Compute(events []consumptiondomain.ConsumptionEvent, occupants int, now time.Time, loc *time.Location) Usage {
	if loc == nil {
		loc = time.UTC
	}
	if occupants <= 0 {
		occupants = DefaultOccupants
	}

	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	monthStart := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)

	var consumedToday, monthToDate float64
	for _, ev := range events {
		at := ev.OccurredAt.In(loc)
		if at.Before(monthStart) || at.After(local) {
			continue
		}
		monthToDate += ev.Amount
		if !at.Before(today) {
			consumedToday += ev.Amount
		}
	}

	threshold := PerCapitaDailyRate * float64(occupants)
	return Usage{
		Threshold:      round2(threshold),
		ConsumedToday:  round2(consumedToday),
		RemainingToday: round2(threshold - consumedToday),
		MonthToDate:    round2(monthToDate),
		AvgDaily:       round2(monthToDate / float64(local.Day())),
	}
}

// SameDayTotals sums event amounts per key for the calendar day containing
// now in loc. Events on any other day are ignored.
func SameDayTotals(events []consumptiondomain.ConsumptionEvent, keyOf func(consumptiondomain.ConsumptionEvent) string, now time.Time, loc *time.Location) map[string]float64 {
	if loc == nil {
		loc = time.UTC
	}

	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	tomorrow := today.AddDate(0, 0, 1)

	totals := make(map[string]float64)
	for _, ev := range events {
		at := ev.OccurredAt.In(loc)
		if at.Before(today) || !at.Before(tomorrow) {
			continue
		}
		totals[keyOf(ev)] += ev.Amount
	}
	return totals
}

// TopConsumer picks the entry with the highest total. Ties resolve to the
// earliest key in order, so callers control tie-breaking by how they build
// the key list.
func TopConsumer(order []string, totals map[string]float64) (string, float64) {
	var (
		topKey   string
		topTotal float64
		found    bool
	)
	for _, key := range order {
		total := totals[key]
		if !found || total > topTotal {
			topKey, topTotal, found = key, total, true
		}
	}
	return topKey, round2(topTotal)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
