// Package rollup aggregates consumption events into time buckets for charting.
// All bucketing is done in the viewer's timezone; events arrive in UTC.
package rollup

import (
	"fmt"
	"sort"
	"time"

	consumptiondomain "github.com/aquamitra/aquamitra/internal/consumption/domain"
)

type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

// ParseGranularity maps a query parameter onto a granularity. Empty input
// defaults to daily.
func ParseGranularity(s string) (Granularity, error) {
	switch s {
	case "", "day", "daily":
		return GranularityDay, nil
	case "week", "weekly":
		return GranularityWeek, nil
	case "month", "monthly":
		return GranularityMonth, nil
	case "year", "yearly":
		return GranularityYear, nil
	}
	return "", fmt.Errorf("unknown granularity %q", s)
}

// Bucket is one aggregated time period. Totals holds one entry per series
// key; every bucket in a rollup carries the same key set, zero-filled.
type Bucket struct {
	Key    string
	Label  string
	Start  time.Time
	Totals map[string]float64
}

type Options struct {
	Granularity Granularity
	Location    *time.Location

	// SeriesKey partitions events into stacked series. Nil puts everything
	// under a single "total" series.
	SeriesKey func(consumptiondomain.ConsumptionEvent) string

	// SeriesSeed forces keys into the output even when no event maps to
	// them, so charts stay shape-stable across requests.
	SeriesSeed []string

	// TrailingDays switches daily rollups to a dense window of exactly
	// TrailingDays buckets ending on the day containing Now. Events outside
	// the window are dropped; empty days appear zero-filled.
	TrailingDays int
	Now          time.Time
}

const defaultSeriesKey = "total"

// Rollup aggregates events into buckets ordered by start time. Without a
// trailing window only periods that contain at least one event appear.
func Rollup(events []consumptiondomain.ConsumptionEvent, opts Options) []Bucket {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	keyFor := opts.SeriesKey
	if keyFor == nil {
		keyFor = func(consumptiondomain.ConsumptionEvent) string { return defaultSeriesKey }
	}

	byStart := make(map[time.Time]*Bucket)
	seriesKeys := make(map[string]struct{}, len(opts.SeriesSeed))
	for _, k := range opts.SeriesSeed {
		seriesKeys[k] = struct{}{}
	}

	var windowStart, windowEnd time.Time
	dense := opts.Granularity == GranularityDay && opts.TrailingDays > 0
	if dense {
		today := startOfDay(opts.Now.In(loc))
		windowEnd = today.AddDate(0, 0, 1)
		windowStart = today.AddDate(0, 0, -(opts.TrailingDays - 1))
		for d := windowStart; d.Before(windowEnd); d = d.AddDate(0, 0, 1) {
			byStart[d] = newBucket(d, opts.Granularity)
		}
	}

	for _, ev := range events {
		local := ev.OccurredAt.In(loc)
		if dense && (local.Before(windowStart) || !local.Before(windowEnd)) {
			continue
		}

		start := bucketStart(local, opts.Granularity)
		bucket, ok := byStart[start]
		if !ok {
			bucket = newBucket(start, opts.Granularity)
			byStart[start] = bucket
		}

		key := keyFor(ev)
		seriesKeys[key] = struct{}{}
		bucket.Totals[key] += ev.Amount
	}

	if len(seriesKeys) == 0 {
		seriesKeys[defaultSeriesKey] = struct{}{}
	}

	buckets := make([]Bucket, 0, len(byStart))
	for _, bucket := range byStart {
		for key := range seriesKeys {
			if _, ok := bucket.Totals[key]; !ok {
				bucket.Totals[key] = 0
			}
		}
		buckets = append(buckets, *bucket)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Start.Before(buckets[j].Start) })
	return buckets
}

// Keys returns the union of the seed and every key observed in the buckets,
// sorted for deterministic chart ordering.
func Keys(buckets []Bucket, seed []string) []string {
	set := make(map[string]struct{}, len(seed))
	for _, k := range seed {
		set[k] = struct{}{}
	}
	for _, b := range buckets {
		for k := range b.Totals {
			set[k] = struct{}{}
		}
	}

	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func newBucket(start time.Time, g Granularity) *Bucket {
	return &Bucket{
		Key:    bucketKey(start, g),
		Label:  bucketLabel(start, g),
		Start:  start,
		Totals: make(map[string]float64),
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// bucketStart truncates a local time down to the start of its period. Weeks
// start on Monday.
func bucketStart(t time.Time, g Granularity) time.Time {
	switch g {
	case GranularityWeek:
		day := startOfDay(t)
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case GranularityMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	case GranularityYear:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	default:
		return startOfDay(t)
	}
}

func bucketKey(start time.Time, g Granularity) string {
	switch g {
	case GranularityWeek:
		year, week := start.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case GranularityMonth:
		return start.Format("2006-01")
	case GranularityYear:
		return start.Format("2006")
	default:
		return start.Format("2006-01-02")
	}
}

func bucketLabel(start time.Time, g Granularity) string {
	switch g {
	case GranularityWeek:
		_, week := start.ISOWeek()
		return fmt.Sprintf("Week %d", week)
	case GranularityMonth:
		return start.Format("Jan 2006")
	case GranularityYear:
		return start.Format("2006")
	default:
		return start.Format("Jan 2")
	}
}
