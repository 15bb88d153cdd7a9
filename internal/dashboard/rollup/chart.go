package rollup

import "math"

// Round2 rounds to two decimal places. Applied only when values leave the
// aggregation layer so intermediate sums keep full precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Chart is the wire shape consumed by the frontend's stacked bar charts.
// Labels and every Series.Values slice are index-aligned.
type Chart struct {
	Labels []string `json:"labels"`
	Series []Series `json:"series"`
}

type Series struct {
	Key    string    `json:"key"`
	Values []float64 `json:"values"`
}

// BuildChart flattens buckets into the chart shape, one series per key in the
// order given.
func BuildChart(buckets []Bucket, keys []string) Chart {
	chart := Chart{
		Labels: make([]string, len(buckets)),
		Series: make([]Series, 0, len(keys)),
	}
	for i, b := range buckets {
		chart.Labels[i] = b.Label
	}
	for _, key := range keys {
		values := make([]float64, len(buckets))
		for i, b := range buckets {
			values[i] = Round2(b.Totals[key])
		}
		chart.Series = append(chart.Series, Series{Key: key, Values: values})
	}
	return chart
}
