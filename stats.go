package orderbench

import (
	"math"
	"sort"
)

// Summary contains distribution statistics of one series.
type Summary struct {
	Count  int
	Mean   float64
	Stddev float64 // Population standard deviation
	Min    float64
	Max    float64
	P50    float64
	P99    float64
}

// Summarize computes count, mean, standard deviation, range and percentiles.
// An empty series returns the zero Summary.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	// Mean
	var sum float64
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(len(sorted))

	// Standard deviation
	var variance float64
	for _, v := range sorted {
		diff := v - mean
		variance += diff * diff
	}
	stddev := math.Sqrt(variance / float64(len(sorted)))

	return Summary{
		Count:  len(sorted),
		Mean:   mean,
		Stddev: stddev,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		P50:    percentile(sorted, 0.50),
		P99:    percentile(sorted, 0.99),
	}
}

// percentile returns the p-th percentile (0 ≤ p ≤ 1) of an ascending slice.
func percentile(sorted []float64, p float64) float64 {
	index := int(float64(len(sorted)-1) * p)
	if index < 0 {
		index = 0
	}
	if index >= len(sorted) {
		index = len(sorted) - 1
	}
	return sorted[index]
}

// SeriesSummary summarizes both output arrays of an analysis run.
type SeriesSummary struct {
	C6          Summary
	MagnitudeSq Summary
	Records     int
	Dropped     int
}

// Summary returns statistics for both arrays of the series.
func (s Series) Summary() SeriesSummary {
	return SeriesSummary{
		C6:          Summarize(s.C6()),
		MagnitudeSq: Summarize(s.MagnitudeSq()),
		Records:     s.Records,
		Dropped:     s.Dropped,
	}
}
