package orderbench

import (
	"fmt"
	"math"
)

// DefaultBins is the histogram resolution used for both series.
const DefaultBins = 50

// Histogram is an equal-width histogram normalized to a probability density.
type Histogram struct {
	Edges   []float64 // len(Counts)+1 bin edges, ascending
	Counts  []int     // Values per bin
	Density []float64 // Counts / (total · width); integrates to 1
}

// NewHistogram bins values into the given number of equal-width bins spanning
// [min, max].
//
// A constant series is widened to [v-0.5, v+0.5]. Every bin is half-open
// except the last, which includes max. Empty input returns ErrEmptySeries;
// NaN or infinite values are rejected.
func NewHistogram(values []float64, bins int) (Histogram, error) {
	if bins <= 0 {
		return Histogram{}, fmt.Errorf("histogram needs a positive bin count, got %d", bins)
	}
	if len(values) == 0 {
		return Histogram{}, fmt.Errorf("histogram: %w", ErrEmptySeries)
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Histogram{}, fmt.Errorf("histogram: value %d is not finite (%v)", i, v)
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	h := Histogram{
		Edges:   make([]float64, bins+1),
		Counts:  make([]int, bins),
		Density: make([]float64, bins),
	}
	width := (hi - lo) / float64(bins)
	for i := range h.Edges {
		h.Edges[i] = lo + float64(i)*width
	}
	h.Edges[bins] = hi

	for _, v := range values {
		h.Counts[h.bin(v, lo, width)]++
	}

	total := float64(len(values))
	for i, c := range h.Counts {
		h.Density[i] = float64(c) / (total * (h.Edges[i+1] - h.Edges[i]))
	}
	return h, nil
}

// bin finds the bin of v, correcting the arithmetic guess against the edges.
func (h Histogram) bin(v, lo, width float64) int {
	last := len(h.Counts) - 1
	i := int((v - lo) / width)
	if i > last {
		i = last
	}
	if i < 0 {
		i = 0
	}
	for i > 0 && v < h.Edges[i] {
		i--
	}
	for i < last && v >= h.Edges[i+1] {
		i++
	}
	return i
}

// Centers returns the midpoint of every bin.
func (h Histogram) Centers() []float64 {
	centers := make([]float64, len(h.Counts))
	for i := range centers {
		centers[i] = 0.5 * (h.Edges[i] + h.Edges[i+1])
	}
	return centers
}

// Bins returns the number of bins.
func (h Histogram) Bins() int {
	return len(h.Counts)
}

// MaxDensity returns the largest density value.
func (h Histogram) MaxDensity() float64 {
	maxD := 0.0
	for _, d := range h.Density {
		maxD = math.Max(maxD, d)
	}
	return maxD
}

// Area returns Σ density·width, which is 1 for any non-empty histogram up to
// rounding.
func (h Histogram) Area() float64 {
	area := 0.0
	for i, d := range h.Density {
		area += d * (h.Edges[i+1] - h.Edges[i])
	}
	return area
}
