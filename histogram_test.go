package orderbench

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

// TestHistogram_Numpy pins the output of numpy.histogram(x, 4, density=True)
// for x = [0, 1, 1, 2, 3, 4].
func TestHistogram_Numpy(t *testing.T) {
	h, err := NewHistogram([]float64{0, 1, 1, 2, 3, 4}, 4)
	if err != nil {
		t.Fatalf("NewHistogram failed: %v", err)
	}

	wantEdges := []float64{0, 1, 2, 3, 4}
	wantCounts := []int{1, 2, 1, 2} // last bin is closed: holds 3 and 4
	wantDensity := []float64{1.0 / 6, 2.0 / 6, 1.0 / 6, 2.0 / 6}
	wantCenters := []float64{0.5, 1.5, 2.5, 3.5}

	cfg := DefaultAssertionConfig()
	AssertSeriesClose(t, "edges", h.Edges, wantEdges, cfg)
	AssertSeriesClose(t, "density", h.Density, wantDensity, cfg)
	AssertSeriesClose(t, "centers", h.Centers(), wantCenters, cfg)
	for i, c := range wantCounts {
		if h.Counts[i] != c {
			t.Errorf("counts[%d] = %d, want %d", i, h.Counts[i], c)
		}
	}
}

// TestHistogram_UnitArea verifies density integrates to 1.
func TestHistogram_UnitArea(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	values := make([]float64, 5000)
	for i := range values {
		values[i] = rng.NormFloat64()
	}

	h, err := NewHistogram(values, DefaultBins)
	if err != nil {
		t.Fatalf("NewHistogram failed: %v", err)
	}
	if h.Bins() != DefaultBins {
		t.Errorf("Bins() = %d, want %d", h.Bins(), DefaultBins)
	}
	if area := h.Area(); math.Abs(area-1) > 1e-9 {
		t.Errorf("area = %v, want 1", area)
	}

	total := 0
	for _, c := range h.Counts {
		total += c
	}
	if total != len(values) {
		t.Errorf("counted %d values, want %d", total, len(values))
	}
	if h.MaxDensity() <= 0 {
		t.Errorf("MaxDensity() = %v, want > 0", h.MaxDensity())
	}
	t.Logf("✓ 50-bin density integrates to %.12f", h.Area())
}

// TestHistogram_ConstantSeries verifies the ±0.5 widening for a single value.
func TestHistogram_ConstantSeries(t *testing.T) {
	h, err := NewHistogram([]float64{1, 1, 1}, 2)
	if err != nil {
		t.Fatalf("NewHistogram failed: %v", err)
	}

	cfg := DefaultAssertionConfig()
	AssertSeriesClose(t, "edges", h.Edges, []float64{0.5, 1, 1.5}, cfg)
	if h.Counts[0] != 0 || h.Counts[1] != 3 {
		t.Errorf("counts = %v, want [0 3]", h.Counts)
	}
	if math.Abs(h.Area()-1) > 1e-12 {
		t.Errorf("area = %v, want 1", h.Area())
	}
}

func TestHistogram_Errors(t *testing.T) {
	if _, err := NewHistogram(nil, 50); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("empty: err = %v, want ErrEmptySeries", err)
	}
	if _, err := NewHistogram([]float64{1, 2}, 0); err == nil {
		t.Error("zero bins: expected error")
	}
	if _, err := NewHistogram([]float64{1, math.NaN()}, 10); err == nil {
		t.Error("NaN: expected error")
	}
	if _, err := NewHistogram([]float64{math.Inf(1)}, 10); err == nil {
		t.Error("Inf: expected error")
	}
}
