package orderbench

import (
	"fmt"
	"math"
	"testing"
)

// AssertionConfig contains tolerances for order-parameter properties.
type AssertionConfig struct {
	// Slack allowed outside c6 ∈ [-1, 1]
	C6Tolerance float64

	// Largest |ψ|² a valid sample can have: (1 + 1/2 + 1/2)² / 3
	MaxMagnitudeSq float64

	// Tolerance when comparing two series value by value
	SeriesTolerance float64

	// Site indices probed by the periodicity check
	ProbeSites int
}

// DefaultAssertionConfig returns tight tolerances.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		C6Tolerance:     1e-9,
		MaxMagnitudeSq:  4.0/3.0 + 1e-9,
		SeriesTolerance: 1e-12,
		ProbeSites:      1000,
	}
}

// AssertC6Bounded verifies every kept sample has c6 in [-1, 1].
//
// Mathematical property:
//
//	|Re(ψ⁶)| ≤ |ψ⁶|  ⇒  -1 ≤ c6 ≤ 1
func AssertC6Bounded(t testing.TB, s Series, cfg AssertionConfig) {
	t.Helper()

	var failures []string
	for i, sample := range s.Samples {
		if math.IsNaN(sample.C6) || math.Abs(sample.C6) > 1+cfg.C6Tolerance {
			failures = append(failures, fmt.Sprintf(
				"  sample %d (record %d, layer %d): c6=%v", i, sample.Record, sample.Layer, sample.C6))
		}
	}

	if len(failures) > 0 {
		t.Errorf("c6 outside [-1, 1]:\n%v", failures)
	}
}

// AssertMagnitudeBounded verifies 0 ≤ |ψ|² ≤ 4/3 for every sample.
func AssertMagnitudeBounded(t testing.TB, s Series, cfg AssertionConfig) {
	t.Helper()

	for i, sample := range s.Samples {
		if sample.MagnitudeSq < 0 || sample.MagnitudeSq > cfg.MaxMagnitudeSq {
			t.Errorf("sample %d: |ψ|²=%v outside [0, %v]", i, sample.MagnitudeSq, cfg.MaxMagnitudeSq)
		}
	}
}

// AssertDropAccounting verifies kept plus dropped samples cover every record
// (times layers) and that nothing was invented.
//
//	len(series) + dropped = records · layers,  len(series) ≤ records · layers
func AssertDropAccounting(t testing.TB, s Series, layers int) {
	t.Helper()

	if layers < 1 {
		layers = 1
	}
	want := s.Records * layers
	if got := s.Len() + s.Dropped; got != want {
		t.Errorf("samples %d + dropped %d = %d, want %d (records %d × layers %d)",
			s.Len(), s.Dropped, got, want, s.Records, layers)
	}
	if s.Len() > want {
		t.Errorf("series has %d samples for %d records", s.Len(), s.Records)
	}
}

// AssertRecordOrder verifies samples appear in non-decreasing record order.
func AssertRecordOrder(t testing.TB, s Series) {
	t.Helper()

	for i := 1; i < len(s.Samples); i++ {
		prev, cur := s.Samples[i-1], s.Samples[i]
		if cur.Record < prev.Record || (cur.Record == prev.Record && cur.Layer <= prev.Layer) {
			t.Errorf("sample %d (record %d, layer %d) follows (record %d, layer %d)",
				i, cur.Record, cur.Layer, prev.Record, prev.Layer)
		}
	}
}

// AssertSublatticePeriodic verifies class(i) ∈ {0,1,2} and
// class(i) == class(i + L²) for the first ProbeSites indices.
func AssertSublatticePeriodic(t testing.TB, length int, cfg AssertionConfig) {
	t.Helper()

	area := length * length
	for i := 0; i < cfg.ProbeSites; i++ {
		class := SublatticeClass(i, length)
		if class < 0 || class >= Sublattices {
			t.Fatalf("L=%d: class(%d)=%d outside [0, %d)", length, i, class, Sublattices)
		}
		if shifted := SublatticeClass(i+area, length); shifted != class {
			t.Fatalf("L=%d: class(%d)=%d but class(%d)=%d", length, i, class, i+area, shifted)
		}
	}
}

// AssertSeriesClose verifies two value slices match element by element.
func AssertSeriesClose(t testing.TB, name string, got, want []float64, cfg AssertionConfig) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("%s: got %d values, want %d", name, len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > cfg.SeriesTolerance {
			t.Errorf("%s[%d]: got %v, want %v", name, i, got[i], want[i])
		}
	}
}

// AssertOrderParameterProperties runs every series assertion with default
// config.
func AssertOrderParameterProperties(t *testing.T, s Series, layers int) {
	t.Helper()

	cfg := DefaultAssertionConfig()

	t.Run("C6Bounded", func(t *testing.T) {
		AssertC6Bounded(t, s, cfg)
	})

	t.Run("MagnitudeBounded", func(t *testing.T) {
		AssertMagnitudeBounded(t, s, cfg)
	})

	t.Run("DropAccounting", func(t *testing.T) {
		AssertDropAccounting(t, s, layers)
	})

	t.Run("RecordOrder", func(t *testing.T) {
		AssertRecordOrder(t, s)
	})
}

// PrintAnalysis outputs the series statistics to the test log.
func PrintAnalysis(t testing.TB, s Series) {
	t.Helper()

	sum := s.Summary()
	t.Logf("\n=== Order Parameter Analysis ===")
	t.Logf("Records: %d, samples: %d, dropped (ψ⁶ = 0): %d", sum.Records, s.Len(), sum.Dropped)
	t.Logf("  series  mean        stddev      min         P50         P99         max")
	for _, row := range []struct {
		name string
		s    Summary
	}{{"c6", sum.C6}, {"|ψ|²", sum.MagnitudeSq}} {
		t.Logf("  %-6s  %10.6f  %10.6f  %10.6f  %10.6f  %10.6f  %10.6f",
			row.name, row.s.Mean, row.s.Stddev, row.s.Min, row.s.P50, row.s.P99, row.s.Max)
	}

	switch {
	case s.Len() == 0:
		t.Logf("  ✗ No samples kept")
	case sum.C6.Mean > 0.5:
		t.Logf("  ✓ c6 concentrated near +1 (aligned six-fold phase)")
	case sum.C6.Mean < -0.5:
		t.Logf("  ✓ c6 concentrated near -1 (anti-aligned six-fold phase)")
	default:
		t.Logf("  ⚠ c6 spread across [-1, 1] (no dominant six-fold phase)")
	}
}
