package orderbench

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
)

// clockPhase is e^{i·4π/3}, the primitive cube root of unity that rotates
// sublattice 1 onto the clock-model axis. Sublattice 2 uses its conjugate so
// the two imaginary contributions cancel exactly for equal magnetizations.
var clockPhase = Polar(1, 4*math.Pi/3)

// invSqrt3 normalizes the order parameter so |ψ|² ≤ 4/3.
var invSqrt3 = 1 / math.Sqrt(3)

// ErrMalformedRecord is returned for solution records that cannot be analysed:
// missing configuration, non-integer or negative site index, non-boolean value,
// or an index outside the declared layers.
var ErrMalformedRecord = errors.New("malformed solution record")

// Record is one simulated annealing / QUBO solution.
type Record struct {
	Configuration map[int]bool // Site index → spin/color bit
	Energy        float64      // Solver energy of this configuration
	Frequency     int          // Times the solver returned this configuration
}

// Sample is the order-parameter summary of one record (or one layer of it).
type Sample struct {
	C6          float64 // Re(ψ⁶)/|ψ⁶|, always in [-1, 1]
	MagnitudeSq float64 // |ψ|² = Re(ψ)² + Im(ψ)²
	Record      int     // Index of the record in its batch
	Layer       int     // Layer within the record (0 when folded)
	Energy      float64 // Energy of the source record
}

// Series is the ordered output of one analysis run.
type Series struct {
	Samples []Sample
	Records int // Records analysed
	Dropped int // Samples discarded because ψ⁶ was exactly zero
}

// C6 returns the c6 values in sample order.
func (s Series) C6() []float64 {
	out := make([]float64, len(s.Samples))
	for i, sample := range s.Samples {
		out[i] = sample.C6
	}
	return out
}

// MagnitudeSq returns the |ψ|² values in sample order.
func (s Series) MagnitudeSq() []float64 {
	out := make([]float64, len(s.Samples))
	for i, sample := range s.Samples {
		out[i] = sample.MagnitudeSq
	}
	return out
}

// Len returns the number of kept samples.
func (s Series) Len() int {
	return len(s.Samples)
}

// Options controls an analysis run.
type Options struct {
	// Layers splits each record into stacked L×L layers (layer = index / L²).
	// Values ≤ 1 fold every index onto a single lattice copy.
	Layers int

	// Output receives the finished series as tab-separated c6/|ψ|² lines.
	// Nil disables text output.
	Output io.Writer

	// Logger traces dropped samples at debug level. Nil discards.
	Logger *slog.Logger
}

// DefaultOptions folds every record onto one layer with no text output.
func DefaultOptions() Options {
	return Options{Layers: 1}
}

// OrderParameter forms the complex clock-model order parameter
//
//	ψ = (m0 + m1·e^{i4π/3} + m2·e^{-i4π/3}) / √3
//
// from three sublattice magnetizations.
func OrderParameter(m [Sublattices]float64) Complex {
	psi := Complex{Re: m[0]}
	psi = psi.Add(clockPhase.Scale(m[1]))
	psi = psi.Add(clockPhase.Conj().Scale(m[2]))
	return psi.Scale(invSqrt3)
}

// C6 returns Re(ψ⁶)/|ψ⁶|, the phase alignment of the six-fold invariant.
// ok is false when ψ⁶ is exactly zero and c6 is undefined.
func C6(psi Complex) (c6 float64, ok bool) {
	p6 := psi.Pow(6)
	if p6.IsZero() {
		return 0, false
	}
	return p6.Re / p6.Abs(), true
}

// Analyze computes the order-parameter series of a batch of records on an
// L×L lattice.
//
// Samples whose ψ⁶ is exactly zero are dropped and counted in Series.Dropped;
// they are not errors. A record with an unpopulated sublattice class fails the
// whole run with ErrEmptySublattice. When opts.Output is set the complete
// series is written there only after every record succeeded.
func Analyze(length int, records []Record, opts Options) (Series, error) {
	if length <= 0 {
		return Series{}, fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	}

	layers := opts.Layers
	if layers < 1 {
		layers = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	series := Series{
		Samples: make([]Sample, 0, len(records)*layers),
		Records: len(records),
	}

	for i, rec := range records {
		accs, err := accumulate(length, layers, rec)
		if err != nil {
			return Series{}, fmt.Errorf("record %d: %w", i, err)
		}

		for layer, acc := range accs {
			m, err := acc.Magnetizations()
			if err != nil {
				return Series{}, fmt.Errorf("record %d layer %d: %w", i, layer, err)
			}

			psi := OrderParameter(m)
			c6, ok := C6(psi)
			if !ok {
				series.Dropped++
				logger.Debug("dropping degenerate sample",
					"record", i, "layer", layer, "magnetizations", m)
				continue
			}

			series.Samples = append(series.Samples, Sample{
				C6:          c6,
				MagnitudeSq: psi.Abs2(),
				Record:      i,
				Layer:       layer,
				Energy:      rec.Energy,
			})
		}
	}

	if opts.Output != nil {
		if err := series.WriteTSV(opts.Output); err != nil {
			return series, fmt.Errorf("write series: %w", err)
		}
	}

	return series, nil
}

// accumulate sorts every site of a record into its layer and sublattice.
func accumulate(length, layers int, rec Record) ([]Accumulator, error) {
	if rec.Configuration == nil {
		return nil, fmt.Errorf("%w: missing configuration", ErrMalformedRecord)
	}

	area := length * length
	accs := make([]Accumulator, layers)
	for index, bit := range rec.Configuration {
		if index < 0 {
			return nil, fmt.Errorf("%w: negative site index %d", ErrMalformedRecord, index)
		}

		layer := 0
		if layers > 1 {
			layer = index / area
			if layer >= layers {
				return nil, fmt.Errorf("%w: site %d is in layer %d, lattice has %d",
					ErrMalformedRecord, index, layer, layers)
			}
		}

		accs[layer].Add(SublatticeClass(index, length), bit)
	}
	return accs, nil
}
