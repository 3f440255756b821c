// Package orderbench computes the three-state clock order parameter and its
// C6 invariant from QUBO / simulated annealing solutions of a triangular
// three-coloring lattice.
//
// # Overview
//
// Each solution assigns a boolean to every lattice site. orderbench colors the
// sites into three sublattices, turns every sublattice into a magnetization,
// and combines the three into one complex order parameter. Two numbers come
// out per solution: c6, the phase alignment of ψ⁶, and |ψ|², the squared
// magnitude. Their distributions over a batch are what the analysis studies.
//
// # Architecture
//
// The package components:
//
//   - complex/    - Explicit (Re, Im) arithmetic
//   - lattice/    - Sublattice coloring and magnetizations
//   - order/      - Order-parameter engine
//   - metadata/   - Dataset path convention
//   - solution/   - Solution document loading
//   - series/     - Text output, result files, two-column loading
//   - histogram/  - Density histograms for plotting
//   - stats/      - Series statistics
//   - assertions/ - Test helpers for order-parameter properties
//
// # Quick Start
//
// Analyse one dataset file:
//
//	md, series, err := orderbench.AnalyzeFile(
//	    "../target/Gamma0.0/Strength1.0_Lattice18_18_1_Time600.json",
//	    orderbench.FileOptions{Options: orderbench.DefaultOptions()},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("L=%d, %d samples, %d dropped\n", md.Length, series.Len(), series.Dropped)
//	series.WriteTSV(os.Stdout)
//
// # Sublattices
//
// Sites are stored row-major on an L×L lattice. The color of site i is
//
//	class(i) = (⌊i' / L⌋ + i') mod 3,  i' = i mod L²
//
// Every class must be populated in every record; an empty class is an
// ErrEmptySublattice error rather than a division by zero.
//
// # The order parameter
//
// With sublattice magnetizations m0, m1, m2 (each in [-1, 1]):
//
//	ψ  = (m0 + m1·e^{i4π/3} + m2·e^{-i4π/3}) / √3
//	c6 = Re(ψ⁶) / |ψ⁶|
//
// Properties:
//   - c6 ∈ [-1, 1]
//   - 0 ≤ |ψ|² ≤ 4/3
//   - m0 = m1 = m2 gives ψ = 0 up to rounding
//
// When ψ⁶ is exactly zero c6 is undefined and the sample is dropped.
// Series.Dropped counts these; they are not errors.
//
// # Dataset paths
//
// Simulation parameters live in the file path:
//
//	<root>/<subroot>/Gamma<g>/Strength<s>_Lattice<L>_<L>_<h>_Time<t>.<ext>
//
// ParseMetadata decodes all of them, ParseGamma and FileType answer the
// lightweight queries.
//
// # Testing
//
// Use assertions to validate order-parameter properties:
//
//	func TestMyBatch(t *testing.T) {
//	    series, _ := orderbench.Analyze(18, records, orderbench.DefaultOptions())
//
//	    orderbench.AssertOrderParameterProperties(t, series, 1)
//	    orderbench.AssertSublatticePeriodic(t, 18, orderbench.DefaultAssertionConfig())
//	}
package orderbench
