package orderbench

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"
)

func closeTo(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// assertComplex compares by distance relative to the expected magnitude.
func assertComplex(t *testing.T, name string, got Complex, want complex128, tol float64) {
	t.Helper()
	diff := cmplx.Abs(complex(got.Re, got.Im) - want)
	if diff > tol*math.Max(1, cmplx.Abs(want)) {
		t.Errorf("%s = (%v, %v), want %v", name, got.Re, got.Im, want)
	}
}

// TestComplex_MatchesBuiltin checks every operation against complex128.
func TestComplex_MatchesBuiltin(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		a := complex(rng.NormFloat64(), rng.NormFloat64())
		b := complex(rng.NormFloat64(), rng.NormFloat64())
		s := rng.NormFloat64()

		za := Complex{Re: real(a), Im: imag(a)}
		zb := Complex{Re: real(b), Im: imag(b)}

		assertComplex(t, "Add", za.Add(zb), a+b, 1e-14)
		assertComplex(t, "Mul", za.Mul(zb), a*b, 1e-14)
		assertComplex(t, "Scale", za.Scale(s), complex(s, 0)*a, 1e-14)
		assertComplex(t, "Conj", za.Conj(), cmplx.Conj(a), 0)
		assertComplex(t, "Pow6", za.Pow(6), a*a*a*a*a*a, 1e-12)

		if !closeTo(za.Abs(), cmplx.Abs(a), 1e-14) {
			t.Errorf("Abs(%v) = %v, want %v", a, za.Abs(), cmplx.Abs(a))
		}
		if !closeTo(za.Abs2(), za.Abs()*za.Abs(), 1e-12) {
			t.Errorf("Abs2(%v) = %v, want %v", a, za.Abs2(), za.Abs()*za.Abs())
		}
		if !closeTo(za.Arg(), cmplx.Phase(a), 1e-14) {
			t.Errorf("Arg(%v) = %v, want %v", a, za.Arg(), cmplx.Phase(a))
		}
	}
}

func TestComplex_PowEdgeCases(t *testing.T) {
	z := Complex{Re: 2, Im: -3}

	if got := z.Pow(0); got != (Complex{Re: 1}) {
		t.Errorf("z^0 = %v, want 1", got)
	}
	if got := z.Pow(1); got != z {
		t.Errorf("z^1 = %v, want %v", got, z)
	}
	if got := z.Pow(-1); !got.IsBad() {
		t.Errorf("z^-1 = %v, want NaN", got)
	}
	if got := (Complex{}).Pow(6); !got.IsZero() {
		t.Errorf("0^6 = %v, want 0", got)
	}

	// Underflow: |z|⁶ below the smallest subnormal is exactly zero.
	tiny := Complex{Re: 1e-60}
	if got := tiny.Pow(6); !got.IsZero() {
		t.Errorf("(1e-60)^6 = %v, want exact 0 after underflow", got)
	}
}

// TestComplex_CubeRootsOfUnity verifies the clock phases sum to zero.
func TestComplex_CubeRootsOfUnity(t *testing.T) {
	sum := Complex{Re: 1}.Add(clockPhase).Add(clockPhase.Conj())

	if sum.Im != 0 {
		t.Errorf("Im(1 + ω + ω̄) = %v, want exactly 0", sum.Im)
	}
	if math.Abs(sum.Re) > 1e-15 {
		t.Errorf("Re(1 + ω + ω̄) = %v, want ~0", sum.Re)
	}

	cube := clockPhase.Pow(3)
	if !closeTo(cube.Re, 1, 1e-14) || math.Abs(cube.Im) > 1e-14 {
		t.Errorf("ω³ = %v, want 1", cube)
	}

	t.Logf("✓ 1 + ω + ω̄ = (%g, %g)", sum.Re, sum.Im)
}

func TestComplex_Polar(t *testing.T) {
	z := Polar(2, math.Pi/2)
	if !closeTo(z.Abs(), 2, 1e-15) || !closeTo(z.Arg(), math.Pi/2, 1e-15) {
		t.Errorf("Polar(2, π/2) = %v", z)
	}
}
