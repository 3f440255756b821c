package orderbench

import "math"

// Complex is a complex number held as explicit (Re, Im) components.
//
// The order parameter and its 6th power are built from this type so the
// arithmetic is visible: add, scale, multiply and integer power are the only
// operations the engine needs.
type Complex struct {
	Re float64
	Im float64
}

// Polar returns r·e^{iθ}.
func Polar(r, theta float64) Complex {
	return Complex{Re: r * math.Cos(theta), Im: r * math.Sin(theta)}
}

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	return Complex{Re: z.Re + w.Re, Im: z.Im + w.Im}
}

// Scale returns s·z for a real s.
func (z Complex) Scale(s float64) Complex {
	return Complex{Re: s * z.Re, Im: s * z.Im}
}

// Mul returns z·w.
func (z Complex) Mul(w Complex) Complex {
	return Complex{
		Re: z.Re*w.Re - z.Im*w.Im,
		Im: z.Re*w.Im + z.Im*w.Re,
	}
}

// Conj returns the complex conjugate of z.
func (z Complex) Conj() Complex {
	return Complex{Re: z.Re, Im: -z.Im}
}

// Pow returns z^n for n ≥ 0 by binary exponentiation.
// Negative exponents are not needed by the engine and return (NaN, NaN).
func (z Complex) Pow(n int) Complex {
	if n < 0 {
		return Complex{Re: math.NaN(), Im: math.NaN()}
	}

	result := Complex{Re: 1}
	base := z
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return result
}

// Abs returns |z|, computed without intermediate overflow.
func (z Complex) Abs() float64 {
	return math.Hypot(z.Re, z.Im)
}

// Abs2 returns |z|² = Re² + Im².
func (z Complex) Abs2() float64 {
	return z.Re*z.Re + z.Im*z.Im
}

// Arg returns the phase of z in (-π, π].
func (z Complex) Arg() float64 {
	return math.Atan2(z.Im, z.Re)
}

// IsZero reports whether both components are exactly zero.
func (z Complex) IsZero() bool {
	return z.Re == 0 && z.Im == 0
}

// IsBad reports whether either component is NaN or infinite.
func (z Complex) IsBad() bool {
	return math.IsNaN(z.Re) || math.IsNaN(z.Im) ||
		math.IsInf(z.Re, 0) || math.IsInf(z.Im, 0)
}
