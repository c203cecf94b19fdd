package bignum

// Number is an extended-range decimal value stored as Base × 10^Exponent.
//
// A non-zero Number always satisfies 1 <= |Base| < 10; zero is {0, 0}.
// Values below 1e-15 collapse to zero, values beyond MaxExponent saturate
// to MaxValue. None of the operations in this package panic or return
// errors: degenerate inputs resolve to zero, MaxValue or a clamped result
// so a single bad calculation cannot stop the simulation.

import (
	"math"
)

const (
	// MinExponent is the smallest exponent kept; anything smaller is zero.
	MinExponent = -15
	// MaxExponent bounds the exponent so exponent sums cannot overflow.
	MaxExponent = math.MaxInt32

	// PrecisionDigits is the exponent gap beyond which the smaller addend
	// no longer changes the result.
	PrecisionDigits = 15

	// SafeExponent is the largest exponent a float64 conversion preserves
	// as a whole number.
	SafeExponent = 15

	// MaxSafeInteger is what ToFloat reports for magnitudes above SafeExponent.
	MaxSafeInteger = 1<<53 - 1

	// CompareTolerance is the base difference under which two Numbers with
	// equal exponents compare equal.
	CompareTolerance = 1e-10

	minBase = 1e-15
)

// Number is the {base, exponent} pair. The fields are exported for
// serialization; construct values with New or FromFloat so they stay
// normalized.
type Number struct {
	Base     float64 `json:"base" codec:"base"`
	Exponent int     `json:"exponent" codec:"exponent"`
}

// MaxValue is the saturated result of overflow and division by zero.
var MaxValue = Number{Base: 9.999999999999999, Exponent: MaxExponent}

// Zero returns the canonical zero.
func Zero() Number { return Number{} }

// One returns 1.
func One() Number { return Number{Base: 1} }

// New returns base × 10^exponent in normalized form.
func New(base float64, exponent int) Number {
	return normalize(base, exponent)
}

// FromInt converts an integer.
func FromInt(v int64) Number {
	return normalize(float64(v), 0)
}

// FromFloat converts a plain float64. NaN becomes zero and infinities
// saturate to ±MaxValue.
func FromFloat(v float64) Number {
	return normalize(v, 0)
}

// normalize scales base into [1, 10) and applies the zero and overflow
// guards.
func normalize(base float64, exponent int) Number {
	switch {
	case base == 0 || math.IsNaN(base):
		return Zero()
	case math.IsInf(base, 1):
		return MaxValue
	case math.IsInf(base, -1):
		return MaxValue.Neg()
	}

	// Jump most of the way in one step, then settle with the loops. Near
	// the float64 limits Pow10 itself over- or underflows, so the loops do
	// all the work there.
	if abs := math.Abs(base); abs >= 10 || abs < 1 {
		if shift := int(math.Floor(math.Log10(abs))); shift >= -300 && shift <= 300 {
			base /= math.Pow10(shift)
			exponent += shift
		}
	}
	for math.Abs(base) >= 10 {
		base /= 10
		exponent++
	}
	for b := math.Abs(base); b > 0 && b < 1; b = math.Abs(base) {
		base *= 10
		exponent--
	}

	if math.Abs(base) < minBase || exponent < MinExponent {
		return Zero()
	}
	if exponent > MaxExponent {
		if base < 0 {
			return MaxValue.Neg()
		}
		return MaxValue
	}
	return Number{Base: base, Exponent: exponent}
}

// Normalize re-applies the canonical form, for values built by hand or
// decoded from storage.
func (n Number) Normalize() Number {
	return normalize(n.Base, n.Exponent)
}

// IsZero reports whether n is zero.
func (n Number) IsZero() bool {
	return n.Base == 0
}

// Sign returns -1, 0 or 1.
func (n Number) Sign() int {
	switch {
	case n.Base > 0:
		return 1
	case n.Base < 0:
		return -1
	default:
		return 0
	}
}

// Neg returns -n.
func (n Number) Neg() Number {
	if n.IsZero() {
		return n
	}
	return Number{Base: -n.Base, Exponent: n.Exponent}
}

// Abs returns |n|.
func (n Number) Abs() Number {
	if n.Base < 0 {
		return n.Neg()
	}
	return n
}

// IsMax reports whether n has saturated.
func (n Number) IsMax() bool {
	return n.Exponent >= MaxExponent
}

// ToFloat converts to a plain float64. Magnitudes above 10^SafeExponent are
// capped at ±MaxSafeInteger.
func (n Number) ToFloat() float64 {
	if n.IsZero() {
		return 0
	}
	if n.Exponent > SafeExponent {
		if n.Base < 0 {
			return -MaxSafeInteger
		}
		return MaxSafeInteger
	}
	return n.float()
}

// float is the uncapped conversion; it may return ±Inf for large exponents.
func (n Number) float() float64 {
	if n.IsZero() {
		return 0
	}
	if n.Exponent > 308 {
		return math.Inf(n.Sign())
	}
	return n.Base * math.Pow10(n.Exponent)
}
