package bignum

import "math"

const (
	// floorSnap treats values this close below an integer as that integer,
	// absorbing the rounding error of repeated normalization.
	floorSnap    = 1e-10
	maxFloorSnap = 1e-6

	// basePrecision is the number of base digits Floor keeps above
	// SafeExponent.
	basePrecision = 1e15
)

// Pow returns base^exp. Small exponents use math.Pow directly. Larger
// exponents go through 10^(exp·log10|base|); when that result exponent
// exceeds SafeExponent only the sign and the integer exponent are kept and
// the mantissa is reported as 1.
func Pow(base Number, exp float64) Number {
	switch {
	case math.IsNaN(exp):
		return Zero()
	case exp == 0:
		return One()
	case exp == 1:
		return base
	case base.IsZero():
		if exp < 0 {
			return MaxValue
		}
		return Zero()
	}

	sign := 1.0
	if base.Base < 0 {
		if exp != math.Trunc(exp) {
			// Non-integer power of a negative value has no real result.
			return Zero()
		}
		if math.Mod(exp, 2) != 0 {
			sign = -1
		}
	}

	if exp <= SafeExponent {
		if v := math.Pow(base.float(), exp); v != 0 && !math.IsInf(v, 0) && !math.IsNaN(v) {
			return FromFloat(v)
		}
	}

	resultExp := exp * base.Abs().Log10()
	switch {
	case resultExp >= MaxExponent:
		if sign < 0 {
			return MaxValue.Neg()
		}
		return MaxValue
	case resultExp < MinExponent:
		return Zero()
	case resultExp > SafeExponent:
		return Number{Base: sign, Exponent: int(math.Floor(resultExp))}
	}
	whole := math.Floor(resultExp)
	return normalize(sign*math.Pow(10, resultExp-whole), int(whole))
}

// PowInt is Pow with a plain float base and an integer exponent, the shape
// every cost and multiplier curve uses.
func PowInt(base float64, exp int) Number {
	return Pow(FromFloat(base), float64(exp))
}

// Log10 returns log10(n). Zero and negative values have no logarithm and
// report 0.
func (n Number) Log10() float64 {
	if n.Base <= 0 {
		return 0
	}
	return math.Log10(n.Base) + float64(n.Exponent)
}

// Sqrt returns √n; negative values yield zero.
func (n Number) Sqrt() Number {
	if n.Base <= 0 {
		return Zero()
	}
	// Make the exponent even so it halves exactly.
	base, exp := n.Base, n.Exponent
	if exp%2 != 0 {
		base *= 10
		exp--
	}
	return normalize(math.Sqrt(base), exp/2)
}

// Floor rounds toward negative infinity. Above SafeExponent a Number has no
// representable fractional part, so only the base is truncated to
// basePrecision digits. Values within floorSnap below an integer round up to
// it.
func (n Number) Floor() Number {
	if n.IsZero() {
		return n
	}
	if n.Exponent > SafeExponent {
		return normalize(math.Floor(n.Base*basePrecision)/basePrecision, n.Exponent)
	}

	v := n.float()
	f := math.Floor(v)
	tol := math.Min(floorSnap*math.Max(1, math.Abs(v)), maxFloorSnap)
	if f+1-v <= tol {
		f++
	}
	return FromFloat(f)
}
