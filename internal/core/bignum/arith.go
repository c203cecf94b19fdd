package bignum

import "math"

// Add returns n + other. When the exponents are more than PrecisionDigits
// apart the smaller operand is below representable precision and the
// larger one is returned unchanged.
func (n Number) Add(other Number) Number {
	if n.IsZero() {
		return other
	}
	if other.IsZero() {
		return n
	}

	diff := n.Exponent - other.Exponent
	switch {
	case diff == 0:
		return normalize(n.Base+other.Base, n.Exponent)
	case diff > PrecisionDigits:
		return n
	case diff < -PrecisionDigits:
		return other
	case diff > 0:
		return normalize(n.Base+other.Base/math.Pow10(diff), n.Exponent)
	default:
		return normalize(n.Base/math.Pow10(-diff)+other.Base, other.Exponent)
	}
}

// Sub returns n - other clamped at zero. Resource quantities never go
// negative, so a negative difference yields zero; use Add with Neg for
// signed arithmetic.
func (n Number) Sub(other Number) Number {
	r := n.Add(other.Neg())
	if r.Base < 0 {
		return Zero()
	}
	return r
}

// Mul returns n × other.
func (n Number) Mul(other Number) Number {
	if n.IsZero() || other.IsZero() {
		return Zero()
	}
	return normalize(n.Base*other.Base, n.Exponent+other.Exponent)
}

// MulFloat is Mul with a plain multiplier.
func (n Number) MulFloat(f float64) Number {
	return n.Mul(FromFloat(f))
}

// Div returns n / other. Dividing by zero yields MaxValue.
func (n Number) Div(other Number) Number {
	if other.IsZero() {
		return MaxValue
	}
	if n.IsZero() {
		return Zero()
	}
	return normalize(n.Base/other.Base, n.Exponent-other.Exponent)
}

// DivFloat is Div with a plain divisor.
func (n Number) DivFloat(f float64) Number {
	return n.Div(FromFloat(f))
}

// Cmp returns -1, 0 or 1 as n is less than, equal to or greater than
// other. Values of the same sign are ordered by exponent first; bases
// closer than CompareTolerance compare equal.
func (n Number) Cmp(other Number) int {
	ns, os := n.Sign(), other.Sign()
	if ns != os {
		if ns < os {
			return -1
		}
		return 1
	}
	if ns == 0 {
		return 0
	}

	if n.Exponent != other.Exponent {
		r := 1
		if n.Exponent < other.Exponent {
			r = -1
		}
		return r * ns
	}

	d := n.Base - other.Base
	switch {
	case math.Abs(d) < CompareTolerance:
		return 0
	case d < 0:
		return -1
	default:
		return 1
	}
}

// Equal reports whether n and other compare equal.
func (n Number) Equal(other Number) bool {
	return n.Cmp(other) == 0
}

// GreaterOrEqual reports n >= other; it is the affordability check.
func (n Number) GreaterOrEqual(other Number) bool {
	return n.Cmp(other) >= 0
}

// Less reports n < other.
func (n Number) Less(other Number) bool {
	return n.Cmp(other) < 0
}

// Min returns the smaller of a and b.
func Min(a, b Number) Number {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b Number) Number {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// Sum adds all values.
func Sum(values ...Number) Number {
	total := Zero()
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
