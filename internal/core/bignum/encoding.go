package bignum

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrSyntax is returned when a string cannot be parsed as a Number.
var ErrSyntax = errors.New("invalid number syntax")

// String renders n as "<base>e<exponent>", the same notation Parse reads.
func (n Number) String() string {
	if n.IsZero() {
		return "0"
	}
	return strconv.FormatFloat(n.Base, 'g', -1, 64) + "e" + strconv.Itoa(n.Exponent)
}

// Parse reads a plain decimal ("1500", "2.5") or exponent notation
// ("6.9e420"). Exponents outside the float64 range are accepted.
func Parse(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero(), ErrSyntax
	}

	mantissa, expPart, hasExp := strings.Cut(strings.ToLower(s), "e")
	base, err := strconv.ParseFloat(mantissa, 64)
	if err != nil || math.IsInf(base, 0) || math.IsNaN(base) {
		return Zero(), fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	exp := 0
	if hasExp {
		e, err := strconv.ParseInt(expPart, 10, 64)
		if err != nil || e > MaxExponent || e < math.MinInt32 {
			return Zero(), fmt.Errorf("%w: %q", ErrSyntax, s)
		}
		exp = int(e)
	}
	return New(base, exp), nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) Number {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

type numberJSON struct {
	Base     float64 `json:"base"`
	Exponent int     `json:"exponent"`
}

// UnmarshalJSON accepts the {base, exponent} object and, for saves written
// before every resource was a Number, a bare JSON number. Decoded values are
// normalized.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = Zero()
		return nil
	}
	if len(data) > 0 && data[0] != '{' {
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return fmt.Errorf("failed to decode number: %w", err)
		}
		*n = FromFloat(f)
		return nil
	}

	var raw numberJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode number: %w", err)
	}
	*n = New(raw.Base, raw.Exponent)
	return nil
}
