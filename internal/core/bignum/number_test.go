package bignum

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireNormalized(t *testing.T, n Number) {
	t.Helper()
	if n.IsZero() {
		require.Equal(t, Zero(), n)
		return
	}
	abs := math.Abs(n.Base)
	require.GreaterOrEqual(t, abs, 1.0, "base %v below 1", n.Base)
	require.Less(t, abs, 10.0, "base %v not below 10", n.Base)
}

func TestNew_Normalizes(t *testing.T) {
	tests := []struct {
		name string
		base float64
		exp  int
		want Number
	}{
		{name: "already normal", base: 2.5, exp: 3, want: Number{2.5, 3}},
		{name: "scale down", base: 2500, exp: 0, want: Number{2.5, 3}},
		{name: "scale up", base: 0.025, exp: 5, want: Number{2.5, 3}},
		{name: "negative", base: -42, exp: 0, want: Number{-4.2, 1}},
		{name: "zero", base: 0, exp: 12, want: Zero()},
		{name: "underflow to zero", base: 1, exp: -16, want: Zero()},
		{name: "smallest kept", base: 1, exp: -15, want: Number{1, -15}},
		{name: "NaN is zero", base: math.NaN(), exp: 0, want: Zero()},
		{name: "infinity saturates", base: math.Inf(1), exp: 0, want: MaxValue},
		{name: "exponent overflow saturates", base: 50, exp: MaxExponent, want: MaxValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.base, tt.exp)
			assert.Equal(t, tt.want.Exponent, got.Exponent)
			assert.InDelta(t, tt.want.Base, got.Base, 1e-12)
			requireNormalized(t, got)
		})
	}
}

func TestFromFloat_LargeAndTiny(t *testing.T) {
	n := FromFloat(1.7e308)
	assert.Equal(t, 308, n.Exponent)
	assert.InDelta(t, 1.7, n.Base, 1e-12)

	assert.True(t, FromFloat(5e-324).IsZero())
	assert.True(t, FromFloat(-1e-20).IsZero())
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b Number
		want Number
	}{
		{name: "same exponent", a: New(2, 3), b: New(3, 3), want: New(5, 3)},
		{name: "carry", a: New(6, 0), b: New(7, 0), want: New(1.3, 1)},
		{name: "different exponents", a: New(1, 3), b: New(5, 1), want: New(1.05, 3)},
		{name: "smaller first", a: New(5, 1), b: New(1, 3), want: New(1.05, 3)},
		{name: "gap beyond precision keeps larger", a: New(1, 20), b: New(9, 4), want: New(1, 20)},
		{name: "gap beyond precision keeps larger reversed", a: New(9, 4), b: New(1, 20), want: New(1, 20)},
		{name: "opposite signs cancel", a: New(3, 2), b: New(-3, 2), want: Zero()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Add(tt.b)
			assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
			requireNormalized(t, got)
		})
	}
}

func TestAdd_ZeroIdentityIsExact(t *testing.T) {
	values := []Number{One(), New(6.9, 420), New(-3.14159, -7), New(9.999999999999, 15), MaxValue}
	for _, v := range values {
		assert.Equal(t, v, v.Add(Zero()))
		assert.Equal(t, v, Zero().Add(v))
	}
}

func TestSub_ClampsAtZero(t *testing.T) {
	tests := []struct {
		name string
		a, b Number
	}{
		{name: "smaller minus larger", a: New(1, 2), b: New(5, 2)},
		{name: "tiny minus huge", a: One(), b: New(1, 400)},
		{name: "zero minus positive", a: Zero(), b: New(3, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Sub(tt.b)
			assert.GreaterOrEqual(t, got.Base, 0.0)
			assert.True(t, got.IsZero())
		})
	}

	assert.True(t, New(5, 2).Sub(New(2, 2)).Equal(New(3, 2)))
}

func TestMulDiv(t *testing.T) {
	assert.True(t, New(2, 3).Mul(New(5, 4)).Equal(New(1, 8)))
	assert.True(t, New(1, 8).Div(New(5, 4)).Equal(New(2, 3)))
	assert.True(t, Zero().Mul(New(5, 100)).IsZero())
	assert.True(t, Zero().Div(New(5, 100)).IsZero())
	assert.Equal(t, MaxValue, New(5, 3).Div(Zero()))
}

func TestMulDiv_RoundTrip(t *testing.T) {
	values := []Number{New(1, 0), New(3.3, 4), New(7.77, 12), New(1.5, -3), New(9.1, 14)}
	for _, a := range values {
		for _, b := range values {
			// Quotients below 10^MinExponent collapse to zero.
			if a.Exponent-b.Exponent-1 < MinExponent {
				continue
			}
			got := a.Div(b).Mul(b)
			assert.Equal(t, 0, got.Cmp(a), "(%v / %v) * %v = %v", a, b, b, got)
		}
	}
}

func TestDiv_Underflow(t *testing.T) {
	tests := []struct {
		name string
		a, b Number
	}{
		{name: "fraction over large", a: New(1.5, -3), b: New(9.1, 14)},
		{name: "fraction over trillions", a: New(1.5, -3), b: New(7.77, 12)},
		{name: "one over huge", a: One(), b: New(1, 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Div(tt.b)
			assert.True(t, got.IsZero(), "got %v", got)
			assert.Equal(t, Zero(), got)
			assert.True(t, got.Mul(tt.b).IsZero())
		})
	}
}

func TestCmp(t *testing.T) {
	tests := []struct {
		name string
		a, b Number
		want int
	}{
		{name: "exponent decides", a: New(9, 2), b: New(1, 3), want: -1},
		{name: "base decides", a: New(2, 3), b: New(1.5, 3), want: 1},
		{name: "within tolerance", a: New(2, 3), b: New(2+1e-11, 3), want: 0},
		{name: "zero below fraction", a: Zero(), b: New(5, -1), want: -1},
		{name: "negative below zero", a: New(-5, 10), b: Zero(), want: -1},
		{name: "negatives by magnitude", a: New(-5, 10), b: New(-5, 2), want: -1},
		{name: "zeros", a: Zero(), b: Zero(), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Cmp(tt.b))
			assert.Equal(t, -tt.want, tt.b.Cmp(tt.a))
		})
	}
}

func TestMinMaxSum(t *testing.T) {
	a, b := New(3, 5), New(4, 2)
	assert.Equal(t, b, Min(a, b))
	assert.Equal(t, a, Max(a, b))
	assert.True(t, Sum(a, b, One()).Equal(New(3.00401, 5)))
	assert.True(t, Sum().IsZero())
}

func TestPow(t *testing.T) {
	tests := []struct {
		name string
		base Number
		exp  float64
		want Number
	}{
		{name: "rod curve", base: FromFloat(1.5), exp: 10, want: FromFloat(57.6650390625)},
		{name: "exponent zero", base: New(6.9, 420), exp: 0, want: One()},
		{name: "exponent one", base: New(6.9, 420), exp: 1, want: New(6.9, 420)},
		{name: "zero base", base: Zero(), exp: 3, want: Zero()},
		{name: "zero base negative exponent", base: Zero(), exp: -1, want: MaxValue},
		{name: "power of ten beyond safe range", base: FromInt(10), exp: 20, want: New(1, 20)},
		{name: "large result drops mantissa", base: FromInt(2), exp: 100, want: New(1, 30)},
		{name: "large exponent small result", base: FromFloat(1.01), exp: 20, want: FromFloat(math.Pow(1.01, 20))},
		{name: "big base", base: New(1, 200), exp: 3, want: New(1, 600)},
		{name: "negative odd", base: FromInt(-2), exp: 3, want: FromInt(-8)},
		{name: "negative fractional", base: FromInt(-2), exp: 0.5, want: Zero()},
		{name: "overflow saturates", base: New(1, 1000), exp: 1e7, want: MaxValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pow(tt.base, tt.exp)
			assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
			requireNormalized(t, got)
		})
	}
}

func TestPowInt_MatchesCurve(t *testing.T) {
	for level := 0; level <= 10; level++ {
		got := PowInt(1.2, level)
		assert.InDelta(t, math.Pow(1.2, float64(level)), got.ToFloat(), 1e-9)
	}
}

func TestLog10AndSqrt(t *testing.T) {
	assert.InDelta(t, 420.838849, New(6.9, 420).Log10(), 1e-6)
	assert.Equal(t, 0.0, Zero().Log10())
	assert.Equal(t, 0.0, New(-5, 3).Log10())

	assert.True(t, New(1.6, 5).Sqrt().Equal(FromInt(400)))
	assert.True(t, New(9, 100).Sqrt().Equal(New(3, 50)))
	assert.True(t, New(-4, 0).Sqrt().IsZero())
}

func TestFloor(t *testing.T) {
	tests := []struct {
		name string
		in   Number
		want Number
	}{
		{name: "fraction", in: FromFloat(3.7), want: FromInt(3)},
		{name: "below one", in: FromFloat(0.6), want: Zero()},
		{name: "negative", in: FromFloat(-1.5), want: FromInt(-2)},
		{name: "snaps just below integer", in: New(9.999999999999998, -1), want: One()},
		{name: "huge keeps value", in: New(6.9, 420), want: New(6.9, 420)},
		{name: "huge truncates base digits", in: New(1.23456789012345678, 20), want: New(1.23456789012345, 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Floor()
			assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
		})
	}
}

func TestToFloat(t *testing.T) {
	assert.Equal(t, 2500.0, New(2.5, 3).ToFloat())
	assert.Equal(t, float64(MaxSafeInteger), New(1, 16).ToFloat())
	assert.Equal(t, -float64(MaxSafeInteger), New(-1, 16).ToFloat())
	assert.Equal(t, 0.0, Zero().ToFloat())
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Number
		wantErr bool
	}{
		{in: "1500", want: New(1.5, 3)},
		{in: "6.9e420", want: New(6.9, 420)},
		{in: " 25E-1 ", want: New(2.5, 0)},
		{in: "0", want: Zero()},
		{in: "", wantErr: true},
		{in: "fish", wantErr: true},
		{in: "1e", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrSyntax)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want))
		})
	}
}

func TestJSON(t *testing.T) {
	data, err := json.Marshal(New(6.9, 420))
	require.NoError(t, err)
	assert.JSONEq(t, `{"base":6.9,"exponent":420}`, string(data))

	var fromObject Number
	require.NoError(t, json.Unmarshal([]byte(`{"base":250,"exponent":1}`), &fromObject))
	assert.Equal(t, New(2.5, 3), fromObject)

	var legacy Number
	require.NoError(t, json.Unmarshal([]byte(`1234`), &legacy))
	assert.True(t, legacy.Equal(New(1.234, 3)))

	var null Number
	require.NoError(t, json.Unmarshal([]byte(`null`), &null))
	assert.True(t, null.IsZero())

	var bad Number
	require.Error(t, json.Unmarshal([]byte(`"x"`), &bad))
}
