// Package format renders Numbers for display.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/LeJamon/goMFS/internal/core/bignum"
)

// ScientificExponent is the exponent from which Number switches to
// e-notation.
const ScientificExponent = 15

// suffixes names successive powers of 1000.
var suffixes = []string{"", "K", "M", "B", "T", "Qa", "Qi", "Sx", "Sp", "Oc", "No"}

// Number renders n for display: "0", plain integers below 1000, suffixed
// values ("2.50K", "340M"), and "6.90e420" from ScientificExponent upward.
// The same Number always renders to the same string.
func Number(n bignum.Number) string {
	if n.IsZero() {
		return "0"
	}
	if n.Exponent >= ScientificExponent {
		return fmt.Sprintf("%.2fe%d", n.Base, n.Exponent)
	}

	v := n.ToFloat()
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	idx := 0
	for v >= 1000 && idx < len(suffixes)-1 {
		v /= 1000
		idx++
	}

	switch {
	case idx == 0:
		return sign + strconv.FormatFloat(math.Floor(v+1e-9), 'f', 0, 64)
	case v >= 100:
		return sign + strconv.FormatFloat(math.Floor(v), 'f', 0, 64) + suffixes[idx]
	default:
		// Truncate so 99.999K does not print as 100.00K.
		return sign + fmt.Sprintf("%.2f", math.Floor(v*100+1e-9)/100) + suffixes[idx]
	}
}

// Rate renders a per-second generation rate.
func Rate(n bignum.Number) string {
	return Number(n) + "/s"
}

// Multiplier renders a plain multiplier such as the crunch bonus: "1.30x".
func Multiplier(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "0.00x"
	}
	return fmt.Sprintf("%.2fx", f)
}

// Seconds renders a countdown in seconds with one decimal, "0s" when done.
func Seconds(s float64) string {
	if s <= 0 {
		return "0s"
	}
	return strconv.FormatFloat(s, 'f', 1, 64) + "s"
}

// Playtime renders accumulated play time as hours, minutes and seconds.
func Playtime(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	var b strings.Builder
	if h > 0 {
		fmt.Fprintf(&b, "%dh ", h)
	}
	if h > 0 || m > 0 {
		fmt.Fprintf(&b, "%dm ", m)
	}
	fmt.Fprintf(&b, "%ds", s)
	return b.String()
}
