// Package tier defines the progression ladder from pond to universe.
package tier

import (
	"fmt"
	"strings"

	"github.com/LeJamon/goMFS/internal/core/bignum"
)

// Tier is one rung of the progression ladder.
type Tier int

const (
	Pond Tier = iota
	Lake
	Ocean
	Planet
	Solar
	Galaxy
	Universe
)

// Count is the number of tiers.
const Count = int(Universe) + 1

type info struct {
	name       string
	container  string
	multiplier float64
}

// table is the single source of tier names, container keys and output
// multipliers.
var table = [Count]info{
	Pond:     {name: "pond", container: "ponds", multiplier: 1},
	Lake:     {name: "lake", container: "lakes", multiplier: 10},
	Ocean:    {name: "ocean", container: "oceans", multiplier: 100},
	Planet:   {name: "planet", container: "planets", multiplier: 1e3},
	Solar:    {name: "solar", container: "solar", multiplier: 1e4},
	Galaxy:   {name: "galaxy", container: "galaxies", multiplier: 1e5},
	Universe: {name: "universe", container: "universes", multiplier: 1e6},
}

// All lists the tiers in ladder order.
func All() []Tier {
	out := make([]Tier, Count)
	for i := range out {
		out[i] = Tier(i)
	}
	return out
}

// Valid reports whether t is on the ladder.
func (t Tier) Valid() bool {
	return t >= Pond && t <= Universe
}

func (t Tier) String() string {
	if !t.Valid() {
		return fmt.Sprintf("tier(%d)", int(t))
	}
	return table[t].name
}

// Container is the key of the container bucket that holds this tier's
// multiply entries.
func (t Tier) Container() string {
	if !t.Valid() {
		return ""
	}
	return table[t].container
}

// Multiplier is the tier's fixed output multiplier. Unknown tiers count
// as pond.
func (t Tier) Multiplier() float64 {
	if !t.Valid() {
		return 1
	}
	return table[t].multiplier
}

// MultiplierNumber is Multiplier as a Number.
func (t Tier) MultiplierNumber() bignum.Number {
	return bignum.FromFloat(t.Multiplier())
}

// Next returns the following tier; ok is false at the top.
func (t Tier) Next() (next Tier, ok bool) {
	if t >= Universe || !t.Valid() {
		return t, false
	}
	return t + 1, true
}

// IsTop reports whether t is the universe tier.
func (t Tier) IsTop() bool {
	return t == Universe
}

// Parse resolves a tier by name or container key, case-insensitively.
func Parse(s string) (Tier, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, in := range table {
		if s == in.name || s == in.container {
			return Tier(i), nil
		}
	}
	return Pond, fmt.Errorf("unknown tier %q", s)
}

// FromContainer resolves a container key.
func FromContainer(key string) (Tier, bool) {
	for i, in := range table {
		if in.container == key {
			return Tier(i), true
		}
	}
	return Pond, false
}

// MarshalText encodes the tier by name.
func (t Tier) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid tier %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText decodes a tier name.
func (t *Tier) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
