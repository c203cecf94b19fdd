package state

import (
	"encoding/json"
	"fmt"

	"github.com/LeJamon/goMFS/internal/core/bignum"
	"github.com/LeJamon/goMFS/internal/core/tier"
)

// ContainerEntry is a generation rate stashed by multiply or ascend.
type ContainerEntry struct {
	FishPerSecond bignum.Number `json:"fishPerSecond"`
	Timestamp     int64         `json:"timestamp,omitempty"`
}

// Containers holds one bucket per tier, indexed by tier.Tier. It encodes
// as an object keyed by container name ("ponds", "lakes", ...).
type Containers [tier.Count][]ContainerEntry

// Append adds an entry to the bucket of t.
func (c *Containers) Append(t tier.Tier, e ContainerEntry) {
	if !t.Valid() {
		return
	}
	c[t] = append(c[t], e)
}

// Entries returns the bucket of t.
func (c *Containers) Entries(t tier.Tier) []ContainerEntry {
	if !t.Valid() {
		return nil
	}
	return c[t]
}

// Len returns the number of entries in the bucket of t.
func (c *Containers) Len(t tier.Tier) int {
	return len(c.Entries(t))
}

// Count returns the number of entries across every bucket.
func (c *Containers) Count() int {
	n := 0
	for _, b := range c {
		n += len(b)
	}
	return n
}

// Remove deletes entry i of the bucket of t.
func (c *Containers) Remove(t tier.Tier, i int) (ContainerEntry, bool) {
	if !t.Valid() || i < 0 || i >= len(c[t]) {
		return ContainerEntry{}, false
	}
	e := c[t][i]
	c[t] = append(c[t][:i:i], c[t][i+1:]...)
	return e, true
}

// Clear empties every bucket.
func (c *Containers) Clear() {
	for i := range c {
		c[i] = []ContainerEntry{}
	}
}

// Total sums every entry of every bucket.
func (c *Containers) Total() bignum.Number {
	total := bignum.Zero()
	for _, b := range c {
		for _, e := range b {
			total = total.Add(e.FishPerSecond)
		}
	}
	return total
}

// TierTotal sums the bucket of t.
func (c *Containers) TierTotal(t tier.Tier) bignum.Number {
	total := bignum.Zero()
	for _, e := range c.Entries(t) {
		total = total.Add(e.FishPerSecond)
	}
	return total
}

// Last returns the newest entry of the bucket of t.
func (c *Containers) Last(t tier.Tier) (ContainerEntry, bool) {
	b := c.Entries(t)
	if len(b) == 0 {
		return ContainerEntry{}, false
	}
	return b[len(b)-1], true
}

// Clone deep-copies every bucket.
func (c Containers) Clone() Containers {
	var out Containers
	for i, b := range c {
		out[i] = append([]ContainerEntry{}, b...)
	}
	return out
}

// MarshalJSON writes every bucket, empty ones as [].
func (c Containers) MarshalJSON() ([]byte, error) {
	m := make(map[string][]ContainerEntry, tier.Count)
	for _, t := range tier.All() {
		b := c[t]
		if b == nil {
			b = []ContainerEntry{}
		}
		m[t.Container()] = b
	}
	return json.Marshal(m)
}

// UnmarshalJSON replaces the buckets present in data and leaves the others
// untouched. Unknown keys are ignored.
func (c *Containers) UnmarshalJSON(data []byte) error {
	var m map[string][]ContainerEntry
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("failed to decode containers: %w", err)
	}
	for key, b := range m {
		t, ok := tier.FromContainer(key)
		if !ok {
			continue
		}
		if b == nil {
			b = []ContainerEntry{}
		}
		c[t] = b
	}
	return nil
}
