// Package state holds the complete, serializable game state.
//
// A State is owned by exactly one game.Game and passed by pointer to the
// subsystems that mutate it; nothing in this package is global. Every field
// is part of the persisted schema, so JSON names are stable across versions
// and new fields must default sensibly when absent from older saves.
package state

import (
	"github.com/LeJamon/goMFS/internal/core/bignum"
	"github.com/LeJamon/goMFS/internal/core/tier"
)

// MaxLocalLevel caps rod, net and bait upgrades.
const MaxLocalLevel = 10

// Nets tracks passive net income for the current tier.
type Nets struct {
	Count                 int           `json:"count"`
	Fish                  bignum.Number `json:"fish"`
	FractionalAccumulator bignum.Number `json:"fractionalAccumulator"`
}

// LocalUpgrades reset whenever the tier resets.
type LocalUpgrades struct {
	RodLevel  int `json:"rodLevel"`
	NetLevel  int `json:"netLevel"`
	BaitLevel int `json:"baitLevel"`
}

// GeneralUpgrades survive every reset, parallelize included.
type GeneralUpgrades struct {
	CatchFishMultiplier          int `json:"catchFishMultiplier"`
	AutoNetCollectInterval       int `json:"autoNetCollectInterval"`
	FishingMastery               int `json:"fishingMastery"`
	NetMastery                   int `json:"netMastery"`
	BaitMastery                  int `json:"baitMastery"`
	MultiversalPropagation       int `json:"multiversalPropagation"`
	ParallelizedPropagation      int `json:"parallelizedPropagation"`
	ParallelMultiverseMultiplier int `json:"parallelMultiverseMultiplier"`

	// Unlocked records one-time purchases (max buyers, auto unlocks) by
	// upgrade id.
	Unlocked map[string]bool `json:"unlocked"`
}

// Coefficients are the balance knobs chosen by the configured preset.
type Coefficients struct {
	TicksPerSecond          int     `json:"ticksPerSecond"`
	FishingSpeedMultiplier  float64 `json:"fishingSpeedMultiplier"`
	NetCapacityMultiplier   float64 `json:"netCapacityMultiplier"`
	NetBaseCapacity         float64 `json:"netBaseCapacity"`
	AutoCollectBaseInterval float64 `json:"autoCollectBaseInterval"`
	AutoCollectStep         float64 `json:"autoCollectStep"`
	CrunchIncrement         float64 `json:"crunchIncrement"`
}

// DefaultCoefficients is the normal balance.
func DefaultCoefficients() Coefficients {
	return Coefficients{
		TicksPerSecond:          10,
		FishingSpeedMultiplier:  1.0,
		NetCapacityMultiplier:   2.0,
		NetBaseCapacity:         100,
		AutoCollectBaseInterval: 10,
		AutoCollectStep:         0.5,
		CrunchIncrement:         0.1,
	}
}

// Stats counts prestige actions over the lifetime of a save.
type Stats struct {
	Multiplies   int `json:"multiplies"`
	Ascends      int `json:"ascends"`
	NewUniverses int `json:"newUniverses"`
	Parallelizes int `json:"parallelizes"`
	Crunches     int `json:"crunches"`
	Catches      int `json:"catches"`
	NetCollects  int `json:"netCollects"`
}

// State is the whole game.
type State struct {
	Fish            bignum.Number `json:"fish"`
	TotalFishCaught bignum.Number `json:"totalFishCaught"`

	FishingActive                bool          `json:"fishingActive"`
	FishingProgress              float64       `json:"fishingProgress"`
	FishingDuration              float64       `json:"fishingDuration"`
	FishingQueue                 int           `json:"fishingQueue"`
	FishingFractionalAccumulator bignum.Number `json:"fishingFractionalAccumulator"`

	Nets                 Nets    `json:"nets"`
	NetAutoCollectActive bool    `json:"netAutoCollectActive"`
	NetAutoCollectTimer  float64 `json:"netAutoCollectTimer"`

	LocalUpgrades   LocalUpgrades   `json:"localUpgrades"`
	GeneralUpgrades GeneralUpgrades `json:"generalUpgrades"`

	// AutoBuy maps an upgrade id to whether the generic auto-purchase loop
	// buys it every tick.
	AutoBuy map[string]bool `json:"autoBuy"`

	CurrentTier          tier.Tier `json:"currentTier"`
	TierCount            int       `json:"tierCount"`
	UniverseNumber       int       `json:"universeNumber"`
	ParallelMultiverses  int       `json:"parallelMultiverses"`
	MultiverseMultiplier float64   `json:"multiverseMultiplier"`

	Containers               Containers    `json:"containers"`
	ContainerFishAccumulator bignum.Number `json:"containerFishAccumulator"`
	ContainerTickCounter     int           `json:"containerTickCounter"`

	ParallelizedPropagationFPS         bignum.Number `json:"parallelizedPropagationFPS"`
	ParallelizedPropagationAccumulator bignum.Number `json:"parallelizedPropagationAccumulator"`

	SkipCrunchConfirmation bool `json:"skipCrunchConfirmation"`

	TotalTimePlayed float64 `json:"totalTimePlayed"`
	LastSaveTime    int64   `json:"lastSaveTime"`

	Coefficients Coefficients `json:"coefficients"`
	Stats        Stats        `json:"stats"`
}

// New returns a fresh game using the given balance.
func New(c Coefficients) *State {
	s := &State{
		FishingDuration: 1000,
		GeneralUpgrades: GeneralUpgrades{
			CatchFishMultiplier: 1,
			Unlocked:            map[string]bool{},
		},
		AutoBuy:              map[string]bool{},
		CurrentTier:          tier.Pond,
		TierCount:            1,
		UniverseNumber:       1,
		ParallelMultiverses:  1,
		MultiverseMultiplier: 1,
		Coefficients:         c,
	}
	s.Containers.Clear()
	return s
}

// ResetLocal clears tier-local progress after multiply, ascend or a new
// universe: local upgrades, nets and the fishing action in flight. The
// fishing queue is kept so queued catches still resolve.
func (s *State) ResetLocal() {
	s.LocalUpgrades = LocalUpgrades{}
	s.Nets = Nets{}
	s.NetAutoCollectActive = false
	s.NetAutoCollectTimer = 0
	s.FishingActive = false
	s.FishingProgress = 0
}

// ResetForParallelize returns everything except general upgrades, lifetime
// counters, parallel multiverses and parallelized propagation to defaults.
func (s *State) ResetForParallelize() {
	s.ResetLocal()
	s.Fish = bignum.Zero()
	s.FishingQueue = 0
	s.FishingFractionalAccumulator = bignum.Zero()
	s.CurrentTier = tier.Pond
	s.TierCount = 1
	s.UniverseNumber = 1
	s.MultiverseMultiplier = 1
	s.Containers.Clear()
	s.ContainerFishAccumulator = bignum.Zero()
	s.ContainerTickCounter = 0
}

// IsUnlocked reports whether a one-time upgrade has been bought.
func (s *State) IsUnlocked(id string) bool {
	return s.GeneralUpgrades.Unlocked[id]
}

// Unlock records a one-time upgrade.
func (s *State) Unlock(id string) {
	if s.GeneralUpgrades.Unlocked == nil {
		s.GeneralUpgrades.Unlocked = map[string]bool{}
	}
	s.GeneralUpgrades.Unlocked[id] = true
}

// AutoBuyEnabled reports whether id is bought automatically.
func (s *State) AutoBuyEnabled(id string) bool {
	return s.AutoBuy[id]
}

// SetAutoBuy toggles automatic buying of id.
func (s *State) SetAutoBuy(id string, enabled bool) {
	if s.AutoBuy == nil {
		s.AutoBuy = map[string]bool{}
	}
	s.AutoBuy[id] = enabled
}

// AddFish credits fish to both the spendable balance and the lifetime
// counter.
func (s *State) AddFish(n bignum.Number) {
	if n.Sign() <= 0 {
		return
	}
	s.Fish = s.Fish.Add(n)
	s.TotalFishCaught = s.TotalFishCaught.Add(n)
}

// Clone returns a deep copy.
func (s *State) Clone() *State {
	c := *s
	c.GeneralUpgrades.Unlocked = cloneFlags(s.GeneralUpgrades.Unlocked)
	c.AutoBuy = cloneFlags(s.AutoBuy)
	c.Containers = s.Containers.Clone()
	return &c
}

func cloneFlags(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
