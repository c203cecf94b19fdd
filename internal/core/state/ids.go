package state

// Upgrade ids. They are persisted as keys of GeneralUpgrades.Unlocked and
// State.AutoBuy, so existing values must never change.
const (
	Rod                          = "rod"
	Net                          = "net"
	Bait                         = "bait"
	CatchMultiplier              = "catchMultiplier"
	AutoNetCollectInterval       = "autoNetCollectInterval"
	MultiversalPropagation       = "multiversalPropagation"
	FishingMastery               = "fishingMastery"
	NetMastery                   = "netMastery"
	BaitMastery                  = "baitMastery"
	ParallelizedPropagation      = "parallelizedPropagation"
	ParallelMultiverseMultiplier = "parallelMultiverseMultiplier"

	AutoCollectNets = "autoCollectNets"
	RodMaxBuyer     = "rodMaxBuyer"
	NetMaxBuyer     = "netMaxBuyer"
	BaitMaxBuyer    = "baitMaxBuyer"
	MaxBuyer        = "maxBuyer"
	CatchMaxBuyer   = "maxCatchFishBuyer"

	Automaxer                        = "automaxer"
	AutoMultiply                     = "autoMultiply"
	AutoAscend                       = "autoAscend"
	AutoParallelize                  = "autoParallelize"
	AutoParallelizedPropagation      = "autoParallelizedPropagation"
	AutoMultiversalPropagation       = "autoMultiversalPropagation"
	AutoFishingMastery               = "autoFishingMastery"
	AutoNetMastery                   = "autoNetMastery"
	AutoBaitMastery                  = "autoBaitMastery"
	AutoCatchFish                    = "autoCatchFish"
	AutoParallelMultiverseMultiplier = "autoParallelMultiverseMultiplier"
)

// Prestige actions that can appear in AutoBuy.
const (
	ActionMultiply    = "multiply"
	ActionAscend      = "ascend"
	ActionParallelize = "parallelize"
)
