package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/LeJamon/goMFS/internal/core/bignum"
	"github.com/LeJamon/goMFS/internal/core/format"
	"github.com/LeJamon/goMFS/internal/core/tier"
)

func registerBuiltins(r *Registry) {
	for _, cmd := range []Command{
		{Name: "help", Summary: "list commands", Run: runHelp},
		{Name: "fish", Args: "[n]", Summary: "start fishing n times", Run: runFish},
		{Name: "catch", Summary: "complete the catch in flight", Run: runCatch},
		{Name: "collect", Summary: "collect the nets", Run: runCollect},
		{Name: "addfish", Args: "<amount>", Summary: "add fish", Run: runAddFish},
		{Name: "setfish", Args: "<amount>", Summary: "set the fish balance", Run: runSetFish},
		{Name: "addbodies", Args: "<tier> <n> <fps>", Summary: "append container entries", Run: runAddBodies},
		{Name: "settier", Args: "<tier>", Summary: "jump to a tier", Run: runSetTier},
		{Name: "universe", Summary: "jump to the universe tier", Run: runUniverse},
		{Name: "setspeed", Args: "<x>", Summary: "set the fishing speed multiplier", Run: runSetSpeed},
		{Name: "addnets", Args: "<n>", Summary: "add nets", Run: runAddNets},
		{Name: "reset", Summary: "start a new game", Run: runReset},
		{Name: "buy", Args: "<upgrade> [max]", Summary: "buy an upgrade, or list offers", Run: runBuy},
		{Name: "autobuy", Args: "<upgrade> on|off", Summary: "toggle automatic buying", Run: runAutoBuy},
		{Name: "multiply", Summary: "multiply the current tier", Run: runMultiply},
		{Name: "ascend", Summary: "ascend, or parallelize at the universe tier", Run: runAscend},
		{Name: "crunch", Args: "<i>", Summary: "crunch universe container i", Run: runCrunch},
		{Name: "stats", Summary: "show the game state", Run: runStats},
		{Name: "performance", Summary: "show engine statistics", Run: runPerformance},
		{Name: "save", Summary: "save now", Run: runSave},
		{Name: "export", Summary: "print the save as a string", Run: runExport},
		{Name: "import", Args: "<string>", Summary: "load a save string", Run: runImport},
	} {
		r.Register(cmd)
	}
}

func command(r *Registry, name string) Command {
	cmd, _ := r.Get(name)
	return cmd
}

func usage(c *Console, name string) error {
	return command(c.registry, name).usage()
}

func outcome(ok bool, done, failed string) (string, error) {
	if ok {
		return done, nil
	}
	return failed, nil
}

func runHelp(_ context.Context, c *Console, _ []string) (string, error) {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	for _, cmd := range c.registry.List() {
		fmt.Fprintf(w, "%s %s\t%s\n", cmd.Name, cmd.Args, cmd.Summary)
	}
	w.Flush()
	return strings.TrimRight(b.String(), "\n"), nil
}

func runFish(_ context.Context, c *Console, args []string) (string, error) {
	n := 1
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 1 {
			return "", usage(c, "fish")
		}
		n = v
	}
	for i := 0; i < n; i++ {
		c.game.StartFishing()
	}
	return fmt.Sprintf("fishing, %d queued", c.game.Summary().FishingQueue), nil
}

func runCatch(_ context.Context, c *Console, _ []string) (string, error) {
	if !c.game.FinishCatch() {
		return "not fishing", nil
	}
	return "caught, fish: " + format.Number(c.game.Fish()), nil
}

func runCollect(_ context.Context, c *Console, _ []string) (string, error) {
	return outcome(c.game.CollectNets(), "nets collected, fish: "+format.Number(c.game.Fish()), "nets are empty")
}

func parseAmount(c *Console, name string, args []string) (bignum.Number, error) {
	if len(args) != 1 {
		return bignum.Zero(), usage(c, name)
	}
	n, err := bignum.Parse(args[0])
	if err != nil {
		return bignum.Zero(), fmt.Errorf("%w: %w", usage(c, name), err)
	}
	return n, nil
}

func runAddFish(_ context.Context, c *Console, args []string) (string, error) {
	n, err := parseAmount(c, "addfish", args)
	if err != nil {
		return "", err
	}
	c.game.AddFish(n)
	return "fish: " + format.Number(c.game.Fish()), nil
}

func runSetFish(_ context.Context, c *Console, args []string) (string, error) {
	n, err := parseAmount(c, "setfish", args)
	if err != nil {
		return "", err
	}
	c.game.SetFish(n)
	return "fish: " + format.Number(c.game.Fish()), nil
}

func runAddBodies(_ context.Context, c *Console, args []string) (string, error) {
	if len(args) != 3 {
		return "", usage(c, "addbodies")
	}
	t, err := tier.Parse(args[0])
	if err != nil {
		return "", err
	}
	n, err := strconv.Atoi(args[1])
	if err != nil || n < 1 {
		return "", usage(c, "addbodies")
	}
	fps, err := bignum.Parse(args[2])
	if err != nil {
		return "", fmt.Errorf("%w: %w", usage(c, "addbodies"), err)
	}
	c.game.AddBodies(t, n, fps)
	return fmt.Sprintf("added %d %s at %s", n, t.Container(), format.Rate(fps)), nil
}

func runSetTier(_ context.Context, c *Console, args []string) (string, error) {
	if len(args) != 1 {
		return "", usage(c, "settier")
	}
	t, err := tier.Parse(args[0])
	if err != nil {
		return "", err
	}
	c.game.SetTier(t)
	return "tier: " + t.String(), nil
}

func runUniverse(_ context.Context, c *Console, _ []string) (string, error) {
	c.game.SetTier(tier.Universe)
	return "tier: " + tier.Universe.String(), nil
}

func runSetSpeed(_ context.Context, c *Console, args []string) (string, error) {
	if len(args) != 1 {
		return "", usage(c, "setspeed")
	}
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil || !c.game.SetSpeed(x) {
		return "", usage(c, "setspeed")
	}
	return "speed: " + format.Multiplier(x), nil
}

func runAddNets(_ context.Context, c *Console, args []string) (string, error) {
	if len(args) != 1 {
		return "", usage(c, "addnets")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || !c.game.AddNets(n) {
		return "", usage(c, "addnets")
	}
	return fmt.Sprintf("nets: %d", c.game.Summary().Nets), nil
}

func runReset(_ context.Context, c *Console, _ []string) (string, error) {
	c.game.Reset()
	return "game reset", nil
}

func runBuy(_ context.Context, c *Console, args []string) (string, error) {
	if len(args) == 0 {
		return offers(c), nil
	}
	if len(args) > 2 || (len(args) == 2 && args[1] != "max") {
		return "", usage(c, "buy")
	}

	id := args[0]
	if _, ok := c.game.Registry().Get(id); !ok {
		return "", fmt.Errorf("unknown upgrade %q", id)
	}
	if len(args) == 2 {
		n := c.game.BuyMax(id)
		return fmt.Sprintf("bought %s x%d, fish: %s", id, n, format.Number(c.game.Fish())), nil
	}
	return outcome(c.game.Buy(id),
		fmt.Sprintf("bought %s, fish: %s", id, format.Number(c.game.Fish())),
		fmt.Sprintf("cannot buy %s", id))
}

func offers(c *Console) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLEVEL\tCOST\tAFFORDABLE\tAUTO")
	for _, o := range c.game.Offers() {
		fmt.Fprintf(w, "%s\t%d\t%s\t%t\t%t\n", o.ID, o.Level, format.Number(o.Cost), o.Affordable, o.AutoBuy)
	}
	w.Flush()
	return strings.TrimRight(b.String(), "\n")
}

func runAutoBuy(_ context.Context, c *Console, args []string) (string, error) {
	if len(args) != 2 || (args[1] != "on" && args[1] != "off") {
		return "", usage(c, "autobuy")
	}
	on := args[1] == "on"
	return outcome(c.game.SetAutoBuy(args[0], on),
		fmt.Sprintf("autobuy %s %s", args[0], args[1]),
		fmt.Sprintf("autobuy %s is locked", args[0]))
}

func runMultiply(_ context.Context, c *Console, _ []string) (string, error) {
	cost := c.game.MultiplyCost()
	return outcome(c.game.BuyMultiply(),
		fmt.Sprintf("multiplied, %s x%d", c.game.CurrentTier(), c.game.Summary().TierCount),
		"multiply costs "+format.Number(cost))
}

func runAscend(_ context.Context, c *Console, _ []string) (string, error) {
	cost := c.game.AscendCost()
	return outcome(c.game.BuyAscend(),
		"now at "+c.game.CurrentTier().String(),
		"ascend costs "+format.Number(cost))
}

func runCrunch(_ context.Context, c *Console, args []string) (string, error) {
	if len(args) != 1 {
		return "", usage(c, "crunch")
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		return "", usage(c, "crunch")
	}
	return outcome(c.game.CrunchUniverse(i),
		"multiverse multiplier: "+format.Multiplier(c.game.Summary().MultiverseMultiplier),
		fmt.Sprintf("no universe at %d", i))
}

func runStats(_ context.Context, c *Console, _ []string) (string, error) {
	s := c.game.Summary()

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "fish\t%s\n", format.Number(s.Fish))
	fmt.Fprintf(w, "total caught\t%s\n", format.Number(s.TotalFishCaught))
	fmt.Fprintf(w, "tier\t%s x%d\n", s.Tier, s.TierCount)
	fmt.Fprintf(w, "universe\t%s\n", humanize.Ordinal(s.UniverseNumber))
	fmt.Fprintf(w, "multiverses\t%d\n", s.ParallelMultiverses)
	fmt.Fprintf(w, "multiverse multiplier\t%s\n", format.Multiplier(s.MultiverseMultiplier))
	fmt.Fprintf(w, "fps\t%s\n", format.Rate(s.TotalFPS))
	fmt.Fprintf(w, "containers\t%d (%s)\n", s.Containers, format.Rate(s.ContainerFPS))
	fmt.Fprintf(w, "nets\t%d (%s / %s)\n", s.Nets, format.Number(s.NetFish), format.Number(s.NetCapacity))
	fmt.Fprintf(w, "catches\t%s\n", humanize.Comma(int64(s.Stats.Catches)))
	fmt.Fprintf(w, "played\t%s\n", format.Playtime(time.Duration(s.TotalTimePlayed*float64(time.Millisecond))))
	w.Flush()
	return strings.TrimRight(b.String(), "\n"), nil
}

func runPerformance(_ context.Context, c *Console, _ []string) (string, error) {
	if c.stats == nil {
		return "", fmt.Errorf("%w: performance", ErrUnavailable)
	}
	st := c.stats()

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ticks\t%s\n", humanize.Comma(int64(st.Ticks)))
	fmt.Fprintf(w, "tick rate\t%.1f/s\n", st.TicksPerSecond())
	fmt.Fprintf(w, "avg tick\t%s\n", st.AverageTickTime())
	fmt.Fprintf(w, "max tick\t%s\n", st.MaxTickTime)
	fmt.Fprintf(w, "slow ticks\t%d\n", st.SlowTicks)
	fmt.Fprintf(w, "saves\t%d (%d failed)\n", st.Saves, st.SaveErrors)
	fmt.Fprintf(w, "auto purchases\t%s\n", humanize.Comma(int64(st.AutoPurchases)))
	w.Flush()
	return strings.TrimRight(b.String(), "\n"), nil
}

func runSave(ctx context.Context, c *Console, _ []string) (string, error) {
	if c.saver == nil {
		return "", fmt.Errorf("%w: save", ErrUnavailable)
	}
	if err := c.saver.Save(ctx); err != nil {
		return "", fmt.Errorf("failed to save: %w", err)
	}
	return "saved", nil
}

func runExport(_ context.Context, c *Console, _ []string) (string, error) {
	return c.game.Export()
}

func runImport(_ context.Context, c *Console, args []string) (string, error) {
	if len(args) != 1 {
		return "", usage(c, "import")
	}
	return outcome(c.game.Import(args[0]), "save imported", "import rejected")
}
