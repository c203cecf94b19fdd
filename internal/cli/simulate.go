package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/LeJamon/goMFS/internal/config"
	"github.com/LeJamon/goMFS/internal/core/format"
	"github.com/LeJamon/goMFS/internal/sim"
)

var (
	// Simulate flags
	simDuration time.Duration
	simPresets  []string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Fast-forward an autoplayer through each balance preset",
	Long: `Play a greedy autoplayer for the given game time under each preset,
concurrently and as fast as possible, and print where each one ended up.
Nothing is saved.`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().DurationVar(&simDuration, "duration", time.Hour, "game time to simulate")
	simulateCmd.Flags().StringSliceVar(&simPresets, "preset", config.Presets(), "presets to compare")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	scenarios := make([]sim.Scenario, 0, len(simPresets))
	for _, preset := range simPresets {
		gc := s.cfg.Game
		gc.Preset = strings.TrimSpace(preset)
		if err := gc.Validate(); err != nil {
			return err
		}
		scenarios = append(scenarios, sim.Scenario{
			Name:     gc.Preset,
			State:    gc.NewState(),
			Duration: simDuration,
			TickRate: gc.TickRate,
		})
	}

	results, err := sim.RunAll(cmd.Context(), scenarios, s.logger)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tTIER\tUNIVERSE\tMULTIVERSES\tFISH\tFPS\tCATCHES\tPURCHASES\tPRESTIGES\tTICKS\tWALL")
	for _, r := range results {
		sum := r.Summary
		prestiges := r.Actions.Multiplies + r.Actions.Ascends + r.Actions.Parallelizes
		fmt.Fprintf(w, "%s\t%s x%d\t%s\t%d\t%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			r.Name,
			sum.Tier, sum.TierCount,
			humanize.Ordinal(sum.UniverseNumber),
			sum.ParallelMultiverses,
			format.Number(sum.TotalFishCaught),
			format.Rate(sum.TotalFPS),
			humanize.Comma(int64(sum.Stats.Catches)),
			humanize.Comma(int64(r.Actions.Purchases)),
			prestiges,
			humanize.Comma(int64(r.Engine.Ticks)),
			r.Elapsed.Round(time.Millisecond))
	}
	return w.Flush()
}
