package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/LeJamon/goMFS/internal/core/format"
	"github.com/LeJamon/goMFS/internal/snapshot"
	"github.com/LeJamon/goMFS/internal/storage/savestore"
)

var saveImportForce bool

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Manage save slots",
}

var saveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List save slots",
	Args:  cobra.NoArgs,
	RunE: withStore(func(ctx context.Context, _ *session, store savestore.Store, cmd *cobra.Command, args []string) error {
		slots, err := store.List(ctx)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SLOT\tSIZE\tFORMAT\tVERSION\tSAVED")
		for _, slot := range slots {
			data, f, err := savestore.LoadRaw(ctx, store, slot)
			if err != nil {
				return err
			}
			env, err := snapshot.DecodeEnvelope(data, f)
			if err != nil {
				fmt.Fprintf(w, "%s\t%s\t%s\t?\tunreadable\n", slot, humanize.Bytes(uint64(len(data))), f)
				continue
			}
			fmt.Fprintf(w, "%s\t%s\t%s\tv%d\t%s\n",
				slot, humanize.Bytes(uint64(len(data))), f, env.Version,
				humanize.Time(time.UnixMilli(env.SavedAt)))
		}
		return w.Flush()
	}),
}

var saveInspectCmd = &cobra.Command{
	Use:   "inspect <slot>",
	Short: "Show the contents of a save slot",
	Args:  cobra.ExactArgs(1),
	RunE: withStore(func(ctx context.Context, _ *session, store savestore.Store, cmd *cobra.Command, args []string) error {
		data, f, err := savestore.LoadRaw(ctx, store, args[0])
		if err != nil {
			return err
		}
		env, err := snapshot.DecodeEnvelope(data, f)
		if err != nil {
			return err
		}
		st, err := snapshot.Unwrap(env)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "slot\t%s\n", args[0])
		fmt.Fprintf(w, "format\t%s v%d (%s)\n", f, env.Version, humanize.Bytes(uint64(len(data))))
		fmt.Fprintf(w, "checksum\t%s\n", env.Checksum)
		fmt.Fprintf(w, "saved\t%s (%s)\n", time.UnixMilli(env.SavedAt).UTC().Format(time.RFC3339), humanize.Time(time.UnixMilli(env.SavedAt)))
		fmt.Fprintf(w, "fish\t%s\n", format.Number(st.Fish))
		fmt.Fprintf(w, "total caught\t%s\n", format.Number(st.TotalFishCaught))
		fmt.Fprintf(w, "tier\t%s x%d\n", st.CurrentTier, st.TierCount)
		fmt.Fprintf(w, "universe\t%s\n", humanize.Ordinal(st.UniverseNumber))
		fmt.Fprintf(w, "multiverses\t%d\n", st.ParallelMultiverses)
		fmt.Fprintf(w, "containers\t%d\n", st.Containers.Count())
		fmt.Fprintf(w, "played\t%s\n", format.Playtime(time.Duration(st.TotalTimePlayed*float64(time.Millisecond))))
		return w.Flush()
	}),
}

var saveExportCmd = &cobra.Command{
	Use:   "export <slot>",
	Short: "Print a save slot as a portable string",
	Args:  cobra.ExactArgs(1),
	RunE: withStore(func(ctx context.Context, _ *session, store savestore.Store, cmd *cobra.Command, args []string) error {
		data, f, err := savestore.LoadRaw(ctx, store, args[0])
		if err != nil {
			return err
		}
		env, err := snapshot.DecodeEnvelope(data, f)
		if err != nil {
			return err
		}
		st, err := snapshot.Unwrap(env)
		if err != nil {
			return err
		}
		text, err := snapshot.Export(st, env.SavedAt)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}),
}

var saveImportCmd = &cobra.Command{
	Use:   "import <slot> [string]",
	Short: "Write an exported string into a save slot",
	Long:  `Decode an exported save and store it in a slot. The string is read from stdin when omitted.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: withStore(func(ctx context.Context, s *session, store savestore.Store, cmd *cobra.Command, args []string) error {
		slot := args[0]
		text, err := importText(cmd.InOrStdin(), args[1:])
		if err != nil {
			return err
		}

		st, err := snapshot.Import(text)
		if err != nil {
			return fmt.Errorf("failed to import save: %w", err)
		}
		if !saveImportForce {
			if _, err := store.Get(ctx, slot); err == nil {
				return fmt.Errorf("slot %s already exists, use --force to overwrite", slot)
			}
		}

		data, err := snapshot.Encode(st, time.Now().UnixMilli(), s.cfg.Storage.SnapshotFormat())
		if err != nil {
			return err
		}
		if err := store.Put(ctx, slot, data); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %s: %s at %s\n", slot, format.Number(st.Fish), st.CurrentTier)
		return nil
	}),
}

var saveDeleteCmd = &cobra.Command{
	Use:   "delete <slot>",
	Short: "Delete a save slot",
	Args:  cobra.ExactArgs(1),
	RunE: withStore(func(ctx context.Context, _ *session, store savestore.Store, cmd *cobra.Command, args []string) error {
		if err := store.Delete(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(saveCmd)
	saveCmd.AddCommand(saveListCmd, saveInspectCmd, saveExportCmd, saveImportCmd, saveDeleteCmd)

	saveImportCmd.Flags().BoolVar(&saveImportForce, "force", false, "overwrite an existing slot")
}

// withStore opens the configured store around a save subcommand.
func withStore(fn func(ctx context.Context, s *session, store savestore.Store, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		store, err := openStore(ctx, s)
		if err != nil {
			return err
		}
		defer store.Close()
		return fn(ctx, s, store, cmd, args)
	}
}

func importText(r io.Reader, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read save string: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
