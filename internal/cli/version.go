package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/LeJamon/goMFS/internal/snapshot"
	"github.com/LeJamon/goMFS/internal/storage/compression"
	"github.com/LeJamon/goMFS/internal/storage/savestore"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display version information for mfsd including the save schema and available backends.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "mfsd version %s\n", rootCmd.Version)
		fmt.Fprintf(out, "Save schema: v%d\n", snapshot.CurrentVersion)
		fmt.Fprintf(out, "Backends: %v\n", savestore.Backends())
		fmt.Fprintf(out, "Compression: %v\n", compression.Available())
		fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
		fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
