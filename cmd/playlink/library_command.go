package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"playlink/internal/library"
)

func newLibraryCommand(ctx *commandContext) *cobra.Command {
	libraryCmd := &cobra.Command{
		Use:   "library",
		Short: "Inspect the last recorded library scan",
	}

	libraryCmd.AddCommand(newLibraryStatsCommand(ctx))
	libraryCmd.AddCommand(newLibraryLookupCommand(ctx))

	return libraryCmd
}

func newLibraryStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show counts from the last scan",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			catalog, err := library.OpenCatalog(cfg.Paths.LogDir)
			if err != nil {
				return fmt.Errorf("open scan catalog: %w", err)
			}
			defer catalog.Close()

			stats, err := catalog.Stats(cmd.Context())
			if err != nil {
				return err
			}

			headers := []string{"Metric", "Value"}
			rows := [][]string{
				{"Music files", strconv.Itoa(stats.MusicFiles)},
				{"Playlist files", strconv.Itoa(stats.PlaylistFiles)},
				{"Distinct stems", strconv.Itoa(stats.DistinctStems)},
				{"Last scanned", stats.LastScannedAt},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderSummaryTable(headers, rows, 2))
			return nil
		},
	}
}

func newLibraryLookupCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <stem>",
		Short: "List recorded music files sharing a filename stem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			catalog, err := library.OpenCatalog(cfg.Paths.LogDir)
			if err != nil {
				return fmt.Errorf("open scan catalog: %w", err)
			}
			defer catalog.Close()

			paths, err := catalog.Lookup(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(paths) == 0 {
				fmt.Fprintf(out, "No files recorded for stem %q; run `playlink run` to refresh the catalog\n", args[0])
				return nil
			}
			for _, path := range paths {
				fmt.Fprintln(out, path)
			}
			return nil
		},
	}
}
