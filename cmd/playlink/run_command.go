package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"playlink/internal/config"
	"playlink/internal/logging"
	"playlink/internal/preflight"
	"playlink/internal/relinker"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var musicDir string
	var outputDir string
	var format string
	var extension string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Scan the music library and relink every discovered playlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := applyRunFlags(cfg, musicDir, outputDir, format, extension); err != nil {
				return err
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("initialize logging: %w", err)
			}

			if result := preflight.CheckDirectoryAccess("playlist output", cfg.Paths.PlaylistDir); !result.Passed {
				// The run creates the directory; only surface genuine access problems.
				if !strings.Contains(result.Detail, "does not exist") {
					return fmt.Errorf("playlist output directory: %s", result.Detail)
				}
			}

			summary, err := relinker.New(cfg, logger).Run(cmd.Context())
			if err != nil {
				return err
			}

			printRunSummary(cmd, summary)
			return nil
		},
	}

	cmd.Flags().StringVarP(&musicDir, "music-dir", "m", "", "Music root directory (overrides config)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Playlist output directory (overrides config)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: m3u or extm3u (overrides config)")
	cmd.Flags().StringVarP(&extension, "extension", "e", "", "Output file extension (overrides config)")

	return cmd
}

func applyRunFlags(cfg *config.Config, musicDir, outputDir, format, extension string) error {
	if dir := strings.TrimSpace(musicDir); dir != "" {
		expanded, err := config.ExpandPath(dir)
		if err != nil {
			return fmt.Errorf("resolve music dir: %w", err)
		}
		cfg.Paths.MusicDir = expanded
	}
	if dir := strings.TrimSpace(outputDir); dir != "" {
		expanded, err := config.ExpandPath(dir)
		if err != nil {
			return fmt.Errorf("resolve output dir: %w", err)
		}
		cfg.Paths.PlaylistDir = expanded
	}
	if f := strings.TrimSpace(format); f != "" {
		cfg.Output.Format = strings.ToLower(f)
	}
	if e := strings.TrimSpace(extension); e != "" {
		cfg.Output.Extension = strings.TrimPrefix(e, ".")
	}
	return cfg.Validate()
}

func printRunSummary(cmd *cobra.Command, summary *relinker.Summary) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Indexed %d music files\n", summary.MusicFiles)
	if len(summary.Playlists) == 0 {
		fmt.Fprintln(out, "No playlists found under the music root")
		return
	}

	headers := []string{"Playlist", "Referenced", "Resolved", "Dropped", "Output"}
	rows := make([][]string, 0, len(summary.Playlists))
	failures := 0
	for _, result := range summary.Playlists {
		output := result.OutputPath
		if result.Err != nil {
			output = "write failed"
			failures++
		}
		rows = append(rows, []string{
			displayName(result.Name),
			strconv.Itoa(result.Referenced),
			strconv.Itoa(result.Resolved),
			strconv.Itoa(result.Dropped()),
			output,
		})
	}
	fmt.Fprintln(out, renderSummaryTable(headers, rows, 2, 3, 4))

	if failures > 0 {
		fmt.Fprintln(out, renderStatusLine("Playlists", statusWarn,
			fmt.Sprintf("%d of %d failed to write", failures, len(summary.Playlists)), colorizeOutput()))
	} else {
		fmt.Fprintln(out, renderStatusLine("Playlists", statusOK,
			fmt.Sprintf("%d written", len(summary.Playlists)), colorizeOutput()))
	}
}
