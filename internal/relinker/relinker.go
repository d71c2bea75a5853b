package relinker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"playlink/internal/config"
	"playlink/internal/library"
	"playlink/internal/logging"
	"playlink/internal/playlist"
	"playlink/internal/scanner"
	"playlink/internal/tags"
)

// Relinker rewrites playlists discovered under the music root so their
// references point at locally present files.
type Relinker struct {
	cfg    *config.Config
	logger *slog.Logger
	tags   playlist.TagReader
}

// New constructs a relinker using the default tag reader.
func New(cfg *config.Config, logger *slog.Logger) *Relinker {
	return NewWithTagReader(cfg, logger, func(path string) playlist.SongInfo {
		meta := tags.Read(path)
		return playlist.SongInfo{
			Title:           meta.Title,
			Artist:          meta.Artist,
			DurationSeconds: meta.Duration,
		}
	})
}

// NewWithTagReader allows injecting the tag reader (used in tests).
func NewWithTagReader(cfg *config.Config, logger *slog.Logger, reader playlist.TagReader) *Relinker {
	return &Relinker{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "relinker"),
		tags:   reader,
	}
}

// PlaylistResult records the outcome for one input playlist.
type PlaylistResult struct {
	Name       string
	OutputPath string
	Referenced int
	Resolved   int
	Err        error
}

// Dropped reports how many references failed to resolve.
func (r PlaylistResult) Dropped() int {
	return r.Referenced - r.Resolved
}

// Summary aggregates the results of one run.
type Summary struct {
	RunID      string
	MusicFiles int
	Playlists  []PlaylistResult
}

// Run executes the full pipeline. It fails only when the music root cannot be
// scanned or another run holds the lock; per-playlist problems are recorded
// in the summary and logged.
func (r *Relinker) Run(ctx context.Context) (*Summary, error) {
	runID := uuid.NewString()
	logger := r.logger.With(logging.String(logging.FieldRunID, runID))

	if err := r.cfg.EnsureDirectories(); err != nil {
		return nil, err
	}

	lock := flock.New(filepath.Join(r.cfg.Paths.LogDir, "playlink.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return nil, errors.New("another playlink run is in progress")
	}
	defer func() {
		_ = lock.Unlock()
	}()

	scan, err := scanner.Run(r.cfg.Paths.MusicDir)
	if err != nil {
		return nil, err
	}
	logger.Info("library scan completed",
		logging.Int("music_files", len(scan.Music)),
		logging.Int("playlists", len(scan.Playlists)))

	ix := library.Build(scan.Music)
	r.recordScan(ctx, logger, scan)

	summary := &Summary{RunID: runID, MusicFiles: ix.Len()}
	for _, path := range scan.Playlists {
		summary.Playlists = append(summary.Playlists, r.relinkOne(ix, path, logger))
	}
	return summary, nil
}

// recordScan updates the inspection catalog. Catalog problems never fail a
// run.
func (r *Relinker) recordScan(ctx context.Context, logger *slog.Logger, scan *scanner.Scan) {
	catalog, err := library.OpenCatalog(r.cfg.Paths.LogDir)
	if err != nil {
		logger.Warn("scan catalog unavailable", logging.Error(err))
		return
	}
	defer func() {
		_ = catalog.Close()
	}()
	if err := catalog.ReplaceScan(ctx, scan.Music, scan.Playlists); err != nil {
		logger.Warn("scan catalog update failed", logging.Error(err))
	}
}

func (r *Relinker) relinkOne(ix *library.Index, srcPath string, logger *slog.Logger) PlaylistResult {
	name := library.Stem(srcPath)
	plLogger := logger.With(logging.String(logging.FieldPlaylist, name))

	content, err := os.ReadFile(srcPath)
	if err != nil {
		// Unreadable playlists resolve to zero songs rather than failing the run.
		plLogger.Warn("playlist unreadable", logging.Error(err))
		content = nil
	}
	refs := playlist.ExtractReferences(string(content))
	pl := playlist.Assemble(ix, name, refs)

	var encoded string
	switch r.cfg.Output.Format {
	case config.FormatExtM3U:
		encoded = playlist.EncodeExtM3U(pl, r.tags)
	default:
		encoded = playlist.EncodeM3U(pl)
	}

	result := PlaylistResult{Name: name, Referenced: len(refs), Resolved: len(pl.Songs)}
	outputPath, err := playlist.WriteFile(r.cfg.Paths.PlaylistDir, pl, r.cfg.Output.Extension, encoded)
	if err != nil {
		plLogger.Error("playlist write failed", logging.Error(err))
		result.Err = err
		return result
	}
	result.OutputPath = outputPath
	plLogger.Info("playlist relinked",
		logging.Int("referenced", result.Referenced),
		logging.Int("resolved", result.Resolved),
		logging.String("output", outputPath))
	return result
}
