package main

import (
	"path/filepath"
	"testing"

	"playlink/internal/config"
)

func TestApplyRunFlagsOverridesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.MusicDir = "/music"
	cfg.Paths.PlaylistDir = "/playlists"

	musicDir := filepath.Join(t.TempDir(), "tunes")
	if err := applyRunFlags(&cfg, musicDir, "", "extm3u", ".M3U"); err != nil {
		t.Fatal(err)
	}

	if cfg.Paths.MusicDir != musicDir {
		t.Fatalf("unexpected music dir %q", cfg.Paths.MusicDir)
	}
	if cfg.Paths.PlaylistDir != "/playlists" {
		t.Fatalf("unexpected playlist dir %q", cfg.Paths.PlaylistDir)
	}
	if cfg.Output.Format != config.FormatExtM3U {
		t.Fatalf("unexpected format %q", cfg.Output.Format)
	}
	if cfg.Output.Extension != "M3U" {
		t.Fatalf("expected leading dot stripped, got %q", cfg.Output.Extension)
	}
}

func TestApplyRunFlagsRejectsUnknownFormat(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.MusicDir = "/music"
	cfg.Paths.PlaylistDir = "/playlists"

	if err := applyRunFlags(&cfg, "", "", "pls", ""); err == nil {
		t.Fatal("expected validation error for unknown format")
	}
}

func TestDisplayName(t *testing.T) {
	cases := []struct {
		stem string
		want string
	}{
		{"road_trip-2019", "Road Trip 2019"},
		{"favorites", "Favorites"},
		{"", "(unnamed)"},
	}
	for _, tc := range cases {
		if got := displayName(tc.stem); got != tc.want {
			t.Errorf("displayName(%q) = %q, want %q", tc.stem, got, tc.want)
		}
	}
}
