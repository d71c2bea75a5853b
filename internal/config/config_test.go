package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"playlink/internal/config"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	if cfg.Paths.MusicDir != filepath.Join(tempHome, "Music") {
		t.Fatalf("unexpected music dir: %q", cfg.Paths.MusicDir)
	}
	if cfg.Paths.PlaylistDir != filepath.Join(tempHome, ".config", "cmus", "playlists") {
		t.Fatalf("unexpected playlist dir: %q", cfg.Paths.PlaylistDir)
	}
	if cfg.Output.Format != config.FormatM3U {
		t.Fatalf("unexpected output format: %q", cfg.Output.Format)
	}
	if cfg.Output.Extension != "m3u" {
		t.Fatalf("unexpected output extension: %q", cfg.Output.Extension)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
music_dir = "` + filepath.Join(dir, "tunes") + `"

[output]
format = "extm3u"
extension = ".M3U"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("unexpected resolution: exists=%v path=%q", exists, resolved)
	}
	if cfg.Paths.MusicDir != filepath.Join(dir, "tunes") {
		t.Fatalf("unexpected music dir: %q", cfg.Paths.MusicDir)
	}
	if cfg.Output.Format != config.FormatExtM3U {
		t.Fatalf("unexpected format: %q", cfg.Output.Format)
	}
	if cfg.Output.Extension != "M3U" {
		t.Fatalf("expected leading dot stripped, got %q", cfg.Output.Extension)
	}
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[output]\nformat = \"pls\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, _, err := config.Load(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "output.format") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	if err := config.CreateSample(path); err != nil {
		t.Fatal(err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample config does not validate: %v", err)
	}
}

func TestExpandPathTilde(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	got, err := config.ExpandPath("~/Music")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(tempHome, "Music") {
		t.Fatalf("unexpected expansion: %q", got)
	}
}
