package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the configuration for values that would make a run fail.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Paths.MusicDir) == "" {
		return errors.New("paths.music_dir must be set")
	}
	if strings.TrimSpace(c.Paths.PlaylistDir) == "" {
		return errors.New("paths.playlist_dir must be set")
	}
	switch c.Output.Format {
	case FormatM3U, FormatExtM3U:
	default:
		return fmt.Errorf("output.format must be %q or %q, got %q", FormatM3U, FormatExtM3U, c.Output.Format)
	}
	if strings.TrimSpace(c.Output.Extension) == "" {
		return errors.New("output.extension must be set")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	return nil
}
