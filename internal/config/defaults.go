package config

const (
	defaultMusicDir     = "~/Music"
	defaultPlaylistDir  = "~/.config/cmus/playlists"
	defaultLogDir       = "~/.local/share/playlink/logs"
	defaultOutputFormat = FormatM3U
	defaultOutputExt    = "m3u"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Supported output formats.
const (
	FormatM3U    = "m3u"
	FormatExtM3U = "extm3u"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			MusicDir:    defaultMusicDir,
			PlaylistDir: defaultPlaylistDir,
			LogDir:      defaultLogDir,
		},
		Output: Output{
			Format:    defaultOutputFormat,
			Extension: defaultOutputExt,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
