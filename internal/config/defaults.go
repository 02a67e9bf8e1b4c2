package config

const (
	defaultDataDir               = "~/.local/share/groove/data"
	defaultLogDir                = "~/.local/share/groove/logs"
	defaultAPIBind               = "127.0.0.1:7530"
	defaultMusicBrainzBaseURL    = "https://musicbrainz.org/ws/2"
	defaultMusicBrainzUserAgent  = "Groove/0.1.0 (record store backend)"
	defaultMusicBrainzTimeout    = 10
	defaultMusicBrainzIntervalMS = 1000
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
			APIBind: defaultAPIBind,
		},
		MusicBrainz: MusicBrainz{
			BaseURL:           defaultMusicBrainzBaseURL,
			UserAgent:         defaultMusicBrainzUserAgent,
			RequestTimeout:    defaultMusicBrainzTimeout,
			RequestIntervalMS: defaultMusicBrainzIntervalMS,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
