package config

const (
	defaultCacheDir         = "~/.local/share/importcut/cache"
	defaultLogDir           = "~/.local/share/importcut/logs"
	defaultSettingsPath     = "~/.config/importcut/settings.toml"
	defaultFrameRate        = 24.0
	defaultDownloadTimeout  = 30
	defaultDownloadWorkers  = 4
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultSingleDropPolicy = true
)

var defaultSupportedExtensions = []string{".edl", ".mov"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			CacheDir:     defaultCacheDir,
			LogDir:       defaultLogDir,
			SettingsPath: defaultSettingsPath,
		},
		Import: Import{
			SupportedExtensions: append([]string(nil), defaultSupportedExtensions...),
			DefaultFrameRate:    defaultFrameRate,
			SingleDrop:          defaultSingleDropPolicy,
		},
		Downloads: Downloads{
			TimeoutSeconds: defaultDownloadTimeout,
			Workers:        defaultDownloadWorkers,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
