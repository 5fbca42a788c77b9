package config

import "sdhtool/internal/sdh"

const (
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Cleaning: Cleaning{
			Preset: sdh.DefaultPreset,
		},
		Output: Output{
			Renumber: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
