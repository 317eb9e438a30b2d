package config

import (
	_ "embed"
)

//go:embed defaults/bomber.yaml
var defaultBomberYAML []byte

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		Decode: DecodeConfig{
			UnknownTokens: "strict",
		},
		Output: OutputConfig{
			ErrorFile: "error.txt",
		},
		History: HistoryConfig{
			Enabled: true,
			DBPath:  "~/.bomber/history.db",
			Limit:   50,
		},
		Log: LogConfig{
			Level:      "info",
			Timestamps: false,
		},
		Theme: "default",
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBomberYAML
}
