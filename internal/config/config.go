// Package config provides YAML-based configuration loading for the bomber CLI.
package config

// Config contains all configuration for the bomber CLI.
type Config struct {
	Decode  DecodeConfig  `yaml:"decode"`
	Output  OutputConfig  `yaml:"output"`
	History HistoryConfig `yaml:"history"`
	Log     LogConfig     `yaml:"log"`
	Theme   string        `yaml:"theme"` // "default" or "mono"
}

// DecodeConfig controls maze decoding.
type DecodeConfig struct {
	UnknownTokens string `yaml:"unknown_tokens"` // "strict" or "lenient"
}

// OutputConfig controls where results and failures are written.
type OutputConfig struct {
	ErrorFile string `yaml:"error_file"` // Used when no output path is known
}

// HistoryConfig controls the detonation history database.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
	Limit   int    `yaml:"limit"` // Rows shown by the history command
}

// LogConfig controls CLI logging.
type LogConfig struct {
	Level      string `yaml:"level"` // debug, info, warn, error
	Timestamps bool   `yaml:"timestamps"`
}
