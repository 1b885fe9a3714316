package app

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ManifestPath is an optional .hcl manifest file or directory to
	// validate the cast table against. Empty means report-only.
	ManifestPath string

	LogFormat string
	LogLevel  string
}

// NewConfig applies defaults and returns the validated configuration.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return &cfg, nil
}
