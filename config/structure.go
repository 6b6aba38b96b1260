package config

// Config contains runtime configuration of materials tools.
type Config struct {
	// Env is "PROD" or "DEV".
	Env          string
	LoggingLevel string
	// LibraryPath is optional YAML file with additional material declarations.
	LibraryPath string
}

// Dev returns true in development environment.
func (c *Config) Dev() bool {
	return c.Env == envDev
}
