package config

import (
	_ "embed"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed default.yml
var defaultConfigYAML string

// Built-in values, used when default.yml cannot be decoded.
const (
	DefaultAPIURL      = "https://api.opensuse.org"
	DefaultProject     = "openSUSE:Factory"
	DefaultRepologyURL = "https://repology.org/api/v1/project/"
	DefaultUserAgent   = "package_last_update https://github.com/ilmanzo/package_last_update"
	DefaultTimeout     = 30 * time.Second
)

// Default returns the embedded default configuration.
func Default() *Config {
	var cfg Config
	if err := yaml.Unmarshal([]byte(defaultConfigYAML), &cfg); err == nil {
		return &cfg
	}
	return &Config{
		APIURL:         DefaultAPIURL,
		Project:        DefaultProject,
		RepologyURL:    DefaultRepologyURL,
		UserAgent:      DefaultUserAgent,
		Timeout:        DefaultTimeout,
		OscCommand:     "osc",
		RpmspecCommand: "rpmspec",
		LogLevel:       "debug",
	}
}
