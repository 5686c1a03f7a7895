package testutil

import (
	"time"

	"github.com/ajxudir/lastupdate/pkg/config"
)

// ConfigBuilder provides a fluent API for building test configurations.
type ConfigBuilder struct {
	cfg config.Config
}

// NewConfig creates a ConfigBuilder starting from the built-in defaults.
func NewConfig() *ConfigBuilder {
	return &ConfigBuilder{cfg: *config.Default()}
}

// WithProject sets the build service project.
func (b *ConfigBuilder) WithProject(project string) *ConfigBuilder {
	b.cfg.Project = project
	return b
}

// WithAPIURL sets the build service API URL.
func (b *ConfigBuilder) WithAPIURL(url string) *ConfigBuilder {
	b.cfg.APIURL = url
	return b
}

// WithRepologyURL sets the repology endpoint.
func (b *ConfigBuilder) WithRepologyURL(url string) *ConfigBuilder {
	b.cfg.RepologyURL = url
	return b
}

// WithTimeout sets the per-call timeout.
func (b *ConfigBuilder) WithTimeout(d time.Duration) *ConfigBuilder {
	b.cfg.Timeout = d
	return b
}

// Build returns a copy of the configuration.
func (b *ConfigBuilder) Build() *config.Config {
	cfg := b.cfg
	return &cfg
}
