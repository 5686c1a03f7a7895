package config

import "time"

// Config is the root configuration structure.
//
// Fields:
//   - APIURL: Build service API URL passed to osc --apiurl
//   - Project: Root project packages are looked up in
//   - RepologyURL: Repology project endpoint; the package name is appended
//   - UserAgent: User-Agent header sent to repology.org
//   - Timeout: Limit for each external command and the HTTP request
//   - OscCommand: Build service client executable
//   - RpmspecCommand: Spec file query executable
//   - LogLevel: Verbose level, "debug" or "trace"
type Config struct {
	APIURL         string        `yaml:"apiurl"`
	Project        string        `yaml:"project"`
	RepologyURL    string        `yaml:"repology_url"`
	UserAgent      string        `yaml:"user_agent"`
	Timeout        time.Duration `yaml:"timeout"`
	OscCommand     string        `yaml:"osc_command"`
	RpmspecCommand string        `yaml:"rpmspec_command"`
	LogLevel       string        `yaml:"log_level"`

	// Source is the file the configuration was read from, empty for built-in defaults.
	Source string `yaml:"-"`
}

// Tools returns the external commands that must be installed.
func (c *Config) Tools() []string {
	return []string{c.OscCommand, c.RpmspecCommand}
}

// merge copies every non-zero field of o into c.
func (c *Config) merge(o *Config) {
	if o.APIURL != "" {
		c.APIURL = o.APIURL
	}
	if o.Project != "" {
		c.Project = o.Project
	}
	if o.RepologyURL != "" {
		c.RepologyURL = o.RepologyURL
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
	if o.Timeout != 0 {
		c.Timeout = o.Timeout
	}
	if o.OscCommand != "" {
		c.OscCommand = o.OscCommand
	}
	if o.RpmspecCommand != "" {
		c.RpmspecCommand = o.RpmspecCommand
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
}
