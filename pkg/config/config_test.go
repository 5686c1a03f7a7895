package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envNames = []string{
	"APIURL", "PROJECT", "REPOLOGY_URL", "USER_AGENT",
	"OSC", "RPMSPEC", "LOG_LEVEL", "TIMEOUT",
}

// isolate clears LASTUPDATE_* variables and points "~" at a fresh directory.
func isolate(t *testing.T) (home string) {
	t.Helper()
	for _, n := range envNames {
		t.Setenv(EnvPrefix+n, "")
		require.NoError(t, os.Unsetenv(EnvPrefix+n))
	}

	home = t.TempDir()
	orig := expandHome
	expandHome = func(p string) (string, error) {
		if strings.HasPrefix(p, "~") {
			return filepath.Join(home, p[1:]), nil
		}
		return p, nil
	}
	t.Cleanup(func() { expandHome = orig })
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, DefaultProject, cfg.Project)
	assert.Equal(t, DefaultRepologyURL, cfg.RepologyURL)
	assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, []string{"osc", "rpmspec"}, cfg.Tools())
	assert.NoError(t, cfg.Validate())
	assert.Contains(t, defaultConfigYAML, "apiurl:")
}

// TestLoadPrecedence tests the behavior of Load across config sources.
//
// It verifies:
//   - Without any file the defaults are returned
//   - A local .lastupdate.yml wins over the user config
//   - .env values apply over the file, real environment over .env
func TestLoadPrecedence(t *testing.T) {
	home := isolate(t)
	work := t.TempDir()

	cfg, err := Load("", work)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Empty(t, cfg.Source)

	userPath := filepath.Join(home, ".config", "lastupdate", "config.yml")
	writeFile(t, userPath, "project: home:user\ntimeout: 10s\n")
	cfg, err = Load("", work)
	require.NoError(t, err)
	assert.Equal(t, "home:user", cfg.Project)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, userPath, cfg.Source)

	localPath := filepath.Join(work, LocalConfigName)
	writeFile(t, localPath, "project: devel:languages:go\napiurl: https://api.suse.de\n")
	cfg, err = Load("", work)
	require.NoError(t, err)
	assert.Equal(t, "devel:languages:go", cfg.Project)
	assert.Equal(t, "https://api.suse.de", cfg.APIURL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, localPath, cfg.Source)

	writeFile(t, filepath.Join(work, EnvFileName), "LASTUPDATE_USER_AGENT=from-dotenv\nLASTUPDATE_PROJECT=from-dotenv\n")
	t.Setenv(EnvPrefix+"PROJECT", "from-env")
	t.Cleanup(func() { _ = os.Unsetenv(EnvPrefix + "USER_AGENT") })

	cfg, err = Load("", work)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Project)
	assert.Equal(t, "from-dotenv", cfg.UserAgent)
}

func TestLoadExplicitPath(t *testing.T) {
	isolate(t)
	work := t.TempDir()

	path := filepath.Join(t.TempDir(), "custom.yml")
	writeFile(t, path, "repology_url: http://localhost:8080/api/v1/project/\nlog_level: trace\n")
	writeFile(t, filepath.Join(work, LocalConfigName), "project: ignored\n")

	cfg, err := Load(path, work)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api/v1/project/", cfg.RepologyURL)
	assert.Equal(t, "trace", cfg.LogLevel)
	assert.Equal(t, DefaultProject, cfg.Project)

	_, err = Load(filepath.Join(work, "missing.yml"), work)
	assert.Error(t, err)
}

// TestLoadErrors tests the behavior of Load with bad input.
//
// It verifies:
//   - Unknown keys are rejected
//   - Malformed YAML is rejected
//   - An invalid LASTUPDATE_TIMEOUT is rejected
func TestLoadErrors(t *testing.T) {
	isolate(t)
	work := t.TempDir()

	path := filepath.Join(work, "bad.yml")
	writeFile(t, path, "projekt: typo\n")
	_, err := Load(path, work)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid YAML")

	writeFile(t, path, "project: [unterminated\n")
	_, err = Load(path, work)
	assert.Error(t, err)

	t.Setenv(EnvPrefix+"TIMEOUT", "soon")
	_, err = Load("", work)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LASTUPDATE_TIMEOUT")
}

func TestLoadEmptyFile(t *testing.T) {
	isolate(t)
	work := t.TempDir()
	path := filepath.Join(work, "empty.yml")
	writeFile(t, path, "")

	cfg, err := Load(path, work)
	require.NoError(t, err)
	assert.Equal(t, DefaultProject, cfg.Project)
	assert.Equal(t, path, cfg.Source)
}

func TestLoadConfigFileTooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.yml")
	writeFile(t, path, "project: "+strings.Repeat("x", 64)+"\n")

	_, err := loadConfigFile(path, 16)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"LASTUPDATE_APIURL":       "https://api.example.org",
		"LASTUPDATE_REPOLOGY_URL": "https://repology.example.org/api/v1/project/",
		"LASTUPDATE_OSC":          "/opt/bin/osc",
		"LASTUPDATE_RPMSPEC":      "/opt/bin/rpmspec",
		"LASTUPDATE_LOG_LEVEL":    "trace",
		"LASTUPDATE_TIMEOUT":      "45",
		"LASTUPDATE_PROJECT":      "   ",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, applyEnv(cfg, lookup))
	assert.Equal(t, "https://api.example.org", cfg.APIURL)
	assert.Equal(t, "https://repology.example.org/api/v1/project/", cfg.RepologyURL)
	assert.Equal(t, []string{"/opt/bin/osc", "/opt/bin/rpmspec"}, cfg.Tools())
	assert.Equal(t, "trace", cfg.LogLevel)
	assert.Equal(t, 45*time.Second, cfg.Timeout)
	assert.Equal(t, DefaultProject, cfg.Project, "blank values are ignored")
}

func TestParseTimeout(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"30", 30 * time.Second, false},
		{"1m30s", 90 * time.Second, false},
		{"250ms", 250 * time.Millisecond, false},
		{"soon", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseTimeout(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

// TestValidate tests the behavior of Config.Validate.
//
// It verifies:
//   - Each broken field is reported by name
//   - All problems are reported together
func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty apiurl", func(c *Config) { c.APIURL = "" }, "apiurl must not be empty"},
		{"bad scheme", func(c *Config) { c.APIURL = "ftp://api.opensuse.org" }, "apiurl must be an http or https URL"},
		{"no host", func(c *Config) { c.RepologyURL = "https://" }, "repology_url has no host"},
		{"empty project", func(c *Config) { c.Project = " " }, "project must not be empty"},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, "timeout must be positive"},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, "timeout must be positive"},
		{"empty osc", func(c *Config) { c.OscCommand = "" }, "osc_command must not be empty"},
		{"empty rpmspec", func(c *Config) { c.RpmspecCommand = "" }, "rpmspec_command must not be empty"},
		{"bad log level", func(c *Config) { c.LogLevel = "info" }, "log_level must be debug or trace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	cfg := Default()
	cfg.Project = ""
	cfg.Timeout = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project")
	assert.Contains(t, err.Error(), "timeout")
}
