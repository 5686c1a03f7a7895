// Package config loads lastupdate settings from built-in defaults, a YAML
// file, a .env file and LASTUPDATE_* environment variables, in that order of
// increasing precedence. Command-line flags are applied last by the caller.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/ajxudir/lastupdate/pkg/verbose"
)

const (
	// LocalConfigName is looked up in the working directory.
	LocalConfigName = ".lastupdate.yml"

	// UserConfigPath is looked up when no local config exists.
	UserConfigPath = "~/.config/lastupdate/config.yml"

	// EnvFileName is loaded from the working directory when present.
	EnvFileName = ".env"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "LASTUPDATE_"

	// DefaultMaxConfigFileSize is the largest config file accepted (1MB).
	DefaultMaxConfigFileSize int64 = 1 << 20
)

// expandHome resolves "~" in paths; swapped in tests.
var expandHome = homedir.Expand

// Load builds the effective configuration.
//
// If configPath is given, that file must exist. Otherwise .lastupdate.yml in
// workDir and then ~/.config/lastupdate/config.yml are tried; if neither
// exists the built-in defaults are used.
//
// Parameters:
//   - configPath: explicit config file, or empty
//   - workDir: directory searched for .lastupdate.yml and .env
//
// Returns:
//   - *Config: the merged configuration, not yet validated
//   - error: unreadable or malformed config file, .env or environment value
func Load(configPath, workDir string) (*Config, error) {
	cfg := Default()

	path, err := resolvePath(configPath, workDir)
	if err != nil {
		return nil, err
	}
	if path != "" {
		fileCfg, err := loadConfigFile(path, DefaultMaxConfigFileSize)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		cfg.merge(fileCfg)
		cfg.Source = path
		verbose.ConfigLoaded(path)
	} else {
		verbose.Info("Using built-in default configuration")
	}

	if err := loadEnvFile(workDir); err != nil {
		return nil, err
	}
	if err := applyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolvePath picks the config file to read, empty when none applies.
func resolvePath(configPath, workDir string) (string, error) {
	if configPath != "" {
		expanded, err := expandHome(configPath)
		if err != nil {
			return "", fmt.Errorf("invalid config path %s: %w", configPath, err)
		}
		return expanded, nil
	}

	local := filepath.Join(workDir, LocalConfigName)
	if _, err := os.Stat(local); err == nil {
		verbose.Infof("Found local config: %s", local)
		return local, nil
	}

	user, err := expandHome(UserConfigPath)
	if err != nil {
		verbose.Printf("Cannot resolve home directory: %v", err)
		return "", nil
	}
	if _, err := os.Stat(user); err == nil {
		verbose.Infof("Found user config: %s", user)
		return user, nil
	}
	return "", nil
}

// loadConfigFile reads and strictly decodes a YAML config file.
//
// Unknown keys are rejected so that typos do not silently fall back to defaults.
func loadConfigFile(path string, maxSize int64) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d bytes)", info.Size(), maxSize)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return &cfg, nil
}

// loadEnvFile exports the variables of workDir/.env that are not already set.
func loadEnvFile(workDir string) error {
	path := filepath.Join(workDir, EnvFileName)
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	verbose.Infof("Loaded environment from %s", path)
	return nil
}

// applyEnv overrides cfg with LASTUPDATE_* variables.
//
// LASTUPDATE_TIMEOUT accepts a Go duration ("45s") or whole seconds ("45").
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get("APIURL"); ok {
		cfg.APIURL = v
	}
	if v, ok := get("PROJECT"); ok {
		cfg.Project = v
	}
	if v, ok := get("REPOLOGY_URL"); ok {
		cfg.RepologyURL = v
	}
	if v, ok := get("USER_AGENT"); ok {
		cfg.UserAgent = v
	}
	if v, ok := get("OSC"); ok {
		cfg.OscCommand = v
	}
	if v, ok := get("RPMSPEC"); ok {
		cfg.RpmspecCommand = v
	}
	if v, ok := get("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := get("TIMEOUT"); ok {
		d, err := ParseTimeout(v)
		if err != nil {
			return fmt.Errorf("invalid %sTIMEOUT: %w", EnvPrefix, err)
		}
		cfg.Timeout = d
	}
	return nil
}

// ParseTimeout accepts a Go duration or a number of whole seconds.
func ParseTimeout(s string) (time.Duration, error) {
	if secs, err := strconv.Atoi(s); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(s)
}
