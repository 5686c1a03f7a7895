package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate checks that the configuration can be used for a run.
//
// Every problem is reported, joined into a single error.
//
// Returns:
//   - error: nil when valid, otherwise one line per problem
func (c *Config) Validate() error {
	var errs []error

	if err := validateURL("apiurl", c.APIURL); err != nil {
		errs = append(errs, err)
	}
	if err := validateURL("repology_url", c.RepologyURL); err != nil {
		errs = append(errs, err)
	}
	if strings.TrimSpace(c.Project) == "" {
		errs = append(errs, errors.New("project must not be empty"))
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", c.Timeout))
	}
	if strings.TrimSpace(c.OscCommand) == "" {
		errs = append(errs, errors.New("osc_command must not be empty"))
	}
	if strings.TrimSpace(c.RpmspecCommand) == "" {
		errs = append(errs, errors.New("rpmspec_command must not be empty"))
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "trace":
	default:
		errs = append(errs, fmt.Errorf("log_level must be debug or trace, got %q", c.LogLevel))
	}

	return errors.Join(errs...)
}

func validateURL(field, raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("%s must not be empty", field)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", field, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must be an http or https URL, got %q", field, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%s has no host: %q", field, raw)
	}
	return nil
}
