// Package repology reads package versions across distributions from the
// repology.org API.
package repology

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/ajxudir/lastupdate/pkg/config"
	"github.com/ajxudir/lastupdate/pkg/constants"
	"github.com/ajxudir/lastupdate/pkg/verbose"
	"github.com/ajxudir/lastupdate/pkg/versioning"
)

// Entry is one package of one repository as reported by
// GET /api/v1/project/<name>. Only Status and Version drive any logic.
type Entry struct {
	Repo        string   `json:"repo"`
	Subrepo     string   `json:"subrepo,omitempty"`
	SrcName     string   `json:"srcname,omitempty"`
	BinName     string   `json:"binname,omitempty"`
	VisibleName string   `json:"visiblename,omitempty"`
	Version     string   `json:"version"`
	OrigVersion string   `json:"origversion,omitempty"`
	Status      string   `json:"status"`
	Summary     string   `json:"summary,omitempty"`
	Maintainers []string `json:"maintainers,omitempty"`
	Licenses    []string `json:"licenses,omitempty"`
	Categories  []string `json:"categories,omitempty"`
}

// Client queries the project endpoint.
//
// Fields:
//   - BaseURL: Endpoint prefix; the project name is appended
//   - Fetcher: Transport
type Client struct {
	BaseURL string
	Fetcher Fetcher
}

// New creates a Client using an HTTPFetcher configured from cfg.
func New(cfg *config.Config) *Client {
	return &Client{
		BaseURL: cfg.RepologyURL,
		Fetcher: NewHTTPFetcher(cfg.Timeout, cfg.UserAgent),
	}
}

// ProjectURL returns the endpoint for name.
func (c *Client) ProjectURL(name string) string {
	base := c.BaseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + url.PathEscape(name)
}

// Project returns every repository entry for the project name.
//
// An unknown project yields an empty list, not an error.
//
// Returns:
//   - []Entry: Entries in API order
//   - error: Fetch failure or undecodable payload
func (c *Client) Project(ctx context.Context, name string) ([]Entry, error) {
	u := c.ProjectURL(name)
	body, err := c.Fetcher.Fetch(ctx, u)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, errors.Wrapf(err, "decode %s", u)
	}
	verbose.Debugf("repology returned %d entries for %s", len(entries), name)
	verbose.Dump("repology entries", entries)
	return entries, nil
}

// NewerCount counts repositories that may ship a newer version than reference.
//
// Entries whose status is "newest" and whose version differs from reference
// are candidates. When reference is numeric the candidates are narrowed to
// versions comparing strictly greater; otherwise, or when a comparison is not
// possible, every candidate counts.
func NewerCount(entries []Entry, reference string) int {
	candidates := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Status == constants.RepologyStatusNewest && e.Version != reference {
			candidates = append(candidates, e)
		}
	}
	if versioning.IsNumeric(reference) {
		candidates = versioning.FilterNewerFunc(reference, candidates, entryVersion)
	}
	return len(candidates)
}

func entryVersion(e Entry) string {
	return e.Version
}
