package testutil

import (
	"context"
	"sync"

	"github.com/ajxudir/lastupdate/pkg/buildservice"
	"github.com/ajxudir/lastupdate/pkg/repology"
)

// FakePackage is what FakeBuildService knows about one package.
//
// Fields:
//   - Changed: Date fields returned by LastChange
//   - Version: Returned by SpecVersion
//   - VersionErr: Returned by SpecVersion instead of a version
type FakePackage struct {
	Changed    []string
	Version    string
	VersionErr error
}

// FakeBuildService is an in-memory buildservice.Client.
//
// Packages missing from the map are reported as buildservice.ErrPackageNotFound.
type FakeBuildService struct {
	Packages map[string]FakePackage

	mu    sync.Mutex
	calls []string
}

var _ buildservice.Client = (*FakeBuildService)(nil)

// LastChange implements buildservice.Client.
func (f *FakeBuildService) LastChange(_ context.Context, project, pkg string) ([]string, error) {
	f.record(project + "/" + pkg)
	p, ok := f.Packages[pkg]
	if !ok {
		return nil, buildservice.ErrPackageNotFound
	}
	return p.Changed, nil
}

// SpecVersion implements buildservice.Client.
func (f *FakeBuildService) SpecVersion(_ context.Context, _, pkg string) (string, error) {
	p := f.Packages[pkg]
	if p.VersionErr != nil {
		return "", p.VersionErr
	}
	return p.Version, nil
}

// Calls returns the "project/package" pairs LastChange was asked for.
func (f *FakeBuildService) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *FakeBuildService) record(s string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, s)
}

// FakeRepology is an in-memory repology project source.
//
// Fields:
//   - Projects: Entries per project name; unknown names yield no entries
//   - Err: Returned for every lookup when set
type FakeRepology struct {
	Projects map[string][]repology.Entry
	Err      error

	mu    sync.Mutex
	calls int
}

// Project returns the configured entries for name.
func (f *FakeRepology) Project(_ context.Context, name string) ([]repology.Entry, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Projects[name], nil
}

// CallCount returns how many lookups were made.
func (f *FakeRepology) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// Newest builds a repology entry with status "newest".
func Newest(repo, version string) repology.Entry {
	return repology.Entry{Repo: repo, Version: version, Status: "newest"}
}
