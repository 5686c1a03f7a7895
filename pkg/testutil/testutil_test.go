package testutil

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/lastupdate/pkg/buildservice"
	"github.com/ajxudir/lastupdate/pkg/repology"
)

func TestConfigBuilder(t *testing.T) {
	cfg := NewConfig().
		WithProject("devel:tools").
		WithAPIURL("https://api.suse.de").
		WithRepologyURL("http://localhost/api/v1/project/").
		WithTimeout(time.Second).
		Build()

	assert.Equal(t, "devel:tools", cfg.Project)
	assert.Equal(t, "https://api.suse.de", cfg.APIURL)
	assert.Equal(t, "http://localhost/api/v1/project/", cfg.RepologyURL)
	assert.Equal(t, time.Second, cfg.Timeout)
	assert.Equal(t, "osc", cfg.OscCommand)

	b := NewConfig()
	first := b.Build()
	first.Project = "changed"
	assert.Equal(t, "openSUSE:Factory", b.Build().Project, "Build returns independent copies")
}

func TestFakeBuildService(t *testing.T) {
	cause := stderrors.New("bad spec")
	f := &FakeBuildService{Packages: map[string]FakePackage{
		"bash": {Changed: []string{"Dec", "17", "2022"}, Version: "5.2.15"},
		"foo":  {Changed: []string{"Jan", "1", "2024"}, VersionErr: cause},
	}}
	ctx := context.Background()

	fields, err := f.LastChange(ctx, "openSUSE:Factory", "bash")
	require.NoError(t, err)
	assert.Equal(t, []string{"Dec", "17", "2022"}, fields)

	v, err := f.SpecVersion(ctx, "openSUSE:Factory", "bash")
	require.NoError(t, err)
	assert.Equal(t, "5.2.15", v)

	_, err = f.SpecVersion(ctx, "openSUSE:Factory", "foo")
	assert.ErrorIs(t, err, cause)

	_, err = f.LastChange(ctx, "openSUSE:Factory", "missing")
	assert.ErrorIs(t, err, buildservice.ErrPackageNotFound)

	assert.Equal(t, []string{"openSUSE:Factory/bash", "openSUSE:Factory/missing"}, f.Calls())
}

func TestFakeRepology(t *testing.T) {
	f := &FakeRepology{Projects: map[string][]repology.Entry{
		"bash": {Newest("arch", "5.2.21")},
	}}
	got, err := f.Project(context.Background(), "bash")
	require.NoError(t, err)
	assert.Equal(t, []repology.Entry{{Repo: "arch", Version: "5.2.21", Status: "newest"}}, got)

	got, err = f.Project(context.Background(), "zsh")
	require.NoError(t, err)
	assert.Empty(t, got)

	f.Err = stderrors.New("offline")
	_, err = f.Project(context.Background(), "bash")
	assert.EqualError(t, err, "offline")
	assert.Equal(t, 3, f.CallCount())
}

// TestCaptureStderr tests the behavior of CaptureStderr.
//
// It verifies:
//   - Writes to os.Stderr are returned
//   - os.Stderr is restored afterwards, also after a panic
func TestCaptureStderr(t *testing.T) {
	saved := os.Stderr

	output := CaptureStderr(t, func() {
		fmt.Fprint(os.Stderr, "oops")
	})
	assert.Equal(t, "oops", output)
	assert.Same(t, saved, os.Stderr)

	assert.Panics(t, func() {
		CaptureStderr(t, func() { panic("boom") })
	})
	assert.Same(t, saved, os.Stderr)
}
