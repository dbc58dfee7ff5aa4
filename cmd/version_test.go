package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YangQing-Lin/git-ignore/internal/version"
)

func TestVersionCmd(t *testing.T) {
	env := newTestEnv(t, defaultCatalog())

	stdout, _, err := env.run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "git-ignore version: "+version.GetVersion())
	assert.Contains(t, stdout, version.ProjectURL)
	assert.NotContains(t, stdout, "Build date")
}

func TestVersionCmdIncludesInjectedBuildInfo(t *testing.T) {
	env := newTestEnv(t, defaultCatalog())

	origDate := version.BuildDate
	origCommit := version.GitCommit
	version.BuildDate = "2026-10-18"
	version.GitCommit = "deadbeef"
	t.Cleanup(func() {
		version.BuildDate = origDate
		version.GitCommit = origCommit
	})

	stdout, _, err := env.run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Build date: 2026-10-18")
	assert.Contains(t, stdout, "Git commit: deadbeef")
}
