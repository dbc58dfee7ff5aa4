package cmd

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YangQing-Lin/git-ignore/internal/config"
)

func mockRunProcess(t *testing.T) *[]*exec.Cmd {
	t.Helper()
	var started []*exec.Cmd
	orig := runProcess
	runProcess = func(c *exec.Cmd, wait bool) error {
		started = append(started, c)
		return nil
	}
	t.Cleanup(func() { runProcess = orig })
	return &started
}

func TestOpenConfigUsesEditor(t *testing.T) {
	env := newTestEnv(t, defaultCatalog())
	started := mockRunProcess(t)
	_, _, err := env.run(t, "init")
	require.NoError(t, err)

	t.Setenv("EDITOR", "vim")
	t.Setenv("VISUAL", `code --wait --new-window`)

	_, _, err = env.run(t, "open-config")
	require.NoError(t, err)

	require.Len(t, *started, 1)
	assert.Equal(t, []string{"code", "--wait", "--new-window", config.Path(env.configDir)}, (*started)[0].Args)
}

func TestOpenConfigFallsBackToLauncher(t *testing.T) {
	env := newTestEnv(t, defaultCatalog())
	started := mockRunProcess(t)
	_, _, err := env.run(t, "init")
	require.NoError(t, err)

	stdout, _, err := env.run(t, "open-config")
	if err != nil {
		// platforms without a known file manager
		assert.Contains(t, err.Error(), "unsupported operating system")
		return
	}
	assert.Contains(t, stdout, "Config directory: "+env.configDir)
	require.Len(t, *started, 1)
	assert.Equal(t, env.configDir, (*started)[0].Args[len((*started)[0].Args)-1])
}

func TestEditorCommand(t *testing.T) {
	path := filepath.Join("dir", "config.toml")

	cases := []struct {
		name    string
		visual  string
		editor  string
		want    []string
		wantErr bool
	}{
		{name: "none"},
		{name: "editor", editor: "nano", want: []string{"nano", path}},
		{name: "visual_wins", visual: "code -w", editor: "nano", want: []string{"code", "-w", path}},
		{name: "quoted", editor: `"/opt/my editor/bin" -n`, want: []string{"/opt/my editor/bin", "-n", path}},
		{name: "blank", editor: "   "},
		{name: "unterminated_quote", editor: `vim "oops`, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("VISUAL", tc.visual)
			t.Setenv("EDITOR", tc.editor)

			c, err := editorCommand(path)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tc.want == nil {
				assert.Nil(t, c)
				return
			}
			require.NotNil(t, c)
			assert.Equal(t, tc.want, c.Args)
		})
	}
}
