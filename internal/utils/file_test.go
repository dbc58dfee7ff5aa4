package utils

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	existingPath := filepath.Join(tmpDir, "exists.txt")
	require.NoError(t, os.WriteFile(existingPath, []byte("ok"), 0644))

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file", existingPath, true},
		{"existing dir", tmpDir, true},
		{"missing file", filepath.Join(tmpDir, "missing.txt"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileExists(tt.path))
		})
	}
}

func TestDirExists(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("ok"), 0644))

	assert.True(t, DirExists(tmpDir))
	assert.False(t, DirExists(file))
	assert.False(t, DirExists(filepath.Join(tmpDir, "nope")))
}

func TestAtomicWriteFile(t *testing.T) {
	tmpDir := t.TempDir()
	existingPath := filepath.Join(tmpDir, "existing.txt")
	require.NoError(t, os.WriteFile(existingPath, []byte("old"), 0600))

	tests := []struct {
		name    string
		path    string
		data    []byte
		perm    os.FileMode
		wantErr bool
	}{
		{name: "new file", path: filepath.Join(tmpDir, "new.txt"), data: []byte("hello"), perm: 0644},
		{name: "overwrite existing", path: existingPath, data: []byte("new"), perm: 0600},
		{name: "empty data", path: filepath.Join(tmpDir, "empty.txt"), data: []byte{}, perm: 0644},
		{name: "missing parent", path: filepath.Join(tmpDir, "missing", "x.txt"), data: []byte("x"), perm: 0644, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AtomicWriteFile(tt.path, tt.data, tt.perm)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			got, err := os.ReadFile(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.data, got)

			if runtime.GOOS != "windows" {
				info, err := os.Stat(tt.path)
				require.NoError(t, err)
				assert.Equal(t, tt.perm, info.Mode().Perm())
			}
		})
	}

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.NotContains(t, entry.Name(), ".tmp", "temp file left behind")
	}
}

func TestBackupFile(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, ".gitignore")
	require.NoError(t, os.WriteFile(src, []byte("target/\n"), 0644))

	require.NoError(t, BackupFile(src))
	got, err := os.ReadFile(src + ".backup")
	require.NoError(t, err)
	assert.Equal(t, "target/\n", string(got))

	missing := filepath.Join(tmpDir, "missing")
	require.NoError(t, BackupFile(missing))
	assert.False(t, FileExists(missing+".backup"))
}
