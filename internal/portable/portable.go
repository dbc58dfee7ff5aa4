package portable

import (
	"os"
	"path/filepath"
)

// MarkerFile next to the executable switches on portable mode.
const MarkerFile = "portable.ini"

// DataDirName holds cache and config in portable mode.
const DataDirName = ".git-ignore"

var portableExecutableFunc = os.Executable

// IsPortableMode reports whether a regular portable.ini file sits beside the
// running executable.
func IsPortableMode() bool {
	execDir, err := executableDir()
	if err != nil {
		return false
	}

	info, err := os.Stat(filepath.Join(execDir, MarkerFile))
	if err != nil {
		return false
	}

	return !info.IsDir()
}

// GetPortableDataDir returns <exeDir>/.git-ignore.
func GetPortableDataDir() (string, error) {
	execDir, err := executableDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(execDir, DataDirName), nil
}

// GetPortableCacheDir returns the catalog cache directory used in portable mode.
func GetPortableCacheDir() (string, error) {
	dir, err := GetPortableDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cache"), nil
}

// GetPortableConfigDir returns the override config directory used in portable mode.
func GetPortableConfigDir() (string, error) {
	dir, err := GetPortableDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config"), nil
}

func executableDir() (string, error) {
	execPath, err := portableExecutableFunc()
	if err != nil {
		return "", err
	}
	return filepath.Dir(execPath), nil
}
