package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileExists reports whether path exists (file or directory).
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// DirExists reports whether path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// AtomicWriteFile writes data to a uniquely named temp file next to path and
// renames it into place, so readers never observe a half-written file.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tempFile := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	if err := os.WriteFile(tempFile, data, perm); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	// os.WriteFile only applies perm on create
	if err := os.Chmod(tempFile, perm); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(tempFile, path); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// BackupFile copies path to path + ".backup". A missing source is not an error.
func BackupFile(path string) error {
	if !FileExists(path) {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read original file: %w", err)
	}

	if err := os.WriteFile(path+".backup", data, 0644); err != nil {
		return fmt.Errorf("create backup: %w", err)
	}

	return nil
}
