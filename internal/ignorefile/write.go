package ignorefile

import (
	"fmt"
	"os"

	"github.com/YangQing-Lin/git-ignore/internal/utils"
)

// Write replaces path with content. With backup set, an existing file is first
// copied to path + ".backup".
func Write(path, content string, backup bool) error {
	if backup {
		if err := utils.BackupFile(path); err != nil {
			return fmt.Errorf("backup %s: %w", path, err)
		}
	}

	if err := utils.AtomicWriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadCurrent returns the content of path, or "" when it does not exist.
func ReadCurrent(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}
