package renderer

import (
	"fmt"
	"os"
)

// WritePage writes the assembled document to the given path. When
// createBackup is set and a file already exists there, it is preserved
// with a .bak suffix first.
func WritePage(path, document string, createBackup bool) error {
	if createBackup {
		if _, err := os.Stat(path); err == nil {
			if err := os.Rename(path, path+".bak"); err != nil {
				return fmt.Errorf("failed to back up existing page: %w", err)
			}
		}
	}

	if err := os.WriteFile(path, []byte(document), 0644); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}

	return nil
}
