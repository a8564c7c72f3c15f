package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteRestoredFile writes content to path, creating parent directories as
// needed. The content is written exactly as reconstructed.
func WriteRestoredFile(path, content string) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "/" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %q: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write restored file %q: %w", path, err)
	}
	return nil
}
