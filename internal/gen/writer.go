package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files, creating parent directories as needed.
// Existing files are overwritten.
func WriteFiles(files []GeneratedFile) error {
	for _, file := range files {
		err := os.MkdirAll(filepath.Dir(file.Path), dirPerm)
		if err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		err = os.WriteFile(file.Path, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Path, err)
		}
	}

	return nil
}
