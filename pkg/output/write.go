package output

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/deckout/pkg/errors"
)

// WriteArtifact writes data to path, creating parent directories as needed
func WriteArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "cannot create directory %s", dir).
				WithDetail("path", path)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path).
			WithDetail("path", path)
	}
	return nil
}
