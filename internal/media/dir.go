package media

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDirectory creates root/<segment> for kind if it is missing and
// returns its path. A path occupied by a non-directory is DirectoryUnavailable.
func EnsureDirectory(root string, kind Kind) (string, error) {
	dir := filepath.Join(root, kind.Policy().Segment)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", newError(CodeDirectoryUnavailable, fmt.Sprintf("create %s", dir), err)
	}
	return dir, nil
}

// Bootstrap prepares the directories of every kind. Call it once before the
// server starts accepting requests.
func Bootstrap(root string) error {
	for _, k := range []Kind{Image, Video} {
		if _, err := EnsureDirectory(root, k); err != nil {
			return err
		}
	}
	return nil
}
