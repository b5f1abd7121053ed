package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// TimestampLayout is the prefix format of archived batch files.
const TimestampLayout = "20060102150405"

// Name returns the archived path for path: the same directory, with the base
// name prefixed by the timestamp of at.
func Name(path string, at time.Time) string {
	base := at.Format(TimestampLayout) + "_" + filepath.Base(path)
	return filepath.Join(filepath.Dir(path), base)
}

// FileArchiver renames batch files in place.
type FileArchiver struct{}

func (FileArchiver) Archive(path string, at time.Time) (string, error) {
	dst := Name(path, at)
	if err := os.Rename(path, dst); err != nil {
		return "", fmt.Errorf("rename %s: %w", filepath.Base(path), err)
	}
	return dst, nil
}
