package util

import (
	"fmt"
	"os"
)

// EnsureDir creates path and any missing parents. It fails when path exists
// but is not a directory.
func EnsureDir(path string) error {
	if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
		return fmt.Errorf("%s exists and is not a directory", path)
	}
	return os.MkdirAll(path, 0o755)
}
