// internal/probe/probe.go
package probe

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rust-swifties/tailor/internal/ui"
)

// CanTail reports whether the file at path can be tailed: it exists, is
// not a directory, and opens for reading. A missing file is the expected
// fallback case and stays silent; a directory or an unreadable file
// returns false with a warning. Only stat failures other than
// non-existence are returned as errors.
func CanTail(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read metadata for %s: %w", path, err)
	}
	if info.IsDir() {
		ui.Warn(fmt.Sprintf("%s is a directory", path))
		return false, nil
	}
	f, err := os.Open(path)
	if err != nil {
		ui.Warn(fmt.Sprintf("cannot read file %s: %v", path, err))
		return false, nil
	}
	f.Close()
	return true, nil
}
