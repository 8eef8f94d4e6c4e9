package generate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openDestination returns writer for the file named by dst or STDOUT when dst
// is empty. Existing file is only replaced when overwrite is requested.
func openDestination(dst string, overwrite bool) (io.WriteCloser, string, error) {
	if len(dst) == 0 {
		return nopCloser{os.Stdout}, "STDOUT", nil
	}

	dst, err := filepath.Abs(dst)
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(dst); err == nil && !overwrite {
		return nil, "", fmt.Errorf("output file already exists: %s", dst)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return nil, "", fmt.Errorf("unable to create output directory: %w", err)
	}
	f, err := os.Create(dst)
	if err != nil {
		return nil, "", fmt.Errorf("unable to create destination file '%s': %w", dst, err)
	}
	return f, dst, nil
}
