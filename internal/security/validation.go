// Package security provides path and size checks for files brandkit reads
// and writes.
package security

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrSizeLimit is returned by LimitedReader once its budget is spent.
var ErrSizeLimit = errors.New("size limit exceeded")

// ValidateOutputName checks that name, joined to baseDir, stays inside
// baseDir. Exported files must never land outside the chosen directory.
func ValidateOutputName(name, baseDir string) error {
	if name == "" {
		return fmt.Errorf("empty file name")
	}
	if filepath.IsAbs(name) {
		return fmt.Errorf("output file name must be relative: %s", name)
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("output file name contains directory traversal (..): %s", name)
	}

	rel, err := filepath.Rel(filepath.Clean(baseDir), filepath.Join(baseDir, name))
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("output file %s would escape %s", name, baseDir)
	}
	return nil
}

// LimitedReader wraps an io.Reader and fails once more than the allowed
// number of bytes has been requested, so oversized images are rejected
// before they are fully decoded.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		return 0, ErrSizeLimit
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}
