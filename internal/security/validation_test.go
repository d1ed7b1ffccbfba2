package security

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestValidateOutputName(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		baseDir string
		wantErr bool
	}{
		{"plain file", "palette.css", "dist", false},
		{"nested file", "css/palette.css", "dist", false},
		{"empty base", "tailwind.config.js", "", false},
		{"current dir", "palette.json", ".", false},
		{"empty name", "", "dist", true},
		{"absolute", "/etc/passwd", "dist", true},
		{"traversal", "../palette.css", "dist", true},
		{"hidden traversal", "css/../../x", "dist", true},
		{"dot", ".", "dist", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputName(tt.file, tt.baseDir)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputName(%q, %q) error = %v, wantErr %v", tt.file, tt.baseDir, err, tt.wantErr)
			}
		})
	}
}

func TestLimitedReader(t *testing.T) {
	data, err := io.ReadAll(NewLimitedReader(strings.NewReader("short"), 10))
	if err != nil || string(data) != "short" {
		t.Errorf("ReadAll under the limit = %q, %v", data, err)
	}

	_, err = io.ReadAll(NewLimitedReader(strings.NewReader("this is far too long"), 4))
	if !errors.Is(err, ErrSizeLimit) {
		t.Errorf("ReadAll over the limit error = %v, want ErrSizeLimit", err)
	}
}
