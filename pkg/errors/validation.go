package errors

import (
	"strings"
	"unicode"
)

// ValidateOutputPath validates a file name handed to the engine's
// "set output" directive.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 1024 characters
//   - No null bytes or control characters (they would split the program)
//   - No trailing path separator
func ValidateOutputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 1024
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid control characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "output path %q names a directory", path)
	}

	return nil
}

// ValidateColumn validates a 0-based data column index.
func ValidateColumn(name string, col int) error {
	if col < 0 {
		return New(ErrCodeInvalidValue, "%s column must be >= 0, got %d", name, col)
	}
	return nil
}
