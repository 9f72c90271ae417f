package errors

import (
	"strings"
	"unicode"
)

// ValidateDimensions validates a canvas or component size.
// Both width and height must be positive.
func ValidateDimensions(width, height int) error {
	if width <= 0 {
		return New(ErrCodeInvalidDimension, "width must be positive, got %d", width)
	}
	if height <= 0 {
		return New(ErrCodeInvalidDimension, "height must be positive, got %d", height)
	}
	return nil
}

// ValidateChannels validates RGBA channel values from an untyped parameter
// list. Each channel must be in [0, 255] and exactly 3 or 4 channels are
// accepted (a missing alpha defaults to opaque at the call site).
func ValidateChannels(channels []int) error {
	if len(channels) != 3 && len(channels) != 4 {
		return New(ErrCodeInvalidColor, "color needs 3 or 4 channels, got %d", len(channels))
	}
	for i, v := range channels {
		if v < 0 || v > 255 {
			return New(ErrCodeInvalidColor, "channel %d out of range [0,255]: %d", i, v)
		}
	}
	return nil
}

// ValidateFilename validates an output filename for safety.
// It ensures the filename is a simple basename without path components.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - Maximum length of 256 characters
func ValidateFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidPath, "filename cannot be empty")
	}

	if len(filename) > 256 {
		return New(ErrCodeInvalidPath, "filename too long (max 256 characters)")
	}

	for _, r := range filename {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "filename contains invalid control characters")
		}
	}

	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidPath, "filename cannot contain path separators")
	}

	if strings.Contains(filename, "..") {
		return New(ErrCodeInvalidPath, "filename cannot contain path traversal sequences (..)")
	}

	return nil
}

// ValidateOutputDir validates a caller-supplied output directory path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidateOutputDir(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output directory cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output directory too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output directory contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "output directory cannot contain path traversal sequences (..)")
	}

	return nil
}
