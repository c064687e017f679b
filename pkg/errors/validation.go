package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxMazeNameLength bounds preset names accepted from clients.
const maxMazeNameLength = 64

// mazeNameRegex matches catalog names: lowercase words joined by '_' or '-'.
var mazeNameRegex = regexp.MustCompile(`^[a-z0-9]+([_-][a-z0-9]+)*$`)

// ValidateMazeName validates a preset maze name before it is looked up.
// It rejects names that could never be in the catalog so that lookups of
// hostile path segments fail early with a precise message.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 64 characters
//   - Lowercase letters, digits, '_' and '-' only
func ValidateMazeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "maze name cannot be empty")
	}

	if len(name) > maxMazeNameLength {
		return New(ErrCodeInvalidName, "maze name too long (max %d characters)", maxMazeNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "maze name contains invalid control characters")
		}
	}

	for _, pattern := range []string{"..", "/", "\\"} {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidName, "maze name contains invalid characters: %q", pattern)
		}
	}

	if !mazeNameRegex.MatchString(name) {
		return New(ErrCodeInvalidName, "invalid maze name: %q", name)
	}

	return nil
}
