package errors

import (
	"strings"
	"testing"
)

func TestValidateMazeName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "spiral", false},
		{"valid with dash", "open-field", false},
		{"valid with underscore", "no_exit", false},
		{"valid with digits", "rooms2", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 65), true},
		{"path traversal ..", "foo/../bar", true},
		{"slash", "foo/bar", true},
		{"backslash", "foo\\bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
		{"uppercase", "Spiral", true},
		{"leading dash", "-spiral", true},
		{"double separator", "open__field", true},
		{"space", "open field", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMazeName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMazeName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidName) {
				t.Errorf("ValidateMazeName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidName)
			}
		})
	}
}
