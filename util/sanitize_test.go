package util

import "testing"

func TestSanitizeString_Table(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "post 42 not found", "post 42 not found"},
		{"whitespace", "  trimmed  ", "trimmed"},
		{"newline", "line1\nline2", "line1line2"},
		{"escape", "red\x1b[31malert", "red[31malert"},
		{"tabs", "a\tb", "ab"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeString(tc.in); got != tc.want {
				t.Errorf("SanitizeString(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
