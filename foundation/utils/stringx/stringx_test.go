package stringx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"mixed whitespace", " \t\n\r ", true},
		{"content", " hello ", false},
		{"unicode content", "こんにちは", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlank(tt.input); got != tt.expected {
				t.Errorf("IsBlank(%q) = %v; want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFirstNonBlank(t *testing.T) {
	if got := FirstNonBlank("", "  ", "sysbus", "x"); got != "sysbus" {
		t.Errorf("FirstNonBlank() = %q; want %q", got, "sysbus")
	}
	if got := FirstNonBlank(" "); got != "" {
		t.Errorf("FirstNonBlank() = %q; want empty", got)
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(string, int, rune) string
		input string
		width int
		pad   rune
		want  string
	}{
		{"right ascii", PadRight, "ab", 4, ' ', "ab  "},
		{"right already wide", PadRight, "abcdef", 4, ' ', "abcdef"},
		{"right unicode", PadRight, "ü", 3, '.', "ü.."},
		{"left ascii", PadLeft, "7", 3, '0', "007"},
		{"left zero width", PadLeft, "7", 0, '0', "7"},
		{"left unicode pad", PadLeft, "x", 2, '→', "→x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.input, tt.width, tt.pad); got != tt.want {
				t.Errorf("got %q; want %q", got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		ellipsis string
		want     string
	}{
		{"hello", 10, "...", "hello"},
		{"hello world", 8, "...", "hello..."},
		{"hello", 2, "...", "he"},
		{"hello", 0, "...", ""},
		{"こんにちは", 4, "…", "こんに…"},
	}

	for _, tt := range tests {
		if got := Truncate(tt.input, tt.maxLen, tt.ellipsis); got != tt.want {
			t.Errorf("Truncate(%q, %d, %q) = %q; want %q", tt.input, tt.maxLen, tt.ellipsis, got, tt.want)
		}
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("a\r\nb\rc\nd")
	if diff := cmp.Diff([]string{"a", "b", "c", "d"}, got); diff != "" {
		t.Errorf("SplitLines() mismatch (-want +got):\n%s", diff)
	}
}
