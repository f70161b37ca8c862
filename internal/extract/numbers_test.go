package extract

import "testing"

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"8,50", 8.5},
		{" 14,25 ", 14.25},
		{"12", 12},
		{"n/a", 0},
		{"-", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := parseDecimal(tt.input); got != tt.expected {
			t.Errorf("parseDecimal(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestParseScorePair(t *testing.T) {
	tests := []struct {
		input      string
		home, away int
		ok         bool
	}{
		{"3-1", 3, 1, true},
		{"3:2", 3, 2, true},
		{" 9 : 3 ", 9, 3, true},
		{"-:-", 0, 0, false},
		{"-", 0, 0, false},
		{"abc", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, tt := range tests {
		h, a, ok := parseScorePair(tt.input)
		if h != tt.home || a != tt.away || ok != tt.ok {
			t.Errorf("parseScorePair(%q) = (%d, %d, %v), expected (%d, %d, %v)",
				tt.input, h, a, ok, tt.home, tt.away, tt.ok)
		}
	}
}
