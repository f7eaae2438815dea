package utils

import "testing"

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{182.5, "182.50"},
		{1234.5, "1,234.50"},
		{1234567.8, "1,234,567.80"},
		{-9876543.21, "-9,876,543.21"},
		{999.999, "1,000.00"},
	}
	for _, tt := range tests {
		if got := GroupThousands(tt.in); got != tt.want {
			t.Errorf("GroupThousands(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{12.345, "+12.35%"},
		{-3.2, "-3.20%"},
		{0, "0.00%"},
	}
	for _, tt := range tests {
		if got := FormatPercent(tt.in); got != tt.want {
			t.Errorf("FormatPercent(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestChangePercent(t *testing.T) {
	if got := ChangePercent(100, 125); got != 25 {
		t.Errorf("ChangePercent(100, 125) = %v, want 25", got)
	}
	if got := ChangePercent(0, 125); got != 0 {
		t.Errorf("ChangePercent(0, 125) = %v, want 0", got)
	}
	if got := ChangePercent(200, 150); got != -25 {
		t.Errorf("ChangePercent(200, 150) = %v, want -25", got)
	}
}
