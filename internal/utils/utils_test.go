package utils

import "testing"

func TestLeader(t *testing.T) {
	tests := []struct {
		label string
		width int
		want  string
	}{
		{"Width", 12, "Width ..... "},
		{"Height", 9, "Height . "},
		{"Compression", 8, "Compression "},
	}
	for _, tt := range tests {
		if got := Leader(tt.label, tt.width); got != tt.want {
			t.Errorf("Leader(%q, %d) = %q, want %q", tt.label, tt.width, got, tt.want)
		}
	}
}

func TestColoredBlock(t *testing.T) {
	if got := ColoredBlock("  ", 255, 0, 10); got != "\033[48;2;255;0;10m  \033[0m" {
		t.Errorf("got %q", got)
	}
}
