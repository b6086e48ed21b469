// Terminal formatting helpers
package utils

import (
	"fmt"
	"strings"
)

// Print a Colored Block in terminal (24-bit ANSI background color)
func ColoredBlock(block string, red int, green int, blue int) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm%s\033[0m", red, green, blue, block)
}

// Leader pads label with dots up to width, e.g. "Image width ....... ".
// Labels that are already too long get a single space.
func Leader(label string, width int) string {
	if len(label)+2 > width {
		return label + " "
	}
	return label + " " + strings.Repeat(".", width-len(label)-2) + " "
}
