// progress.go - A terminal-width-aware text progress bar, grounded on
// the original tracer's hash-fill percentage bar.

package main

import (
	"fmt"
	"strings"

	"golang.org/x/term"
)

const fallbackTermWidth = 75

// termWidth returns the current terminal's column count, falling back
// to a fixed width when stdout isn't a terminal (e.g. piped output).
func termWidth(fd int) int {
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		return w
	}
	return fallbackTermWidth
}

// ProgressBar renders fraction (in [0,1]) as a '#'-filled bar sized to
// fit width columns, prefixed with "COMPLETE " once fraction reaches 1.
func ProgressBar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	prefix := ""
	if fraction >= 1 {
		prefix = "COMPLETE "
	}

	pct := fmt.Sprintf(" %6.2f%%", fraction*100)
	barWidth := width - len(prefix) - len(pct) - 2
	if barWidth < 1 {
		barWidth = 1
	}

	filled := int(fraction * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteByte('[')
	b.WriteString(strings.Repeat("#", filled))
	b.WriteString(strings.Repeat(" ", barWidth-filled))
	b.WriteByte(']')
	b.WriteString(pct)
	return b.String()
}

// PrintProgress writes the bar to stdout on a single overwritten line
// using a carriage return rather than a newline.
func PrintProgress(fraction float64) {
	fmt.Printf("\r%s", ProgressBar(fraction, termWidth(1)))
}
