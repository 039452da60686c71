// SPDX-License-Identifier: MIT
// Package progress: text progress bar.

package progress

import (
	"fmt"
	"io"
	"strings"
)

// DefaultWidth is the number of cells drawn by a Bar.
const DefaultWidth = 40

// Bar draws a single-line progress bar on w, redrawing in place with '\r'.
// Open-ended runs show a running count instead of a bar.
type Bar struct {
	w      io.Writer
	width  int
	prefix string
}

// NewBar returns a Bar writing to w. It panics if width < 1.
func NewBar(w io.Writer, width int, prefix string) *Bar {
	if width < 1 {
		panic("progress: NewBar width must be ≥ 1")
	}
	return &Bar{w: w, width: width, prefix: prefix}
}

// Report draws e.
func (b *Bar) Report(e Event) {
	switch e.Stage {
	case Started:
		fmt.Fprintf(b.w, "%s%s", b.prefix, e)
	case Advanced:
		b.render(e)
	case Finished:
		fmt.Fprintf(b.w, "%s\n", e)
	default:
		fmt.Fprintf(b.w, "\n%s%s\n", b.prefix, e)
	}
}

func (b *Bar) render(e Event) {
	if e.Total == Unknown || e.Total <= 0 {
		fmt.Fprintf(b.w, "\r%s%s", b.prefix, e)
		return
	}

	percent := float64(e.Done) / float64(e.Total)
	filled := int(percent * float64(b.width))
	if filled > b.width {
		filled = b.width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", b.width-filled)
	fmt.Fprintf(b.w, "\r%s[%s] %3.0f%% (%d/%d)", b.prefix, bar, percent*100, e.Done, e.Total)
}
