package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Text is a raw block of pre-rendered lines. It participates in stack
// layout by padding or truncating each line to the requested width.
type Text string

func (t Text) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(string(t), "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i := range lines {
		lines[i] = PadRight(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

// VStack stacks widgets vertically, dividing the height evenly or by
// ratio.
type VStack struct {
	Widgets []Widget
	Ratios  []float64
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	heights := splitSpans(height, len(v.Widgets), v.Ratios)
	parts := make([]string, 0, len(v.Widgets))
	for i, w := range v.Widgets {
		parts = append(parts, w.Render(width, max(1, heights[i])))
	}
	return strings.Join(parts, "\n")
}

// splitSpans divides total cells among n spans, evenly when ratios is
// absent or degenerate. Rounding remainders go to the leading spans so
// the spans always cover total exactly.
func splitSpans(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	if len(ratios) != n {
		for i := range out {
			out[i] = total / n
		}
		for i := 0; i < total%n; i++ {
			out[i]++
		}
		return out
	}
	sum := 0.0
	for _, r := range ratios {
		if r > 0 {
			sum += r
		}
	}
	if sum == 0 {
		return splitSpans(total, n, nil)
	}
	used := 0
	for i, r := range ratios {
		if r < 0 {
			r = 0
		}
		out[i] = int(r / sum * float64(total))
		used += out[i]
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}

// PadRight pads s with spaces so its visual width equals width.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
