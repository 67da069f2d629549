package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderDialog composites a titled dialog card over a base canvas,
// centered. Stacked dialogs are produced by calling this repeatedly with
// the previous result as the base.
func RenderDialog(base, title, body string, width, height int) string {
	content := body
	if title != "" {
		content = lipgloss.NewStyle().Bold(true).Render(title) + "\n\n" + body
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Render(content)
	return RenderPopup(base, card, width, height)
}

// RenderPopup centers popup over base and composites the two line grids,
// keeping base content visible around the popup's footprint.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	baseCanvas := fitCanvas(base, width, height)
	overlayCanvas := fitCanvas(lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, popup), width, height)

	baseLines := strings.Split(baseCanvas, "\n")
	overlayLines := strings.Split(overlayCanvas, "\n")
	out := make([]string, height)
	for i := 0; i < height; i++ {
		baseLine := PadRight(baseLines[i], width)
		overlayLine := PadRight(overlayLines[i], width)
		start, end, has := popupBounds(overlayLine, width)
		if !has {
			out[i] = baseLine
			continue
		}
		left := ansi.Truncate(baseLine, start, "")
		segment := ansi.Truncate(dropColumns(overlayLine, start), end-start, "")
		right := dropColumns(baseLine, end)
		out[i] = PadRight(left+segment+right, width)
	}
	return strings.Join(out, "\n")
}

// popupBounds finds the column span a popup line actually occupies,
// ignoring the padding lipgloss.Place adds around it.
func popupBounds(line string, width int) (start, end int, ok bool) {
	plain := ansi.Strip(ansi.Truncate(line, width, ""))
	trimmed := strings.TrimRight(plain, " ")
	if trimmed == "" {
		return 0, 0, false
	}
	for start < len(plain) && plain[start] == ' ' {
		start++
	}
	end = len(trimmed)
	if start >= end {
		return 0, 0, false
	}
	return start, end, true
}

// fitCanvas pads or truncates s to exactly width*height cells.
func fitCanvas(s string, width, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = PadRight(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

// dropColumns removes the first cols visual columns from s.
func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	truncated := ansi.Truncate(s, cols, "")
	return strings.TrimPrefix(s, truncated)
}
