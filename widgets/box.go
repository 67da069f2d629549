package widgets

import "github.com/charmbracelet/lipgloss"

// Widget is anything that can draw itself into a width*height cell box.
type Widget interface {
	Render(width, height int) string
}

// Box draws content inside rounded-border chrome with a title tab.
type Box struct {
	Title   string
	Content string
	Style   lipgloss.Style
}

func (b Box) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	style := b.Style.
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(width - 2).
		Height(max(1, height-2))
	head := ""
	if b.Title != "" {
		head = "[" + b.Title + "]\n"
	}
	return style.Render(head + b.Content)
}
