package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/formview/widgets"
)

// App is the top-level bubbletea model: one root form, the dialog stack
// on top of it, and a status/help footer.
type App struct {
	tk        *Toolkit
	root      *Form
	title     string
	keys      keyMap
	width     int
	height    int
	status    string
	statusErr bool
	quitting  bool
}

// NewApp wraps a built root form for running under tea.NewProgram.
func NewApp(tk *Toolkit, root *Form, title string) *App {
	return &App{
		tk:     tk,
		root:   root,
		title:  title,
		keys:   tk.keys,
		width:  80,
		height: 24,
	}
}

// SetStatus puts an informational message on the footer line.
func (a *App) SetStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.status = ""
	a.statusErr = false

	if top := a.tk.topDialog(); top != nil {
		switch {
		case top.form.IsEditing():
			top.form.HandleKey(msg)
		case key.Matches(msg, a.keys.Cancel):
			top.Close(false)
		case key.Matches(msg, a.keys.Ok):
			top.Close(true)
		default:
			top.form.HandleKey(msg)
		}
	} else {
		if !a.root.IsEditing() && key.Matches(msg, a.keys.Quit) {
			a.quitting = true
			return a, tea.Quit
		}
		a.root.HandleKey(msg)
	}

	if err := a.tk.takeError(); err != nil {
		a.status = err.Error()
		a.statusErr = true
	}
	return a, nil
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	w, h := a.width, a.height
	body := a.tk.theme.Title.Render(a.title) + "\n\n" + a.root.View(w-4)
	base := widgets.Box{Content: body, Style: a.tk.theme.Border}.Render(w, h-1)
	for _, d := range a.tk.dialogs {
		base = widgets.RenderDialog(base, d.title, d.form.View(w/2), w, h-1)
	}
	return widgets.VStack{
		Widgets: []widgets.Widget{widgets.Text(base), widgets.Text(a.footer())},
		Ratios:  []float64{float64(h - 1), 1},
	}.Render(w, h)
}

func (a *App) footer() string {
	th := a.tk.theme
	if a.status != "" {
		if a.statusErr {
			return th.Error.Render(a.status)
		}
		return th.Help.Render(a.status)
	}
	form := a.root
	if top := a.tk.topDialog(); top != nil {
		form = top.form
	}
	if tip := form.FocusedTooltip(); tip != "" {
		return th.Help.Render(tip)
	}
	var parts []string
	for _, b := range a.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return th.Help.Render(strings.Join(parts, " · "))
}
