package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/formview/bind"
	"github.com/jask/formview/internal/config"
	"github.com/jask/formview/internal/sim"
	"github.com/jask/formview/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Log.Path), 0o755); err != nil {
		log.Fatalf("mkdir log dir: %v", err)
	}
	logFile, err := os.OpenFile(cfg.Log.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Fatalf("open log: %v", err)
	}
	defer logFile.Close()

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	bind.SetLogger(logger)

	sim.RegisterEnums()

	tk := tui.New()
	tk.SetLogger(logger)
	tk.Connect(bind.HandleEvent)

	params := sim.NewTrainParams()
	if cfg.Sim.Epochs > 0 {
		params.Epochs = cfg.Sim.Epochs
	}
	if cfg.Sim.LearnRate > 0 {
		params.LearnRate = cfg.Sim.LearnRate
	}
	view, err := bind.NewView(params, "TrainParams", tk)
	if err != nil {
		log.Fatalf("bind: %v", err)
	}
	form := tk.NewForm("TrainParams")
	view.Build(form)

	app := tui.NewApp(tk, form, cfg.UI.Title)
	m := demo{
		App:    app,
		params: params,
		view:   view,
		every:  cfg.Sim.TickInterval,
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

type tickMsg time.Time

// demo wraps the form app with a run loop: each tick advances the fake
// training run and refreshes the bound view so the stats dialog tracks it.
type demo struct {
	*tui.App
	params *sim.TrainParams
	view   *bind.View
	every  time.Duration
}

func (d demo) Init() tea.Cmd {
	return tea.Batch(d.App.Init(), d.tick())
}

func (d demo) tick() tea.Cmd {
	return tea.Tick(d.every, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (d demo) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tickMsg); ok {
		d.params.Step()
		d.view.Refresh()
		// refresh is shallow, so the stats dialog (once opened) is a
		// separate registered view and tracks the run on its own
		if sv, ok := bind.ViewByName("TrainParams_Stats"); ok {
			sv.Refresh()
		}
		return d, d.tick()
	}
	m, cmd := d.App.Update(msg)
	if app, ok := m.(*tui.App); ok {
		d.App = app
	}
	return d, cmd
}
