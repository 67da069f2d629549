package tui

import (
	"log/slog"

	"github.com/jask/formview/toolkit"
)

// Toolkit is the terminal realization of the widget toolkit. It owns the
// theme, the dialog stack and the event sink connection. All calls happen
// on the bubbletea update loop.
type Toolkit struct {
	theme   Theme
	keys    keyMap
	logger  *slog.Logger
	sink    toolkit.EventSink
	dialogs []*Dialog
	lastErr error
}

// New returns a Toolkit with the default theme and key map.
func New() *Toolkit {
	return &Toolkit{
		theme:  DefaultTheme(),
		keys:   newKeyMap(),
		logger: slog.New(slog.DiscardHandler),
	}
}

// SetLogger installs the diagnostics logger.
func (t *Toolkit) SetLogger(l *slog.Logger) {
	if l != nil {
		t.logger = l
	}
}

// NewForm returns an empty root form to build a view into.
func (t *Toolkit) NewForm(name string) *Form {
	return newForm(t, name)
}

// Connect installs the sink all widget edits are delivered to.
func (t *Toolkit) Connect(sink toolkit.EventSink) {
	t.sink = sink
}

// NewDialog constructs a closed modal dialog. Open pushes it onto the
// dialog stack; the top of the stack owns the keyboard.
func (t *Toolkit) NewDialog(name, title string, onClose func(ok bool)) toolkit.Dialog {
	return &Dialog{
		tk:      t,
		name:    name,
		title:   title,
		form:    newForm(t, name),
		onClose: onClose,
	}
}

// emit delivers one edit to the sink. Sink errors are kept for the app
// status line and logged; they never propagate into widget code.
func (t *Toolkit) emit(name string, ev toolkit.Event) {
	if t.sink == nil {
		return
	}
	if err := t.sink(name, ev); err != nil {
		t.logger.Warn("edit rejected", "widget", name, "event", ev.Kind.String(), "err", err)
		t.lastErr = err
	}
}

// takeError returns and clears the last sink error.
func (t *Toolkit) takeError() error {
	err := t.lastErr
	t.lastErr = nil
	return err
}

// fail records a widget-level input error (for example an unparsable
// duration) on the status line.
func (t *Toolkit) fail(err error) {
	t.lastErr = err
}

// topDialog returns the dialog owning the keyboard, if any.
func (t *Toolkit) topDialog() *Dialog {
	if len(t.dialogs) == 0 {
		return nil
	}
	return t.dialogs[len(t.dialogs)-1]
}

func (t *Toolkit) pushDialog(d *Dialog) {
	t.dialogs = append(t.dialogs, d)
}

func (t *Toolkit) raiseDialog(d *Dialog) {
	for i, cur := range t.dialogs {
		if cur == d {
			t.dialogs = append(append(t.dialogs[:i], t.dialogs[i+1:]...), d)
			return
		}
	}
}

func (t *Toolkit) removeDialog(d *Dialog) {
	for i, cur := range t.dialogs {
		if cur == d {
			t.dialogs = append(t.dialogs[:i], t.dialogs[i+1:]...)
			return
		}
	}
}
