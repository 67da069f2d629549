package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/formview/toolkit"
)

// ValueView is the toolkit's generic value-view factory. It claims
// time.Duration fields and edits them in place through the supplied
// pointer; everything else is left to the engine's own dispatch.
func (t *Toolkit) ValueView(frame toolkit.Frame, name string, val any, tag string) (toolkit.Widget, bool) {
	_ = tag
	d, ok := val.(*time.Duration)
	if !ok {
		return nil, false
	}
	form, ok := frame.(*Form)
	if !ok {
		return nil, false
	}
	w := &durationField{widgetBase: newBase(t, name), ptr: d}
	form.attach(w)
	return w, true
}

// durationField edits a time.Duration by reference, in the usual
// "1m30s" notation. It holds the pointer itself, so it stays in sync
// with the bound object without engine refreshes.
type durationField struct {
	widgetBase
	ptr   *time.Duration
	input textinput.Model
	edit  bool
}

func (d *durationField) editing() bool { return d.edit }

func (d *durationField) view(focused bool) string {
	if d.edit {
		return d.input.View()
	}
	return d.style(focused)(d.ptr.String())
}

func (d *durationField) handleKey(msg tea.KeyMsg) bool {
	if !d.active {
		return false
	}
	keys := d.tk.keys
	if d.edit {
		switch {
		case key.Matches(msg, keys.Edit):
			d.edit = false
			dur, err := time.ParseDuration(d.input.Value())
			if err != nil {
				d.tk.fail(fmt.Errorf("tui: %s: bad duration %q", d.name, d.input.Value()))
				return true
			}
			*d.ptr = dur
			return true
		case key.Matches(msg, keys.Cancel):
			d.edit = false
			return true
		}
		d.input, _ = d.input.Update(msg)
		return true
	}
	if key.Matches(msg, keys.Edit) {
		d.input = textinput.New()
		d.input.SetValue(d.ptr.String())
		d.input.Focus()
		d.input.CursorEnd()
		d.edit = true
		return true
	}
	return false
}
