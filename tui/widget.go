package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/formview/toolkit"
	"github.com/jask/formview/widgets"
)

// widget is the internal surface every tui editor implements on top of
// the toolkit contract.
type widget interface {
	toolkit.Widget
	view(focused bool) string
	// handleKey processes one key for the focused widget; false means the
	// form should try its own navigation bindings instead.
	handleKey(msg tea.KeyMsg) bool
	editing() bool
	isActive() bool
}

// ---------------------------------------------------------------------------
// Base
// ---------------------------------------------------------------------------

type widgetBase struct {
	tk      *Toolkit
	name    string
	active  bool
	tooltip string
}

func (w *widgetBase) Name() string          { return w.name }
func (w *widgetBase) SetActive(active bool) { w.active = active }
func (w *widgetBase) SetTooltip(tip string) { w.tooltip = tip }
func (w *widgetBase) isActive() bool        { return w.active }
func (w *widgetBase) editing() bool         { return false }

func newBase(tk *Toolkit, name string) widgetBase {
	return widgetBase{tk: tk, name: name, active: true}
}

func (w *widgetBase) style(focused bool) func(...string) string {
	th := w.tk.theme
	switch {
	case !w.active:
		return th.Readonly.Render
	case focused:
		return th.Focused.Render
	default:
		return th.Value.Render
	}
}

// ---------------------------------------------------------------------------
// Checkbox
// ---------------------------------------------------------------------------

type checkbox struct {
	widgetBase
	checked bool
}

func (c *checkbox) SetChecked(on bool) { c.checked = on }
func (c *checkbox) Checked() bool      { return c.checked }

func (c *checkbox) view(focused bool) string {
	mark := "[ ]"
	if c.checked {
		mark = "[x]"
	}
	return c.style(focused)(mark)
}

func (c *checkbox) handleKey(msg tea.KeyMsg) bool {
	if !c.active {
		return false
	}
	keys := c.tk.keys
	if key.Matches(msg, keys.Toggle) || key.Matches(msg, keys.Edit) {
		c.checked = !c.checked
		c.tk.emit(c.name, toolkit.Event{Kind: toolkit.Toggled, Checked: c.checked})
		return true
	}
	return false
}

// ---------------------------------------------------------------------------
// Combo
// ---------------------------------------------------------------------------

type combo struct {
	widgetBase
	items   []string
	current int
}

func (c *combo) SetItems(items []string) { c.items = items }
func (c *combo) Items() []string         { return c.items }
func (c *combo) Current() int            { return c.current }

func (c *combo) SetCurrent(i int) {
	if i >= 0 && i < len(c.items) {
		c.current = i
	}
}

func (c *combo) view(focused bool) string {
	cur := ""
	if c.current >= 0 && c.current < len(c.items) {
		cur = c.items[c.current]
	}
	return c.style(focused)("◂ " + cur + " ▸")
}

func (c *combo) handleKey(msg tea.KeyMsg) bool {
	if !c.active || len(c.items) == 0 {
		return false
	}
	keys := c.tk.keys
	next := c.current
	switch {
	case key.Matches(msg, keys.Left):
		next = (c.current + len(c.items) - 1) % len(c.items)
	case key.Matches(msg, keys.Right):
		next = (c.current + 1) % len(c.items)
	default:
		return false
	}
	if next != c.current {
		c.current = next
		c.tk.emit(c.name, toolkit.Event{Kind: toolkit.Selected, Index: next})
	}
	return true
}

// ---------------------------------------------------------------------------
// Spin-box
// ---------------------------------------------------------------------------

type spin struct {
	widgetBase
	value          float64
	min, max       float64
	hasMin, hasMax bool
	step           float64
	format         string
	input          textinput.Model
	edit           bool
}

// SetValue never clamps: bounds only constrain interactive stepping.
func (s *spin) SetValue(v float64) { s.value = v }
func (s *spin) Value() float64     { return s.value }
func (s *spin) SetMin(v float64)   { s.min, s.hasMin = v, true }
func (s *spin) SetMax(v float64)   { s.max, s.hasMax = v, true }
func (s *spin) SetStep(v float64)  { s.step = v }
func (s *spin) SetFormat(f string) { s.format = f }
func (s *spin) editing() bool      { return s.edit }

func (s *spin) display() string {
	if s.format != "" {
		return fmt.Sprintf(s.format, s.value)
	}
	return strconv.FormatFloat(s.value, 'g', -1, 64)
}

func (s *spin) view(focused bool) string {
	if s.edit {
		return s.input.View()
	}
	return s.style(focused)(s.display())
}

func (s *spin) stepBy(dir float64) {
	step := s.step
	if step == 0 {
		step = 1
	}
	v := s.value + dir*step
	if s.hasMin && v < s.min {
		v = s.min
	}
	if s.hasMax && v > s.max {
		v = s.max
	}
	if v != s.value {
		s.value = v
		s.tk.emit(s.name, toolkit.Event{Kind: toolkit.ValueSet, Value: v})
	}
}

func (s *spin) handleKey(msg tea.KeyMsg) bool {
	if !s.active {
		return false
	}
	keys := s.tk.keys
	if s.edit {
		switch {
		case key.Matches(msg, keys.Edit):
			s.edit = false
			v, err := strconv.ParseFloat(s.input.Value(), 64)
			if err != nil {
				s.tk.fail(fmt.Errorf("tui: %s: not a number: %q", s.name, s.input.Value()))
				return true
			}
			// typed entry bypasses the bounds: they are hints, and the
			// engine owns the authoritative value
			s.value = v
			s.tk.emit(s.name, toolkit.Event{Kind: toolkit.ValueSet, Value: v})
			return true
		case key.Matches(msg, keys.Cancel):
			s.edit = false
			return true
		}
		s.input, _ = s.input.Update(msg)
		return true
	}
	switch {
	case key.Matches(msg, keys.Left):
		s.stepBy(-1)
		return true
	case key.Matches(msg, keys.Right):
		s.stepBy(+1)
		return true
	case key.Matches(msg, keys.Edit):
		s.input = textinput.New()
		s.input.SetValue(strconv.FormatFloat(s.value, 'g', -1, 64))
		s.input.Focus()
		s.input.CursorEnd()
		s.edit = true
		return true
	}
	return false
}

// ---------------------------------------------------------------------------
// Text field
// ---------------------------------------------------------------------------

type textfield struct {
	widgetBase
	text  string
	width int
	input textinput.Model
	edit  bool
}

func (t *textfield) SetText(s string) { t.text = s }
func (t *textfield) Text() string     { return t.text }

// SetWidth fixes the display width in cells; zero sizes to content.
func (t *textfield) SetWidth(cells int) { t.width = cells }
func (t *textfield) editing() bool      { return t.edit }

func (t *textfield) view(focused bool) string {
	if t.edit {
		return t.input.View()
	}
	s := t.text
	if t.width > 0 {
		s = widgets.PadRight(s, t.width)
	}
	return t.style(focused)(s)
}

func (t *textfield) handleKey(msg tea.KeyMsg) bool {
	if !t.active {
		return false
	}
	keys := t.tk.keys
	if t.edit {
		switch {
		case key.Matches(msg, keys.Edit):
			t.edit = false
			t.text = t.input.Value()
			t.tk.emit(t.name, toolkit.Event{Kind: toolkit.TextDone, Text: t.text})
			return true
		case key.Matches(msg, keys.Cancel):
			t.edit = false
			return true
		}
		t.input, _ = t.input.Update(msg)
		return true
	}
	if key.Matches(msg, keys.Edit) {
		t.input = textinput.New()
		t.input.SetValue(t.text)
		if t.width > 0 {
			t.input.Width = t.width
		}
		t.input.Focus()
		t.input.CursorEnd()
		t.edit = true
		return true
	}
	return false
}

// ---------------------------------------------------------------------------
// Button
// ---------------------------------------------------------------------------

type button struct {
	widgetBase
	label string
}

func (b *button) SetLabel(s string) { b.label = s }

func (b *button) view(focused bool) string {
	if !b.active {
		return b.tk.theme.Readonly.Render("[ " + b.label + " ]")
	}
	if focused {
		return b.tk.theme.Button.Render(b.label)
	}
	return b.tk.theme.Value.Render("[ " + b.label + " ]")
}

func (b *button) handleKey(msg tea.KeyMsg) bool {
	if !b.active {
		return false
	}
	keys := b.tk.keys
	if key.Matches(msg, keys.Edit) || key.Matches(msg, keys.Toggle) {
		b.tk.emit(b.name, toolkit.Event{Kind: toolkit.Activated})
		return true
	}
	return false
}
