package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/formview/toolkit"
	"github.com/jask/formview/widgets"
)

// formRow is one label/editor pair. Inline sub-views land as a row with a
// sub form instead of a widget.
type formRow struct {
	label   string
	tooltip string
	w       widget
	sub     *Form
}

// Form is the two-column frame the binding engine builds views into. The
// root form (or the top dialog's form) owns the keyboard; inline sub-forms
// participate in their parent's focus order.
type Form struct {
	tk      *Toolkit
	name    string
	active  bool
	tooltip string

	rows    []*formRow
	pending *formRow
	cursor  int
}

func newForm(tk *Toolkit, name string) *Form {
	return &Form{tk: tk, name: name, active: true}
}

// ---------------------------------------------------------------------------
// toolkit.Frame
// ---------------------------------------------------------------------------

func (f *Form) Name() string          { return f.name }
func (f *Form) SetActive(active bool) { f.active = active }
func (f *Form) SetTooltip(tip string) { f.tooltip = tip }

func (f *Form) Clear() {
	f.rows = nil
	f.pending = nil
	f.cursor = 0
}

func (f *Form) AddLabel(name, text, tooltip string) {
	_ = name
	f.pending = &formRow{label: text, tooltip: tooltip}
}

// attach pairs a freshly built widget with the pending label row.
func (f *Form) attach(w widget) {
	row := f.pending
	if row == nil {
		row = &formRow{}
	}
	f.pending = nil
	row.w = w
	f.rows = append(f.rows, row)
}

func (f *Form) AddCheckbox(name string) toolkit.Checkbox {
	w := &checkbox{widgetBase: newBase(f.tk, name)}
	f.attach(w)
	return w
}

func (f *Form) AddCombo(name string) toolkit.Combo {
	w := &combo{widgetBase: newBase(f.tk, name)}
	f.attach(w)
	return w
}

func (f *Form) AddSpin(name string) toolkit.Spin {
	w := &spin{widgetBase: newBase(f.tk, name)}
	f.attach(w)
	return w
}

func (f *Form) AddTextField(name string) toolkit.TextField {
	w := &textfield{widgetBase: newBase(f.tk, name)}
	f.attach(w)
	return w
}

func (f *Form) AddButton(name string) toolkit.Button {
	w := &button{widgetBase: newBase(f.tk, name)}
	f.attach(w)
	return w
}

func (f *Form) AddFrame(name string) toolkit.Frame {
	sub := newForm(f.tk, name)
	row := f.pending
	if row == nil {
		row = &formRow{}
	}
	f.pending = nil
	row.sub = sub
	f.rows = append(f.rows, row)
	return sub
}

// ---------------------------------------------------------------------------
// Focus and keys
// ---------------------------------------------------------------------------

// focusables returns the editable widgets in display order, descending
// into inline sub-forms.
func (f *Form) focusables() []widget {
	if !f.active {
		return nil
	}
	var out []widget
	for _, row := range f.rows {
		switch {
		case row.sub != nil:
			out = append(out, row.sub.focusables()...)
		case row.w != nil && row.w.isActive():
			out = append(out, row.w)
		}
	}
	return out
}

// IsEditing reports whether an inline text edit currently owns the keys.
func (f *Form) IsEditing() bool {
	for _, w := range f.focusables() {
		if w.editing() {
			return true
		}
	}
	return false
}

// HandleKey processes one key press for the focused widget, falling back
// to cursor navigation. Only call on a root form or a dialog form.
func (f *Form) HandleKey(msg tea.KeyMsg) bool {
	items := f.focusables()
	if len(items) == 0 {
		return false
	}
	if f.cursor >= len(items) {
		f.cursor = len(items) - 1
	}
	cur := items[f.cursor]
	if cur.editing() {
		return cur.handleKey(msg)
	}
	if cur.handleKey(msg) {
		return true
	}
	keys := f.tk.keys
	switch {
	case key.Matches(msg, keys.Up):
		if f.cursor > 0 {
			f.cursor--
		}
		return true
	case key.Matches(msg, keys.Down):
		if f.cursor < len(items)-1 {
			f.cursor++
		}
		return true
	}
	return false
}

// FocusedTooltip returns the help text of the focused row, if any.
func (f *Form) FocusedTooltip() string {
	items := f.focusables()
	if len(items) == 0 {
		return ""
	}
	i := f.cursor
	if i >= len(items) {
		i = len(items) - 1
	}
	target := items[i]
	if row := f.findRow(target); row != nil {
		return row.tooltip
	}
	return ""
}

func (f *Form) findRow(w widget) *formRow {
	for _, row := range f.rows {
		if row.w == w {
			return row
		}
		if row.sub != nil {
			if r := row.sub.findRow(w); r != nil {
				return r
			}
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Rendering
// ---------------------------------------------------------------------------

// View renders the form's rows. The focused widget is resolved against
// the same flattened order the cursor moves over.
func (f *Form) View(width int) string {
	var focused widget
	if items := f.focusables(); len(items) > 0 {
		i := f.cursor
		if i >= len(items) {
			i = len(items) - 1
		}
		focused = items[i]
	}
	lines := f.renderRows(focused, 0, f.labelWidth())
	return strings.Join(lines, "\n")
}

func (f *Form) labelWidth() int {
	w := 0
	for _, row := range f.rows {
		if len(row.label) > w {
			w = len(row.label)
		}
		if row.sub != nil {
			if sw := row.sub.labelWidth() + 2; sw > w {
				w = sw
			}
		}
	}
	return w
}

func (f *Form) renderRows(focused widget, depth, labelWidth int) []string {
	th := f.tk.theme
	indent := strings.Repeat("  ", depth)
	var lines []string
	for _, row := range f.rows {
		if row.sub != nil {
			head := indent + "  " + th.Title.Render(row.label)
			lines = append(lines, head)
			lines = append(lines, row.sub.renderRows(focused, depth+1, labelWidth-2)...)
			continue
		}
		if row.w == nil {
			continue
		}
		isFocused := row.w == focused
		prefix := "  "
		if isFocused {
			prefix = th.Cursor.Render("> ")
		}
		labelStyle := th.Label
		if !row.w.isActive() {
			labelStyle = th.Readonly
		} else if isFocused {
			labelStyle = th.Focused
		}
		label := labelStyle.Render(widgets.PadRight(row.label, labelWidth))
		lines = append(lines, indent+prefix+label+"  "+row.w.view(isFocused))
	}
	return lines
}
