package toolkit

// ---------------------------------------------------------------------------
// Widgets
// ---------------------------------------------------------------------------

// Widget is the common surface of every constructed editor widget. Widgets
// are addressed by name only; the name is the sole identity that crosses the
// callback boundary back into the binding engine.
type Widget interface {
	Name() string
	SetActive(active bool)
	SetTooltip(tip string)
}

// Checkbox edits a boolean value.
type Checkbox interface {
	Widget
	SetChecked(on bool)
	Checked() bool
}

// Combo edits a named-choice value by index.
type Combo interface {
	Widget
	SetItems(items []string)
	Items() []string
	SetCurrent(i int)
	Current() int
}

// Spin edits a numeric value. Min, max, step and format are presentation
// hints; a Spin must accept SetValue calls outside the configured bounds.
type Spin interface {
	Widget
	SetValue(v float64)
	Value() float64
	SetMin(v float64)
	SetMax(v float64)
	SetStep(v float64)
	SetFormat(f string)
}

// TextField edits a free-form string. Width is a display hint in cells;
// zero means size to content.
type TextField interface {
	Widget
	SetText(s string)
	Text() string
	SetWidth(cells int)
}

// Button triggers an action, typically opening a nested editor dialog.
type Button interface {
	Widget
	SetLabel(s string)
}

// ---------------------------------------------------------------------------
// Containers
// ---------------------------------------------------------------------------

// Frame is a two-column layout the engine populates with label/widget
// rows. A Frame is itself a Widget so inline sub-views can be disabled
// and annotated like any other field editor.
type Frame interface {
	Widget
	// Clear discards all previously added rows. Build calls it before
	// reconstructing the tree.
	Clear()
	AddLabel(name, text, tooltip string)
	AddCheckbox(name string) Checkbox
	AddCombo(name string) Combo
	AddSpin(name string) Spin
	AddTextField(name string) TextField
	AddButton(name string) Button
	// AddFrame embeds a child frame in place, used for inline sub-views.
	AddFrame(name string) Frame
}

// Dialog hosts a child frame in a modal surface with Ok/Cancel closing.
type Dialog interface {
	Frame() Frame
	Open()
	// Raise brings an already-open dialog to the front.
	Raise()
	Close(ok bool)
}

// ---------------------------------------------------------------------------
// Toolkit
// ---------------------------------------------------------------------------

// EventSink receives every user edit, addressed by widget name alone.
type EventSink func(name string, ev Event) error

// Toolkit is the capability set the binding engine consumes.
type Toolkit interface {
	// NewDialog constructs a closed modal dialog titled title. onClose runs
	// after the dialog closes; ok reports Ok versus Cancel.
	NewDialog(name, title string, onClose func(ok bool)) Dialog

	// ValueView is the toolkit's own generic value-view factory. It returns
	// a widget and true when the toolkit claims val as one of its native
	// types; the engine then skips its own dispatch for that field.
	ValueView(frame Frame, name string, val any, tag string) (Widget, bool)

	// Connect installs the sink that every widget edit is delivered to.
	Connect(sink EventSink)
}
