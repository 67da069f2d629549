package bind

import "github.com/jask/formview/toolkit"

// In-memory toolkit used by the engine tests. Widgets just record the
// state pushed into them; edits are fired by calling the connected sink
// directly, the same way a real toolkit delivers callbacks.

type fakeWidget struct {
	name    string
	active  bool
	tooltip string
}

func (w *fakeWidget) Name() string          { return w.name }
func (w *fakeWidget) SetActive(active bool) { w.active = active }
func (w *fakeWidget) SetTooltip(tip string) { w.tooltip = tip }

type fakeCheckbox struct {
	fakeWidget
	checked bool
}

func (c *fakeCheckbox) SetChecked(on bool) { c.checked = on }
func (c *fakeCheckbox) Checked() bool      { return c.checked }

type fakeCombo struct {
	fakeWidget
	items   []string
	current int
}

func (c *fakeCombo) SetItems(items []string) { c.items = items }
func (c *fakeCombo) Items() []string         { return c.items }
func (c *fakeCombo) SetCurrent(i int)        { c.current = i }
func (c *fakeCombo) Current() int            { return c.current }

type fakeSpin struct {
	fakeWidget
	value          float64
	min, max, step float64
	hasMin, hasMax bool
	format         string
}

func (s *fakeSpin) SetValue(v float64) { s.value = v }
func (s *fakeSpin) Value() float64     { return s.value }
func (s *fakeSpin) SetMin(v float64)   { s.min, s.hasMin = v, true }
func (s *fakeSpin) SetMax(v float64)   { s.max, s.hasMax = v, true }
func (s *fakeSpin) SetStep(v float64)  { s.step = v }
func (s *fakeSpin) SetFormat(f string) { s.format = f }

type fakeText struct {
	fakeWidget
	text  string
	width int
}

func (t *fakeText) SetText(s string) { t.text = s }
func (t *fakeText) Text() string     { return t.text }

func (t *fakeText) SetWidth(cells int) { t.width = cells }

type fakeButton struct {
	fakeWidget
	label string
}

func (b *fakeButton) SetLabel(s string) { b.label = s }

type fakeLabel struct {
	name, text, tooltip string
}

type fakeFrame struct {
	fakeWidget
	labels  []fakeLabel
	order   []string // widget names in construction order
	cleared int
	frames  map[string]*fakeFrame
}

func newFakeFrame(name string) *fakeFrame {
	return &fakeFrame{
		fakeWidget: fakeWidget{name: name, active: true},
		frames:     map[string]*fakeFrame{},
	}
}

func (f *fakeFrame) Clear() {
	f.cleared++
	f.labels = nil
	f.order = nil
	f.frames = map[string]*fakeFrame{}
}

func (f *fakeFrame) AddLabel(name, text, tooltip string) {
	f.labels = append(f.labels, fakeLabel{name, text, tooltip})
}

func (f *fakeFrame) add(name string) fakeWidget {
	f.order = append(f.order, name)
	return fakeWidget{name: name, active: true}
}

func (f *fakeFrame) AddCheckbox(name string) toolkit.Checkbox {
	return &fakeCheckbox{fakeWidget: f.add(name)}
}

func (f *fakeFrame) AddCombo(name string) toolkit.Combo {
	return &fakeCombo{fakeWidget: f.add(name)}
}

func (f *fakeFrame) AddSpin(name string) toolkit.Spin {
	return &fakeSpin{fakeWidget: f.add(name)}
}

func (f *fakeFrame) AddTextField(name string) toolkit.TextField {
	return &fakeText{fakeWidget: f.add(name)}
}

func (f *fakeFrame) AddButton(name string) toolkit.Button {
	return &fakeButton{fakeWidget: f.add(name)}
}

func (f *fakeFrame) AddFrame(name string) toolkit.Frame {
	sub := newFakeFrame(name)
	f.order = append(f.order, name)
	f.frames[name] = sub
	return sub
}

type fakeDialog struct {
	name, title string
	frame       *fakeFrame
	onClose     func(ok bool)
	opens       int
	raises      int
	closed      bool
}

func (d *fakeDialog) Frame() toolkit.Frame { return d.frame }

func (d *fakeDialog) Open()  { d.opens++ }
func (d *fakeDialog) Raise() { d.raises++ }

func (d *fakeDialog) Close(ok bool) {
	d.closed = true
	if d.onClose != nil {
		d.onClose(ok)
	}
}

type fakeToolkit struct {
	sink    toolkit.EventSink
	native  func(frame toolkit.Frame, name string, val any, tag string) (toolkit.Widget, bool)
	dialogs []*fakeDialog
}

func (t *fakeToolkit) NewDialog(name, title string, onClose func(ok bool)) toolkit.Dialog {
	d := &fakeDialog{name: name, title: title, frame: newFakeFrame(name), onClose: onClose}
	t.dialogs = append(t.dialogs, d)
	return d
}

func (t *fakeToolkit) ValueView(frame toolkit.Frame, name string, val any, tag string) (toolkit.Widget, bool) {
	if t.native == nil {
		return nil, false
	}
	return t.native(frame, name, val, tag)
}

func (t *fakeToolkit) Connect(sink toolkit.EventSink) { t.sink = sink }
