package tui

import "github.com/jask/formview/toolkit"

// Dialog is a modal editor card stacked over the root form. The top of
// the toolkit's dialog stack owns the keyboard; Ok and Cancel both just
// close, since edits are committed live as they happen.
type Dialog struct {
	tk      *Toolkit
	name    string
	title   string
	form    *Form
	onClose func(ok bool)
	open    bool
}

func (d *Dialog) Frame() toolkit.Frame { return d.form }

// Title returns the dialog's display title.
func (d *Dialog) Title() string { return d.title }

// Form returns the dialog's editor form.
func (d *Dialog) Form() *Form { return d.form }

func (d *Dialog) Open() {
	if d.open {
		return
	}
	d.open = true
	d.tk.pushDialog(d)
}

func (d *Dialog) Raise() {
	if d.open {
		d.tk.raiseDialog(d)
	}
}

func (d *Dialog) Close(ok bool) {
	if !d.open {
		return
	}
	d.open = false
	d.tk.removeDialog(d)
	if d.onClose != nil {
		d.onClose(ok)
	}
}
