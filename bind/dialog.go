package bind

import (
	"strings"

	"github.com/jask/formview/toolkit"
)

// ---------------------------------------------------------------------------
// Nested editor dialogs
// ---------------------------------------------------------------------------

type dialogState int

const (
	dialogClosed dialogState = iota
	dialogOpening
	dialogOpen
)

// nestedEditor opens a modal dialog hosting a fresh child view over a
// compound field. Activating the button again while the dialog is opening
// or open raises the existing dialog instead of spawning a second one.
type nestedEditor struct {
	tk         toolkit.Toolkit
	widgetName string // "ViewName:FieldName" of the owning button
	title      string
	obj        any // pointer to the sub-struct

	state dialogState
	dlg   toolkit.Dialog
	child *View
}

func (e *nestedEditor) activate() error {
	if e.state != dialogClosed {
		if e.dlg != nil {
			e.dlg.Raise()
		}
		return nil
	}
	e.state = dialogOpening

	// the child view is named after the button widget; reopening reuses
	// the name and overwrites the previous registry entry
	name := strings.ReplaceAll(e.widgetName, ":", "_")
	e.dlg = e.tk.NewDialog(name, e.title, e.closed)
	child, err := NewView(e.obj, name, e.tk)
	if err != nil {
		e.state = dialogClosed
		e.dlg = nil
		return err
	}
	e.child = child
	child.Build(e.dlg.Frame())
	e.dlg.Open()
	e.state = dialogOpen
	return nil
}

// closed runs when the dialog is dismissed. Edits apply live as they are
// committed, so Ok versus Cancel changes nothing here. The child view's
// registry entry is deliberately left in place: short-lived interactive
// sessions tolerate the bounded leak, and stale widgets must keep
// resolving somewhere deterministic.
func (e *nestedEditor) closed(bool) {
	e.state = dialogClosed
	e.dlg = nil
}
