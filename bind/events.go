package bind

import (
	"fmt"
	"reflect"

	"github.com/jask/formview/toolkit"
)

// ---------------------------------------------------------------------------
// Edit routing
// ---------------------------------------------------------------------------

// HandleEvent is the single entry point for toolkit edit callbacks. The
// widget name carries the only identity the toolkit can supply; it is
// resolved through the view registry and the edit is applied to the bound
// field. Connect it to the toolkit at startup:
//
//	tk.Connect(bind.HandleEvent)
func HandleEvent(name string, ev toolkit.Event) error {
	v, field, err := Resolve(name)
	if err != nil {
		return err
	}
	return v.applyEvent(field, ev)
}

func (v *View) applyEvent(field string, ev toolkit.Event) error {
	bf, ok := v.byName[field]
	if !ok {
		return fmt.Errorf("%w: %q has no field %q", ErrUnknownField, v.Name, field)
	}
	fv := v.obj.Field(bf.desc.Index)

	switch bf.kind {
	case KindBool:
		if ev.Kind != toolkit.Toggled {
			return eventMismatch(v.Name, field, bf.kind, ev.Kind)
		}
		fv.SetBool(ev.Checked)

	case KindEnum:
		if ev.Kind != toolkit.Selected {
			return eventMismatch(v.Name, field, bf.kind, ev.Kind)
		}
		if ev.Index < 0 || ev.Index >= len(bf.names) {
			return fmt.Errorf("bind: %s:%s choice index %d out of range", v.Name, field, ev.Index)
		}
		setNumber(fv, float64(ev.Index))

	case KindNumber:
		if ev.Kind != toolkit.ValueSet {
			return eventMismatch(v.Name, field, bf.kind, ev.Kind)
		}
		setNumber(fv, ev.Value)

	case KindText:
		if ev.Kind != toolkit.TextDone {
			return eventMismatch(v.Name, field, bf.kind, ev.Kind)
		}
		// the fallback widget edits the string form only; for anything
		// that is not actually a string the edit cannot be mapped back
		// and is dropped
		if fv.Kind() != reflect.String {
			logger.Warn("dropping text edit for non-string field",
				"view", v.Name, "field", field, "type", fv.Type().String())
			return nil
		}
		fv.SetString(ev.Text)

	case KindNested:
		if ev.Kind != toolkit.Activated {
			return eventMismatch(v.Name, field, bf.kind, ev.Kind)
		}
		ed, ok := v.editors[field]
		if !ok {
			// inline sub-views have no activation button
			return eventMismatch(v.Name, field, bf.kind, ev.Kind)
		}
		return ed.activate()

	case KindNative:
		// native widgets edit their value directly through the toolkit
	}
	return nil
}

func eventMismatch(view, field string, kind Kind, got toolkit.EventKind) error {
	return fmt.Errorf("bind: %s:%s is a %s field, cannot apply %s event", view, field, kind, got)
}
