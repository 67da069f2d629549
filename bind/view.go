package bind

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/jask/formview/toolkit"
)

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

// boundField pairs a field descriptor with the widget kind decided for it
// at Build time.
type boundField struct {
	desc  fieldDesc
	kind  Kind
	names []string // enum choices, KindEnum only
}

// View is the live binding between one struct instance and its widget
// tree. A View has a process-unique name; every widget it constructs is
// named "ViewName:FieldName" so toolkit callbacks can find their way back.
type View struct {
	Name string

	// ToolkitViews holds widgets the toolkit's own value-view factory
	// supplied; Widgets holds widgets this engine rendered. A visible
	// field appears in exactly one of the two.
	ToolkitViews map[string]toolkit.Widget
	Widgets      map[string]toolkit.Widget

	tk      toolkit.Toolkit
	obj     reflect.Value // addressable struct value
	frame   toolkit.Frame
	fields  []*boundField
	byName  map[string]*boundField
	inline  map[string]*View
	editors map[string]*nestedEditor
}

// NewView binds obj, which must be a non-nil pointer to a struct, under
// the given name and registers it. Names must stay unique for the life of
// the process: a reused name overwrites the registry entry and stale
// widgets will resolve edits against the newer view's object.
func NewView(obj any, name string, tk toolkit.Toolkit) (*View, error) {
	sv, err := structValue(obj)
	if err != nil {
		return nil, err
	}
	v := &View{
		Name: name,
		tk:   tk,
		obj:  sv,
	}
	views[name] = v
	return v, nil
}

// Build constructs the widget tree for the object's current fields into
// frame, discarding anything built before. Fields tagged view:"-" are
// skipped entirely. No diffing: every call is a full rebuild.
func (v *View) Build(frame toolkit.Frame) {
	v.frame = frame
	frame.Clear()
	v.fields = nil
	v.byName = map[string]*boundField{}
	v.ToolkitViews = map[string]toolkit.Widget{}
	v.Widgets = map[string]toolkit.Widget{}
	v.inline = map[string]*View{}
	v.editors = map[string]*nestedEditor{}

	for _, d := range descriptorsOf(v.obj.Type()) {
		if d.Tags.Has("view", "-") {
			continue
		}
		v.buildField(frame, d)
	}
}

func (v *View) buildField(frame toolkit.Frame, d fieldDesc) {
	wn := v.Name + ":" + d.Name
	desc := d.Tags.Value("desc")
	frame.AddLabel("lbl_"+d.Name, d.Name, desc)

	fv := v.obj.Field(d.Index)
	bf := &boundField{desc: d, kind: dispatchKind(fv)}
	if bf.kind == KindNested && fv.Kind() == reflect.Pointer && fv.IsNil() {
		// nothing to edit behind a nil pointer
		bf.kind = KindText
	}

	var w toolkit.Widget
	switch bf.kind {
	case KindBool:
		cb := frame.AddCheckbox(wn)
		cb.SetChecked(fv.Bool())
		w = cb

	case KindEnum:
		bf.names, _ = enumNames(fv.Type())
		cb := frame.AddCombo(wn)
		cb.SetItems(bf.names)
		cb.SetCurrent(enumIndex(fv, bf.names))
		w = cb

	case KindNested, KindNumber, KindText:
		// the toolkit gets first claim on anything that is not a bool or
		// a registered enum
		if nw, ok := v.tk.ValueView(frame, wn, fv.Addr().Interface(), d.RawTag); ok {
			bf.kind = KindNative
			v.ToolkitViews[d.Name] = nw
			w = nw
			break
		}
		switch bf.kind {
		case KindNested:
			w = v.buildNested(frame, d, fv, wn)
		case KindNumber:
			w = v.buildSpin(frame, d, fv, wn)
		case KindText:
			tf := frame.AddTextField(wn)
			tf.SetText(fmt.Sprint(fv.Interface()))
			if s := d.Tags.Value("width"); s != "" {
				if n, err := strconv.Atoi(s); err == nil && n > 0 {
					tf.SetWidth(n)
				} else {
					logger.Warn("bad width tag", "field", d.Name, "value", s)
				}
			}
			w = tf
		}
	}

	if w == nil {
		return
	}
	if bf.kind != KindNative {
		v.Widgets[d.Name] = w
	}
	if desc != "" {
		w.SetTooltip(desc)
	}
	if d.Tags.Has("inactive", "+") {
		w.SetActive(false)
	}
	v.fields = append(v.fields, bf)
	v.byName[d.Name] = bf
}

// buildNested handles compound fields: an inline child view embedded in
// place, or a button that opens a modal dialog over the sub-object.
func (v *View) buildNested(frame toolkit.Frame, d fieldDesc, fv reflect.Value, wn string) toolkit.Widget {
	sub := nestedTarget(fv)
	if d.Tags.Has("view", "inline") {
		childName := v.Name + "." + d.Name
		child, err := NewView(sub, childName, v.tk)
		if err != nil {
			logger.Warn("inline sub-view construction failed", "field", d.Name, "err", err)
			return nil
		}
		inner := frame.AddFrame(wn)
		child.Build(inner)
		v.inline[d.Name] = child
		return inner
	}
	btn := frame.AddButton(wn)
	btn.SetLabel(d.Name + " ...")
	v.editors[d.Name] = &nestedEditor{
		tk:         v.tk,
		widgetName: wn,
		title:      d.Name,
		obj:        sub,
	}
	return btn
}

func (v *View) buildSpin(frame toolkit.Frame, d fieldDesc, fv reflect.Value, wn string) toolkit.Widget {
	sp := frame.AddSpin(wn)
	sp.SetValue(numberValue(fv))
	if isInteger(fv.Type()) {
		sp.SetStep(1)
	}
	if s := d.Tags.Value("min"); s != "" {
		if x, err := strconv.ParseFloat(s, 64); err == nil {
			sp.SetMin(x)
		} else {
			logger.Warn("bad min tag", "field", d.Name, "value", s)
		}
	}
	if s := d.Tags.Value("max"); s != "" {
		if x, err := strconv.ParseFloat(s, 64); err == nil {
			sp.SetMax(x)
		} else {
			logger.Warn("bad max tag", "field", d.Name, "value", s)
		}
	}
	if s := d.Tags.Value("step"); s != "" {
		if x, err := strconv.ParseFloat(s, 64); err == nil {
			sp.SetStep(x)
		} else {
			logger.Warn("bad step tag", "field", d.Name, "value", s)
		}
	}
	if s := d.Tags.Value("format"); s != "" {
		sp.SetFormat(s)
	}
	return sp
}

// Refresh pushes the object's current field values into the widgets built
// by the last Build call. Structure is untouched. Toolkit-native views
// hold their value by reference and are skipped; inline and dialog child
// views follow the same shallow contract and refresh only when their own
// Refresh is called.
func (v *View) Refresh() {
	for _, bf := range v.fields {
		fv := v.obj.Field(bf.desc.Index)
		switch bf.kind {
		case KindBool:
			if cb, ok := v.Widgets[bf.desc.Name].(toolkit.Checkbox); ok {
				cb.SetChecked(fv.Bool())
			} else {
				logger.Warn("bool field widget is not a checkbox", "field", bf.desc.Name)
			}
		case KindEnum:
			if cb, ok := v.Widgets[bf.desc.Name].(toolkit.Combo); ok {
				cb.SetCurrent(enumIndex(fv, bf.names))
			} else {
				logger.Warn("enum field widget is not a combo", "field", bf.desc.Name)
			}
		case KindNumber:
			if sp, ok := v.Widgets[bf.desc.Name].(toolkit.Spin); ok {
				sp.SetValue(numberValue(fv))
			} else {
				logger.Warn("numeric field widget is not a spin-box", "field", bf.desc.Name)
			}
		case KindText:
			if tf, ok := v.Widgets[bf.desc.Name].(toolkit.TextField); ok {
				tf.SetText(fmt.Sprint(fv.Interface()))
			} else {
				logger.Warn("fallback field widget is not a text field", "field", bf.desc.Name)
			}
		case KindNative, KindNested:
			// native views track their value by reference; child views
			// are their owner's responsibility
		}
	}
}

// InlineView returns the embedded child view for an inline nested field.
func (v *View) InlineView(field string) (*View, bool) {
	c, ok := v.inline[field]
	return c, ok
}

// ---------------------------------------------------------------------------
// Numeric helpers
// ---------------------------------------------------------------------------

// nestedTarget returns a pointer to the sub-struct behind fv.
func nestedTarget(fv reflect.Value) any {
	if fv.Kind() == reflect.Pointer {
		return fv.Interface()
	}
	return fv.Addr().Interface()
}

func numberValue(fv reflect.Value) float64 {
	switch fv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(fv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(fv.Uint())
	default:
		return fv.Float()
	}
}

// setNumber writes x back into fv's original numeric subtype.
func setNumber(fv reflect.Value, x float64) {
	switch fv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		fv.SetInt(int64(x))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if x < 0 {
			x = 0
		}
		fv.SetUint(uint64(x))
	default:
		fv.SetFloat(x)
	}
}
