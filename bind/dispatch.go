package bind

import "reflect"

// ---------------------------------------------------------------------------
// Value kind dispatch
// ---------------------------------------------------------------------------

// Kind is the widget category chosen for a field. It is decided once per
// field at Build time and drives both Refresh and edit handling.
type Kind int

const (
	// KindBool renders a checkbox.
	KindBool Kind = iota
	// KindEnum renders a combo-box over registered choice names.
	KindEnum
	// KindNative delegates to the toolkit's own value-view factory.
	KindNative
	// KindNested renders an inline sub-view or a dialog-opening button.
	KindNested
	// KindNumber renders a spin-box.
	KindNumber
	// KindText renders a plain text field, the catch-all.
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindEnum:
		return "enum"
	case KindNative:
		return "native"
	case KindNested:
		return "nested"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// dispatchKind categorizes a field value. Order matters and first match
// wins: bool before number, registered enums (which are integer types)
// before number, nested structs before the text fallback. The toolkit's
// native claim is tested separately by Build, between KindEnum and
// KindNested.
func dispatchKind(v reflect.Value) Kind {
	t := v.Type()
	switch {
	case t.Kind() == reflect.Bool:
		return KindBool
	case isEnum(t):
		return KindEnum
	case isNested(t):
		return KindNested
	case isNumber(t):
		return KindNumber
	default:
		return KindText
	}
}

func isEnum(t reflect.Type) bool {
	_, ok := enumNames(t)
	return ok
}

// isNested reports whether t is a struct, or pointer to struct, with at
// least one exported field of its own. Opaque structs (no exported
// fields) fall through to the text widget instead of an empty sub-view.
func isNested(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return false
	}
	return len(descriptorsOf(t)) > 0
}

func isNumber(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// isInteger reports whether t is an integer kind, used for the default
// spin-box step of 1.
func isInteger(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}
