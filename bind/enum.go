package bind

import "reflect"

// ---------------------------------------------------------------------------
// Named-choice registry
// ---------------------------------------------------------------------------

// enums maps a named integer type to its ordered choice names.
var enums = map[reflect.Type][]string{}

// AddEnum registers val's type as a named-choice type with the given
// ordered constant names. By convention a trailing counter sentinel (a
// final name that is "N" or the type name followed by "N") is excluded
// from the choices. Selecting choice i sets the field to the i-th constant.
func AddEnum(val any, names ...string) {
	t := reflect.TypeOf(val)
	if n := len(names); n > 0 {
		last := names[n-1]
		if last == "N" || last == t.Name()+"N" {
			names = names[:n-1]
		}
	}
	enums[t] = append([]string(nil), names...)
}

// enumNames returns the registered choices for t, if any.
func enumNames(t reflect.Type) ([]string, bool) {
	names, ok := enums[t]
	return names, ok
}

// enumIndex returns the ordinal of the current enum value, clipped into
// the registered choice range for display. Enums may be declared over
// any integer kind, signed or unsigned.
func enumIndex(v reflect.Value, names []string) int {
	var i int
	if v.CanUint() {
		i = int(v.Uint())
	} else {
		i = int(v.Int())
	}
	if i < 0 {
		return 0
	}
	if i >= len(names) {
		return len(names) - 1
	}
	return i
}
