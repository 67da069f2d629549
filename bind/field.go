package bind

import (
	"fmt"
	"reflect"
)

// ---------------------------------------------------------------------------
// Per-type field descriptors
// ---------------------------------------------------------------------------

// fieldDesc describes one exported struct field: its name, raw and parsed
// tag, and its index within the struct. Descriptors are computed once per
// type and shared by every View over that type.
type fieldDesc struct {
	Name   string
	RawTag string
	Tags   Tags
	Index  int
}

// typeFields caches descriptor lists per struct type. Single-threaded by
// the package's concurrency contract, so a plain map is fine.
var typeFields = map[reflect.Type][]fieldDesc{}

// descriptorsOf returns the descriptor list for struct type t, building
// and caching it on first use.
func descriptorsOf(t reflect.Type) []fieldDesc {
	if ds, ok := typeFields[t]; ok {
		return ds
	}
	var ds []fieldDesc
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		raw := string(f.Tag)
		ds = append(ds, fieldDesc{
			Name:   f.Name,
			RawTag: raw,
			Tags:   ParseTags(raw),
			Index:  i,
		})
	}
	typeFields[t] = ds
	return ds
}

// structValue validates obj as a non-nil pointer to a struct and returns
// the addressable struct value behind it.
func structValue(obj any) (reflect.Value, error) {
	v := reflect.ValueOf(obj)
	if !v.IsValid() || v.Kind() != reflect.Pointer || v.IsNil() {
		return reflect.Value{}, fmt.Errorf("bind: object must be a non-nil struct pointer, got %T", obj)
	}
	e := v.Elem()
	if e.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("bind: object must point to a struct, got %T", obj)
	}
	return e, nil
}
