// Package bind builds editable widget trees for arbitrary Go structs and
// routes user edits back into them.
//
// A View binds one struct instance to a tree of toolkit widgets. Build
// walks the struct's exported fields, chooses a widget per field from the
// field's current value and its struct tag, and names every widget
// "ViewName:FieldName". The toolkit reports edits by widget name only;
// HandleEvent resolves the name through a process-wide view registry and
// applies the edit through reflection. Refresh pushes current field values
// back into the existing widgets after out-of-band mutation.
//
// Everything here assumes single-threaded access from the UI event loop.
// Callers mutating bound objects from other goroutines must marshal onto
// that loop before touching a View.
package bind
