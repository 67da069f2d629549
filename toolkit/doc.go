// Package toolkit defines the widget-factory contract the binding engine
// builds against.
//
// Allowed here:
// - widget, frame, dialog and event interfaces; the flat Event struct
//
// Not allowed here:
// - rendering, key handling, or any dependency on a concrete UI library
package toolkit
