// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (pane chrome, stacks, dialog
//   overlay compositor)
//
// Not allowed here:
// - key handling, focus state, binding logic, or toolkit interfaces
package widgets
