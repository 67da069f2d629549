package bind

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ---------------------------------------------------------------------------
// Process-wide view registry
// ---------------------------------------------------------------------------

// Registry lookup failures. Both are recoverable: the toolkit logs them
// and drops the event rather than crashing the UI loop.
var (
	ErrUnknownView  = errors.New("bind: no view registered under name")
	ErrUnknownField = errors.New("bind: view has no such field")
)

// views maps view name to View for the whole process. Entries are added
// on construction and never removed; a closed dialog's view stays
// registered. Reusing a name silently overwrites the previous entry, so
// widgets built under the old view resolve edits against the new one.
// Callers own name uniqueness.
var views = map[string]*View{}

// ViewByName returns the registered view, if any.
func ViewByName(name string) (*View, bool) {
	v, ok := views[name]
	return v, ok
}

// Resolve maps a widget name of the form "ViewName:FieldName" back to its
// view and field. On an unknown view name the error includes the closest
// registered name as a hint, since a miss is almost always a misspelled
// or stale name.
func Resolve(widgetName string) (*View, string, error) {
	viewName, field, ok := strings.Cut(widgetName, ":")
	if !ok {
		return nil, "", fmt.Errorf("%w: widget name %q has no view prefix", ErrUnknownView, widgetName)
	}
	v, found := views[viewName]
	if !found {
		if near := nearestViewName(viewName); near != "" {
			return nil, "", fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownView, viewName, near)
		}
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownView, viewName)
	}
	return v, field, nil
}

// nearestViewName returns the registered name closest to name, or empty
// when nothing is reasonably close.
func nearestViewName(name string) string {
	best := ""
	bestDist := len(name)/2 + 1
	for candidate := range views {
		if d := levenshtein.ComputeDistance(name, candidate); d < bestDist {
			best = candidate
			bestDist = d
		}
	}
	return best
}

// resetRegistry clears all registered views and cached descriptors.
// Test hook only.
func resetRegistry() {
	views = map[string]*View{}
}
