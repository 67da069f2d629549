package toolkit

// EventKind discriminates the payload of an Event.
type EventKind int

const (
	// Toggled reports a checkbox flip; payload in Checked.
	Toggled EventKind = iota
	// Selected reports a combo choice; payload in Index.
	Selected
	// ValueSet reports a committed spin-box value; payload in Value.
	ValueSet
	// TextDone reports a committed text edit; payload in Text.
	TextDone
	// Activated reports a button press; no payload.
	Activated
)

func (k EventKind) String() string {
	switch k {
	case Toggled:
		return "toggled"
	case Selected:
		return "selected"
	case ValueSet:
		return "value-set"
	case TextDone:
		return "text-done"
	case Activated:
		return "activated"
	default:
		return "unknown"
	}
}

// Event is the flat edit notification a toolkit delivers to the engine.
// Only the field matching Kind is meaningful.
type Event struct {
	Kind    EventKind
	Checked bool
	Index   int
	Value   float64
	Text    string
}
