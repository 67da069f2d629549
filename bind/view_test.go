package bind

import (
	"fmt"
	"testing"

	"github.com/jask/formview/toolkit"
)

type testColor int

const (
	testRed testColor = iota
	testGreen
	testBlue
	testColorN
)

func newTestView(t *testing.T, obj any, name string) (*View, *fakeToolkit, *fakeFrame) {
	t.Helper()
	resetRegistry()
	tk := &fakeToolkit{}
	tk.Connect(HandleEvent)
	v, err := NewView(obj, name, tk)
	if err != nil {
		t.Fatalf("NewView: %v", err)
	}
	frame := newFakeFrame("root")
	v.Build(frame)
	return v, tk, frame
}

// ---------------------------------------------------------------------------
// Build
// ---------------------------------------------------------------------------

type basicParams struct {
	Count  int `min:"0" max:"10"`
	Active bool
	Mode   testColor
}

func TestBuildBasicParamsObject(t *testing.T) {
	AddEnum(testColor(0), "RED", "GREEN", "BLUE", "testColorN")
	p := &basicParams{Count: 3, Active: true, Mode: testRed}
	v, _, frame := newTestView(t, p, "params")

	if len(v.Widgets) != 3 || len(v.ToolkitViews) != 0 {
		t.Fatalf("widget maps: engine=%d toolkit=%d, want 3/0", len(v.Widgets), len(v.ToolkitViews))
	}
	if len(frame.labels) != 3 {
		t.Fatalf("labels = %d, want 3", len(frame.labels))
	}

	sp := v.Widgets["Count"].(*fakeSpin)
	if sp.value != 3 {
		t.Fatalf("spin shows %v, want 3", sp.value)
	}
	if !sp.hasMin || sp.min != 0 || !sp.hasMax || sp.max != 10 {
		t.Fatalf("spin bounds min=%v max=%v, want 0..10", sp.min, sp.max)
	}
	if sp.step != 1 {
		t.Fatalf("integer spin step = %v, want default 1", sp.step)
	}

	cb := v.Widgets["Active"].(*fakeCheckbox)
	if !cb.checked {
		t.Fatal("checkbox should start checked")
	}

	combo := v.Widgets["Mode"].(*fakeCombo)
	if len(combo.items) != 3 {
		t.Fatalf("combo has %d entries, want 3 (sentinel excluded)", len(combo.items))
	}
	if combo.items[0] != "RED" || combo.current != 0 {
		t.Fatalf("combo shows %v #%d, want RED #0", combo.items, combo.current)
	}
}

func TestRefreshDoesNotClampToBounds(t *testing.T) {
	AddEnum(testColor(0), "RED", "GREEN", "BLUE", "testColorN")
	p := &basicParams{Count: 3, Active: true}
	v, _, _ := newTestView(t, p, "params")

	p.Count = 7
	v.Refresh()
	sp := v.Widgets["Count"].(*fakeSpin)
	if sp.value != 7 {
		t.Fatalf("spin shows %v after refresh, want 7", sp.value)
	}

	// bounds are a UI hint only; out-of-range values pass through
	p.Count = 42
	v.Refresh()
	if sp.value != 42 {
		t.Fatalf("spin shows %v, want 42 (no clamping)", sp.value)
	}
}

type hiddenFields struct {
	Shown  int
	Hidden string `view:"-"`
}

func TestBuildSkipsHiddenFields(t *testing.T) {
	v, _, frame := newTestView(t, &hiddenFields{}, "h")

	if _, ok := v.Widgets["Hidden"]; ok {
		t.Fatal("view:\"-\" field must not appear in Widgets")
	}
	if _, ok := v.ToolkitViews["Hidden"]; ok {
		t.Fatal("view:\"-\" field must not appear in ToolkitViews")
	}
	if len(frame.labels) != 1 || frame.labels[0].text != "Shown" {
		t.Fatalf("labels = %v, want only Shown", frame.labels)
	}
}

type annotated struct {
	Rate float32 `inactive:"+" desc:"current learning rate" format:"%.3f"`
}

func TestBuildAppliesInactiveAndDesc(t *testing.T) {
	v, _, frame := newTestView(t, &annotated{Rate: 0.04}, "a")

	sp := v.Widgets["Rate"].(*fakeSpin)
	if sp.active {
		t.Fatal("inactive:\"+\" widget should be read-only")
	}
	if sp.tooltip != "current learning rate" {
		t.Fatalf("widget tooltip = %q", sp.tooltip)
	}
	if frame.labels[0].tooltip != "current learning rate" {
		t.Fatalf("label tooltip = %q", frame.labels[0].tooltip)
	}
	if sp.format != "%.3f" {
		t.Fatalf("format = %q, want %%.3f", sp.format)
	}
}

func TestRebuildDiscardsPreviousTree(t *testing.T) {
	p := &basicParams{Count: 1}
	v, _, frame := newTestView(t, p, "params")

	first := v.Widgets["Count"]
	v.Build(frame)
	if frame.cleared != 2 {
		t.Fatalf("frame cleared %d times, want 2", frame.cleared)
	}
	if v.Widgets["Count"] == first {
		t.Fatal("rebuild must construct fresh widgets")
	}
	if len(frame.labels) != 3 {
		t.Fatalf("labels after rebuild = %d, want 3", len(frame.labels))
	}
}

// ---------------------------------------------------------------------------
// Refresh
// ---------------------------------------------------------------------------

type mixedParams struct {
	Small  int8
	Wide   uint16
	Ratio  float32 `format:"%.2f"`
	Name   string
	Toggle bool
	Mode   testColor
}

func widgetSnapshot(v *View) string {
	sp1 := v.Widgets["Small"].(*fakeSpin)
	sp2 := v.Widgets["Wide"].(*fakeSpin)
	sp3 := v.Widgets["Ratio"].(*fakeSpin)
	tf := v.Widgets["Name"].(*fakeText)
	cb := v.Widgets["Toggle"].(*fakeCheckbox)
	cm := v.Widgets["Mode"].(*fakeCombo)
	return fmt.Sprintf("%v|%v|%v|%s|%v|%d", sp1.value, sp2.value, sp3.value, tf.text, cb.checked, cm.current)
}

func TestRefreshIsIdempotent(t *testing.T) {
	AddEnum(testColor(0), "RED", "GREEN", "BLUE", "testColorN")
	p := &mixedParams{Small: -4, Wide: 900, Ratio: 0.25, Name: "trial", Toggle: true, Mode: testBlue}
	v, _, _ := newTestView(t, p, "mixed")

	v.Refresh()
	first := widgetSnapshot(v)
	v.Refresh()
	second := widgetSnapshot(v)
	if first != second {
		t.Fatalf("refresh not idempotent:\n%s\n%s", first, second)
	}
}

func TestNumericRefreshRoundTrip(t *testing.T) {
	AddEnum(testColor(0), "RED", "GREEN", "BLUE", "testColorN")
	p := &mixedParams{}
	v, _, _ := newTestView(t, p, "mixed")

	p.Small = -17
	p.Wide = 4096
	p.Ratio = 0.875
	v.Refresh()

	if got := v.Widgets["Small"].(*fakeSpin).value; got != -17 {
		t.Fatalf("int8 widget shows %v, want -17", got)
	}
	if got := v.Widgets["Wide"].(*fakeSpin).value; got != 4096 {
		t.Fatalf("uint16 widget shows %v, want 4096", got)
	}
	if got := v.Widgets["Ratio"].(*fakeSpin).value; got != 0.875 {
		t.Fatalf("float32 widget shows %v, want 0.875", got)
	}
}

// ---------------------------------------------------------------------------
// Edit events
// ---------------------------------------------------------------------------

func TestEditEventsWriteBackTypedValues(t *testing.T) {
	AddEnum(testColor(0), "RED", "GREEN", "BLUE", "testColorN")
	p := &mixedParams{}
	_, tk, _ := newTestView(t, p, "mixed")

	fire := func(field string, ev toolkit.Event) {
		t.Helper()
		if err := tk.sink("mixed:"+field, ev); err != nil {
			t.Fatalf("%s: %v", field, err)
		}
	}

	fire("Small", toolkit.Event{Kind: toolkit.ValueSet, Value: -8})
	fire("Wide", toolkit.Event{Kind: toolkit.ValueSet, Value: 512})
	fire("Ratio", toolkit.Event{Kind: toolkit.ValueSet, Value: 0.5})
	fire("Name", toolkit.Event{Kind: toolkit.TextDone, Text: "run-2"})
	fire("Toggle", toolkit.Event{Kind: toolkit.Toggled, Checked: true})
	fire("Mode", toolkit.Event{Kind: toolkit.Selected, Index: 2})

	if p.Small != -8 || p.Wide != 512 || p.Ratio != 0.5 {
		t.Fatalf("numeric round trip: %+v", p)
	}
	if p.Name != "run-2" || !p.Toggle {
		t.Fatalf("text/bool round trip: %+v", p)
	}
	if p.Mode != testBlue {
		t.Fatalf("mode = %v, want BLUE", p.Mode)
	}
}

type severity uint8

const (
	sevLow severity = iota
	sevMedium
	sevHigh
	severityN
)

type unsignedEnumHolder struct {
	Level severity
}

func TestUnsignedEnumRoundTrip(t *testing.T) {
	AddEnum(severity(0), "LOW", "MEDIUM", "HIGH", "severityN")
	p := &unsignedEnumHolder{Level: sevMedium}
	v, tk, _ := newTestView(t, p, "u")

	combo := v.Widgets["Level"].(*fakeCombo)
	if combo.current != 1 || len(combo.items) != 3 {
		t.Fatalf("combo shows #%d of %v", combo.current, combo.items)
	}

	if err := tk.sink("u:Level", toolkit.Event{Kind: toolkit.Selected, Index: 2}); err != nil {
		t.Fatalf("select: %v", err)
	}
	if p.Level != sevHigh {
		t.Fatalf("level = %v, want HIGH", p.Level)
	}

	p.Level = sevLow
	v.Refresh()
	if combo.current != 0 {
		t.Fatalf("combo index after refresh = %d, want 0", combo.current)
	}
}

type widthTagged struct {
	Note  string `width:"24"`
	Plain string
	Odd   string `width:"wide"`
}

func TestWidthTagSizesTextField(t *testing.T) {
	p := &widthTagged{Note: "hello"}
	v, _, _ := newTestView(t, p, "w")

	if got := v.Widgets["Note"].(*fakeText).width; got != 24 {
		t.Fatalf("width hint = %d, want 24", got)
	}
	if got := v.Widgets["Plain"].(*fakeText).width; got != 0 {
		t.Fatalf("untagged field width = %d, want 0 (size to content)", got)
	}
	if got := v.Widgets["Odd"].(*fakeText).width; got != 0 {
		t.Fatalf("unparsable width must be ignored, got %d", got)
	}
}

func TestEnumRefreshFollowsFieldValue(t *testing.T) {
	AddEnum(testColor(0), "RED", "GREEN", "BLUE", "testColorN")
	p := &mixedParams{}
	v, _, _ := newTestView(t, p, "mixed")

	p.Mode = testGreen
	v.Refresh()
	if got := v.Widgets["Mode"].(*fakeCombo).current; got != 1 {
		t.Fatalf("combo index = %d, want 1", got)
	}
}

func TestEnumIndexOutOfRangeIsRejected(t *testing.T) {
	AddEnum(testColor(0), "RED", "GREEN", "BLUE", "testColorN")
	p := &mixedParams{Mode: testGreen}
	_, tk, _ := newTestView(t, p, "mixed")

	if err := tk.sink("mixed:Mode", toolkit.Event{Kind: toolkit.Selected, Index: 9}); err == nil {
		t.Fatal("expected range error")
	}
	if p.Mode != testGreen {
		t.Fatalf("field mutated by rejected event: %v", p.Mode)
	}
}

type sliceHolder struct {
	Items []int
}

func TestTextEditOnNonStringFieldIsDropped(t *testing.T) {
	p := &sliceHolder{Items: []int{1, 2}}
	v, tk, _ := newTestView(t, p, "s")

	if _, ok := v.Widgets["Items"].(*fakeText); !ok {
		t.Fatal("slice should fall back to a text widget")
	}
	if err := tk.sink("s:Items", toolkit.Event{Kind: toolkit.TextDone, Text: "[9]"}); err != nil {
		t.Fatalf("dropped edit must not error: %v", err)
	}
	if len(p.Items) != 2 || p.Items[0] != 1 {
		t.Fatalf("fallback edit must not coerce: %v", p.Items)
	}
}

func TestEventKindMismatchErrors(t *testing.T) {
	p := &basicParams{}
	_, tk, _ := newTestView(t, p, "params")

	if err := tk.sink("params:Active", toolkit.Event{Kind: toolkit.ValueSet, Value: 1}); err == nil {
		t.Fatal("expected mismatch error for ValueSet on a bool field")
	}
	if err := tk.sink("params:Active", toolkit.Event{Kind: toolkit.Toggled, Checked: true}); err != nil {
		t.Fatalf("matching event kind: %v", err)
	}
}

func TestUnknownFieldErrors(t *testing.T) {
	_, tk, _ := newTestView(t, &basicParams{}, "params")
	err := tk.sink("params:Nope", toolkit.Event{Kind: toolkit.Toggled})
	if err == nil {
		t.Fatal("expected unknown-field error")
	}
}

// ---------------------------------------------------------------------------
// Inline nesting and native views
// ---------------------------------------------------------------------------

type innerBlock struct {
	Value int `min:"0"`
}

type outerBlock struct {
	Label string
	Sub   innerBlock `view:"inline"`
}

func TestInlineSubViewEmbedsAndRoutesEdits(t *testing.T) {
	p := &outerBlock{Sub: innerBlock{Value: 5}}
	v, tk, frame := newTestView(t, p, "outer")

	child, ok := v.InlineView("Sub")
	if !ok {
		t.Fatal("inline child view missing")
	}
	if child.Name != "outer.Sub" {
		t.Fatalf("child name = %q", child.Name)
	}
	if _, ok := frame.frames["outer:Sub"]; !ok {
		t.Fatal("child frame not embedded in parent")
	}
	if _, ok := v.Widgets["Sub"]; !ok {
		t.Fatal("inline field must appear in the engine widget map")
	}

	if err := tk.sink("outer.Sub:Value", toolkit.Event{Kind: toolkit.ValueSet, Value: 9}); err != nil {
		t.Fatalf("child edit: %v", err)
	}
	if p.Sub.Value != 9 {
		t.Fatalf("child edit did not reach sub-object: %+v", p)
	}

	p.Sub.Value = 11
	child.Refresh()
	if got := child.Widgets["Value"].(*fakeSpin).value; got != 11 {
		t.Fatalf("child refresh shows %v, want 11", got)
	}
}

func TestParentRefreshIsShallow(t *testing.T) {
	p := &outerBlock{Sub: innerBlock{Value: 5}}
	v, _, _ := newTestView(t, p, "outer")

	child, _ := v.InlineView("Sub")
	p.Sub.Value = 8
	v.Refresh()
	if got := child.Widgets["Value"].(*fakeSpin).value; got != 5 {
		t.Fatalf("parent refresh must not descend, child shows %v", got)
	}
}

type durationHolder struct {
	Wait int64 `desc:"native-claimed"`
}

func TestToolkitNativeClaimWins(t *testing.T) {
	resetRegistry()
	tk := &fakeToolkit{}
	tk.native = func(frame toolkit.Frame, name string, val any, tag string) (toolkit.Widget, bool) {
		if _, ok := val.(*int64); !ok {
			return nil, false
		}
		return &fakeText{fakeWidget: fakeWidget{name: name, active: true}}, true
	}
	tk.Connect(HandleEvent)

	p := &durationHolder{Wait: 100}
	v, err := NewView(p, "d", tk)
	if err != nil {
		t.Fatalf("NewView: %v", err)
	}
	v.Build(newFakeFrame("root"))

	if _, ok := v.ToolkitViews["Wait"]; !ok {
		t.Fatal("native claim should land in ToolkitViews")
	}
	if _, ok := v.Widgets["Wait"]; ok {
		t.Fatal("native field must not also appear in Widgets")
	}

	// native views synchronize by reference; refresh leaves them alone
	nv := v.ToolkitViews["Wait"].(*fakeText)
	nv.text = "untouched"
	p.Wait = 999
	v.Refresh()
	if nv.text != "untouched" {
		t.Fatalf("refresh touched a native view: %q", nv.text)
	}
}
