// SPDX-License-Identifier: Unlicense OR MIT

package layout_test

import (
	"errors"
	"image"
	"strings"
	"testing"

	"gioui.org/flowkit/font/gofont"
	"gioui.org/flowkit/internal/warn"
	"gioui.org/flowkit/layout"
	"gioui.org/flowkit/widget"
)

// host is a minimal container standing in for a scrollable host.
type host struct {
	widget.ContainerBase
	resizes int
}

func newHost() *host {
	h := new(host)
	h.Wrapper = h
	return h
}

func (h *host) Add(w widget.Widget)             {}
func (h *host) Remove(w widget.Widget)          { w.Unparent() }
func (h *host) Forall(fn func(w widget.Widget)) {}
func (h *host) QueueResize()                    { h.resizes++ }

func adapt(w widget.Widget) *layout.Adaptor {
	a := layout.NewAdaptor()
	a.SetChild(w)
	return a
}

func fixed(n int, w, h int) []*widget.Fixed {
	var ws []*widget.Fixed
	for i := 0; i < n; i++ {
		ws = append(ws, widget.NewFixed(w, h))
	}
	return ws
}

func TestFlowRows(t *testing.T) {
	tests := []struct {
		name   string
		border int
		width  int
		want   []image.Point
		size   image.Point
	}{
		{"wrap", 0, 100, []image.Point{{0, 0}, {40, 0}, {0, 10}}, image.Pt(80, 20)},
		{"border", 5, 100, []image.Point{{5, 5}, {45, 5}, {5, 20}}, image.Pt(90, 2*10+3*5)},
		{"unconstrained", 0, 0, []image.Point{{0, 0}, {40, 0}, {80, 0}}, image.Pt(120, 10)},
		{"oversized", 0, 30, []image.Point{{0, 0}, {0, 10}, {0, 20}}, image.Pt(40, 30)},
		{"exact fit", 0, 120, []image.Point{{0, 0}, {40, 0}, {80, 0}}, image.Pt(120, 10)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := layout.NewFlow()
			f.SetBorderWidth(tc.border)
			ws := fixed(3, 40, 10)
			for _, w := range ws {
				f.Add(adapt(w))
			}
			f.SizeRequest()
			got := f.SizeAllocate(layout.Allocation{Width: tc.width})
			if got != tc.size {
				t.Errorf("consumed %v, want %v", got, tc.size)
			}
			for i, w := range ws {
				if o := w.Allocation().Min; o != tc.want[i] {
					t.Errorf("child %d at %v, want %v", i, o, tc.want[i])
				}
				if s := w.Allocation().Size(); s != image.Pt(40, 10) {
					t.Errorf("child %d size %v", i, s)
				}
			}
		})
	}
}

func TestFlowOrigin(t *testing.T) {
	f := layout.NewFlow()
	w := widget.NewFixed(10, 10)
	f.Add(adapt(w))
	f.SizeRequest()
	f.SizeAllocate(layout.Allocation{Origin: image.Pt(7, 3), Width: 50})
	if got, want := w.Allocation(), image.Rect(7, 3, 17, 13); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestStackNeverWraps(t *testing.T) {
	for _, width := range []int{0, 10, 1000} {
		s := layout.NewStack()
		s.SetBorderWidth(2)
		a, b := widget.NewFixed(40, 10), widget.NewFixed(60, 20)
		s.Add(adapt(a))
		s.Add(adapt(b))
		s.SizeRequest()
		got := s.SizeAllocate(layout.Allocation{Width: width})
		if want := image.Pt(64, 2+10+2+20+2); got != want {
			t.Errorf("width %d: consumed %v, want %v", width, got, want)
		}
		if o := a.Allocation().Min; o != image.Pt(2, 2) {
			t.Errorf("width %d: first child at %v", width, o)
		}
		if o := b.Allocation().Min; o != image.Pt(2, 14) {
			t.Errorf("width %d: second child at %v", width, o)
		}
	}
}

// A stack hands its own width to its children, so a nested flow wraps
// at it. An unconstrained stack leaves the flow on one row.
func TestFlowInStackWraps(t *testing.T) {
	tests := []struct {
		width int
		third image.Point
		size  image.Point
	}{
		{width: 100, third: image.Pt(2, 12), size: image.Pt(84, 24)},
		{width: 0, third: image.Pt(82, 2), size: image.Pt(124, 14)},
	}
	for _, test := range tests {
		s := layout.NewStack()
		s.SetBorderWidth(2)
		f := layout.NewFlow()
		s.Add(f)
		ws := fixed(3, 40, 10)
		for _, w := range ws {
			f.Add(adapt(w))
		}
		s.SizeRequest()
		got := s.SizeAllocate(layout.Allocation{Width: test.width})
		if got != test.size {
			t.Errorf("width %d: consumed %v, want %v", test.width, got, test.size)
		}
		if o := ws[2].Allocation().Min; o != test.third {
			t.Errorf("width %d: third child at %v, want %v", test.width, o, test.third)
		}
	}
}

func TestEmptyComposites(t *testing.T) {
	for _, m := range []layout.Manager{layout.NewFlow(), layout.NewStack()} {
		m.SetBorderWidth(3)
		if got := m.SizeRequest(); got != image.Pt(6, 6) {
			t.Errorf("%T: requisition %v", m, got)
		}
		if got := m.SizeAllocate(layout.Allocation{Width: 100}); got != image.Pt(6, 6) {
			t.Errorf("%T: consumed %v", m, got)
		}
	}
	a := layout.NewAdaptor()
	a.SetBorderWidth(3)
	if got := a.SizeRequest(); got != (image.Point{}) {
		t.Errorf("empty adaptor requests %v", got)
	}
}

func TestRequisition(t *testing.T) {
	f := layout.NewFlow()
	f.SetBorderWidth(1)
	s := layout.NewStack()
	w := widget.NewFixed(30, 5)
	a := adapt(w)
	s.Add(a)
	s.Add(adapt(widget.NewFixed(10, 20)))
	f.Add(s)
	f.Add(adapt(widget.NewFixed(50, 1)))

	req := f.SizeRequest()
	if want := image.Pt(52, 22); req != want {
		t.Errorf("flow requests %v, want %v", req, want)
	}
	if got := f.Requisition(); got != req {
		t.Errorf("cached requisition %v, want %v", got, req)
	}
	if got := s.Requisition(); got != image.Pt(30, 20) {
		t.Errorf("stack requisition %v", got)
	}
	if got, want := a.Requisition(), w.ChildRequisition(); got != want {
		t.Errorf("adaptor requisition %v, widget %v", got, want)
	}
}

func TestBoundingBox(t *testing.T) {
	th := widget.NewTheme(gofont.Regular())
	root := layout.NewStack()
	root.SetBorderWidth(4)
	flow := layout.NewFlow()
	flow.SetBorderWidth(2)
	root.Add(flow)
	for _, w := range fixed(7, 35, 12) {
		flow.Add(adapt(w))
	}
	l := widget.NewLabel(th, "a wrapping label with a few words in it")
	l.SetLineWrap(true)
	root.Add(adapt(l))
	root.SizeRequest()
	origin := image.Pt(10, 20)
	size := root.SizeAllocate(layout.Allocation{Origin: origin, Width: 120})
	bounds := image.Rectangle{Min: origin, Max: origin.Add(size)}
	root.ForeachWidget(func(w widget.Widget) {
		if r := w.Allocation(); !r.In(bounds) {
			t.Errorf("%T allocated %v outside %v", w, r, bounds)
		}
	})
}

func TestAdaptorWrap(t *testing.T) {
	th := widget.NewTheme(gofont.Regular())
	l := widget.NewLabel(th, "the quick brown fox jumps over the lazy dog")
	l.SetLineWrap(true)
	a := adapt(l)
	a.SetBorderWidth(1)
	natural := a.SizeRequest().Sub(image.Pt(2, 2))
	width := natural.X / 2
	got := a.SizeAllocate(layout.Allocation{Width: width + 2})
	r := l.Allocation()
	if r.Dx() > width {
		t.Errorf("wrapped label is %d wide, available %d", r.Dx(), width)
	}
	if r.Dy() <= natural.Y {
		t.Errorf("wrapped label is %d high, natural %d", r.Dy(), natural.Y)
	}
	if got != r.Size().Add(image.Pt(2, 2)) {
		t.Errorf("consumed %v for allocation %v", got, r)
	}
	if x, _ := l.Alignment(); x != 0 {
		t.Errorf("wrapped label xalign %g, want 0", x)
	}
	l.SetLineWrap(false)
	a.SizeRequest()
	a.SizeAllocate(layout.Allocation{Width: width + 2})
	if got := l.Allocation().Size(); got != natural {
		t.Errorf("non-wrapping label allocated %v, want natural %v", got, natural)
	}
}

func TestDoubleAttach(t *testing.T) {
	msgs, restore := warn.Capture()
	defer restore()
	p1, p2 := layout.NewFlow(), layout.NewStack()
	c := layout.NewStack()
	p1.Add(c)
	p2.Add(c)
	if c.Parent() != p1 {
		t.Errorf("parent is %v, want the first parent", c.Parent())
	}
	if n := len(layout.Children(p2)); n != 0 {
		t.Errorf("second parent has %d children", n)
	}
	if got := msgs(); len(got) != 1 || !strings.Contains(got[0], "already inside") {
		t.Errorf("got warnings %q", got)
	}
}

func TestCycleRefused(t *testing.T) {
	_, restore := warn.Capture()
	defer restore()
	outer, inner := layout.NewFlow(), layout.NewStack()
	outer.Add(inner)
	inner.Add(outer)
	inner.Add(inner)
	if outer.Parent() != nil || len(layout.Children(inner)) != 0 {
		t.Error("cycle was created")
	}
}

func TestRemove(t *testing.T) {
	f := layout.NewFlow()
	a, b := layout.NewAdaptor(), layout.NewAdaptor()
	f.Add(a)
	f.Add(b)
	var removed []layout.Manager
	f.Removed.Connect(func(m layout.Manager) { removed = append(removed, m) })
	f.Remove(a)
	if a.Parent() != nil {
		t.Error("removed child keeps its parent")
	}
	if got := layout.Children(f); len(got) != 1 || got[0] != b {
		t.Errorf("children after remove: %v", got)
	}
	if len(removed) != 1 || removed[0] != a {
		t.Errorf("Removed emitted %v", removed)
	}
	msgs, restore := warn.Capture()
	defer restore()
	f.Remove(a)
	if len(msgs()) != 1 {
		t.Errorf("removing a non-child gave warnings %q", msgs())
	}
}

func TestAdaptorAdd(t *testing.T) {
	msgs, restore := warn.Capture()
	defer restore()
	a := layout.NewAdaptor()
	a.Add(layout.NewFlow())
	got := msgs()
	if len(got) != 1 || got[0] != "add not implemented for *layout.Adaptor" {
		t.Errorf("got warnings %q", got)
	}
}

func TestHostParenting(t *testing.T) {
	h := newHost()
	f := layout.NewFlow()
	w := widget.NewFixed(5, 5)
	a := adapt(w)
	if w.Parent() != nil {
		t.Fatal("widget parented before the tree has a host")
	}
	f.Add(a)
	layout.SetHost(f, h)
	if w.Parent() != h {
		t.Errorf("widget parent %v, want host", w.Parent())
	}
	if a.Host() != h {
		t.Error("host did not propagate to the adaptor")
	}
	// Adapted after the tree is hosted.
	w2 := widget.NewFixed(5, 5)
	a2 := layout.NewAdaptor()
	f.Add(a2)
	a2.SetChild(w2)
	if w2.Parent() != h {
		t.Error("late child not parented to the host")
	}
	f.Remove(a)
	if w.Parent() != nil || a.Host() != nil {
		t.Error("detached subtree still hosted")
	}
}

func TestSetChildReplaces(t *testing.T) {
	h := newHost()
	a := layout.NewAdaptor()
	layout.SetHost(a, h)
	w1, w2 := widget.NewFixed(1, 1), widget.NewFixed(2, 2)
	a.SetChild(w1)
	a.SetChild(w2)
	if w1.Parent() != nil {
		t.Error("replaced widget is still parented")
	}
	if w2.Parent() != h || a.Child() != w2 {
		t.Error("new widget not adapted")
	}
	a.SetChild(nil)
	if w2.Parent() != nil || a.Child() != nil {
		t.Error("SetChild(nil) did not clear the adaptor")
	}
}

func TestQueueResize(t *testing.T) {
	h := newHost()
	f := layout.NewFlow()
	layout.SetHost(f, h)
	f.SetBorderWidth(3)
	if h.resizes != 0 {
		t.Errorf("unrealized host got %d resizes", h.resizes)
	}
	h.Realize()
	f.SetBorderWidth(4)
	if h.resizes != 1 {
		t.Errorf("realized host got %d resizes, want 1", h.resizes)
	}
}

func TestForeachWidget(t *testing.T) {
	root := layout.NewStack()
	flow := layout.NewFlow()
	ws := fixed(4, 1, 1)
	root.Add(adapt(ws[0]))
	root.Add(flow)
	flow.Add(adapt(ws[1]))
	flow.Add(adapt(ws[2]))
	root.Add(adapt(ws[3]))
	root.Add(layout.NewAdaptor())
	var got []widget.Widget
	root.ForeachWidget(func(w widget.Widget) { got = append(got, w) })
	if len(got) != len(ws) {
		t.Fatalf("visited %d widgets, want %d", len(got), len(ws))
	}
	for i, w := range ws {
		if got[i] != w {
			t.Errorf("widget %d out of order", i)
		}
	}
}

func TestProperties(t *testing.T) {
	f := layout.NewFlow()
	var names []string
	f.Notified.Connect(func(name string) { names = append(names, name) })
	layout.Set(f, "border-width", 3, "border-width", 4)
	if got := f.BorderWidth(); got != 4 {
		t.Errorf("border width %d, want 4", got)
	}
	if len(names) != 1 || names[0] != "border-width" {
		t.Errorf("notifications %q, want a single border-width", names)
	}
	v, err := layout.Get(f, "border-width")
	if err != nil || v != 4 {
		t.Errorf("Get returned %v, %v", v, err)
	}
	if _, err := layout.Get(f, "child"); !errors.Is(err, layout.ErrUnknownProperty) {
		t.Errorf("flow child property: %v", err)
	}

	msgs, restore := warn.Capture()
	defer restore()
	layout.Set(f, "bogus", 1, "border-width", "wide")
	if got := msgs(); len(got) != 2 || !strings.Contains(got[1], "wrong property type") {
		t.Errorf("got warnings %q", got)
	}
	if f.BorderWidth() != 4 {
		t.Error("invalid value changed the border width")
	}
}

func TestAdaptorChildProperty(t *testing.T) {
	a := layout.NewAdaptor()
	w := widget.NewFixed(1, 1)
	layout.Set(a, "child", w)
	if v, _ := layout.Get(a, "child"); v != w {
		t.Errorf("child property %v", v)
	}
	layout.Set(a, "child", nil)
	if v, _ := layout.Get(a, "child"); v != nil {
		t.Errorf("child property %v after clearing", v)
	}
	if got := layout.Properties(a); len(got) != 2 {
		t.Errorf("adaptor properties %q", got)
	}
}

func TestChildProperties(t *testing.T) {
	f := layout.NewFlow()
	a, b, c := layout.NewAdaptor(), layout.NewAdaptor(), layout.NewAdaptor()
	f.Add(a)
	f.Add(b)
	layout.AddWithProperties(f, c, "position", 0)
	if got := layout.Children(f); got[0] != c || got[1] != a || got[2] != b {
		t.Errorf("AddWithProperties did not reorder: %v", got)
	}
	var notified []string
	a.ChildNotified.Connect(func(name string) { notified = append(notified, name) })
	if err := layout.ChildSet(f, a, "position", -1); err != nil {
		t.Fatal(err)
	}
	if v, _ := layout.ChildGet(f, a, "position"); v != 2 {
		t.Errorf("position %v, want 2", v)
	}
	if len(notified) != 1 || notified[0] != "position" {
		t.Errorf("child notifications %q", notified)
	}

	other := layout.NewStack()
	if _, err := layout.ChildGet(other, a, "position"); !errors.Is(err, layout.ErrNotChild) {
		t.Errorf("ChildGet on a non-child: %v", err)
	}
	if err := layout.ChildSet(other, a, "position", 0); !errors.Is(err, layout.ErrNotChild) {
		t.Errorf("ChildSet on a non-child: %v", err)
	}
	if err := layout.ChildSet(f, a, "position", "first"); !errors.Is(err, layout.ErrPropertyType) {
		t.Errorf("ChildSet with a string: %v", err)
	}
}
