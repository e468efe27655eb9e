// SPDX-License-Identifier: Unlicense OR MIT

package managed_test

import (
	"image"
	"strings"
	"testing"

	"gioui.org/flowkit/font/gofont"
	"gioui.org/flowkit/internal/warn"
	"gioui.org/flowkit/managed"
	"gioui.org/flowkit/widget"
)

func TestHBoxWraps(t *testing.T) {
	top := widget.NewToplevel(image.Pt(100, 200))
	m := managed.New(nil, nil)
	top.Add(m)
	box := widget.NewHBox(false, 5)
	var ws []*widget.Fixed
	for i := 0; i < 3; i++ {
		w := widget.NewFixed(40, 10)
		ws = append(ws, w)
		box.PackStart(w, false, false, 0)
	}
	m.Add(box)
	top.Layout()

	want := []image.Point{{0, 0}, {45, 0}, {0, 15}}
	for i, w := range ws {
		if got := w.Allocation().Min; got != want[i] {
			t.Errorf("child %d at %v, want %v", i, got, want[i])
		}
	}
	if got, want := box.Allocation(), image.Rect(0, 0, 85, 25); got != want {
		t.Errorf("box allocated %v, want %v", got, want)
	}
	if got := m.ChildRequisition(); got != (image.Point{}) {
		t.Errorf("host requests %v, want nothing", got)
	}
	if v := m.VAdjustment(); v.Upper != 200 || v.PageSize != 200 {
		t.Errorf("vertical adjustment %v", v)
	}
}

func TestPackEndOrder(t *testing.T) {
	m := managed.New(nil, nil)
	top := widget.NewToplevel(image.Pt(1000, 100))
	top.Add(m)
	box := widget.NewHBox(false, 0)
	a, b, c := widget.NewFixed(10, 10), widget.NewFixed(20, 10), widget.NewFixed(30, 10)
	box.PackEnd(a, false, false, 0)
	box.PackEnd(b, false, false, 0)
	box.PackStart(c, false, false, 2)
	m.Add(box)
	top.Layout()
	// Pack start children first, then pack end children in reverse.
	if got := c.Allocation().Min.X; got != 2 {
		t.Errorf("pack start child at x %d, want 2", got)
	}
	if got := b.Allocation().Min.X; got != 34 {
		t.Errorf("last pack end child at x %d, want 34", got)
	}
	if got := a.Allocation().Min.X; got != 54 {
		t.Errorf("first pack end child at x %d, want 54", got)
	}
}

func TestVBoxWrapsLabels(t *testing.T) {
	th := widget.NewTheme(gofont.Regular())
	m := managed.New(nil, nil)
	top := widget.NewToplevel(image.Pt(120, 60))
	top.Add(m)
	vbox := widget.NewVBox(false, 4)
	vbox.SetBorderWidth(3)
	l := widget.NewLabel(th, "a label long enough to need a few lines at this width")
	l.SetLineWrap(true)
	f := widget.NewFixed(10, 10)
	vbox.PackStart(l, false, false, 0)
	vbox.PackStart(f, false, false, 0)
	m.Add(vbox)
	top.Layout()

	r := l.Allocation()
	if r.Min != image.Pt(3, 3) {
		t.Errorf("label at %v, want (3,3)", r.Min)
	}
	if r.Dx() > 120-6 {
		t.Errorf("label is %d wide, more than the %d available", r.Dx(), 120-6)
	}
	natural := l.SizeRequest()
	if r.Dy() <= natural.Y {
		t.Errorf("label height %d, not wrapped (natural %d)", r.Dy(), natural.Y)
	}
	if got, want := f.Allocation().Min, image.Pt(3, r.Max.Y+4); got != want {
		t.Errorf("fixed child at %v, want %v", got, want)
	}
	if x, _ := l.Alignment(); x != 0 {
		t.Errorf("wrapped label xalign %g", x)
	}
	// The content is taller than the page: it scrolls.
	v := m.VAdjustment()
	if v.Upper != float64(f.Allocation().Max.Y+3) || v.PageSize != 60 {
		t.Errorf("vertical adjustment %v", v)
	}
}

func TestResizeRequeues(t *testing.T) {
	m := managed.New(nil, nil)
	top := widget.NewToplevel(image.Pt(100, 100))
	top.Add(m)
	m.Add(widget.NewFixed(10, 10))
	top.Layout()
	if top.ResizePending() {
		t.Fatal("layout did not settle")
	}
	passes := top.Passes()
	top.Layout()
	if top.Passes() != passes {
		t.Error("idle layout ran a pass")
	}
	top.Resize(image.Pt(50, 50))
	top.Layout()
	if got := top.Passes() - passes; got != 2 {
		t.Errorf("resize ran %d passes, want 2", got)
	}
}

type square struct {
	widget.Base
	side int
}

func (s *square) LayoutRequest(c *managed.Context) image.Point {
	return image.Pt(1, 1)
}

func (s *square) LayoutAllocate(c *managed.Context, origin image.Point, width int) image.Point {
	s.side = width
	sz := image.Pt(width, width)
	s.SizeAllocate(image.Rectangle{Min: origin, Max: origin.Add(sz)})
	return sz
}

func TestCustomLayoutable(t *testing.T) {
	m := managed.New(nil, nil)
	top := widget.NewToplevel(image.Pt(80, 40))
	top.Add(m)
	m.SetBorderWidth(5)
	sq := new(square)
	sq.Wrapper = sq
	m.Add(sq)
	top.Layout()
	if sq.side != 70 {
		t.Errorf("custom widget given width %d, want 70", sq.side)
	}
	if got := m.VAdjustment().Upper; got != 80 {
		t.Errorf("upper %g, want 80", got)
	}
}

func TestSingleChild(t *testing.T) {
	msgs, restore := warn.Capture()
	defer restore()
	m := managed.New(nil, nil)
	a, b := widget.NewFixed(1, 1), widget.NewFixed(1, 1)
	m.Add(a)
	m.Add(b)
	if m.Child() != a || b.Parent() != nil {
		t.Error("second child replaced the first")
	}
	if len(msgs()) != 1 {
		t.Errorf("got warnings %q", msgs())
	}
	m.Remove(a)
	if m.Child() != nil || a.Parent() != nil {
		t.Error("remove left the child in place")
	}
}

func TestAddRejects(t *testing.T) {
	tests := []struct {
		name string
		w    func() widget.Widget
		msg  string
	}{
		{"nil", func() widget.Widget { return nil }, "can't add a nil widget"},
		{"parented", func() widget.Widget {
			w := widget.NewFixed(1, 1)
			widget.NewHBox(false, 0).Add(w)
			return w
		}, "already has a parent"},
	}
	for _, test := range tests {
		msgs, restore := warn.Capture()
		m := managed.New(nil, nil)
		m.Add(test.w())
		got := msgs()
		restore()
		if m.Child() != nil {
			t.Errorf("%s: widget was added", test.name)
		}
		if len(got) != 1 || !strings.Contains(got[0], test.msg) {
			t.Errorf("%s: got warnings %q, want %q", test.name, got, test.msg)
		}
	}
}

func TestRequisitionCache(t *testing.T) {
	th := widget.NewTheme(gofont.Regular())
	var c managed.Context
	l := widget.NewLabel(th, "wrapping")
	l.SetLineWrap(true)
	if got := c.Request(l); got != (image.Point{}) {
		t.Errorf("wrapping label requests %v", got)
	}
	box := widget.NewHBox(false, 0)
	box.SetBorderWidth(2)
	box.Add(widget.NewFixed(7, 9))
	box.Add(widget.NewFixed(3, 11))
	if got := c.Request(box); got != image.Pt(11, 15) {
		t.Errorf("box requests %v, want (11,15)", got)
	}
	if got := c.Requisition(box); got != image.Pt(11, 15) {
		t.Errorf("cached requisition %v", got)
	}
	// Homogeneous boxes keep their natural size.
	hom := widget.NewHBox(true, 0)
	hom.Add(widget.NewFixed(7, 9))
	hom.Add(widget.NewFixed(3, 11))
	if got, want := c.Request(hom), hom.SizeRequest(); got != want {
		t.Errorf("homogeneous box requests %v, want %v", got, want)
	}
}
