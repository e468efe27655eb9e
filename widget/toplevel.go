// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"gioui.org/flowkit/internal/warn"
)

// Toplevel is the root of a widget tree. Resize and redraw requests
// from its descendants are recorded and served by the next call to
// Layout and Draw.
type Toplevel struct {
	ContainerBase
	Background color.NRGBA

	child         Widget
	size          image.Point
	resizePending bool
	drawPending   bool
	passes        int
}

// maxLayoutPasses bounds the number of request/allocate rounds per
// Layout when allocation itself queues resizes.
const maxLayoutPasses = 4

func NewToplevel(size image.Point) *Toplevel {
	t := &Toplevel{
		Background:    color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		size:          size,
		resizePending: true,
	}
	t.Wrapper = t
	return t
}

// Add sets the single child of t.
func (t *Toplevel) Add(w Widget) {
	if t.child != nil {
		warn.Printf("%T already has a child", t)
		return
	}
	if w.Parent() != nil {
		warn.Printf("can't add a %T which already has a parent", w)
		return
	}
	t.child = w
	w.SetParent(t)
}

func (t *Toplevel) Remove(w Widget) {
	if w != t.child || w == nil {
		warn.Printf("%T is not the child of %T", w, t)
		return
	}
	t.child = nil
	w.Unparent()
	t.QueueResize()
}

func (t *Toplevel) Forall(fn func(Widget)) {
	if t.child != nil {
		fn(t.child)
	}
}

func (t *Toplevel) Child() Widget {
	return t.child
}

func (t *Toplevel) Size() image.Point {
	return t.size
}

// Resize changes the size the child is allocated.
func (t *Toplevel) Resize(size image.Point) {
	if size == t.size {
		return
	}
	t.size = size
	t.QueueResize()
}

func (t *Toplevel) QueueResize() {
	t.resizePending = true
	t.drawPending = true
}

func (t *Toplevel) QueueDraw() {
	t.drawPending = true
}

// ResizePending reports whether a layout pass has been requested
// since the last one.
func (t *Toplevel) ResizePending() bool {
	return t.resizePending
}

// DrawPending reports whether a redraw has been requested since the
// last Draw.
func (t *Toplevel) DrawPending() bool {
	return t.drawPending
}

// Passes returns the number of request/allocate rounds run by
// Layout so far.
func (t *Toplevel) Passes() int {
	return t.passes
}

func (t *Toplevel) Measure() image.Point {
	var sz image.Point
	if t.child != nil && t.child.Visible() {
		sz = t.child.SizeRequest()
	}
	bw := 2 * t.BorderWidth()
	return sz.Add(image.Pt(bw, bw))
}

// Layout runs request and allocation passes until no resize is
// pending.
func (t *Toplevel) Layout() {
	for i := 0; i < maxLayoutPasses && t.resizePending; i++ {
		t.resizePending = false
		t.passes++
		t.SizeRequest()
		t.SizeAllocate(image.Rectangle{Max: t.size})
	}
}

func (t *Toplevel) SizeAllocate(r image.Rectangle) {
	t.Base.SizeAllocate(r)
	if t.child != nil && t.child.Visible() {
		t.child.SizeAllocate(r.Inset(t.BorderWidth()))
	}
}

// Draw fills dst with the background and draws the tree.
func (t *Toplevel) Draw(dst draw.Image, off image.Point) {
	t.drawPending = false
	draw.Draw(dst, t.Allocation().Add(off), image.NewUniform(t.Background), image.Point{}, draw.Src)
	drawChildren(t, dst, off)
}
