// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements a small retained widget toolkit: leaves
// with a natural size, containers, scroll adjustments and a toplevel
// that coalesces resize requests into layout passes.
//
// Concrete widgets embed Base (or ContainerBase) and set its Wrapper
// field to themselves, so that methods implemented by Base can call
// methods overridden by the outer type.
package widget

import (
	"image"

	"golang.org/x/image/draw"

	"gioui.org/flowkit/internal/signal"
	"gioui.org/flowkit/internal/warn"
)

// Widget is a node in a widget tree.
type Widget interface {
	// Measure computes the natural size of the widget.
	Measure() image.Point
	// SizeRequest measures the widget and caches the result.
	SizeRequest() image.Point
	// ChildRequisition returns the size cached by the last
	// SizeRequest.
	ChildRequisition() image.Point
	SizeAllocate(r image.Rectangle)
	Allocation() image.Rectangle
	// Draw draws the widget at its allocation offset by off.
	Draw(dst draw.Image, off image.Point)

	Visible() bool
	Show()
	Hide()

	Parent() Container
	// SetParent records the parent of a widget that has none.
	SetParent(c Container)
	Unparent()

	Realized() bool
	Realize()
	Unrealize()

	// QueueResize schedules a new layout pass of the widget's
	// toplevel.
	QueueResize()
	// QueueDraw schedules a redraw of the widget's toplevel.
	QueueDraw()
	Destroy()
}

// Container is a Widget with children.
type Container interface {
	Widget
	Add(w Widget)
	Remove(w Widget)
	// Forall calls fn for every child.
	Forall(fn func(Widget))
	BorderWidth() int
	SetBorderWidth(width int)
}

// LineWrapper is implemented by widgets whose height depends on the
// width they are given.
type LineWrapper interface {
	Widget
	LineWrap() bool
	// WrapSize returns the size of the widget when constrained
	// to width.
	WrapSize(width int) image.Point
	Alignment() (x, y float32)
	SetAlignment(x, y float32)
}

// Base is embedded by widgets to provide the bookkeeping common to
// all widgets.
type Base struct {
	// Wrapper is the outer widget embedding Base.
	Wrapper Widget

	parent    Container
	alloc     image.Rectangle
	req       image.Point
	hidden    bool
	realized  bool
	destroyed bool

	// Notified receives the names of changed properties.
	Notified signal.Notifier
	// Destroyed is emitted once by Destroy.
	Destroyed signal.Signal[Widget]
}

func (b *Base) Measure() image.Point {
	return image.Point{}
}

func (b *Base) SizeRequest() image.Point {
	b.req = b.Wrapper.Measure()
	return b.req
}

func (b *Base) ChildRequisition() image.Point {
	return b.req
}

func (b *Base) SizeAllocate(r image.Rectangle) {
	b.alloc = r
}

func (b *Base) Allocation() image.Rectangle {
	return b.alloc
}

func (b *Base) Draw(dst draw.Image, off image.Point) {}

func (b *Base) Visible() bool {
	return !b.hidden
}

func (b *Base) Show() {
	if !b.hidden {
		return
	}
	b.hidden = false
	b.Notified.Notify("visible")
	b.Wrapper.QueueResize()
}

func (b *Base) Hide() {
	if b.hidden {
		return
	}
	b.hidden = true
	b.Notified.Notify("visible")
	b.Wrapper.QueueResize()
}

func (b *Base) Parent() Container {
	return b.parent
}

func (b *Base) SetParent(c Container) {
	if c == nil {
		return
	}
	if b.parent != nil {
		warn.Printf("can't set a parent on a %T which already has a parent", b.Wrapper)
		return
	}
	b.parent = c
	if c.Realized() {
		b.Wrapper.Realize()
	}
	b.Notified.Notify("parent")
	b.Wrapper.QueueResize()
}

func (b *Base) Unparent() {
	if b.parent == nil {
		return
	}
	old := b.parent
	if b.realized {
		b.Wrapper.Unrealize()
	}
	b.parent = nil
	b.alloc = image.Rectangle{}
	b.Notified.Notify("parent")
	if !b.hidden {
		old.QueueResize()
	}
}

func (b *Base) Realized() bool {
	return b.realized
}

func (b *Base) Realize() {
	b.realized = true
}

func (b *Base) Unrealize() {
	b.realized = false
}

func (b *Base) QueueResize() {
	if b.parent != nil {
		b.parent.QueueResize()
	}
}

func (b *Base) QueueDraw() {
	if b.parent != nil {
		b.parent.QueueDraw()
	}
}

func (b *Base) Destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	if b.parent != nil {
		b.parent.Remove(b.Wrapper)
	}
	b.Destroyed.Emit(b.Wrapper)
}

// ContainerBase is embedded by containers. Its Wrapper must
// implement Container.
type ContainerBase struct {
	Base
	border int
}

func (c *ContainerBase) container() Container {
	return c.Wrapper.(Container)
}

func (c *ContainerBase) BorderWidth() int {
	return c.border
}

// SetBorderWidth sets the empty space around the children.
// Negative widths are treated as 0.
func (c *ContainerBase) SetBorderWidth(width int) {
	if width < 0 {
		warn.Printf("negative border width %d for %T", width, c.Wrapper)
		width = 0
	}
	if width == c.border {
		return
	}
	c.border = width
	c.Notified.Notify("border-width")
	c.Wrapper.QueueResize()
}

func (c *ContainerBase) Realize() {
	c.Base.Realize()
	c.container().Forall(func(w Widget) {
		if !w.Realized() {
			w.Realize()
		}
	})
}

func (c *ContainerBase) Unrealize() {
	c.container().Forall(func(w Widget) {
		if w.Realized() {
			w.Unrealize()
		}
	})
	c.Base.Unrealize()
}

// Destroy destroys the children before the container itself.
func (c *ContainerBase) Destroy() {
	if c.destroyed {
		return
	}
	var children []Widget
	c.container().Forall(func(w Widget) {
		children = append(children, w)
	})
	for _, w := range children {
		w.Destroy()
	}
	c.Base.Destroy()
}

// drawChildren draws the visible children of c.
func drawChildren(c Container, dst draw.Image, off image.Point) {
	c.Forall(func(w Widget) {
		if w.Visible() {
			w.Draw(dst, off)
		}
	})
}
