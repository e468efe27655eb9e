// SPDX-License-Identifier: Unlicense OR MIT

package managed

import (
	"image"

	"gioui.org/flowkit/widget"
)

// Layoutable is implemented by widgets that size themselves for a
// ManagedLayout. Widgets that don't implement it are handled by the
// built-in rules for labels and boxes, or placed at their natural
// size.
type Layoutable interface {
	// LayoutRequest returns the natural size.
	LayoutRequest(c *Context) image.Point
	// LayoutAllocate positions the widget at origin with width
	// available (unconstrained when <= 0) and returns the size it
	// consumed.
	LayoutAllocate(c *Context, origin image.Point, width int) image.Point
}

// Context carries the requisitions of one layout pass.
type Context struct {
	reqs map[widget.Widget]image.Point
}

// Reset forgets the requisitions of the previous pass.
func (c *Context) Reset() {
	for w := range c.reqs {
		delete(c.reqs, w)
	}
}

// Request computes and records the natural size of w.
func (c *Context) Request(w widget.Widget) image.Point {
	req := For(w).LayoutRequest(c)
	if c.reqs == nil {
		c.reqs = make(map[widget.Widget]image.Point)
	}
	c.reqs[w] = req
	return req
}

// Requisition returns the size recorded for w during this pass.
func (c *Context) Requisition(w widget.Widget) image.Point {
	if req, ok := c.reqs[w]; ok {
		return req
	}
	return c.Request(w)
}

// Allocate positions w and returns the size it consumed.
func (c *Context) Allocate(w widget.Widget, origin image.Point, width int) image.Point {
	return For(w).LayoutAllocate(c, origin, width)
}

// For returns the layout behavior of w.
func For(w widget.Widget) Layoutable {
	if l, ok := w.(Layoutable); ok {
		return l
	}
	switch w := w.(type) {
	case *widget.Label:
		return label{w}
	case *widget.Box:
		if w.Homogeneous() {
			break
		}
		if w.Orientation == widget.Horizontal {
			return hbox{w}
		}
		return vbox{w}
	}
	return generic{w}
}

// generic places a widget at its natural size.
type generic struct {
	w widget.Widget
}

type label struct {
	*widget.Label
}

type hbox struct {
	*widget.Box
}

type vbox struct {
	*widget.Box
}

func (g generic) LayoutRequest(c *Context) image.Point {
	return g.w.SizeRequest()
}

func (g generic) LayoutAllocate(c *Context, origin image.Point, width int) image.Point {
	size := g.w.ChildRequisition()
	g.w.SizeAllocate(image.Rectangle{Min: origin, Max: origin.Add(size)})
	return size
}

// LayoutRequest of a wrapping label is empty: it takes whatever width
// it is given.
func (l label) LayoutRequest(c *Context) image.Point {
	if !l.LineWrap() {
		return generic{l.Label}.LayoutRequest(c)
	}
	return image.Point{}
}

func (l label) LayoutAllocate(c *Context, origin image.Point, width int) image.Point {
	if !l.LineWrap() || width <= 0 {
		if l.LineWrap() {
			l.SizeRequest()
		}
		return generic{l.Label}.LayoutAllocate(c, origin, width)
	}
	_, yalign := l.Alignment()
	l.SetAlignment(0, yalign)
	size := l.WrapSize(width)
	l.SizeAllocate(image.Rectangle{Min: origin, Max: origin.Add(size)})
	return size
}

// boxRequest is the largest child requisition plus the border.
func boxRequest(c *Context, b *widget.Box) image.Point {
	var req image.Point
	for _, child := range b.Children() {
		r := c.Request(child.Widget)
		req.X = max(req.X, r.X)
		req.Y = max(req.Y, r.Y)
	}
	bw := 2 * b.BorderWidth()
	return req.Add(image.Pt(bw, bw))
}

// packOrder returns the visible children of b: pack start children
// in order, then pack end children in reverse.
func packOrder(b *widget.Box) []*widget.BoxChild {
	var start, end []*widget.BoxChild
	for _, child := range b.Children() {
		if !child.Widget.Visible() {
			continue
		}
		if child.Pack == widget.PackStart {
			start = append(start, child)
		} else {
			end = append(end, child)
		}
	}
	for i := len(end) - 1; i >= 0; i-- {
		start = append(start, end[i])
	}
	return start
}

func (b hbox) LayoutRequest(c *Context) image.Point {
	return boxRequest(c, b.Box)
}

// LayoutAllocate flows the children into rows like a layout.Flow,
// with the box spacing between items and between rows.
func (b hbox) LayoutAllocate(c *Context, origin image.Point, width int) image.Point {
	bw := b.BorderWidth()
	avail := -1
	if width > 0 {
		avail = max(width-bw, 1)
	}
	rowWidth, rowHeight := bw, 0
	size := image.Pt(0, bw)
	for _, child := range packOrder(b.Box) {
		req := c.Requisition(child.Widget)
		need := req.X + 2*child.Padding
		if avail > 0 && rowWidth > bw && rowWidth+need > avail {
			size.X = max(size.X, rowWidth-b.Spacing()+bw)
			size.Y += rowHeight + b.Spacing()
			rowWidth, rowHeight = bw, 0
		}
		w := 0
		if avail > 0 {
			w = max(avail-rowWidth-2*child.Padding, 1)
		}
		got := c.Allocate(child.Widget, origin.Add(image.Pt(rowWidth+child.Padding, size.Y)), w)
		rowWidth += got.X + 2*child.Padding + b.Spacing()
		rowHeight = max(rowHeight, got.Y)
	}
	if rowWidth > bw {
		rowWidth -= b.Spacing()
	}
	size.X = max(size.X, rowWidth+bw)
	size.Y += rowHeight + bw
	// Record the box allocation without reallocating the children.
	b.ContainerBase.SizeAllocate(image.Rectangle{Min: origin, Max: origin.Add(size)})
	return size
}

func (b vbox) LayoutRequest(c *Context) image.Point {
	return boxRequest(c, b.Box)
}

// LayoutAllocate stacks the children, each given the full width.
func (b vbox) LayoutAllocate(c *Context, origin image.Point, width int) image.Point {
	bw := b.BorderWidth()
	w := 0
	if width > 0 {
		w = max(width-2*bw, 1)
	}
	size := image.Pt(0, bw)
	order := packOrder(b.Box)
	for i, child := range order {
		got := c.Allocate(child.Widget, origin.Add(image.Pt(bw, size.Y+child.Padding)), w)
		size.X = max(size.X, got.X)
		size.Y += got.Y + 2*child.Padding
		if i < len(order)-1 {
			size.Y += b.Spacing()
		}
	}
	size.X += 2 * bw
	size.Y += bw
	// Record the box allocation without reallocating the children.
	b.ContainerBase.SizeAllocate(image.Rectangle{Min: origin, Max: origin.Add(size)})
	return size
}
