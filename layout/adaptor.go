// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"

	"gioui.org/flowkit/internal/warn"
	"gioui.org/flowkit/widget"
)

// Adaptor is the leaf of a layout tree. It places a single widget at
// its natural size, or at its wrapped size when the widget wraps
// lines.
//
// The widget is parented to the host of the tree; until the tree is
// attached to a host the widget stays unparented.
type Adaptor struct {
	Embed
	child widget.Widget
}

func NewAdaptor() *Adaptor {
	a := new(Adaptor)
	a.Wrapper = a
	return a
}

func (a *Adaptor) Child() widget.Widget {
	return a.child
}

// SetChild replaces the widget of a. The previous widget is
// unparented; a nil w leaves a empty.
func (a *Adaptor) SetChild(w widget.Widget) {
	if w == a.child {
		return
	}
	if w != nil && w.Parent() != nil {
		warn.Printf("can't adapt a %T which already has a parent", w)
		return
	}
	if prev := a.child; prev != nil {
		visible := prev.Visible()
		a.child = nil
		if a.host != nil {
			prev.Unparent()
		}
		if visible {
			a.QueueResize()
		}
	}
	a.child = w
	if w != nil {
		if a.host != nil {
			w.SetParent(a.host)
		}
		a.QueueResize()
	}
	a.Notified.Notify("child")
}

func (a *Adaptor) hostChanged(from, to widget.Container) {
	if a.child == nil {
		return
	}
	if from != nil {
		a.child.Unparent()
	}
	if to != nil {
		a.child.SetParent(to)
	}
}

// Requisition returns the cached requisition of the widget, without
// the border.
func (a *Adaptor) Requisition() image.Point {
	if !a.shown() {
		return image.Point{}
	}
	return a.child.ChildRequisition()
}

func (a *Adaptor) SizeRequest() image.Point {
	a.req = image.Point{}
	if a.shown() {
		bw := 2 * a.border
		a.req = a.child.SizeRequest().Add(image.Pt(bw, bw))
	}
	return a.req
}

// SizeAllocate gives the widget its natural size, or for a wrapping
// widget the size it needs at the available width. Wrapped text is
// aligned to the start.
func (a *Adaptor) SizeAllocate(al Allocation) image.Point {
	if !a.shown() {
		return image.Point{}
	}
	b := a.border
	var size image.Point
	if lw, ok := a.child.(widget.LineWrapper); ok && lw.LineWrap() && al.Width > 0 {
		_, yalign := lw.Alignment()
		lw.SetAlignment(0, yalign)
		size = lw.WrapSize(max(al.Width-2*b, 1))
	} else {
		size = a.child.ChildRequisition()
	}
	o := al.Origin.Add(image.Pt(b, b))
	a.child.SizeAllocate(image.Rectangle{Min: o, Max: o.Add(size)})
	return size.Add(image.Pt(2*b, 2*b))
}

func (a *Adaptor) ForeachWidget(fn func(widget.Widget)) {
	if a.child != nil {
		fn(a.child)
	}
}

func (a *Adaptor) properties() []property {
	return adaptorProperties
}

func (a *Adaptor) shown() bool {
	return a.child != nil && a.child.Visible()
}
