// SPDX-License-Identifier: Unlicense OR MIT

/*
Package managed implements ManagedLayout, a scrollable container that
flows an ordinary widget tree to its width.

ManagedLayout holds a single child and walks its subtree through the
Layoutable interface: horizontal boxes wrap their children into rows,
vertical boxes stack them at the full width, and wrapping labels take
the width they are given. Widgets can take part by implementing
Layoutable themselves.
*/
package managed

import (
	"image"

	"golang.org/x/image/draw"

	"gioui.org/flowkit/internal/scroll"
	"gioui.org/flowkit/internal/warn"
	"gioui.org/flowkit/widget"
)

// ManagedLayout is a scrollable single child container.
type ManagedLayout struct {
	widget.ContainerBase
	scroll.Viewport

	child widget.Widget
	ctx   Context
	// measured is the allocation size the last request was made for.
	measured image.Point
}

// New returns an empty ManagedLayout scrolled by the given
// adjustments. Nil adjustments are replaced by new ones.
func New(hadj, vadj *widget.Adjustment) *ManagedLayout {
	m := &ManagedLayout{measured: image.Pt(-1, -1)}
	m.Wrapper = m
	m.Init(m.scrolled)
	m.SetAdjustments(hadj, vadj)
	return m
}

func (m *ManagedLayout) Child() widget.Widget {
	return m.child
}

// Add sets the child of m.
func (m *ManagedLayout) Add(w widget.Widget) {
	if m.child != nil {
		warn.Printf("%T already has a child", m)
		return
	}
	if w == nil {
		warn.Printf("can't add a nil widget to a %T", m)
		return
	}
	if w.Parent() != nil {
		warn.Printf("can't add a %T which already has a parent", w)
		return
	}
	m.child = w
	w.SetParent(m)
}

func (m *ManagedLayout) Remove(w widget.Widget) {
	if w == nil || w != m.child {
		warn.Printf("%T is not the child of %T", w, m)
		return
	}
	m.child = nil
	w.Unparent()
	m.QueueResize()
}

func (m *ManagedLayout) Forall(fn func(widget.Widget)) {
	if m.child != nil {
		fn(m.child)
	}
}

func (m *ManagedLayout) Destroy() {
	m.ContainerBase.Destroy()
	m.Release()
}

func (m *ManagedLayout) SetHAdjustment(adj *widget.Adjustment) {
	if changed, _ := m.SetAdjustments(adj, m.VAdjustment()); changed {
		m.Notified.Notify("hadjustment")
	}
}

func (m *ManagedLayout) SetVAdjustment(adj *widget.Adjustment) {
	if _, changed := m.SetAdjustments(m.HAdjustment(), adj); changed {
		m.Notified.Notify("vadjustment")
	}
}

// Measure requests the child and records the content size, but asks
// for no space itself: the content is scrolled instead.
func (m *ManagedLayout) Measure() image.Point {
	m.ctx.Reset()
	var req image.Point
	if m.child != nil && m.child.Visible() {
		req = m.ctx.Request(m.child)
	}
	bw := 2 * m.BorderWidth()
	m.Content = req.Add(image.Pt(bw, bw))
	m.measured = m.Allocation().Size()
	return image.Point{}
}

// SizeAllocate flows the child to the allocated width. A new layout
// pass is queued when the size differs from the one the last request
// was made for.
func (m *ManagedLayout) SizeAllocate(r image.Rectangle) {
	if r.Size() != m.measured {
		m.QueueResize()
	}
	m.ContainerBase.SizeAllocate(r)
	b := m.BorderWidth()
	var used image.Point
	if m.child != nil && m.child.Visible() {
		used = m.ctx.Allocate(m.child, image.Pt(b, b), max(r.Dx()-2*b, 1))
	}
	m.Content = used.Add(image.Pt(2*b, 2*b))
	m.Sync(r.Size())
}

func (m *ManagedLayout) Realize() {
	m.Viewport.Realize()
	m.ContainerBase.Realize()
}

func (m *ManagedLayout) Unrealize() {
	m.ContainerBase.Unrealize()
	m.Viewport.Unrealize()
}

func (m *ManagedLayout) Draw(dst draw.Image, off image.Point) {
	m.Composite(dst, m.Allocation().Add(off), func(surface draw.Image) {
		if m.child != nil && m.child.Visible() {
			m.child.Draw(surface, image.Point{})
		}
	})
}

func (m *ManagedLayout) scrolled() {
	if m.Realized() {
		m.QueueDraw()
	}
}
