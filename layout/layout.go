// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout implements trees of layout managers that size and
position the widgets of a host container.

A Manager is either a composite (Flow, Stack) ordering child managers,
or an Adaptor wrapping a single widget. Layout runs in two passes:
SizeRequest aggregates natural sizes bottom-up, and SizeAllocate
assigns positions top-down given an origin and an available width,
returning the size each subtree consumed.

Concrete managers embed Embed and set its Wrapper field to themselves,
so that the shared code in Embed dispatches to their overrides.
*/
package layout

import (
	"image"

	"gioui.org/flowkit/internal/signal"
	"gioui.org/flowkit/internal/warn"
	"gioui.org/flowkit/widget"
)

// Allocation is the input to SizeAllocate: where a manager starts and
// how much horizontal room it has.
type Allocation struct {
	Origin image.Point
	// Width is the available width. Width <= 0 means unconstrained.
	Width int
}

// Manager is a node in a layout tree.
type Manager interface {
	// Requisition returns the natural size computed by the last
	// SizeRequest.
	Requisition() image.Point
	// SizeRequest computes and caches the natural size of the
	// subtree.
	SizeRequest() image.Point
	// SizeAllocate positions the subtree and returns the size it
	// consumed.
	SizeAllocate(a Allocation) image.Point

	Add(child Manager)
	Remove(child Manager)
	// Foreach calls fn for every direct child.
	Foreach(fn func(Manager))
	// ForeachWidget calls fn for every widget in the subtree.
	ForeachWidget(fn func(widget.Widget))

	BorderWidth() int
	SetBorderWidth(width int)

	Parent() Manager
	// Host returns the container showing the tree, if any.
	Host() widget.Container
	QueueResize()

	embed() *Embed
	properties() []property
	childProperties() []childProperty
}

// hostObserver is implemented by managers that react to their tree
// being attached to or detached from a host.
type hostObserver interface {
	hostChanged(from, to widget.Container)
}

// Embed is embedded by Manager implementations.
type Embed struct {
	// Wrapper is the outer manager embedding Embed.
	Wrapper Manager

	// Notified receives the names of changed properties.
	Notified signal.Notifier
	// ChildNotified receives the names of changed child
	// properties, that is properties the parent keeps about this
	// manager.
	ChildNotified signal.Notifier
	// Added and Removed are emitted by composites after a child
	// was attached or detached.
	Added   signal.Signal[Manager]
	Removed signal.Signal[Manager]

	parent Manager
	host   widget.Container
	border int
	req    image.Point
}

func (e *Embed) embed() *Embed {
	return e
}

func (e *Embed) Requisition() image.Point {
	return e.req
}

// SizeRequest returns the largest child size along each axis plus the
// border on both sides.
func (e *Embed) SizeRequest() image.Point {
	var req image.Point
	e.Wrapper.Foreach(func(c Manager) {
		r := c.SizeRequest()
		req.X = max(req.X, r.X)
		req.Y = max(req.Y, r.Y)
	})
	bw := 2 * e.border
	e.req = req.Add(image.Pt(bw, bw))
	return e.req
}

func (e *Embed) SizeAllocate(a Allocation) image.Point {
	return image.Point{}
}

func (e *Embed) Add(child Manager) {
	warn.Printf("add not implemented for %T", e.Wrapper)
}

func (e *Embed) Remove(child Manager) {
	warn.Printf("remove not implemented for %T", e.Wrapper)
}

func (e *Embed) Foreach(fn func(Manager)) {}

func (e *Embed) ForeachWidget(fn func(widget.Widget)) {
	e.Wrapper.Foreach(func(c Manager) {
		c.ForeachWidget(fn)
	})
}

func (e *Embed) BorderWidth() int {
	return e.border
}

// SetBorderWidth sets the empty space around the children. Negative
// widths are treated as 0.
func (e *Embed) SetBorderWidth(width int) {
	if width < 0 {
		warn.Printf("negative border width %d for %T", width, e.Wrapper)
		width = 0
	}
	if width == e.border {
		return
	}
	e.border = width
	e.Notified.Notify("border-width")
	e.Wrapper.QueueResize()
}

func (e *Embed) Parent() Manager {
	return e.parent
}

func (e *Embed) Host() widget.Container {
	return e.host
}

// QueueResize asks the host for a new layout pass. It does nothing
// while the tree is not shown by a realized host.
func (e *Embed) QueueResize() {
	if e.host != nil && e.host.Realized() {
		e.host.QueueResize()
	}
}

func (e *Embed) properties() []property {
	return managerProperties
}

func (e *Embed) childProperties() []childProperty {
	return nil
}

// attach makes child a child of e. It refuses children that already
// belong to a tree or would create a cycle.
func (e *Embed) attach(child Manager) bool {
	if child == nil {
		warn.Printf("can't add a nil manager to a %T", e.Wrapper)
		return false
	}
	ce := child.embed()
	if ce.parent != nil {
		warn.Printf("attempting to add a %T to a %T, but it is already inside a %T", child, e.Wrapper, ce.parent)
		return false
	}
	if ce.host != nil {
		warn.Printf("attempting to add a %T to a %T, but it is the root of a %T", child, e.Wrapper, ce.host)
		return false
	}
	for p := e.Wrapper; p != nil; p = p.Parent() {
		if p == child {
			warn.Printf("attempting to add a %T to its own descendant %T", child, e.Wrapper)
			return false
		}
	}
	ce.parent = e.Wrapper
	ce.setHost(e.host)
	return true
}

func (e *Embed) detach(child Manager) {
	ce := child.embed()
	ce.parent = nil
	ce.setHost(nil)
}

// setHost records h as the host of the subtree rooted at e.
func (e *Embed) setHost(h widget.Container) {
	old := e.host
	if old == h {
		return
	}
	e.host = h
	if o, ok := e.Wrapper.(hostObserver); ok {
		o.hostChanged(old, h)
	}
	e.Wrapper.Foreach(func(c Manager) {
		c.embed().setHost(h)
	})
}

// SetHost makes the parentless manager m the root of the tree shown
// by h. A nil h detaches the tree from its host.
func SetHost(m Manager, h widget.Container) {
	e := m.embed()
	if e.parent != nil {
		warn.Printf("can't set the host of a %T inside a %T", m, e.parent)
		return
	}
	e.setHost(h)
}
