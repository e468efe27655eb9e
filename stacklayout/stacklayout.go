// SPDX-License-Identifier: Unlicense OR MIT

/*
Package stacklayout implements StackLayout, a scrollable container
whose widgets are arranged by a tree of layout managers.

The tree is built with a push/pop discipline: Push adds a manager
inside the current one and makes it current, Pop returns to the
enclosing manager, and Add wraps a widget in an adaptor and adds it
to the current manager.

	s := stacklayout.New(nil, nil)
	s.Push(layout.NewStack())
	s.Add(title)
	s.Push(layout.NewFlow())
	s.Add(a)
	s.Add(b)
	s.Pop()
	s.Pop()
*/
package stacklayout

import (
	"image"

	"golang.org/x/exp/slices"
	"golang.org/x/image/draw"

	"gioui.org/flowkit/internal/scroll"
	"gioui.org/flowkit/internal/warn"
	"gioui.org/flowkit/layout"
	"gioui.org/flowkit/widget"
)

// StackLayout is a scrollable container laid out by a manager tree.
type StackLayout struct {
	widget.ContainerBase
	scroll.Viewport

	root    layout.Manager
	current []layout.Manager
}

// New returns an empty StackLayout scrolled by the given adjustments.
// Nil adjustments are replaced by new ones.
func New(hadj, vadj *widget.Adjustment) *StackLayout {
	s := new(StackLayout)
	s.Wrapper = s
	s.Init(s.scrolled)
	s.SetAdjustments(hadj, vadj)
	return s
}

// Root returns the root manager, or nil.
func (s *StackLayout) Root() layout.Manager {
	return s.root
}

// Current returns the manager that receives new children: the top of
// the push stack, or the root when the stack is empty.
func (s *StackLayout) Current() layout.Manager {
	if n := len(s.current); n > 0 {
		return s.current[n-1]
	}
	return s.root
}

// Depth returns the number of pushed managers not yet popped.
func (s *StackLayout) Depth() int {
	return len(s.current)
}

// Push adds m to the current manager and makes it current. The first
// manager pushed becomes the root.
func (s *StackLayout) Push(m layout.Manager) {
	if m == nil {
		warn.Printf("can't push a nil manager onto a %T", s)
		return
	}
	if s.root == nil {
		if m.Parent() != nil || m.Host() != nil {
			warn.Printf("can't make a %T which is part of another tree the root of a %T", m, s)
			return
		}
		layout.SetHost(m, s)
		s.root = m
	} else {
		cur := s.Current()
		cur.Add(m)
		if m.Parent() != cur {
			return
		}
	}
	s.current = append(s.current, m)
	s.QueueResize()
}

// Pop makes the manager that was current before the last Push current
// again. The root stays in place after it is popped.
func (s *StackLayout) Pop() {
	n := len(s.current)
	if n == 0 {
		warn.Printf("pop on an empty %T", s)
		return
	}
	s.current = s.current[:n-1]
}

// Add wraps w in an adaptor and adds it to the current manager. On an
// empty StackLayout the adaptor becomes the root.
func (s *StackLayout) Add(w widget.Widget) {
	if w == nil {
		warn.Printf("can't add a nil widget to a %T", s)
		return
	}
	if w.Parent() != nil {
		warn.Printf("can't add a %T which already has a parent", w)
		return
	}
	a := layout.NewAdaptor()
	if s.root == nil {
		s.Push(a)
		s.Pop()
	} else {
		s.Current().Add(a)
		if a.Parent() == nil {
			return
		}
	}
	a.SetChild(w)
}

// Remove detaches the adaptor holding w from the tree.
func (s *StackLayout) Remove(w widget.Widget) {
	a := findAdaptor(s.root, w)
	if a == nil {
		warn.Printf("%T is not a child of %T", w, s)
		return
	}
	if i := slices.Index(s.current, layout.Manager(a)); i != -1 {
		s.current = s.current[:i]
	}
	if layout.Manager(a) == s.root {
		a.SetChild(nil)
		layout.SetHost(a, nil)
		s.root = nil
		s.current = nil
		s.QueueResize()
		return
	}
	a.Parent().Remove(a)
}

func findAdaptor(m layout.Manager, w widget.Widget) *layout.Adaptor {
	if m == nil {
		return nil
	}
	if a, ok := m.(*layout.Adaptor); ok && a.Child() == w {
		return a
	}
	var found *layout.Adaptor
	m.Foreach(func(c layout.Manager) {
		if found == nil {
			found = findAdaptor(c, w)
		}
	})
	return found
}

// Forall calls fn for every widget of the tree.
func (s *StackLayout) Forall(fn func(widget.Widget)) {
	if s.root != nil {
		s.root.ForeachWidget(fn)
	}
}

// Destroy pops every manager, destroys the widgets and drops the
// tree.
func (s *StackLayout) Destroy() {
	for len(s.current) > 0 {
		s.Pop()
	}
	s.ContainerBase.Destroy()
	if s.root != nil {
		layout.SetHost(s.root, nil)
		s.root = nil
	}
	s.Release()
}

func (s *StackLayout) SetHAdjustment(adj *widget.Adjustment) {
	if changed, _ := s.SetAdjustments(adj, s.VAdjustment()); changed {
		s.Notified.Notify("hadjustment")
	}
}

func (s *StackLayout) SetVAdjustment(adj *widget.Adjustment) {
	if _, changed := s.SetAdjustments(s.HAdjustment(), adj); changed {
		s.Notified.Notify("vadjustment")
	}
}

// Measure returns the root requisition plus the border.
func (s *StackLayout) Measure() image.Point {
	bw := 2 * s.BorderWidth()
	var req image.Point
	if s.root != nil {
		req = s.root.SizeRequest()
	}
	req = req.Add(image.Pt(bw, bw))
	s.Content = req
	return req
}

// SizeAllocate lays out the tree at the allocated width and grows the
// scrollable area to the size the tree consumed.
func (s *StackLayout) SizeAllocate(r image.Rectangle) {
	s.ContainerBase.SizeAllocate(r)
	b := s.BorderWidth()
	var used image.Point
	if s.root != nil {
		used = s.root.SizeAllocate(layout.Allocation{
			Origin: image.Pt(b, b),
			Width:  max(r.Dx()-2*b, 1),
		})
	}
	s.Content = used.Add(image.Pt(2*b, 2*b))
	s.Sync(r.Size())
}

func (s *StackLayout) Realize() {
	s.Viewport.Realize()
	s.ContainerBase.Realize()
}

func (s *StackLayout) Unrealize() {
	s.ContainerBase.Unrealize()
	s.Viewport.Unrealize()
}

// Draw draws the visible part of the scrolled content.
func (s *StackLayout) Draw(dst draw.Image, off image.Point) {
	s.Composite(dst, s.Allocation().Add(off), func(surface draw.Image) {
		s.Forall(func(w widget.Widget) {
			if w.Visible() {
				w.Draw(surface, image.Point{})
			}
		})
	})
}

func (s *StackLayout) scrolled() {
	if s.Realized() {
		s.QueueDraw()
	}
}
