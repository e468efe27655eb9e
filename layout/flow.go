// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"

	"golang.org/x/exp/slices"

	"gioui.org/flowkit/internal/warn"
)

// composite implements the ordered child list shared by Flow and
// Stack.
type composite struct {
	Embed
	children []Manager
}

// Flow places its children left to right, starting a new row when
// the next child does not fit the available width.
type Flow struct {
	composite
}

// Stack places its children top to bottom, each given the full
// available width.
type Stack struct {
	composite
}

func NewFlow() *Flow {
	f := new(Flow)
	f.Wrapper = f
	return f
}

func NewStack() *Stack {
	s := new(Stack)
	s.Wrapper = s
	return s
}

// Add appends child. A child that already has a parent is refused.
func (c *composite) Add(child Manager) {
	if !c.attach(child) {
		return
	}
	c.children = append(c.children, child)
	c.Added.Emit(child)
	c.Wrapper.QueueResize()
}

func (c *composite) Remove(child Manager) {
	i := slices.Index(c.children, child)
	if i == -1 {
		warn.Printf("%T is not a child of %T", child, c.Wrapper)
		return
	}
	c.children = slices.Delete(c.children, i, i+1)
	c.detach(child)
	c.Removed.Emit(child)
	c.Wrapper.QueueResize()
}

func (c *composite) Foreach(fn func(Manager)) {
	for _, child := range slices.Clone(c.children) {
		fn(child)
	}
}

func (c *composite) childProperties() []childProperty {
	return compositeChildProperties
}

// reorder moves child to position pos. Positions out of range move
// it to the end.
func (c *composite) reorder(child Manager, pos int) {
	i := slices.Index(c.children, child)
	if i == -1 {
		return
	}
	if pos < 0 || pos >= len(c.children) {
		pos = len(c.children) - 1
	}
	if pos == i {
		return
	}
	c.children = slices.Delete(c.children, i, i+1)
	c.children = slices.Insert(c.children, pos, child)
	child.embed().ChildNotified.Notify("position")
	c.Wrapper.QueueResize()
}

func (c *composite) position(child Manager) int {
	return slices.Index(c.children, child)
}

// SizeAllocate fills rows left to right. A child wider than the
// whole row is placed alone in its row and overflows.
func (f *Flow) SizeAllocate(a Allocation) image.Point {
	b := f.border
	avail := -1
	if a.Width > 0 {
		avail = max(a.Width-b, 1)
	}
	rowWidth, rowHeight := b, 0
	size := image.Pt(0, b)
	for _, child := range f.children {
		req := child.Requisition()
		if avail > 0 && rowWidth > b && rowWidth+req.X > avail {
			size.X = max(size.X, rowWidth+b)
			size.Y += rowHeight + b
			rowWidth, rowHeight = b, 0
		}
		width := 0
		if avail > 0 {
			width = max(avail-rowWidth, 1)
		}
		got := child.SizeAllocate(Allocation{
			Origin: a.Origin.Add(image.Pt(rowWidth, size.Y)),
			Width:  width,
		})
		rowWidth += got.X
		rowHeight = max(rowHeight, got.Y)
	}
	size.X = max(size.X, rowWidth+b)
	size.Y += rowHeight + b
	return size
}

// SizeAllocate stacks the children, each at the full width minus the
// borders.
func (s *Stack) SizeAllocate(a Allocation) image.Point {
	b := s.border
	width := 0
	if a.Width > 0 {
		width = max(a.Width-2*b, 1)
	}
	size := image.Pt(0, b)
	for _, child := range s.children {
		got := child.SizeAllocate(Allocation{
			Origin: a.Origin.Add(image.Pt(b, size.Y)),
			Width:  width,
		})
		size.X = max(size.X, got.X)
		size.Y += got.Y + b
	}
	if len(s.children) == 0 {
		size.Y += b
	}
	size.X += 2 * b
	return size
}
