// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"golang.org/x/exp/slices"
	"golang.org/x/image/draw"

	"gioui.org/flowkit/internal/warn"
)

// Orientation is the main axis of a Box.
type Orientation uint8

// PackType selects the end of a Box a child is packed against.
type PackType uint8

const (
	Horizontal Orientation = iota
	Vertical
)

const (
	PackStart PackType = iota
	PackEnd
)

// BoxChild holds the packing parameters of a Box child.
type BoxChild struct {
	Widget Widget
	// Expand children share the extra space along the main axis.
	Expand bool
	// Fill children grow into their share instead of being
	// centered in it.
	Fill bool
	// Padding is added on both sides of the child along the main
	// axis.
	Padding int
	Pack    PackType
}

// Box lays out its children in a single row or column.
type Box struct {
	ContainerBase
	Orientation Orientation

	homogeneous bool
	spacing     int
	children    []*BoxChild
}

// NewHBox returns a horizontal box. Homogeneous boxes give every
// child the same size; spacing is the gap between children.
func NewHBox(homogeneous bool, spacing int) *Box {
	return newBox(Horizontal, homogeneous, spacing)
}

// NewVBox returns a vertical box.
func NewVBox(homogeneous bool, spacing int) *Box {
	return newBox(Vertical, homogeneous, spacing)
}

func newBox(o Orientation, homogeneous bool, spacing int) *Box {
	b := &Box{Orientation: o, homogeneous: homogeneous, spacing: max(spacing, 0)}
	b.Wrapper = b
	return b
}

func (b *Box) Homogeneous() bool {
	return b.homogeneous
}

func (b *Box) SetHomogeneous(homogeneous bool) {
	if homogeneous == b.homogeneous {
		return
	}
	b.homogeneous = homogeneous
	b.Notified.Notify("homogeneous")
	b.QueueResize()
}

func (b *Box) Spacing() int {
	return b.spacing
}

func (b *Box) SetSpacing(spacing int) {
	spacing = max(spacing, 0)
	if spacing == b.spacing {
		return
	}
	b.spacing = spacing
	b.Notified.Notify("spacing")
	b.QueueResize()
}

// Add packs w at the start, expanding and filling.
func (b *Box) Add(w Widget) {
	b.PackStart(w, true, true, 0)
}

func (b *Box) PackStart(w Widget, expand, fill bool, padding int) {
	b.pack(&BoxChild{Widget: w, Expand: expand, Fill: fill, Padding: max(padding, 0), Pack: PackStart})
}

func (b *Box) PackEnd(w Widget, expand, fill bool, padding int) {
	b.pack(&BoxChild{Widget: w, Expand: expand, Fill: fill, Padding: max(padding, 0), Pack: PackEnd})
}

func (b *Box) pack(c *BoxChild) {
	if c.Widget == nil {
		warn.Printf("can't pack a nil widget into a %T", b)
		return
	}
	if c.Widget.Parent() != nil {
		warn.Printf("can't pack a %T which already has a parent", c.Widget)
		return
	}
	b.children = append(b.children, c)
	c.Widget.SetParent(b)
}

func (b *Box) Remove(w Widget) {
	i := slices.IndexFunc(b.children, func(c *BoxChild) bool { return c.Widget == w })
	if i == -1 {
		warn.Printf("%T is not a child of %T", w, b)
		return
	}
	b.children = slices.Delete(b.children, i, i+1)
	w.Unparent()
}

func (b *Box) Forall(fn func(Widget)) {
	for _, c := range slices.Clone(b.children) {
		fn(c.Widget)
	}
}

// Children returns the packing records in packing order.
func (b *Box) Children() []*BoxChild {
	return b.children
}

// axes splits p into its main and cross axis components.
func (b *Box) axes(p image.Point) (main, cross int) {
	if b.Orientation == Horizontal {
		return p.X, p.Y
	}
	return p.Y, p.X
}

func (b *Box) point(main, cross int) image.Point {
	if b.Orientation == Horizontal {
		return image.Pt(main, cross)
	}
	return image.Pt(cross, main)
}

func (b *Box) Measure() image.Point {
	var main, cross, n int
	for _, c := range b.children {
		if !c.Widget.Visible() {
			continue
		}
		m, x := b.axes(c.Widget.SizeRequest())
		m += 2 * c.Padding
		if b.homogeneous {
			main = max(main, m)
		} else {
			main += m
		}
		cross = max(cross, x)
		n++
	}
	if n > 0 {
		if b.homogeneous {
			main *= n
		}
		main += (n - 1) * b.spacing
	}
	bw := 2 * b.BorderWidth()
	return b.point(main, cross).Add(image.Pt(bw, bw))
}

func (b *Box) SizeAllocate(r image.Rectangle) {
	b.Base.SizeAllocate(r)
	var visible []*BoxChild
	nexpand := 0
	natural := 0
	for _, c := range b.children {
		if !c.Widget.Visible() {
			continue
		}
		visible = append(visible, c)
		if c.Expand {
			nexpand++
		}
		m, _ := b.axes(c.Widget.ChildRequisition())
		natural += m + 2*c.Padding
	}
	if len(visible) == 0 {
		return
	}
	bw := b.BorderWidth()
	inner := r.Inset(bw)
	size, cross := b.axes(inner.Size())
	avail := size - (len(visible)-1)*b.spacing
	extra := avail - natural
	start, end := 0, size
	for i, pack := range []PackType{PackStart, PackEnd} {
		// Pack end children are placed from the end in reverse.
		for _, c := range visible {
			if c.Pack != pack {
				continue
			}
			var slot int
			m, _ := b.axes(c.Widget.ChildRequisition())
			switch {
			case b.homogeneous:
				slot = max(avail/len(visible), 0)
			case c.Expand && nexpand > 0:
				slot = m + 2*c.Padding + extra/nexpand
			default:
				slot = m + 2*c.Padding
			}
			slot = max(slot, 0)
			childSize := max(slot-2*c.Padding, 0)
			off := c.Padding
			if !c.Fill && childSize > m {
				off += (childSize - m) / 2
				childSize = m
			}
			var pos int
			if i == 0 {
				pos = start + off
				start += slot + b.spacing
			} else {
				pos = end - slot + off
				end -= slot + b.spacing
			}
			o := inner.Min.Add(b.point(pos, 0))
			c.Widget.SizeAllocate(image.Rectangle{Min: o, Max: o.Add(b.point(childSize, cross))})
		}
	}
}

func (b *Box) Draw(dst draw.Image, off image.Point) {
	drawChildren(b, dst, off)
}
