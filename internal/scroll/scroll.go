// SPDX-License-Identifier: Unlicense OR MIT

// Package scroll implements the scrolling state shared by the
// scrollable hosts: a pair of adjustments bound to the content size,
// and the backing surface the content is drawn to.
package scroll

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"gioui.org/flowkit/internal/signal"
	"gioui.org/flowkit/widget"
)

// defaultSize is the content size before the first allocation.
const defaultSize = 100

// Viewport tracks the scroll position of content larger than its
// allocation.
type Viewport struct {
	// Content is the size of the scrollable area. It is never
	// smaller than the allocation after Sync.
	Content image.Point

	hadj, vadj   *widget.Adjustment
	hconn, vconn signal.Handle
	onScroll     func()
	surface      *image.RGBA
}

// Init prepares v for use. onScroll runs whenever an adjustment
// value changes.
func (v *Viewport) Init(onScroll func()) {
	v.Content = image.Pt(defaultSize, defaultSize)
	v.onScroll = onScroll
}

func (v *Viewport) HAdjustment() *widget.Adjustment {
	return v.hadj
}

func (v *Viewport) VAdjustment() *widget.Adjustment {
	return v.vadj
}

// SetAdjustments binds h and vert to the content. A nil adjustment is
// replaced by a new zero adjustment. It reports which adjustments
// were replaced.
func (v *Viewport) SetAdjustments(h, vert *widget.Adjustment) (hChanged, vChanged bool) {
	if h == nil {
		h = widget.NewAdjustment(0, 0, 0, 0, 0, 0)
	}
	if vert == nil {
		vert = widget.NewAdjustment(0, 0, 0, 0, 0, 0)
	}
	if h != v.hadj {
		v.hconn = v.bind(&v.hadj, v.hconn, h, float64(v.Content.X))
		hChanged = true
	}
	if vert != v.vadj {
		v.vconn = v.bind(&v.vadj, v.vconn, vert, float64(v.Content.Y))
		vChanged = true
	}
	if (hChanged || vChanged) && v.onScroll != nil {
		v.onScroll()
	}
	return hChanged, vChanged
}

func (v *Viewport) bind(slot **widget.Adjustment, conn signal.Handle, adj *widget.Adjustment, upper float64) signal.Handle {
	if old := *slot; old != nil {
		old.ValueChanged.Disconnect(conn)
	}
	*slot = adj
	h := adj.ValueChanged.Connect(func(*widget.Adjustment) {
		if v.onScroll != nil {
			v.onScroll()
		}
	})
	setUpper(adj, upper, false)
	return h
}

// Release disconnects v from its adjustments.
func (v *Viewport) Release() {
	if v.hadj != nil {
		v.hadj.ValueChanged.Disconnect(v.hconn)
	}
	if v.vadj != nil {
		v.vadj.ValueChanged.Disconnect(v.vconn)
	}
	v.hadj, v.vadj = nil, nil
	v.surface = nil
}

// Sync updates the adjustments for an allocation of size page. The
// content is grown to at least the page size.
func (v *Viewport) Sync(page image.Point) {
	v.Content.X = max(v.Content.X, page.X)
	v.Content.Y = max(v.Content.Y, page.Y)
	if v.surface != nil {
		v.Realize()
	}
	syncAxis(v.hadj, float64(page.X), float64(v.Content.X))
	syncAxis(v.vadj, float64(page.Y), float64(v.Content.Y))
}

func syncAxis(adj *widget.Adjustment, page, upper float64) {
	if adj == nil {
		return
	}
	adj.PageSize = page
	adj.PageIncrement = page * 0.9
	adj.StepIncrement = page * 0.1
	adj.Lower = 0
	setUpper(adj, upper, true)
}

// setUpper sets the upper bound of adj and pulls its value back into
// [lower, upper-page].
func setUpper(adj *widget.Adjustment, upper float64, alwaysEmit bool) {
	changed := upper != adj.Upper
	adj.Upper = upper
	valueChanged := adj.Clamp()
	if changed || alwaysEmit {
		adj.EmitChanged()
	}
	if valueChanged {
		adj.EmitValueChanged()
	}
}

// Offset returns the position of the content relative to the
// allocation.
func (v *Viewport) Offset() image.Point {
	var off image.Point
	if v.hadj != nil {
		off.X = -int(math.Round(v.hadj.Value))
	}
	if v.vadj != nil {
		off.Y = -int(math.Round(v.vadj.Value))
	}
	return off
}

// Realize creates or resizes the backing surface to the content
// size.
func (v *Viewport) Realize() {
	r := image.Rectangle{Max: v.Content}
	if v.surface == nil || v.surface.Bounds() != r {
		v.surface = image.NewRGBA(r)
	}
}

func (v *Viewport) Unrealize() {
	v.surface = nil
}

// Surface returns the backing surface, or nil while unrealized.
func (v *Viewport) Surface() *image.RGBA {
	return v.surface
}

// Composite paints the content to the backing surface and copies
// the part visible at the current scroll offset into r of dst.
func (v *Viewport) Composite(dst draw.Image, r image.Rectangle, paint func(surface draw.Image)) {
	if v.surface == nil {
		return
	}
	draw.Draw(v.surface, v.surface.Bounds(), image.Transparent, image.Point{}, draw.Src)
	paint(v.surface)
	sr := image.Rectangle{Min: v.Offset().Mul(-1)}
	sr.Max = sr.Min.Add(r.Size())
	sr = sr.Intersect(v.surface.Bounds())
	if sr.Empty() {
		return
	}
	draw.Copy(dst, r.Min, v.surface, sr, draw.Over, nil)
}
