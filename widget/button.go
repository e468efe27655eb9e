// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"gioui.org/flowkit/unit"
)

// Button is a leaf widget showing a caption inside an outline.
type Button struct {
	Base
	// Inset between the outline and the caption.
	Inset unit.Dp

	theme   *Theme
	caption string
}

// Fixed is a leaf widget with a constant natural size, filled with
// Color when drawn.
type Fixed struct {
	Base
	Color color.NRGBA
	size  image.Point
}

func NewButton(th *Theme, caption string) *Button {
	b := &Button{theme: th, caption: caption, Inset: 6}
	b.Wrapper = b
	return b
}

func (b *Button) Caption() string {
	return b.caption
}

func (b *Button) SetCaption(caption string) {
	if caption == b.caption {
		return
	}
	b.caption = caption
	b.Notified.Notify("label")
	b.QueueResize()
}

func (b *Button) Measure() image.Point {
	sz := b.theme.Shaper.Layout(b.theme.params(), 0, b.caption).Size()
	in := b.theme.Metric.Dp(b.Inset) + 1
	return sz.Add(image.Pt(2*in, 2*in))
}

func (b *Button) Draw(dst draw.Image, off image.Point) {
	r := b.Allocation().Add(off)
	if r.Empty() {
		return
	}
	fg := image.NewUniform(b.theme.Fg)
	for _, edge := range []image.Rectangle{
		{Min: r.Min, Max: image.Pt(r.Max.X, r.Min.Y+1)},
		{Min: image.Pt(r.Min.X, r.Max.Y-1), Max: r.Max},
		{Min: r.Min, Max: image.Pt(r.Min.X+1, r.Max.Y)},
		{Min: image.Pt(r.Max.X-1, r.Min.Y), Max: r.Max},
	} {
		draw.Draw(dst, edge, fg, image.Point{}, draw.Src)
	}
	lt := b.theme.Shaper.Layout(b.theme.params(), 0, b.caption)
	in := b.theme.Metric.Dp(b.Inset) + 1
	drawText(dst, b.theme, lt, r.Inset(in), 0.5, 0.5, b.theme.Fg)
}

// NewFixed returns a widget of natural size (w, h).
func NewFixed(w, h int) *Fixed {
	f := &Fixed{size: image.Pt(w, h)}
	f.Wrapper = f
	return f
}

func (f *Fixed) Measure() image.Point {
	return f.size
}

// SetSize changes the natural size.
func (f *Fixed) SetSize(w, h int) {
	f.size = image.Pt(w, h)
	f.QueueResize()
}

func (f *Fixed) Draw(dst draw.Image, off image.Point) {
	if f.Color.A == 0 {
		return
	}
	draw.Draw(dst, f.Allocation().Add(off), image.NewUniform(f.Color), image.Point{}, draw.Over)
}
