// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"gioui.org/flowkit/internal/warn"
	"gioui.org/flowkit/text"
)

// Label displays a text. A wrapping label breaks its text into lines
// that fit the width it is allocated; its natural size is still the
// size of the unwrapped text.
type Label struct {
	Base
	// Color of the text. The zero value uses the theme foreground.
	Color color.NRGBA

	theme          *Theme
	text           string
	wrap           bool
	xpad, ypad     int
	xalign, yalign float32
}

// NewLabel returns a visible, centered label.
func NewLabel(th *Theme, txt string) *Label {
	l := &Label{theme: th, text: txt, xalign: 0.5, yalign: 0.5}
	l.Wrapper = l
	return l
}

func (l *Label) Text() string {
	return l.text
}

func (l *Label) SetText(txt string) {
	if txt == l.text {
		return
	}
	l.text = txt
	l.Notified.Notify("label")
	l.QueueResize()
}

func (l *Label) LineWrap() bool {
	return l.wrap
}

func (l *Label) SetLineWrap(wrap bool) {
	if wrap == l.wrap {
		return
	}
	l.wrap = wrap
	l.Notified.Notify("wrap")
	l.QueueResize()
}

func (l *Label) Alignment() (x, y float32) {
	return l.xalign, l.yalign
}

// SetAlignment positions the text inside the allocation. 0 aligns
// to the start, 1 to the end.
func (l *Label) SetAlignment(x, y float32) {
	x, y = clamp01(x), clamp01(y)
	l.Notified.Freeze()
	if x != l.xalign {
		l.xalign = x
		l.Notified.Notify("xalign")
	}
	if y != l.yalign {
		l.yalign = y
		l.Notified.Notify("yalign")
	}
	l.Notified.Thaw()
	l.QueueDraw()
}

func (l *Label) Padding() (x, y int) {
	return l.xpad, l.ypad
}

func (l *Label) SetPadding(x, y int) {
	if x < 0 || y < 0 {
		warn.Printf("negative label padding %d,%d", x, y)
		x, y = max(x, 0), max(y, 0)
	}
	l.Notified.Freeze()
	if x != l.xpad {
		l.xpad = x
		l.Notified.Notify("xpad")
	}
	if y != l.ypad {
		l.ypad = y
		l.Notified.Notify("ypad")
	}
	l.Notified.Thaw()
	l.QueueResize()
}

// Measure returns the unwrapped text extents plus padding.
func (l *Label) Measure() image.Point {
	sz := l.theme.Shaper.Layout(l.theme.params(), 0, l.text).Size()
	return sz.Add(image.Pt(2*l.xpad, 2*l.ypad))
}

// WrapSize returns the extents of the text wrapped to fit width,
// padding included. The result may be wider than width when a single
// glyph does not fit.
func (l *Label) WrapSize(width int) image.Point {
	sz := l.theme.Shaper.Layout(l.theme.params(), l.textWidth(width), l.text).Size()
	return sz.Add(image.Pt(2*l.xpad, 2*l.ypad))
}

func (l *Label) textWidth(width int) int {
	return max(width-2*l.xpad, 1)
}

func (l *Label) Draw(dst draw.Image, off image.Point) {
	r := l.Allocation().Add(off)
	maxWidth := 0
	if l.wrap {
		maxWidth = l.textWidth(r.Dx())
	}
	lt := l.theme.Shaper.Layout(l.theme.params(), maxWidth, l.text)
	col := l.Color
	if col == (color.NRGBA{}) {
		col = l.theme.Fg
	}
	inner := image.Rectangle{
		Min: r.Min.Add(image.Pt(l.xpad, l.ypad)),
		Max: r.Max.Sub(image.Pt(l.xpad, l.ypad)),
	}
	drawText(dst, l.theme, lt, inner, l.xalign, l.yalign, col)
}

// drawText draws the lines of lt aligned inside r.
func drawText(dst draw.Image, th *Theme, lt text.Layout, r image.Rectangle, xalign, yalign float32, col color.NRGBA) {
	face, err := th.Shaper.Face(th.params())
	if err != nil {
		warn.Printf("%v", err)
		return
	}
	sz := lt.Size()
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
	}
	y := fixed.I(r.Min.Y + int(yalign*float32(r.Dy()-sz.Y)))
	var prevDesc fixed.Int26_6
	for _, line := range lt.Lines {
		y += prevDesc + line.Ascent
		prevDesc = line.Descent
		x := r.Min.X + int(xalign*float32(r.Dx()-line.Width.Ceil()))
		d.Dot = fixed.Point26_6{X: fixed.I(x), Y: y}
		d.DrawString(line.Text)
	}
}

func clamp01(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
