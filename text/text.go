// SPDX-License-Identifier: Unlicense OR MIT

/*
Package text measures and word-wraps strings for the widgets in
gioui.org/flowkit/widget.

A Shaper holds a collection of font faces and lays out strings into
lines at a given pixel size and maximum width. Layouts are cached, so
repeated measurements of the same label during request and allocation
are cheap.
*/
package text

import (
	"image"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// A Line contains the measurements of a line of text.
type Line struct {
	Text string
	// Width is the width of the line, not counting trailing
	// white space.
	Width fixed.Int26_6
	// Ascent is the height above the baseline.
	Ascent fixed.Int26_6
	// Descent is the height below the baseline, including
	// the line gap.
	Descent fixed.Int26_6
}

// A Layout contains the measurements of a body of text as
// a list of Lines.
type Layout struct {
	Lines []Line
}

// Parameters specify how a string is measured.
type Parameters struct {
	Font Font
	// PxPerEm is the font size in pixels.
	PxPerEm fixed.Int26_6
}

// Style is the font style.
type Style int

// Weight is a font weight, relative to Normal.
type Weight int

// Typeface identifies a font family. The empty string denotes the
// first face of a Shaper's collection.
type Typeface string

// Font specify a particular typeface and style.
type Font struct {
	Typeface Typeface
	Style    Style
	Weight   Weight
}

// FontFace pairs a Font with its parsed face.
type FontFace struct {
	Font Font
	Face *sfnt.Font
}

const (
	Regular Style = iota
	Italic
)

const (
	Normal Weight = 0
	Medium Weight = 100
	Bold   Weight = 300
)

// Size returns the pixel extents of the layout: the widest line
// and the sum of the line heights.
func (l Layout) Size() image.Point {
	if len(l.Lines) == 0 {
		return image.Point{}
	}
	var width fixed.Int26_6
	var h int
	var prevDesc fixed.Int26_6
	for _, line := range l.Lines {
		h += (prevDesc + line.Ascent).Ceil()
		prevDesc = line.Descent
		if line.Width > width {
			width = line.Width
		}
	}
	h += prevDesc.Ceil()
	return image.Point{X: width.Ceil(), Y: h}
}

// Baseline returns the distance from the top of the layout to the
// baseline of its first line.
func (l Layout) Baseline() int {
	if len(l.Lines) == 0 {
		return 0
	}
	return l.Lines[0].Ascent.Ceil()
}

func (s Style) String() string {
	switch s {
	case Regular:
		return "Regular"
	case Italic:
		return "Italic"
	default:
		panic("invalid Style")
	}
}

func (w Weight) String() string {
	switch w {
	case Normal:
		return "Normal"
	case Medium:
		return "Medium"
	case Bold:
		return "Bold"
	default:
		panic("invalid Weight")
	}
}
