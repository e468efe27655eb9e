// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"golang.org/x/image/math/fixed"

	"gioui.org/flowkit/text"
	"gioui.org/flowkit/unit"
)

// Theme holds the text shaper and the default text style and colors
// of the widgets created from it.
type Theme struct {
	Shaper   *text.Shaper
	Metric   unit.Metric
	Font     text.Font
	TextSize unit.Sp
	Fg       color.NRGBA
	Bg       color.NRGBA
}

// NewTheme returns a theme measuring text with the given fonts.
func NewTheme(fontCollection []text.FontFace) *Theme {
	return &Theme{
		Shaper:   text.NewShaper(fontCollection),
		TextSize: 14,
		Fg:       color.NRGBA{A: 0xff},
		Bg:       color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}

func (th *Theme) params() text.Parameters {
	return text.Parameters{
		Font:    th.Font,
		PxPerEm: fixed.I(th.Metric.Sp(th.TextSize)),
	}
}
