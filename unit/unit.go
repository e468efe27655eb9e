// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit implements device independent units.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device.

Scaled pixels, or sp, is the unit for text sizes. An sp is like dp with
text scaling applied.

Layout managers work in whole device pixels; widgets convert their
dp and sp values through a Metric before reporting a requisition.
*/
package unit

import (
	"fmt"
	"math"
)

// Metric converts Values to device-dependent pixels, px. The zero
// value represents a 1-to-1 scale from dp, sp to pixels.
type Metric struct {
	// PxPerDp is the device-dependent pixels per dp.
	PxPerDp float32
	// PxPerSp is the device-dependent pixels per sp.
	PxPerSp float32
}

type (
	// Dp represents device independent pixels. 1 dp will
	// have the same apparent size across platforms and
	// display resolutions.
	Dp float32
	// Sp is like UnitDp but for font sizes.
	Sp float32
)

// Dp converts v to pixels, rounded to the nearest integer value.
func (c Metric) Dp(v Dp) int {
	return int(math.Round(float64(nonZero(c.PxPerDp)) * float64(v)))
}

// Sp converts v to pixels, rounded to the nearest integer value.
func (c Metric) Sp(v Sp) int {
	return int(math.Round(float64(nonZero(c.PxPerSp)) * float64(v)))
}

func (v Dp) String() string {
	return fmt.Sprintf("%gdp", float32(v))
}

func (v Sp) String() string {
	return fmt.Sprintf("%gsp", float32(v))
}

func nonZero(v float32) float32 {
	if v == 0. {
		return 1
	}
	return v
}
