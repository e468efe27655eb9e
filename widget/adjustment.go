// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"

	"gioui.org/flowkit/internal/signal"
)

// Adjustment is a bounded value with step and page increments,
// typically the scroll position of a scrollable widget along one
// axis.
//
// The fields may be set directly; call EmitChanged afterwards.
type Adjustment struct {
	Value         float64
	Lower         float64
	Upper         float64
	StepIncrement float64
	PageIncrement float64
	PageSize      float64

	// Changed is emitted when the bounds change.
	Changed signal.Signal[*Adjustment]
	// ValueChanged is emitted when Value changes.
	ValueChanged signal.Signal[*Adjustment]
}

func NewAdjustment(value, lower, upper, step, page, pageSize float64) *Adjustment {
	return &Adjustment{
		Value:         value,
		Lower:         lower,
		Upper:         upper,
		StepIncrement: step,
		PageIncrement: page,
		PageSize:      pageSize,
	}
}

// MaxValue is the largest value for which a whole page fits below
// Upper.
func (a *Adjustment) MaxValue() float64 {
	return max(a.Lower, a.Upper-a.PageSize)
}

// SetValue clamps v to [Lower, MaxValue] and emits ValueChanged if
// the value changed.
func (a *Adjustment) SetValue(v float64) {
	v = min(max(v, a.Lower), a.MaxValue())
	if v == a.Value {
		return
	}
	a.Value = v
	a.ValueChanged.Emit(a)
}

// Clamp moves Value back into range after the bounds changed and
// reports whether it moved.
func (a *Adjustment) Clamp() bool {
	v := min(max(a.Value, a.Lower), a.MaxValue())
	if v == a.Value {
		return false
	}
	a.Value = v
	return true
}

func (a *Adjustment) EmitChanged() {
	a.Changed.Emit(a)
}

func (a *Adjustment) EmitValueChanged() {
	a.ValueChanged.Emit(a)
}

func (a *Adjustment) String() string {
	return fmt.Sprintf("%g in [%g, %g] page %g", a.Value, a.Lower, a.Upper, a.PageSize)
}
