// This file is part of Milton.
//
// Milton is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Milton is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Milton.  If not, see <https://www.gnu.org/licenses/>.

// Package rotary emulates the RC charge-timing behaviour of the
// Microvision's rotary controller/paddle: a charge pulse starts a timer
// whose end time depends on cartridge-specific scale/offset constants and
// the controller's current turn position.
package rotary

// Percentage is a turn position in [0,100]. Values above 100 passed to
// NewPercentage are clamped rather than rejected, since the turn() source
// is an external, untrusted collaborator read once per tick and a
// constructor error here would have no sensible recovery path for the
// console harness.
type Percentage struct {
	value int
}

// NewPercentage returns a Percentage, clamping v to 100 if it exceeds it.
func NewPercentage(v int) Percentage {
	if v > 100 {
		v = 100
	}
	if v < 0 {
		v = 0
	}
	return Percentage{value: v}
}

// Int returns the underlying percentage value.
func (p Percentage) Int() int {
	return p.value
}

// Rotary is the controller's observable state.
type Rotary struct {
	PrevCharge bool
	ChargeEnd  int64 // µs
}

// New returns a freshly reset Rotary.
func New() *Rotary {
	return &Rotary{}
}

// Clock observes the charge pulse pin for one tick at simulated time tNow
// (µs). On a rising edge it computes the time at which the RC charge will
// have completed, using offset/scale (cartridge-specific) and the current
// turn position.
func (r *Rotary) Clock(chargePulse bool, tNow int64, offset, scale int, turn Percentage) {
	if chargePulse && !r.PrevCharge {
		r.ChargeEnd = tNow + int64(offset) + int64(scale)*int64(turn.Int())/10
	}

	r.PrevCharge = chargePulse
}

// TimedOut reports whether the charge latched by the most recent rising
// edge has finished, as observed at simulated time tNow. This is the signal
// the console harness folds into the CPU's K input bit 3 when the rotary
// feature is enabled.
func (r *Rotary) TimedOut(tNow int64) bool {
	return r.PrevCharge && r.ChargeEnd < tNow
}
