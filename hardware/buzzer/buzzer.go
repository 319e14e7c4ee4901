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

// Package buzzer derives a pitch in Hz from the interval between pulses
// observed on the TMS1100's R0 pin across a frame, and reports it (or
// silence) once per frame via Sync.
package buzzer

// Frontend receives the pitch decision made at the end of a frame.
type Frontend interface {
	Enable(pitch int)
	Disable()
}

// audible is the inclusive-exclusive pitch range the real Microvision
// buzzer hardware can usefully reproduce.
const (
	minAudibleHz = 50
	maxAudibleHz = 2400
)

// Buzzer accumulates pulse timestamps across a frame and extracts a pitch
// from them at Sync time.
type Buzzer struct {
	PrevPulse  bool
	PulseCount int
	Start      int64 // µs
	End        int64 // µs
}

// New returns a freshly reset Buzzer.
func New() *Buzzer {
	return &Buzzer{}
}

// Clock observes the buzzer pulse pin for one tick at simulated time tNow
// (in microseconds). On a rising edge it records the first pulse's
// timestamp as Start and every subsequent one as End.
func (b *Buzzer) Clock(pulse bool, tNow int64) {
	if pulse && !b.PrevPulse {
		if b.PulseCount == 0 {
			b.Start = tNow
		} else {
			b.End = tNow
		}
		b.PulseCount++
	}

	b.PrevPulse = pulse
}

// Sync reports the pitch derived from this frame's pulses to frontend, then
// clears the pulse count for the next frame. Fewer than two pulses, or a
// zero-length period, is reported as silence rather than risking a
// division by zero.
func (b *Buzzer) Sync(frontend Frontend) {
	if b.PulseCount >= 2 {
		period := b.End - b.Start
		if period > 0 {
			pitch := int((int64(b.PulseCount-1) * 1_000_000) / period)
			if pitch >= minAudibleHz && pitch < maxAudibleHz {
				frontend.Enable(pitch)
			} else {
				frontend.Disable()
			}
		} else {
			frontend.Disable()
		}
	} else {
		frontend.Disable()
	}

	b.PulseCount = 0
}
