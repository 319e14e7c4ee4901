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

package rotary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prodordev/milton/hardware/rotary"
)

func TestNewPercentageClampsAboveOneHundred(t *testing.T) {
	assert.Equal(t, 100, rotary.NewPercentage(150).Int())
	assert.Equal(t, 0, rotary.NewPercentage(-5).Int())
	assert.Equal(t, 50, rotary.NewPercentage(50).Int())
}

// TestChargeEndComputation exercises scenario S6.
func TestChargeEndComputation(t *testing.T) {
	r := rotary.New()
	turn := rotary.NewPercentage(50)

	r.Clock(true, 1000, 600, 65, turn)

	assert.Equal(t, int64(1925), r.ChargeEnd)
	assert.False(t, r.TimedOut(1920))
	assert.True(t, r.TimedOut(1930))
}

func TestChargeEndOnlyUpdatesOnRisingEdge(t *testing.T) {
	r := rotary.New()
	turn := rotary.NewPercentage(50)

	r.Clock(true, 1000, 600, 65, turn)
	first := r.ChargeEnd

	// Held high (no edge) at a much later time with a different turn value
	// must not recompute ChargeEnd.
	r.Clock(true, 5000, 600, 65, rotary.NewPercentage(0))
	assert.Equal(t, first, r.ChargeEnd)
}

func TestTimedOutRequiresLatchedCharge(t *testing.T) {
	r := rotary.New()
	assert.False(t, r.TimedOut(1_000_000))
}
