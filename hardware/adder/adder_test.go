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

package adder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prodordev/milton/hardware/adder"
)

func TestResetSetsStatusTrue(t *testing.T) {
	a := adder.Adder{}
	a.P, a.N, a.CarryIn = 5, 5, true
	a.Reset()

	assert.Equal(t, byte(0), a.P)
	assert.Equal(t, byte(0), a.N)
	assert.False(t, a.CarryIn)
	assert.True(t, a.StatusOut)
}

func TestClockAddsWithCarryIn(t *testing.T) {
	a := adder.Adder{}
	a.Reset()
	a.P, a.N, a.CarryIn = 0xf, 0, true

	a.Clock(false, false)

	assert.Equal(t, byte(0), a.Output)
	assert.True(t, a.CarryOut)
}

func TestClockWrapsTo4Bits(t *testing.T) {
	a := adder.Adder{}
	a.Reset()
	a.P, a.N = 0x9, 0x9

	a.Clock(false, false)

	assert.Equal(t, byte(0x2), a.Output)
	assert.True(t, a.CarryOut)
}

func TestClockNoCarry(t *testing.T) {
	a := adder.Adder{}
	a.Reset()
	a.P, a.N = 0x3, 0x4

	a.Clock(false, false)

	assert.Equal(t, byte(0x7), a.Output)
	assert.False(t, a.CarryOut)
}

func TestCarryToStatusOnlyNarrows(t *testing.T) {
	a := adder.Adder{}
	a.Reset()
	assert.True(t, a.StatusOut)

	a.P, a.N = 0x1, 0x1 // no carry
	a.Clock(true, false)
	assert.False(t, a.StatusOut)
}

func TestCarryToStatusHoldsWhenCarried(t *testing.T) {
	a := adder.Adder{}
	a.Reset()

	a.P, a.N = 0xf, 0xf // carries
	a.Clock(true, false)
	assert.True(t, a.StatusOut)
}

func TestCompareToStatusClearsOnEqual(t *testing.T) {
	a := adder.Adder{}
	a.Reset()

	a.P, a.N = 0x4, 0x4
	a.Clock(false, true)
	assert.False(t, a.StatusOut)
}

func TestCompareToStatusHoldsOnNonEqual(t *testing.T) {
	a := adder.Adder{}
	a.Reset()

	a.P, a.N = 0x4, 0x5
	a.Clock(false, true)
	assert.True(t, a.StatusOut)
}

func TestStatusOnlyEverNarrows(t *testing.T) {
	a := adder.Adder{}
	a.Reset()

	// First clock keeps status true (carry present).
	a.P, a.N = 0xf, 0xf
	a.Clock(true, false)
	assert.True(t, a.StatusOut)

	// Second clock, without Reset, clears it and it must stay cleared.
	a.P, a.N = 0x1, 0x1
	a.Clock(true, false)
	assert.False(t, a.StatusOut)

	a.P, a.N = 0xf, 0xf
	a.Clock(true, false)
	assert.False(t, a.StatusOut)
}
