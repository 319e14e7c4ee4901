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

package lcd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prodordev/milton/hardware/lcd"
)

type fakeSink struct {
	pixels map[[2]int]bool
}

func newFakeSink() *fakeSink {
	return &fakeSink{pixels: make(map[[2]int]bool)}
}

func (f *fakeSink) EnablePixel(x, y int) {
	f.pixels[[2]int{x, y}] = true
}

// shiftNibble drives one nibble into the current latch slot: notClock low
// while data is presented, then a notClock rising edge to advance the
// shift-register position.
func shiftNibble(l *lcd.LCD, data byte, sink lcd.PixelSink) {
	l.Clock(data, false, false, sink)
	l.Clock(0, false, true, sink)
}

func TestLCDLoadsRowAndColumnLatchesAndEmitsPixels(t *testing.T) {
	l := lcd.New()
	sink := newFakeSink()

	for _, nibble := range []byte{0x1, 0x0, 0x0, 0x0} {
		shiftNibble(l, nibble, sink)
	}
	for _, nibble := range []byte{0xf, 0xf, 0xf, 0xf} {
		shiftNibble(l, nibble, sink)
	}

	l.Clock(0, true, true, sink)

	assert.Equal(t, uint16(0x1000), l.Row)
	assert.Equal(t, uint16(0xffff), l.Col)

	for x := 0; x < 16; x++ {
		assert.True(t, sink.pixels[[2]int{x, 12}], "expected pixel (%d,12) to be enabled", x)
	}
	assert.Len(t, sink.pixels, 16)
}

func TestLCDSuppressesEmissionWhenRowOrColumnIsZero(t *testing.T) {
	l := lcd.New()
	sink := newFakeSink()

	// Only load row latches; column latches stay zero.
	for _, nibble := range []byte{0x1, 0x0, 0x0, 0x0} {
		shiftNibble(l, nibble, sink)
	}

	l.Clock(0, true, true, sink)

	assert.Empty(t, sink.pixels)
}

func TestCounterResetsOnPulseRegardlessOfClock(t *testing.T) {
	l := lcd.New()
	sink := newFakeSink()

	shiftNibble(l, 0x3, sink)
	shiftNibble(l, 0x3, sink)
	assert.Equal(t, byte(2), l.Counter)

	l.Clock(0, true, false, sink)
	assert.Equal(t, byte(0), l.Counter)
}

func TestCounterWrapsAfterEightAdvances(t *testing.T) {
	l := lcd.New()
	sink := newFakeSink()

	for i := 0; i < 8; i++ {
		shiftNibble(l, 0x0, sink)
	}

	assert.Equal(t, byte(0), l.Counter)
}
