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

// Package console is the top-level harness: it owns the TMS1100, the LCD
// controller, the buzzer and the rotary controller, and wires their pins
// together every tick according to a fixed, single-threaded schedule.
package console

import (
	"github.com/prodordev/milton/errors"
	"github.com/prodordev/milton/hardware/buzzer"
	"github.com/prodordev/milton/hardware/cartridge"
	"github.com/prodordev/milton/hardware/cpu"
	"github.com/prodordev/milton/hardware/lcd"
	"github.com/prodordev/milton/hardware/rotary"
	"github.com/prodordev/milton/logger"
	"github.com/prodordev/milton/ports"
)

// IO bundles the four external capabilities a single Clock or Sync call
// needs. Every field is borrowed for the duration of the call and must not
// be retained by the console.
type IO struct {
	Display ports.IDisplay
	Buzzer  ports.IBuzzer
	Keypad  ports.IKeypad
	Rotary  ports.IRotary
}

// Console is the complete, observable state of an emulated Microvision: the
// CPU, its peripherals, and the elapsed simulated time.
type Console struct {
	CPU     *cpu.TMS1100
	LCD     *lcd.LCD
	Buzzer  *buzzer.Buzzer
	Rotary  *rotary.Rotary
	Elapsed int64 // µs
}

// New returns a freshly reset Console.
func New() *Console {
	c := &Console{}
	c.Reset()
	return c
}

// Reset replaces every component's state with its power-on value and zeroes
// the elapsed-time counter.
func (c *Console) Reset() {
	c.CPU = cpu.New()
	c.LCD = lcd.New()
	c.Buzzer = buzzer.New()
	c.Rotary = rotary.New()
	c.Elapsed = 0

	logger.Log("console", "components reset")
}

// Attach loads cart's ROM contents and logs the attachment. It is the
// console-level entry point callers should use instead of poking
// cart.Load directly, so the attach event always reaches the log.
func (c *Console) Attach(cart *cartridge.Cartridge, data []byte) error {
	if err := cart.Load(data); err != nil {
		return errors.Errorf("cartridge: %v", err)
	}

	logger.Log("console", "cartridge attached, checksum=%04x", cart.ROM.Checksum())

	return nil
}

// Clock advances the console by one 10µs tick: the CPU executes one
// sub-cycle, then the keypad/rotary-derived K input is rebuilt from the R
// pins that tick just produced, then the LCD, buzzer and rotary peripherals
// are driven from the same R/O pins.
func (c *Console) Clock(cart *cartridge.Cartridge, io IO) {
	c.Elapsed += 10

	c.CPU.Clock(cart.ROM, cart.RAM)

	c.CPU.K = c.nextK(cart, io)

	data := cart.Settings.OutputPLA.Translate(c.CPU.O)
	latchPulse := c.CPU.R>>6&1 == 1
	notClock := c.CPU.R>>7&1 == 1
	c.LCD.Clock(data, latchPulse, notClock, io.Display)

	c.Buzzer.Clock(c.CPU.R&1 == 1, c.Elapsed)

	turn := rotary.NewPercentage(io.Rotary.Turn())
	c.Rotary.Clock(c.CPU.R>>2&1 == 1, c.Elapsed, cart.Settings.Charge.Offset, cart.Settings.Charge.Scale, turn)
}

// nextK rebuilds the CPU's K input from whichever keypad columns the R pins
// currently select, then folds in the rotary controller's timed-out state
// when the cartridge enables it.
func (c *Console) nextK(cart *cartridge.Cartridge, io IO) byte {
	var k byte

	if c.CPU.R>>10&1 == 1 {
		k |= column(io.Keypad, 0)
	}
	if c.CPU.R>>9&1 == 1 {
		k |= column(io.Keypad, 1)
	}
	if c.CPU.R>>8&1 == 1 {
		k |= column(io.Keypad, 2)
	}

	if cart.Settings.RotaryEnabled {
		k &= 0x7
		if c.Rotary.TimedOut(c.Elapsed) {
			k |= 0x8
		}
	}

	return k
}

// column reads the four rows of keypad column col, ORing them into K's bits
// in the fixed order (row0→8, row1→4, row2→2, row3→1).
func column(keypad ports.IKeypad, col int) byte {
	var k byte
	if keypad.Get(col, 0) {
		k |= 0x8
	}
	if keypad.Get(col, 1) {
		k |= 0x4
	}
	if keypad.Get(col, 2) {
		k |= 0x2
	}
	if keypad.Get(col, 3) {
		k |= 0x1
	}
	return k
}

// Sync flushes buffered per-frame peripheral state — currently just the
// buzzer's pitch decision — to io. Call this once per rendered frame.
func (c *Console) Sync(io IO) {
	c.Buzzer.Sync(io.Buzzer)
}
