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

// Package cartridge models an interchangeable Microvision game cartridge:
// its ROM/RAM pair and the handful of per-cartridge settings that vary
// across titles (the charge timing of the rotary controller and whether
// the output PLA reverses the LCD data nibble).
package cartridge

import (
	"github.com/prodordev/milton/errors"
	"github.com/prodordev/milton/hardware/memory"
)

// Charge holds the RC charge-timing constants used by the rotary
// controller. Different cartridges calibrated these differently for their
// specific paddle hardware.
type Charge struct {
	Offset int
	Scale  int
}

// DefaultCharge matches the timing used by the majority of official
// Microvision cartridges.
var DefaultCharge = Charge{Offset: 600, Scale: 65}

// OutputPLA selects how the TMS1100's O output nibble is mapped onto the
// LCD driver's data line.
type OutputPLA int

const (
	// Normal forwards the O nibble to the LCD driver unchanged.
	Normal OutputPLA = iota
	// Reversed bit-reverses the O nibble before it reaches the LCD driver.
	// This is the common case across official cartridges.
	Reversed
)

// Translate maps the TMS1100's raw O output nibble into the 4-bit data line
// the LCD driver expects.
func (p OutputPLA) Translate(o byte) byte {
	o &= 0xf
	if p == Normal {
		return o
	}
	return reverseNibble(o)
}

func reverseNibble(b byte) byte {
	b &= 0xf
	var r byte
	for i := 0; i < 4; i++ {
		r <<= 1
		r |= b & 1
		b >>= 1
	}
	return r
}

// Settings holds the cartridge-specific behaviour a Console must account
// for beyond raw ROM/RAM contents.
type Settings struct {
	Charge        Charge
	OutputPLA     OutputPLA
	RotaryEnabled bool
}

// DefaultSettings matches the behaviour of the majority of official
// Microvision cartridges.
func DefaultSettings() Settings {
	return Settings{
		Charge:        DefaultCharge,
		OutputPLA:     Reversed,
		RotaryEnabled: true,
	}
}

// Cartridge is a loaded game: its memory plus its settings.
type Cartridge struct {
	ROM      *memory.ROM
	RAM      *memory.RAM
	Settings Settings
}

// New returns a Cartridge with fresh, empty memory and default settings.
func New() *Cartridge {
	return &Cartridge{
		ROM:      memory.NewROM(),
		RAM:      memory.NewRAM(),
		Settings: DefaultSettings(),
	}
}

// Load replaces the cartridge's ROM contents. See memory.ROM.Load for the
// padding/size-limit rules.
func (c *Cartridge) Load(data []byte) error {
	if err := c.ROM.Load(data); err != nil {
		return errors.Errorf("cartridge: %v", err)
	}
	return nil
}
