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

// Package cpu implements the TMS1100 micro-processor: its register file,
// pin latches, and the six-cycle sub-instruction pipeline that the console
// harness advances one step at a time, every 10 µs.
//
// Cycle-accuracy here is limited to what is observable at the pins; internal
// pipeline stalls the real silicon might exhibit are not modelled, per the
// console's own non-goals.
package cpu

import (
	"github.com/prodordev/milton/hardware/adder"
	"github.com/prodordev/milton/hardware/pla"
)

// ROM is the read-only program store the CPU fetches opcodes from.
type ROM interface {
	Read(chapter, page, offset byte) byte
}

// RAM is the scratch store the CPU reads operands from and writes results to.
type RAM interface {
	Read(x, y byte) byte
	Write(x, y, v byte)
}

// Cycle names one of the six sub-instruction phases a single opcode executes
// across.
type Cycle int

const (
	Cycle0 Cycle = iota
	Cycle1
	Cycle2
	Cycle3
	Cycle4
	Cycle5
)

// Next returns the cycle following c, wrapping Cycle5 back to Cycle0.
func (c Cycle) Next() Cycle {
	return (c + 1) % 6
}

// Registers is the TMS1100's data register file. Field comments give each
// register's declared bit width; callers must never observe a value
// exceeding it.
type Registers struct {
	A  byte // 4 bits, accumulator
	X  byte // 3 bits, RAM address
	Y  byte // 4 bits, RAM address
	PC byte // 6 bits, program counter
	SR byte // 6 bits, subroutine return address
	PA byte // 4 bits, page address
	PB byte // 4 bits, page buffer
	CA byte // 1 bit, chapter address
	CB byte // 1 bit, chapter buffer
	CS byte // 1 bit, chapter save
}

// Flags holds the CPU's two single-bit latches.
type Flags struct {
	Call   bool // true iff the most recent CALL has not yet been matched by RETN
	Status bool // the SL status latch
}

// TMS1100 is the processor's complete observable state: pins, registers,
// flags, adder and pipeline. Every field is exported so debuggers and tests
// can inspect it freely between Clock calls.
type TMS1100 struct {
	R uint16 // 11 bits, output
	O byte   // 5 bits, output (pre output-PLA)
	K byte   // 4 bits, input

	Adder adder.Adder
	Regs  Registers
	Flags Flags

	Cycle    Cycle
	Opcode   byte
	Fixed    pla.FixedTag
	Micro    pla.MicroMask
	Constant byte // low nibble of Opcode, bit-reversed
	RAMData  byte
	CKI      byte
}

// New returns a freshly reset TMS1100.
func New() *TMS1100 {
	t := &TMS1100{}
	t.Reset()
	return t
}

// Reset replaces the CPU's entire state with its power-on values: every
// field zero, Cycle0, an empty micro-mask and no fixed tag.
func (t *TMS1100) Reset() {
	*t = TMS1100{}
}

// Clock performs the work of the current Cycle, then advances to the next
// one. A full instruction takes six Clock calls to complete.
func (t *TMS1100) Clock(rom ROM, ram RAM) {
	switch t.Cycle {
	case Cycle0:
		t.exec0(ram)
	case Cycle1:
		t.exec1()
	case Cycle2:
		t.exec2(ram)
	case Cycle4:
		t.exec4(rom)
	case Cycle3, Cycle5:
		// Idle; nothing is observable at the pins during these sub-cycles.
	}

	t.Cycle = t.Cycle.Next()
}

// exec0 resolves any in-flight branch/call/return, computes CKI, latches the
// RAM operand and resets the adder.
func (t *TMS1100) exec0(ram RAM) {
	switch {
	case t.Fixed == pla.Br && t.Flags.Status:
		if !t.Flags.Call {
			t.Regs.PA = t.Regs.PB
		}
		t.Regs.CA = t.Regs.CB
		t.Regs.PC = t.Opcode & 0x3f

	case t.Fixed == pla.Call && t.Flags.Status:
		prevPA := t.Regs.PA
		if !t.Flags.Call {
			t.Flags.Call = true
			t.Regs.SR = t.Regs.PC
			t.Regs.PA = t.Regs.PB
			t.Regs.CS = t.Regs.CA
		}
		t.Regs.CA = t.Regs.CB
		t.Regs.PB = prevPA
		t.Regs.PC = t.Opcode & 0x3f

	case t.Fixed == pla.Retn:
		if t.Flags.Call {
			t.Flags.Call = false
			t.Regs.PC = t.Regs.SR
			t.Regs.CA = t.Regs.CS
		}
		t.Regs.PA = t.Regs.PB
	}

	t.readCKI()
	t.RAMData = ram.Read(t.Regs.X, t.Regs.Y)

	t.Adder.Reset()
}

// readCKI computes the internal CKI data bus value for the currently
// latched opcode.
func (t *TMS1100) readCKI() {
	switch {
	case t.Opcode&0xf8 == 0x08:
		t.CKI = t.K
	case t.Opcode&0xf8 == 0x30 || t.Opcode&0xf8 == 0x38:
		shift := (t.Constant>>2 ^ 0xf) & 0x3
		t.CKI = (1 << shift) & 0xf
	case isConstantGroup(t.Opcode):
		t.CKI = t.Constant
	default:
		t.CKI = 0
	}
}

func isConstantGroup(opcode byte) bool {
	switch opcode & 0xf8 {
	case 0x00, 0x40, 0x48, 0x50, 0x58, 0x60, 0x68, 0x70, 0x78:
		return true
	default:
		return false
	}
}

// exec1 stages the adder's P and N inputs (and carry_in) from whichever
// micro-instructions the PLA enabled for this opcode.
func (t *TMS1100) exec1() {
	if t.Micro.Enables(pla.FTN) {
		t.Adder.N |= 0xf
	}
	if t.Micro.Enables(pla.ATN) {
		t.Adder.N |= t.Regs.A
	}
	if t.Micro.Enables(pla.NATN) {
		t.Adder.N |= ^t.Regs.A & 0xf
	}
	if t.Micro.Enables(pla.CKN) {
		t.Adder.N |= t.CKI
	}
	if t.Micro.Enables(pla.MTN) {
		t.Adder.N |= t.RAMData
	}
	if t.Micro.Enables(pla.CKP) {
		t.Adder.P |= t.CKI
	}
	if t.Micro.Enables(pla.MTP) {
		t.Adder.P |= t.RAMData
	}
	if t.Micro.Enables(pla.YTP) {
		t.Adder.P |= t.Regs.Y
	}
	if t.Micro.Enables(pla.CIN) {
		t.Adder.CarryIn = true
	}
}

// exec2 clocks the adder, finishes the fixed-instruction effects and writes
// the (possibly modified) operand back to RAM.
func (t *TMS1100) exec2(ram RAM) {
	t.Adder.Clock(t.Micro.Enables(pla.C8), t.Micro.Enables(pla.NE))

	if t.Micro.Enables(pla.CKM) {
		t.RAMData = t.CKI
	}
	if t.Micro.Enables(pla.STO) {
		t.RAMData = t.Regs.A
	}

	switch t.Fixed {
	case pla.Comc:
		t.Regs.CB = ^t.Regs.CB & 0x1
	case pla.Comx:
		t.Regs.X = ^t.Regs.X & 0x7
	case pla.Ldp:
		t.Regs.PB = t.Constant
	case pla.Ldx:
		t.Regs.X = t.Constant >> 1 & 0x7
	case pla.Rbit:
		t.RAMData &= t.CKI
	case pla.Sbit:
		t.RAMData |= t.CKI ^ 0xf
	case pla.Rstr:
		idx := (t.Regs.X>>2)<<4 | t.Regs.Y
		t.R &= ^(uint16(1) << idx) & 0x7ff
	case pla.Setr:
		idx := (t.Regs.X>>2)<<4 | t.Regs.Y
		t.R = (t.R | (uint16(1) << idx)) & 0x7ff
	case pla.Tdo:
		status := byte(0)
		if t.Flags.Status {
			status = 1
		}
		t.O = (status | t.Regs.A&0xf) & 0x1f
	}

	ram.Write(t.Regs.X, t.Regs.Y, t.RAMData)
}

// exec4 writes back the adder's result to whichever registers the PLA
// enabled, then fetches and decodes the next opcode.
func (t *TMS1100) exec4(rom ROM) {
	if t.Micro.Enables(pla.AUTA) {
		t.Regs.A = t.Adder.Output
	}
	if t.Micro.Enables(pla.AUTY) {
		t.Regs.Y = t.Adder.Output
	}
	if t.Micro.Enables(pla.STSL) {
		t.Flags.Status = t.Adder.StatusOut
	}

	t.nextOpcode(rom)
}

// nextOpcode fetches and decodes the opcode at the current (CA, PA, PC)
// address, then advances PC via the LFSR rule.
func (t *TMS1100) nextOpcode(rom ROM) {
	t.Opcode = rom.Read(t.Regs.CA, t.Regs.PA, t.Regs.PC)
	t.Constant = reverseNibble(t.Opcode & 0xf)
	t.Micro, t.Fixed = pla.Decode(t.Opcode)

	t.nextPC()
}

// nextPC advances PC through its 64-value linear-feedback shift register
// sequence.
func (t *TMS1100) nextPC() {
	p := t.Regs.PC & 0x3f

	var feedback byte
	switch p {
	case 0b011111:
		feedback = 1
	case 0b111111:
		feedback = 0
	default:
		if p>>4&1 == p>>5&1 {
			feedback = 1
		}
	}

	t.Regs.PC = (p<<1 | feedback) & 0x3f
}

// reverseNibble reverses the low 4 bits of b.
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
