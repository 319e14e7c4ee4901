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

// Package pla implements the TMS1100's instruction decoder: a total
// function from an 8 bit opcode to a MicroMask (a set of micro-instruction
// flags consumed during cycles 1, 2 and 4) and a FixedTag (a hard-wired
// instruction identity consumed during cycle 0 for Br/Call/Retn and cycle 2
// for the rest). Rather than modelling the
// AND/OR plane of a real PLA, Decode is a direct port of the dense per-opcode
// table the TMS1100's mask ROM actually encodes.
package pla

// MicroMask is a bitset of the sixteen micro-instructions a PLA entry may
// enable for a given opcode. Multiple bits are commonly set together; an
// opcode with no programmable behaviour decodes to an empty mask.
type MicroMask uint16

// The sixteen micro-instructions, one per bit. See the cpu package for how
// each bit is consumed across the cycles of the pipeline.
const (
	// CKP latches the CKI data bus to the adder's P input.
	CKP MicroMask = 1 << 0
	// YTP latches the Y register to the adder's P input.
	YTP MicroMask = 1 << 1
	// MTP latches RAM(X,Y) to the adder's P input.
	MTP MicroMask = 1 << 2
	// ATN latches the A accumulator to the adder's N input.
	ATN MicroMask = 1 << 3
	// NATN latches the bitwise complement of A to the adder's N input.
	NATN MicroMask = 1 << 4
	// MTN latches RAM(X,Y) to the adder's N input. No opcode in the standard
	// decode table sets this bit; it is preserved because the chip exposes it.
	MTN MicroMask = 1 << 5
	// FTN latches the constant 15 to the adder's N input.
	FTN MicroMask = 1 << 6
	// CKN latches the CKI data bus to the adder's N input.
	CKN MicroMask = 1 << 7
	// CIN pulls the adder's carry input high.
	CIN MicroMask = 1 << 8
	// NE clears the adder's status output when P and N are equal.
	NE MicroMask = 1 << 9
	// C8 clears the adder's status output when the addition does not carry.
	C8 MicroMask = 1 << 10
	// STO writes the A accumulator into RAM(X,Y).
	STO MicroMask = 1 << 11
	// CKM writes the CKI data bus into RAM(X,Y).
	CKM MicroMask = 1 << 12
	// AUTA copies the adder's output into the A accumulator.
	AUTA MicroMask = 1 << 13
	// AUTY copies the adder's output into the Y register.
	AUTY MicroMask = 1 << 14
	// STSL copies the adder's status output into the SL status latch.
	STSL MicroMask = 1 << 15
)

// Empty is the PLA entry for opcodes with no programmable micro-behaviour,
// including the power-on/reset state of the decoder.
const Empty MicroMask = 0

// Enables reports whether bit m is set in the mask.
func (m MicroMask) Enables(bit MicroMask) bool {
	return m&bit != 0
}

// FixedTag names one of the twelve hard-wired instructions the TMS1100
// decodes outside of the programmable PLA plane.
type FixedTag int

const (
	// None marks an opcode with no fixed-instruction behaviour.
	None FixedTag = iota
	Br
	Call
	Retn
	Comc
	Comx
	Ldp
	Ldx
	Rbit
	Sbit
	Rstr
	Setr
	Tdo
)

// Decode returns the MicroMask and FixedTag for opcode. A single opcode may
// carry both a non-empty mask and a fixed tag; the two are executed in
// different sub-cycles of the pipeline and are not mutually exclusive.
func Decode(opcode byte) (MicroMask, FixedTag) {
	return decodeMask(opcode), decodeFixed(opcode)
}

func decodeMask(opcode byte) MicroMask {
	switch {
	case opcode == 0x00:
		return MTP | ATN | NE
	case opcode == 0x01:
		return MTP | NATN | CIN | C8
	case opcode == 0x02:
		return YTP | ATN | NE | STSL
	case opcode == 0x03:
		return MTP | STO | AUTA
	case opcode == 0x04:
		return YTP | FTN | C8 | AUTY
	case opcode == 0x05:
		return YTP | CIN | C8 | AUTY
	case opcode == 0x06:
		return ATN | MTP | C8 | AUTA
	case opcode == 0x07:
		return MTP | FTN | C8 | AUTA
	case opcode == 0x08:
		return CKP | AUTA
	case opcode == 0x0e:
		return CKP | NE
	case opcode == 0x20:
		return ATN | AUTY
	case opcode == 0x21:
		return MTP | AUTA
	case opcode == 0x22:
		return MTP | AUTY
	case opcode == 0x23:
		return YTP | AUTA
	case opcode == 0x24:
		return STO | YTP | FTN | C8 | AUTY
	case opcode == 0x25:
		return STO | YTP | CIN | C8 | AUTY
	case opcode == 0x26:
		return STO | AUTA
	case opcode == 0x27:
		return STO
	case opcode >= 0x38 && opcode <= 0x3b:
		return CKP | CKN | MTP | NE
	case opcode == 0x3c:
		return MTP | NATN | CIN | C8 | AUTA
	case opcode == 0x3d:
		return NATN | CIN | C8 | AUTA
	case opcode == 0x3e:
		return MTP | CIN | C8 | AUTA
	case opcode == 0x3f:
		return MTP | NE
	case opcode >= 0x40 && opcode <= 0x4f:
		return CKP | AUTY
	case opcode >= 0x50 && opcode <= 0x5f:
		return YTP | CKN | NE
	case opcode >= 0x60 && opcode <= 0x6f:
		return CKM | YTP | CIN | AUTY
	case opcode >= 0x70 && opcode <= 0x7e:
		return CKP | ATN | CIN | C8 | AUTA
	case opcode == 0x7f:
		return CKP | CIN | C8 | AUTA
	default:
		return Empty
	}
}

func decodeFixed(opcode byte) FixedTag {
	switch {
	case opcode == 0x09:
		return Comx
	case opcode == 0x0a:
		return Tdo
	case opcode == 0x0b:
		return Comc
	case opcode == 0x0c:
		return Rstr
	case opcode == 0x0d:
		return Setr
	case opcode == 0x0f:
		return Retn
	case opcode >= 0x10 && opcode <= 0x1f:
		return Ldp
	case opcode >= 0x28 && opcode <= 0x2f:
		return Ldx
	case opcode >= 0x30 && opcode <= 0x33:
		return Sbit
	case opcode >= 0x34 && opcode <= 0x37:
		return Rbit
	case opcode >= 0x80 && opcode <= 0xbf:
		return Br
	case opcode >= 0xc0:
		return Call
	default:
		return None
	}
}
