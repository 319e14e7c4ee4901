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

// Package memory implements the two segmented memories of the TMS1100:
// a 2048x8bit ROM (content-addressed by chapter/page/offset) and a
// 128x4bit RAM (content-addressed by x/y). See doc comments on ROM and RAM
// for the exact address assembly rules.
package memory

import (
	"github.com/prodordev/milton/errors"
)

// Size is the number of bytes held by a ROM.
const Size = 2048

// ROM is the 2048x8bit program store, content-addressed by a segmented
// 11 bit address assembled as chapter<<10 | page<<6 | offset. It is
// immutable after Load.
type ROM struct {
	data     [Size]byte
	sum      uint16
	sumValid bool
}

// NewROM returns a zeroed ROM.
func NewROM() *ROM {
	return &ROM{}
}

// Load replaces the entire contents of the ROM. Slices shorter than Size are
// zero-padded; slices longer than Size are rejected.
func (r *ROM) Load(data []byte) error {
	if len(data) > Size {
		return errors.Errorf("rom: load exceeds %d bytes (got %d)", Size, len(data))
	}

	var fresh [Size]byte
	copy(fresh[:], data)
	r.data = fresh
	r.sumValid = false

	return nil
}

// address assembles the segmented (chapter, page, offset) address into its
// flat 11 bit form, masking every component to its declared width first so
// that out-of-range inputs wrap silently rather than panicking — this
// mirrors the behaviour of the real address-latch hardware.
func address(chapter, page, offset byte) int {
	c := int(chapter) & 0x1
	p := int(page) & 0xf
	o := int(offset) & 0x3f
	return c<<10 | p<<6 | o
}

// Read returns the byte at the segmented address (chapter:1, page:4,
// offset:6).
func (r *ROM) Read(chapter, page, offset byte) byte {
	return r.data[address(chapter, page, offset)]
}

// ReadFlat returns the byte at a pre-assembled 11 bit address, masking it to
// the ROM's address width.
func (r *ROM) ReadFlat(addr int) byte {
	return r.data[addr&(Size-1)]
}

// Checksum returns the 16-bit wrapping sum of every byte in the ROM. The
// result is memoized between calls and is only invalidated by Load, since
// ROM content is otherwise immutable.
func (r *ROM) Checksum() uint16 {
	if r.sumValid {
		return r.sum
	}

	var sum uint16
	for _, b := range r.data {
		sum += uint16(b)
	}
	r.sum = sum
	r.sumValid = true

	return r.sum
}
