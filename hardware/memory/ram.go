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

package memory

// RAMSize is the number of nibbles held by a RAM. Each nibble is stored in
// its own byte with the upper four bits always zero.
const RAMSize = 128

// RAM is the 128x4bit scratch store, content-addressed by a segmented 7 bit
// address assembled as x<<4 | y. Power-on contents are zero; callers that
// need randomized initial contents (the TMS1100 does not require it — see
// spec Open Questions) may fill a fresh RAM themselves before use.
type RAM struct {
	data [RAMSize]byte
}

// NewRAM returns a zeroed RAM.
func NewRAM() *RAM {
	return &RAM{}
}

// ramAddress assembles (x:3, y:4) into its flat 7 bit form, masking each
// component to its declared width so out-of-range inputs wrap silently.
func ramAddress(x, y byte) int {
	return (int(x)&0x7)<<4 | int(y)&0xf
}

// Read returns the nibble at (x, y), masked to 4 bits.
func (r *RAM) Read(x, y byte) byte {
	return r.data[ramAddress(x, y)] & 0xf
}

// Write stores the low nibble of v at (x, y).
func (r *RAM) Write(x, y, v byte) {
	r.data[ramAddress(x, y)] = v & 0xf
}
