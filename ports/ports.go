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

// Package ports declares the capability interfaces the emulation core needs
// from the outside world: a pixel sink, a buzzer, a keypad and a rotary
// position source. The core (hardware/*) depends only on these interfaces,
// never on a concrete rendering, audio or input-polling library; a caller
// supplies implementations (see internal/frontend for a reference terminal
// implementation, and cmd/milton for how it is wired up).
package ports

// IDisplay receives pixel activations from the LCD controller, addressed in
// the 16x16 screen space (0 ≤ x,y ≤ 15).
type IDisplay interface {
	EnablePixel(x, y int)
}

// IBuzzer receives the pitch decision the buzzer makes once per frame.
type IBuzzer interface {
	Enable(pitch int)
	Disable()
}

// IKeypad reports the pressed state of a single key on the 3-column,
// 4-row matrix, addressed by (col, row) with col in [0,2] and row in [0,3].
type IKeypad interface {
	Get(col, row int) bool
}

// IRotary reports the current turn position of the rotary controller as a
// percentage in [0,100].
type IRotary interface {
	Turn() int
}
