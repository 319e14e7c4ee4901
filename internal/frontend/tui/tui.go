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

// Package tui is a terminal reference frontend: a Bubble Tea program that
// drives a cartridge against a 16x16 cell rendering of the LCD, a keyboard
// binding for the 3x4 keypad, and the left/right arrow keys for the rotary
// controller. It exists only to exercise the ports interfaces from outside
// the core; it has no special access to console.Console internals.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/prodordev/milton/hardware/cartridge"
	"github.com/prodordev/milton/hardware/console"
)

const (
	screenWidth  = 16
	screenHeight = 16

	// ticksPerFrame approximates one rendered frame (~16.6ms) of simulated
	// time at the core's fixed 100kHz clock rate.
	ticksPerFrame = 1660
	frameInterval = 16 * time.Millisecond
)

// Display implements ports.IDisplay. Pixels accumulate for the duration of
// a frame and are cleared by the Model at the start of the next one, since
// the LCD controller never turns a pixel off itself — decay is the
// frontend's responsibility, per spec.
type Display struct {
	pixels [screenHeight][screenWidth]bool
}

// EnablePixel marks (x, y) lit for the remainder of the current frame.
func (d *Display) EnablePixel(x, y int) {
	if x < 0 || x >= screenWidth || y < 0 || y >= screenHeight {
		return
	}
	d.pixels[y][x] = true
}

func (d *Display) clear() {
	d.pixels = [screenHeight][screenWidth]bool{}
}

// Buzzer implements ports.IBuzzer, retaining only the latest pitch decision
// for the status line.
type Buzzer struct {
	enabled bool
	pitch   int
}

func (b *Buzzer) Enable(pitch int) {
	b.enabled, b.pitch = true, pitch
}

func (b *Buzzer) Disable() {
	b.enabled = false
}

// Keypad implements ports.IKeypad over the keyboard bindings in keymap.
// Presses are momentary: a key registers as down for the frame following
// the keystroke and is cleared before the next one, since terminal input
// carries no reliable key-up event.
type Keypad struct {
	pressed map[[2]int]bool
}

func newKeypad() *Keypad {
	return &Keypad{pressed: make(map[[2]int]bool)}
}

func (k *Keypad) Get(col, row int) bool {
	return k.pressed[[2]int{col, row}]
}

func (k *Keypad) press(col, row int) {
	k.pressed[[2]int{col, row}] = true
}

func (k *Keypad) clear() {
	for key := range k.pressed {
		delete(k.pressed, key)
	}
}

// keymap lays out the Microvision's 3-column, 4-row keypad over the
// keyboard's numeric row and numpad-like keys.
var keymap = map[string][2]int{
	"7": {0, 0}, "8": {1, 0}, "9": {2, 0},
	"4": {0, 1}, "5": {1, 1}, "6": {2, 1},
	"1": {0, 2}, "2": {1, 2}, "3": {2, 2},
	"0": {0, 3}, ".": {1, 3}, "enter": {2, 3},
}

// Rotary implements ports.IRotary, adjusted in 5% steps by the left/right
// arrow keys.
type Rotary struct {
	turn int
}

func (r *Rotary) Turn() int {
	return r.turn
}

func (r *Rotary) nudge(delta int) {
	r.turn += delta
	if r.turn < 0 {
		r.turn = 0
	}
	if r.turn > 100 {
		r.turn = 100
	}
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the Bubble Tea program driving a single cartridge.
type Model struct {
	console *console.Console
	cart    *cartridge.Cartridge
	display *Display
	buzzer  *Buzzer
	keypad  *Keypad
	rotary  *Rotary
}

// New returns a Model that will run cart on a freshly reset Console.
func New(cart *cartridge.Cartridge) Model {
	return Model{
		console: console.New(),
		cart:    cart,
		display: &Display{},
		buzzer:  &Buzzer{},
		keypad:  newKeypad(),
		rotary:  &Rotary{},
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left":
			m.rotary.nudge(-5)
		case "right":
			m.rotary.nudge(5)
		default:
			if pos, ok := keymap[msg.String()]; ok {
				m.keypad.press(pos[0], pos[1])
			}
		}
		return m, nil

	case tickMsg:
		m.display.clear()

		io := console.IO{
			Display: m.display,
			Buzzer:  m.buzzer,
			Keypad:  m.keypad,
			Rotary:  m.rotary,
		}
		for i := 0; i < ticksPerFrame; i++ {
			m.console.Clock(m.cart, io)
		}
		m.console.Sync(io)

		m.keypad.clear()

		return m, tick()
	}

	return m, nil
}

var (
	pixelOn  = lipgloss.NewStyle().Background(lipgloss.Color("15"))
	pixelOff = lipgloss.NewStyle().Background(lipgloss.Color("0"))
	help     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func (m Model) View() string {
	var rows []string
	for y := 0; y < screenHeight; y++ {
		var row strings.Builder
		for x := 0; x < screenWidth; x++ {
			if m.display.pixels[y][x] {
				row.WriteString(pixelOn.Render("  "))
			} else {
				row.WriteString(pixelOff.Render("  "))
			}
		}
		rows = append(rows, row.String())
	}

	status := "buzzer: silent"
	if m.buzzer.enabled {
		status = fmt.Sprintf("buzzer: %dHz", m.buzzer.pitch)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		strings.Join(rows, "\n"),
		"",
		status,
		fmt.Sprintf("rotary: %d%%", m.rotary.turn),
		help.Render("1-9,0,.,enter: keypad  left/right: rotary  q: quit"),
	)
}
