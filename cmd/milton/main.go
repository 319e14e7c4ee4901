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

// Command milton is a thin CLI around the emulation core: it loads a
// cartridge image, either drives it against the terminal reference
// frontend, reports its checksum, or dumps the console's observable state.
// Cartridge file I/O and packaging are the CLI's job, never the core's — the
// core only ever sees an in-memory byte slice.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/prodordev/milton/hardware/cartridge"
	"github.com/prodordev/milton/hardware/console"
	"github.com/prodordev/milton/internal/frontend/tui"
	"github.com/prodordev/milton/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		logger.Write(os.Stderr)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "milton",
		Short: "A cycle-accurate Microvision emulation core",
	}

	root.AddCommand(newRunCmd(), newChecksumCmd(), newDumpCmd())

	return root
}

// cartridgeFlags are the settings common to every subcommand that loads a
// cartridge, surfaced as flags rather than a config file since cartridge
// file I/O and packaging are explicit core non-goals.
type cartridgeFlags struct {
	chargeOffset int
	chargeScale  int
	outputPLA    string
	noRotary     bool
}

func (f *cartridgeFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.chargeOffset, "charge-offset", cartridge.DefaultCharge.Offset, "rotary RC charge offset, in microseconds")
	cmd.Flags().IntVar(&f.chargeScale, "charge-scale", cartridge.DefaultCharge.Scale, "rotary RC charge scale, in microseconds per ten percent of turn")
	cmd.Flags().StringVar(&f.outputPLA, "output-pla", "reversed", "output PLA polarity: normal or reversed")
	cmd.Flags().BoolVar(&f.noRotary, "no-rotary", false, "disable the rotary controller's K input feature")
}

func (f *cartridgeFlags) load(path string) (*cartridge.Cartridge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cart := cartridge.New()
	if err := cart.Load(data); err != nil {
		return nil, err
	}

	cart.Settings.Charge = cartridge.Charge{Offset: f.chargeOffset, Scale: f.chargeScale}
	cart.Settings.RotaryEnabled = !f.noRotary

	switch f.outputPLA {
	case "normal":
		cart.Settings.OutputPLA = cartridge.Normal
	case "reversed":
		cart.Settings.OutputPLA = cartridge.Reversed
	default:
		return nil, fmt.Errorf("unknown --output-pla value %q: use normal or reversed", f.outputPLA)
	}

	logger.Log("cmd", "loaded cartridge %s (%d bytes, checksum=%04x)", path, len(data), cart.ROM.Checksum())

	return cart, nil
}

func newRunCmd() *cobra.Command {
	var flags cartridgeFlags

	cmd := &cobra.Command{
		Use:   "run [cartridge]",
		Short: "Run a cartridge against the terminal reference frontend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cart, err := flags.load(args[0])
			if err != nil {
				return err
			}

			program := tea.NewProgram(tui.New(cart))
			_, err = program.Run()
			return err
		},
	}
	flags.register(cmd)

	return cmd
}

func newChecksumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checksum [cartridge]",
		Short: "Print a cartridge ROM's 16-bit wrapping checksum",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			cart := cartridge.New()
			if err := cart.Load(data); err != nil {
				return err
			}

			fmt.Printf("%04x\n", cart.ROM.Checksum())
			return nil
		},
	}

	return cmd
}

func newDumpCmd() *cobra.Command {
	var flags cartridgeFlags
	var ticks int

	cmd := &cobra.Command{
		Use:   "dump [cartridge]",
		Short: "Run a cartridge for a number of ticks with no frontend and dump console state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cart, err := flags.load(args[0])
			if err != nil {
				return err
			}

			c := console.New()
			io := console.IO{
				Display: nullDisplay{},
				Buzzer:  nullBuzzer{},
				Keypad:  nullKeypad{},
				Rotary:  nullRotary{},
			}

			for i := 0; i < ticks; i++ {
				c.Clock(cart, io)
			}
			c.Sync(io)

			spew.Dump(c)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&ticks, "ticks", 600, "number of 10µs ticks to run before dumping state")

	return cmd
}

// nullDisplay, nullBuzzer, nullKeypad and nullRotary are inert ports
// implementations for cmd/milton dump, which has no frontend of its own —
// it only cares about the console's observable state after the run.
type nullDisplay struct{}

func (nullDisplay) EnablePixel(x, y int) {}

type nullBuzzer struct{}

func (nullBuzzer) Enable(pitch int) {}
func (nullBuzzer) Disable()         {}

type nullKeypad struct{}

func (nullKeypad) Get(col, row int) bool { return false }

type nullRotary struct{}

func (nullRotary) Turn() int { return 0 }
