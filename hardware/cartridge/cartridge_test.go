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

package cartridge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prodordev/milton/hardware/cartridge"
)

func TestDefaultSettingsMatchKnownCartridgeDefaults(t *testing.T) {
	s := cartridge.DefaultSettings()

	assert.Equal(t, 600, s.Charge.Offset)
	assert.Equal(t, 65, s.Charge.Scale)
	assert.Equal(t, cartridge.Reversed, s.OutputPLA)
	assert.True(t, s.RotaryEnabled)
}

func TestOutputPLANormalPassesThrough(t *testing.T) {
	assert.Equal(t, byte(0b1010), cartridge.Normal.Translate(0b1010))
}

func TestOutputPLAReversedFlipsBits(t *testing.T) {
	assert.Equal(t, byte(0b0101), cartridge.Reversed.Translate(0b1010))
	assert.Equal(t, byte(0b1000), cartridge.Reversed.Translate(0b0001))
}

func TestNewHasFreshMemoryAndDefaultSettings(t *testing.T) {
	c := cartridge.New()

	require.NotNil(t, c.ROM)
	require.NotNil(t, c.RAM)
	assert.Equal(t, cartridge.DefaultSettings(), c.Settings)
}

func TestLoadDelegatesToROM(t *testing.T) {
	c := cartridge.New()
	require.NoError(t, c.Load([]byte{0xaa, 0xbb}))
	assert.Equal(t, byte(0xaa), c.ROM.ReadFlat(0))
	assert.Equal(t, byte(0xbb), c.ROM.ReadFlat(1))
}
