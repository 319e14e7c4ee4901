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

package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prodordev/milton/errors"
)

const cartridgePattern = "cartridge: %v"
const romPattern = "rom: load exceeds %d bytes (got %d)"

func TestAdjacentDuplicatePrefixIsCollapsed(t *testing.T) {
	rom := errors.Errorf(romPattern, 2048, 4096)

	// Console.Attach and Cartridge.Load both wrap with "cartridge: ", so
	// wrapping twice must not print the prefix twice.
	once := errors.Errorf(cartridgePattern, rom)
	twice := errors.Errorf(cartridgePattern, once)

	assert.Equal(t, "cartridge: rom: load exceeds 2048 bytes (got 4096)", once.Error())
	assert.Equal(t, once.Error(), twice.Error())
}

func TestIs(t *testing.T) {
	rom := errors.Errorf(romPattern, 2048, 4096)
	assert.True(t, errors.Is(rom, romPattern))

	// Has() should fail because cartridgePattern doesn't appear anywhere
	// in rom's chain.
	assert.False(t, errors.Has(rom, cartridgePattern))

	wrapped := errors.Errorf(cartridgePattern, rom)
	assert.False(t, errors.Is(wrapped, romPattern))
	assert.True(t, errors.Is(wrapped, cartridgePattern))
	assert.True(t, errors.Has(wrapped, romPattern))
	assert.True(t, errors.Has(wrapped, cartridgePattern))

	assert.True(t, errors.IsAny(rom))
	assert.True(t, errors.IsAny(wrapped))
}

func TestPlainErrors(t *testing.T) {
	// plain errors that haven't been formatted with our errors package
	e := fmt.Errorf("load exceeds bounds")
	assert.False(t, errors.IsAny(e))
	assert.False(t, errors.Has(e, romPattern))
}
