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

// Package errors is a helper package for the plain Go language error type. We
// think of these errors as curated errors. External to this package, curated
// errors are referenced as plain errors (ie. they implement the error
// interface).
//
// Internally, errors are thought of as being composed of parts, as described
// by The Go Programming Language (Donovan, Kernighan): "When the error is
// ultimately handled by the program's main function, it should provide a clear
// causal chain from the root of the problem to the overal failure".
//
// The Error() function implementation for curated errors ensures that this
// chain is normalised. Specifically, that the chain does not contain duplicate
// adjacent parts. The practical advantage of this is that it alleviates the
// problem of when and how to wrap errors. For example:
//
//	func main() {
//		c := console.New()
//		err := c.Attach(cart, data)
//		if err != nil {
//			fmt.Println(err)
//		}
//	}
//
//	func (c *Console) Attach(cart *Cartridge, data []byte) error {
//		err := cart.Load(data)
//		if err != nil {
//			return errors.Errorf("cartridge: %v", err)
//		}
//		return nil
//	}
//
//	func (c *Cartridge) Load(data []byte) error {
//		err := c.ROM.Load(data)
//		if err != nil {
//			return errors.Errorf("cartridge: %v", err)
//		}
//		return nil
//	}
//
//	func (r *ROM) Load(data []byte) error {
//		if len(data) > Size {
//			return errors.Errorf("rom: load exceeds %d bytes (got %d)", Size, len(data))
//		}
//		return nil
//	}
//
// Both Console.Attach and Cartridge.Load prefix "cartridge: " onto whatever
// error the layer below them returned. Without normalisation the caller would
// see every layer's prefix concatenated. Using the curated Error() function,
// the message main() prints is instead:
//
//	cartridge: rom: load exceeds 2048 bytes (got 4096)
//
// and not:
//
//	cartridge: cartridge: rom: load exceeds 2048 bytes (got 4096)
package errors
