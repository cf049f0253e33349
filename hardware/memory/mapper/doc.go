// This file is part of famibus.
//
// famibus is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// famibus is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with famibus.  If not, see <https://www.gnu.org/licenses/>.

// Package mapper connects a device on one bus to a range of addresses on
// another bus. The Mapper type listens to the RW Flag of the outer bus and,
// for addresses in its range, relays the transaction to the inner bus after
// translating the address.
//
// Address translation is handled by implementations of the Translator
// interface. The translators in this package cover simple mirroring, offset
// windows, switchable banks and the nametable arrangements of the PPU.
//
// A BankRegister is a latch on the outer bus that selects which bank a Banked
// translator uses. Cartridges that switch banks on writes to ROM addresses use
// a BankRegister alongside a Mapper for the same range.
package mapper
