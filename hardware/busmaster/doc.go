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

// Package busmaster performs bus transactions in the same way as a processor.
// The address is driven onto the address bus, for a write the data is driven
// onto the data bus, and then the RW flag is toggled.
//
// Reading an address that no device responds to returns whatever value was
// left on the data bus by the previous transaction.
package busmaster
