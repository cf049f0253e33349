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

// Package stepper is a simple interactive front end for the emulation. Each
// key press moves the emulation forward by a master clock tick, a CPU cycle
// or a frame and the state of the CPU lines is printed after each step.
//
// The terminal is put into raw mode so that key presses are received
// immediately. Raw mode is provided by "github.com/pkg/term".
package stepper
