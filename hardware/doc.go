// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package hardware is the base package for the CHIP-8 emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Chip8 type is the root of the emulation and contains external
// references to all the CHIP-8 sub-systems. From here, the emulation can
// either be started to run continuously (with optional callback to check for
// continuation); or it can be stepped one instruction at a time.
//
// The display is presented to the host through the FrameRenderer interface.
// Renderers are attached with AddFrameRenderer() and are given a copy of the
// display whenever an instruction changes it.
//
// The timers are not ticked by Step(). The host must call TickTimers() at the
// correct rate or use the Run() function, which executes instructions and
// ticks the timers at the rates given in the preferences.
package hardware
