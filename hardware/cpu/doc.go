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

// Package cpu emulates the CHIP-8 interpreter. The CPU type holds the
// registers, the program counter and the call stack, and it executes one
// instruction every time ExecuteInstruction() is called.
//
// The CPU does not own the memory, the display, the timers or the keypad. They
// are given to the CPU when it is created with NewCPU() and the CPU operates
// on them directly.
//
// A zero instruction word is the signal to halt. Any other instruction word
// that cannot be decoded is an error. All errors returned by
// ExecuteInstruction() have the ExecutionError pattern and carry the address
// and word of the failing instruction. Once an error has been returned the CPU
// is halted and will not execute any further instructions until Reset() is
// called.
//
// The Fx0A instruction waits for a key press. Rather than block, the CPU
// enters a waiting state and each subsequent call to ExecuteInstruction()
// polls the keypad once. Normal execution resumes once a key is seen.
package cpu
