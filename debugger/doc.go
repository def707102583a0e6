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

// Package debugger implements a line oriented debugger for the CHIP-8
// emulation. Commands are read from any io.Reader and output is written to
// any io.Writer.
//
// The debugger controls the keypad through a keypad.State instance. Keys are
// pressed and released with the KEY command.
//
// Commands are not case sensitive. Numeric arguments are decimal except
// for addresses and keys, which are hexadecimal. A leading 0x or $ is
// accepted but not required.
//
//	STEP [n]          execute n instructions (default 1)
//	RUN n             execute n instructions, ticking the timers as Run() would
//	TICK [n]          tick the timers n times (default 1)
//	REGS              show the CPU registers and the timers
//	LAST              show the most recently executed instruction
//	MEM addr [len]    show memory (default length 16)
//	DISPLAY           show the display
//	DISASM            show a disassembly of the program area of memory
//	KEY k|NONE        press key k (releasing any other key) or release all keys
//	RESET             reset the emulation
//	SNAPSHOT          save the state of the emulation
//	RESTORE           return the emulation to the saved state
//	MEMVIZ [file]     write a graphviz representation of the CPU to file
//	LOG [n]           show the last n entries of the log (default 10)
//	HELP              list the available commands
//	QUIT              end the debugger
//
// An empty line repeats the previous command.
package debugger
