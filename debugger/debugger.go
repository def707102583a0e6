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

package debugger

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/paths"
)

// CommandError is the error pattern for errors in the input to the debugger.
const CommandError = "debugger: %v"

// the number of log entries shown by LOG with no argument.
const defaultLogTail = 10

// the number of bytes shown by MEM with no length argument.
const defaultMemLength = 16

// Debugger is a line oriented debugger for the CHIP-8 emulation.
type Debugger struct {
	vm   *hardware.Chip8
	keys *keypad.State

	input  io.Reader
	output io.Writer

	// the name of the program. used to name MEMVIZ files
	programName string

	// the previous command. repeated on an empty line
	previous string

	// the state saved by the SNAPSHOT command
	snapshot *hardware.State
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type. The keys instance is plumbed into the emulation.
func NewDebugger(vm *hardware.Chip8, keys *keypad.State, input io.Reader, output io.Writer) *Debugger {
	if keys == nil {
		keys = keypad.NewState()
	}
	vm.PlumbKeypad(keys)

	return &Debugger{
		vm:     vm,
		keys:   keys,
		input:  input,
		output: output,
	}
}

// SetProgramName sets the name used when creating files.
func (dbg *Debugger) SetProgramName(name string) {
	dbg.programName = name
}

func (dbg *Debugger) printLine(s string, a ...interface{}) {
	fmt.Fprintf(dbg.output, s+"\n", a...)
}

func (dbg *Debugger) prompt() {
	fmt.Fprintf(dbg.output, "[%03x %s] > ", dbg.vm.CPU.PC, dbg.vm.State())
}

// Start the debugger. Commands are read from the input until the QUIT command
// or until the input is exhausted. Errors in commands and errors raised by
// the emulation are printed to the output and do not end the debugger.
func (dbg *Debugger) Start() error {
	scanner := bufio.NewScanner(dbg.input)

	dbg.prompt()
	for scanner.Scan() {
		quit, err := dbg.Command(scanner.Text())
		if err != nil {
			dbg.printLine("* %s", err)
		}
		if quit {
			return nil
		}
		dbg.prompt()
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf(CommandError, err)
	}

	return nil
}

// Command parses and runs a single line of input. Returns true if the
// debugger should end.
func (dbg *Debugger) Command(input string) (bool, error) {
	if strings.TrimSpace(input) == "" {
		input = dbg.previous
	}

	tk, err := tokenise(input)
	if err != nil {
		return false, curated.Errorf(CommandError, err)
	}
	if tk.keyword == "" {
		return false, nil
	}

	dbg.previous = input

	switch tk.keyword {
	case cmdQuit:
		return true, nil

	case cmdHelp:
		dbg.printLine("%s", strings.Join(keywords(), " "))

	case cmdStep:
		n := 1
		if len(tk.args) > 0 {
			n, err = parseCount(tk.args[0])
			if err != nil {
				return false, curated.Errorf(CommandError, err)
			}
		}
		for ; n > 0; n-- {
			ok, err := dbg.vm.Step()
			if err != nil {
				return false, err
			}
			if !ok {
				break
			}
		}
		dbg.printLine("%s", dbg.vm.CPU.LastResult.String())

	case cmdRun:
		n, err := parseCount(tk.args[0])
		if err != nil {
			return false, curated.Errorf(CommandError, err)
		}
		err = dbg.vm.RunUncapped(func() (govern.State, error) {
			n--
			if n <= 0 {
				return govern.Ending, nil
			}
			return govern.Running, nil
		})
		if err != nil {
			return false, err
		}
		dbg.printLine("%s", dbg.vm.CPU.LastResult.String())

	case cmdTick:
		n := 1
		if len(tk.args) > 0 {
			n, err = parseCount(tk.args[0])
			if err != nil {
				return false, curated.Errorf(CommandError, err)
			}
		}
		for ; n > 0; n-- {
			dbg.vm.TickTimers()
		}
		dbg.printLine("%s", dbg.vm.Timers.String())

	case cmdRegs:
		dbg.printLine("%s", dbg.vm.CPU.String())
		dbg.printLine("%s", dbg.vm.Timers.String())

	case cmdLast:
		dbg.printLine("%s", dbg.vm.CPU.LastResult.String())

	case cmdMem:
		addr, err := parseHex(tk.args[0], 16)
		if err != nil {
			return false, curated.Errorf(CommandError, err)
		}
		if addr >= memory.Size {
			return false, curated.Errorf(CommandError, fmt.Errorf("%#03x is outside of memory", addr))
		}
		l := defaultMemLength
		if len(tk.args) > 1 {
			l, err = parseCount(tk.args[1])
			if err != nil {
				return false, curated.Errorf(CommandError, err)
			}
		}
		dbg.printLine("%s", dbg.vm.Mem.Dump(uint16(addr), l))

	case cmdDisplay:
		fmt.Fprint(dbg.output, dbg.vm.Display.String())

	case cmdDisasm:
		program, err := dbg.vm.Mem.Slice(memory.ProgramOrigin, dbg.vm.Mem.ProgramSize())
		if err != nil {
			return false, err
		}
		dsm, err := disassembly.FromProgram(program)
		if err != nil {
			return false, err
		}
		if err := dsm.Write(dbg.output, disassembly.WriteAttr{ByteCode: true}); err != nil {
			return false, err
		}

	case cmdKey:
		if strings.ToUpper(tk.args[0]) == "NONE" {
			dbg.keys.ReleaseAll()
			dbg.printLine("no keys pressed")
			break
		}
		k, err := parseHex(tk.args[0], 8)
		if err != nil || k >= keypad.NumKeys {
			return false, curated.Errorf(CommandError, fmt.Errorf("%s is not a valid key", tk.args[0]))
		}
		dbg.keys.ReleaseAll()
		dbg.keys.Press(uint8(k))
		dbg.printLine("key %X pressed", k)

	case cmdReset:
		if err := dbg.vm.Reset(); err != nil {
			return false, err
		}
		dbg.printLine("emulation reset")

	case cmdSnap:
		dbg.snapshot = dbg.vm.Snapshot()
		dbg.printLine("snapshot taken at %03x", dbg.vm.CPU.PC)

	case cmdRestore:
		if dbg.snapshot == nil {
			return false, curated.Errorf(CommandError, fmt.Errorf("no snapshot to restore"))
		}
		if err := dbg.vm.Plumb(dbg.snapshot); err != nil {
			return false, err
		}
		dbg.printLine("snapshot restored at %03x", dbg.vm.CPU.PC)

	case cmdMemviz:
		var fn string
		if len(tk.args) > 0 {
			fn = tk.args[0]
		} else {
			fn = fmt.Sprintf("%s.dot", paths.UniqueFilename("memviz", dbg.programName))
		}
		if err := dbg.memviz(fn); err != nil {
			return false, err
		}
		dbg.printLine("memviz written to %s", fn)

	case cmdLog:
		n := defaultLogTail
		if len(tk.args) > 0 {
			n, err = parseCount(tk.args[0])
			if err != nil {
				return false, curated.Errorf(CommandError, err)
			}
		}
		logger.Tail(dbg.output, n)
	}

	return false, nil
}

// write a graphviz representation of the CPU, and everything it refers to, to
// the named file.
func (dbg *Debugger) memviz(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(CommandError, err)
	}
	defer f.Close()

	memviz.Map(f, dbg.vm.CPU)

	return nil
}
