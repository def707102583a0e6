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
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// debugger keywords.
const (
	cmdStep    = "STEP"
	cmdRun     = "RUN"
	cmdTick    = "TICK"
	cmdRegs    = "REGS"
	cmdLast    = "LAST"
	cmdMem     = "MEM"
	cmdDisplay = "DISPLAY"
	cmdDisasm  = "DISASM"
	cmdKey     = "KEY"
	cmdReset   = "RESET"
	cmdSnap    = "SNAPSHOT"
	cmdRestore = "RESTORE"
	cmdMemviz  = "MEMVIZ"
	cmdLog     = "LOG"
	cmdHelp    = "HELP"
	cmdQuit    = "QUIT"
)

// the number of arguments, not including the keyword, that each command
// accepts.
type argCount struct {
	min int
	max int
}

var commands = map[string]argCount{
	cmdStep:    {0, 1},
	cmdRun:     {1, 1},
	cmdTick:    {0, 1},
	cmdRegs:    {0, 0},
	cmdLast:    {0, 0},
	cmdMem:     {1, 2},
	cmdDisplay: {0, 0},
	cmdDisasm:  {0, 0},
	cmdKey:     {1, 1},
	cmdReset:   {0, 0},
	cmdSnap:    {0, 0},
	cmdRestore: {0, 0},
	cmdMemviz:  {0, 1},
	cmdLog:     {0, 1},
	cmdHelp:    {0, 0},
	cmdQuit:    {0, 0},
}

// tokens are the parts of a single command line.
type tokens struct {
	keyword string
	args    []string
}

// tokenise and validate the input. an empty line is not an error and in that
// case the keyword field is empty.
func tokenise(input string) (tokens, error) {
	f := strings.Fields(input)
	if len(f) == 0 {
		return tokens{}, nil
	}

	tk := tokens{
		keyword: strings.ToUpper(f[0]),
		args:    f[1:],
	}

	c, ok := commands[tk.keyword]
	if !ok {
		return tokens{}, fmt.Errorf("%s is not a debugging command", f[0])
	}
	if len(tk.args) < c.min {
		return tokens{}, fmt.Errorf("not enough arguments for %s", tk.keyword)
	}
	if len(tk.args) > c.max {
		return tokens{}, fmt.Errorf("too many arguments for %s", tk.keyword)
	}

	return tk, nil
}

// keywords returns a sorted list of all debugger keywords.
func keywords() []string {
	k := make([]string, 0, len(commands))
	for c := range commands {
		k = append(k, c)
	}
	sort.Strings(k)
	return k
}

// parse a positive decimal number.
func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s is not a valid count", s)
	}
	return n, nil
}

// parse a hexadecimal number of no more than bits size.
func parseHex(s string, bits int) (uint64, error) {
	h := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "0x"), "$")
	n, err := strconv.ParseUint(h, 16, bits)
	if err != nil {
		return 0, fmt.Errorf("%s is not a valid hex value", s)
	}
	return n, nil
}
