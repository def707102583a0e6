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

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/faiface/mainthread"
	"github.com/jetsetilly/gopher8/debugger"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/gui/sdlplay"
	"github.com/jetsetilly/gopher8/gui/terminal"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/version"
)

// exit values.
const (
	exitParseError = 10
	exitModeError  = 20
)

// the usage string for the prefs flag. the same in every mode.
const prefsUsage = "override preferences for this run. eg. chip8.clockspeed::1000; chip8.subnquirk::true"

// all SDL calls must happen on the main thread. the mainthread package runs
// launch() in a separate goroutine and services calls from the SDL frontend
func main() {
	exitVal := 0
	mainthread.Run(func() {
		exitVal = launch(os.Args[1:], os.Stdout)
	})
	os.Exit(exitVal)
}

// launch the mode specified by the command line arguments. returns the exit
// value for the program.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "PLAY", "SDL", "DEBUG", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		fallthrough

	case "PLAY":
		err = play(md)

	case "SDL":
		err = playSDL(md)

	case "DEBUG":
		err = debug(md)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return 0
}

// the single program argument for the mode.
func programArg(md *modalflag.Modes) (romloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return romloader.Loader{}, fmt.Errorf("CHIP-8 program required for %s mode", md)
	case 1:
	default:
		return romloader.Loader{}, fmt.Errorf("too many arguments for %s mode", md)
	}

	ld := romloader.NewLoader(md.GetArg(0))
	if err := ld.Load(); err != nil {
		return romloader.Loader{}, err
	}

	return ld, nil
}

// create a new Chip8 with the program loaded. the override string is pushed
// onto the command line preferences stack for the duration of the function,
// which means any preferences created by the setup function will also see
// the override.
func newChip8(ld romloader.Loader, override string, kp keypad.Keypad, setup func() error) (*hardware.Chip8, error) {
	prefs.PushCommandLineStack(override)
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	if setup != nil {
		if err := setup(); err != nil {
			return nil, err
		}
	}

	vm, err := hardware.NewChip8(p, kp, nil)
	if err != nil {
		return nil, err
	}

	if err := vm.Load(ld.Data); err != nil {
		return nil, err
	}

	return vm, nil
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	override := md.AddString("prefs", "", prefsUsage)
	status := md.AddBool("status", true, "show CPU status beneath the display")
	md.AdditionalHelp("keys 0-9 and a-f press the corresponding CHIP-8 key. ESC to quit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ld, err := programArg(md)
	if err != nil {
		return err
	}

	kp := terminal.NewKeypad()

	vm, err := newChip8(ld, *override, kp, nil)
	if err != nil {
		return err
	}

	trm, err := terminal.NewTerminal(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	if err := trm.RawMode(); err != nil {
		return err
	}
	defer func() {
		_ = trm.CanonicalMode()
	}()

	var statusFunc terminal.StatusFunc
	if *status {
		statusFunc = func() string {
			return fmt.Sprintf("%s %s | %s", vm.CPU, vm.Timers, vm.CPU.LastResult)
		}
	}

	if err := vm.AddFrameRenderer(terminal.NewRenderer(os.Stdout, statusFunc)); err != nil {
		return err
	}

	quit := make(chan bool)
	done := make(chan bool)
	defer close(done)
	go kp.Service(trm, quit, done)

	err = vm.Run(func() (govern.State, error) {
		select {
		case <-quit:
			return govern.Ending, nil
		default:
		}
		return govern.Running, nil
	})
	if err != nil {
		return err
	}

	// the display remains visible after the program has halted until the
	// user quits
	if vm.State() == govern.Halted {
		<-quit
	}

	return nil
}

func playSDL(md *modalflag.Modes) error {
	md.NewMode()

	override := md.AddString("prefs", "", prefsUsage)
	log := md.AddBool("log", false, "echo debugging log to stderr")
	md.AdditionalHelp("keypad is mapped to 1234/QWER/ASDF/ZXCV. ESC to quit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ld, err := programArg(md)
	if err != nil {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
		defer logger.SetEcho(nil)
	}

	var scr *sdlplay.SdlPlay

	vm, err := newChip8(ld, *override, nil, func() error {
		var err error
		scr, err = sdlplay.NewSdlPlay()
		return err
	})
	if scr != nil {
		defer scr.Destroy()
	}
	if err != nil {
		return err
	}

	vm.PlumbKeypad(scr)
	if err := vm.AddFrameRenderer(scr); err != nil {
		return err
	}

	err = vm.Run(func() (govern.State, error) {
		if !scr.Service() {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	if err != nil {
		return err
	}

	// keep servicing the window after the program has halted
	for vm.State() == govern.Halted && scr.Service() {
		time.Sleep(50 * time.Millisecond)
	}

	return nil
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	override := md.AddString("prefs", "", prefsUsage)
	echo := md.AddBool("log", false, "echo debugging log to output")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ld, err := programArg(md)
	if err != nil {
		return err
	}

	if *echo {
		logger.SetEcho(md.Output)
		defer logger.SetEcho(nil)
	}

	keys := keypad.NewState()

	vm, err := newChip8(ld, *override, keys, nil)
	if err != nil {
		return err
	}

	dbg := debugger.NewDebugger(vm, keys, os.Stdin, md.Output)
	dbg.SetProgramName(ld.ShortName())

	return dbg.Start()
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ld, err := programArg(md)
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromLoader(ld)
	if err != nil {
		return err
	}

	return dsm.Write(md.Output, disassembly.WriteAttr{ByteCode: *bytecode})
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	override := md.AddString("prefs", "", prefsUsage)
	uncapped := md.AddBool("uncapped", false, "run as quickly as possible")
	duration := md.AddDuration("duration", 5*time.Second, "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "NONE", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma separated)")
	showDigest := md.AddBool("digest", false, "show digest of the display at the end of the run")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	ld, err := programArg(md)
	if err != nil {
		return err
	}

	vm, err := newChip8(ld, *override, nil, nil)
	if err != nil {
		return err
	}
	vm.SetLogging(false)

	dig := digest.NewVideo()
	if *showDigest {
		if err := vm.AddFrameRenderer(dig); err != nil {
			return err
		}
	}

	if stats != nil && *stats {
		statsview.Launch(md.Output)
	}

	if err := performance.Check(md.Output, prf, vm, *uncapped, *duration); err != nil {
		return err
	}

	if *showDigest {
		fmt.Fprintf(md.Output, "%s (%d frames)\n", dig.Hash(), dig.Frames())
	}

	return nil
}
