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

package sdlplay

import (
	"github.com/faiface/mainthread"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// SDLError is the error pattern for all errors raised by SDL.
const SDLError = "sdl: %v"

// colours of set and unset pixels.
var (
	colourOn  = sdl.Color{R: 0xe0, G: 0xf0, B: 0xe7, A: 0xff}
	colourOff = sdl.Color{R: 0x34, G: 0x3d, B: 0x37, A: 0xff}
)

// SdlPlay is a simple SDL implementation of the hardware.FrameRenderer and
// keypad.Keypad interfaces.
type SdlPlay struct {
	*keypad.State

	Prefs *Preferences

	window   *sdl.Window
	renderer *sdl.Renderer

	// the amount of scaling applied to each pixel
	scale int32

	// rectangles for the most recent frame. reused every frame
	rects []sdl.Rect

	// whether the window has been closed
	closed bool
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. Must be
// called from inside mainthread.Run().
func NewSdlPlay() (*SdlPlay, error) {
	p, err := NewPreferences()
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	scr := &SdlPlay{
		State: keypad.NewState(),
		Prefs: p,
		scale: int32(p.Scale.Get().(int)),
		rects: make([]sdl.Rect, 0, display.Width*display.Height),
	}

	if scr.scale < 1 {
		scr.scale = DefaultScale
	}

	err = mainthread.CallErr(func() error {
		if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
			return err
		}

		var err error
		scr.window, err = sdl.CreateWindow("Gopher8",
			int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
			display.Width*scr.scale, display.Height*scr.scale,
			uint32(sdl.WINDOW_SHOWN))
		if err != nil {
			return err
		}

		scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
		if err != nil {
			scr.window.Destroy()
			return err
		}

		return nil
	})
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	return scr, nil
}

// Destroy frees all resources created by SDL.
func (scr *SdlPlay) Destroy() {
	mainthread.Call(func() {
		if err := scr.renderer.Destroy(); err != nil {
			logger.Log(logger.Allow, "sdl", err.Error())
		}
		if err := scr.window.Destroy(); err != nil {
			logger.Log(logger.Allow, "sdl", err.Error())
		}
		sdl.Quit()
	})
}

// NewFrame implements the hardware.FrameRenderer interface.
func (scr *SdlPlay) NewFrame(frame display.Frame) error {
	scr.rects = scr.rects[:0]
	for y := range frame {
		for x := range frame[y] {
			if frame[y][x] {
				scr.rects = append(scr.rects, sdl.Rect{
					X: int32(x) * scr.scale,
					Y: int32(y) * scr.scale,
					W: scr.scale,
					H: scr.scale,
				})
			}
		}
	}

	err := mainthread.CallErr(func() error {
		if err := scr.renderer.SetDrawColor(colourOff.R, colourOff.G, colourOff.B, colourOff.A); err != nil {
			return err
		}
		if err := scr.renderer.Clear(); err != nil {
			return err
		}
		if len(scr.rects) > 0 {
			if err := scr.renderer.SetDrawColor(colourOn.R, colourOn.G, colourOn.B, colourOn.A); err != nil {
				return err
			}
			if err := scr.renderer.FillRects(scr.rects); err != nil {
				return err
			}
		}
		scr.renderer.Present()
		return nil
	})
	if err != nil {
		return curated.Errorf(SDLError, err)
	}

	return nil
}

// Service the SDL event queue. Returns false if the window has been closed or
// the escape key has been pressed.
func (scr *SdlPlay) Service() bool {
	mainthread.Call(func() {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			switch ev := ev.(type) {
			case *sdl.QuitEvent:
				scr.closed = true

			case *sdl.KeyboardEvent:
				if ev.Repeat != 0 {
					continue
				}

				name := sdl.GetKeyName(ev.Keysym.Sym)
				if name == "Escape" {
					scr.closed = true
					continue
				}

				k, ok := MapKey(name)
				if !ok {
					continue
				}

				switch ev.Type {
				case sdl.KEYDOWN:
					scr.Press(k)
				case sdl.KEYUP:
					scr.Release(k)
				}
			}
		}
	})

	return !scr.closed
}
