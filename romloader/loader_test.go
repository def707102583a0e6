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

package romloader_test

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

var program = []byte{0x00, 0xe0, 0x60, 0x0a, 0x00, 0x00}

func writeProgram(t *testing.T, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "test.ch8")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))
	return fn
}

func TestLoadFile(t *testing.T) {
	fn := writeProgram(t, program)

	ld := romloader.NewLoader(fn)
	test.ExpectEquality(t, ld.ShortName(), "test")
	test.ExpectFailure(t, ld.HasLoaded())

	test.DemandSuccess(t, ld.Load())
	test.ExpectSuccess(t, ld.HasLoaded())
	test.ExpectEquality(t, string(ld.Data), string(program))
	test.ExpectEquality(t, ld.Hash, fmt.Sprintf("%x", sha1.Sum(program)))
}

func TestHash(t *testing.T) {
	fn := writeProgram(t, program)

	ld := romloader.NewLoader(fn)
	ld.Hash = fmt.Sprintf("%x", sha1.Sum(program))
	test.ExpectSuccess(t, ld.Load())

	ld = romloader.NewLoader(fn)
	ld.Hash = "0000"
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.UnexpectedHash))
	test.ExpectFailure(t, ld.HasLoaded())
}

func TestLoadErrors(t *testing.T) {
	ld := romloader.NewLoader(filepath.Join(t.TempDir(), "missing.ch8"))
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.LoaderError))
	test.ExpectSuccess(t, errors.Is(err, os.ErrNotExist))

	ld = romloader.NewLoader(writeProgram(t, []byte{}))
	err = ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.EmptyProgram))

	ld = romloader.NewLoader(writeProgram(t, make([]byte, memory.MaxProgramSize+1)))
	err = ld.Load()
	test.ExpectSuccess(t, curated.Is(err, memory.ProgramTooLarge))

	ld = romloader.NewLoader("ftp://example.com/pong.ch8")
	err = ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.UnsupportedScheme))
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pong.ch8" {
			http.NotFound(w, r)
			return
		}
		w.Write(program)
	}))
	defer srv.Close()

	ld := romloader.NewLoader(srv.URL + "/pong.ch8")
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, string(ld.Data), string(program))
	test.ExpectEquality(t, ld.ShortName(), "pong")

	ld = romloader.NewLoader(srv.URL + "/missing.ch8")
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.LoaderError))
}
