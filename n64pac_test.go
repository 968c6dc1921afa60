// This file is part of n64pac.
//
// n64pac is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// n64pac is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with n64pac.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/n64go/n64pac/hardware/memory"
	"github.com/n64go/n64pac/test"
)

func TestHelp(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"-help"}, w), exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "Usage:\n"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "available sub-modes: MONITOR, SCRIPT, MAP"))
}

func TestParseError(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"-nope"}, w), exitParseError)
}

func TestMap(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"map"}, w), exitOK)
	test.ExpectEquality(t, w.String(), memory.Summary())

	w.Clear()
	test.ExpectEquality(t, launch([]string{"MAP", "-symbols"}, w), exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "04400000\tVI_CTRL\n"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "04800018\tSI_STATUS\n"))

	w.Clear()
	test.ExpectEquality(t, launch([]string{"map", "extra"}, w), exitModeError)
}

func TestScript(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.lua")
	err := os.WriteFile(filename, []byte(`
		poke("SI_STATUS", 0)
		print(peek("MI_VERSION"))
	`), 0o600)
	test.DemandSuccess(t, err)

	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"script", "-steal", filename}, w), exitOK)
	test.ExpectEquality(t, w.String(), "33685762\n")

	w.Clear()
	test.ExpectEquality(t, launch([]string{"script", "-steal", "-dump", filename}, w), exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "MI_VERSION       ro   0x02020102\n"))

	w.Clear()
	test.ExpectEquality(t, launch([]string{"script"}, w), exitModeError)
	test.ExpectEquality(t, w.String(), "* error in SCRIPT mode: lua script required for SCRIPT mode\n")
}
