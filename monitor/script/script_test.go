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

package script_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/n64go/n64pac/curated"
	"github.com/n64go/n64pac/logger"
	"github.com/n64go/n64pac/monitor/script"
	"github.com/n64go/n64pac/test"
)

const unknownRegister = "unknown register: %s"

// registers is a map of register names to values. registers starting with RO_
// cannot be written.
type registers map[string]uint64

func (r registers) Peek(name string) (uint64, error) {
	v, ok := r[name]
	if !ok {
		return 0, curated.Errorf(unknownRegister, name)
	}
	return v, nil
}

func (r registers) Poke(name string, value uint64) error {
	if _, ok := r[name]; !ok || strings.HasPrefix(name, "RO_") {
		return curated.Errorf(unknownRegister, name)
	}
	r[name] = value
	return nil
}

func (r registers) Modify(name string, mask uint64, value uint64) error {
	v, err := r.Peek(name)
	if err != nil {
		return err
	}
	return r.Poke(name, v&^mask|value&mask)
}

func TestPeekPoke(t *testing.T) {
	regs := registers{"VI_CTRL": 0, "VI_ORIGIN": 0x1234}
	w := &test.CompareWriter{}

	scr := script.NewScript(regs, w)
	defer scr.Close()

	err := scr.RunString(`
		poke("VI_CTRL", 0x3003)
		poke("VI_ORIGIN", peek("VI_ORIGIN") + 1)
		print(peek("VI_CTRL"))
	`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, regs["VI_CTRL"], uint64(0x3003))
	test.ExpectEquality(t, regs["VI_ORIGIN"], uint64(0x1235))
	test.ExpectEquality(t, w.String(), "12291\n")
}

func TestModify(t *testing.T) {
	regs := registers{"COP0_STATUS": 0x3400_0000}

	scr := script.NewScript(regs, &test.CompareWriter{})
	defer scr.Close()

	err := scr.RunString(`modify("COP0_STATUS", 0x1, 0x1)`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, regs["COP0_STATUS"], uint64(0x3400_0001))

	err = scr.RunString(`modify("COP0_STATUS", "0x3000_0000", "0")`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, regs["COP0_STATUS"], uint64(0x0400_0001))
}

func TestStringValues(t *testing.T) {
	regs := registers{"COP0_EPC": 0}

	scr := script.NewScript(regs, &test.CompareWriter{})
	defer scr.Close()

	// too wide to be represented exactly by a Lua number
	err := scr.RunString(`poke("COP0_EPC", "0xffffffff80001001")`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, regs["COP0_EPC"], uint64(0xffff_ffff_8000_1001))

	err = scr.RunString(`poke("COP0_EPC", "wrong")`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))
}

func TestNumberValues(t *testing.T) {
	regs := registers{"VI_ORIGIN": 0x100}

	scr := script.NewScript(regs, &test.CompareWriter{})
	defer scr.Close()

	for _, v := range []string{"-1", "0.5", "2^64", "0/0"} {
		err := scr.RunString(`poke("VI_ORIGIN", ` + v + `)`)
		test.ExpectFailure(t, err)
		test.ExpectSuccess(t, strings.Contains(err.Error(), "not a register value"))
		test.ExpectEquality(t, regs["VI_ORIGIN"], uint64(0x100))
	}

	err := scr.RunString(`modify("VI_ORIGIN", 0xff, -2)`)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, regs["VI_ORIGIN"], uint64(0x100))

	// whole numbers written as floats are fine
	err = scr.RunString(`poke("VI_ORIGIN", 2.0e3)`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, regs["VI_ORIGIN"], uint64(2000))
}

func TestErrors(t *testing.T) {
	regs := registers{"RO_VERSION": 0x0202_0102}

	scr := script.NewScript(regs, &test.CompareWriter{})
	defer scr.Close()

	err := scr.RunString(`poke("RO_VERSION", 0)`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, strings.Contains(err.Error(), "unknown register: RO_VERSION"))
	test.ExpectEquality(t, regs["RO_VERSION"], uint64(0x0202_0102))

	err = scr.RunString(`peek("NONE")`)
	test.ExpectFailure(t, err)

	err = scr.RunString(`this is not lua`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))
}

func TestLog(t *testing.T) {
	scr := script.NewScript(registers{}, &test.CompareWriter{})
	defer scr.Close()

	logger.Clear()
	err := scr.RunString(`log("lua", "hello from the script")`)
	test.ExpectSuccess(t, err)

	w := &test.CompareWriter{}
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "lua: hello from the script\n")
}

func TestRunFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.lua")
	err := os.WriteFile(filename, []byte(`poke("SI_STATUS", 0)`), 0o600)
	test.DemandSuccess(t, err)

	regs := registers{"SI_STATUS": 0x1000}
	err = script.Run(regs, &test.CompareWriter{}, filename)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, regs["SI_STATUS"], uint64(0))

	err = script.Run(regs, &test.CompareWriter{}, filepath.Join(t.TempDir(), "missing.lua"))
	test.ExpectFailure(t, err)
}
