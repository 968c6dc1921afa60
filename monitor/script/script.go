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

package script

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/n64go/n64pac/curated"
	"github.com/n64go/n64pac/logger"
)

// Error patterns returned by the package.
const (
	ScriptError = "script: %v"
	ValueError  = "script: not a register value: %s"
)

// Registers is the interface to the registers used by the script.
type Registers interface {
	Peek(name string) (uint64, error)
	Poke(name string, value uint64) error
	Modify(name string, mask uint64, value uint64) error
}

// Script is a Lua state connected to a set of registers.
type Script struct {
	regs   Registers
	output io.Writer
	state  *lua.LState
}

// NewScript is the preferred method of initialisation for the Script type.
// The script must be closed when it is no longer needed.
func NewScript(regs Registers, output io.Writer) *Script {
	scr := &Script{
		regs:   regs,
		output: output,
		state:  lua.NewState(),
	}

	scr.state.SetGlobal("peek", scr.state.NewFunction(scr.peek))
	scr.state.SetGlobal("poke", scr.state.NewFunction(scr.poke))
	scr.state.SetGlobal("modify", scr.state.NewFunction(scr.modify))
	scr.state.SetGlobal("log", scr.state.NewFunction(scr.log))
	scr.state.SetGlobal("print", scr.state.NewFunction(scr.print))

	return scr
}

// Close the Lua state.
func (scr *Script) Close() {
	scr.state.Close()
}

// RunFile runs the Lua script in the named file.
func (scr *Script) RunFile(filename string) error {
	logger.Logf(logger.Allow, "script", "running %s", filename)
	if err := scr.state.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunString runs the Lua source.
func (scr *Script) RunString(source string) error {
	if err := scr.state.DoString(source); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// Run is a convenience function that runs the named file with a new Script.
func Run(regs Registers, output io.Writer, filename string) error {
	scr := NewScript(regs, output)
	defer scr.Close()
	return scr.RunFile(filename)
}

// value converts the Lua value at stack position n to a register value.
func (scr *Script) value(n int) uint64 {
	switch v := scr.state.CheckAny(n).(type) {
	case lua.LNumber:
		// Lua numbers are floats. only whole numbers in the range of a
		// register can be converted
		if v < 0 || v >= 1<<64 || float64(v) != math.Trunc(float64(v)) {
			scr.state.RaiseError(ValueError, v.String())
		}
		return uint64(v)
	case lua.LString:
		u, err := strconv.ParseUint(strings.ReplaceAll(string(v), "_", ""), 0, 64)
		if err != nil {
			scr.state.RaiseError(ValueError, string(v))
		}
		return u
	default:
		scr.state.ArgError(n, "register value must be a number or string")
	}
	return 0
}

func (scr *Script) peek(L *lua.LState) int {
	v, err := scr.regs.Peek(L.CheckString(1))
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	if err := scr.regs.Poke(L.CheckString(1), scr.value(2)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) modify(L *lua.LState) int {
	if err := scr.regs.Modify(L.CheckString(1), scr.value(2), scr.value(3)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) log(L *lua.LState) int {
	logger.Log(logger.Allow, L.CheckString(1), L.CheckString(2))
	return 0
}

func (scr *Script) print(L *lua.LState) int {
	s := make([]string, L.GetTop())
	for i := range s {
		s[i] = L.ToStringMeta(L.Get(i + 1)).String()
	}
	fmt.Fprintln(scr.output, strings.Join(s, "\t"))
	return 0
}
