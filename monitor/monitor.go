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

package monitor

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/n64go/n64pac/curated"
	"github.com/n64go/n64pac/hardware"
	"github.com/n64go/n64pac/hardware/memory"
	"github.com/n64go/n64pac/hardware/register"
	"github.com/n64go/n64pac/logger"
	"github.com/n64go/n64pac/monitor/terminal"
)

// the prompt shown by an interactive terminal.
const prompt = "n64pac> "

// Monitor is the command interpreter.
type Monitor struct {
	platform hardware.Platform

	// the simulation behind the platform. nil if the platform is not a
	// simulation
	sim *memory.Simulation

	// nil until the hardware is claimed or stolen
	hw   *hardware.Hardware
	regs *table

	output io.Writer

	// set by the QUIT command
	quit bool
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
// The simulation can be nil.
func NewMonitor(platform hardware.Platform, sim *memory.Simulation, output io.Writer) *Monitor {
	return &Monitor{
		platform: platform,
		sim:      sim,
		output:   output,
	}
}

// NewSimulationMonitor creates a monitor for the simulation.
func NewSimulationMonitor(sim *memory.Simulation, output io.Writer) *Monitor {
	return NewMonitor(sim.Platform(), sim, output)
}

func (mon *Monitor) printf(format string, args ...any) {
	fmt.Fprintf(mon.output, format, args...)
}

// Run reads commands from the terminal until the QUIT command or the end of
// input. Errors from commands are printed and do not stop the monitor.
func (mon *Monitor) Run(term terminal.Terminal) error {
	mon.output = term
	mon.quit = false

	if term.IsInteractive() {
		mon.printf("type HELP for a list of commands\n")
	}

	for !mon.quit {
		input, err := term.ReadLine(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return curated.Errorf("monitor: %v", err)
		}

		err = mon.Execute(input)
		if err != nil {
			mon.printf("* %v\n", err)
		}
	}

	return nil
}

// Execute a single command line. Empty lines and lines beginning with a hash
// are ignored.
func (mon *Monitor) Execute(input string) error {
	tokens := strings.Fields(input)
	if len(tokens) == 0 || strings.HasPrefix(tokens[0], "#") {
		return nil
	}

	cmd, ok := commands[strings.ToUpper(tokens[0])]
	if !ok {
		return curated.Errorf(UnknownCommand, tokens[0])
	}

	args := tokens[1:]
	if len(args) < cmd.minArgs || len(args) > cmd.maxArgs {
		return curated.Errorf(Usage, cmd.usage)
	}

	return cmd.fn(mon, args)
}

// take sets up the monitor for the hardware.
func (mon *Monitor) take(hw *hardware.Hardware) {
	mon.hw = hw
	mon.regs = newTable(hw)
	logger.Logf(logger.Allow, "monitor", "%d registers", len(mon.regs.entries))
}

func (mon *Monitor) lookup(name string) (entry, error) {
	if mon.hw == nil {
		return entry{}, curated.Errorf(NotClaimed)
	}
	if e, ok := mon.regs.lookup(name); ok {
		return e, nil
	}

	// anything that isn't a register name might be an address
	address, err := strconv.ParseUint(name, 0, 64)
	if err != nil {
		return entry{}, curated.Errorf(UnknownRegister, name)
	}
	return mon.lookupAddress(name, address)
}

// lookupAddress finds the register at the address. When the monitor is
// connected to a simulation, words in a register area that have no register
// description can also be reached.
func (mon *Monitor) lookupAddress(name string, address uint64) (entry, error) {
	offset, area := memory.MapAddress(address)
	if area != memory.Undefined {
		if e, ok := mon.regs.lookupAddress(area.Origin() + offset); ok {
			return e, nil
		}
	}

	if mon.sim == nil {
		return entry{}, curated.Errorf(UnknownRegister, name)
	}

	p, err := mon.sim.Translate(address)
	if err != nil {
		return entry{}, err
	}
	return wordEntry(name, area, offset, register.At[register.RW[uint32]](p)), nil
}

// read the register. write-only registers can be read when the monitor is
// connected to a simulation.
func (mon *Monitor) read(e entry) (uint64, error) {
	if e.read != nil {
		return e.read(), nil
	}
	if mon.sim != nil && e.area != memory.Undefined {
		return uint64(mon.sim.Peek(e.area, e.offset)), nil
	}
	return 0, curated.Errorf(NotReadable, e.name)
}

// parseValue parses s as a value of the width of the register.
func parseValue(e entry, s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, e.width)
	if err != nil {
		return 0, curated.Errorf(BadValue, e.width, s)
	}
	return v, nil
}

// Peek returns the value of the named register.
func (mon *Monitor) Peek(name string) (uint64, error) {
	e, err := mon.lookup(name)
	if err != nil {
		return 0, err
	}
	return mon.read(e)
}

// Poke writes the value to the named register.
func (mon *Monitor) Poke(name string, value uint64) error {
	e, err := mon.lookup(name)
	if err != nil {
		return err
	}
	if e.write == nil {
		return curated.Errorf(NotWritable, e.name)
	}
	e.write(value)
	return nil
}

// Modify changes the bits of the named register that are set in the mask to
// the corresponding bits in the value.
func (mon *Monitor) Modify(name string, mask uint64, value uint64) error {
	e, err := mon.lookup(name)
	if err != nil {
		return err
	}
	if e.modify == nil {
		switch e.access {
		case readOnly:
			return curated.Errorf(NotWritable, e.name)
		case writeOnly:
			return curated.Errorf(NotReadable, e.name)
		}
		return curated.Errorf(NotModifiable, e.name)
	}
	e.modify(mask, value)
	return nil
}
