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

package memory

import (
	"errors"

	"github.com/n64go/n64pac/curated"
	"github.com/n64go/n64pac/hardware"
	"github.com/n64go/n64pac/hardware/cpu/cop"
	"github.com/n64go/n64pac/hardware/cpu/cop0"
	"github.com/n64go/n64pac/hardware/cpu/cop1"
	"github.com/n64go/n64pac/hardware/register"
	"github.com/n64go/n64pac/logger"
)

// Error patterns for Simulation.
const (
	SimulationAddress = "simulation: address not in a register area: %#x"
	SimulationAlign   = "simulation: address is not word aligned: %#x"
)

// Values of the read-only registers after a reset of the console.
const (
	ResetMIVersion = 0x0202_0102
	ResetPRId      = 0x0000_0b22
	ResetConfig    = 0x7006_e463
	ResetStatus    = 0x3400_0000
	ResetFCR0      = 0x0000_0a00
)

// Simulation is a complete set of simulated registers. Register blocks are
// simulated by memory with no hardware behind it: the value read from a
// register is the last value written to it. Read-only coprocessor registers
// are protected.
type Simulation struct {
	regions map[Area]*Region

	COP0 *cop.File
	COP1 *cop.File
}

// NewSimulation is the preferred method of initialisation for the Simulation
// type.
func NewSimulation() (*Simulation, error) {
	sim := &Simulation{
		regions: make(map[Area]*Region),
		COP0:    cop.NewFile(),
		COP1:    cop.NewFile(),
	}

	for _, a := range Areas {
		r, err := NewRegion(uintptr(a.Size()))
		if err != nil {
			sim.Close()
			return nil, curated.Errorf("simulation: %v", err)
		}
		sim.regions[a] = r
	}

	sim.COP0.Protect(cop0.ReadOnly...)
	sim.COP1.Protect(cop1.ReadOnly...)
	sim.Reset()

	logger.Log(logger.Allow, "memory", "simulation created")

	return sim, nil
}

// Reset zeroes every register and then sets the registers that have a known
// value after a reset of the console.
func (sim *Simulation) Reset() {
	for _, r := range sim.regions {
		clear(r.Bytes())
	}
	sim.COP0.Reset()
	sim.COP1.Reset()

	sim.Poke(MI, 0x04, ResetMIVersion)
	sim.COP0.Load(15, ResetPRId)
	sim.COP0.Load(16, ResetConfig)
	sim.COP0.Load(12, ResetStatus)
	sim.COP1.Load(0, ResetFCR0)
}

// Close releases the memory of the simulation.
func (sim *Simulation) Close() error {
	var errs []error
	for a, r := range sim.regions {
		errs = append(errs, r.Close())
		delete(sim.regions, a)
	}
	return errors.Join(errs...)
}

// Base returns the address of the simulated area. The result is zero if the
// area is Undefined or the simulation has been closed.
func (sim *Simulation) Base(a Area) uintptr {
	if r, ok := sim.regions[a]; ok {
		return r.Base()
	}
	return 0
}

// Platform returns the platform that locates the simulated registers.
func (sim *Simulation) Platform() hardware.Platform {
	return hardware.Platform{
		MI:   sim.Base(MI),
		VI:   sim.Base(VI),
		AI:   sim.Base(AI),
		PI:   sim.Base(PI),
		SI:   sim.Base(SI),
		COP0: sim.COP0,
		COP1: sim.COP1,
	}
}

// Translate converts an N64 address into the address of the simulated
// register.
func (sim *Simulation) Translate(address uint64) (uintptr, error) {
	offset, area := MapAddress(address)
	if area == Undefined {
		return 0, curated.Errorf(SimulationAddress, address)
	}
	if offset%4 != 0 {
		return 0, curated.Errorf(SimulationAlign, address)
	}
	return sim.Base(area) + uintptr(offset), nil
}

// Peek returns the word at the offset in the area. Peek ignores the access
// mode of the register and is intended for setting up and inspecting
// simulations.
func (sim *Simulation) Peek(a Area, offset uint32) uint32 {
	return register.At[register.RW[uint32]](sim.Base(a) + uintptr(offset)).Read()
}

// Poke sets the word at the offset in the area. Poke ignores the access mode
// of the register.
func (sim *Simulation) Poke(a Area, offset uint32, v uint32) {
	register.At[register.RW[uint32]](sim.Base(a) + uintptr(offset)).Write(v)
}
