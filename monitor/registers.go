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
	"fmt"
	"strings"
	"unsafe"

	"github.com/n64go/n64pac/hardware"
	"github.com/n64go/n64pac/hardware/cpu/cop0"
	"github.com/n64go/n64pac/hardware/cpu/cop1"
	"github.com/n64go/n64pac/hardware/memory"
	"github.com/n64go/n64pac/hardware/rcp/pi"
	"github.com/n64go/n64pac/hardware/register"
)

// access says which operations are possible on a register.
type access int

const (
	readWrite access = iota
	readOnly
	writeOnly

	// a dual register can be read and written but not modified
	dual
)

func (a access) String() string {
	switch a {
	case readWrite:
		return "rw"
	case readOnly:
		return "ro"
	case writeOnly:
		return "wo"
	case dual:
		return "dual"
	}
	return ""
}

// entry is a register in the monitor's register table. functions that are
// not possible because of the access mode are nil.
type entry struct {
	name   string
	width  int
	access access

	// the location of a memory mapped register. the area is Undefined for
	// coprocessor registers
	area   memory.Area
	offset uint32

	read   func() uint64
	write  func(uint64)
	modify func(mask uint64, value uint64)

	// fields formats a value as the list of fields in the register
	fields func(uint64) string
}

// format the value with the number of digits required by the register.
func (e entry) format(v uint64) string {
	if e.width == 64 {
		return fmt.Sprintf("%#016x", v)
	}
	return fmt.Sprintf("%#08x", v)
}

func widthOf[T register.Value]() int {
	return int(unsafe.Sizeof(T(0))) * 8
}

// fieldsOf formats the value using the String() function of the register
// type. register types that have no fields are shown as a single value.
func fieldsOf[T register.Value](v uint64) string {
	if s, ok := any(T(v)).(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("value=%#x", v)
}

func rwEntry[T register.Value](c *register.RW[T]) entry {
	return entry{
		width:  widthOf[T](),
		access: readWrite,
		read:   func() uint64 { return uint64(c.Read()) },
		write:  func(v uint64) { c.Write(T(v)) },
		modify: func(mask uint64, v uint64) {
			c.Modify(func(r T) T { return r&^T(mask) | T(v&mask) })
		},
		fields: fieldsOf[T],
	}
}

func roEntry[T register.Value](c *register.RO[T]) entry {
	return entry{
		width:  widthOf[T](),
		access: readOnly,
		read:   func() uint64 { return uint64(c.Read()) },
		fields: fieldsOf[T],
	}
}

func woEntry[T register.Value](c *register.WO[T]) entry {
	return entry{
		width:  widthOf[T](),
		access: writeOnly,
		write:  func(v uint64) { c.Write(T(v)) },
		fields: fieldsOf[T],
	}
}

func dualEntry[R register.Value, W register.Value](c *register.Dual[R, W]) entry {
	return entry{
		width:  widthOf[R](),
		access: dual,
		read:   func() uint64 { return uint64(c.Read()) },
		write:  func(v uint64) { c.Write(W(v)) },
		fields: fieldsOf[R],
	}
}

// copEntry creates an entry for a coprocessor register from the accessor
// functions of the register. set and mod are nil for read-only registers.
func copEntry[T register.Value](name string, get func() T, set func(T), mod func(func(T) T)) entry {
	e := entry{
		name:   name,
		width:  widthOf[T](),
		access: readOnly,
		read:   func() uint64 { return uint64(get()) },
		fields: fieldsOf[T],
	}
	if set != nil {
		e.access = readWrite
		e.write = func(v uint64) { set(T(v)) }
		e.modify = func(mask uint64, v uint64) {
			mod(func(r T) T { return r&^T(mask) | T(v&mask) })
		}
	}
	return e
}

// table of every register the monitor knows about, in the order they are
// listed by the DUMP command.
type table struct {
	entries []entry

	// coprocessor registers are found by name. memory mapped registers are
	// found by physical address
	byName    map[string]int
	byAddress map[uint32]int
}

// lookup the register by name. the name is not case sensitive.
func (tab *table) lookup(name string) (entry, bool) {
	if sym, ok := memory.Lookup(name); ok {
		return tab.lookupAddress(sym.Address)
	}
	i, ok := tab.byName[strings.ToUpper(name)]
	if !ok {
		return entry{}, false
	}
	return tab.entries[i], true
}

// lookupAddress finds the memory mapped register at the physical address.
func (tab *table) lookupAddress(address uint32) (entry, bool) {
	i, ok := tab.byAddress[address]
	if !ok {
		return entry{}, false
	}
	return tab.entries[i], true
}

func (tab *table) add(e entry) {
	tab.byName[e.name] = len(tab.entries)
	tab.entries = append(tab.entries, e)
}

// addMapped adds a memory mapped register. the name of the register is the
// canonical name for the address of the cell.
func (tab *table) addMapped(area memory.Area, block unsafe.Pointer, cell unsafe.Pointer, e entry) {
	e.area = area
	e.offset = uint32(uintptr(cell) - uintptr(block))

	address := area.Origin() + e.offset
	name, ok := memory.CanonicalSymbols[address]
	if !ok {
		panic(fmt.Sprintf("monitor: no symbol for %s register at offset %#x", area, e.offset))
	}
	e.name = name

	tab.byAddress[address] = len(tab.entries)
	tab.entries = append(tab.entries, e)
}

// wordEntry is an entry for a word of simulated memory that has no register
// description. the name is the address the word was asked for by.
func wordEntry(name string, area memory.Area, offset uint32, cell *register.RW[uint32]) entry {
	e := rwEntry(cell)
	e.name = name
	e.area = area
	e.offset = offset
	return e
}

// newTable creates the register table for the hardware.
func newTable(hw *hardware.Hardware) *table {
	tab := &table{
		byName:    make(map[string]int),
		byAddress: make(map[uint32]int),
	}

	miBlock := unsafe.Pointer(hw.MI)
	tab.addMapped(memory.MI, miBlock, unsafe.Pointer(&hw.MI.Mode), dualEntry(&hw.MI.Mode))
	tab.addMapped(memory.MI, miBlock, unsafe.Pointer(&hw.MI.Version), roEntry(&hw.MI.Version))
	tab.addMapped(memory.MI, miBlock, unsafe.Pointer(&hw.MI.Interrupt), roEntry(&hw.MI.Interrupt))
	tab.addMapped(memory.MI, miBlock, unsafe.Pointer(&hw.MI.Mask), dualEntry(&hw.MI.Mask))

	viBlock := unsafe.Pointer(hw.VI)
	tab.addMapped(memory.VI, viBlock, unsafe.Pointer(&hw.VI.Ctrl), rwEntry(&hw.VI.Ctrl))
	tab.addMapped(memory.VI, viBlock, unsafe.Pointer(&hw.VI.Origin), rwEntry(&hw.VI.Origin))
	tab.addMapped(memory.VI, viBlock, unsafe.Pointer(&hw.VI.Width), rwEntry(&hw.VI.Width))
	tab.addMapped(memory.VI, viBlock, unsafe.Pointer(&hw.VI.VIntr), rwEntry(&hw.VI.VIntr))
	tab.addMapped(memory.VI, viBlock, unsafe.Pointer(&hw.VI.VCurrent), rwEntry(&hw.VI.VCurrent))
	tab.addMapped(memory.VI, viBlock, unsafe.Pointer(&hw.VI.Burst), rwEntry(&hw.VI.Burst))
	tab.addMapped(memory.VI, viBlock, unsafe.Pointer(&hw.VI.VSync), rwEntry(&hw.VI.VSync))
	tab.addMapped(memory.VI, viBlock, unsafe.Pointer(&hw.VI.HSync), rwEntry(&hw.VI.HSync))
	tab.addMapped(memory.VI, viBlock, unsafe.Pointer(&hw.VI.HSyncLeap), rwEntry(&hw.VI.HSyncLeap))
	tab.addMapped(memory.VI, viBlock, unsafe.Pointer(&hw.VI.HVideo), rwEntry(&hw.VI.HVideo))
	tab.addMapped(memory.VI, viBlock, unsafe.Pointer(&hw.VI.VVideo), rwEntry(&hw.VI.VVideo))
	tab.addMapped(memory.VI, viBlock, unsafe.Pointer(&hw.VI.VBurst), rwEntry(&hw.VI.VBurst))
	tab.addMapped(memory.VI, viBlock, unsafe.Pointer(&hw.VI.XScale), rwEntry(&hw.VI.XScale))
	tab.addMapped(memory.VI, viBlock, unsafe.Pointer(&hw.VI.YScale), rwEntry(&hw.VI.YScale))
	tab.addMapped(memory.VI, viBlock, unsafe.Pointer(&hw.VI.TestAddr), rwEntry(&hw.VI.TestAddr))
	tab.addMapped(memory.VI, viBlock, unsafe.Pointer(&hw.VI.StagedData), rwEntry(&hw.VI.StagedData))

	aiBlock := unsafe.Pointer(hw.AI)
	tab.addMapped(memory.AI, aiBlock, unsafe.Pointer(&hw.AI.DRAMAddr), woEntry(&hw.AI.DRAMAddr))
	tab.addMapped(memory.AI, aiBlock, unsafe.Pointer(&hw.AI.Length), rwEntry(&hw.AI.Length))
	tab.addMapped(memory.AI, aiBlock, unsafe.Pointer(&hw.AI.Control), woEntry(&hw.AI.Control))
	tab.addMapped(memory.AI, aiBlock, unsafe.Pointer(&hw.AI.Status), rwEntry(&hw.AI.Status))
	tab.addMapped(memory.AI, aiBlock, unsafe.Pointer(&hw.AI.DACRate), woEntry(&hw.AI.DACRate))
	tab.addMapped(memory.AI, aiBlock, unsafe.Pointer(&hw.AI.BitRate), woEntry(&hw.AI.BitRate))

	piBlock := unsafe.Pointer(hw.PI)
	tab.addMapped(memory.PI, piBlock, unsafe.Pointer(&hw.PI.DRAMAddr), rwEntry(&hw.PI.DRAMAddr))
	tab.addMapped(memory.PI, piBlock, unsafe.Pointer(&hw.PI.CartAddr), rwEntry(&hw.PI.CartAddr))
	tab.addMapped(memory.PI, piBlock, unsafe.Pointer(&hw.PI.ReadLen), rwEntry(&hw.PI.ReadLen))
	tab.addMapped(memory.PI, piBlock, unsafe.Pointer(&hw.PI.WriteLen), rwEntry(&hw.PI.WriteLen))
	tab.addMapped(memory.PI, piBlock, unsafe.Pointer(&hw.PI.Status), dualEntry(&hw.PI.Status))
	for _, d := range []*pi.Domain{&hw.PI.Domain1, &hw.PI.Domain2} {
		tab.addMapped(memory.PI, piBlock, unsafe.Pointer(&d.Latency), rwEntry(&d.Latency))
		tab.addMapped(memory.PI, piBlock, unsafe.Pointer(&d.PulseWidth), rwEntry(&d.PulseWidth))
		tab.addMapped(memory.PI, piBlock, unsafe.Pointer(&d.PageSize), rwEntry(&d.PageSize))
		tab.addMapped(memory.PI, piBlock, unsafe.Pointer(&d.Release), rwEntry(&d.Release))
	}

	siBlock := unsafe.Pointer(hw.SI)
	tab.addMapped(memory.SI, siBlock, unsafe.Pointer(&hw.SI.DRAMAddr), rwEntry(&hw.SI.DRAMAddr))
	tab.addMapped(memory.SI, siBlock, unsafe.Pointer(&hw.SI.PIFAddrRead64B), rwEntry(&hw.SI.PIFAddrRead64B))
	tab.addMapped(memory.SI, siBlock, unsafe.Pointer(&hw.SI.PIFAddrWrite4B), rwEntry(&hw.SI.PIFAddrWrite4B))
	tab.addMapped(memory.SI, siBlock, unsafe.Pointer(&hw.SI.PIFAddrWrite64B), rwEntry(&hw.SI.PIFAddrWrite64B))
	tab.addMapped(memory.SI, siBlock, unsafe.Pointer(&hw.SI.PIFAddrRead4B), rwEntry(&hw.SI.PIFAddrRead4B))
	tab.addMapped(memory.SI, siBlock, unsafe.Pointer(&hw.SI.Status), rwEntry(&hw.SI.Status))

	c0 := hw.COP0
	tab.add(copEntry("COP0_INDEX", c0.Index, c0.SetIndex, c0.ModifyIndex))
	tab.add(copEntry("COP0_RANDOM", c0.Random, c0.SetRandom, c0.ModifyRandom))
	tab.add(copEntry("COP0_ENTRYLO0", c0.EntryLo0, c0.SetEntryLo0, c0.ModifyEntryLo0))
	tab.add(copEntry("COP0_ENTRYLO1", c0.EntryLo1, c0.SetEntryLo1, c0.ModifyEntryLo1))
	tab.add(copEntry("COP0_CONTEXT", c0.Context, c0.SetContext, c0.ModifyContext))
	tab.add(copEntry("COP0_PAGEMASK", c0.PageMask, c0.SetPageMask, c0.ModifyPageMask))
	tab.add(copEntry("COP0_WIRED", c0.Wired, c0.SetWired, c0.ModifyWired))
	tab.add(copEntry[cop0.BadVAddr]("COP0_BADVADDR", c0.BadVAddr, nil, nil))
	tab.add(copEntry("COP0_COUNT", c0.Count, c0.SetCount, c0.ModifyCount))
	tab.add(copEntry("COP0_ENTRYHI", c0.EntryHi, c0.SetEntryHi, c0.ModifyEntryHi))
	tab.add(copEntry("COP0_COMPARE", c0.Compare, c0.SetCompare, c0.ModifyCompare))
	tab.add(copEntry("COP0_STATUS", c0.Status, c0.SetStatus, c0.ModifyStatus))
	tab.add(copEntry("COP0_CAUSE", c0.Cause, c0.SetCause, c0.ModifyCause))
	tab.add(copEntry("COP0_EPC", c0.ExceptionPC, c0.SetExceptionPC, c0.ModifyExceptionPC))
	tab.add(copEntry[cop0.PRId]("COP0_PRID", c0.PRId, nil, nil))
	tab.add(copEntry("COP0_CONFIG", c0.Config, c0.SetConfig, c0.ModifyConfig))
	tab.add(copEntry("COP0_LLADDR", c0.LLAddr, c0.SetLLAddr, c0.ModifyLLAddr))
	tab.add(copEntry("COP0_WATCHLO", c0.WatchLo, c0.SetWatchLo, c0.ModifyWatchLo))
	tab.add(copEntry("COP0_WATCHHI", c0.WatchHi, c0.SetWatchHi, c0.ModifyWatchHi))
	tab.add(copEntry("COP0_XCONTEXT", c0.XContext, c0.SetXContext, c0.ModifyXContext))
	tab.add(copEntry("COP0_PERR", c0.ParityError, c0.SetParityError, c0.ModifyParityError))
	tab.add(copEntry("COP0_TAGLO", c0.TagLo, c0.SetTagLo, c0.ModifyTagLo))
	tab.add(copEntry("COP0_ERROREPC", c0.ErrorEPC, c0.SetErrorEPC, c0.ModifyErrorEPC))

	c1 := hw.COP1
	tab.add(copEntry[cop1.Revision]("COP1_FCR0", c1.Revision, nil, nil))
	tab.add(copEntry("COP1_FCSR", c1.ControlStatus, c1.SetControlStatus, c1.ModifyControlStatus))

	return tab
}
