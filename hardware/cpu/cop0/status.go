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

package cop0

import (
	"fmt"

	"github.com/n64go/n64pac/hardware/register"
)

// Line is one of the eight interrupt lines of the CPU. The same numbering is
// used by the interrupt mask in Status and the pending interrupts in Cause.
type Line uint

// List of valid Line values. IP0 and IP1 are software interrupts. Timer is
// raised by the Count and Compare registers.
const (
	IP0 Line = iota
	IP1
	Int0
	Int1
	Int2
	Int3
	Int4
	Timer
	NumLines
)

func (l Line) String() string {
	switch l {
	case IP0:
		return "ip0"
	case IP1:
		return "ip1"
	case Timer:
		return "timer"
	}
	if l < NumLines {
		return fmt.Sprintf("int%d", l-Int0)
	}
	return "undefined"
}

// Status is the processor status register.
type Status uint32

var (
	statusIE  = register.Bit[Status](0)
	statusEXL = register.Bit[Status](1)
	statusERL = register.Bit[Status](2)
	statusKSU = register.Bits[Status](3, 4)
	statusUX  = register.Bit[Status](5)
	statusSX  = register.Bit[Status](6)
	statusKX  = register.Bit[Status](7)
	statusIM  = register.Bits[Status](8, 15)
	statusDS  = register.Bits[Status](16, 24)
	statusDE  = register.Bit[Status](16)
	statusCE  = register.Bit[Status](17)
	statusCH  = register.Bit[Status](18)
	statusSR  = register.Bit[Status](20)
	statusTS  = register.Bit[Status](21)
	statusBEV = register.Bit[Status](22)
	statusITS = register.Bit[Status](24)
	statusRE  = register.Bit[Status](25)
	statusFR  = register.Bit[Status](26)
	statusRP  = register.Bit[Status](27)
	statusCU  = register.Bits[Status](28, 31)

	statusLayout = register.Layout{
		statusIE.Named("ie"),
		statusEXL.Named("exl"),
		statusERL.Named("erl"),
		statusKSU.Named("ksu"),
		statusUX.Named("ux"),
		statusSX.Named("sx"),
		statusKX.Named("kx"),
		statusIM.Named("im"),
		statusDS.Named("ds"),
		statusRE.Named("re"),
		statusFR.Named("fr"),
		statusRP.Named("rp"),
		statusCU.Named("cu"),
	}
)

// IE is the global interrupt enable.
func (s Status) IE() bool { return statusIE.Get(s) }

// EXL is set by the CPU when an exception is taken.
func (s Status) EXL() bool { return statusEXL.Get(s) }

// ERL is set by the CPU on reset, soft reset, NMI and cache errors.
func (s Status) ERL() bool { return statusERL.Get(s) }

// KSU is the privilege mode: 0 kernel, 1 supervisor, 2 user.
func (s Status) KSU() uint8 { return uint8(statusKSU.Get(s)) }

func (s Status) UX() bool                 { return statusUX.Get(s) }
func (s Status) SX() bool                 { return statusSX.Get(s) }
func (s Status) KX() bool                 { return statusKX.Get(s) }
func (s Status) InterruptMask() uint8     { return uint8(statusIM.Get(s)) }
func (s Status) DiagnosticStatus() uint16 { return uint16(statusDS.Get(s)) }
func (s Status) DE() bool                 { return statusDE.Get(s) }
func (s Status) CE() bool                 { return statusCE.Get(s) }
func (s Status) CH() bool                 { return statusCH.Get(s) }
func (s Status) SR() bool                 { return statusSR.Get(s) }
func (s Status) TS() bool                 { return statusTS.Get(s) }
func (s Status) BEV() bool                { return statusBEV.Get(s) }
func (s Status) ITS() bool                { return statusITS.Get(s) }
func (s Status) RE() bool                 { return statusRE.Get(s) }

// FR selects 32 (rather than 16) 64 bit floating point registers.
func (s Status) FR() bool { return statusFR.Get(s) }

// RP is the reduced power mode.
func (s Status) RP() bool { return statusRP.Get(s) }

// CU is the set of usable coprocessors, one bit per coprocessor.
func (s Status) CU() uint8 { return uint8(statusCU.Get(s)) }

// InterruptEnabled returns true if the line is unmasked.
func (s Status) InterruptEnabled(l Line) bool {
	return register.Bit[Status](statusIM.Shift + uint(l)).Get(s)
}

// CoprocessorUsable returns true if coprocessor n (0 to 3) is usable.
func (s Status) CoprocessorUsable(n uint) bool {
	return register.Bit[Status](statusCU.Shift + n).Get(s)
}

func (s Status) WithIE(b bool) Status                 { return statusIE.Set(s, b) }
func (s Status) WithEXL(b bool) Status                { return statusEXL.Set(s, b) }
func (s Status) WithERL(b bool) Status                { return statusERL.Set(s, b) }
func (s Status) WithKSU(v uint8) Status               { return statusKSU.Set(s, Status(v)) }
func (s Status) WithUX(b bool) Status                 { return statusUX.Set(s, b) }
func (s Status) WithSX(b bool) Status                 { return statusSX.Set(s, b) }
func (s Status) WithKX(b bool) Status                 { return statusKX.Set(s, b) }
func (s Status) WithInterruptMask(v uint8) Status     { return statusIM.Set(s, Status(v)) }
func (s Status) WithDiagnosticStatus(v uint16) Status { return statusDS.Set(s, Status(v)) }
func (s Status) WithDE(b bool) Status                 { return statusDE.Set(s, b) }
func (s Status) WithCE(b bool) Status                 { return statusCE.Set(s, b) }
func (s Status) WithCH(b bool) Status                 { return statusCH.Set(s, b) }
func (s Status) WithSR(b bool) Status                 { return statusSR.Set(s, b) }
func (s Status) WithTS(b bool) Status                 { return statusTS.Set(s, b) }
func (s Status) WithBEV(b bool) Status                { return statusBEV.Set(s, b) }
func (s Status) WithITS(b bool) Status                { return statusITS.Set(s, b) }
func (s Status) WithRE(b bool) Status                 { return statusRE.Set(s, b) }
func (s Status) WithFR(b bool) Status                 { return statusFR.Set(s, b) }
func (s Status) WithRP(b bool) Status                 { return statusRP.Set(s, b) }
func (s Status) WithCU(v uint8) Status                { return statusCU.Set(s, Status(v)) }

// WithInterruptEnabled masks or unmasks the line.
func (s Status) WithInterruptEnabled(l Line, b bool) Status {
	return register.Bit[Status](statusIM.Shift+uint(l)).Set(s, b)
}

// WithCoprocessorUsable sets the usability of coprocessor n (0 to 3).
func (s Status) WithCoprocessorUsable(n uint, b bool) Status {
	return register.Bit[Status](statusCU.Shift+n).Set(s, b)
}

func (s Status) String() string { return statusLayout.Format(uint64(s)) }

// ExceptionCode is the cause of the most recent exception.
type ExceptionCode uint32

// List of valid ExceptionCode values. Reserved is the decoding of every code
// the CPU doesn't define.
const (
	Interrupt ExceptionCode = iota
	TLBModification
	TLBMissOnLoad
	TLBMissOnStore
	AddressErrorOnLoad
	AddressErrorOnStore
	InstructionBusError
	DataBusError
	Syscall
	Breakpoint
	ReservedInstruction
	CoprocessorUnusable
	ArithmeticOverflow
	Trap
	FloatingPoint ExceptionCode = 15
	Watch         ExceptionCode = 23
	Reserved      ExceptionCode = 24
)

var exceptionCodeNames = map[ExceptionCode]string{
	Interrupt:           "interrupt",
	TLBModification:     "tlb modification",
	TLBMissOnLoad:       "tlb miss on load",
	TLBMissOnStore:      "tlb miss on store",
	AddressErrorOnLoad:  "address error on load",
	AddressErrorOnStore: "address error on store",
	InstructionBusError: "instruction bus error",
	DataBusError:        "data bus error",
	Syscall:             "syscall",
	Breakpoint:          "breakpoint",
	ReservedInstruction: "reserved instruction",
	CoprocessorUnusable: "coprocessor unusable",
	ArithmeticOverflow:  "arithmetic overflow",
	Trap:                "trap",
	FloatingPoint:       "floating point",
	Watch:               "watch",
}

func (c ExceptionCode) String() string {
	if s, ok := exceptionCodeNames[c]; ok {
		return s
	}
	return "reserved"
}

// Cause describes the most recent exception. Only the two software
// interrupt bits can be written.
type Cause uint32

var (
	causeExceptionCode = register.NewEnum(register.Bits[Cause](2, 6), Reserved,
		Interrupt, TLBModification, TLBMissOnLoad, TLBMissOnStore,
		AddressErrorOnLoad, AddressErrorOnStore, InstructionBusError,
		DataBusError, Syscall, Breakpoint, ReservedInstruction,
		CoprocessorUnusable, ArithmeticOverflow, Trap, FloatingPoint,
		Watch, Reserved)
	causeIP          = register.Bits[Cause](8, 15)
	causeCE          = register.Bits[Cause](28, 29)
	causeBranchDelay = register.Bit[Cause](31)

	causeLayout = register.Layout{
		causeExceptionCode.Named("exception_code"),
		causeIP.Named("ip"),
		causeCE.Named("ce"),
		causeBranchDelay.Named("branch_delay"),
	}
)

func (c Cause) ExceptionCode() ExceptionCode { return causeExceptionCode.Get(c) }

// Pending returns true if an interrupt on the line is pending.
func (c Cause) Pending(l Line) bool {
	return register.Bit[Cause](causeIP.Shift + uint(l)).Get(c)
}

// WithPending sets or clears a software interrupt. Only IP0 and IP1 can be
// changed, the request is ignored for other lines.
func (c Cause) WithPending(l Line, b bool) Cause {
	if l > IP1 {
		return c
	}
	return register.Bit[Cause](causeIP.Shift+uint(l)).Set(c, b)
}

// CE is the coprocessor number of a coprocessor unusable exception.
func (c Cause) CE() uint8 { return uint8(causeCE.Get(c)) }

// BranchDelay returns true if the exception happened in a branch delay slot.
func (c Cause) BranchDelay() bool { return causeBranchDelay.Get(c) }

func (c Cause) String() string { return causeLayout.Format(uint64(c)) }

// ExceptionPC is the address at which to resume after an exception.
type ExceptionPC uint64

// Low returns the 32 bit address used when the CPU is in 32 bit mode.
func (e ExceptionPC) Low() uint32 { return uint32(e) }

// WithLow replaces the 32 bit address, leaving the upper word unchanged.
func (e ExceptionPC) WithLow(v uint32) ExceptionPC { return e&^0xffffffff | ExceptionPC(v) }

func (e ExceptionPC) String() string { return fmt.Sprintf("epc=%#016x", uint64(e)) }

// ErrorEPC is the address at which to resume after a reset, NMI or cache
// error.
type ErrorEPC uint64

// Low returns the 32 bit address used when the CPU is in 32 bit mode.
func (e ErrorEPC) Low() uint32 { return uint32(e) }

// WithLow replaces the 32 bit address, leaving the upper word unchanged.
func (e ErrorEPC) WithLow(v uint32) ErrorEPC { return e&^0xffffffff | ErrorEPC(v) }

func (e ErrorEPC) String() string { return fmt.Sprintf("error_epc=%#016x", uint64(e)) }
