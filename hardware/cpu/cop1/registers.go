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

package cop1

import "github.com/n64go/n64pac/hardware/register"

// Revision identifies the floating point unit.
type Revision uint32

var (
	revisionRevision       = register.Bits[Revision](0, 7)
	revisionImplementation = register.Bits[Revision](8, 15)

	revisionLayout = register.Layout{
		revisionRevision.Named("revision"),
		revisionImplementation.Named("implementation"),
	}
)

func (r Revision) Revision() uint8       { return uint8(revisionRevision.Get(r)) }
func (r Revision) Implementation() uint8 { return uint8(revisionImplementation.Get(r)) }
func (r Revision) String() string        { return revisionLayout.Format(uint64(r)) }

// RoundingMode of floating point results.
type RoundingMode uint32

// List of valid RoundingMode values.
const (
	RoundNearest RoundingMode = iota
	RoundZero
	RoundPositive
	RoundNegative
)

func (m RoundingMode) String() string {
	switch m {
	case RoundNearest:
		return "nearest"
	case RoundZero:
		return "toward zero"
	case RoundPositive:
		return "toward +inf"
	case RoundNegative:
		return "toward -inf"
	}
	return "undefined"
}

// Exception is one of the floating point exceptions. Unimplemented is only
// ever a cause. It has no flag or enable bit.
type Exception uint

// List of valid Exception values.
const (
	Inexact Exception = iota
	Underflow
	Overflow
	DivideByZero
	Invalid
	Unimplemented
)

func (e Exception) String() string {
	switch e {
	case Inexact:
		return "inexact"
	case Underflow:
		return "underflow"
	case Overflow:
		return "overflow"
	case DivideByZero:
		return "divide by zero"
	case Invalid:
		return "invalid"
	case Unimplemented:
		return "unimplemented"
	}
	return "undefined"
}

// ControlStatus is the floating point control and status register (FCSR).
type ControlStatus uint32

var (
	csRoundingMode = register.NewEnum(register.Bits[ControlStatus](0, 1), RoundNearest,
		RoundNearest, RoundZero, RoundPositive, RoundNegative)
	csFlags     = register.Bits[ControlStatus](2, 6)
	csEnables   = register.Bits[ControlStatus](7, 11)
	csCauses    = register.Bits[ControlStatus](12, 17)
	csCondition = register.Bit[ControlStatus](23)
	csFlushZero = register.Bit[ControlStatus](24)

	csLayout = register.Layout{
		csRoundingMode.Named("rm"),
		csFlags.Named("flags"),
		csEnables.Named("enables"),
		csCauses.Named("causes"),
		csCondition.Named("c"),
		csFlushZero.Named("fs"),
	}
)

// exception returns the bit for e in the group of bits that starts at shift.
func exception(shift uint, e Exception) register.Flag[ControlStatus] {
	return register.Bit[ControlStatus](shift + uint(e))
}

func (c ControlStatus) RoundingMode() RoundingMode { return csRoundingMode.Get(c) }

func (c ControlStatus) WithRoundingMode(m RoundingMode) ControlStatus {
	return csRoundingMode.Set(c, m)
}

// Flags are the exceptions that have occurred since the flags were last
// cleared. One bit per Exception, excluding Unimplemented.
func (c ControlStatus) Flags() uint8 { return uint8(csFlags.Get(c)) }

func (c ControlStatus) WithFlags(v uint8) ControlStatus { return csFlags.Set(c, ControlStatus(v)) }

// Flag returns true if the flag for the exception is set.
func (c ControlStatus) Flag(e Exception) bool {
	if e >= Unimplemented {
		return false
	}
	return exception(csFlags.Shift, e).Get(c)
}

// WithFlag sets or clears the flag for the exception.
func (c ControlStatus) WithFlag(e Exception, b bool) ControlStatus {
	if e >= Unimplemented {
		return c
	}
	return exception(csFlags.Shift, e).Set(c, b)
}

// Enables are the exceptions that cause a trap.
func (c ControlStatus) Enables() uint8 { return uint8(csEnables.Get(c)) }

func (c ControlStatus) WithEnables(v uint8) ControlStatus { return csEnables.Set(c, ControlStatus(v)) }

func (c ControlStatus) Enabled(e Exception) bool {
	if e >= Unimplemented {
		return false
	}
	return exception(csEnables.Shift, e).Get(c)
}

func (c ControlStatus) WithEnabled(e Exception, b bool) ControlStatus {
	if e >= Unimplemented {
		return c
	}
	return exception(csEnables.Shift, e).Set(c, b)
}

// Causes are the exceptions raised by the most recent instruction.
func (c ControlStatus) Causes() uint8 { return uint8(csCauses.Get(c)) }

func (c ControlStatus) WithCauses(v uint8) ControlStatus { return csCauses.Set(c, ControlStatus(v)) }

func (c ControlStatus) Cause(e Exception) bool { return exception(csCauses.Shift, e).Get(c) }

func (c ControlStatus) WithCause(e Exception, b bool) ControlStatus {
	return exception(csCauses.Shift, e).Set(c, b)
}

// Condition is the result of the most recent floating point compare.
func (c ControlStatus) Condition() bool { return csCondition.Get(c) }

func (c ControlStatus) WithCondition(b bool) ControlStatus { return csCondition.Set(c, b) }

// FlushZero replaces denormalised results with zero rather than raising the
// unimplemented exception.
func (c ControlStatus) FlushZero() bool { return csFlushZero.Get(c) }

func (c ControlStatus) WithFlushZero(b bool) ControlStatus { return csFlushZero.Set(c, b) }

func (c ControlStatus) String() string { return csLayout.Format(uint64(c)) }
