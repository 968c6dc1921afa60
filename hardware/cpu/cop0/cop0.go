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

// Package cop0 gives access to the system control coprocessor of the VR4300.
// COP0 holds the TLB, exception and interrupt state of the CPU.
//
// The registers are reached through a cop.Transport. There is no state in a
// Cop0 value other than the transport so there is no cost to creating one
// when it is needed:
//
//	c := cop0.New(transport)
//	c.ModifyStatus(func(s cop0.Status) cop0.Status {
//		return s.WithIE(true)
//	})
//
// The Modify functions are not atomic. An interrupt handler that writes to
// the same register between the read and the write will have its change
// lost.
package cop0

import "github.com/n64go/n64pac/hardware/cpu/cop"

// register indices.
const (
	regIndex       cop.Index = 0
	regRandom      cop.Index = 1
	regEntryLo0    cop.Index = 2
	regEntryLo1    cop.Index = 3
	regContext     cop.Index = 4
	regPageMask    cop.Index = 5
	regWired       cop.Index = 6
	regBadVAddr    cop.Index = 8
	regCount       cop.Index = 9
	regEntryHi     cop.Index = 10
	regCompare     cop.Index = 11
	regStatus      cop.Index = 12
	regCause       cop.Index = 13
	regEPC         cop.Index = 14
	regPRId        cop.Index = 15
	regConfig      cop.Index = 16
	regLLAddr      cop.Index = 17
	regWatchLo     cop.Index = 18
	regWatchHi     cop.Index = 19
	regXContext    cop.Index = 20
	regParityError cop.Index = 26
	regTagLo       cop.Index = 28
	regErrorEPC    cop.Index = 30
)

// ReadOnly lists the indices of the registers that cannot be written.
var ReadOnly = []cop.Index{regBadVAddr, regPRId}

// Cop0 is the accessor for the COP0 registers.
type Cop0 struct {
	t cop.Transport
}

// New returns a Cop0 that uses the transport.
func New(t cop.Transport) Cop0 {
	return Cop0{t: t}
}

// Read32 and the other raw moves reach any register by index, including the
// indices without a named accessor. No type is put on the value.
func (c Cop0) Read32(idx cop.Index) uint32     { return cop.Read32[uint32](c.t, idx) }
func (c Cop0) Read64(idx cop.Index) uint64     { return cop.Read64[uint64](c.t, idx) }
func (c Cop0) Write32(idx cop.Index, v uint32) { cop.Write32(c.t, idx, v) }
func (c Cop0) Write64(idx cop.Index, v uint64) { cop.Write64(c.t, idx, v) }

func (c Cop0) Index() Index                    { return cop.Read32[Index](c.t, regIndex) }
func (c Cop0) SetIndex(v Index)                { cop.Write32(c.t, regIndex, v) }
func (c Cop0) ModifyIndex(f func(Index) Index) { cop.Modify32(c.t, regIndex, f) }

func (c Cop0) Random() Random                     { return cop.Read32[Random](c.t, regRandom) }
func (c Cop0) SetRandom(v Random)                 { cop.Write32(c.t, regRandom, v) }
func (c Cop0) ModifyRandom(f func(Random) Random) { cop.Modify32(c.t, regRandom, f) }

func (c Cop0) EntryLo0() EntryLo                      { return cop.Read32[EntryLo](c.t, regEntryLo0) }
func (c Cop0) SetEntryLo0(v EntryLo)                  { cop.Write32(c.t, regEntryLo0, v) }
func (c Cop0) ModifyEntryLo0(f func(EntryLo) EntryLo) { cop.Modify32(c.t, regEntryLo0, f) }

func (c Cop0) EntryLo1() EntryLo                      { return cop.Read32[EntryLo](c.t, regEntryLo1) }
func (c Cop0) SetEntryLo1(v EntryLo)                  { cop.Write32(c.t, regEntryLo1, v) }
func (c Cop0) ModifyEntryLo1(f func(EntryLo) EntryLo) { cop.Modify32(c.t, regEntryLo1, f) }

func (c Cop0) Context() Context                      { return cop.Read64[Context](c.t, regContext) }
func (c Cop0) SetContext(v Context)                  { cop.Write64(c.t, regContext, v) }
func (c Cop0) ModifyContext(f func(Context) Context) { cop.Modify64(c.t, regContext, f) }

func (c Cop0) PageMask() PageMask                       { return cop.Read32[PageMask](c.t, regPageMask) }
func (c Cop0) SetPageMask(v PageMask)                   { cop.Write32(c.t, regPageMask, v) }
func (c Cop0) ModifyPageMask(f func(PageMask) PageMask) { cop.Modify32(c.t, regPageMask, f) }

func (c Cop0) Wired() Wired                    { return cop.Read32[Wired](c.t, regWired) }
func (c Cop0) SetWired(v Wired)                { cop.Write32(c.t, regWired, v) }
func (c Cop0) ModifyWired(f func(Wired) Wired) { cop.Modify32(c.t, regWired, f) }

// BadVAddr is read-only.
func (c Cop0) BadVAddr() BadVAddr { return cop.Read64[BadVAddr](c.t, regBadVAddr) }

// Count increments at half the CPU clock rate.
func (c Cop0) Count() uint32                     { return cop.Read32[uint32](c.t, regCount) }
func (c Cop0) SetCount(v uint32)                 { cop.Write32(c.t, regCount, v) }
func (c Cop0) ModifyCount(f func(uint32) uint32) { cop.Modify32(c.t, regCount, f) }

func (c Cop0) EntryHi() EntryHi                      { return cop.Read64[EntryHi](c.t, regEntryHi) }
func (c Cop0) SetEntryHi(v EntryHi)                  { cop.Write64(c.t, regEntryHi, v) }
func (c Cop0) ModifyEntryHi(f func(EntryHi) EntryHi) { cop.Modify64(c.t, regEntryHi, f) }

// Compare raises the timer interrupt when Count reaches the same value.
// Writing to Compare acknowledges the timer interrupt.
func (c Cop0) Compare() uint32                     { return cop.Read32[uint32](c.t, regCompare) }
func (c Cop0) SetCompare(v uint32)                 { cop.Write32(c.t, regCompare, v) }
func (c Cop0) ModifyCompare(f func(uint32) uint32) { cop.Modify32(c.t, regCompare, f) }

func (c Cop0) Status() Status                     { return cop.Read32[Status](c.t, regStatus) }
func (c Cop0) SetStatus(v Status)                 { cop.Write32(c.t, regStatus, v) }
func (c Cop0) ModifyStatus(f func(Status) Status) { cop.Modify32(c.t, regStatus, f) }

func (c Cop0) Cause() Cause                    { return cop.Read32[Cause](c.t, regCause) }
func (c Cop0) SetCause(v Cause)                { cop.Write32(c.t, regCause, v) }
func (c Cop0) ModifyCause(f func(Cause) Cause) { cop.Modify32(c.t, regCause, f) }

func (c Cop0) ExceptionPC() ExceptionPC                          { return cop.Read64[ExceptionPC](c.t, regEPC) }
func (c Cop0) SetExceptionPC(v ExceptionPC)                      { cop.Write64(c.t, regEPC, v) }
func (c Cop0) ModifyExceptionPC(f func(ExceptionPC) ExceptionPC) { cop.Modify64(c.t, regEPC, f) }

// PRId is read-only.
func (c Cop0) PRId() PRId { return cop.Read32[PRId](c.t, regPRId) }

func (c Cop0) Config() Config                     { return cop.Read32[Config](c.t, regConfig) }
func (c Cop0) SetConfig(v Config)                 { cop.Write32(c.t, regConfig, v) }
func (c Cop0) ModifyConfig(f func(Config) Config) { cop.Modify32(c.t, regConfig, f) }

// LLAddr is the physical address of the most recent load linked
// instruction, shifted right by four.
func (c Cop0) LLAddr() uint32                     { return cop.Read32[uint32](c.t, regLLAddr) }
func (c Cop0) SetLLAddr(v uint32)                 { cop.Write32(c.t, regLLAddr, v) }
func (c Cop0) ModifyLLAddr(f func(uint32) uint32) { cop.Modify32(c.t, regLLAddr, f) }

func (c Cop0) WatchLo() WatchLo                      { return cop.Read32[WatchLo](c.t, regWatchLo) }
func (c Cop0) SetWatchLo(v WatchLo)                  { cop.Write32(c.t, regWatchLo, v) }
func (c Cop0) ModifyWatchLo(f func(WatchLo) WatchLo) { cop.Modify32(c.t, regWatchLo, f) }

func (c Cop0) WatchHi() WatchHi                      { return cop.Read32[WatchHi](c.t, regWatchHi) }
func (c Cop0) SetWatchHi(v WatchHi)                  { cop.Write32(c.t, regWatchHi, v) }
func (c Cop0) ModifyWatchHi(f func(WatchHi) WatchHi) { cop.Modify32(c.t, regWatchHi, f) }

func (c Cop0) XContext() XContext                       { return cop.Read64[XContext](c.t, regXContext) }
func (c Cop0) SetXContext(v XContext)                   { cop.Write64(c.t, regXContext, v) }
func (c Cop0) ModifyXContext(f func(XContext) XContext) { cop.Modify64(c.t, regXContext, f) }

func (c Cop0) ParityError() ParityError {
	return cop.Read32[ParityError](c.t, regParityError)
}

func (c Cop0) SetParityError(v ParityError) {
	cop.Write32(c.t, regParityError, v)
}

func (c Cop0) ModifyParityError(f func(ParityError) ParityError) {
	cop.Modify32(c.t, regParityError, f)
}

func (c Cop0) TagLo() TagLo                    { return cop.Read32[TagLo](c.t, regTagLo) }
func (c Cop0) SetTagLo(v TagLo)                { cop.Write32(c.t, regTagLo, v) }
func (c Cop0) ModifyTagLo(f func(TagLo) TagLo) { cop.Modify32(c.t, regTagLo, f) }

func (c Cop0) ErrorEPC() ErrorEPC                       { return cop.Read64[ErrorEPC](c.t, regErrorEPC) }
func (c Cop0) SetErrorEPC(v ErrorEPC)                   { cop.Write64(c.t, regErrorEPC, v) }
func (c Cop0) ModifyErrorEPC(f func(ErrorEPC) ErrorEPC) { cop.Modify64(c.t, regErrorEPC, f) }
