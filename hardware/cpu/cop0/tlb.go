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

import "github.com/n64go/n64pac/hardware/register"

// CacheAlgorithm is the caching mode of a TLB page or of KSEG0.
type CacheAlgorithm uint32

// List of valid CacheAlgorithm values.
const (
	Uncached CacheAlgorithm = 0b010
	Cached   CacheAlgorithm = 0b011
)

func (a CacheAlgorithm) String() string {
	switch a {
	case Uncached:
		return "uncached"
	case Cached:
		return "cached"
	}
	return "undefined"
}

// PageSize is the size of the pages mapped by a TLB entry, as encoded in the
// PageMask register.
type PageSize uint32

// List of valid PageSize values. Undefined is the decoding of any pattern
// that isn't a valid page mask.
const (
	KB4       PageSize = 0x000
	Undefined PageSize = 0x001
	KB16      PageSize = 0x003
	KB64      PageSize = 0x00f
	KB256     PageSize = 0x03f
	MB1       PageSize = 0x0ff
	MB4       PageSize = 0x3ff
	MB16      PageSize = 0xfff
)

func (s PageSize) String() string {
	switch s {
	case KB4:
		return "4KB"
	case KB16:
		return "16KB"
	case KB64:
		return "64KB"
	case KB256:
		return "256KB"
	case MB1:
		return "1MB"
	case MB4:
		return "4MB"
	case MB16:
		return "16MB"
	}
	return "undefined"
}

// Region is the segment of the 64 bit virtual address space.
type Region uint64

// List of valid Region values.
const (
	User       Region = 0
	Supervisor Region = 1
	Unknown    Region = 2
	Kernel     Region = 3
)

func (r Region) String() string {
	switch r {
	case User:
		return "user"
	case Supervisor:
		return "supervisor"
	case Kernel:
		return "kernel"
	}
	return "unknown"
}

// Index is the TLB entry used by the TLBR and TLBWI instructions.
type Index uint32

var (
	indexIndex = register.Bits[Index](0, 5)
	indexProbe = register.Bit[Index](31)

	indexLayout = register.Layout{
		indexIndex.Named("index"),
		indexProbe.Named("probe"),
	}
)

func (i Index) Index() uint8            { return uint8(indexIndex.Get(i)) }
func (i Index) WithIndex(v uint8) Index { return indexIndex.Set(i, Index(v)) }
func (i Index) Probe() bool             { return indexProbe.Get(i) }
func (i Index) WithProbe(b bool) Index  { return indexProbe.Set(i, b) }
func (i Index) String() string          { return indexLayout.Format(uint64(i)) }

// Random is the TLB entry used by the TLBWR instruction. It is decremented
// by the CPU on every instruction and cannot be written.
type Random uint32

var (
	randomRandom = register.Bits[Random](0, 5)
	randomLayout = register.Layout{randomRandom.Named("random")}
)

func (r Random) Random() uint8  { return uint8(randomRandom.Get(r)) }
func (r Random) String() string { return randomLayout.Format(uint64(r)) }

// EntryLo is the low half of a TLB entry. There is one for even pages and
// one for odd pages.
type EntryLo uint32

var (
	entryLoGlobal = register.Bit[EntryLo](0)
	entryLoValid  = register.Bit[EntryLo](1)
	entryLoDirty  = register.Bit[EntryLo](2)
	entryLoCache  = register.NewEnum(register.Bits[EntryLo](3, 5), Cached, Uncached, Cached)
	entryLoPFN    = register.Bits[EntryLo](6, 29)

	entryLoLayout = register.Layout{
		entryLoGlobal.Named("global"),
		entryLoValid.Named("valid"),
		entryLoDirty.Named("dirty"),
		entryLoCache.Named("cache_algorithm"),
		entryLoPFN.Named("pfn"),
	}
)

func (e EntryLo) Global() bool                                { return entryLoGlobal.Get(e) }
func (e EntryLo) WithGlobal(b bool) EntryLo                   { return entryLoGlobal.Set(e, b) }
func (e EntryLo) Valid() bool                                 { return entryLoValid.Get(e) }
func (e EntryLo) WithValid(b bool) EntryLo                    { return entryLoValid.Set(e, b) }
func (e EntryLo) Dirty() bool                                 { return entryLoDirty.Get(e) }
func (e EntryLo) WithDirty(b bool) EntryLo                    { return entryLoDirty.Set(e, b) }
func (e EntryLo) CacheAlgorithm() CacheAlgorithm              { return entryLoCache.Get(e) }
func (e EntryLo) WithCacheAlgorithm(a CacheAlgorithm) EntryLo { return entryLoCache.Set(e, a) }
func (e EntryLo) PageFrameNumber() uint32                     { return uint32(entryLoPFN.Get(e)) }
func (e EntryLo) WithPageFrameNumber(v uint32) EntryLo        { return entryLoPFN.Set(e, EntryLo(v)) }
func (e EntryLo) String() string                              { return entryLoLayout.Format(uint64(e)) }

// Context points to the page table entry for the address that caused the
// most recent TLB exception.
type Context uint64

var (
	contextBadVPN2 = register.Bits[Context](4, 22)
	contextPTEBase = register.Bits[Context](23, 63)

	// the page table base as seen in 32 bit mode
	contextPTEBaseLow = register.Bits[Context](23, 31)

	contextLayout = register.Layout{
		contextBadVPN2.Named("bad_vpn2"),
		contextPTEBase.Named("pte_base"),
	}
)

func (c Context) BadVPN2() uint32                 { return uint32(contextBadVPN2.Get(c)) }
func (c Context) WithBadVPN2(v uint32) Context    { return contextBadVPN2.Set(c, Context(v)) }
func (c Context) PTEBase() uint64                 { return uint64(contextPTEBase.Get(c)) }
func (c Context) WithPTEBase(v uint64) Context    { return contextPTEBase.Set(c, Context(v)) }
func (c Context) PTEBaseLow() uint32              { return uint32(contextPTEBaseLow.Get(c)) }
func (c Context) WithPTEBaseLow(v uint32) Context { return contextPTEBaseLow.Set(c, Context(v)) }
func (c Context) String() string                  { return contextLayout.Format(uint64(c)) }

// PageMask sets the size of the pages of a TLB entry.
type PageMask uint32

var pageMaskMask = register.NewEnum(register.Bits[PageMask](13, 24), Undefined,
	KB4, KB16, KB64, KB256, MB1, MB4, MB16, Undefined)

func (p PageMask) PageSize() PageSize               { return pageMaskMask.Get(p) }
func (p PageMask) WithPageSize(s PageSize) PageMask { return pageMaskMask.Set(p, s) }
func (p PageMask) String() string                   { return "mask=" + p.PageSize().String() }

// Wired is the boundary between wired TLB entries and those that can be
// selected by the Random register.
type Wired uint32

var (
	wiredWired  = register.Bits[Wired](0, 5)
	wiredLayout = register.Layout{wiredWired.Named("wired")}
)

func (w Wired) Wired() uint8            { return uint8(wiredWired.Get(w)) }
func (w Wired) WithWired(v uint8) Wired { return wiredWired.Set(w, Wired(v)) }
func (w Wired) String() string          { return wiredLayout.Format(uint64(w)) }

// BadVAddr is the virtual address that caused the most recent TLB or
// address error exception.
type BadVAddr uint64

var badVAddrLayout = register.Layout{register.All[BadVAddr]().Named("badvaddr")}

// Low returns the address recorded when the CPU is in 32 bit mode.
func (b BadVAddr) Low() uint32 { return uint32(b) }

func (b BadVAddr) String() string { return badVAddrLayout.Format(uint64(b)) }

// EntryHi is the high half of a TLB entry.
type EntryHi uint64

var (
	entryHiASID   = register.Bits[EntryHi](0, 7)
	entryHiVPN2   = register.Bits[EntryHi](13, 39)
	entryHiVPN2Lo = register.Bits[EntryHi](13, 31)
	entryHiFill   = register.Bits[EntryHi](40, 61)
	entryHiRegion = register.NewEnum(register.Bits[EntryHi](62, 63), Unknown, User, Supervisor, Unknown, Kernel)

	entryHiLayout = register.Layout{
		entryHiASID.Named("asid"),
		entryHiVPN2.Named("vpn2"),
		entryHiFill.Named("fill"),
		entryHiRegion.Named("region"),
	}
)

func (e EntryHi) ASID() uint8                  { return uint8(entryHiASID.Get(e)) }
func (e EntryHi) WithASID(v uint8) EntryHi     { return entryHiASID.Set(e, EntryHi(v)) }
func (e EntryHi) VPN2() uint32                 { return uint32(entryHiVPN2.Get(e)) }
func (e EntryHi) WithVPN2(v uint32) EntryHi    { return entryHiVPN2.Set(e, EntryHi(v)) }
func (e EntryHi) VPN2Low() uint32              { return uint32(entryHiVPN2Lo.Get(e)) }
func (e EntryHi) WithVPN2Low(v uint32) EntryHi { return entryHiVPN2Lo.Set(e, EntryHi(v)) }
func (e EntryHi) Fill() uint32                 { return uint32(entryHiFill.Get(e)) }
func (e EntryHi) WithFill(v uint32) EntryHi    { return entryHiFill.Set(e, EntryHi(v)) }
func (e EntryHi) Region() Region               { return entryHiRegion.Get(e) }
func (e EntryHi) WithRegion(r Region) EntryHi  { return entryHiRegion.Set(e, r) }
func (e EntryHi) String() string               { return entryHiLayout.Format(uint64(e)) }

// XContext is the 64 bit equivalent of Context.
type XContext uint64

var (
	xcontextBadVPN2 = register.Bits[XContext](4, 30)
	xcontextRegion  = register.NewEnum(register.Bits[XContext](31, 32), Unknown, User, Supervisor, Unknown, Kernel)
	xcontextPTEBase = register.Bits[XContext](33, 63)

	xcontextLayout = register.Layout{
		xcontextBadVPN2.Named("badvpn2"),
		xcontextRegion.Named("region"),
		xcontextPTEBase.Named("ptebase"),
	}
)

func (x XContext) BadVPN2() uint32               { return uint32(xcontextBadVPN2.Get(x)) }
func (x XContext) WithBadVPN2(v uint32) XContext { return xcontextBadVPN2.Set(x, XContext(v)) }
func (x XContext) Region() Region                { return xcontextRegion.Get(x) }
func (x XContext) WithRegion(r Region) XContext  { return xcontextRegion.Set(x, r) }
func (x XContext) PTEBase() uint32               { return uint32(xcontextPTEBase.Get(x)) }
func (x XContext) WithPTEBase(v uint32) XContext { return xcontextPTEBase.Set(x, XContext(v)) }
func (x XContext) String() string                { return xcontextLayout.Format(uint64(x)) }
