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

// PRId identifies the processor. It is read-only.
type PRId uint32

var (
	prIDRevision    = register.Bits[PRId](0, 7)
	prIDProcessorID = register.Bits[PRId](8, 15)

	prIDLayout = register.Layout{
		prIDRevision.Named("revision"),
		prIDProcessorID.Named("processor_id"),
	}
)

func (p PRId) Revision() uint8    { return uint8(prIDRevision.Get(p)) }
func (p PRId) ProcessorID() uint8 { return uint8(prIDProcessorID.Get(p)) }
func (p PRId) String() string     { return prIDLayout.Format(uint64(p)) }

// Config is the processor configuration register.
type Config uint32

var (
	configK0 = register.NewEnum(register.Bits[Config](0, 2), Cached, Uncached, Cached)
	configCU = register.Bit[Config](3)
	configBE = register.Bit[Config](15)
	configEP = register.Bits[Config](24, 27)
	configEC = register.Bits[Config](28, 30)

	configLayout = register.Layout{
		configK0.Named("k0"),
		configCU.Named("cu"),
		configBE.Named("be"),
		configEP.Named("ep"),
		configEC.Named("ec"),
	}
)

// K0 is the cache algorithm used for KSEG0.
func (c Config) K0() CacheAlgorithm { return configK0.Get(c) }

func (c Config) CU() bool { return configCU.Get(c) }

// BE returns true if the CPU is big-endian. It always is on the N64.
func (c Config) BE() bool { return configBE.Get(c) }

// EP is the transfer data pattern of the system interface.
func (c Config) EP() uint8 { return uint8(configEP.Get(c)) }

// EC is the ratio of the system clock to the CPU pipeline clock. It is
// read-only.
func (c Config) EC() uint8 { return uint8(configEC.Get(c)) }

func (c Config) WithK0(a CacheAlgorithm) Config { return configK0.Set(c, a) }
func (c Config) WithCU(b bool) Config           { return configCU.Set(c, b) }
func (c Config) WithBE(b bool) Config           { return configBE.Set(c, b) }
func (c Config) WithEP(v uint8) Config          { return configEP.Set(c, Config(v)) }

func (c Config) String() string { return configLayout.Format(uint64(c)) }

// WatchLo holds the low bits of the physical address that raises the watch
// exception and the access types that it is raised for.
type WatchLo uint32

var (
	watchLoW      = register.Bit[WatchLo](0)
	watchLoR      = register.Bit[WatchLo](1)
	watchLoPAddr0 = register.Bits[WatchLo](3, 31)

	watchLoLayout = register.Layout{
		watchLoW.Named("w"),
		watchLoR.Named("r"),
		watchLoPAddr0.Named("paddr0"),
	}
)

func (w WatchLo) Write() bool                 { return watchLoW.Get(w) }
func (w WatchLo) WithWrite(b bool) WatchLo    { return watchLoW.Set(w, b) }
func (w WatchLo) Read() bool                  { return watchLoR.Get(w) }
func (w WatchLo) WithRead(b bool) WatchLo     { return watchLoR.Set(w, b) }
func (w WatchLo) PAddr0() uint32              { return uint32(watchLoPAddr0.Get(w)) }
func (w WatchLo) WithPAddr0(v uint32) WatchLo { return watchLoPAddr0.Set(w, WatchLo(v)) }
func (w WatchLo) String() string              { return watchLoLayout.Format(uint64(w)) }

// WatchHi holds bits 32 to 35 of the watch address.
type WatchHi uint32

var (
	watchHiPAddr1 = register.Bits[WatchHi](0, 3)
	watchHiLayout = register.Layout{watchHiPAddr1.Named("paddr1")}
)

func (w WatchHi) PAddr1() uint8              { return uint8(watchHiPAddr1.Get(w)) }
func (w WatchHi) WithPAddr1(v uint8) WatchHi { return watchHiPAddr1.Set(w, WatchHi(v)) }
func (w WatchHi) String() string             { return watchHiLayout.Format(uint64(w)) }

// ParityError is a diagnostic register. It has no effect on the N64.
type ParityError uint32

var parityErrorDiagnostic = register.Bits[ParityError](0, 7)

func (p ParityError) Diagnostic() uint8 { return uint8(parityErrorDiagnostic.Get(p)) }

func (p ParityError) WithDiagnostic(v uint8) ParityError {
	return parityErrorDiagnostic.Set(p, ParityError(v))
}

func (p ParityError) String() string {
	return register.Layout{parityErrorDiagnostic.Named("diagnostic")}.Format(uint64(p))
}

// TagLo is used by the CACHE instruction to read and write cache tags.
type TagLo uint32

var (
	tagLoPState = register.Bits[TagLo](6, 7)
	tagLoPTagLo = register.Bits[TagLo](8, 27)

	tagLoLayout = register.Layout{
		tagLoPState.Named("pstate"),
		tagLoPTagLo.Named("ptaglo"),
	}
)

func (t TagLo) PState() uint8             { return uint8(tagLoPState.Get(t)) }
func (t TagLo) WithPState(v uint8) TagLo  { return tagLoPState.Set(t, TagLo(v)) }
func (t TagLo) PTagLo() uint32            { return uint32(tagLoPTagLo.Get(t)) }
func (t TagLo) WithPTagLo(v uint32) TagLo { return tagLoPTagLo.Set(t, TagLo(v)) }
func (t TagLo) String() string            { return tagLoLayout.Format(uint64(t)) }
