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

package si_test

import (
	"testing"
	"unsafe"

	"github.com/n64go/n64pac/hardware/memory"
	"github.com/n64go/n64pac/hardware/rcp/si"
	"github.com/n64go/n64pac/test"
)

func TestLayout(t *testing.T) {
	var r si.Registers
	test.ExpectEquality(t, unsafe.Sizeof(r), si.Size)
	test.ExpectEquality(t, unsafe.Offsetof(r.DRAMAddr), 0x00)
	test.ExpectEquality(t, unsafe.Offsetof(r.PIFAddrRead64B), 0x04)
	test.ExpectEquality(t, unsafe.Offsetof(r.PIFAddrWrite4B), 0x08)
	test.ExpectEquality(t, unsafe.Offsetof(r.PIFAddrWrite64B), 0x10)
	test.ExpectEquality(t, unsafe.Offsetof(r.PIFAddrRead4B), 0x14)
	test.ExpectEquality(t, unsafe.Offsetof(r.Status), 0x18)
}

func TestStatus(t *testing.T) {
	reg, err := memory.NewRegion(si.Size)
	test.DemandSuccess(t, err)
	defer reg.Close()

	r := si.At(reg.Base())
	r.Status.Write(si.Status(0).WithInterrupt(true))

	s := r.Status.Read()
	test.ExpectSuccess(t, s.Interrupt())
	test.ExpectEquality(t, s.DMAState(), 0)
	test.ExpectEquality(t, s, 0x1000)

	r.Status.Write(0x0a51)
	s = r.Status.Read()
	test.ExpectSuccess(t, s.DMABusy())
	test.ExpectEquality(t, s.PCHState(), 0x5)
	test.ExpectEquality(t, s.DMAState(), 0xa)
	test.ExpectEquality(t, s.String(), "dma_busy=1 io_busy=0 read_pending=0 dma_error=0 pch_state=0x5 dma_state=0xa interrupt=0")

	r.AcknowledgeInterrupt()
	test.ExpectEquality(t, r.Status.Read(), 0)
}

func TestPackageFunctions(t *testing.T) {
	reg, err := memory.NewRegion(si.Size)
	test.DemandSuccess(t, err)
	defer reg.Close()
	defer si.SetBase(reg.Base())()

	r := si.At(reg.Base())

	si.SetDRAMAddr(0x0000_1000)
	si.SetPIFAddrRead64B(0x1fc0_07c0)
	test.ExpectEquality(t, r.DRAMAddr.Read(), 0x0000_1000)
	test.ExpectEquality(t, r.PIFAddrRead64B.Read(), 0x1fc0_07c0)
	test.ExpectEquality(t, si.ReadPIFAddrWrite64B(), 0)

	si.ModifyStatus(func(s si.Status) si.Status {
		return s.WithInterrupt(true)
	})
	test.ExpectSuccess(t, r.Status.Read().Interrupt())
	si.AcknowledgeInterrupt()
	test.ExpectFailure(t, si.ReadStatus().Interrupt())
}
