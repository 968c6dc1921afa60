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

package mi_test

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/n64go/n64pac/hardware/memory"
	"github.com/n64go/n64pac/hardware/rcp/mi"
	"github.com/n64go/n64pac/test"
)

func TestLayout(t *testing.T) {
	var r mi.Registers
	test.ExpectEquality(t, unsafe.Sizeof(r), mi.Size)
	test.ExpectEquality(t, unsafe.Offsetof(r.Mode), 0x00)
	test.ExpectEquality(t, unsafe.Offsetof(r.Version), 0x04)
	test.ExpectEquality(t, unsafe.Offsetof(r.Interrupt), 0x08)
	test.ExpectEquality(t, unsafe.Offsetof(r.Mask), 0x0c)

	test.ExpectEquality(t, unsafe.Sizeof(mi.Mode(0)), unsafe.Sizeof(mi.ModeCommand(0)))
	test.ExpectEquality(t, unsafe.Sizeof(mi.Interrupts(0)), unsafe.Sizeof(mi.MaskCommand(0)))
}

func TestMask(t *testing.T) {
	reg, err := memory.NewRegion(mi.Size)
	test.DemandSuccess(t, err)
	defer reg.Close()

	r := mi.At(reg.Base())

	cmd := mi.MaskCommand(0).Set(mi.VI).Clear(mi.AI)
	test.ExpectEquality(t, cmd, 0x0090)
	test.ExpectEquality(t, cmd.String(), "clear_SP=0 set_SP=0 clear_SI=0 set_SI=0 clear_AI=1 set_AI=0 clear_VI=0 set_VI=1 clear_PI=0 set_PI=0 clear_DP=0 set_DP=0")

	// there's no hardware behind the simulated register so the bits of the
	// command are read back as they were written
	r.Mask.Write(cmd)
	test.ExpectEquality(t, r.Mask.Read(), mi.Interrupts(0x0090))
	// and are decoded with the read shape: clear_AI is bit 4, which is
	// the PI bit when read
	test.ExpectSuccess(t, r.Mask.Read().PI())
	test.ExpectFailure(t, r.Mask.Read().AI())
	test.ExpectFailure(t, r.Mask.Read().VI())
}

func TestMode(t *testing.T) {
	cmd := mi.ModeCommand(0).WithInitLength(0x7f).WithSetInit(true).WithClearDPInterrupt(true)
	test.ExpectEquality(t, cmd, 0x097f)

	m := mi.Mode(0x037f)
	test.ExpectEquality(t, m.InitLength(), 0x7f)
	test.ExpectFailure(t, m.InitMode())
	test.ExpectSuccess(t, m.EbusTest())
	test.ExpectSuccess(t, m.RDRAMRegMode())
	test.ExpectEquality(t, m.String(), "init_length=0x7f init_mode=0 ebus_test=1 rdram_reg_mode=1")
}

func TestVersion(t *testing.T) {
	v := mi.Version(0x02020102)
	test.ExpectEquality(t, v.RSP(), 2)
	test.ExpectEquality(t, v.RDP(), 2)
	test.ExpectEquality(t, v.RAC(), 1)
	test.ExpectEquality(t, v.IO(), 2)
}

func TestPackageFunctions(t *testing.T) {
	reg, err := memory.NewRegion(mi.Size)
	test.DemandSuccess(t, err)
	defer reg.Close()
	defer mi.SetBase(reg.Base())()

	r := mi.At(reg.Base())

	mi.SetMask(mi.MaskCommand(0).Set(mi.VI))
	test.ExpectEquality(t, r.Mask.Read(), 0x0080)
	test.ExpectEquality(t, mi.ReadMask(), r.Mask.Read())

	mi.SetMode(mi.ModeCommand(0).WithInitLength(0x7f))
	test.ExpectEquality(t, mi.ReadMode().InitLength(), 0x7f)

	// the version and interrupt registers can only be read so the simulated
	// values are put in place through the memory
	binary.NativeEndian.PutUint32(reg.Bytes()[0x04:], 0x02020102)
	binary.NativeEndian.PutUint32(reg.Bytes()[0x08:], 0x00000008)
	test.ExpectEquality(t, mi.ReadVersion().RSP(), 2)
	test.ExpectSuccess(t, mi.ReadInterrupt().VI())
	test.ExpectFailure(t, mi.ReadInterrupt().AI())
}
