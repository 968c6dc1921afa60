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

package mi

import "github.com/n64go/n64pac/hardware/register"

// Version identifies the revision of each part of the RCP.
type Version uint32

var (
	versionIO  = register.Bits[Version](0, 7)
	versionRAC = register.Bits[Version](8, 15)
	versionRDP = register.Bits[Version](16, 23)
	versionRSP = register.Bits[Version](24, 31)

	versionLayout = register.Layout{
		versionIO.Named("io"),
		versionRAC.Named("rac"),
		versionRDP.Named("rdp"),
		versionRSP.Named("rsp"),
	}
)

func (v Version) IO() uint8  { return uint8(versionIO.Get(v)) }
func (v Version) RAC() uint8 { return uint8(versionRAC.Get(v)) }
func (v Version) RDP() uint8 { return uint8(versionRDP.Get(v)) }
func (v Version) RSP() uint8 { return uint8(versionRSP.Get(v)) }

func (v Version) String() string { return versionLayout.Format(uint64(v)) }
