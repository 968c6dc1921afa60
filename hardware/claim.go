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

package hardware

import (
	"sync/atomic"

	"github.com/n64go/n64pac/logger"
)

// claimed is set the first time Take() or Steal() is called. It is never
// cleared.
var claimed atomic.Bool

// Take returns the Hardware for the platform if it has not been taken or
// stolen before. If it has, the Hardware is nil and the bool is false.
func Take(p Platform) (*Hardware, bool) {
	if !claimed.CompareAndSwap(false, true) {
		logger.Log(logger.Allow, "hardware", "take refused: hardware already claimed")
		return nil, false
	}
	logger.Log(logger.Allow, "hardware", "taken")
	return newHardware(p), true
}

// Steal returns the Hardware for the platform whether or not it has been
// taken. After a call to Steal(), Take() will always fail.
//
// Steal is unsafe. If another part of the program holds a Hardware value then
// both parts can access the same registers without coordination.
func Steal(p Platform) *Hardware {
	if claimed.Swap(true) {
		logger.Log(logger.Allow, "hardware", "stolen while already claimed")
	} else {
		logger.Log(logger.Allow, "hardware", "stolen")
	}
	return newHardware(p)
}

// Claimed returns true if the hardware has been taken or stolen.
func Claimed() bool {
	return claimed.Load()
}
