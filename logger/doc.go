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

// Package logger is the central log of n64pac. It records events that happen
// outside of the register core: claims on the hardware, allocation of
// simulated memory and the commands of the monitor. Register accesses are
// never logged.
//
// Entries are made up of a tag and a detail. An entry that has the same tag
// and detail as the previous entry is not added again, instead the previous
// entry's repeat count is increased.
//
//	logger.Log(logger.Allow, "hardware", "claimed")
//
// The first argument is a Permission. Any type that implements the
// AllowLogging() function can be used to suppress log entries. The Allow value
// permits logging unconditionally.
//
// The central log has a fixed number of entries. Older entries are dropped as
// new ones are added. Separate logs can be created with NewLogger().
package logger
