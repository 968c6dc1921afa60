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

// Package statsview serves runtime statistics over HTTP while the monitor is
// running. The server is only built when the statsview build constraint is
// present. Without the constraint Available() returns false and Launch() does
// nothing but say so.
//
// The statistics are provided by "github.com/go-echarts/statsview" and once
// launched are viewable at:
//
//	localhost:16400/debug/statsview
//
// The standard Go pprof pages are also served, at:
//
//	localhost:16400/debug/pprof/
package statsview

// Address of the statistics server.
const Address = "localhost:16400"

const path = "/debug/statsview"
