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

// Package test contains helper functions that remove common boilerplate from
// the tests in n64pac.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions report a failure with t.Fatalf() and should be
// used when the remainder of the test depends on the value being correct.
//
// Success and failure are defined by type:
//
//	bool	-> true is success
//	error	-> nil is success
//	nil	-> success
//
// Note that nil is considered a success. This is because of how errors are
// used in Go, a nil error means that nothing has gone wrong.
//
// CompareWriter implements the io.Writer interface and can be used to capture
// output. The captured output can then be compared with an expected string.
package test
