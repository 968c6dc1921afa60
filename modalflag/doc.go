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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds the idea of modes, which is how the n64pac program selects
// between the monitor, running a script and printing the address map.
//
// A mode is selected by the first argument that is not a flag. If the
// argument is not one of the sub-modes then the first (default) sub-mode is
// selected and the argument is left for the mode to use.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("MONITOR", "SCRIPT", "MAP")
//	echo := md.AddBool("echo", false, "echo log to stdout")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		os.Exit(0)
//	case modalflag.ParseError:
//		fmt.Println(err)
//		os.Exit(10)
//	}
//
//	switch md.Mode() {
//	case "SCRIPT":
//		md.NewMode()
//		...
//	}
//
// Modes are case insensitive. Each mode can have its own flags by calling
// NewMode() and adding flags before the next call to Parse(). The sequence of
// modes selected so far is returned by Path().
package modalflag
