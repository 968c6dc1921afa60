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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are used for every error
// in n64pac that isn't part of the register core. The register core has no
// error conditions.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern identifies the error:
//
//	const UnknownRegister = "monitor: unknown register: %s"
//	e := curated.Errorf(UnknownRegister, "VI_FOO")
//
//	if curated.Is(e, UnknownRegister) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the chain of wrapped errors.
//
//	f := curated.Errorf("script: %v", e)
//
//	if curated.Has(f, UnknownRegister) {
//		fmt.Println("true")
//	}
//
// Is() would return false for error f because the pattern of f is "script:
// %v". The UnknownRegister error is wrapped inside it.
//
// Errors in the placeholder values are also returned by Unwrap() so the
// errors package functions work with curated errors in the usual way.
//
// The Error() function normalises the message so that it does not begin with
// two identical parts. This means that a function can wrap an error with its
// own context without worrying about whether the error it received has
// already been given the same context.
package curated
