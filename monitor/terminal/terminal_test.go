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

package terminal_test

import (
	"io"
	"strings"
	"testing"

	"github.com/n64go/n64pac/monitor/terminal"
	"github.com/n64go/n64pac/test"
)

func TestPlainTerminal(t *testing.T) {
	w := &test.CompareWriter{}
	pt := terminal.NewPlainTerminal(strings.NewReader("peek vi_ctrl\r\nquit\n"), w)
	defer pt.CleanUp()

	test.ExpectFailure(t, pt.IsInteractive())

	s, err := pt.ReadLine("> ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "peek vi_ctrl")

	s, err = pt.ReadLine("> ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "quit")

	_, err = pt.ReadLine("> ")
	test.ExpectEquality(t, err, io.EOF)

	// the prompt is never written
	test.ExpectEquality(t, w.String(), "")

	_, err = pt.Write([]byte("output\n"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, w.Compare("output\n"))
}
