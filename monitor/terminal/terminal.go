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

package terminal

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/n64go/n64pac/curated"
)

// Terminal is the interface used by the monitor for input and output.
type Terminal interface {
	io.Writer

	// ReadLine returns the next line of input, without the line ending.
	// io.EOF is returned when there is no more input.
	ReadLine(prompt string) (string, error)

	// CleanUp returns the terminal to the state it was in before NewTerminal()
	CleanUp()

	// IsInteractive returns true if input is being typed by the user.
	IsInteractive() bool
}

// NewTerminal returns the most capable Terminal for the pair of files.
func NewTerminal(input *os.File, output *os.File) (Terminal, error) {
	fd := int(input.Fd())
	if !term.IsTerminal(fd) || !term.IsTerminal(int(output.Fd())) {
		return NewPlainTerminal(input, output), nil
	}

	// discard anything typed before the monitor was ready
	if err := flush(input); err != nil {
		return nil, curated.Errorf("terminal: %v", err)
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, curated.Errorf("terminal: %v", err)
	}

	rt := &rawTerminal{
		fd:    fd,
		state: state,
	}
	rt.editor = term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{input, output}, "")

	if w, h, err := term.GetSize(int(output.Fd())); err == nil {
		_ = rt.editor.SetSize(w, h)
	}

	return rt, nil
}

// rawTerminal is a terminal in raw mode with line editing.
type rawTerminal struct {
	fd     int
	state  *term.State
	editor *term.Terminal
}

func (rt *rawTerminal) Write(p []byte) (int, error) {
	return rt.editor.Write(p)
}

func (rt *rawTerminal) ReadLine(prompt string) (string, error) {
	rt.editor.SetPrompt(prompt)
	return rt.editor.ReadLine()
}

func (rt *rawTerminal) CleanUp() {
	if rt.state != nil {
		_ = term.Restore(rt.fd, rt.state)
		rt.state = nil
	}
}

func (rt *rawTerminal) IsInteractive() bool {
	return true
}

// PlainTerminal reads input one line at a time and never changes the mode of
// the terminal.
type PlainTerminal struct {
	input  *bufio.Scanner
	output io.Writer
}

// NewPlainTerminal is the preferred method of initialisation for the
// PlainTerminal type.
func NewPlainTerminal(input io.Reader, output io.Writer) *PlainTerminal {
	return &PlainTerminal{
		input:  bufio.NewScanner(input),
		output: output,
	}
}

func (pt *PlainTerminal) Write(p []byte) (int, error) {
	return pt.output.Write(p)
}

// ReadLine implements the Terminal interface. The prompt is not printed
// because the input is not being typed.
func (pt *PlainTerminal) ReadLine(_ string) (string, error) {
	if !pt.input.Scan() {
		if err := pt.input.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return pt.input.Text(), nil
}

// CleanUp implements the Terminal interface.
func (pt *PlainTerminal) CleanUp() {
}

// IsInteractive implements the Terminal interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return false
}
