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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/n64go/n64pac/curated"
	"github.com/n64go/n64pac/hardware/memory"
	"github.com/n64go/n64pac/logger"
	"github.com/n64go/n64pac/modalflag"
	"github.com/n64go/n64pac/monitor"
	"github.com/n64go/n64pac/monitor/script"
	"github.com/n64go/n64pac/monitor/terminal"
	"github.com/n64go/n64pac/statsview"
)

// exit values.
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch the mode selected by the arguments. the return value is the exit
// value of the program.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("MONITOR", "SCRIPT", "MAP")
	md.AdditionalHelp("The monitor and scripts operate on simulated registers.")

	echo := md.AddBool("echo", false, "echo log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run the stats server (%s)", statsview.Address))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	if *echo {
		logger.SetEcho(output, false)
		defer logger.SetEcho(nil, false)
	}

	if *stats {
		statsview.Launch(output)
	}

	switch md.Mode() {
	case "MONITOR":
		err = monitorMode(md)
	case "SCRIPT":
		err = scriptMode(md, output)
	case "MAP":
		err = mapMode(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		return exitModeError
	}

	return exitOK
}

func monitorMode(md *modalflag.Modes) error {
	md.NewMode()

	steal := md.AddBool("steal", false, "steal the hardware rather than claim it")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf("too many arguments for %s mode", md)
	}

	sim, err := memory.NewSimulation()
	if err != nil {
		return err
	}
	defer sim.Close()

	term, err := terminal.NewTerminal(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer term.CleanUp()

	mon := monitor.NewSimulationMonitor(sim, term)
	if err := claim(mon, *steal); err != nil {
		return err
	}

	return mon.Run(term)
}

func scriptMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	steal := md.AddBool("steal", false, "steal the hardware rather than claim it")
	dump := md.AddBool("dump", false, "dump the registers after the script has run")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("lua script required for %s mode", md)
	case 1:
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	sim, err := memory.NewSimulation()
	if err != nil {
		return err
	}
	defer sim.Close()

	mon := monitor.NewSimulationMonitor(sim, output)
	if err := claim(mon, *steal); err != nil {
		return err
	}

	if err := script.Run(mon, output, md.GetArg(0)); err != nil {
		return err
	}

	if *dump {
		return mon.Execute("DUMP")
	}

	return nil
}

func mapMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	symbols := md.AddBool("symbols", false, "list the address of every register")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf("too many arguments for %s mode", md)
	}

	io.WriteString(output, memory.Summary())

	if *symbols {
		for _, a := range memory.Areas {
			for offset := uint32(0); offset < a.Size(); offset += 4 {
				if name, ok := memory.CanonicalSymbols[a.Origin()+offset]; ok {
					fmt.Fprintf(output, "%08x\t%s\n", a.Origin()+offset, name)
				}
			}
		}
	}

	return nil
}

func claim(mon *monitor.Monitor, steal bool) error {
	if steal {
		return mon.Execute("STEAL")
	}
	return mon.Execute("CLAIM")
}
