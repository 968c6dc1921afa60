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

package monitor

import (
	"sort"
	"strconv"
	"strings"

	"github.com/n64go/n64pac/curated"
	"github.com/n64go/n64pac/hardware"
	"github.com/n64go/n64pac/hardware/memory"
	"github.com/n64go/n64pac/logger"
	"github.com/n64go/n64pac/monitor/script"
)

// the number of log entries shown by LOG without an argument.
const defaultLogTail = 10

type command struct {
	usage   string
	help    string
	minArgs int
	maxArgs int
	fn      func(mon *Monitor, args []string) error
}

// commands is populated in init() because the HELP command refers to it.
var commands map[string]command

func init() {
	commands = map[string]command{
		"PEEK": {
			usage: "PEEK <register|address>", minArgs: 1, maxArgs: 1, fn: cmdPeek,
			help: "show the value of the register",
		},
		"POKE": {
			usage: "POKE <register|address> <value>", minArgs: 2, maxArgs: 2, fn: cmdPoke,
			help: "write the value to the register",
		},
		"MODIFY": {
			usage: "MODIFY <register> <mask> <value>", minArgs: 3, maxArgs: 3, fn: cmdModify,
			help: "change the bits of the register in the mask to the bits in the value",
		},
		"FIELDS": {
			usage: "FIELDS <register>", minArgs: 1, maxArgs: 1, fn: cmdFields,
			help: "show the fields of the register",
		},
		"DUMP": {
			usage: "DUMP [MI|VI|AI|PI|SI|COP0|COP1]", minArgs: 0, maxArgs: 1, fn: cmdDump,
			help: "show the value of every register",
		},
		"CLAIM": {
			usage: "CLAIM", fn: cmdClaim,
			help: "take the hardware. fails if the hardware has already been claimed",
		},
		"STEAL": {
			usage: "STEAL", fn: cmdSteal,
			help: "steal the hardware whether or not it has been claimed",
		},
		"RESET": {
			usage: "RESET", fn: cmdReset,
			help: "reset every register of the simulation",
		},
		"LOG": {
			usage: "LOG [number]", minArgs: 0, maxArgs: 1, fn: cmdLog,
			help: "show the most recent log entries",
		},
		"MEMVIZ": {
			usage: "MEMVIZ <file>", minArgs: 1, maxArgs: 1, fn: cmdMemviz,
			help: "write a graphviz diagram of the registers to the file",
		},
		"SCRIPT": {
			usage: "SCRIPT <file>", minArgs: 1, maxArgs: 1, fn: cmdScript,
			help: "run the lua script",
		},
		"MAP": {
			usage: "MAP", fn: cmdMap,
			help: "show the address map",
		},
		"HELP": {
			usage: "HELP [command]", minArgs: 0, maxArgs: 1, fn: cmdHelp,
			help: "list the commands or show help for a command",
		},
		"QUIT": {
			usage: "QUIT", fn: cmdQuit,
			help: "leave the monitor",
		},
	}
}

func cmdPeek(mon *Monitor, args []string) error {
	e, err := mon.lookup(args[0])
	if err != nil {
		return err
	}
	v, err := mon.read(e)
	if err != nil {
		return err
	}
	mon.printf("%s = %s\n", e.name, e.format(v))
	return nil
}

func cmdPoke(mon *Monitor, args []string) error {
	e, err := mon.lookup(args[0])
	if err != nil {
		return err
	}
	v, err := parseValue(e, args[1])
	if err != nil {
		return err
	}
	return mon.Poke(e.name, v)
}

func cmdModify(mon *Monitor, args []string) error {
	e, err := mon.lookup(args[0])
	if err != nil {
		return err
	}
	mask, err := parseValue(e, args[1])
	if err != nil {
		return err
	}
	v, err := parseValue(e, args[2])
	if err != nil {
		return err
	}
	return mon.Modify(e.name, mask, v)
}

func cmdFields(mon *Monitor, args []string) error {
	e, err := mon.lookup(args[0])
	if err != nil {
		return err
	}
	v, err := mon.read(e)
	if err != nil {
		return err
	}
	mon.printf("%s: %s\n", e.name, e.fields(v))
	return nil
}

// group returns the name of the group the register belongs to. used by the
// DUMP command to filter the list.
func (e entry) group() string {
	if e.area != memory.Undefined {
		return e.area.String()
	}
	g, _, _ := strings.Cut(e.name, "_")
	return g
}

func cmdDump(mon *Monitor, args []string) error {
	if mon.hw == nil {
		return curated.Errorf(NotClaimed)
	}

	var group string
	if len(args) > 0 {
		group = strings.ToUpper(args[0])
	}

	for _, e := range mon.regs.entries {
		if group != "" && e.group() != group {
			continue
		}
		if v, err := mon.read(e); err == nil {
			mon.printf("%-16s %-4s %s\n", e.name, e.access, e.format(v))
		} else {
			mon.printf("%-16s %-4s -\n", e.name, e.access)
		}
	}

	return nil
}

func cmdClaim(mon *Monitor, _ []string) error {
	hw, ok := hardware.Take(mon.platform)
	if !ok {
		return curated.Errorf(ClaimRefused)
	}
	mon.take(hw)
	return nil
}

func cmdSteal(mon *Monitor, _ []string) error {
	mon.take(hardware.Steal(mon.platform))
	return nil
}

func cmdReset(mon *Monitor, _ []string) error {
	if mon.sim == nil {
		return curated.Errorf("monitor: RESET is only possible with a simulation")
	}
	mon.sim.Reset()
	logger.Log(logger.Allow, "monitor", "simulation reset")
	return nil
}

func cmdLog(mon *Monitor, args []string) error {
	n := defaultLogTail
	if len(args) > 0 {
		var err error
		n, err = strconv.Atoi(args[0])
		if err != nil {
			return curated.Errorf(Usage, commands["LOG"].usage)
		}
	}
	logger.Tail(mon.output, n)
	return nil
}

func cmdScript(mon *Monitor, args []string) error {
	if mon.hw == nil {
		return curated.Errorf(NotClaimed)
	}
	return script.Run(mon, mon.output, args[0])
}

func cmdMap(mon *Monitor, _ []string) error {
	mon.printf("%s", memory.Summary())
	return nil
}

func cmdHelp(mon *Monitor, args []string) error {
	if len(args) > 0 {
		cmd, ok := commands[strings.ToUpper(args[0])]
		if !ok {
			return curated.Errorf(UnknownCommand, args[0])
		}
		mon.printf("%s\n  %s\n", cmd.usage, cmd.help)
		return nil
	}

	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)

	for _, n := range names {
		mon.printf("%-36s %s\n", commands[n].usage, commands[n].help)
	}
	return nil
}

func cmdQuit(mon *Monitor, _ []string) error {
	mon.quit = true
	return nil
}
