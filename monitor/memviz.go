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
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/n64go/n64pac/curated"
	"github.com/n64go/n64pac/logger"
)

// snapshot is the structure drawn by the MEMVIZ command. it is a copy of
// the register values so that memviz never reads a register itself.
type snapshot struct {
	Groups map[string][]*snapshotRegister
}

type snapshotRegister struct {
	Name   string
	Access string
	Value  string
	Fields string
}

func (mon *Monitor) snapshot() *snapshot {
	snap := &snapshot{
		Groups: make(map[string][]*snapshotRegister),
	}
	for _, e := range mon.regs.entries {
		r := &snapshotRegister{
			Name:   e.name,
			Access: e.access.String(),
		}
		if v, err := mon.read(e); err == nil {
			r.Value = e.format(v)
			r.Fields = e.fields(v)
		}
		g := e.group()
		snap.Groups[g] = append(snap.Groups[g], r)
	}
	return snap
}

func cmdMemviz(mon *Monitor, args []string) error {
	if mon.hw == nil {
		return curated.Errorf(NotClaimed)
	}

	f, err := os.Create(args[0])
	if err != nil {
		return curated.Errorf(MemvizError, err)
	}
	defer f.Close()

	memviz.Map(f, mon.snapshot())

	logger.Logf(logger.Allow, "monitor", "memviz written to %s", args[0])
	return nil
}
