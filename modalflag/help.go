// This file is part of famibus.
//
// famibus is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// famibus is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with famibus.  If not, see <https://www.gnu.org/licenses/>.

package modalflag

import (
	"flag"
	"fmt"
	"strings"
)

// help prints the flags and sub-modes of the current layer.
func (md *Modes) help() {
	if md.Output == nil {
		return
	}

	var flags strings.Builder
	md.flags.VisitAll(func(f *flag.Flag) {
		name, usage := flag.UnquoteUsage(f)
		if name != "" {
			flags.WriteString(fmt.Sprintf("  -%s %s\n", f.Name, name))
		} else {
			flags.WriteString(fmt.Sprintf("  -%s\n", f.Name))
		}
		flags.WriteString(fmt.Sprintf("    \t%s", usage))
		if f.DefValue != "" && f.DefValue != "0" && f.DefValue != "false" {
			flags.WriteString(fmt.Sprintf(" (default %s)", f.DefValue))
		}
		flags.WriteString("\n")
	})

	if flags.Len() == 0 && len(md.subModes) == 0 {
		s := "No help available"
		if md.Path() != "" {
			s = fmt.Sprintf("%s for %s", s, md.Path())
		}
		md.Output.Write([]byte(s + "\n"))
		return
	}

	var s strings.Builder
	if md.Path() != "" {
		s.WriteString(fmt.Sprintf("Usage for %s mode:\n", md.Path()))
	} else {
		s.WriteString("Usage:\n")
	}
	s.WriteString(flags.String())

	if len(md.subModes) > 0 {
		if flags.Len() > 0 {
			s.WriteString("\n")
		}
		s.WriteString(fmt.Sprintf("  available sub-modes: %s\n", strings.Join(md.subModes, ", ")))
		s.WriteString(fmt.Sprintf("    default: %s\n", md.subModes[0]))
	}

	if md.additionalHelp != "" {
		s.WriteString("\n")
		s.WriteString(md.additionalHelp)
		s.WriteString("\n")
	}

	md.Output.Write([]byte(s.String()))
}
