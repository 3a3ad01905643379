// This file is part of cdgplay.
//
// cdgplay is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cdgplay is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with cdgplay.  If not, see <https://www.gnu.org/licenses/>.

package disassembly

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/cdgplay/cdgplay/cdg"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	// index and timestamp of the packet
	Timestamp bool

	// the raw bytes of the packet
	ByteCode bool

	// include packets that are not graphics packets
	NonGraphics bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.Entries {
		if err := WriteLine(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteLine writes a single Entry to io.Writer. Nothing is written for a
// non-graphics packet unless the NonGraphics attribute is set.
func WriteLine(output io.Writer, attr WriteAttr, e Entry) error {
	if !e.Packet.IsGraphics() && !attr.NonGraphics {
		return nil
	}

	s := strings.Builder{}

	if attr.Timestamp {
		s.WriteString(fmt.Sprintf("%8d %10s ", e.Index, timestamp(e.Index)))
	}

	if attr.ByteCode {
		for _, b := range e.Packet.Bytes() {
			s.WriteString(fmt.Sprintf("%02x", b))
		}
		s.WriteString(" ")
	}

	s.WriteString(e.Packet.String())
	s.WriteString("\n")

	_, err := io.WriteString(output, s.String())
	return err
}

// the playback time at which the packet is processed, as minutes, seconds and
// milliseconds
func timestamp(index int) string {
	ms := cdg.PacketsToMillis(index)
	return fmt.Sprintf("%02d:%02d.%03d", ms/60000, (ms/1000)%60, ms%1000)
}

// WriteSummary writes the number of packets for each instruction to io.Writer.
func (dsm *Disassembly) WriteSummary(output io.Writer) error {
	ins := make([]cdg.Instruction, 0, len(dsm.Counts))
	for in := range dsm.Counts {
		ins = append(ins, in)
	}
	slices.Sort(ins)

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%d packets (%s)\n", len(dsm.Entries), cdg.PacketsToDuration(len(dsm.Entries))))
	s.WriteString(fmt.Sprintf("%24s: %d\n", "NON-GRAPHICS", dsm.NonGraphics))
	for _, in := range ins {
		s.WriteString(fmt.Sprintf("%24s: %d\n", in, dsm.Counts[in]))
	}

	unsupported, unrecognised := dsm.Unsupported()
	if unsupported > 0 || unrecognised > 0 {
		s.WriteString(fmt.Sprintf("%d unsupported and %d unrecognised instructions\n", unsupported, unrecognised))
	}

	_, err := io.WriteString(output, s.String())
	return err
}
