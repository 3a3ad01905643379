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
	"github.com/cdgplay/cdgplay/cdg"
)

// Entry is a single packet in the disassembly.
type Entry struct {
	// index of the packet in the stream
	Index  int
	Packet cdg.Packet
}

// Disassembly is the listing of an entire stream.
type Disassembly struct {
	Entries []Entry

	// number of packets for each instruction. non-graphics packets are not
	// counted
	Counts map[cdg.Instruction]int

	// number of non-graphics packets
	NonGraphics int
}

// FromSource reads every packet from the source and returns the disassembly.
// The source is read until the end of the stream.
func FromSource(src cdg.Source) *Disassembly {
	dsm := &Disassembly{
		Entries: make([]Entry, 0),
		Counts:  make(map[cdg.Instruction]int),
	}

	for i := 0; ; i++ {
		p, ok := src.ReadPacket()
		if !ok {
			break
		}

		dsm.Entries = append(dsm.Entries, Entry{Index: i, Packet: p})

		if p.IsGraphics() {
			dsm.Counts[p.Instruction]++
		} else {
			dsm.NonGraphics++
		}
	}

	return dsm
}

// Unsupported returns the number of packets with instructions that are
// recognised but unsupported, and the number of packets with instructions that
// are not recognised.
func (dsm *Disassembly) Unsupported() (int, int) {
	var unsupported, unrecognised int
	for in, n := range dsm.Counts {
		if !in.Recognised() {
			unrecognised += n
		} else if !in.Supported() {
			unsupported += n
		}
	}
	return unsupported, unrecognised
}
