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

package test

import (
	"math/rand/v2"

	"github.com/cdgplay/cdgplay/cdg"
)

// RandomStream returns a CD+G stream of n packets. The same seed always
// produces the same stream.
//
// The stream is a plausible mix of packet types. Roughly one packet in three
// is not a graphics packet. Full-screen clears, with their trailing repeats,
// occur often enough that a stream of a few thousand packets will contain
// several keyframes. Some packets are scroll instructions or unrecognised
// instruction values.
func RandomStream(seed uint64, n int) []byte {
	rnd := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	pkts := make([]cdg.Packet, 0, n)

	for len(pkts) < n {
		v := rnd.IntN(100)
		switch {
		case v < 33:
			pkts = append(pkts, cdg.Packet{Command: uint8(rnd.IntN(256)) &^ 0x09})
		case v < 36:
			// clear screen. always followed by a number of repeats
			c := uint8(rnd.IntN(16))
			pkts = append(pkts, cdg.MemoryPresetData{Color: c}.Packet())
			reps := rnd.IntN(8)
			for r := 1; r <= reps; r++ {
				pkts = append(pkts, cdg.MemoryPresetData{Color: c, Repeat: uint8(r)}.Packet())
			}
		case v < 38:
			pkts = append(pkts, cdg.BorderPresetData{Color: uint8(rnd.IntN(16))}.Packet())
		case v < 43:
			var d cdg.ColorTableData
			d.High = rnd.IntN(2) == 1
			for i := range d.Spec {
				d.Spec[i] = uint16(rnd.IntN(0x10000))
			}
			pkts = append(pkts, d.Packet())
		case v < 95:
			d := cdg.TileBlockData{
				XOR:    rnd.IntN(3) == 0,
				Color0: uint8(rnd.IntN(16)),
				Color1: uint8(rnd.IntN(16)),
				Row:    uint8(rnd.IntN(18)),
				Column: uint8(rnd.IntN(50)),
			}
			for i := range d.Pixels {
				d.Pixels[i] = uint8(rnd.IntN(64))
			}
			pkts = append(pkts, d.Packet())
		case v < 97:
			pkts = append(pkts, cdg.ScrollData{
				Copy:    rnd.IntN(2) == 1,
				HScroll: uint8(rnd.IntN(64)),
				VScroll: uint8(rnd.IntN(64)),
			}.Packet())
		default:
			p := cdg.Packet{Command: 0x09, Instruction: cdg.Instruction(40 + rnd.IntN(20))}
			pkts = append(pkts, p)
		}
	}

	return cdg.Encode(pkts[:n]...)
}
