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

package cdg

import (
	"github.com/cdgplay/cdgplay/logger"
)

const logTag = "cdg"

// Process applies a single packet to the state. Returns true if the picture
// may have changed and should be redrawn.
//
// Every packet counts towards the Elapsed field, even packets that do not
// carry a graphics instruction.
func (st *State) Process(p Packet) bool {
	st.Elapsed++

	if !p.IsGraphics() {
		return false
	}

	switch p.Instruction {
	case LoadColorTableLow, LoadColorTableHigh:
		p.ColorTable().Apply(&st.Palette)
		return true

	case MemoryPreset:
		d := p.MemoryPreset()

		// a memory preset is sent more than once with an incrementing repeat
		// value. we're reading from a reliable source so the only one that
		// matters is the first
		if d.Repeat != 0 {
			return false
		}
		st.Fill(d.Color)
		return true

	case BorderPreset:
		st.border(p.BorderPreset())
		return true

	case TileBlock, TileBlockXOR:
		st.tile(p.TileBlock())
		return true

	case DefineTransparent:
		// transparency is not tracked
		return false

	case ScrollPreset, ScrollCopy:
		st.Diagnostics.Unsupported++
		st.Diagnostics.Last = p.Instruction
		logger.Logf(st, logTag, "unsupported instruction: %s", p.Scroll())
		return false
	}

	st.Diagnostics.Unrecognised++
	st.Diagnostics.Last = p.Instruction
	logger.Logf(st, logTag, "unrecognised instruction: %d", uint8(p.Instruction))

	return false
}

func (st *State) border(d BorderPresetData) {
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if IsBorder(x, y) {
				st.Framebuffer[y*Width+x] = d.Color
			}
		}
	}
}

func (st *State) tile(d TileBlockData) {
	ox, oy := d.Origin()

	for i, row := range d.Pixels {
		y := oy + i
		if y >= Height {
			break
		}

		for j := 0; j < TileWidth; j++ {
			x := ox + j
			if x >= Width {
				break
			}

			c := d.Color0
			if (row>>(TileWidth-1-j))&0x01 == 0x01 {
				c = d.Color1
			}

			if d.XOR {
				st.Framebuffer[y*Width+x] ^= c
			} else {
				st.Framebuffer[y*Width+x] = c
			}
		}
	}
}
