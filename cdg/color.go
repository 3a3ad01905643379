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

import "fmt"

// RGB is a resolved palette entry with eight bits per channel.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// PaletteSize is the number of entries in the palette.
const PaletteSize = 16

// Palette is the CD+G colour table.
type Palette [PaletteSize]RGB

// DecodeColor converts a colour specification from a load colour table
// instruction. The value should already have been masked with 0x3f3f:
//
//	[---high byte---]   [---low byte----]
//	 7 6 5 4 3 2 1 0     7 6 5 4 3 2 1 0
//	 X X r r r r g g     X X g g b b b b
//
// Each four bit channel is scaled by 16.
func DecodeColor(spec uint16) RGB {
	r := (spec & 0x3c00) >> 10
	g := ((spec & 0x0300) >> 6) | ((spec & 0x0030) >> 4)
	b := spec & 0x000f
	return RGB{
		R: uint8(r * 16),
		G: uint8(g * 16),
		B: uint8(b * 16),
	}
}
