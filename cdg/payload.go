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
	"encoding/binary"
	"fmt"
	"strings"
)

// the instruction data of a packet is interpreted differently depending on
// the instruction. each of the functions in this file extracts the fields for
// one instruction, masking them to their significant bits.

const (
	colorMask  = 0x0f
	repeatMask = 0x0f
	rowMask    = 0x1f
	columnMask = 0x3f
	pixelMask  = 0x3f
	scrollMask = 0x3f
	specMask   = 0x3f3f
)

// MemoryPresetData is the data for the MemoryPreset instruction.
type MemoryPresetData struct {
	Color uint8

	// the repeat value is incremented every time the instruction is sent. the
	// instruction is repeated because the transport may be unreliable
	Repeat uint8
}

// MemoryPreset interprets the packet data as a MemoryPreset instruction.
func (p Packet) MemoryPreset() MemoryPresetData {
	return MemoryPresetData{
		Color:  p.Data[0] & colorMask,
		Repeat: p.Data[1] & repeatMask,
	}
}

func (d MemoryPresetData) String() string {
	return fmt.Sprintf("%s { color = %02X, repeat = %02X }", MemoryPreset, d.Color, d.Repeat)
}

// BorderPresetData is the data for the BorderPreset instruction.
type BorderPresetData struct {
	Color uint8
}

// BorderPreset interprets the packet data as a BorderPreset instruction.
func (p Packet) BorderPreset() BorderPresetData {
	return BorderPresetData{
		Color: p.Data[0] & colorMask,
	}
}

func (d BorderPresetData) String() string {
	return fmt.Sprintf("%s { color = %02X }", BorderPreset, d.Color)
}

// TileBlockData is the data for the TileBlock and TileBlockXOR instructions.
type TileBlockData struct {
	XOR    bool
	Color0 uint8
	Color1 uint8

	// position of tile in tile coordinates
	Row    uint8
	Column uint8

	// one byte per row of the tile. the six least significant bits of each
	// byte are the pixels. bit 5 is the leftmost pixel
	Pixels [TileHeight]uint8
}

// TileBlock interprets the packet data as a TileBlock or TileBlockXOR
// instruction. The XOR field is set according to the instruction in the
// packet.
func (p Packet) TileBlock() TileBlockData {
	d := TileBlockData{
		XOR:    p.Instruction == TileBlockXOR,
		Color0: p.Data[0] & colorMask,
		Color1: p.Data[1] & colorMask,
		Row:    p.Data[2] & rowMask,
		Column: p.Data[3] & columnMask,
	}
	for i := range d.Pixels {
		d.Pixels[i] = p.Data[4+i] & pixelMask
	}
	return d
}

// Origin returns the pixel coordinates of the top-left corner of the tile.
func (d TileBlockData) Origin() (int, int) {
	return int(d.Column) * TileWidth, int(d.Row) * TileHeight
}

func (d TileBlockData) String() string {
	s := strings.Builder{}
	if d.XOR {
		s.WriteString(TileBlockXOR.String())
	} else {
		s.WriteString(TileBlock.String())
	}
	s.WriteString(fmt.Sprintf(" { color_0 = %02X, color_1 = %02X, row = %02X, column = %02X, pixels =",
		d.Color0, d.Color1, d.Row, d.Column))
	for _, p := range d.Pixels {
		s.WriteString(fmt.Sprintf(" %02X", p))
	}
	s.WriteString(" }")
	return s.String()
}

// ScrollData is the data for the ScrollPreset and ScrollCopy instructions.
type ScrollData struct {
	Copy    bool
	Color   uint8
	HScroll uint8
	VScroll uint8
}

// Scroll interprets the packet data as a ScrollPreset or ScrollCopy
// instruction.
func (p Packet) Scroll() ScrollData {
	return ScrollData{
		Copy:    p.Instruction == ScrollCopy,
		Color:   p.Data[0] & colorMask,
		HScroll: p.Data[1] & scrollMask,
		VScroll: p.Data[2] & scrollMask,
	}
}

func (d ScrollData) String() string {
	in := ScrollPreset
	if d.Copy {
		in = ScrollCopy
	}
	return fmt.Sprintf("%s { color = %02X, h_scroll = %02X, v_scroll = %02X }", in, d.Color, d.HScroll, d.VScroll)
}

// ColorTableData is the data for the LoadColorTableLow and LoadColorTableHigh
// instructions.
type ColorTableData struct {
	High bool

	// colour specifications in host order, masked with 0x3f3f. see
	// DecodeColor() for the layout of each value
	Spec [8]uint16
}

// ColorTable interprets the packet data as a LoadColorTableLow or
// LoadColorTableHigh instruction.
func (p Packet) ColorTable() ColorTableData {
	d := ColorTableData{
		High: p.Instruction == LoadColorTableHigh,
	}
	for i := range d.Spec {
		d.Spec[i] = binary.BigEndian.Uint16(p.Data[i*2:]) & specMask
	}
	return d
}

// Offset returns the index of the first palette entry updated by the
// instruction.
func (d ColorTableData) Offset() int {
	if d.High {
		return 8
	}
	return 0
}

// Apply decodes the colour specifications into the palette.
func (d ColorTableData) Apply(palette *Palette) {
	o := d.Offset()
	for i, s := range d.Spec {
		palette[o+i] = DecodeColor(s)
	}
}

func (d ColorTableData) String() string {
	s := strings.Builder{}
	if d.High {
		s.WriteString(LoadColorTableHigh.String())
	} else {
		s.WriteString(LoadColorTableLow.String())
	}
	s.WriteString(" { spec =")
	for _, c := range d.Spec {
		s.WriteString(fmt.Sprintf(" %04X", c))
	}
	s.WriteString(" }")
	return s.String()
}
