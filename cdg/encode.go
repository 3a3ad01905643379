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

import "encoding/binary"

// the functions in this file are the inverse of the functions in payload.go
// and are test support only. they create streams from scratch for the tests
// of this and other packages and for the test.RandomStream() function. they
// are not an authoring tool: no attempt is made to produce the parity bytes
// or any of the other subchannels

func graphicsPacket(in Instruction) Packet {
	return Packet{
		Command:     graphicsCommand,
		Instruction: in,
	}
}

// Packet returns the data as a MemoryPreset packet.
func (d MemoryPresetData) Packet() Packet {
	p := graphicsPacket(MemoryPreset)
	p.Data[0] = d.Color & colorMask
	p.Data[1] = d.Repeat & repeatMask
	return p
}

// Packet returns the data as a BorderPreset packet.
func (d BorderPresetData) Packet() Packet {
	p := graphicsPacket(BorderPreset)
	p.Data[0] = d.Color & colorMask
	return p
}

// Packet returns the data as a TileBlock or TileBlockXOR packet.
func (d TileBlockData) Packet() Packet {
	in := TileBlock
	if d.XOR {
		in = TileBlockXOR
	}
	p := graphicsPacket(in)
	p.Data[0] = d.Color0 & colorMask
	p.Data[1] = d.Color1 & colorMask
	p.Data[2] = d.Row & rowMask
	p.Data[3] = d.Column & columnMask
	for i, px := range d.Pixels {
		p.Data[4+i] = px & pixelMask
	}
	return p
}

// Packet returns the data as a ScrollPreset or ScrollCopy packet.
func (d ScrollData) Packet() Packet {
	in := ScrollPreset
	if d.Copy {
		in = ScrollCopy
	}
	p := graphicsPacket(in)
	p.Data[0] = d.Color & colorMask
	p.Data[1] = d.HScroll & scrollMask
	p.Data[2] = d.VScroll & scrollMask
	return p
}

// Packet returns the data as a LoadColorTableLow or LoadColorTableHigh packet.
func (d ColorTableData) Packet() Packet {
	in := LoadColorTableLow
	if d.High {
		in = LoadColorTableHigh
	}
	p := graphicsPacket(in)
	for i, s := range d.Spec {
		binary.BigEndian.PutUint16(p.Data[i*2:], s&specMask)
	}
	return p
}

// EncodeColor is the inverse of DecodeColor(). Channel values are truncated
// to four bits.
func EncodeColor(c RGB) uint16 {
	r := uint16(c.R >> 4)
	g := uint16(c.G >> 4)
	b := uint16(c.B >> 4)
	return (r << 10) | ((g & 0x0c) << 6) | ((g & 0x03) << 4) | b
}

// Encode concatenates packets into a byte stream.
func Encode(packets ...Packet) []byte {
	b := make([]byte, 0, len(packets)*PacketSize)
	for _, p := range packets {
		b = append(b, p.Bytes()...)
	}
	return b
}
