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

package cdg_test

import (
	"testing"

	"github.com/cdgplay/cdgplay/cdg"
	"github.com/cdgplay/cdgplay/test"
)

func TestDecodeColor(t *testing.T) {
	test.ExpectEquality(t, cdg.DecodeColor(0x3f3f), cdg.RGB{R: 240, G: 240, B: 240})
	test.ExpectEquality(t, cdg.DecodeColor(0x1234), cdg.RGB{R: 64, G: 176, B: 64})
	test.ExpectEquality(t, cdg.DecodeColor(0x0000), cdg.RGB{})

	// bits outside of 0x3f3f are masked by the packet decoder and not by
	// DecodeColor() so only test values that are already masked
	for _, v := range []uint16{0x0000, 0x0101, 0x1234, 0x3f3f, 0x2a15} {
		test.ExpectEquality(t, cdg.EncodeColor(cdg.DecodeColor(v)), v)
	}
}

func TestColorTable(t *testing.T) {
	st := cdg.NewState()

	var lo cdg.ColorTableData
	lo.Spec[0] = 0x3f3f
	lo.Spec[7] = 0x1234

	hi := lo
	hi.High = true
	hi.Spec[0] = 0x0000
	hi.Spec[1] = 0xffff

	test.ExpectSuccess(t, st.Process(lo.Packet()))
	test.ExpectEquality(t, st.Palette[0], cdg.RGB{R: 240, G: 240, B: 240})
	test.ExpectEquality(t, st.Palette[7], cdg.RGB{R: 64, G: 176, B: 64})
	test.ExpectEquality(t, st.Palette[8], cdg.RGB{})

	test.ExpectSuccess(t, st.Process(hi.Packet()))
	test.ExpectEquality(t, st.Palette[0], cdg.RGB{R: 240, G: 240, B: 240})
	test.ExpectEquality(t, st.Palette[8], cdg.RGB{})

	// 0xffff is masked to 0x3f3f
	test.ExpectEquality(t, st.Palette[9], cdg.RGB{R: 240, G: 240, B: 240})
	test.ExpectEquality(t, st.Palette[15], cdg.RGB{R: 64, G: 176, B: 64})

	test.ExpectEquality(t, st.Elapsed, 2)
}

func TestMemoryPreset(t *testing.T) {
	st := cdg.NewState()

	test.ExpectSuccess(t, st.Process(cdg.MemoryPresetData{Color: 5}.Packet()))
	for i := range st.Framebuffer {
		if !test.ExpectEquality(t, st.Framebuffer[i], 5, i) {
			break
		}
	}

	// mark a pixel so we can tell if the framebuffer has been cleared again
	st.Framebuffer[1000] = 3

	for r := uint8(1); r <= 15; r++ {
		test.ExpectFailure(t, st.Process(cdg.MemoryPresetData{Color: 5, Repeat: r}.Packet()), r)

		// a different colour in a repeat is also ignored
		test.ExpectFailure(t, st.Process(cdg.MemoryPresetData{Color: 9, Repeat: r}.Packet()), r)
	}
	test.ExpectEquality(t, st.Framebuffer[1000], 3)
	test.ExpectEquality(t, st.Pixel(0, 0), 5)
	test.ExpectEquality(t, st.Elapsed, 31)

	// the color and repeat fields are masked to four bits
	p := cdg.MemoryPresetData{}.Packet()
	p.Data[0] = 0xf7
	p.Data[1] = 0x10
	test.ExpectEquality(t, p.MemoryPreset(), cdg.MemoryPresetData{Color: 7, Repeat: 0})
	test.ExpectSuccess(t, st.Process(p))
	test.ExpectEquality(t, st.Framebuffer[1000], 7)
}

func TestBorderPreset(t *testing.T) {
	// border area boundaries
	test.ExpectSuccess(t, cdg.IsBorder(6, 12))
	test.ExpectSuccess(t, cdg.IsBorder(294, 204))
	test.ExpectSuccess(t, cdg.IsBorder(0, 0))
	test.ExpectSuccess(t, cdg.IsBorder(299, 215))
	test.ExpectSuccess(t, cdg.IsBorder(150, 12))
	test.ExpectSuccess(t, cdg.IsBorder(6, 100))
	test.ExpectFailure(t, cdg.IsBorder(7, 13))
	test.ExpectFailure(t, cdg.IsBorder(293, 203))
	test.ExpectFailure(t, cdg.IsBorder(150, 100))

	st := cdg.NewState()
	test.ExpectSuccess(t, st.Process(cdg.BorderPresetData{Color: 4}.Packet()))

	test.ExpectEquality(t, st.Pixel(6, 12), 4)
	test.ExpectEquality(t, st.Pixel(294, 204), 4)
	test.ExpectEquality(t, st.Pixel(0, 215), 4)
	test.ExpectEquality(t, st.Pixel(7, 13), 0)
	test.ExpectEquality(t, st.Pixel(293, 203), 0)

	var border, interior int
	for y := 0; y < cdg.Height; y++ {
		for x := 0; x < cdg.Width; x++ {
			if st.Pixel(x, y) == 4 {
				border++
			} else {
				interior++
			}
		}
	}
	test.ExpectEquality(t, interior, 287*191)
	test.ExpectEquality(t, border, cdg.Width*cdg.Height-287*191)
}

func TestTileBlock(t *testing.T) {
	st := cdg.NewState()
	st.Fill(9)

	d := cdg.TileBlockData{
		Color0: 3,
		Color1: 5,
	}
	for i := range d.Pixels {
		d.Pixels[i] = 0x20
	}

	test.ExpectSuccess(t, st.Process(d.Packet()))

	for y := 0; y < cdg.TileHeight; y++ {
		test.ExpectEquality(t, st.Pixel(0, y), 5, y)
		for x := 1; x < cdg.TileWidth; x++ {
			test.ExpectEquality(t, st.Pixel(x, y), 3, x, y)
		}

		// pixels to the right of the tile are untouched
		test.ExpectEquality(t, st.Pixel(cdg.TileWidth, y), 9, y)
	}

	// pixels below the tile are untouched
	test.ExpectEquality(t, st.Pixel(0, cdg.TileHeight), 9)

	// tile at row 2, column 3 with a single set pixel in the last position
	// of the third row
	d = cdg.TileBlockData{
		Color0: 1,
		Color1: 2,
		Row:    2,
		Column: 3,
	}
	d.Pixels[2] = 0x01
	test.ExpectSuccess(t, st.Process(d.Packet()))

	x, y := d.Origin()
	test.ExpectEquality(t, x, 18)
	test.ExpectEquality(t, y, 24)
	test.ExpectEquality(t, st.Pixel(x+5, y+2), 2)
	test.ExpectEquality(t, st.Pixel(x+4, y+2), 1)
	test.ExpectEquality(t, st.Pixel(x, y), 1)
}

func TestTileBlockXOR(t *testing.T) {
	st := cdg.NewState()

	// a non-uniform starting picture
	for i := range st.Framebuffer {
		st.Framebuffer[i] = uint8(i % 16)
	}
	before := st.Framebuffer

	d := cdg.TileBlockData{
		XOR:    true,
		Color0: 0x06,
		Color1: 0x0b,
		Row:    4,
		Column: 10,
	}
	for i := range d.Pixels {
		d.Pixels[i] = uint8(i*5) & 0x3f
	}

	test.ExpectSuccess(t, st.Process(d.Packet()))
	test.ExpectInequality(t, st.Framebuffer, before)

	x, y := d.Origin()
	test.ExpectEquality(t, st.Pixel(x, y), before[y*cdg.Width+x]^0x06)

	test.ExpectSuccess(t, st.Process(d.Packet()))
	test.ExpectEquality(t, st.Framebuffer, before)
}

func TestTileBlockClipping(t *testing.T) {
	st := cdg.NewState()

	// row 31 and column 63 are entirely off-screen
	d := cdg.TileBlockData{
		Color0: 1,
		Color1: 1,
		Row:    31,
		Column: 63,
	}
	test.ExpectSuccess(t, st.Process(d.Packet()))
	test.ExpectEquality(t, st.Framebuffer, cdg.Framebuffer{})

	// column 49 is the last visible column. column 50 starts at x == 300
	d.Row = 17
	d.Column = 50
	test.ExpectSuccess(t, st.Process(d.Packet()))
	test.ExpectEquality(t, st.Framebuffer, cdg.Framebuffer{})

	d.Column = 49
	test.ExpectSuccess(t, st.Process(d.Packet()))
	test.ExpectEquality(t, st.Pixel(cdg.Width-1, cdg.Height-1), 1)
	test.ExpectEquality(t, st.Pixel(cdg.Width-7, cdg.Height-1), 0)
}

func TestNonGraphics(t *testing.T) {
	st := cdg.NewState()
	st.Fill(2)
	before := *st

	for _, c := range []uint8{0x00, 0x08, 0x01, 0x0a, 0xff &^ 0x09} {
		p := cdg.MemoryPresetData{Color: 7}.Packet()
		p.Command = c
		test.ExpectFailure(t, p.IsGraphics(), c)
		test.ExpectFailure(t, st.Process(p), c)
	}

	test.ExpectEquality(t, st.Elapsed, 5)
	test.ExpectEquality(t, st.Framebuffer, before.Framebuffer)

	// the upper two bits of the command byte are ignored
	p := cdg.MemoryPresetData{Color: 7}.Packet()
	p.Command = 0xc9
	test.ExpectSuccess(t, p.IsGraphics())
	test.ExpectSuccess(t, st.Process(p))
	test.ExpectEquality(t, st.Pixel(100, 100), 7)
}

func TestUnsupported(t *testing.T) {
	st := cdg.NewState()
	st.Quiet = true
	st.Fill(3)
	before := *st

	test.ExpectFailure(t, st.Process(cdg.ScrollData{HScroll: 5}.Packet()))
	test.ExpectFailure(t, st.Process(cdg.ScrollData{Copy: true, VScroll: 5}.Packet()))
	test.ExpectEquality(t, st.Diagnostics.Unsupported, 2)
	test.ExpectEquality(t, st.Diagnostics.Last, cdg.ScrollCopy)

	test.ExpectFailure(t, st.Process(cdg.Packet{Command: 0x09, Instruction: cdg.DefineTransparent}))
	test.ExpectEquality(t, st.Diagnostics.Unsupported, 2)
	test.ExpectEquality(t, st.Diagnostics.Unrecognised, 0)

	test.ExpectFailure(t, st.Process(cdg.Packet{Command: 0x09, Instruction: 99}))
	test.ExpectEquality(t, st.Diagnostics.Unrecognised, 1)
	test.ExpectEquality(t, st.Diagnostics.Last, cdg.Instruction(99))

	test.ExpectEquality(t, st.Elapsed, 4)
	test.ExpectEquality(t, st.Palette, before.Palette)
	test.ExpectEquality(t, st.Framebuffer, before.Framebuffer)

	// diagnostics and elapsed differ but the picture does not
	test.ExpectFailure(t, st.Equal(&before))
	before.Elapsed = st.Elapsed
	test.ExpectSuccess(t, st.Equal(&before))
}

func TestInstructionStrings(t *testing.T) {
	test.ExpectEquality(t, cdg.MemoryPreset.String(), "MEMORY PRESET")
	test.ExpectEquality(t, cdg.LoadColorTableHigh.String(), "LOAD COLOR TABLE 8-15")
	test.ExpectEquality(t, cdg.Instruction(99).String(), "UNKNOWN INSTRUCTION (99)")

	test.ExpectSuccess(t, cdg.ScrollCopy.Recognised())
	test.ExpectFailure(t, cdg.ScrollCopy.Supported())
	test.ExpectSuccess(t, cdg.TileBlockXOR.Supported())
	test.ExpectFailure(t, cdg.Instruction(99).Recognised())

	p := cdg.MemoryPresetData{Color: 0x0a, Repeat: 2}.Packet()
	test.ExpectEquality(t, p.String(), "MEMORY PRESET { color = 0A, repeat = 02 }")

	p.Command = 0
	test.ExpectEquality(t, p.String(), "NON-GRAPHICS PACKET")

	d := cdg.TileBlockData{XOR: true, Color0: 1, Color1: 2, Row: 3, Column: 4}
	d.Pixels[0] = 0x3f
	test.ExpectEquality(t, d.Packet().String(),
		"TILE BLOCK XOR { color_0 = 01, color_1 = 02, row = 03, column = 04, pixels = 3F 00 00 00 00 00 00 00 00 00 00 00 }")
}

func TestPacketBytes(t *testing.T) {
	b := make([]byte, cdg.PacketSize)
	for i := range b {
		b[i] = uint8(i * 7)
	}

	p, ok := cdg.NewPacket(b)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, p.Command, 0)
	test.ExpectEquality(t, p.Instruction, cdg.Instruction(7))
	test.ExpectEquality(t, p.Data[0], 28)
	test.ExpectEquality(t, p.ParityP[3], uint8(23*7))
	test.ExpectEquality(t, string(p.Bytes()), string(b))

	_, ok = cdg.NewPacket(b[:cdg.PacketSize-1])
	test.ExpectFailure(t, ok)
}
