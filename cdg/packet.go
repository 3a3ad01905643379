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

// PacketSize is the size in bytes of a single subchannel packet.
const PacketSize = 24

// the value of the low six bits of the command byte that indicates a CD+G
// graphics packet
const graphicsCommand = 0x09

const commandMask = 0x3f

// Packet is a single subchannel packet. Only packets with the graphics
// command carry a CD+G instruction. All other packets are valid but have no
// effect other than to mark the passing of time.
type Packet struct {
	Command     uint8
	Instruction Instruction
	ParityQ     [2]uint8
	Data        [16]uint8
	ParityP     [4]uint8
}

// NewPacket creates a Packet from the first PacketSize bytes of b. Returns
// false if there are fewer than PacketSize bytes.
func NewPacket(b []byte) (Packet, bool) {
	var p Packet

	if len(b) < PacketSize {
		return p, false
	}

	p.Command = b[0]
	p.Instruction = Instruction(b[1])
	copy(p.ParityQ[:], b[2:4])
	copy(p.Data[:], b[4:20])
	copy(p.ParityP[:], b[20:24])

	return p, true
}

// Bytes returns the packet in its 24 byte wire format.
func (p Packet) Bytes() []byte {
	b := make([]byte, PacketSize)
	b[0] = p.Command
	b[1] = uint8(p.Instruction)
	copy(b[2:4], p.ParityQ[:])
	copy(b[4:20], p.Data[:])
	copy(b[20:24], p.ParityP[:])
	return b
}

// IsGraphics returns true if the packet carries a CD+G instruction.
func (p Packet) IsGraphics() bool {
	return p.Command&commandMask == graphicsCommand
}

func (p Packet) String() string {
	if !p.IsGraphics() {
		return "NON-GRAPHICS PACKET"
	}

	switch p.Instruction {
	case MemoryPreset:
		return p.MemoryPreset().String()
	case BorderPreset:
		return p.BorderPreset().String()
	case TileBlock, TileBlockXOR:
		return p.TileBlock().String()
	case ScrollPreset, ScrollCopy:
		return p.Scroll().String()
	case LoadColorTableLow, LoadColorTableHigh:
		return p.ColorTable().String()
	}

	return p.Instruction.String()
}
