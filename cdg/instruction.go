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

// Instruction is the value of the instruction byte of a graphics packet.
type Instruction uint8

// List of CD+G instructions.
const (
	MemoryPreset       Instruction = 1
	BorderPreset       Instruction = 2
	TileBlock          Instruction = 6
	ScrollPreset       Instruction = 20
	ScrollCopy         Instruction = 24
	DefineTransparent  Instruction = 28
	LoadColorTableLow  Instruction = 30
	LoadColorTableHigh Instruction = 31
	TileBlockXOR       Instruction = 38
)

func (in Instruction) String() string {
	switch in {
	case MemoryPreset:
		return "MEMORY PRESET"
	case BorderPreset:
		return "BORDER PRESET"
	case TileBlock:
		return "TILE BLOCK"
	case ScrollPreset:
		return "SCROLL PRESET"
	case ScrollCopy:
		return "SCROLL COPY"
	case DefineTransparent:
		return "DEFINE TRANSPARENT"
	case LoadColorTableLow:
		return "LOAD COLOR TABLE 0-7"
	case LoadColorTableHigh:
		return "LOAD COLOR TABLE 8-15"
	case TileBlockXOR:
		return "TILE BLOCK XOR"
	}
	return fmt.Sprintf("UNKNOWN INSTRUCTION (%d)", uint8(in))
}

// Recognised returns true if the instruction is one of the listed CD+G
// instructions. Note that recognised does not mean supported. See Supported().
func (in Instruction) Recognised() bool {
	switch in {
	case MemoryPreset, BorderPreset, TileBlock, ScrollPreset, ScrollCopy,
		DefineTransparent, LoadColorTableLow, LoadColorTableHigh, TileBlockXOR:
		return true
	}
	return false
}

// Supported returns false for recognised instructions that have no effect
// on the State because they have not been implemented.
func (in Instruction) Supported() bool {
	return in.Recognised() && in != ScrollPreset && in != ScrollCopy
}
