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

// Package disassembly produces a readable listing of the instructions in a
// CD+G stream. It is used by the DUMP mode of the application and is useful
// when investigating streams that do not decode as expected.
//
// The listing has one line per packet. By default only graphics packets are
// listed:
//
//	MEMORY PRESET { color = 01, repeat = 00 }
//	LOAD COLOR TABLE 0-7 { spec = 0000 3F3F 0F00 00F0 000F 3F00 003F 3F3F }
//	TILE BLOCK { color_0 = 00, color_1 = 01, row = 02, column = 03, pixels = ... }
//
// The WriteAttr type controls whether the packet index and timestamp, the
// raw bytes of the packet and non-graphics packets are included.
package disassembly
