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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/cdgplay/cdgplay/cdg"
	"github.com/cdgplay/cdgplay/disassembly"
	"github.com/cdgplay/cdgplay/test"
)

func stream() cdg.Source {
	return cdg.NewBufferSource(cdg.Encode(
		cdg.MemoryPresetData{Color: 1}.Packet(),
		cdg.Packet{},
		cdg.BorderPresetData{Color: 2}.Packet(),
		cdg.ScrollData{HScroll: 1}.Packet(),
		cdg.Packet{Command: 0x09, Instruction: 50},
	))
}

func TestWrite(t *testing.T) {
	dsm := disassembly.FromSource(stream())
	test.ExpectEquality(t, len(dsm.Entries), 5)
	test.ExpectEquality(t, dsm.NonGraphics, 1)
	test.ExpectEquality(t, dsm.Counts[cdg.MemoryPreset], 1)

	unsupported, unrecognised := dsm.Unsupported()
	test.ExpectEquality(t, unsupported, 1)
	test.ExpectEquality(t, unrecognised, 1)

	w := &strings.Builder{}
	test.ExpectSuccess(t, dsm.Write(w, disassembly.WriteAttr{}))
	test.ExpectEquality(t, w.String(), strings.Join([]string{
		"MEMORY PRESET { color = 01, repeat = 00 }",
		"BORDER PRESET { color = 02 }",
		"SCROLL PRESET { color = 00, h_scroll = 01, v_scroll = 00 }",
		"UNKNOWN INSTRUCTION (50)",
		"",
	}, "\n"))

	w.Reset()
	test.ExpectSuccess(t, dsm.Write(w, disassembly.WriteAttr{NonGraphics: true}))
	test.ExpectEquality(t, strings.Count(w.String(), "\n"), 5)
	test.ExpectSuccess(t, strings.Contains(w.String(), "NON-GRAPHICS PACKET\n"))
}

func TestWriteLine(t *testing.T) {
	e := disassembly.Entry{
		Index:  18300,
		Packet: cdg.MemoryPresetData{Color: 1}.Packet(),
	}

	w := &strings.Builder{}
	test.ExpectSuccess(t, disassembly.WriteLine(w, disassembly.WriteAttr{Timestamp: true}, e))
	test.ExpectEquality(t, w.String(), "   18300  01:01.000 MEMORY PRESET { color = 01, repeat = 00 }\n")

	w.Reset()
	test.ExpectSuccess(t, disassembly.WriteLine(w, disassembly.WriteAttr{ByteCode: true}, e))
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "0901000001"+strings.Repeat("00", 19)+" MEMORY"))
}

func TestWriteSummary(t *testing.T) {
	dsm := disassembly.FromSource(stream())

	w := &strings.Builder{}
	test.ExpectSuccess(t, dsm.WriteSummary(w))

	s := w.String()
	test.ExpectSuccess(t, strings.HasPrefix(s, "5 packets"))
	test.ExpectSuccess(t, strings.Contains(s, "MEMORY PRESET: 1\n"))
	test.ExpectSuccess(t, strings.Contains(s, "NON-GRAPHICS: 1\n"))
	test.ExpectSuccess(t, strings.HasSuffix(s, "1 unsupported and 1 unrecognised instructions\n"))
}
