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
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/cdgplay/cdgplay/cdg"
	"github.com/cdgplay/cdgplay/curated"
	"github.com/cdgplay/cdgplay/logger"
	"github.com/cdgplay/cdgplay/test"
)

func TestBufferSource(t *testing.T) {
	data := cdg.Encode(
		cdg.MemoryPresetData{Color: 1}.Packet(),
		cdg.MemoryPresetData{Color: 2}.Packet(),
		cdg.MemoryPresetData{Color: 3}.Packet(),
	)

	// trailing fragment
	data = append(data, 0x09, 0x01, 0x05)

	src := cdg.NewBufferSource(data)
	test.ExpectEquality(t, src.Len(), 3)

	for i := 1; i <= 3; i++ {
		p, ok := src.ReadPacket()
		test.DemandSuccess(t, ok, i)
		test.ExpectEquality(t, p.MemoryPreset().Color, uint8(i), i)
	}

	_, ok := src.ReadPacket()
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, src.Position(), 3)

	test.ExpectSuccess(t, src.SeekPacket(1))
	p, ok := src.ReadPacket()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, p.MemoryPreset().Color, 2)

	// seeking to the end is allowed
	test.ExpectSuccess(t, src.SeekPacket(3))
	_, ok = src.ReadPacket()
	test.ExpectFailure(t, ok)

	err := src.SeekPacket(4)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cdg.SeekOutOfRange))

	err = src.SeekPacket(-1)
	test.ExpectSuccess(t, curated.Is(err, cdg.SeekOutOfRange))

	// empty stream
	src = cdg.NewBufferSource(nil)
	test.ExpectEquality(t, src.Len(), 0)
	_, ok = src.ReadPacket()
	test.ExpectFailure(t, ok)
}

func TestStreamSource(t *testing.T) {
	data := cdg.Encode(
		cdg.MemoryPresetData{Color: 1}.Packet(),
		cdg.MemoryPresetData{Color: 2}.Packet(),
	)
	data = append(data, 0x09, 0x01)

	// one byte at a time to make sure short reads are handled
	src := cdg.NewStreamSource(iotest.OneByteReader(bytes.NewReader(data)))

	var n int
	for {
		p, ok := src.ReadPacket()
		if !ok {
			break
		}
		n++
		test.ExpectEquality(t, p.MemoryPreset().Color, uint8(n))
	}
	test.ExpectEquality(t, n, 2)
	test.ExpectSuccess(t, src.Err())

	// the source stays ended
	_, ok := src.ReadPacket()
	test.ExpectFailure(t, ok)

	// a read error other than EOF is reported
	src = cdg.NewStreamSource(iotest.ErrReader(errors.New("test error")))
	_, ok = src.ReadPacket()
	test.ExpectFailure(t, ok)
	test.ExpectFailure(t, src.Err())
}

func TestStreamSourceQuiet(t *testing.T) {
	data := cdg.Encode(cdg.MemoryPresetData{Color: 1}.Packet())
	data = append(data, 0x09, 0x01)

	partial := func(quiet bool) bool {
		logger.Clear()
		defer logger.Clear()

		sess, err := cdg.NewSession(cdg.NewStreamSource(bytes.NewReader(data)))
		test.DemandSuccess(t, err)
		sess.SetQuiet(quiet)

		_, err = sess.SeekTo(10)
		test.ExpectSuccess(t, err)
		test.ExpectSuccess(t, sess.EOF())

		var s strings.Builder
		logger.Write(&s)
		return strings.Contains(s.String(), "partial packet")
	}

	test.ExpectSuccess(t, partial(false))
	test.ExpectFailure(t, partial(true))
}

func TestPullFunc(t *testing.T) {
	var n int
	var src cdg.Source = cdg.PullFunc(func() (cdg.Packet, bool) {
		if n >= 10 {
			return cdg.Packet{}, false
		}
		n++
		return cdg.Packet{}, true
	})

	sess, err := cdg.NewSession(src)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, sess.CanSeekBackward())
	test.ExpectEquality(t, sess.Len(), -1)

	_, err = sess.SeekTo(100)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sess.State().Elapsed, 10)
	test.ExpectSuccess(t, sess.EOF())
}
