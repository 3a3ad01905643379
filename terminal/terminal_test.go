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

package terminal_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/cdgplay/cdgplay/terminal"
	"github.com/cdgplay/cdgplay/test"
)

func TestDecode(t *testing.T) {
	keys, rem := terminal.Decode([]byte("\x1b[D\x1b[C q\x1b[A\x1b[Bx"))
	test.DemandEquality(t, len(keys), 6)
	test.ExpectEquality(t, len(rem), 0)
	test.ExpectEquality(t, keys[0], terminal.KeyLeft)
	test.ExpectEquality(t, keys[1], terminal.KeyRight)
	test.ExpectEquality(t, keys[2], terminal.KeyPause)
	test.ExpectEquality(t, keys[3], terminal.KeyQuit)
	test.ExpectEquality(t, keys[4], terminal.KeyUp)
	test.ExpectEquality(t, keys[5], terminal.KeyDown)

	// incomplete escape sequence
	keys, rem = terminal.Decode([]byte("q\x1b["))
	test.ExpectEquality(t, len(keys), 1)
	test.ExpectEquality(t, string(rem), "\x1b[")

	keys, rem = terminal.Decode(append(rem, 'D'))
	test.DemandEquality(t, len(keys), 1)
	test.ExpectEquality(t, keys[0], terminal.KeyLeft)
	test.ExpectEquality(t, len(rem), 0)

	// lone escape followed by something else
	keys, _ = terminal.Decode([]byte("\x1bq"))
	test.DemandEquality(t, len(keys), 1)
	test.ExpectEquality(t, keys[0], terminal.KeyQuit)

	// ctrl-c
	keys, _ = terminal.Decode([]byte{3})
	test.DemandEquality(t, len(keys), 1)
	test.ExpectEquality(t, keys[0].String(), "quit")
}

func TestReadKeys(t *testing.T) {
	keys := make(chan terminal.Key, 10)

	r := bytes.NewReader([]byte("\x1b[C\x1b[C "))
	test.ExpectSuccess(t, terminal.ReadKeys(context.Background(), r, keys))
	close(keys)

	var got []terminal.Key
	for k := range keys {
		got = append(got, k)
	}
	test.DemandEquality(t, len(got), 3)
	test.ExpectEquality(t, got[0], terminal.KeyRight)
	test.ExpectEquality(t, got[2], terminal.KeyPause)

	// cancelled context returns immediately
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	test.ExpectSuccess(t, terminal.ReadKeys(ctx, bytes.NewReader([]byte("q")), make(chan terminal.Key)))
}
