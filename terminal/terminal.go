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

package terminal

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/pkg/term"

	"github.com/cdgplay/cdgplay/curated"
)

// the device opened by Open()
const controllingTerminal = "/dev/tty"

// the maximum time a call to read will block. this is the resolution at which
// a cancelled context is noticed
const readTimeout = 100 * time.Millisecond

// Terminal is the controlling terminal in cbreak mode.
type Terminal struct {
	t *term.Term
}

// Open the controlling terminal and put it into cbreak mode.
func Open() (*Terminal, error) {
	t, err := term.Open(controllingTerminal, term.CBreakMode, term.ReadTimeout(readTimeout))
	if err != nil {
		return nil, curated.Errorf("terminal: %v", err)
	}
	return &Terminal{t: t}, nil
}

// Close restores the terminal to the mode it was in before Open() and closes
// it.
func (trm *Terminal) Close() error {
	err := trm.t.Restore()
	if err != nil {
		trm.t.Close()
		return curated.Errorf("terminal: %v", err)
	}
	err = trm.t.Close()
	if err != nil {
		return curated.Errorf("terminal: %v", err)
	}
	return nil
}

// IsTerminal returns true if the file is a character device. Used to decide
// whether it is worth opening the terminal at all.
func IsTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice == os.ModeCharDevice
}

// Keys reads from the terminal and sends decoded keys to the channel until the
// context is cancelled. Returns nil when the context is cancelled.
func (trm *Terminal) Keys(ctx context.Context, keys chan<- Key) error {
	return ReadKeys(ctx, timeoutReader{t: trm.t}, keys)
}

// a read from the terminal that times out is reported as io.EOF. the
// timeoutReader reports it as an empty read instead
type timeoutReader struct {
	t *term.Term
}

func (r timeoutReader) Read(b []byte) (int, error) {
	n, err := r.t.Read(b)
	if errors.Is(err, io.EOF) {
		return n, nil
	}
	return n, err
}

// ReadKeys reads from the reader and sends decoded keys to the channel until
// the context is cancelled or the reader is exhausted. Returns nil in either
// case.
//
// A read that returns no data and no error is tried again.
func ReadKeys(ctx context.Context, r io.Reader, keys chan<- Key) error {
	buf := make([]byte, 16)
	var rem []byte

	for {
		if ctx.Err() != nil {
			return nil
		}

		n, err := r.Read(buf)
		if n > 0 {
			var ks []Key
			ks, rem = Decode(append(rem, buf[:n]...))
			for _, k := range ks {
				select {
				case keys <- k:
				case <-ctx.Done():
					return nil
				}
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return curated.Errorf("terminal: %v", err)
		}
	}
}
