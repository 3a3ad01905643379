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

package audio

import (
	"context"
	"sync/atomic"
	"time"
)

// Clock is the source of the playback position. The position of a Clock
// advances on its own. The Seek() function is used to move the position when
// the user wants to skip forwards or backwards.
type Clock interface {
	// Position returns the current position in milliseconds
	Position() int

	// Seek sets the position to the specified number of milliseconds
	Seek(ms int)
}

// the frequency at which the WallClock position is updated
const tickInterval = 5 * time.Millisecond

// WallClock is a Clock that advances in step with real time. The position is
// updated by the Run() function and can be read from any goroutine.
type WallClock struct {
	pos    atomic.Int64
	paused atomic.Bool

	// length in milliseconds. the position never advances beyond the length.
	// a length of zero means the clock advances forever
	length int64
}

// NewWallClock is the preferred method of initialisation for the WallClock
// type. The length is the duration of the audio track.
func NewWallClock(length time.Duration) *WallClock {
	return &WallClock{
		length: length.Milliseconds(),
	}
}

// Position implements the Clock interface.
func (clk *WallClock) Position() int {
	return int(clk.pos.Load())
}

// Seek implements the Clock interface. The position is clamped to the length
// of the clock.
func (clk *WallClock) Seek(ms int) {
	clk.pos.Store(clk.clamp(int64(ms)))
}

// SeekRelative moves the position by the number of milliseconds, which may be
// negative.
func (clk *WallClock) SeekRelative(ms int) {
	clk.advance(int64(ms))
}

// move the position by delta milliseconds. a Seek() that happens at the same
// time is never overwritten with a position computed before it
func (clk *WallClock) advance(delta int64) {
	for {
		o := clk.pos.Load()
		if clk.pos.CompareAndSwap(o, clk.clamp(o+delta)) {
			return
		}
	}
}

func (clk *WallClock) clamp(ms int64) int64 {
	if ms < 0 {
		return 0
	}
	if clk.length > 0 && ms > clk.length {
		return clk.length
	}
	return ms
}

// Pause stops or restarts the advance of the clock.
func (clk *WallClock) Pause(paused bool) {
	clk.paused.Store(paused)
}

// Paused returns true if the clock is paused.
func (clk *WallClock) Paused() bool {
	return clk.paused.Load()
}

// Ended returns true if the position has reached the length of the clock.
func (clk *WallClock) Ended() bool {
	return clk.length > 0 && clk.pos.Load() >= clk.length
}

// Length returns the length of the clock.
func (clk *WallClock) Length() time.Duration {
	return time.Duration(clk.length) * time.Millisecond
}

// Run advances the clock until the context is cancelled. It should be run in
// its own goroutine. Returns the error from the context.
func (clk *WallClock) Run(ctx context.Context) error {
	tck := time.NewTicker(tickInterval)
	defer tck.Stop()

	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-tck.C:
			delta := now.Sub(last).Milliseconds()
			if delta == 0 {
				continue
			}

			// time spent paused is discarded
			last = last.Add(time.Duration(delta) * time.Millisecond)
			if clk.paused.Load() {
				continue
			}

			clk.advance(delta)
		}
	}
}

// ManualClock is a Clock whose position only changes when it is told to. It is
// useful for testing and for batch operations.
type ManualClock struct {
	pos atomic.Int64
}

// Position implements the Clock interface.
func (clk *ManualClock) Position() int {
	return int(clk.pos.Load())
}

// Seek implements the Clock interface. Negative values are treated as zero.
func (clk *ManualClock) Seek(ms int) {
	clk.pos.Store(int64(max(ms, 0)))
}

// Advance moves the position forward by the number of milliseconds.
func (clk *ManualClock) Advance(ms int) {
	clk.Seek(clk.Position() + ms)
}
