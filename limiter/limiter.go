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

// Package limiter keeps the rate of an update loop to a preferred number of
// frames per second.
//
// The FPSLimiter type sends a tick at the requested rate. The Run() function
// must be running in its own goroutine for the ticks to be generated:
//
//	lim := limiter.NewFPSLimiter(30)
//	go lim.Run(ctx)
//
//	for {
//		if err := lim.Wait(ctx); err != nil {
//			return err
//		}
//		update()
//	}
package limiter

import (
	"context"
	"sync/atomic"
	"time"
)

// FPSLimiter will trigger the preferred number of times every second.
type FPSLimiter struct {
	// the duration of a single frame
	period atomic.Int64

	tick chan bool

	// the measured rate over the last second, multiplied by 100
	measured atomic.Int64
}

// NewFPSLimiter is the preferred method of initialisation for the FPSLimiter
// type.
func NewFPSLimiter(framesPerSecond int) *FPSLimiter {
	lim := &FPSLimiter{
		tick: make(chan bool),
	}
	lim.SetLimit(framesPerSecond)
	return lim
}

// SetLimit changes the rate at which the FPSLimiter triggers. Values less
// than one are treated as one.
func (lim *FPSLimiter) SetLimit(framesPerSecond int) {
	framesPerSecond = max(framesPerSecond, 1)
	lim.period.Store(int64(time.Second / time.Duration(framesPerSecond)))
}

// Limit returns the current preferred rate.
func (lim *FPSLimiter) Limit() int {
	return int(time.Second / time.Duration(lim.period.Load()))
}

// Measured returns the actual rate at which ticks have been consumed over the
// most recent second.
func (lim *FPSLimiter) Measured() float64 {
	return float64(lim.measured.Load()) / 100
}

// Run generates ticks until the context is cancelled. Returns the error from
// the context.
//
// The sleep period is adjusted every frame to account for the time lost
// sending the tick and oversleeping.
func (lim *FPSLimiter) Run(ctx context.Context) error {
	adjusted := time.Duration(lim.period.Load())

	t := time.Now()
	measureStart := t
	var count int

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case lim.tick <- true:
		}

		count++
		if d := time.Since(measureStart); d >= time.Second {
			lim.measured.Store(int64(float64(count) / d.Seconds() * 100))
			count = 0
			measureStart = time.Now()
		}

		period := time.Duration(lim.period.Load())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(adjusted):
		}

		nt := time.Now()
		adjusted -= nt.Sub(t) - period

		// do not let the adjustment run away if the consumer has stalled
		adjusted = min(max(adjusted, 0), period)

		t = nt
	}
}

// Wait will block until the next tick or until the context is cancelled.
func (lim *FPSLimiter) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-lim.tick:
		return nil
	}
}

// HasWaited will return true if the tick has already happened and false if it
// is still yet to happen.
func (lim *FPSLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}
