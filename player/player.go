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

package player

import (
	"context"

	"github.com/cdgplay/cdgplay/audio"
	"github.com/cdgplay/cdgplay/cdg"
	"github.com/cdgplay/cdgplay/curated"
	"github.com/cdgplay/cdgplay/limiter"
	"github.com/cdgplay/cdgplay/logger"
	"github.com/cdgplay/cdgplay/metrics"
	"golang.org/x/sync/errgroup"
)

// Renderer is used by the Player to show the picture.
type Renderer interface {
	Render(*cdg.State) error
}

// a clock that can be paused. implemented by audio.WallClock
type pauser interface {
	Pause(bool)
	Paused() bool
}

// a clock with a fixed length. implemented by audio.WallClock
type ender interface {
	Ended() bool
}

// a clock that must be run for it to advance. implemented by audio.WallClock
type runner interface {
	Run(ctx context.Context) error
}

// Player keeps the state of a cdg.Session in step with an audio.Clock.
type Player struct {
	sess     *cdg.Session
	clock    audio.Clock
	renderer Renderer
	prefs    *Preferences

	// metrics are optional
	metrics *metrics.Metrics

	// the picture must be rendered on the next step even if the session does
	// not require it
	forceRender bool

	quit bool
}

// NewPlayer is the preferred method of initialisation for the Player type.
func NewPlayer(sess *cdg.Session, clock audio.Clock, renderer Renderer, prefs *Preferences) *Player {
	return &Player{
		sess:        sess,
		clock:       clock,
		renderer:    renderer,
		prefs:       prefs,
		forceRender: true,
	}
}

// SetMetrics attaches a metrics instance to the player. A value of nil
// disables metrics.
func (pl *Player) SetMetrics(m *metrics.Metrics) {
	pl.metrics = m
}

// Apply a command to the player.
func (pl *Player) Apply(cmd Command) {
	logger.Logf(logger.Allow, "player", "%s", cmd)

	switch cmd.Type {
	case CmdSeek:
		pl.seek(pl.clock.Position() + cmd.Amount)
	case CmdSeekTo:
		pl.seek(cmd.Amount)
	case CmdPause:
		if p, ok := pl.clock.(pauser); ok {
			p.Pause(!p.Paused())
		}
	case CmdQuit:
		pl.quit = true
	}
}

func (pl *Player) seek(ms int) {
	ms = max(ms, 0)
	if ms < pl.clock.Position() && !pl.sess.CanSeekBackward() {
		logger.Log(logger.Allow, "player", "cannot seek backwards in stream")
		return
	}
	pl.clock.Seek(ms)
}

// Finished returns true if playback has ended. Playback ends when a quit
// command has been applied or when the clock has reached the end of its
// length. If the clock has no length then playback ends when the session
// reaches the end of the stream.
func (pl *Player) Finished() bool {
	if pl.quit {
		return true
	}
	if e, ok := pl.clock.(ender); ok {
		return e.Ended()
	}
	return pl.sess.EOF()
}

// Step brings the session up to the position of the clock and renders the
// picture if it has changed.
func (pl *Player) Step() error {
	ms := pl.clock.Position() + pl.prefs.SyncOffset.Get().(int)

	redraw, err := pl.sess.SeekToMillis(ms)
	if err != nil {
		if !curated.Is(err, cdg.UnseekableSource) {
			return curated.Errorf("player: %v", err)
		}
		logger.Log(logger.Allow, "player", err)
	}

	if pl.metrics != nil {
		pl.metrics.RecordSeek(pl.sess.LastSeek())
		pl.metrics.RecordState(pl.sess.State())
	}

	if redraw || pl.forceRender {
		pl.forceRender = false
		if err := pl.renderer.Render(pl.sess.State()); err != nil {
			return curated.Errorf("player: %v", err)
		}
		if pl.metrics != nil {
			pl.metrics.Redraws.Inc()
		}
	}

	if pl.metrics != nil {
		pl.metrics.Frames.Inc()
	}

	return nil
}

// Run calls Step() at the preferred rate until playback has finished or the
// context is cancelled. Commands received on the input channel are applied
// before the next step. The input channel can be nil.
//
// If the clock must be run for it to advance, as is the case for
// audio.WallClock, then it is run alongside the player.
func (pl *Player) Run(ctx context.Context, input <-chan Command) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lim := limiter.NewFPSLimiter(pl.prefs.FPS.Get().(int))
	pl.prefs.FPS.SetHookPost(func(v any) error {
		lim.SetLimit(v.(int))
		return nil
	})
	defer pl.prefs.FPS.SetHookPost(nil)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		_ = lim.Run(ctx)
		return nil
	})

	if r, ok := pl.clock.(runner); ok {
		g.Go(func() error {
			_ = r.Run(ctx)
			return nil
		})
	}

	g.Go(func() error {
		defer cancel()

		for {
			done := false
			for !done {
				select {
				case cmd, ok := <-input:
					if !ok {
						input = nil
						done = true
						break
					}
					pl.Apply(cmd)
				default:
					done = true
				}
			}

			if err := pl.Step(); err != nil {
				return err
			}

			if pl.Finished() {
				return nil
			}

			if pl.metrics != nil {
				pl.metrics.FPS.Set(lim.Measured())
			}

			if err := lim.Wait(ctx); err != nil {
				return nil
			}
		}
	})

	return g.Wait()
}
