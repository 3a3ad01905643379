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

package performance

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/cdgplay/cdgplay/cdg"
	"github.com/cdgplay/cdgplay/curated"
)

// Result of a performance check.
type Result struct {
	Seeks    int
	Duration time.Duration

	// number of packets replayed over all seeks
	Replayed int

	Backward int
	Keyframe int
	Restart  int
	Redraws  int
}

// Rate returns the number of seeks per second.
func (r Result) Rate() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Seeks) / r.Duration.Seconds()
}

// MeanReplay returns the mean number of packets replayed by a seek.
func (r Result) MeanReplay() float64 {
	if r.Seeks == 0 {
		return 0
	}
	return float64(r.Replayed) / float64(r.Seeks)
}

func (r Result) String() string {
	var kf float64
	if r.Backward > 0 {
		kf = 100 * float64(r.Keyframe) / float64(r.Backward)
	}
	return fmt.Sprintf("%d seeks in %.2f seconds (%.0f seeks/s) mean replay %.1f packets, %d backward (%.1f%% from keyframe, %d restarts), %d redraws",
		r.Seeks, r.Duration.Seconds(), r.Rate(), r.MeanReplay(),
		r.Backward, kf, r.Restart, r.Redraws)
}

// Check the performance of the seek engine. The session is seeked to random
// positions the number of times specified. The seed is used to generate the
// positions and the same seed always produces the same series of seeks.
//
// The seeks are run through RunProfiler() with the specified Profile.
func Check(output io.Writer, profile Profile, sess *cdg.Session, seeks int, seed uint64) (Result, error) {
	var res Result

	if !sess.CanSeekBackward() {
		return res, curated.Errorf(cdg.UnseekableSource)
	}

	// one beyond the end of the stream so that seeking to the end is possible
	length := sess.Len() + 1

	rnd := rand.New(rand.NewPCG(seed, seed))
	targets := make([]int, seeks)
	for i := range targets {
		targets[i] = rnd.IntN(length)
	}

	runner := func() error {
		start := time.Now()
		for _, ts := range targets {
			redraw, err := sess.SeekTo(ts)
			if err != nil {
				return err
			}

			info := sess.LastSeek()
			res.Seeks++
			res.Replayed += info.Replayed
			if info.Backward {
				res.Backward++
			}
			if info.Keyframe {
				res.Keyframe++
			}
			if info.Restart {
				res.Restart++
			}
			if redraw {
				res.Redraws++
			}
		}
		res.Duration = time.Since(start)
		return nil
	}

	if err := RunProfiler(profile, ProfileHeader("performance"), runner); err != nil {
		return res, curated.Errorf("performance: %v", err)
	}

	if _, err := fmt.Fprintln(output, res); err != nil {
		return res, err
	}

	return res, nil
}
