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

import (
	"time"

	"github.com/cdgplay/cdgplay/curated"
	"github.com/cdgplay/cdgplay/logger"
)

// Error patterns returned by Session.
const (
	UnseekableSource = "cdg: source cannot seek backwards"
)

// SeekInfo describes the most recent call to SeekTo().
type SeekInfo struct {
	// the target timestamp after clamping
	Target int

	// the target was earlier than the state at the time of the seek
	Backward bool

	// a backward seek was satisfied by plumbing in a keyframe
	Keyframe bool

	// a backward seek had no keyframe to use and restarted from the beginning
	// of the stream
	Restart bool

	// number of packets processed during the seek
	Replayed int

	// the value returned by SeekTo()
	Redraw bool
}

// Session is a decoding session for a single stream. It owns the Source and
// the State and, if the Source is a Seeker, the list of keyframes.
type Session struct {
	src Source

	// nil if src does not implement the Seeker interface
	seeker Seeker

	state     *State
	keyframes Keyframes

	// the source has been exhausted
	eof bool

	last SeekInfo
}

// a Source that logs can be told to log with the permission of the Session
type permissioned interface {
	setPermission(logger.Permission)
}

// NewSession is the preferred method of initialisation for the Session type.
//
// If the source implements the Seeker interface the keyframe list is built
// before the function returns. Otherwise the session can only seek forwards.
func NewSession(src Source) (*Session, error) {
	s := &Session{
		src:   src,
		state: NewState(),
	}

	if p, ok := src.(permissioned); ok {
		p.setPermission(s.state)
	}

	if sk, ok := src.(Seeker); ok {
		s.seeker = sk

		var err error
		s.keyframes, err = BuildKeyframes(sk)
		if err != nil {
			return nil, curated.Errorf("session: %v", err)
		}

		logger.Logf(s.state, logTag, "%d keyframes in %d packets", len(s.keyframes), sk.Len())
	} else {
		logger.Log(s.state, logTag, "source is forward only. backward seeking is disabled")
	}

	return s, nil
}

// State returns the current decode state. The State should be treated as
// read-only by the caller.
func (s *Session) State() *State {
	return s.state
}

// Keyframes returns the list of keyframes. The list is empty if the source is
// not a Seeker or if the stream contains no memory preset instructions.
func (s *Session) Keyframes() Keyframes {
	return s.keyframes
}

// CanSeekBackward returns true if the source allows seeking backwards.
func (s *Session) CanSeekBackward() bool {
	return s.seeker != nil
}

// EOF returns true if the end of the stream has been reached.
func (s *Session) EOF() bool {
	return s.eof
}

// Len returns the number of packets in the stream. Returns -1 if the length
// is not known because the source is not a Seeker.
func (s *Session) Len() int {
	if s.seeker == nil {
		return -1
	}
	return s.seeker.Len()
}

// Duration returns the playing time of the stream. Returns zero if the length
// of the stream is not known.
func (s *Session) Duration() time.Duration {
	if s.seeker == nil {
		return 0
	}
	return PacketsToDuration(s.seeker.Len())
}

// LastSeek returns information about the most recent call to SeekTo().
func (s *Session) LastSeek() SeekInfo {
	return s.last
}

// SetQuiet suppresses log entries made during decoding. Useful for batch
// operations that seek many times.
func (s *Session) SetQuiet(quiet bool) {
	s.state.Quiet = quiet
}

// SeekToMillis is the same as SeekTo() but with a target in milliseconds.
func (s *Session) SeekToMillis(ms int) (bool, error) {
	return s.SeekTo(MillisToPackets(ms))
}

// SeekTo brings the state to the target timestamp, measured in packets. The
// returned boolean is true if the picture has changed and should be redrawn.
//
// Seeking forwards processes packets from the current position. Seeking
// backwards plumbs in the nearest preceding keyframe and processes packets
// from there. If there is no such keyframe the state is reset and every packet
// from the start of the stream is processed.
//
// The state is left at the end of the stream if the target is beyond it.
func (s *Session) SeekTo(target int) (bool, error) {
	if target < 0 {
		target = 0
	}

	s.last = SeekInfo{Target: target}

	if target < s.state.Elapsed {
		if s.seeker == nil {
			return false, curated.Errorf(UnseekableSource)
		}

		s.last.Backward = true

		if kf, ok := s.keyframes.Find(target); ok {
			if err := s.seeker.SeekPacket(kf.Timestamp); err != nil {
				return false, curated.Errorf("session: %v", err)
			}
			s.state.restore(kf)
			s.last.Keyframe = true
		} else {
			if err := s.seeker.SeekPacket(0); err != nil {
				return false, curated.Errorf("session: %v", err)
			}
			s.state.reset()
			s.last.Restart = true
		}

		s.eof = false

		// the picture has been replaced so a redraw is required even if no
		// packets are processed
		s.last.Redraw = true
	} else if s.eof {
		return false, nil
	}

	s.last.Redraw = s.replay(target) || s.last.Redraw

	return s.last.Redraw, nil
}

// process packets until the target is reached or the stream ends. every
// packet is processed even if a redraw is already known to be required
func (s *Session) replay(target int) bool {
	var redraw bool

	for s.state.Elapsed < target {
		p, ok := s.src.ReadPacket()
		if !ok {
			s.eof = true
			logger.Logf(s.state, logTag, "end of stream at packet %d", s.state.Elapsed)
			break
		}

		if s.state.Process(p) {
			redraw = true
		}
		s.last.Replayed++
	}

	return redraw
}
