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

// Package cdg decodes CD+Graphics subcode streams. A CD+G stream is a
// sequence of 24 byte packets, 300 of them for every second of audio. Packets
// with the graphics command carry one instruction each, which updates a
// 300x216 pixel framebuffer of palette indices or the 16 entry palette
// itself.
//
// The State type holds the framebuffer, the palette and the number of packets
// processed so far. The Process() function of the State applies a single
// Packet.
//
// Packets come from a Source. A Source that can also reposition itself to any
// packet index implements the Seeker interface. The BufferSource type is the
// usual Seeker and is created from an in-memory copy of the entire stream.
// The StreamSource and PullFunc types are forward only.
//
// A Session ties a Source and a State together. For a Seeker the Session
// scans the stream once when it is created and records a Keyframe for every
// full-screen clear. Seeking backwards then only needs to replay the packets
// from the nearest preceding Keyframe:
//
//	sess, err := cdg.NewSession(cdg.NewBufferSource(data))
//	if err != nil {
//		return err
//	}
//
//	redraw, err := sess.SeekToMillis(clock.Position())
//	if err != nil {
//		return err
//	}
//	if redraw {
//		render(sess.State())
//	}
//
// Scroll instructions are recognised but not implemented. They are logged and
// counted in the Diagnostics field of the State but otherwise ignored.
package cdg
