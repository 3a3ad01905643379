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
	"fmt"

	"github.com/cdgplay/cdgplay/curated"
)

// Keyframe is a point in the stream at which the entire picture is known
// without reference to any earlier packet. A keyframe is recorded for every
// memory preset instruction with a repeat value of zero.
type Keyframe struct {
	// the value of State.Elapsed immediately after the memory preset packet
	// has been processed
	Timestamp int

	// the palette in effect at the timestamp
	Palette Palette

	// every pixel in the framebuffer is this palette index
	ClearColor uint8
}

func (kf Keyframe) String() string {
	return fmt.Sprintf("%d (%.2fs) clear=%02X", kf.Timestamp, PacketsToDuration(kf.Timestamp).Seconds(), kf.ClearColor)
}

// Keyframes is a list of Keyframe instances in ascending Timestamp order.
type Keyframes []Keyframe

// BuildKeyframes scans the entire stream once and returns the list of
// keyframes. The source is repositioned to the start of the stream before and
// after the scan.
//
// An empty list is returned for a stream with no memory preset instructions.
func BuildKeyframes(src Seeker) (Keyframes, error) {
	err := src.SeekPacket(0)
	if err != nil {
		return nil, curated.Errorf("keyframes: %v", err)
	}

	// a running palette maintained independently of any State
	var palette Palette

	kfs := make(Keyframes, 0)

	for i := 0; ; i++ {
		p, ok := src.ReadPacket()
		if !ok {
			break
		}

		if !p.IsGraphics() {
			continue
		}

		switch p.Instruction {
		case LoadColorTableLow, LoadColorTableHigh:
			p.ColorTable().Apply(&palette)
		case MemoryPreset:
			d := p.MemoryPreset()
			if d.Repeat == 0 {
				kfs = append(kfs, Keyframe{
					Timestamp:  i + 1,
					Palette:    palette,
					ClearColor: d.Color,
				})
			}
		}
	}

	err = src.SeekPacket(0)
	if err != nil {
		return nil, curated.Errorf("keyframes: %v", err)
	}

	return kfs, nil
}

// Find returns the keyframe with the largest timestamp that is not greater
// than ts. Returns false if there is no such keyframe.
func (kfs Keyframes) Find(ts int) (Keyframe, bool) {
	idx := kfs.find(ts)
	if idx < 0 {
		return Keyframe{}, false
	}
	return kfs[idx], true
}

// binary search. returns -1 if ts is before the first keyframe
func (kfs Keyframes) find(ts int) int {
	best := -1

	s := 0
	e := len(kfs) - 1
	for s <= e {
		m := (s + e) / 2
		t := kfs[m].Timestamp

		if t == ts {
			return m
		}

		if t < ts {
			// closest so far without going over
			best = m
			s = m + 1
		} else {
			e = m - 1
		}
	}

	return best
}
