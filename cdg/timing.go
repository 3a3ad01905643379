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

import "time"

// PacketsPerSecond is the rate at which packets are consumed during playback.
// This is fixed by the CD+G format.
const PacketsPerSecond = 300

// MillisToPackets converts a playback position in milliseconds to the number
// of packets that should have been processed by that time.
func MillisToPackets(ms int) int {
	return ms * PacketsPerSecond / 1000
}

// PacketsToMillis converts a number of packets to a playback position in
// milliseconds.
func PacketsToMillis(packets int) int {
	return packets * 1000 / PacketsPerSecond
}

// PacketsToDuration converts a number of packets to a time.Duration.
func PacketsToDuration(packets int) time.Duration {
	return time.Duration(packets) * time.Second / PacketsPerSecond
}
