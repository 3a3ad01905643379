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

// Package audio provides the playback clock that CD+G graphics are
// synchronised to, and probing of the audio track that accompanies a stream.
//
// Audio is never decoded for output. The WallClock advances in real time for
// as long as the track would play. The Probe() function reads just enough of
// the track to find its duration.
package audio
