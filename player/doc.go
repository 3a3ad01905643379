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

// Package player keeps the CD+G picture in step with the playback clock.
//
// The Player type reads the position of an audio.Clock, seeks the cdg.Session
// to that position and, if the picture has changed, passes the state to a
// Renderer. The Step() function does this once. The Run() function repeats it
// at the preferred rate until playback ends.
//
// Commands sent to the player while it is running move the clock forwards or
// backwards, pause the clock or end playback. The KeyCommand() function maps
// terminal key presses to commands.
package player
