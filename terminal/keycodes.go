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

package terminal

// list of ASCII codes for non-alphanumeric characters
const (
	keyInterrupt = 3  // end-of-text character
	keyEsc       = 27 // escape character
	keySpace     = ' '
)

// the character that follows keyEsc in a cursor key sequence
const escCursor = '['

// list of ASCII codes for characters that can follow escCursor
const (
	cursorUp       = 'A'
	cursorDown     = 'B'
	cursorForward  = 'C'
	cursorBackward = 'D'
)

// Key is a decoded key press.
type Key int

// List of valid Key values.
const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPause
	KeyQuit
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyPause:
		return "pause"
	case KeyQuit:
		return "quit"
	}
	return "none"
}
