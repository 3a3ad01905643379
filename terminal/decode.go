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

// Decode returns the keys in the input. An incomplete escape sequence at the
// end of the input is returned as the remainder and should be prepended to the
// next input.
func Decode(input []byte) ([]Key, []byte) {
	keys := make([]Key, 0, len(input))

	for i := 0; i < len(input); i++ {
		switch input[i] {
		case keyEsc:
			if i+1 >= len(input) {
				return keys, input[i:]
			}
			if input[i+1] != escCursor {
				// a lone escape key is ignored
				continue
			}
			if i+2 >= len(input) {
				return keys, input[i:]
			}

			switch input[i+2] {
			case cursorUp:
				keys = append(keys, KeyUp)
			case cursorDown:
				keys = append(keys, KeyDown)
			case cursorForward:
				keys = append(keys, KeyRight)
			case cursorBackward:
				keys = append(keys, KeyLeft)
			}
			i += 2

		case keySpace, 'p', 'P':
			keys = append(keys, KeyPause)

		case 'q', 'Q', keyInterrupt:
			keys = append(keys, KeyQuit)

		case 'h', 'a':
			keys = append(keys, KeyLeft)

		case 'l', 'd':
			keys = append(keys, KeyRight)
		}
	}

	return keys, nil
}
