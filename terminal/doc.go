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

// Package terminal reads key presses from the controlling terminal without
// waiting for the return key. The terminal is put into cbreak mode when it is
// opened and restored to its original mode when it is closed.
//
// Key presses are decoded into Key values by the Decode() function. Only the
// keys that are meaningful to the player are decoded. Everything else is
// ignored.
package terminal
