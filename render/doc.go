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

// Package render converts the CD+G framebuffer into something that can be
// seen. The Image() function resolves the palette indices of the framebuffer
// into an image.RGBA, which can be saved as a PNG file with SavePNG().
//
// The ANSI type draws the picture in a terminal that supports 24 bit colour
// escape sequences.
package render
