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

// Dimensions of the framebuffer in pixels.
const (
	Width  = 300
	Height = 216
)

// Dimensions of a tile in pixels.
const (
	TileWidth  = 6
	TileHeight = 12
)

// the interior of the screen. pixels on or outside these lines are part of
// the border
const (
	borderLeft   = 6
	borderRight  = 294
	borderTop    = 12
	borderBottom = 204
)

// Framebuffer is the screen as a list of palette indices. The index of the
// pixel at (x, y) is y*Width+x.
type Framebuffer [Width * Height]uint8

// Diagnostics counts the instructions that the decoder could not act upon.
type Diagnostics struct {
	// scroll instructions
	Unsupported int

	// instruction values that are not CD+G instructions
	Unrecognised int

	// the most recent unsupported or unrecognised instruction
	Last Instruction
}

// State is the live decode target. It is updated by Process().
type State struct {
	// number of packets processed since the start of the stream. the time base
	// of the stream. see PacketsPerSecond
	Elapsed int

	Palette     Palette
	Framebuffer Framebuffer

	// instructions that could not be acted upon. Diagnostics are not part of
	// the picture and are ignored by Equal()
	Diagnostics Diagnostics

	// Quiet suppresses log entries made by Process()
	Quiet bool
}

// NewState is the preferred method of initialisation for the State type.
func NewState() *State {
	return &State{}
}

// AllowLogging implements the logger.Permission interface.
func (st *State) AllowLogging() bool {
	return !st.Quiet
}

// Pixel returns the palette index of the pixel at (x, y).
func (st *State) Pixel(x, y int) uint8 {
	return st.Framebuffer[y*Width+x]
}

// Color returns the resolved colour of the pixel at (x, y).
func (st *State) Color(x, y int) RGB {
	return st.Palette[st.Framebuffer[y*Width+x]&colorMask]
}

// Fill sets every pixel in the framebuffer to the palette index.
func (st *State) Fill(color uint8) {
	for i := range st.Framebuffer {
		st.Framebuffer[i] = color
	}
}

// IsBorder returns true if the pixel at (x, y) is in the border area of the
// screen. The border is everything outside the rectangle (6,12)-(294,204),
// including the lines of the rectangle itself.
func IsBorder(x, y int) bool {
	return x <= borderLeft || x >= borderRight || y <= borderTop || y >= borderBottom
}

// Equal returns true if both states are at the same point in the stream and
// show the same picture.
func (st *State) Equal(o *State) bool {
	return st.Elapsed == o.Elapsed && st.Palette == o.Palette && st.Framebuffer == o.Framebuffer
}

// restore state from keyframe
func (st *State) restore(kf Keyframe) {
	st.Elapsed = kf.Timestamp
	st.Palette = kf.Palette
	st.Fill(kf.ClearColor)
}

// reset state to the condition at the very start of the stream
func (st *State) reset() {
	st.Elapsed = 0
	st.Palette = Palette{}
	st.Fill(0)
}
