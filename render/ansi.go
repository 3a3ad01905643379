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

package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/cdgplay/cdgplay/cdg"
	"github.com/cdgplay/cdgplay/curated"
)

// ANSI draws the picture to a terminal. Each character cell shows two pixels,
// one above the other, by using the upper half block character with different
// foreground and background colours.
//
// The picture is downscaled by sampling every Nth pixel in both directions,
// where N is the scale value.
type ANSI struct {
	w     *bufio.Writer
	scale int

	// number of frames drawn
	frames int
}

// NewANSI is the preferred method of initialisation for the ANSI type. A
// scale of less than one is treated as one.
func NewANSI(w io.Writer, scale int) *ANSI {
	return &ANSI{
		w:     bufio.NewWriter(w),
		scale: max(scale, 1),
	}
}

// Size returns the number of columns and rows of character cells required to
// draw the picture.
func (r *ANSI) Size() (int, int) {
	cols := cdg.Width / r.scale
	rows := (cdg.Height/r.scale + 1) / 2
	return cols, rows
}

// Frames returns the number of times Render() has been called.
func (r *ANSI) Frames() int {
	return r.frames
}

// Render draws the picture in the state.
func (r *ANSI) Render(st *cdg.State) error {
	cols, rows := r.Size()

	// cursor to top-left
	r.w.WriteString("\x1b[H")

	var fg, bg cdg.RGB
	first := true

	for row := 0; row < rows; row++ {
		y := row * 2 * r.scale
		for col := 0; col < cols; col++ {
			x := col * r.scale

			top := st.Color(x, y)
			bottom := top
			if y+r.scale < cdg.Height {
				bottom = st.Color(x, y+r.scale)
			}

			if first || top != fg {
				fmt.Fprintf(r.w, "\x1b[38;2;%d;%d;%dm", top.R, top.G, top.B)
				fg = top
			}
			if first || bottom != bg {
				fmt.Fprintf(r.w, "\x1b[48;2;%d;%d;%dm", bottom.R, bottom.G, bottom.B)
				bg = bottom
			}
			first = false

			r.w.WriteString("▀")
		}

		// reset colours before the newline so the background colour does
		// not bleed to the edge of the terminal
		r.w.WriteString("\x1b[0m\r\n")
		first = true
	}

	r.frames++

	if err := r.w.Flush(); err != nil {
		return curated.Errorf("render: %v", err)
	}
	return nil
}

// Clear clears the terminal and hides the cursor.
func (r *ANSI) Clear() error {
	r.w.WriteString("\x1b[2J\x1b[?25l")
	if err := r.w.Flush(); err != nil {
		return curated.Errorf("render: %v", err)
	}
	return nil
}

// Restore resets colours and shows the cursor.
func (r *ANSI) Restore() error {
	r.w.WriteString("\x1b[0m\x1b[?25h\r\n")
	if err := r.w.Flush(); err != nil {
		return curated.Errorf("render: %v", err)
	}
	return nil
}
