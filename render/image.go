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
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/cdgplay/cdgplay/cdg"
	"github.com/cdgplay/cdgplay/curated"
)

// Image returns the picture in the state as an image.RGBA. Every pixel is
// opaque.
func Image(st *cdg.State) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cdg.Width, cdg.Height))

	i := 0
	for y := 0; y < cdg.Height; y++ {
		for x := 0; x < cdg.Width; x++ {
			c := st.Color(x, y)
			img.Pix[i] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = 0xff
			i += 4
		}
	}

	return img
}

// RGBA converts a palette entry to color.RGBA.
func RGBA(c cdg.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// SavePNG writes the picture in the state to a PNG file.
func SavePNG(st *cdg.State, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("render: %v", err)
	}

	err = png.Encode(f, Image(st))
	if err != nil {
		f.Close()
		return curated.Errorf("render: %v", err)
	}

	err = f.Close()
	if err != nil {
		return curated.Errorf("render: %v", err)
	}

	return nil
}
