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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/cdgplay/cdgplay/cdg"
)

const pixelDepth = 3

// Screen is a chained digest of the resolved colours of every pixel in the
// framebuffer.
type Screen struct {
	digest [sha1.Size]byte

	// the previous digest followed by the RGB value of each pixel
	pixels []byte

	// number of times Update() has been called since the last reset
	updates int
}

// NewScreen is the preferred method of initialisation for the Screen type.
func NewScreen() *Screen {
	return &Screen{
		pixels: make([]byte, sha1.Size+cdg.Width*cdg.Height*pixelDepth),
	}
}

// Hash implements the Digest interface.
func (dig *Screen) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Screen) ResetDigest() {
	clear(dig.digest[:])
	dig.updates = 0
}

// Updates returns the number of times Update() has been called since the last
// call to ResetDigest().
func (dig *Screen) Updates() int {
	return dig.updates
}

// Update adds the picture in the state to the digest.
func (dig *Screen) Update(st *cdg.State) {
	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the pixel data
	copy(dig.pixels, dig.digest[:])

	i := sha1.Size
	for _, idx := range st.Framebuffer {
		c := st.Palette[idx&0x0f]
		dig.pixels[i] = c.R
		dig.pixels[i+1] = c.G
		dig.pixels[i+2] = c.B
		i += pixelDepth
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.updates++
}
