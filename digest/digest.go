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

// Digest implementations compute a hash from a series of inputs.
type Digest interface {
	Hash() string
	ResetDigest()
}

// State returns the sha1 digest of the palette and framebuffer of the state.
// The Elapsed field and the Diagnostics of the state are not included.
func State(st *cdg.State) string {
	h := sha1.New()
	for _, c := range st.Palette {
		h.Write([]byte{c.R, c.G, c.B})
	}
	h.Write(st.Framebuffer[:])
	return fmt.Sprintf("%x", h.Sum(nil))
}
