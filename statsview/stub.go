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

//go:build !statsview

package statsview

import (
	"context"
	"io"
)

// Address of the statsview server.
const Address = ""

// Launch does nothing without the statsview build tag.
func Launch(_ context.Context, _ io.Writer) {
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return false
}
