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

package paths

import (
	"path/filepath"

	"github.com/cdgplay/cdgplay/curated"
)

// ResourcePath returns the path for the file in the sub-path of the base
// resource path. The sub-path is created if it does not exist. The file
// itself is not checked or created.
//
// Either of the sub-path or the file may be empty.
func ResourcePath(subPth string, file string) (string, error) {
	basePath, err := getBasePath(subPth)
	if err != nil {
		return "", curated.Errorf("paths: %v", err)
	}
	return filepath.Join(basePath, file), nil
}
