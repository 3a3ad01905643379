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

// Package paths contains functions to prepare paths for the files that
// cdgplay reads and writes: the preferences file and the regression database,
// for example.
//
// The ResourcePath() function prepends the base resource path to a file and
// sub-path. The base path depends on how the program was built. For a release
// build (the releasebuild tag) the base path is a directory in the user's
// configuration directory, as described by os.UserConfigDir(). Otherwise the
// base path is a hidden directory in the current working directory.
//
// The UniqueFilename() function creates names for files that are generated on
// request, such as PNG snapshots.
package paths
