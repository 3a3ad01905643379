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

package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "cdgplay"

// set by the linker for release builds. for example:
//
//	go build -ldflags "-X github.com/cdgplay/cdgplay/version.number=v0.1.0"
var number string

var version string
var revision string

// Version returns the version string, the revision string and whether this is
// a numbered release.
//
// If the version is "unreleased" then the program has been built from a
// repository without a version number. If the version is "local" then there
// is no version number and no vcs information, as happens with "go run".
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns the application name and version in a form suitable for
// display.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

func init() {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	switch {
	case vcsRevision == "":
		revision = "no revision information"
	case vcsModified:
		revision = fmt.Sprintf("%s+dirty", vcsRevision)
	default:
		revision = vcsRevision
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
