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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/cdgplay/cdgplay/curated"
	"github.com/cdgplay/cdgplay/paths"
)

// Profile specifies which profiling (if any) should be applied to the
// program.
type Profile int

// List of valid Profile values. Values can be combined.
const (
	ProfileNone  Profile = 0
	ProfileCPU   Profile = 0b0001
	ProfileMem   Profile = 0b0010
	ProfileTrace Profile = 0b0100
	ProfileAll   Profile = ProfileCPU | ProfileMem | ProfileTrace
)

// ParseProfileString converts a comma separated string to a Profile value.
// Valid strings are "none", "cpu", "mem", "trace" and "all".
func ParseProfileString(profile string) (Profile, error) {
	result := ProfileNone

	for _, p := range strings.Split(profile, ",") {
		switch strings.ToUpper(strings.TrimSpace(p)) {
		case "", "NONE":
		case "CPU":
			result |= ProfileCPU
		case "MEM":
			result |= ProfileMem
		case "TRACE":
			result |= ProfileTrace
		case "ALL":
			result |= ProfileAll
		default:
			return ProfileNone, curated.Errorf("performance: unknown profile type (%s)", p)
		}
	}

	return result, nil
}

// RunProfiler runs the supplied function "through" the requested Profile
// types. Profile files are written to the current directory with a filename
// beginning with the header.
func RunProfiler(profile Profile, filenameHeader string, run func() error) (rerr error) {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(fmt.Sprintf("%s_cpu.profile", filenameHeader))
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				rerr = curated.Errorf("performance: %v", err)
			}
		}()

		if err := pprof.StartCPUProfile(f); err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	if profile&ProfileTrace == ProfileTrace {
		f, err := os.Create(fmt.Sprintf("%s_trace.profile", filenameHeader))
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				rerr = curated.Errorf("performance: %v", err)
			}
		}()

		if err := trace.Start(f); err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer trace.Stop()
	}

	if err := run(); err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		f, err := os.Create(fmt.Sprintf("%s_mem.profile", filenameHeader))
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				rerr = curated.Errorf("performance: %v", err)
			}
		}()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return curated.Errorf("performance: %v", err)
		}
	}

	return nil
}

// ProfileHeader returns a filename header for RunProfiler(). The name is
// unique and will not overwrite previous profiles.
func ProfileHeader(name string) string {
	return paths.UniqueFilename("profile", name)
}
