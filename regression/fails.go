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

package regression

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cdgplay/cdgplay/paths"
)

// the keyword used to select the previously failed entries
const failsKeyword = "FAILS"

var errNoPreviousFails = errors.New("no previous fails")

func failsPath() (string, error) {
	return paths.ResourcePath(regressionPath, failsFile)
}

func saveFails(keys []string) error {
	slices.Sort(keys)
	keys = slices.Compact(keys)

	p, err := failsPath()
	if err != nil {
		return fmt.Errorf("save fails: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("save fails: %w", err)
	}

	var s strings.Builder
	for _, v := range keys {
		s.WriteString(v)
		s.WriteString("\n")
	}

	if err := os.WriteFile(p, []byte(s.String()), 0o644); err != nil {
		return fmt.Errorf("save fails: %w", err)
	}

	return nil
}

func loadFails() ([]string, error) {
	p, err := failsPath()
	if err != nil {
		return nil, fmt.Errorf("load fails: %w", err)
	}

	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("load fails: %w", err)
	}

	keys := strings.Split(string(b), "\n")
	keys = slices.DeleteFunc(keys, func(s string) bool {
		return len(strings.TrimSpace(s)) == 0
	})

	slices.Sort(keys)
	return slices.Compact(keys), nil
}

// replace the FAILS keyword in the list of keys with the keys of the entries
// that failed last time
func addFailsToKeys(keys []string) ([]string, error) {
	n := slices.IndexFunc(keys, func(s string) bool {
		return strings.ToUpper(s) == failsKeyword
	})
	if n < 0 {
		return keys, nil
	}

	keys = slices.Delete(keys, n, n+1)

	prevFails, err := loadFails()
	if err != nil {
		return keys, err
	}

	if len(prevFails) == 0 {
		return keys, errNoPreviousFails
	}

	keys = append(keys, prevFails...)
	slices.Sort(keys)
	return slices.Compact(keys), nil
}
