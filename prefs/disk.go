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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/cdgplay/cdgplay/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is written to the head of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the separator between the key and value in the preferences file
const keySep = " :: "

// Error patterns returned by the Disk type.
const (
	InvalidKey   = "prefs: invalid key (%s)"
	DuplicateKey = "prefs: duplicate key (%s)"
	NotAPrefs    = "prefs: %s is not a preferences file"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:    path,
		entries: make(map[string]pref),
	}
	return dsk, nil
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the value in the file and cannot contain spaces
// or the separator sequence.
func (dsk *Disk) Add(key string, p pref) error {
	if key == "" || strings.ContainsAny(key, " \t\n") || strings.Contains(key, strings.TrimSpace(keySep)) {
		return curated.Errorf(InvalidKey, key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Reset all preference values to their zero value.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}
	return nil
}

// read the key/value pairs from the preferences file. returns an error
// satisfying errors.Is(err, fs.ErrNotExist) if the file does not exist
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// check validity of file by checking the first line
	scanner.Scan()
	if scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(NotAPrefs, dsk.path)
	}

	values := make(map[string]string)
	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), keySep)
		if !ok {
			continue
		}
		values[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return values, nil
}

// Save current preference values to disk. Values in the file that are not
// known to this Disk are preserved.
func (dsk *Disk) Save() error {
	values, err := dsk.read()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return curated.Errorf("prefs: %v", err)
		}
		values = make(map[string]string)
	}

	for k, p := range dsk.entries {
		values[k] = p.String()
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, values[k]))
	}

	err = os.WriteFile(dsk.path, []byte(s.String()), 0o600)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk. The saveOnFail flag will cause the
// default values to be saved to disk if the preferences file does not exist.
//
// Values on the command line stack take precedence over values in the file.
func (dsk *Disk) Load(saveOnFail bool) error {
	values, err := dsk.read()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return curated.Errorf("prefs: %v", err)
		}
		if saveOnFail {
			if err := dsk.Save(); err != nil {
				return err
			}
		}
		values = make(map[string]string)
	}

	for _, k := range dsk.keys() {
		v, inFile := values[k]
		if ok, cv := GetCommandLinePref(k); ok {
			v = fmt.Sprintf("%v", cv)
		} else if !inFile {
			continue
		}

		if err := dsk.entries[k].Set(v); err != nil {
			return curated.Errorf("prefs: %s: %v", k, err)
		}
	}

	return nil
}
