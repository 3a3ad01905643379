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

package database

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/cdgplay/cdgplay/curated"
	"gopkg.in/yaml.v3"
)

// arbitrary maximum number of entries.
const maxEntries = 1000

// Sentinel error patterns.
const (
	NotAvailable   = "database: key not available (%d)"
	ReadOnly       = "database: session is read only"
	NoSuchFile     = "database: file does not exist (%s)"
	SelectEmpty    = "database: select empty"
	TooManyEntries = "database: maximum entries exceeded (max %d)"
)

// Activity is used to specify the type of activity that will be performed
// during the database session.
type Activity int

// List of valid Activity values.
const (
	ActivityReading Activity = iota
	ActivityModifying
	ActivityCreating
)

// Session keeps track of a database session.
type Session[E any] struct {
	path     string
	activity Activity
	entries  map[int]E
}

// the layout of the database file
type file[E any] struct {
	Entries map[int]E `yaml:"entries"`
}

// StartSession starts/initialises a new DB session. The database file will be
// created if the activity is ActivityCreating and the file does not exist.
func StartSession[E any](path string, activity Activity) (*Session[E], error) {
	db := &Session[E]{
		path:     path,
		activity: activity,
		entries:  make(map[int]E),
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf("database: %v", err)
		}
		if activity != ActivityCreating {
			return nil, curated.Errorf(NoSuchFile, path)
		}
		return db, nil
	}

	var f file[E]
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, curated.Errorf("database: %v", err)
	}
	if f.Entries != nil {
		db.entries = f.Entries
	}

	return db, nil
}

// EndSession closes the session. If commit is true and the activity allows it
// then the entries are written to disk.
func (db *Session[E]) EndSession(commit bool) error {
	if !commit || db.activity == ActivityReading {
		return nil
	}

	b, err := yaml.Marshal(file[E]{Entries: db.entries})
	if err != nil {
		return curated.Errorf("database: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(db.path), 0o755); err != nil {
		return curated.Errorf("database: %v", err)
	}

	if err := os.WriteFile(db.path, b, 0o644); err != nil {
		return curated.Errorf("database: %v", err)
	}

	return nil
}

// NumEntries returns the number of entries in the database.
func (db *Session[E]) NumEntries() int {
	return len(db.entries)
}

// SortedKeyList returns a sorted list of database keys.
func (db *Session[E]) SortedKeyList() []int {
	keyList := make([]int, 0, len(db.entries))
	for k := range db.entries {
		keyList = append(keyList, k)
	}
	slices.Sort(keyList)
	return keyList
}

// List the entries in key order.
func (db *Session[E]) List(output io.Writer) error {
	if db.NumEntries() == 0 {
		_, err := io.WriteString(output, "database is empty\n")
		return err
	}

	for _, key := range db.SortedKeyList() {
		if _, err := fmt.Fprintf(output, "%03d %v\n", key, db.entries[key]); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(output, "Total: %d\n", db.NumEntries())
	return err
}

// Add an entry to the db. Returns the key of the new entry.
func (db *Session[E]) Add(ent E) (int, error) {
	if db.activity == ActivityReading {
		return 0, curated.Errorf(ReadOnly)
	}

	var key int

	// find spare key
	for key = 0; key < maxEntries; key++ {
		if _, ok := db.entries[key]; !ok {
			break
		}
	}

	if key == maxEntries {
		return 0, curated.Errorf(TooManyEntries, maxEntries)
	}

	db.entries[key] = ent

	return key, nil
}

// Get the entry with the specified key.
func (db *Session[E]) Get(key int) (E, error) {
	ent, ok := db.entries[key]
	if !ok {
		return ent, curated.Errorf(NotAvailable, key)
	}
	return ent, nil
}

// Update replaces the entry with the specified key.
func (db *Session[E]) Update(key int, ent E) error {
	if db.activity == ActivityReading {
		return curated.Errorf(ReadOnly)
	}
	if _, ok := db.entries[key]; !ok {
		return curated.Errorf(NotAvailable, key)
	}
	db.entries[key] = ent
	return nil
}

// Delete deletes an entry with the specified key.
func (db *Session[E]) Delete(key int) error {
	if db.activity == ActivityReading {
		return curated.Errorf(ReadOnly)
	}
	if _, ok := db.entries[key]; !ok {
		return curated.Errorf(NotAvailable, key)
	}
	delete(db.entries, key)
	return nil
}
