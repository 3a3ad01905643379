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

import "github.com/cdgplay/cdgplay/curated"

// SelectAll entries in the database in key order. onSelect can be nil.
//
// The select process stops at the first error returned by onSelect. The error
// is returned by SelectAll().
func (db *Session[E]) SelectAll(onSelect func(key int, ent E) error) error {
	return db.SelectKeys(onSelect)
}

// SelectKeys matches entries with the specified key(s). If list of keys is
// empty then all keys are matched. onSelect can be nil.
//
// The select process stops at the first error returned by onSelect. A key
// that is not in the database is also an error.
func (db *Session[E]) SelectKeys(onSelect func(key int, ent E) error, keys ...int) error {
	if onSelect == nil {
		onSelect = func(_ int, _ E) error { return nil }
	}

	keyList := keys
	if len(keys) == 0 {
		keyList = db.SortedKeyList()
		if len(keyList) == 0 {
			return curated.Errorf(SelectEmpty)
		}
	}

	for _, key := range keyList {
		ent, ok := db.entries[key]
		if !ok {
			return curated.Errorf(NotAvailable, key)
		}
		if err := onSelect(key, ent); err != nil {
			return err
		}
	}

	return nil
}
