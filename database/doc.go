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

// Package database is a very simple way of storing entries of a single type in
// a YAML file. It is as simple as simple can be but is still useful in helping
// to organise what is essentially a flat file.
//
// Use of a database requires starting a "session". We do this with the
// StartSession() function, coupled with an EndSession() once we're done. For
// example (error handling removed for clarity):
//
//	db, _ := database.StartSession[fooEntry](dbPath, database.ActivityCreating)
//	defer db.EndSession(true)
//
// The first argument is the path to the database file on the local disk. The
// second argument is a description of the type of activity that will be
// happening during the session. In this instance, we are saying that the
// database will be created if it does not already exist. If the database
// already exists ActivityCreating is treated the same as ActivityModifying. If
// we don't want to modify the database at all, then we can use
// ActivityReading.
//
// The entry type is encoded and decoded with gopkg.in/yaml.v3 so the usual
// yaml field tags apply. Every entry is stored under a numeric key. Keys are
// allocated by the Add() function and are never reused while the entry exists.
//
// Once a database session has successfully initialised, entries can be added,
// removed and selected/listed; activity type permitted.
package database
