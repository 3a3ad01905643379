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
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/cdgplay/cdgplay/curated"
	"github.com/cdgplay/cdgplay/database"
	"github.com/cdgplay/cdgplay/logger"
	"github.com/cdgplay/cdgplay/paths"
)

// the location of regression files relative to the resource path
const (
	regressionPath   = "regression"
	regressionDBFile = "regressionDB.yaml"
	failsFile        = "fails"
)

// line clearing sequence for terminals
const clearLine = "\033[2K\r"

// InvalidKey is returned when a key that is not a number is supplied.
const InvalidKey = "regression: invalid key (%s)"

func startSession(activity database.Activity) (*database.Session[*Entry], error) {
	dbPth, err := paths.ResourcePath(regressionPath, regressionDBFile)
	if err != nil {
		return nil, curated.Errorf("regression: %v", err)
	}
	return database.StartSession[*Entry](dbPth, activity)
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer) error {
	db, err := startSession(database.ActivityReading)
	if err != nil {
		if curated.Is(err, database.NoSuchFile) {
			_, err = io.WriteString(output, "database is empty\n")
		}
		return err
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressAdd runs the entry for the first time and adds it to the database.
func RegressAdd(output io.Writer, ent *Entry) error {
	db, err := startSession(database.ActivityCreating)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "adding: %s", ent)

	if _, err := ent.regress(true); err != nil {
		fmt.Fprint(output, "\n")
		return err
	}

	key, err := db.Add(ent)
	if err != nil {
		fmt.Fprint(output, "\n")
		return err
	}

	fmt.Fprintf(output, "%sadded: %03d %s\n", clearLine, key, ent)
	logger.Logf(logger.Allow, "regression", "added %s with key %03d", ent.File, key)

	return db.EndSession(true)
}

// RegressDelete removes an entry from the database. The user is asked to
// confirm the deletion by reading from the confirmation reader.
func RegressDelete(output io.Writer, confirmation io.Reader, key string) error {
	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf(InvalidKey, key)
	}

	db, err := startSession(database.ActivityModifying)
	if err != nil {
		return err
	}

	ent, err := db.Get(v)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s\ndelete? (y/n): ", ent)

	confirm, err := bufio.NewReader(confirmation).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return curated.Errorf("regression: %v", err)
	}

	confirm = strings.TrimSpace(confirm)
	if confirm != "y" && confirm != "Y" {
		return nil
	}

	if err := db.Delete(v); err != nil {
		return err
	}

	fmt.Fprintf(output, "deleted test #%s from regression database\n", key)

	return db.EndSession(true)
}

// RegressRun runs the entries in the database. If the list of keys is empty
// then every entry is run. The keyword FAILS in the list of keys selects the
// entries that failed during the previous run.
//
// Returns the number of entries that failed or ended with an error.
func RegressRun(output io.Writer, verbose bool, keys []string) (int, error) {
	db, err := startSession(database.ActivityReading)
	if err != nil {
		return 0, err
	}
	defer db.EndSession(false)

	keys, err = addFailsToKeys(keys)
	if err != nil {
		if errors.Is(err, errNoPreviousFails) {
			fmt.Fprintln(output, "no previous fails")
			return 0, nil
		}
		return 0, err
	}

	keysV := make([]int, 0, len(keys))
	for _, k := range keys {
		v, err := strconv.Atoi(k)
		if err != nil {
			return 0, curated.Errorf(InvalidKey, k)
		}
		keysV = append(keysV, v)
	}
	slices.Sort(keysV)

	var numSucceed int
	var numFail int
	var numError int
	var fails []string

	onSelect := func(key int, ent *Entry) error {
		fmt.Fprintf(output, "running: %s", ent)

		ok, err := ent.regress(false)

		fmt.Fprint(output, clearLine)

		if err != nil {
			numError++
			fails = append(fails, strconv.Itoa(key))
			fmt.Fprintf(output, "  ERROR: %03d %s\n", key, ent)
			if verbose {
				fmt.Fprintf(output, "  %v\n", err)
			}
		} else if !ok {
			numFail++
			fails = append(fails, strconv.Itoa(key))
			fmt.Fprintf(output, "failure: %03d %s\n", key, ent)
		} else {
			numSucceed++
			fmt.Fprintf(output, "succeed: %03d %s\n", key, ent)
		}

		return nil
	}

	err = db.SelectKeys(onSelect, keysV...)
	if err != nil && !curated.Is(err, database.SelectEmpty) {
		return numFail + numError, err
	}

	fmt.Fprintf(output, "regression tests: %d succeed, %d fail", numSucceed, numFail)
	if numError > 0 {
		fmt.Fprintf(output, " [%d with errors]", numError)
	}
	fmt.Fprint(output, "\n")

	if err := saveFails(fails); err != nil {
		return numFail + numError, err
	}

	return numFail + numError, nil
}
