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

package regression_test

import (
	"os"
	"strings"
	"testing"

	"github.com/cdgplay/cdgplay/curated"
	"github.com/cdgplay/cdgplay/regression"
	"github.com/cdgplay/cdgplay/test"
)

func TestRegression(t *testing.T) {
	t.Chdir(t.TempDir())

	test.DemandSuccess(t, os.WriteFile("a.cdg", test.RandomStream(10, 3000), 0o644))
	test.DemandSuccess(t, os.WriteFile("b.cdg", test.RandomStream(11, 3000), 0o644))

	var s strings.Builder
	test.DemandSuccess(t, regression.RegressList(&s))
	test.ExpectEquality(t, s.String(), "database is empty\n")

	s.Reset()
	test.DemandSuccess(t, regression.RegressAdd(&s, regression.NewEntry("a.cdg")))
	test.ExpectSuccess(t, strings.Contains(s.String(), "added: 000 a.cdg [20 checkpoints]"))

	s.Reset()
	test.DemandSuccess(t, regression.RegressAdd(&s, regression.NewEntry("b.cdg", 5000, 100, 2500)))
	test.ExpectSuccess(t, strings.Contains(s.String(), "added: 001 b.cdg [3 checkpoints]"))

	// adding a missing file is an error
	s.Reset()
	test.ExpectFailure(t, regression.RegressAdd(&s, regression.NewEntry("c.cdg")))

	s.Reset()
	test.DemandSuccess(t, regression.RegressList(&s))
	test.ExpectSuccess(t, strings.Contains(s.String(), "Total: 2"))

	s.Reset()
	n, err := regression.RegressRun(&s, false, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, 0)
	test.ExpectSuccess(t, strings.Contains(s.String(), "2 succeed, 0 fail"))

	// no previous fails
	s.Reset()
	n, err = regression.RegressRun(&s, false, []string{"FAILS"})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, 0)
	test.ExpectSuccess(t, strings.Contains(s.String(), "no previous fails"))

	// changing the stream causes an error
	test.DemandSuccess(t, os.WriteFile("b.cdg", test.RandomStream(12, 3000), 0o644))

	s.Reset()
	n, err = regression.RegressRun(&s, true, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, 1)
	test.ExpectSuccess(t, strings.Contains(s.String(), "ERROR: 001"))

	// run just the failed entry
	s.Reset()
	n, err = regression.RegressRun(&s, false, []string{"fails"})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, 1)
	test.ExpectSuccess(t, strings.Contains(s.String(), "0 succeed, 0 fail [1 with errors]"))

	s.Reset()
	_, err = regression.RegressRun(&s, false, []string{"x"})
	test.ExpectSuccess(t, curated.Is(err, regression.InvalidKey))

	// deletion is not confirmed
	s.Reset()
	test.DemandSuccess(t, regression.RegressDelete(&s, strings.NewReader("n\n"), "1"))
	s.Reset()
	test.DemandSuccess(t, regression.RegressList(&s))
	test.ExpectSuccess(t, strings.Contains(s.String(), "Total: 2"))

	s.Reset()
	test.DemandSuccess(t, regression.RegressDelete(&s, strings.NewReader("y\n"), "1"))
	test.ExpectSuccess(t, strings.Contains(s.String(), "deleted test #1"))

	s.Reset()
	n, err = regression.RegressRun(&s, false, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, 0)
	test.ExpectSuccess(t, strings.Contains(s.String(), "1 succeed, 0 fail"))
}
