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

package curated_test

import (
	"errors"
	"io"
	"testing"

	"github.com/cdgplay/cdgplay/curated"
	"github.com/cdgplay/cdgplay/test"
)

const testError = "test error: %s"
const testErrorB = "test error B: %s"

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")

	// packages will often wrap errors with the same prefix. duplicate adjacent
	// parts are removed
	f := curated.Errorf("test error: %v", e)
	test.ExpectEquality(t, f.Error(), "test error: foo")

	g := curated.Errorf("loader: %v", curated.Errorf("loader: %v", "file not found"))
	test.ExpectEquality(t, g.Error(), "loader: file not found")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectSuccess(t, curated.Is(e, testError))
	test.ExpectFailure(t, curated.Is(e, testErrorB))

	// Has() looks through the chain. Is() does not
	f := curated.Errorf(testErrorB, e)
	test.ExpectFailure(t, curated.Is(f, testError))
	test.ExpectSuccess(t, curated.Has(f, testError))
	test.ExpectSuccess(t, curated.Has(f, testErrorB))

	// plain errors are never curated
	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.Has(errors.New("plain"), testError))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf("stream: %v", io.ErrUnexpectedEOF)
	test.ExpectSuccess(t, errors.Is(e, io.ErrUnexpectedEOF))
	test.ExpectFailure(t, errors.Is(e, io.EOF))
}
