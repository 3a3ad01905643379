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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/cdgplay/cdgplay/curated"
	"github.com/cdgplay/cdgplay/prefs"
	"github.com/cdgplay/cdgplay/test"
)

func tmpPrefsFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
}

func cmpPrefsFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := tmpPrefsFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(10))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestString(t *testing.T) {
	fn := tmpPrefsFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "foo :: bar\n")
}

func TestInt(t *testing.T) {
	fn := tmpPrefsFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "number :: 10\nnumberB :: 99\n")

	err = v.Set("---")
	test.ExpectSuccess(t, curated.Is(err, prefs.CannotConvert))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get(), prefs.Value(10))

	v.SetRange(1, 60)
	test.ExpectSuccess(t, v.Set(60))
	err = v.Set(61)
	test.ExpectSuccess(t, curated.Is(err, prefs.InvalidValue))
	test.ExpectFailure(t, v.Set(0))
	test.ExpectEquality(t, v.String(), "60")
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	test.ExpectEquality(t, v.String(), "0.000")
	test.ExpectSuccess(t, v.Set("1.5"))
	test.ExpectEquality(t, v.Get(), prefs.Value(1.5))
	test.ExpectSuccess(t, v.Set(2))
	test.ExpectEquality(t, v.String(), "2.000")
	test.ExpectFailure(t, v.Set("x"))
}

func TestGeneric(t *testing.T) {
	fn := tmpPrefsFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var w, h int

	v := prefs.NewGeneric(
		func(s string) error {
			_, err := fmt.Sscanf(s, "%d,%d", &w, &h)
			return err
		},
		func() string {
			return fmt.Sprintf("%d,%d", w, h)
		},
	)
	test.ExpectSuccess(t, dsk.Add("generic", v))

	w = 1
	h = 2
	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "generic :: 1,2\n")

	w = 0
	h = 0
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, w, 1)
	test.ExpectEquality(t, h, 2)
}

// write bool and then a string from a different prefs.Disk instance. tests
// that the second writing doesn't clobber the results of the first write
func TestBoolAndString(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	cmpPrefsFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("123456789"))
	test.ExpectEquality(t, s.String(), "123456789")

	// setting maximum length will crop the existing string
	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// unsetting a maximum length will not result in cropped string
	// information reappearing
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("abcdefghi"))
	test.ExpectEquality(t, s.String(), "abc")
}

func TestLoad(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var fps prefs.Int
	var scale prefs.Int
	test.ExpectSuccess(t, dsk.Add("player.fps", &fps))
	test.ExpectSuccess(t, dsk.Add("player.scale", &scale))
	test.ExpectSuccess(t, fps.Set(30))
	test.ExpectSuccess(t, scale.Set(4))

	// the file does not exist so the current values are saved
	test.DemandSuccess(t, dsk.Load(true))
	cmpPrefsFile(t, fn, "player.fps :: 30\nplayer.scale :: 4\n")

	test.ExpectSuccess(t, fps.Set(10))
	test.ExpectSuccess(t, scale.Set(1))
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, fps.Get(), prefs.Value(30))
	test.ExpectEquality(t, scale.Get(), prefs.Value(4))

	// command line values take precedence over the file
	prefs.PushCommandLineStack("player.fps::60; unknown::1")
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, fps.Get(), prefs.Value(60))
	test.ExpectEquality(t, scale.Get(), prefs.Value(4))
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unknown::1")

	// a file without the boilerplate is rejected
	test.DemandSuccess(t, os.WriteFile(fn, []byte("player.fps :: 10\n"), 0o600))
	err = dsk.Load(false)
	test.ExpectSuccess(t, curated.Has(err, prefs.NotAPrefs))
	test.ExpectEquality(t, fps.Get(), prefs.Value(60))
}

func TestKeys(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefsFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("a.b", &v))
	test.ExpectSuccess(t, curated.Is(dsk.Add("a.b", &v), prefs.DuplicateKey))
	test.ExpectSuccess(t, curated.Is(dsk.Add("a b", &v), prefs.InvalidKey))
	test.ExpectSuccess(t, curated.Is(dsk.Add("a::b", &v), prefs.InvalidKey))
	test.ExpectSuccess(t, curated.Is(dsk.Add("", &v), prefs.InvalidKey))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, dsk.String(), "a.b :: true\n")
	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, dsk.String(), "a.b :: false\n")
}
