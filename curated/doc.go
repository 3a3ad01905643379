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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function. It is similar to the
// Errorf() function in the fmt package except that the first argument is
// called the pattern rather than the format. The pattern is kept with the
// error and can be tested for with the Is() and Has() functions.
//
// Packages that return errors their callers will want to test for should
// export the pattern as a constant. For example, from the cdg package:
//
//	const UnseekableSource = "cdg: source cannot seek backwards"
//
//	...
//
//	if curated.Is(err, cdg.UnseekableSource) {
//		...
//	}
//
// The Has() function checks the entire chain of curated errors. In other
// words, it looks for the pattern in the error and in any curated errors
// used as values for the error.
//
// The Error() function normalises the message by removing duplicate adjacent
// parts. So an error with the message
//
//	"loader: loader: file not found"
//
// is reported as
//
//	"loader: file not found"
//
// Any error value supplied to Errorf() is available to errors.Unwrap(). The
// first error value in the list of values is the one returned.
package curated
