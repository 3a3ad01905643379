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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectInequality() functions are the most useful
// of these. They compare any two comparable values of the same type and report
// a test error if the expectation is not met.
//
// The ExpectSuccess() and ExpectFailure() functions test for "success" or
// "failure" values. A success value is a boolean true or a nil error. A failure
// value is a boolean false or a non-nil error.
//
// The Demand*() variants of the functions are the same except that they end
// the test immediately with t.Fatalf() rather than continuing.
//
// The optional tags arguments are printed at the start of any failure message.
// This is useful for identifying which iteration of a loop has failed.
package test
