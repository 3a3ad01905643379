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

// Package regression facilitates the regression testing of the CD+G decoder
// and seek engine. By adding test results to a database, the tests can be
// rerun automatically and checked for consistency.
//
// A regression entry names a stream and a list of checkpoints. When the entry
// is run, the stream is seeked to every checkpoint in order and then to every
// checkpoint in reverse order. The picture at every checkpoint is added to a
// chained screen digest (see the digest package). The final digest must match
// the digest recorded when the entry was added.
//
// Visiting the checkpoints in reverse order exercises the backwards seek, so
// a change to keyframe handling will be noticed even if forward decoding is
// unaffected.
//
// The keys of failed entries are remembered between runs. Running with the
// key "FAILS" reruns the entries that failed last time.
package regression
