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

// Package digest is used to create sha1 digests of the decoded CD+G picture.
// Digests are useful for regression testing and for checking that two
// decoding paths, for example a linear decode and a seek, arrive at the same
// result.
//
// The Screen type produces a chained digest. Each call to Update() mixes the
// previous digest value into the next one. The final value therefore depends
// on every picture that has been seen and on the order in which they were
// seen.
package digest
