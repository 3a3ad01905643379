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

// Package archivefs allows files inside zip archives to be addressed as though
// the archive was a directory. For example:
//
//	song.zip/song.cdg
//
// Karaoke tracks are commonly distributed as a zip archive containing the CD+G
// stream and the audio track. The Open() function works equally well with a
// plain file or with a file inside an archive.
package archivefs
