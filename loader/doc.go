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

// Package loader is used to specify and load the CD+G stream that is to be
// played.
//
// The Load() function handles loading of data from different sources.
// Currently local files and data over HTTP are supported.
//
// The simplest instance of the Loader type:
//
//	ld := loader.Loader{
//		Filename: "songs/song.cdg",
//	}
//
// It is preferred however that the NewLoader() function is used. The
// NewLoader() function will look for the audio track that accompanies the
// stream.
//
// A CD+G stream is always accompanied by an audio track in a separate file.
// The audio file has the same name as the stream but with one of the
// extensions listed in AudioExtensions.
//
// The filename can also be a zip archive, in which case the first file in the
// archive with an extension listed in FileExtensions is loaded and the audio
// track is looked for inside the same archive. A file inside an archive can be
// named directly:
//
//	ld := loader.NewLoader("songs/song.zip/song.cdg")
package loader
