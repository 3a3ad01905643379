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

package loader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/cdgplay/cdgplay/archivefs"
	"github.com/cdgplay/cdgplay/cdg"
	"github.com/cdgplay/cdgplay/curated"
	"github.com/cdgplay/cdgplay/logger"
)

// Error patterns returned by Load().
const (
	UnexpectedHash    = "loader: unexpected hash value"
	EmptyStream       = "loader: no packets in stream"
	UnsupportedScheme = "loader: unsupported URL scheme (%s)"
)

const logTag = "loader"

// Loader is used to specify the CD+G stream to load.
type Loader struct {
	// filename of stream to load. can be a http or https URL
	Filename string

	// expected hash of the loaded stream. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload the
	// data
	Data []byte

	// the audio track that accompanies the stream. empty string if no audio
	// file has been found. audio is only looked for alongside local files
	Audio string
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The Audio field is set to the first file found with the same name as the
// stream and an extension listed in AudioExtensions.
func NewLoader(filename string) Loader {
	ld := Loader{
		Filename: filename,
	}

	if !isURL(filename) {
		ld.Audio = findAudio(filename)
	}

	return ld
}

// FileExtensions is the list of file extensions that are recognised as CD+G
// streams.
var FileExtensions = [...]string{".CDG"}

// AudioExtensions is the list of file extensions for the audio track that
// accompanies a stream, in order of preference.
var AudioExtensions = [...]string{".MP3", ".WAV"}

// IsStream returns true if the filename has an extension in FileExtensions.
func IsStream(filename string) bool {
	ext := strings.ToUpper(path.Ext(filename))
	for _, e := range FileExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// looks for the audio file in the same directory as the stream. both the
// upper and lower case versions of each extension are tried. if the filename
// is an archive then the audio file is looked for inside the archive
func findAudio(filename string) string {
	if archivefs.IsArchive(filename) {
		fn, err := archivefs.Find(filename, AudioExtensions[:]...)
		if err != nil {
			return ""
		}
		return fn
	}

	var afs archivefs.Path
	defer afs.Close()

	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	for _, ext := range AudioExtensions {
		for _, e := range []string{strings.ToLower(ext), ext} {
			fn := base + e
			if err := afs.Set(fn); err == nil && !afs.IsDir() {
				return fn
			}
		}
	}
	return ""
}

func isURL(filename string) bool {
	u, err := url.Parse(filename)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// ShortName returns a shortened version of the Loader filename.
func (ld Loader) ShortName() string {
	shortName := path.Base(ld.Filename)
	shortName = strings.TrimSuffix(shortName, path.Ext(ld.Filename))
	return shortName
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// HasAudio returns true if an audio track has been found for the stream.
func (ld Loader) HasAudio() bool {
	return ld.Audio != ""
}

// Packets returns the number of complete packets in the loaded data.
func (ld Loader) Packets() int {
	return len(ld.Data) / cdg.PacketSize
}

// Load the stream data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
//
// Any bytes after the last complete packet are kept in the Data field but are
// never decoded. The trailing bytes are noted in the log.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(ld.Filename)
	if err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	// windows drive letters are parsed as a URL scheme
	if len(scheme) == 1 {
		scheme = "file"
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf("loader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("loader: %v", resp.Status)
		}

		ld.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("loader: %v", err)
		}

	case "file":
		fn := ld.Filename
		if archivefs.IsArchive(fn) {
			fn, err = archivefs.Find(fn, FileExtensions[:]...)
			if err != nil {
				return curated.Errorf("loader: %v", err)
			}
		}

		r, _, err := archivefs.Open(fn)
		if err != nil {
			return curated.Errorf("loader: %v", err)
		}

		ld.Data, err = io.ReadAll(r)
		if err != nil {
			return curated.Errorf("loader: %v", err)
		}

	default:
		return curated.Errorf(UnsupportedScheme, scheme)
	}

	if ld.Packets() == 0 {
		ld.Data = nil
		return curated.Errorf(EmptyStream)
	}

	if r := len(ld.Data) % cdg.PacketSize; r != 0 {
		logger.Logf(logger.Allow, logTag, "%s: ignoring %d trailing bytes", ld.ShortName(), r)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))

	if ld.Hash != "" && ld.Hash != hash {
		ld.Data = nil
		return curated.Errorf(UnexpectedHash)
	}

	ld.Hash = hash

	return nil
}

// Source returns a cdg.BufferSource for the loaded data. Load() must have
// been called successfully beforehand.
func (ld Loader) Source() *cdg.BufferSource {
	return cdg.NewBufferSource(ld.Data)
}
