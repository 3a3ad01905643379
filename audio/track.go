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

package audio

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/cdgplay/cdgplay/archivefs"
	"github.com/cdgplay/cdgplay/curated"
	"github.com/cdgplay/cdgplay/logger"
)

// Error patterns returned by Probe().
const (
	UnsupportedTrack = "audio: unsupported file type (%s)"
	InvalidTrack     = "audio: %s: not a valid %s file"
)

const logTag = "audio"

// Track describes an audio file.
type Track struct {
	Filename string
	Duration time.Duration

	// number of channels and sample rate of the audio data. for mp3 files the
	// number of channels is always two
	Format *audio.Format
}

func (trk Track) String() string {
	if trk.Format == nil {
		return filepath.Base(trk.Filename)
	}
	return strings.Join([]string{
		filepath.Base(trk.Filename),
		trk.Duration.Round(time.Millisecond).String(),
		formatString(trk.Format),
	}, " ")
}

func formatString(f *audio.Format) string {
	ch := "stereo"
	if f.NumChannels == 1 {
		ch = "mono"
	}
	return fmt.Sprintf("%s %dHz", ch, f.SampleRate)
}

// Probe opens the audio file and reads its duration and format. Supported
// files are mp3 and wav.
func Probe(filename string) (Track, error) {
	trk := Track{
		Filename: filename,
	}

	f, _, err := archivefs.Open(filename)
	if err != nil {
		return trk, curated.Errorf("audio: %v", err)
	}

	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".wav":
		dec := wav.NewDecoder(f)
		if !dec.IsValidFile() {
			return trk, curated.Errorf(InvalidTrack, filepath.Base(filename), "wav")
		}

		trk.Duration, err = dec.Duration()
		if err != nil {
			return trk, curated.Errorf("audio: wav: %v", err)
		}

		trk.Format = dec.Format()

	case ".mp3":
		dec, err := mp3.NewDecoder(f)
		if err != nil {
			return trk, curated.Errorf(InvalidTrack, filepath.Base(filename), "mp3")
		}

		// the decoded stream is always 16bit stereo. four bytes per sample
		const bytesPerSample = 4

		n := dec.Length()
		if n <= 0 || dec.SampleRate() == 0 {
			return trk, curated.Errorf(InvalidTrack, filepath.Base(filename), "mp3")
		}

		trk.Format = &audio.Format{
			NumChannels: 2,
			SampleRate:  dec.SampleRate(),
		}
		trk.Duration = time.Duration(n/bytesPerSample) * time.Second / time.Duration(dec.SampleRate())

	default:
		return trk, curated.Errorf(UnsupportedTrack, ext)
	}

	logger.Logf(logger.Allow, logTag, "%s: %s", filepath.Base(filename), trk.Duration.Round(time.Millisecond))

	return trk, nil
}
