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

package loader_test

import (
	"archive/zip"
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/cdgplay/cdgplay/cdg"
	"github.com/cdgplay/cdgplay/curated"
	"github.com/cdgplay/cdgplay/loader"
	"github.com/cdgplay/cdgplay/test"
)

func stream() []byte {
	return cdg.Encode(
		cdg.MemoryPresetData{Color: 1}.Packet(),
		cdg.BorderPresetData{Color: 2}.Packet(),
	)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "song.cdg")

	data := append(stream(), 0x01, 0x02)
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))

	ld := loader.NewLoader(fn)
	test.ExpectFailure(t, ld.HasAudio())
	test.ExpectFailure(t, ld.HasLoaded())
	test.ExpectEquality(t, ld.ShortName(), "song")

	test.DemandSuccess(t, ld.Load())
	test.ExpectSuccess(t, ld.HasLoaded())
	test.ExpectEquality(t, ld.Packets(), 2)
	test.ExpectEquality(t, ld.Hash, fmt.Sprintf("%x", sha1.Sum(data)))
	test.ExpectEquality(t, ld.Source().Len(), 2)

	// the expected hash must match
	ld = loader.NewLoader(fn)
	ld.Hash = "0000"
	err := ld.Load()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, loader.UnexpectedHash))
	test.ExpectFailure(t, ld.HasLoaded())
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	ld := loader.NewLoader(filepath.Join(dir, "missing.cdg"))
	test.ExpectFailure(t, ld.Load())

	fn := filepath.Join(dir, "short.cdg")
	test.DemandSuccess(t, os.WriteFile(fn, make([]byte, cdg.PacketSize-1), 0o644))
	ld = loader.NewLoader(fn)
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, loader.EmptyStream))

	ld = loader.NewLoader("ftp://example.com/song.cdg")
	err = ld.Load()
	test.ExpectSuccess(t, curated.Is(err, loader.UnsupportedScheme))
}

func TestCompanionAudio(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "song.cdg")
	test.DemandSuccess(t, os.WriteFile(fn, stream(), 0o644))

	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "song.wav"), nil, 0o644))
	ld := loader.NewLoader(fn)
	test.ExpectEquality(t, ld.Audio, filepath.Join(dir, "song.wav"))

	// mp3 is preferred over wav
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "song.MP3"), nil, 0o644))
	ld = loader.NewLoader(fn)
	test.ExpectEquality(t, ld.Audio, filepath.Join(dir, "song.MP3"))

	test.ExpectSuccess(t, loader.IsStream(fn))
	test.ExpectSuccess(t, loader.IsStream("SONG.CDG"))
	test.ExpectFailure(t, loader.IsStream("song.mp3"))
}

func TestLoadHTTP(t *testing.T) {
	data := stream()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/song.cdg" {
			http.NotFound(w, r)
			return
		}
		w.Write(data)
	}))
	defer srv.Close()

	ld := loader.NewLoader(srv.URL + "/song.cdg")
	test.ExpectFailure(t, ld.HasAudio())
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, string(ld.Data), string(data))

	ld = loader.NewLoader(srv.URL + "/missing.cdg")
	test.ExpectFailure(t, ld.Load())
}

func TestLoadArchive(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "song.zip")

	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	zw := zip.NewWriter(f)
	for name, data := range map[string][]byte{
		"readme.txt": []byte("readme"),
		"song.mp3":   nil,
		"song.CDG":   stream(),
	} {
		w, err := zw.Create(name)
		test.DemandSuccess(t, err)
		_, err = w.Write(data)
		test.DemandSuccess(t, err)
	}
	test.DemandSuccess(t, zw.Close())
	test.DemandSuccess(t, f.Close())

	ld := loader.NewLoader(fn)
	test.ExpectEquality(t, ld.Audio, filepath.Join(fn, "song.mp3"))
	test.ExpectEquality(t, ld.ShortName(), "song")
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, ld.Packets(), 2)

	// naming the stream inside the archive
	ld = loader.NewLoader(filepath.Join(fn, "song.CDG"))
	test.ExpectEquality(t, ld.Audio, filepath.Join(fn, "song.mp3"))
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, ld.Packets(), 2)
}
