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

package regression

import (
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/cdgplay/cdgplay/cdg"
	"github.com/cdgplay/cdgplay/curated"
	"github.com/cdgplay/cdgplay/digest"
	"github.com/cdgplay/cdgplay/loader"
)

// the number of checkpoints used when none are specified
const defaultCheckpoints = 20

// Entry is a single regression test.
type Entry struct {
	// the stream being tested
	File string `yaml:"file"`

	// sha1 of the stream data. the test will fail with an error if the stream
	// has changed since the entry was added
	Hash string `yaml:"hash"`

	// positions in milliseconds
	Checkpoints []int `yaml:"checkpoints"`

	// chained screen digest of every checkpoint
	Digest string `yaml:"digest"`

	// the time the entry was added
	Added time.Time `yaml:"added"`

	// optional notes about the entry
	Notes string `yaml:"notes,omitempty"`
}

// NewEntry is the preferred method of initialisation for the Entry type. If
// the list of checkpoints is empty then a list of checkpoints spread evenly
// over the stream will be created when the entry is added to the database.
func NewEntry(filename string, checkpoints ...int) *Entry {
	return &Entry{
		File:        filename,
		Checkpoints: checkpoints,
	}
}

func (ent Entry) String() string {
	s := fmt.Sprintf("%s [%d checkpoints]", filepath.Base(ent.File), len(ent.Checkpoints))
	if ent.Notes != "" {
		s = fmt.Sprintf("%s (%s)", s, ent.Notes)
	}
	return s
}

// checkpoints spread evenly over the duration of the stream
func spreadCheckpoints(packets int) []int {
	ms := cdg.PacketsToMillis(packets)
	cps := make([]int, 0, defaultCheckpoints)
	for i := 1; i <= defaultCheckpoints; i++ {
		cps = append(cps, ms*i/defaultCheckpoints)
	}
	return slices.Compact(cps)
}

// regress runs the test. If newEntry is true then the digest is recorded in
// the entry and the test always succeeds.
func (ent *Entry) regress(newEntry bool) (bool, error) {
	ld := loader.NewLoader(ent.File)
	if !newEntry {
		ld.Hash = ent.Hash
	}

	if err := ld.Load(); err != nil {
		return false, curated.Errorf("regression: %v", err)
	}

	sess, err := cdg.NewSession(ld.Source())
	if err != nil {
		return false, curated.Errorf("regression: %v", err)
	}
	sess.SetQuiet(true)

	if newEntry {
		ent.Hash = ld.Hash
		if len(ent.Checkpoints) == 0 {
			ent.Checkpoints = spreadCheckpoints(ld.Packets())
		}
	}

	if len(ent.Checkpoints) == 0 {
		return false, curated.Errorf("regression: no checkpoints")
	}

	dig := digest.NewScreen()

	visit := func(ms int) error {
		if _, err := sess.SeekToMillis(ms); err != nil {
			return curated.Errorf("regression: %v", err)
		}
		dig.Update(sess.State())
		return nil
	}

	for _, ms := range ent.Checkpoints {
		if err := visit(ms); err != nil {
			return false, err
		}
	}
	for i := len(ent.Checkpoints) - 1; i >= 0; i-- {
		if err := visit(ent.Checkpoints[i]); err != nil {
			return false, err
		}
	}

	if newEntry {
		ent.Digest = dig.Hash()
		ent.Added = time.Now()
		return true, nil
	}

	return dig.Hash() == ent.Digest, nil
}
