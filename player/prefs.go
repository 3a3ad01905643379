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

package player

import (
	"github.com/cdgplay/cdgplay/paths"
	"github.com/cdgplay/cdgplay/prefs"
)

// Preferences for the player.
type Preferences struct {
	dsk *prefs.Disk

	// the distance in milliseconds moved by a single seek command
	SeekStep prefs.Int

	// the number of updates per second
	FPS prefs.Int

	// the downscale factor for terminal output
	Scale prefs.Int

	// number of milliseconds added to the clock position. used to correct for
	// audio output latency
	SyncOffset prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The values are loaded from the global preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	p.FPS.SetRange(1, 120)
	p.Scale.SetRange(1, 16)
	p.SeekStep.SetRange(1, 600000)
	p.SetDefaults()

	for k, v := range map[string]*prefs.Int{
		"player.seekStep":   &p.SeekStep,
		"player.fps":        &p.FPS,
		"player.scale":      &p.Scale,
		"player.syncOffset": &p.SyncOffset,
	} {
		if err := p.dsk.Add(k, v); err != nil {
			return nil, err
		}
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// NewPreferencesFromFile is the same as NewPreferences() except that the
// values are loaded from the named file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	return newPreferences(pth)
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.SeekStep.Set(1000)
	_ = p.FPS.Set(30)
	_ = p.Scale.Set(4)
	_ = p.SyncOffset.Set(0)
}

// Load current player preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current player preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
