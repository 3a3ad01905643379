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

// Package prefs facilitates the storage of preference values on disk.
//
// Preference values are added to a Disk instance under a key. The value must
// be of one of the types defined in this package: Bool, String, Int, Float or
// Generic.
//
//	dsk, err := prefs.NewDisk("preferences")
//	if err != nil {
//		return err
//	}
//
//	var fps prefs.Int
//	err = dsk.Add("player.fps", &fps)
//
// The Load() and Save() functions of the Disk type read and write every value
// in the Disk. The file format is one value per line, the key and the value
// separated by " :: ". Values in the file with keys that the Disk does not
// know about are preserved when the file is saved. This means that more than
// one Disk instance can share the same file.
//
// Preference values can be overridden on the command line. The command line
// stack is consulted by Load() and a value found on the stack takes
// precedence over the value in the file. See PushCommandLineStack().
package prefs
