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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Arguments are supplied with NewArgs() and then parsed with Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "DUMP", "SNAPSHOT")
//	res, err := md.Parse()
//
// The first sub-mode in the list is the default. If the first argument after
// the flags names a sub-mode then that sub-mode is selected and the argument
// is consumed. The selected mode is returned by Mode() and the chain of modes
// selected so far is returned by Path().
//
// To parse the flags of the selected mode, call NewMode(), add the flags for
// that mode and call Parse() again:
//
//	switch md.Mode() {
//	case "PLAY":
//		md.NewMode()
//		fps := md.AddInt("fps", 30, "updates per second")
//		res, err := md.Parse()
//		...
//		play(md.RemainingArgs(), *fps)
//	}
//
// Modes can be nested as deeply as required. Mode comparisons are case
// insensitive and modes are always reported in upper case.
//
// The -help flag is handled automatically. The ParseHelp result indicates
// that the help message has been written to the Output field and that the
// program should end.
package modalflag
