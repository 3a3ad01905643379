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

// Package logger is the central log of the application. It is not intended to
// be a replacement for error handling. Rather, it is a record of notable
// events that do not stop the program but which might be useful to see when
// something is not looking right. For example, the cdg package logs every
// unsupported instruction it encounters.
//
// Entries are made with the Log() and Logf() functions. Every entry has a tag
// and a detail string. The tag is usually the name of the package or
// component making the entry.
//
//	logger.Log(logger.Allow, "loader", "discarding 12 trailing bytes")
//
// Adjacent entries with identical tag and detail are collapsed into a single
// entry with a repeat count. This means that an event that happens on every
// packet of a stream, will not flood the log.
//
// The first argument is a Permission. Logging will only happen if the
// AllowLogging() function of the Permission returns true. The Allow value can
// be used when logging should always happen.
//
// The log can be echoed to an io.Writer with SetEcho(). The cdgplay command
// uses this to implement the -log flag.
//
// The package level functions all operate on a single central log. A separate
// Logger instance can be created with NewLogger(). This is useful for testing.
package logger
