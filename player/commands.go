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
	"fmt"

	"github.com/cdgplay/cdgplay/terminal"
)

// CommandType identifies the action of a Command.
type CommandType int

// List of valid CommandType values.
const (
	// move the clock by the number of milliseconds in the Amount field
	CmdSeek CommandType = iota

	// move the clock to the number of milliseconds in the Amount field
	CmdSeekTo

	// pause or restart the clock
	CmdPause

	// end playback
	CmdQuit
)

// Command is sent to a running Player.
type Command struct {
	Type   CommandType
	Amount int
}

func (cmd Command) String() string {
	switch cmd.Type {
	case CmdSeek:
		return fmt.Sprintf("seek %+dms", cmd.Amount)
	case CmdSeekTo:
		return fmt.Sprintf("seek to %dms", cmd.Amount)
	case CmdPause:
		return "pause"
	case CmdQuit:
		return "quit"
	}
	return "unknown command"
}

// KeyCommand returns the command for the key press. The left and right keys
// seek by the step amount. The up and down keys seek by ten times the step
// amount. Returns false if the key has no command.
func KeyCommand(k terminal.Key, step int) (Command, bool) {
	switch k {
	case terminal.KeyLeft:
		return Command{Type: CmdSeek, Amount: -step}, true
	case terminal.KeyRight:
		return Command{Type: CmdSeek, Amount: step}, true
	case terminal.KeyDown:
		return Command{Type: CmdSeek, Amount: -step * 10}, true
	case terminal.KeyUp:
		return Command{Type: CmdSeek, Amount: step * 10}, true
	case terminal.KeyPause:
		return Command{Type: CmdPause}, true
	case terminal.KeyQuit:
		return Command{Type: CmdQuit}, true
	}
	return Command{}, false
}
