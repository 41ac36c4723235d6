package recording

import "github.com/gogpu/ggrect"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdSetColor CommandType = iota // Set the current color
	CmdTriList                     // Draw a triangle list
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSetColor: "SetColor",
	CmdTriList:  "TriList",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// SetColorCommand records a Backend.SetColor call.
type SetColorCommand struct {
	Color ggrect.RGBA
}

// Type implements Command.
func (SetColorCommand) Type() CommandType { return CmdSetColor }

// TriListCommand records a Backend.TriList call. The vertices live in the
// recording's vertex slab at [First, First+Count).
type TriListCommand struct {
	First, Count int
}

// Type implements Command.
func (TriListCommand) Type() CommandType { return CmdTriList }

// Triangles returns the number of triangles the command draws.
func (c TriListCommand) Triangles() int {
	return c.Count / 3
}
