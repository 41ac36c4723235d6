package recording

import (
	"errors"
	"fmt"

	"github.com/gogpu/ggrect"
)

// ErrNilBackend is returned by Playback when no backend is given.
var ErrNilBackend = errors.New("recording: nil backend")

// ErrBadCommand is returned by Playback for a command whose vertex range
// lies outside the recording.
var ErrBadCommand = errors.New("recording: invalid command")

// Recorder captures backend calls as commands. It implements
// ggrect.Backend.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands []Command
	vertices []ggrect.Vertex
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		commands: make([]Command, 0, 16),
		vertices: make([]ggrect.Vertex, 0, 512),
	}
}

// SetColor implements ggrect.Backend.
func (r *Recorder) SetColor(c ggrect.RGBA) {
	r.commands = append(r.commands, SetColorCommand{Color: c})
}

// TriList implements ggrect.Backend. The vertices are copied.
func (r *Recorder) TriList(vertices []ggrect.Vertex) {
	first := len(r.vertices)
	r.vertices = append(r.vertices, vertices...)
	r.commands = append(r.commands, TriListCommand{First: first, Count: len(vertices)})
}

// Reset discards everything recorded so far and keeps the storage.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.vertices = r.vertices[:0]
}

// FinishRecording returns an immutable Recording of the commands captured
// so far. After calling FinishRecording, the Recorder should not be used
// again.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		commands: r.commands,
		vertices: r.vertices,
	}
}

var _ ggrect.Backend = (*Recorder)(nil)

// Recording is an immutable container for recorded backend calls.
// It can be replayed to any ggrect.Backend.
type Recording struct {
	commands []Command
	vertices []ggrect.Vertex
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Vertices returns the vertices of a TriList command. The returned slice
// aliases the recording and must not be modified.
func (r *Recording) Vertices(c TriListCommand) []ggrect.Vertex {
	if c.First < 0 || c.Count < 0 || c.First+c.Count > len(r.vertices) {
		return nil
	}
	return r.vertices[c.First : c.First+c.Count : c.First+c.Count]
}

// Triangles returns the total number of triangles drawn.
func (r *Recording) Triangles() int {
	return len(r.vertices) / 3
}

// Colors returns the colors of all SetColor commands in order.
func (r *Recording) Colors() []ggrect.RGBA {
	var out []ggrect.RGBA
	for _, cmd := range r.commands {
		if c, ok := cmd.(SetColorCommand); ok {
			out = append(out, c.Color)
		}
	}
	return out
}

// Playback replays the recording to the given backend, issuing the same
// sequence of SetColor and TriList calls.
func (r *Recording) Playback(backend ggrect.Backend) error {
	if backend == nil {
		return ErrNilBackend
	}
	for i, cmd := range r.commands {
		switch c := cmd.(type) {
		case SetColorCommand:
			backend.SetColor(c.Color)
		case TriListCommand:
			vs := r.Vertices(c)
			if vs == nil && c.Count != 0 {
				return fmt.Errorf("%w: command %d: vertices [%d, %d) of %d",
					ErrBadCommand, i, c.First, c.First+c.Count, len(r.vertices))
			}
			backend.TriList(vs)
		default:
			return fmt.Errorf("%w: command %d: unknown type %T", ErrBadCommand, i, cmd)
		}
	}
	return nil
}
