package journal

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
)

// Chunk is the result of one incremental read.
type Chunk struct {
	Data      []byte
	Offset    int64 // offset after the read
	Truncated bool  // the file shrank below the requested offset
}

// ReadIncrement reads every byte of path from offset to the current EOF.
// When the file is shorter than offset it is treated as a fresh file and
// read from the start.
func ReadIncrement(fs afero.Fs, path string, offset int64) (Chunk, error) {
	file, err := fs.Open(path)
	if err != nil {
		return Chunk{}, fmt.Errorf("%w: open %s: %v", ErrLogAccess, path, err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return Chunk{}, fmt.Errorf("%w: stat %s: %v", ErrLogAccess, path, err)
	}

	var chunk Chunk
	if offset < 0 || info.Size() < offset {
		offset = 0
		chunk.Truncated = true
	}
	if _, err := file.Seek(offset, io.SeekStart); err != nil {
		return Chunk{}, fmt.Errorf("%w: seek %s: %v", ErrLogAccess, path, err)
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return Chunk{}, fmt.Errorf("%w: read %s: %v", ErrLogAccess, path, err)
	}
	chunk.Data = data
	chunk.Offset = offset + int64(len(data))
	return chunk, nil
}

// Cursor is the tailer's position in the active journal.
type Cursor struct {
	Path    string
	Offset  int64
	Pending []byte // trailing bytes not yet terminated by a newline
}

// Batch describes what one Poll observed.
type Batch struct {
	Path      string   // active journal, "" when none
	Previous  string   // journal before this poll
	Truncated bool     // active journal shrank and was reread
	Lines     []string // complete lines read during this poll
}

// Switched reports whether the active journal changed during this poll.
func (b Batch) Switched() bool { return b.Path != b.Previous }

// Tailer follows the active journal of a Source. It is not safe for
// concurrent use; one goroutine owns it.
type Tailer struct {
	fs     afero.Fs
	source *Source
	cursor Cursor
	lines  []string
}

// NewTailer returns a Tailer reading through fs.
func NewTailer(fs afero.Fs, source *Source) *Tailer {
	return &Tailer{fs: fs, source: source}
}

// Cursor returns a copy of the current cursor.
func (t *Tailer) Cursor() Cursor {
	c := t.cursor
	c.Pending = append([]byte(nil), t.cursor.Pending...)
	return c
}

// Lines returns every complete line accumulated from the active journal.
func (t *Tailer) Lines() []string {
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}

// Poll advances the cursor over any bytes appended since the last call.
func (t *Tailer) Poll() (Batch, error) {
	batch := Batch{Previous: t.cursor.Path}

	latest, err := t.source.Latest()
	if err != nil {
		batch.Path = t.cursor.Path
		return batch, err
	}
	batch.Path = latest
	if latest != t.cursor.Path {
		t.reset(latest)
	}
	if latest == "" {
		return batch, nil
	}

	chunk, err := ReadIncrement(t.fs, latest, t.cursor.Offset)
	if err != nil {
		t.reset(latest)
		return batch, err
	}
	if chunk.Truncated {
		t.reset(latest)
		batch.Truncated = true
	}
	t.cursor.Offset = chunk.Offset
	batch.Lines = t.consume(chunk.Data)
	t.lines = append(t.lines, batch.Lines...)
	return batch, nil
}

func (t *Tailer) reset(path string) {
	t.cursor = Cursor{Path: path}
	t.lines = nil
}

// consume joins data onto the pending fragment and returns the complete
// lines. Bytes after the last newline stay pending.
func (t *Tailer) consume(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	buf := append(t.cursor.Pending, data...)
	cut := bytes.LastIndexByte(buf, '\n')
	if cut < 0 {
		t.cursor.Pending = buf
		return nil
	}
	t.cursor.Pending = append([]byte(nil), buf[cut+1:]...)

	var lines []string
	for _, raw := range strings.Split(string(buf[:cut]), "\n") {
		line := strings.TrimRight(raw, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
