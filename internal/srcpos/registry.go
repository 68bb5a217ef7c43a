// Package srcpos maps the monotonic position scalars the scanner hands out
// back to (file, line, column) for diagnostics, and keeps enough of each
// opened file's bytes around to slice out a source line for caret display.
package srcpos

import (
	"strings"
	"sync"
)

// Pos is an opaque, monotonically increasing scalar. The zero value never
// denotes a real position; it is reserved for "no position known".
type Pos int64

// Info is what a Pos resolves to: which file it falls in, and its
// 1-based line/column within that file.
type Info struct {
	URI        string
	Line       int32
	Column     int32
	LineStart  Pos
	LineLength int32
}

type fileState struct {
	uri        string
	base       Pos
	buf        strings.Builder
	line       int32
	column     int32
	lineStart  Pos
	lineStarts []Pos
}

// Registry hands out positions and remembers how to map them back to
// source text. One Registry is shared by every file a scanner opens during
// a run, which is what keeps positions comparable (and monotonic) across
// files.
type Registry struct {
	mu    sync.Mutex
	next  Pos
	files []*fileState
	byPos map[Pos]*fileState
}

// NewRegistry returns an empty position registry. Pos 0 is reserved, so the
// first position ever returned by Step is 1.
func NewRegistry() *Registry {
	return &Registry{next: 1, byPos: map[Pos]*fileState{}}
}

// OpenSourceFile registers a new input under the given name and returns the
// position of its first byte (not yet consumed).
func (r *Registry) OpenSourceFile(uri string) Pos {
	r.mu.Lock()
	defer r.mu.Unlock()
	start := r.next
	fs := &fileState{
		uri:        uri,
		base:       start,
		line:       1,
		column:     1,
		lineStart:  start,
		lineStarts: []Pos{start},
	}
	r.files = append(r.files, fs)
	r.byPos[start] = fs
	return start
}

// Feed appends bytes that were just consumed from the file registered under
// uri, so Source can later slice them back out. The
// scanner calls this as it reads, not all at once.
func (r *Registry) Feed(uri string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fs := r.fileByURI(uri)
	if fs == nil {
		return
	}
	fs.buf.Write(data)
}

// Step records that one byte was consumed from the named file and returns
// the Pos assigned to that byte. newline indicates the consumed byte was
// a line terminator, so the registry can track line/column.
func (r *Registry) Step(uri string, newline bool) Pos {
	r.mu.Lock()
	defer r.mu.Unlock()
	fs := r.fileByURI(uri)
	if fs == nil {
		return 0
	}
	pos := r.next
	r.next++
	r.byPos[pos] = fs
	if newline {
		fs.line++
		fs.column = 1
		fs.lineStart = pos + 1
		fs.lineStarts = append(fs.lineStarts, fs.lineStart)
	} else {
		fs.column++
	}
	return pos
}

func (r *Registry) fileByURI(uri string) *fileState {
	for _, fs := range r.files {
		if fs.uri == uri {
			return fs
		}
	}
	return nil
}

// Next returns the Pos that will be assigned to the next byte consumed
// from any open file, without consuming anything. The scanner calls this
// to capture a token's starting position before reading its first byte.
func (r *Registry) Next() Pos {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next
}

// Info resolves a Pos to its file/line/column. The bool is false if the Pos
// was never issued by this registry.
func (r *Registry) Info(p Pos) (Info, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fs, ok := r.byPos[p]
	if !ok {
		return Info{}, false
	}
	line, col, lineStart := fs.lineAt(p)
	return Info{
		URI:        fs.uri,
		Line:       line,
		Column:     col,
		LineStart:  lineStart,
		LineLength: fs.lineLengthAt(lineStart),
	}, true
}

func (fs *fileState) lineAt(p Pos) (line int32, column int32, lineStart Pos) {
	line = 1
	lineStart = fs.base
	for i, ls := range fs.lineStarts {
		if ls > p {
			break
		}
		line = int32(i) + 1
		lineStart = ls
	}
	return line, int32(p-lineStart) + 1, lineStart
}

func (fs *fileState) lineLengthAt(lineStart Pos) int32 {
	offset := int(lineStart - fs.base)
	text := fs.buf.String()
	if offset < 0 || offset > len(text) {
		return 0
	}
	rest := text[offset:]
	if idx := strings.IndexByte(rest, '\n'); idx >= 0 {
		return int32(idx)
	}
	return int32(len(rest))
}

// Source returns the raw text of the line containing Info, without its
// trailing newline, for use in caret-style diagnostics.
func (r *Registry) Source(info Info) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fs := r.fileByURI(info.URI)
	if fs == nil {
		return "", false
	}
	offset := int(info.LineStart - fs.base)
	text := fs.buf.String()
	if offset < 0 || offset > len(text) {
		return "", false
	}
	end := offset + int(info.LineLength)
	if end > len(text) {
		end = len(text)
	}
	return text[offset:end], true
}
