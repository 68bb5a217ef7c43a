package exc

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/nyxlang/nyxc/internal/srcpos"
)

// Sink is the explicit, session-owned form of the original's global
// errors/positions statics (spec.md §9: "model as explicit
// session values threaded through the scanner and error APIs"). Errorf is
// the error(pos, fmt, ...) entry point; Save/Commit/Clear give callers the
// hierarchical buffer-stack contract speculative parsing needs.
type Sink struct {
	mu        sync.Mutex
	positions *srcpos.Registry
	current   []Exception // nil means "no buffer installed, display immediately"
	w         io.Writer
	caret     *color.Color
	session   uuid.UUID
}

// NewSink builds a Sink that resolves positions via the given registry and
// writes immediate (non-buffered) diagnostics to w.
func NewSink(positions *srcpos.Registry, w io.Writer) *Sink {
	caret := color.New(color.FgRed, color.Bold)
	if colorCapable(w) {
		caret.EnableColor()
	} else {
		caret.DisableColor()
	}
	return &Sink{
		positions: positions,
		w:         w,
		caret:     caret,
		session:   uuid.New(),
	}
}

func colorCapable(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Session identifies this Sink instance, for correlating diagnostics from
// one scanning run in logs that interleave several.
func (s *Sink) Session() uuid.UUID {
	return s.session
}

// Errorf formats a message and routes it through the current buffer (if
// one is active via Save) or displays it immediately.
func (s *Sink) Errorf(uri string, pos srcpos.Pos, code string, format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	loc := Location{URI: uri, Offset: int64(pos)}
	if info, ok := s.positions.Info(pos); ok {
		loc.Line = info.Line
		loc.Column = info.Column
	}
	e := New(loc, code, message)

	s.mu.Lock()
	if s.current != nil {
		s.current = append(s.current, e)
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	s.displayOne(e)
}

// Save installs a fresh, empty error buffer and returns the previous
// context (nil if diagnostics were being displayed immediately).
func (s *Sink) Save() []Exception {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.current
	s.current = []Exception{}
	return prev
}

// Commit appends the current buffer onto prev if prev is non-nil,
// otherwise displays and discards it. Pass the value Save returned.
func (s *Sink) Commit(prev []Exception) {
	s.mu.Lock()
	cur := s.current
	if prev != nil {
		s.current = append(prev, cur...)
		s.mu.Unlock()
		return
	}
	s.current = nil
	s.mu.Unlock()
	s.display(cur)
}

// Clear discards the current buffer and restores prev, for a backtracked
// speculative parse.
func (s *Sink) Clear(prev []Exception) {
	s.mu.Lock()
	s.current = prev
	s.mu.Unlock()
}

// Reported returns a snapshot of whatever is in the currently active
// buffer, or nil if none is active.
func (s *Sink) Reported() []Exception {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Exception(nil), s.current...)
}

func (s *Sink) display(errs []Exception) {
	for _, e := range errs {
		s.displayOne(e)
	}
}

// displayOne writes "file:line: message", the source line, and a caret
// line with the caret under the offending (1-based) column — §4.4's
// display format. When no position info is available, it writes just the
// message.
func (s *Sink) displayOne(e Exception) {
	loc := e.Location()
	if loc.Line == 0 {
		fmt.Fprintf(s.w, "%s\n", e.Message())
		return
	}
	fmt.Fprintf(s.w, "%s:%d: %s\n", loc.URI, loc.Line, e.Message())

	info, ok := s.positions.Info(srcpos.Pos(loc.Offset))
	if !ok {
		return
	}
	line, ok := s.positions.Source(info)
	if !ok {
		return
	}
	fmt.Fprintf(s.w, "  %s\n", line)
	col := int(loc.Column) - 1
	if col < 0 {
		col = 0
	}
	fmt.Fprintf(s.w, "  %s%s\n", strings.Repeat(" ", col), s.caret.Sprint("^"))
}
