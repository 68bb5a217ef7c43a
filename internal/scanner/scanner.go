// Package scanner implements the lexical state machine: UTF-8 aware name
// recognition, multi-base number and blob literals, off-side-rule
// indentation, and syntax-driven operator/block recognition. It consumes
// a byte stream and produces one Token per Read call, side-channeling the
// scanned literal value (natural/real/character/text/name/blob) as a
// tree.Node.
package scanner

import (
	"bytes"
	"context"

	"github.com/nyxlang/nyxc/internal/exc"
	"github.com/nyxlang/nyxc/internal/iter"
	"github.com/nyxlang/nyxc/internal/srcpos"
	"github.com/nyxlang/nyxc/internal/syntax"
	"github.com/nyxlang/nyxc/internal/tree"
)

// eof is the sentinel byte value used in place of C's negative-int EOF;
// bytes are always < 0x100, so this can never collide with a real byte.
const eof = -1

// Scanner holds the lexical state machine described in spec.md §4.5. One
// Scanner reads exactly one input stream; open a fresh Scanner per file.
type Scanner struct {
	ctx       context.Context
	lookahead iter.Lookahead[byte]
	positions *srcpos.Registry
	uri       string
	syntax    syntax.Table
	sink      *exc.Sink

	source bytes.Buffer
	pos    srcpos.Pos
	// scanned is the most recently produced literal value, exposed to
	// callers via Scanned(). It is nil for NEWLINE, INDENT, UNINDENT, EOF
	// and ERROR; OPEN, CLOSE and SYMBOL carry their spelling as a Name.
	scanned tree.Node

	indents tree.Stack[int32]
	indent  int32
	column  int32

	indentChar     byte
	checkingIndent bool
	settingIndent  bool

	hadSpaceBefore bool
	hadSpaceAfter  bool

	blockClose *tree.Name
}

// Option configures a Scanner at construction time.
type Option func(*Scanner)

// WithSyntax installs the external operator/block table. Without this
// option the scanner runs in discovery mode (spec.md §9 glossary).
func WithSyntax(table syntax.Table) Option {
	return func(s *Scanner) { s.syntax = table }
}

// WithSink installs the error sink errors are routed to. Without this
// option errors are silently dropped — callers that care about
// diagnostics should always supply one.
func WithSink(sink *exc.Sink) Option {
	return func(s *Scanner) { s.sink = sink }
}

// New creates a scanner over r, registering uri as a fresh source file in
// positions. r is read lazily, one byte at a time, as tokens demand it.
func New(ctx context.Context, positions *srcpos.Registry, uri string, r iter.Reader, opts ...Option) *Scanner {
	positions.OpenSourceFile(uri)
	s := &Scanner{
		ctx:       ctx,
		// depth 3 gives peek(0..3), four bytes — utf8.UTFMax, so
		// decodeRune (utf8.go) always has a whole rune in view.
		lookahead: iter.NewLookahead(iter.NewReader(r), 3),
		positions: positions,
		uri:       uri,
		pos:       positions.Next(),
	}
	s.indents.Push(0)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scanned returns the literal value produced by the most recent Read call,
// or nil if that token carried none.
func (s *Scanner) Scanned() tree.Node {
	return s.scanned
}

// peek returns the nth byte ahead (0 = the next byte to be consumed)
// without consuming it, or eof past the end of input.
func (s *Scanner) peek(n uint8) int {
	v := s.lookahead.Lookahead(s.ctx, n)
	if !v.IsPresent() {
		return eof
	}
	return int(v.Value())
}

// advance consumes the next byte, steps the position registry, and
// optionally appends it to the current token's spelling. It returns the
// byte consumed, or eof if input is exhausted.
func (s *Scanner) advance(record bool) int {
	v := s.lookahead.Next(s.ctx)
	if !v.IsPresent() {
		return eof
	}
	b := v.Value()
	s.positions.Feed(s.uri, []byte{b})
	s.pos = s.positions.Step(s.uri, b == '\n')
	if record {
		s.source.WriteByte(b)
	}
	return int(b)
}

// errorf routes a diagnostic through the sink, if one was installed, and
// reports whether code is fatal so the caller can decide whether to keep
// scanning the current literal or abandon it with an ERROR token.
func (s *Scanner) errorf(pos srcpos.Pos, code string, format string, args ...any) bool {
	if s.sink != nil {
		s.sink.Errorf(s.uri, pos, code, format, args...)
	}
	return exc.IsFatal(code)
}
