package scanner

import (
	"github.com/nyxlang/nyxc/internal/exc"
	"github.com/nyxlang/nyxc/internal/srcpos"
	"github.com/nyxlang/nyxc/internal/tree"
)

// nextchar consumes the current lookahead byte, optionally recording it
// into the token's spelling, and returns the byte now at the front.
func (s *Scanner) nextchar(record bool) int {
	s.advance(record)
	return s.peek(0)
}

// Read scans and returns the next token, per spec.md §4.5's off-side-rule
// indentation and literal grammar. The literal value behind INTEGER, REAL,
// CHARACTER, TEXT, BLOB, NAME, SYMBOL, OPEN and CLOSE tokens is available
// from Scanned() immediately after the call.
func (s *Scanner) Read() (tok Token) {
	defer func() {
		tok.HadSpaceBefore = s.hadSpaceBefore
		tok.HadSpaceAfter = s.hadSpaceAfter
	}()
	pos := s.pos
	s.source.Reset()
	s.scanned = nil

	s.hadSpaceBefore = true
	if s.indents.Top() > s.indent {
		s.indents.Pop()
		return Token{Kind: UNINDENT, Pos: pos}
	}

	c := s.peek(0)

	s.hadSpaceBefore = false
	for isSpaceByte(c) && c != eof {
		s.hadSpaceBefore = true
		if c == '\n' {
			s.checkingIndent = true
			s.column = 0
		} else if s.checkingIndent {
			if c == ' ' || c == '\t' {
				if s.indentChar == 0 {
					s.indentChar = byte(c)
				} else if s.indentChar != byte(c) {
					s.errorf(s.pos, exc.CodeMixedIndent, "mixed tabs and spaces in indentation")
				}
			}
			s.column++
		}
		s.advance(false)
		c = s.peek(0)
	}

	if s.checkingIndent {
		s.checkingIndent = false

		switch {
		case s.settingIndent:
			s.indents.Push(s.indent)
			s.indent = s.column
			s.settingIndent = false
			return Token{Kind: NEWLINE, Pos: pos}

		case s.column > s.indent:
			s.indent = s.column
			s.indents.Push(s.indent)
			return Token{Kind: INDENT, Pos: pos}

		case s.column < s.indents.Top():
			s.indents.Pop()
			s.indent = s.column
			if s.indents.Top() < s.column {
				s.errorf(pos, exc.CodeUnindentMisalign, "unindenting to the right of previous indentation")
				return Token{Kind: ERROR, Pos: pos}
			}
			return Token{Kind: UNINDENT, Pos: pos}

		default:
			return Token{Kind: NEWLINE, Pos: pos}
		}
	}

	if c == eof {
		return Token{Kind: EOF, Pos: pos}
	}

	pos = s.positions.Next()

	isBlob := false
	if c == '$' {
		c = s.nextchar(true)
		isBlob = true
	}

	switch {
	case isBlob || isDigitByte(c):
		return s.scanNumberOrBlob(pos, isBlob)
	case isAlphaByte(c) || (c >= 0x80 && s.runeStartsName()):
		return s.scanName(pos)
	case c == '"' || c == '\'':
		eos := c
		s.advance(true)
		return s.scanTextOrCharacter(pos, eos)
	default:
		return s.scanSymbol(pos)
	}
}

// scanName accumulates a maximal run of name-continuation characters
// starting at the current lookahead (already known to start a name via
// isAlphaByte or runeStartsName), normalizes it, and checks it against the
// syntax table for block open/close. ASCII bytes are consumed one at a
// time; a multi-byte rune is decoded once and, if it's a Letter or Digit,
// consumed whole.
func (s *Scanner) scanName(pos srcpos.Pos) Token {
	c := s.peek(0)
	for {
		if isAlnumByte(c) || c == '_' {
			c = s.nextchar(true)
			continue
		}
		if c < 0x80 {
			break
		}
		ok, size := s.runeContinuesName()
		if !ok {
			break
		}
		for i := 0; i < size; i++ {
			c = s.nextchar(true)
		}
	}
	s.hadSpaceAfter = isSpaceByte(c)

	normalized := tree.Normalize(s.source.Bytes())
	name := tree.NewName(pos, normalized)
	s.scanned = name

	if s.syntax != nil {
		spelling := string(normalized)
		if closing, ok := s.syntax.IsBlock(spelling); ok {
			s.blockClose = tree.NewName(pos, tree.Normalize([]byte(closing)))
			return Token{Kind: OPEN, Pos: pos, Spelling: s.source.String()}
		}
		if s.blockClose != nil && string(s.blockClose.Data()) == spelling {
			s.blockClose = nil
			return Token{Kind: CLOSE, Pos: pos, Spelling: s.source.String()}
		}
	}
	return Token{Kind: NAME, Pos: pos, Spelling: s.source.String()}
}
