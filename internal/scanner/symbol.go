package scanner

import (
	"github.com/nyxlang/nyxc/internal/exc"
	"github.com/nyxlang/nyxc/internal/srcpos"
	"github.com/nyxlang/nyxc/internal/tree"
)

// scanSymbol reads an operator or other punctuation token. With a syntax
// table installed, it greedily extends the spelling one byte at a time as
// long as the growing spelling is still a registered operator prefix,
// checking block open/close after each extension; without one (discovery
// mode) it accepts a maximal run of punctuation, stopping before a quote
// character. A lone punctuation byte
// that matches nothing is still returned as a single-byte SYMBOL rather
// than left unconsumed, so a byte the table doesn't know about can never
// stall the scanner.
func (s *Scanner) scanSymbol(pos srcpos.Pos) Token {
	c := s.peek(0)
	if c == eof {
		return Token{Kind: EOF, Pos: pos}
	}
	if !isPunctByte(c) {
		s.advance(true)
		s.errorf(pos, exc.CodeUnknownFatal, "unexpected byte %#x", c)
		s.hadSpaceAfter = isSpaceByte(s.peek(0))
		return Token{Kind: ERROR, Pos: pos, Spelling: s.source.String()}
	}

	tok := SYMBOL
	c = s.nextchar(true)

	checkBlock := func(spelling string) bool {
		if closing, ok := s.syntax.IsBlock(spelling); ok {
			s.blockClose = tree.NewName(pos, tree.Normalize([]byte(closing)))
			tok = OPEN
			return true
		}
		if s.blockClose != nil && string(s.blockClose.Data()) == spelling {
			s.blockClose = nil
			tok = CLOSE
			return true
		}
		return false
	}

	if s.syntax != nil {
		if !checkBlock(string(tree.Normalize(s.source.Bytes()))) {
			for isStopPunct(c) {
				candidate := append(append([]byte(nil), s.source.Bytes()...), byte(c))
				if !s.syntax.IsOperator(string(tree.Normalize(candidate))) {
					break
				}
				c = s.nextchar(true)
				if checkBlock(string(tree.Normalize(s.source.Bytes()))) {
					break
				}
			}
		}
	} else {
		for isStopPunct(c) {
			c = s.nextchar(true)
		}
	}

	s.hadSpaceAfter = isSpaceByte(c)
	name := tree.NewName(pos, tree.Normalize(s.source.Bytes()))
	s.scanned = name
	return Token{Kind: tok, Pos: pos, Spelling: s.source.String()}
}

func isStopPunct(c int) bool {
	return isPunctByte(c) && c != '\'' && c != '"'
}
