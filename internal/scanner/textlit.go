package scanner

import (
	"unicode/utf8"

	"github.com/nyxlang/nyxc/internal/exc"
	"github.com/nyxlang/nyxc/internal/srcpos"
	"github.com/nyxlang/nyxc/internal/tree"
)

// scanTextOrCharacter reads the body of a '"'- or '\''-delimited literal.
// eos is the delimiter already consumed by the caller. A doubled delimiter
// is decided with one byte of lookahead past the current one, so the
// scanner never needs to unconsume the quote it just peeked at — the
// original's two-step getchar/ungetchar dance for this case collapses to a
// single peek(1).
func (s *Scanner) scanTextOrCharacter(pos srcpos.Pos, eos int) Token {
	var content []byte
	for {
		c := s.peek(0)
		if c == eof {
			s.errorf(pos, exc.CodeEOFInLiteral, "end of input in the middle of a text")
			s.hadSpaceAfter = false
			break
		}
		if c == eos {
			if s.peek(1) == eos {
				s.advance(true)
				s.advance(true)
				content = append(content, byte(eos))
				continue
			}
			s.advance(true)
			break
		}
		s.advance(true)
		content = append(content, byte(c))
	}
	s.hadSpaceAfter = isSpaceByte(s.peek(0))

	if eos == '"' {
		s.scanned = tree.NewText(pos, content)
		return Token{Kind: TEXT, Pos: pos, Spelling: s.source.String()}
	}
	return s.finishCharacter(pos, content)
}

func (s *Scanner) finishCharacter(pos srcpos.Pos, content []byte) Token {
	if utf8.RuneCount(content) != 1 {
		s.errorf(pos, exc.CodeMultiCharCharacter, "character constant should contain one character")
	}
	r, size := utf8.DecodeRune(content)
	if r == utf8.RuneError && size <= 1 {
		if len(content) > 0 {
			r = rune(content[0])
		} else {
			r = 0
		}
	}
	s.scanned = tree.NewCharacter(pos, r)
	return Token{Kind: CHARACTER, Pos: pos, Spelling: s.source.String()}
}
