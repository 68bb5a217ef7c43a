package scanner

import (
	"unicode"
	"unicode/utf8"
)

// decodeRune decodes the UTF-8 rune starting at the current lookahead
// position without consuming anything. It reads up to 4 bytes of
// lookahead (the scanner's lookahead depth matches utf8.UTFMax), which is
// always enough to decode one full rune ahead of the current byte.
func (s *Scanner) decodeRune() (rune, int) {
	var buf [utf8.UTFMax]byte
	n := 0
	for ; n < utf8.UTFMax; n++ {
		b := s.peek(uint8(n))
		if b == eof {
			break
		}
		buf[n] = byte(b)
	}
	return utf8.DecodeRune(buf[:n])
}

// runeStartsName reports whether the rune at the current lookahead
// position can begin a name. spec.md §9 restricts name-starters to the
// Unicode Letter general category — exactly what the teacher's own
// rune-based lexer checks directly (lexer_microglot.go iterates runes, so
// it calls unicode.IsLetter with no decode step of its own); this scanner
// iterates bytes, so it decodes the rune ahead of the current position
// first.
func (s *Scanner) runeStartsName() bool {
	r, size := s.decodeRune()
	if r == utf8.RuneError && size <= 1 {
		return false
	}
	return unicode.IsLetter(r)
}

// runeContinuesName reports whether the rune at the current lookahead
// position can continue a name already underway, and how many bytes it
// occupies. Continuation accepts Letter and Digit categories, mirroring
// the ASCII isAlnumByte rule one level up.
func (s *Scanner) runeContinuesName() (bool, int) {
	r, size := s.decodeRune()
	if r == utf8.RuneError && size <= 1 {
		return false, 1
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r), size
}
