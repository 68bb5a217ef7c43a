package scanner

import (
	"bytes"

	"github.com/nyxlang/nyxc/internal/tree"
)

// matchSuffix returns the largest k (0 <= k <= len(pat)) such that buf's
// last k bytes equal pat's first k bytes. Skip uses it to decide, after
// every byte, how much of the closing marker is currently matched — the
// same restart-on-mismatch behavior the original's in-place pointer
// backtrack gives, expressed without aliasing into the comment buffer
// being built.
func matchSuffix(buf, pat []byte) int {
	max := len(pat)
	if max > len(buf) {
		max = len(buf)
	}
	for k := max; k > 0; k-- {
		if bytes.Equal(buf[len(buf)-k:], pat[:k]) {
			return k
		}
	}
	return 0
}

// Skip reads ahead until closing is matched, for long comments and
// delimited text whose content is scanned by literal marker rather than by
// grammar. Lines are dedented by the scanner's current indent level while
// it believes it's still inside the marker's indentation, mirroring
// scanner_skip's comment-dedent behavior.
func (s *Scanner) Skip(closing *tree.Name) (*tree.Text, error) {
	eoc := closing.Data()
	pos := s.pos
	s.source.Reset()
	s.scanned = nil

	var comment []byte
	var tail []byte
	matched := 0

	for matched < len(eoc) {
		c := s.peek(0)
		if c == eof {
			break
		}
		s.advance(true)

		skip := false
		if c == '\n' {
			s.checkingIndent = true
			s.column = 0
		} else if s.checkingIndent {
			if isSpaceByte(c) {
				skip = s.column < s.indent
				s.column++
			} else {
				s.checkingIndent = false
			}
		}

		tail = append(tail, byte(c))
		if len(tail) > len(eoc) {
			tail = tail[len(tail)-len(eoc):]
		}
		matched = matchSuffix(tail, eoc)

		if !skip {
			comment = append(comment, byte(c))
		}
	}

	if matched > len(comment) {
		matched = len(comment)
	}
	comment = comment[:len(comment)-matched]
	return tree.NewText(pos, comment), nil
}
