package scanner

// ParenState is what a caller scanning a parenthesized expression must
// hold onto across nested OpenParenthese/CloseParenthese pairs. The
// original packs the old indent and the old setting_indent flag into one
// bit-complemented unsigned so the parser's own single-word-per-level
// stack can carry both; in Go the parser can just hold a ParenState value
// per nesting level instead; see the Open Question decision in DESIGN.md.
type ParenState struct {
	indent        int32
	settingIndent bool
}

// OpenParenthese tells the scanner that a parenthesized expression is
// starting, so the next NEWLINE inside it sets a fresh indent level
// instead of being compared to the enclosing one. The returned ParenState
// must be passed back to CloseParenthese when the matching closing
// delimiter is scanned.
func (s *Scanner) OpenParenthese() ParenState {
	saved := ParenState{indent: s.indent, settingIndent: s.settingIndent}
	s.settingIndent = true
	return saved
}

// CloseParenthese restores the indent context OpenParenthese saved.
func (s *Scanner) CloseParenthese(saved ParenState) {
	s.indent = saved.indent
	if !s.settingIndent && s.indents.Top() == s.indent {
		s.indents.Pop()
	}
	s.settingIndent = saved.settingIndent
}
