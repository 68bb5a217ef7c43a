package scanner

import "github.com/nyxlang/nyxc/internal/srcpos"

// TokenKind is the scanner's output alphabet, per the spec's read()
// contract.
type TokenKind int

const (
	EOF TokenKind = iota
	NEWLINE
	INDENT
	UNINDENT
	INTEGER
	REAL
	CHARACTER
	TEXT
	BLOB
	NAME
	SYMBOL
	OPEN
	CLOSE
	ERROR
)

func (k TokenKind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case NEWLINE:
		return "NEWLINE"
	case INDENT:
		return "INDENT"
	case UNINDENT:
		return "UNINDENT"
	case INTEGER:
		return "INTEGER"
	case REAL:
		return "REAL"
	case CHARACTER:
		return "CHARACTER"
	case TEXT:
		return "TEXT"
	case BLOB:
		return "BLOB"
	case NAME:
		return "NAME"
	case SYMBOL:
		return "SYMBOL"
	case OPEN:
		return "OPEN"
	case CLOSE:
		return "CLOSE"
	case ERROR:
		return "ERROR"
	}
	return "?"
}

// Token is what one Read call returns: the kind, its starting position,
// its spelling (the accumulated "source" text), and the whitespace
// adjacency flags the parser consumes to distinguish e.g. "f (x)" from
// "f(x)".
type Token struct {
	Kind           TokenKind
	Pos            srcpos.Pos
	Spelling       string
	HadSpaceBefore bool
	HadSpaceAfter  bool
}
