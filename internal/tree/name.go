package tree

import (
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/nyxlang/nyxc/internal/srcpos"
)

// Name is a blob whose bytes obey the name-validity rule and have been
// normalized (lowercased, underscores stripped) for comparison. It embeds
// Blob and falls through to it for everything except typename, casting,
// construction, copy/clone/freeze/thaw and rendering — the same split
// name_handler makes.
type Name struct {
	Blob
}

// isOperatorByte mirrors the original's reliance on the C-locale ispunct:
// every printable ASCII byte that isn't alphanumeric or space.
func isOperatorByte(b byte) bool {
	switch {
	case b >= '!' && b <= '/':
		return true
	case b >= ':' && b <= '@':
		return true
	case b >= '[' && b <= '`':
		return true
	case b >= '{' && b <= '~':
		return true
	}
	return false
}

func isAlnumByte(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// IsNameValid checks the §4.2 name-validity rule: punctuation-only,
// alphabetic-with-no-doubled-underscore-and-no-trailing-underscore (where
// "alphabetic" accepts any Unicode Letter, per spec.md §9's explicit
// narrowing of utf8_isalpha), or a single syntactic marker byte.
func IsNameValid(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	if data[0] < 0x80 {
		switch {
		case isOperatorByte(data[0]):
			for _, b := range data {
				if b >= 0x80 || !isOperatorByte(b) {
					return false
				}
			}
			return true
		case isAlnumLetterByte(data[0]):
			return alphabeticNameValid(data)
		case len(data) == 1:
			switch data[0] {
			case '\n', '\t', '\b':
				return true
			}
			return false
		default:
			return false
		}
	}
	first, _ := utf8.DecodeRune(data)
	if unicode.IsLetter(first) {
		return alphabeticNameValid(data)
	}
	return false
}

func isAlnumLetterByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func alphabeticNameValid(data []byte) bool {
	hadUnderscore := true
	for i := 0; i < len(data); {
		if data[i] == '_' {
			if hadUnderscore {
				return false
			}
			hadUnderscore = true
			i++
			continue
		}
		hadUnderscore = false
		if data[i] < 0x80 {
			if !isAlnumLetterByte(data[i]) && !(data[i] >= '0' && data[i] <= '9') {
				return false
			}
			i++
			continue
		}
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return false
		}
		i += size
	}
	return !hadUnderscore
}

// NewName allocates a name node. data must satisfy IsNameValid; this is a
// construction-time invariant, not a recoverable error — the scanner is
// responsible for only ever handing valid spellings to NewName.
func NewName(pos srcpos.Pos, data []byte) *Name {
	if !IsNameValid(data) {
		panic("tree: name must satisfy the name-validity rule")
	}
	return &Name{Blob: newBlobBase(KindName, pos, data)}
}

func (n *Name) Typename() string { return "name" }

func (n *Name) Is(k Kind) bool {
	if k == KindName {
		return true
	}
	return n.Blob.Is(k)
}

// IsOperator reports whether the name's first byte is punctuation, mirroring
// the original's name_is_operator (ispunct on the first byte).
func (n *Name) IsOperator() bool {
	if n.Len() == 0 {
		return false
	}
	return isOperatorByte(n.data[0])
}

// Normalize returns the canonical form: ASCII letters lowercased,
// underscores stripped. Two names compare equal iff their normalized forms
// are byte-equal.
func Normalize(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for _, b := range data {
		if b == '_' {
			continue
		}
		if b >= 'A' && b <= 'Z' {
			b = b - 'A' + 'a'
		}
		out = append(out, b)
	}
	return out
}

// Equal compares two names by normalized form.
func (n *Name) Equal(other *Name) bool {
	return string(Normalize(n.Data())) == string(Normalize(other.Data()))
}

func (n *Name) Copy() Node   { return copyRef(n) }
func (n *Name) Freeze() Node { return freezeDeep(n) }
func (n *Name) Thaw() Node   { return thawCopy(n) }

func (n *Name) Clone() Node {
	return &Name{Blob: newBlobBase(KindName, n.pos, n.data)}
}

func (n *Name) Render(w io.Writer, r Renderer) error {
	if n.Len() == 1 && n.data[0] == '\n' {
		_, err := io.WriteString(w, `\n`)
		return err
	}
	_, err := w.Write(n.data)
	return err
}
