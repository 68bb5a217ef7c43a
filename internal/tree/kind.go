package tree

// Kind tags the concrete node types the scanner and (eventually) the
// parser build. It plays the role the original's per-kind handler
// function pointer played: something a Cast can check identity against.
type Kind int

const (
	KindNatural Kind = iota
	KindReal
	KindCharacter
	KindBlob
	KindText
	KindName
	KindPrefix
	KindPostfix
	KindInfix
	KindBlock
	KindDelimitedText
)

func (k Kind) String() string {
	switch k {
	case KindNatural:
		return "natural"
	case KindReal:
		return "real"
	case KindCharacter:
		return "character"
	case KindBlob:
		return "blob"
	case KindText:
		return "text"
	case KindName:
		return "name"
	case KindPrefix:
		return "prefix"
	case KindPostfix:
		return "postfix"
	case KindInfix:
		return "infix"
	case KindBlock:
		return "block"
	case KindDelimitedText:
		return "delimited_text"
	}
	return "unknown"
}
