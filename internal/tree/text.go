package tree

import (
	"io"

	"github.com/nyxlang/nyxc/internal/srcpos"
)

// Text is a blob holding arbitrary bytes — the scanned value behind the
// TEXT token and the payload of a DelimitedText node.
type Text struct {
	Blob
}

// NewText allocates a text node from raw bytes, with no validity rule
// beyond being a byte sequence.
func NewText(pos srcpos.Pos, data []byte) *Text {
	return &Text{Blob: newBlobBase(KindText, pos, data)}
}

func (t *Text) Typename() string { return "text" }

func (t *Text) Is(k Kind) bool {
	if k == KindText {
		return true
	}
	return t.Blob.Is(k)
}

func (t *Text) Copy() Node   { return copyRef(t) }
func (t *Text) Freeze() Node { return freezeDeep(t) }
func (t *Text) Thaw() Node   { return thawCopy(t) }

func (t *Text) Clone() Node {
	return &Text{Blob: newBlobBase(KindText, t.pos, t.data)}
}

func (t *Text) Render(w io.Writer, r Renderer) error {
	_, err := w.Write(t.data)
	return err
}

// String renders a Text as a Go string, copying its bytes.
func (t *Text) String() string {
	return string(t.data)
}
