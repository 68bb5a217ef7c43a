package tree

import (
	"bytes"
	"errors"
	"io"

	"github.com/nyxlang/nyxc/internal/srcpos"
)

// ErrFrozen is returned by a blob-family mutator when the node is frozen;
// the caller must Thaw it first, which is the Go mapping of the original's
// reference-to-reference swap-on-realloc trick: here the swap is explicit
// and caller-visible instead of hidden inside blob_append_data.
var ErrFrozen = errors.New("tree: blob is frozen, Thaw before mutating")

// Blob is a variable-length byte container. Text and Name embed it and
// inherit every method below until they have something kind-specific to
// say — the same fall-through blob_handler gave them in the original.
type Blob struct {
	base
	data []byte
}

func newBlobBase(kind Kind, pos srcpos.Pos, data []byte) Blob {
	b := Blob{base: newBase(kind, pos)}
	b.data = append(b.data, data...)
	return b
}

// NewBlob allocates a blob holding a copy of data.
func NewBlob(pos srcpos.Pos, data []byte) *Blob {
	b := newBlobBase(KindBlob, pos, data)
	return &b
}

func (b *Blob) Typename() string { return "blob" }

func (b *Blob) Is(k Kind) bool {
	if k == KindBlob {
		return true
	}
	return b.base.Is(k)
}

// Data returns the blob's bytes. The caller must not retain the slice
// across a subsequent AppendData or Range, which may reallocate.
func (b *Blob) Data() []byte { return b.data }

// Len returns the blob's length in bytes.
func (b *Blob) Len() int { return len(b.data) }

// AppendData appends more bytes, possibly growing the backing array.
func (b *Blob) AppendData(data []byte) error {
	if b.isFrozen() {
		return ErrFrozen
	}
	b.data = append(b.data, data...)
	return nil
}

// Range narrows the blob to data[start : start+length], in place.
func (b *Blob) Range(start, length int) error {
	if b.isFrozen() {
		return ErrFrozen
	}
	end := start + length
	if end > len(b.data) {
		end = len(b.data)
	}
	if start > end {
		start = end
	}
	narrowed := make([]byte, end-start)
	copy(narrowed, b.data[start:end])
	b.data = narrowed
	return nil
}

// Compare is lexicographic over the raw bytes.
func (b *Blob) Compare(other *Blob) int {
	return bytes.Compare(b.data, other.data)
}

func (b *Blob) Copy() Node { return copyRef(b) }

func (b *Blob) Clone() Node {
	clone := newBlobBase(b.kind, b.pos, b.data)
	return &clone
}

func (b *Blob) Render(w io.Writer, r Renderer) error {
	return renderDelegate(w, r, b)
}

func (b *Blob) Freeze() Node { return freezeDeep(b) }
func (b *Blob) Thaw() Node   { return thawCopy(b) }
