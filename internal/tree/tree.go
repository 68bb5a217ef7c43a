// Package tree implements the polymorphic, reference-counted node model
// shared between the scanner and whatever parser is built on top of it.
// Every concrete kind embeds base (directly, or indirectly through Blob),
// and overrides only the methods whose behavior actually differs — the
// same "fall through to the parent kind's handler" contract the original
// command-verb dispatcher gave each handler, expressed here as Go method
// promotion instead of an explicit switch-and-delegate.
package tree

import (
	"io"

	"github.com/nyxlang/nyxc/internal/srcpos"
)

// Renderer is the output contract a Node delegates to when it has nothing
// kind-specific to say about its own rendering. Defined here, at the
// consumer, rather than in a separate package that Node would have to
// import back — internal/render provides a concrete implementation.
type Renderer interface {
	// WriteNode is asked to render a node this Renderer has no opinion
	// about; the default tree behavior delegates straight to it.
	WriteNode(w io.Writer, n Node) error
}

// Node is satisfied by every concrete kind. Kind/Is/Typename/Position are
// always cheap; Arity/Children describe the node's structural shape (zero
// for every leaf kind); Copy/Clone/Render/Freeze/Thaw are the lifecycle
// operations every kind must answer, even if by falling through to an
// embedded parent's implementation.
type Node interface {
	Kind() Kind
	Is(Kind) bool
	Typename() string
	Position() srcpos.Pos
	Arity() int
	Children() []Node
	Copy() Node
	Clone() Node
	Render(w io.Writer, r Renderer) error
	Freeze() Node
	Thaw() Node

	refcounted
}

// refcounted is the bit of Node machinery Use/Dispose need but that has no
// business being public API: every concrete kind gets it for free by
// embedding base.
type refcounted interface {
	incref() int32
	decref() int32
	isFrozen() bool
	setFrozen(bool)
}

// base is embedded (directly or via Blob) by every concrete kind. It
// supplies the refcount and position every node carries, plus the default
// Arity/Children bodies; the generic COPY/FREEZE/THAW/RENDER behavior the
// original's base tree_handler implemented lives in the helper functions
// below, which each kind's own methods call.
type base struct {
	kind     Kind
	pos      srcpos.Pos
	refcount int32
	frozen   bool
}

func newBase(kind Kind, pos srcpos.Pos) base {
	return base{kind: kind, pos: pos, refcount: 1}
}

func (t *base) Kind() Kind            { return t.kind }
func (t *base) Position() srcpos.Pos  { return t.pos }
func (t *base) Is(k Kind) bool        { return k == t.kind }
func (t *base) Arity() int            { return 0 }
func (t *base) Children() []Node      { return nil }
func (t *base) incref() int32         { t.refcount++; return t.refcount }
func (t *base) decref() int32         { t.refcount--; return t.refcount }
func (t *base) isFrozen() bool        { return t.frozen }
func (t *base) setFrozen(frozen bool) { t.frozen = frozen }

// Use bumps n's refcount and returns it, for storing a second strong
// reference into another structure. Mirrors the original's use(node).
func Use(n Node) Node {
	if n == nil {
		return nil
	}
	n.incref()
	return n
}

// Dispose drops one strong reference from *holder, recursively disposing
// children once the count reaches zero, and always nulls the holder — the
// Go analogue of dispose(&node) taking a reference-to-reference so a freed
// pointer can never be read back out of it.
func Dispose(holder *Node) {
	if holder == nil || *holder == nil {
		return
	}
	n := *holder
	*holder = nil
	if n.decref() > 0 {
		return
	}
	for _, child := range n.Children() {
		c := child
		Dispose(&c)
	}
}

// Cast reports whether n's kind chain includes k, mirroring the original's
// cast(node, handler): a Text can be cast to Blob because Text's handler
// falls through to the blob handler, even though its own kind is "text".
func Cast(n Node, k Kind) (Node, bool) {
	if n != nil && n.Is(k) {
		return n, true
	}
	return nil, false
}

// copyRef is the generic COPY behavior every kind shares: bump the
// refcount and hand back the same node. Concrete kinds implement their
// Copy() method as `return copyRef(n)` since Go embedding can't return the
// embedding type from a promoted base method.
func copyRef(n Node) Node {
	return Use(n)
}

// freezeDeep is the generic FREEZE behavior: latch the node, and for
// interior nodes, every child too.
func freezeDeep(n Node) Node {
	n.setFrozen(true)
	for _, c := range n.Children() {
		c.Freeze()
	}
	return n
}

// thawCopy is the generic THAW behavior: an unfrozen node is returned as
// is; a frozen one is cloned so the caller gets a mutable copy without
// disturbing whoever else still holds the frozen original.
func thawCopy(n Node) Node {
	if !n.isFrozen() {
		return n
	}
	return n.Clone()
}

// renderDelegate is the generic RENDER behavior: a kind with nothing
// special to say about its own rendering hands the job to the renderer.
func renderDelegate(w io.Writer, r Renderer, n Node) error {
	return r.WriteNode(w, n)
}
