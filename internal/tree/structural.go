package tree

import (
	"io"

	"github.com/nyxlang/nyxc/internal/srcpos"
)

// Prefix is a two-child interior node (e.g. unary "-x", or a name applied
// to an argument). Grounded on the original's infix_handler, which serves
// as the common shape for prefix/postfix/infix alike.
type Prefix struct {
	base
	Left, Right Node
}

func NewPrefix(pos srcpos.Pos, left, right Node) *Prefix {
	return &Prefix{base: newBase(KindPrefix, pos), Left: Use(left), Right: Use(right)}
}

func (p *Prefix) Typename() string { return "prefix" }
func (p *Prefix) Arity() int       { return 2 }
func (p *Prefix) Children() []Node { return []Node{p.Left, p.Right} }
func (p *Prefix) Copy() Node       { return copyRef(p) }
func (p *Prefix) Clone() Node {
	return &Prefix{base: newBase(KindPrefix, p.pos), Left: p.Left.Clone(), Right: p.Right.Clone()}
}
func (p *Prefix) Freeze() Node { return freezeDeep(p) }
func (p *Prefix) Thaw() Node   { return thawCopy(p) }
func (p *Prefix) Render(w io.Writer, r Renderer) error {
	if err := p.Left.Render(w, r); err != nil {
		return err
	}
	return p.Right.Render(w, r)
}

// Postfix is a two-child interior node (e.g. "x!").
type Postfix struct {
	base
	Left, Right Node
}

func NewPostfix(pos srcpos.Pos, left, right Node) *Postfix {
	return &Postfix{base: newBase(KindPostfix, pos), Left: Use(left), Right: Use(right)}
}

func (p *Postfix) Typename() string { return "postfix" }
func (p *Postfix) Arity() int       { return 2 }
func (p *Postfix) Children() []Node { return []Node{p.Left, p.Right} }
func (p *Postfix) Copy() Node       { return copyRef(p) }
func (p *Postfix) Clone() Node {
	return &Postfix{base: newBase(KindPostfix, p.pos), Left: p.Left.Clone(), Right: p.Right.Clone()}
}
func (p *Postfix) Freeze() Node { return freezeDeep(p) }
func (p *Postfix) Thaw() Node   { return thawCopy(p) }
func (p *Postfix) Render(w io.Writer, r Renderer) error {
	if err := p.Left.Render(w, r); err != nil {
		return err
	}
	return p.Right.Render(w, r)
}

// Infix is a three-child interior node: left opcode right (e.g. "a + b").
type Infix struct {
	base
	Opcode      *Text
	Left, Right Node
}

// NewInfix requires a non-empty opcode, per the §3 invariant.
func NewInfix(pos srcpos.Pos, opcode *Text, left, right Node) *Infix {
	if opcode == nil || opcode.Len() == 0 {
		panic("tree: infix opcode must be non-empty")
	}
	return &Infix{
		base:  newBase(KindInfix, pos),
		Opcode: Use(opcode).(*Text),
		Left:  Use(left),
		Right: Use(right),
	}
}

func (i *Infix) Typename() string { return "infix" }
func (i *Infix) Arity() int       { return 3 }
func (i *Infix) Children() []Node { return []Node{i.Left, i.Opcode, i.Right} }
func (i *Infix) Copy() Node       { return copyRef(i) }
func (i *Infix) Clone() Node {
	return &Infix{
		base:   newBase(KindInfix, i.pos),
		Opcode: i.Opcode.Clone().(*Text),
		Left:   i.Left.Clone(),
		Right:  i.Right.Clone(),
	}
}
func (i *Infix) Freeze() Node { return freezeDeep(i) }
func (i *Infix) Thaw() Node   { return thawCopy(i) }
func (i *Infix) Render(w io.Writer, r Renderer) error {
	if err := i.Left.Render(w, r); err != nil {
		return err
	}
	if err := i.Opcode.Render(w, r); err != nil {
		return err
	}
	return i.Right.Render(w, r)
}

// Block is a three-child interior node: a single child bracketed by a
// matched opening/closing name pair (e.g. "(x)" or an indentation block).
type Block struct {
	base
	Child           Node
	Opening, Closing *Name
}

func NewBlock(pos srcpos.Pos, child Node, opening, closing *Name) *Block {
	return &Block{
		base:    newBase(KindBlock, pos),
		Child:   Use(child),
		Opening: Use(opening).(*Name),
		Closing: Use(closing).(*Name),
	}
}

func (b *Block) Typename() string { return "block" }
func (b *Block) Arity() int       { return 3 }
func (b *Block) Children() []Node { return []Node{b.Child, b.Opening, b.Closing} }
func (b *Block) Copy() Node       { return copyRef(b) }
func (b *Block) Clone() Node {
	return &Block{
		base:    newBase(KindBlock, b.pos),
		Child:   b.Child.Clone(),
		Opening: b.Opening.Clone().(*Name),
		Closing: b.Closing.Clone().(*Name),
	}
}
func (b *Block) Freeze() Node { return freezeDeep(b) }
func (b *Block) Thaw() Node   { return thawCopy(b) }
func (b *Block) Render(w io.Writer, r Renderer) error {
	if err := b.Opening.Render(w, r); err != nil {
		return err
	}
	if err := b.Child.Render(w, r); err != nil {
		return err
	}
	return b.Closing.Render(w, r)
}

// DelimitedText is a three-child interior node: a text value bracketed by
// an opening/closing name pair (e.g. a quoted string's delimiters kept
// alongside its content, or a block comment's fences). Grounded directly
// on the original's delimited_text_handler.
type DelimitedText struct {
	base
	Value            *Text
	Opening, Closing *Name
}

func NewDelimitedText(pos srcpos.Pos, value *Text, opening, closing *Name) *DelimitedText {
	return &DelimitedText{
		base:    newBase(KindDelimitedText, pos),
		Value:   Use(value).(*Text),
		Opening: Use(opening).(*Name),
		Closing: Use(closing).(*Name),
	}
}

func (d *DelimitedText) Typename() string { return "delimited_text" }
func (d *DelimitedText) Arity() int       { return 3 }
func (d *DelimitedText) Children() []Node { return []Node{d.Value, d.Opening, d.Closing} }
func (d *DelimitedText) Copy() Node       { return copyRef(d) }
func (d *DelimitedText) Clone() Node {
	return &DelimitedText{
		base:    newBase(KindDelimitedText, d.pos),
		Value:   d.Value.Clone().(*Text),
		Opening: d.Opening.Clone().(*Name),
		Closing: d.Closing.Clone().(*Name),
	}
}
func (d *DelimitedText) Freeze() Node { return freezeDeep(d) }
func (d *DelimitedText) Thaw() Node   { return thawCopy(d) }
func (d *DelimitedText) Render(w io.Writer, r Renderer) error {
	if err := d.Opening.Render(w, r); err != nil {
		return err
	}
	if err := d.Value.Render(w, r); err != nil {
		return err
	}
	return d.Closing.Render(w, r)
}
