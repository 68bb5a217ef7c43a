package tree

import (
	"fmt"
	"io"

	"github.com/nyxlang/nyxc/internal/srcpos"
)

// Natural is an unsigned integer leaf, the value behind an INTEGER token.
type Natural struct {
	base
	Value uint64
}

func NewNatural(pos srcpos.Pos, value uint64) *Natural {
	return &Natural{base: newBase(KindNatural, pos), Value: value}
}

func (n *Natural) Typename() string { return "natural" }
func (n *Natural) Copy() Node       { return copyRef(n) }
func (n *Natural) Clone() Node      { return NewNatural(n.pos, n.Value) }
func (n *Natural) Freeze() Node     { return freezeDeep(n) }
func (n *Natural) Thaw() Node       { return thawCopy(n) }
func (n *Natural) Render(w io.Writer, r Renderer) error {
	_, err := fmt.Fprintf(w, "%d", n.Value)
	return err
}

// Real is a floating-point leaf, the value behind a REAL token.
type Real struct {
	base
	Value float64
}

func NewReal(pos srcpos.Pos, value float64) *Real {
	return &Real{base: newBase(KindReal, pos), Value: value}
}

func (r *Real) Typename() string { return "real" }
func (r *Real) Copy() Node       { return copyRef(r) }
func (r *Real) Clone() Node      { return NewReal(r.pos, r.Value) }
func (r *Real) Freeze() Node     { return freezeDeep(r) }
func (r *Real) Thaw() Node       { return thawCopy(r) }
func (r *Real) Render(w io.Writer, ren Renderer) error {
	_, err := fmt.Fprintf(w, "%g", r.Value)
	return err
}

// Character is a single Unicode scalar value leaf, the value behind a
// CHARACTER token.
type Character struct {
	base
	Value rune
}

func NewCharacter(pos srcpos.Pos, value rune) *Character {
	return &Character{base: newBase(KindCharacter, pos), Value: value}
}

func (c *Character) Typename() string { return "character" }
func (c *Character) Copy() Node       { return copyRef(c) }
func (c *Character) Clone() Node      { return NewCharacter(c.pos, c.Value) }
func (c *Character) Freeze() Node     { return freezeDeep(c) }
func (c *Character) Thaw() Node       { return thawCopy(c) }
func (c *Character) Render(w io.Writer, r Renderer) error {
	_, err := fmt.Fprintf(w, "%c", c.Value)
	return err
}
