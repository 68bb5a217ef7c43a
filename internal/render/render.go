// Package render provides the one concrete implementation of
// tree.Renderer this repository ships: a minimal textual writer that
// satisfies the "delegate to the surrounding renderer" contract every
// node's default RENDER behavior falls through to.
package render

import (
	"fmt"
	"io"

	"github.com/nyxlang/nyxc/internal/tree"
)

// Textual is a tree.Renderer that writes a node's typename in angle
// brackets for anything it has no more specific opinion about. Leaf and
// structural kinds mostly render themselves directly (see each Node's own
// Render method); Textual exists for the base-tree fallback case, and for
// any future kind that doesn't override Render.
type Textual struct{}

func (Textual) WriteNode(w io.Writer, n tree.Node) error {
	_, err := fmt.Fprintf(w, "<%s>", n.Typename())
	return err
}
