package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nyxlang/nyxc/internal/tree"
)

func TestTextualWriteNodeFallback(t *testing.T) {
	var buf bytes.Buffer
	blob := tree.NewBlob(1, []byte{0x01, 0x02})
	require.NoError(t, blob.Render(&buf, Textual{}))
	require.Equal(t, "<blob>", buf.String())
}
