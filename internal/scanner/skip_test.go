package scanner

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nyxlang/nyxc/internal/srcpos"
	"github.com/nyxlang/nyxc/internal/tree"
)

func TestScannerSkipReadsUntilClosingMarker(t *testing.T) {
	positions := srcpos.NewRegistry()
	s := New(context.Background(), positions, "test.ny", strings.NewReader(" hello world*/trailing"))

	closing := tree.NewName(positions.Next(), []byte("*/"))
	text, err := s.Skip(closing)
	require.NoError(t, err)
	require.Equal(t, " hello world", text.String())

	tok := s.Read()
	require.Equal(t, NAME, tok.Kind)
	require.Equal(t, "trailing", string(s.Scanned().(*tree.Name).Data()))
}

func TestScannerSkipHandlesOverlappingMarker(t *testing.T) {
	positions := srcpos.NewRegistry()
	s := New(context.Background(), positions, "test.ny", strings.NewReader("a**/"))

	closing := tree.NewName(positions.Next(), []byte("*/"))
	text, err := s.Skip(closing)
	require.NoError(t, err)
	require.Equal(t, "a*", text.String())
}
