package exc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nyxlang/nyxc/internal/srcpos"
)

func newTestSink(t *testing.T, src string) (*Sink, *srcpos.Registry, *bytes.Buffer) {
	t.Helper()
	positions := srcpos.NewRegistry()
	positions.OpenSourceFile("test.ny")
	positions.Feed("test.ny", []byte(src))
	var out bytes.Buffer
	return NewSink(positions, &out), positions, &out
}

func TestSinkErrorfDisplaysImmediatelyWithoutSave(t *testing.T) {
	sink, positions, out := newTestSink(t, "abc\n")
	sink.Errorf("test.ny", positions.Next(), CodeUnknownFatal, "boom %d", 1)

	require.Contains(t, out.String(), "test.ny:")
	require.Contains(t, out.String(), "boom 1")
	require.Empty(t, sink.Reported())
}

func TestSinkSaveBuffersInsteadOfDisplaying(t *testing.T) {
	sink, positions, out := newTestSink(t, "abc\n")
	prev := sink.Save()
	sink.Errorf("test.ny", positions.Next(), CodeUnknownFatal, "buffered")

	require.Empty(t, out.String())
	require.Len(t, sink.Reported(), 1)
	require.Equal(t, "buffered", sink.Reported()[0].Message())

	sink.Clear(prev)
	require.Empty(t, sink.Reported())
	require.Empty(t, out.String())
}

func TestSinkCommitWithNoOuterBufferDisplays(t *testing.T) {
	sink, positions, out := newTestSink(t, "abc\n")
	prev := sink.Save()
	sink.Errorf("test.ny", positions.Next(), CodeUnknownFatal, "deferred")
	require.Empty(t, out.String())

	sink.Commit(prev)
	require.Contains(t, out.String(), "deferred")
	require.Empty(t, sink.Reported())
}

func TestSinkCommitWithOuterBufferAppends(t *testing.T) {
	sink, positions, out := newTestSink(t, "abc\n")
	outer := sink.Save()
	sink.Errorf("test.ny", positions.Next(), CodeUnknownFatal, "outer error")

	inner := sink.Save()
	sink.Errorf("test.ny", positions.Next(), CodeUnknownFatal, "inner error")
	sink.Commit(inner)

	require.Empty(t, out.String())
	messages := make([]string, 0, 2)
	for _, e := range sink.Reported() {
		messages = append(messages, e.Message())
	}
	require.ElementsMatch(t, []string{"outer error", "inner error"}, messages)

	sink.Commit(outer)
	require.Contains(t, out.String(), "outer error")
	require.Contains(t, out.String(), "inner error")
}

func TestSinkDisplayIncludesSourceLineAndCaret(t *testing.T) {
	sink, positions, out := newTestSink(t, "let x = 1\n")
	pos := positions.Next()
	sink.Errorf("test.ny", pos, CodeUnknownFatal, "bad token")

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "test.ny:1:")
	require.Equal(t, "  let x = 1", lines[1])
	require.Contains(t, lines[2], "^")
}

func TestSinkSessionIsStableAndUnique(t *testing.T) {
	sinkA, _, _ := newTestSink(t, "a\n")
	sinkB, _, _ := newTestSink(t, "b\n")

	require.Equal(t, sinkA.Session(), sinkA.Session())
	require.NotEqual(t, sinkA.Session(), sinkB.Session())
}
