package scanner

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nyxlang/nyxc/internal/exc"
	"github.com/nyxlang/nyxc/internal/srcpos"
	"github.com/nyxlang/nyxc/internal/tree"
)

func newTestScanner(t *testing.T, src string, opts ...Option) *Scanner {
	t.Helper()
	positions := srcpos.NewRegistry()
	return New(context.Background(), positions, "test.ny", strings.NewReader(src), opts...)
}

func TestScannerIndentationTracksBlocks(t *testing.T) {
	s := newTestScanner(t, "foo\n  bar\nbaz\n")

	require.Equal(t, NAME, s.Read().Kind)
	require.Equal(t, "foo", string(s.Scanned().(*tree.Name).Data()))

	require.Equal(t, INDENT, s.Read().Kind)

	require.Equal(t, NAME, s.Read().Kind)
	require.Equal(t, "bar", string(s.Scanned().(*tree.Name).Data()))

	require.Equal(t, UNINDENT, s.Read().Kind)

	require.Equal(t, NAME, s.Read().Kind)
	require.Equal(t, "baz", string(s.Scanned().(*tree.Name).Data()))

	require.Equal(t, NEWLINE, s.Read().Kind)
	require.Equal(t, EOF, s.Read().Kind)
}

func TestScannerMixedIndentReportsError(t *testing.T) {
	var out bytes.Buffer
	positions := srcpos.NewRegistry()
	sink := exc.NewSink(positions, &out)
	s := New(context.Background(), positions, "test.ny", strings.NewReader("a\n\t  b\n"), WithSink(sink))

	require.Equal(t, NAME, s.Read().Kind)
	s.Read() // the indent/mixed-whitespace line
	require.Contains(t, out.String(), "mixed tabs and spaces in indentation")
}

func TestScannerBasedInteger(t *testing.T) {
	s := newTestScanner(t, "16#FF")
	tok := s.Read()
	require.Equal(t, INTEGER, tok.Kind)
	require.Equal(t, uint64(255), s.Scanned().(*tree.Natural).Value)
}

func TestScannerBinaryIntegerWithUnderscore(t *testing.T) {
	s := newTestScanner(t, "2#1_0000_0000")
	tok := s.Read()
	require.Equal(t, INTEGER, tok.Kind)
	require.Equal(t, uint64(256), s.Scanned().(*tree.Natural).Value)
}

func TestScannerBlobFromHex(t *testing.T) {
	s := newTestScanner(t, "$16#DEAD_BEEF$")
	tok := s.Read()
	require.Equal(t, BLOB, tok.Kind)
	require.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, s.Scanned().(*tree.Blob).Data())
}

func TestScannerRealWithNegativeExponent(t *testing.T) {
	s := newTestScanner(t, "1.5e-2")
	tok := s.Read()
	require.Equal(t, REAL, tok.Kind)
	require.InDelta(t, 0.015, s.Scanned().(*tree.Real).Value, 1e-12)
}

func TestScannerDotDotIsNotADecimalPoint(t *testing.T) {
	s := newTestScanner(t, "1..3")

	tok := s.Read()
	require.Equal(t, INTEGER, tok.Kind)
	require.Equal(t, uint64(1), s.Scanned().(*tree.Natural).Value)

	tok = s.Read()
	require.Equal(t, SYMBOL, tok.Kind)
	require.Equal(t, "..", tok.Spelling)

	tok = s.Read()
	require.Equal(t, INTEGER, tok.Kind)
	require.Equal(t, uint64(3), s.Scanned().(*tree.Natural).Value)
}

func TestScannerSingleCharacterLiteral(t *testing.T) {
	s := newTestScanner(t, "'a'")
	tok := s.Read()
	require.Equal(t, CHARACTER, tok.Kind)
	require.Equal(t, 'a', s.Scanned().(*tree.Character).Value)
}

func TestScannerMultiCharacterLiteralReportsError(t *testing.T) {
	var out bytes.Buffer
	positions := srcpos.NewRegistry()
	sink := exc.NewSink(positions, &out)
	s := New(context.Background(), positions, "test.ny", strings.NewReader("'ab'"), WithSink(sink))

	tok := s.Read()
	require.Equal(t, CHARACTER, tok.Kind)
	require.Contains(t, out.String(), "should contain one character")
}

func TestScannerDoubledQuoteEscapesIntoText(t *testing.T) {
	s := newTestScanner(t, `"he said ""hi"""`)
	tok := s.Read()
	require.Equal(t, TEXT, tok.Kind)
	require.Equal(t, `he said "hi"`, s.Scanned().(*tree.Text).String())
}

func TestScannerUnterminatedTextReportsError(t *testing.T) {
	var out bytes.Buffer
	positions := srcpos.NewRegistry()
	sink := exc.NewSink(positions, &out)
	s := New(context.Background(), positions, "test.ny", strings.NewReader(`"abc`), WithSink(sink))

	tok := s.Read()
	require.Equal(t, TEXT, tok.Kind)
	require.Contains(t, out.String(), "end of input in the middle of a text")
}

func TestScannerNameAcceptsUnicodeLetters(t *testing.T) {
	s := newTestScanner(t, "café x")

	tok := s.Read()
	require.Equal(t, NAME, tok.Kind)
	require.Equal(t, "café", string(s.Scanned().(*tree.Name).Data()))

	tok = s.Read()
	require.Equal(t, NAME, tok.Kind)
	require.Equal(t, "x", string(s.Scanned().(*tree.Name).Data()))
}

func TestScannerRejectsNonLetterMultiByteRuneAsNameStart(t *testing.T) {
	var out bytes.Buffer
	positions := srcpos.NewRegistry()
	sink := exc.NewSink(positions, &out)
	s := New(context.Background(), positions, "test.ny", strings.NewReader("\U0001F600"), WithSink(sink))

	tok := s.Read()
	require.Equal(t, ERROR, tok.Kind)
	require.Contains(t, out.String(), "unexpected byte 0xf0")
}

func TestScannerBadBaseAbortsLiteral(t *testing.T) {
	var out bytes.Buffer
	positions := srcpos.NewRegistry()
	sink := exc.NewSink(positions, &out)
	s := New(context.Background(), positions, "test.ny", strings.NewReader("99#1"), WithSink(sink))

	tok := s.Read()
	require.Equal(t, ERROR, tok.Kind)
	require.Contains(t, out.String(), "the base 99 is not valid")
}

func TestScannerParenSuppressesIndentTracking(t *testing.T) {
	s := newTestScanner(t, "(\n  x\n)")

	tok := s.Read()
	require.Equal(t, SYMBOL, tok.Kind)
	require.Equal(t, "(", tok.Spelling)

	saved := s.OpenParenthese()
	require.Equal(t, NEWLINE, s.Read().Kind)
	require.Equal(t, NAME, s.Read().Kind)
	require.Equal(t, NEWLINE, s.Read().Kind)

	tok = s.Read()
	require.Equal(t, SYMBOL, tok.Kind)
	require.Equal(t, ")", tok.Spelling)
	s.CloseParenthese(saved)

	require.Equal(t, EOF, s.Read().Kind)
}
