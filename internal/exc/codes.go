package exc

// General-purpose codes, carried over from the teacher's own taxonomy where
// they still apply to a scanner/tree front-end rather than a full compiler.
const (
	CodeUnknownFatal     = "X0000"
	CodeFileNotFound     = "X0001"
	CodePermissionDenied = "X0002"
	CodeUnexpectedEOF    = "X0003"
	CodeInvalidNumber    = "X0004"
)

// Lexical-core codes, grounded on the diagnostics original_source/scanner.c
// actually raises (mixed indentation, unindent that doesn't match an open
// level, bad number/blob bases, underscore placement, unterminated
// literals, and overlong character literals).
const (
	CodeMixedIndent        = "L0100"
	CodeUnindentMisalign   = "L0101"
	CodeBadBase            = "L0102"
	CodeBadBlobBase        = "L0103"
	CodeUglyUnderscore     = "L0104"
	CodeEOFInLiteral       = "L0105"
	CodeMultiCharCharacter = "L0106"
)

const (
	CodeEOF = "_EOF_"
)

var (
	defaultNonFatal = map[string]bool{
		CodeUglyUnderscore: true,
		CodeBadBlobBase:    true,
	}
)

// IsFatal reports whether code should abort whatever literal or construct
// is being scanned rather than being recorded and skipped over. Callers
// that can usefully recover from a diagnostic (the scanner, mid-literal)
// use this to decide whether to keep going or bail out with an ERROR
// token; it is the fatal/non-fatal split the teacher's exc.Reporter used
// to make, without needing a separate accumulator type to make it.
func IsFatal(code string) bool {
	return !defaultNonFatal[code]
}
