package scanner

import (
	"github.com/nyxlang/nyxc/internal/exc"
	"github.com/nyxlang/nyxc/internal/srcpos"
	"github.com/nyxlang/nyxc/internal/tree"
)

var baseDigitValue [0x100]byte
var base64DigitValue [0x100]byte

func init() {
	for i := range baseDigitValue {
		baseDigitValue[i] = 0xFF
		base64DigitValue[i] = 0xFF
	}
	for c := byte('0'); c <= '9'; c++ {
		baseDigitValue[c] = c - '0'
	}
	for c := byte('A'); c <= 'Z'; c++ {
		baseDigitValue[c] = c - 'A' + 10
	}
	for c := byte('a'); c <= 'z'; c++ {
		baseDigitValue[c] = c - 'a' + 10
	}
	for c := byte('A'); c <= 'Z'; c++ {
		base64DigitValue[c] = c - 'A'
	}
	for c := byte('a'); c <= 'z'; c++ {
		base64DigitValue[c] = c - 'a' + 26
	}
	for c := byte('0'); c <= '9'; c++ {
		base64DigitValue[c] = c - '0' + 52
	}
	base64DigitValue['+'] = 62
	base64DigitValue['/'] = 63
}

func digitAt(table *[0x100]byte, c int) int {
	if c < 0 || c > 0xFF {
		return 0xFF
	}
	return int(table[c])
}

// powInt computes base^exponent by squaring, matching the original's
// logarithmic-time exponentiation for the scanner's "e"/"E" suffix.
func powInt(base uint64, exponent int) uint64 {
	result := uint64(1)
	multiplier := base
	for exponent != 0 {
		if exponent&1 != 0 {
			result *= multiplier
		}
		exponent >>= 1
		multiplier *= multiplier
	}
	return result
}

func powFloat(base float64, exponent int) float64 {
	result := 1.0
	multiplier := base
	for exponent != 0 {
		if exponent&1 != 0 {
			result *= multiplier
		}
		exponent >>= 1
		multiplier *= multiplier
	}
	return result
}

// scanNumberOrBlob implements spec.md §4.6: based integers/reals (base
// 2..36, or 64 via the base64 alphabet) and $-delimited blobs that pack
// digits MSB-first into 8-bit or 24-bit chunks. isBlob is true when the
// leading '$' has already been consumed by the caller.
func (s *Scanner) scanNumberOrBlob(pos srcpos.Pos, isBlob bool) Token {
	base := 10
	blobBase := 16
	var naturalValue uint64
	floatingPoint := false
	var blobChunk uint32
	var blobBits uint
	blobDigbits := uint(4)
	blobMaxbits := uint(8)
	digitTable := &baseDigitValue
	var blobData []byte

	flushBlobChunk := func() {
		if blobMaxbits == 8 {
			blobData = append(blobData, byte(blobChunk))
		} else {
			blobData = append(blobData, byte(blobChunk>>16), byte(blobChunk>>8), byte(blobChunk))
		}
	}

	c := s.peek(0)
	basedNumber := false
	for {
		for {
			dv := digitAt(digitTable, c)
			if !(dv < base || (isBlob && dv < blobBase)) {
				break
			}
			naturalValue = uint64(base)*naturalValue + uint64(dv)
			if isBlob {
				blobChunk = (blobChunk << blobDigbits) | uint32(dv)
				blobBits += blobDigbits
				if blobBits >= blobMaxbits {
					flushBlobChunk()
					blobChunk = 0
					blobBits = 0
				}
			}
			c = s.nextchar(true)
			if c == '_' {
				c = s.nextchar(true)
				if c == '_' {
					s.errorf(pos, exc.CodeUglyUnderscore, "two '_' characters in a row look ugly")
				}
			}
			if isBlob {
				for c != eof && isSpaceByte(c) {
					c = s.nextchar(false)
				}
			}
		}

		if c == '#' && !basedNumber {
			base = int(naturalValue)
			blobBase = base
			switch {
			case base == 64:
				digitTable = &base64DigitValue
			case base < 2 || base > 36:
				bad := base
				base = 36
				if s.errorf(pos, exc.CodeBadBase, "the base %d is not valid, not in 2..36", bad) {
					s.hadSpaceAfter = isSpaceByte(c)
					return Token{Kind: ERROR, Pos: pos, Spelling: s.source.String()}
				}
				if isBlob {
					blobDigbits, blobMaxbits = 4, 8
				}
			case isBlob:
				blobData = blobData[:0]
				blobBits, blobChunk = 0, 0
				switch base {
				case 2:
					blobDigbits = 1
				case 4:
					blobDigbits = 2
				case 8:
					blobDigbits, blobMaxbits = 3, 24
				case 16:
					blobDigbits = 4
				case 64:
					blobDigbits, blobMaxbits = 6, 24
				default:
					if s.errorf(pos, exc.CodeBadBlobBase, "base %d is invalid for a blob", base) {
						s.hadSpaceAfter = isSpaceByte(c)
						return Token{Kind: ERROR, Pos: pos, Spelling: s.source.String()}
					}
					blobDigbits, blobMaxbits = 4, 8
				}
			}
			c = s.nextchar(true)
			naturalValue = 0
			basedNumber = true
		} else {
			basedNumber = false
		}
		if !basedNumber {
			break
		}
	}
	realValue := float64(naturalValue)

	if isBlob {
		if blobBase == 64 && c == '=' {
			c = s.nextchar(true)
		}
		if c == '$' {
			c = s.nextchar(true)
		}
		if blobBits > 0 {
			for blobBits < blobMaxbits {
				blobChunk <<= blobDigbits
				blobBits += blobDigbits
			}
			flushBlobChunk()
		}
		s.scanned = tree.NewBlob(pos, blobData)
		return Token{Kind: BLOB, Pos: pos, Spelling: s.source.String()}
	}

	if c == '.' {
		// Two bytes of lookahead settle "1.5" vs "1..3" without ever
		// consuming the '.' speculatively.
		if digitAt(digitTable, s.peek(1)) >= base {
			s.scanned = tree.NewNatural(pos, naturalValue)
			s.hadSpaceAfter = false
			return Token{Kind: INTEGER, Pos: pos, Spelling: s.source.String()}
		}
		floatingPoint = true
		c = s.nextchar(true)
		commaPosition := 1.0
		for digitAt(digitTable, c) < base {
			commaPosition /= float64(base)
			realValue += commaPosition * float64(digitAt(digitTable, c))
			c = s.nextchar(true)
			if c == '_' {
				c = s.nextchar(true)
				if c == '_' {
					s.errorf(pos, exc.CodeUglyUnderscore, "two '_' characters in a row look ugly")
				}
			}
		}
	}

	if c == '#' {
		c = s.nextchar(true)
	}

	if c == 'e' || c == 'E' {
		c = s.nextchar(true)
		exponent := 0
		negativeExponent := false
		switch c {
		case '+':
			c = s.nextchar(true)
		case '-':
			c = s.nextchar(true)
			negativeExponent = true
			floatingPoint = true
		}
		for digitAt(&baseDigitValue, c) < 10 {
			exponent = 10*exponent + digitAt(&baseDigitValue, c)
			c = s.nextchar(true)
			if c == '_' {
				c = s.nextchar(true)
			}
		}
		if floatingPoint {
			exponentValue := powFloat(float64(base), exponent)
			if negativeExponent {
				realValue /= exponentValue
			} else {
				realValue *= exponentValue
			}
		} else {
			naturalValue *= powInt(uint64(base), exponent)
		}
	}

	s.hadSpaceAfter = isSpaceByte(c)
	if floatingPoint {
		s.scanned = tree.NewReal(pos, realValue)
		return Token{Kind: REAL, Pos: pos, Spelling: s.source.String()}
	}
	s.scanned = tree.NewNatural(pos, naturalValue)
	return Token{Kind: INTEGER, Pos: pos, Spelling: s.source.String()}
}
