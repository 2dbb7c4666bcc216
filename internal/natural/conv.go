// This file implements conversion between Naturals and radix strings.

package natural

import (
	"fmt"
	"strings"

	apperrors "github.com/agbru/exactsum/internal/errors"
)

const (
	// MinRadix and MaxRadix bound the bases accepted by Parse and Text.
	MinRadix = 2
	MaxRadix = 36

	// DefaultRadix is the base of String and of Parse with radix 0.
	DefaultRadix = 16
)

// bitsPerDigit[r] is an upper estimate of log2(r) * 1024, used to size
// the word buffer before parsing.
var bitsPerDigit = [MaxRadix + 1]uint64{
	0, 0, 1024, 1624, 2048, 2378, 2648, 2875, 3072, 3247, 3402, 3543, 3672,
	3790, 3899, 4001, 4096, 4186, 4271, 4350, 4426, 4498, 4567, 4633,
	4696, 4756, 4814, 4870, 4923, 4975, 5025, 5074, 5120, 5166, 5210,
	5253, 5295,
}

// digitsPerWord[r] is the number of base-r digits that always fit in a
// word without overflowing a signed 32-bit intermediate.
var digitsPerWord = [MaxRadix + 1]int{
	0, 0, 30, 19, 15, 13, 11, 11, 10, 9, 9, 8, 8, 8, 8, 7, 7, 7, 7, 7, 7, 7, 6, 6, 6, 6,
	6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 5,
}

// wordRadix[r] is r^digitsPerWord[r], the base a digit group is packed in.
var wordRadix = [MaxRadix + 1]uint32{
	0, 0, 0x40000000, 0x4546b3db, 0x40000000, 0x48c27395, 0x159fd800,
	0x75db9c97, 0x40000000, 0x17179149, 0x3b9aca00, 0xcc6db61, 0x19a10000,
	0x309f1021, 0x57f6c100, 0xa2f1b6f, 0x10000000, 0x18754571, 0x247dbc80,
	0x3547667b, 0x4c4b4000, 0x6b5a6e1d, 0x6c20a40, 0x8d2d931, 0xb640000,
	0xe8d4a51, 0x1269ae40, 0x17179149, 0x1cb91000, 0x23744899, 0x2b73a840,
	0x34e63b41, 0x40000000, 0x4cfa3cc1, 0x5c13d840, 0x6d91b519, 0x39aa400,
}

// digitValue returns the value of c as a digit, or MaxRadix+1 when c is
// not a digit in any supported radix.
func digitValue(c byte) uint32 {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0')
	case 'a' <= c && c <= 'z':
		return uint32(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return uint32(c-'A') + 10
	}
	return MaxRadix + 1
}

// Parse converts s, written in the given radix, into a Natural. A radix
// of 0 selects DefaultRadix. A leading '+' is accepted; a leading '-'
// is a precondition error since the result would not be a Natural. Any
// other character that is not a digit of the radix makes the whole parse
// fail with a ParseError.
func Parse(s string, radix int) (Natural, error) {
	if radix == 0 {
		radix = DefaultRadix
	}
	if radix < MinRadix || radix > MaxRadix {
		return Natural{}, apperrors.ParseError{Input: s, Radix: radix, Offset: -1, Reason: "radix out of range"}
	}
	cursor := 0
	if len(s) > 0 {
		switch s[0] {
		case '+':
			cursor = 1
		case '-':
			return Natural{}, apperrors.PreconditionError{Op: "natural.Parse", Reason: "negative value " + quote(s)}
		}
	}
	if cursor == len(s) {
		return Natural{}, apperrors.ParseError{Input: s, Radix: radix, Offset: -1, Reason: "zero-length numeral"}
	}
	for i := cursor; i < len(s); i++ {
		if digitValue(s[i]) >= uint32(radix) {
			return Natural{}, apperrors.ParseError{Input: s, Radix: radix, Offset: i, Reason: "illegal digit"}
		}
	}

	for cursor < len(s) && digitValue(s[cursor]) == 0 {
		cursor++
	}
	if cursor == len(s) {
		return Natural{}, nil
	}
	numDigits := len(s) - cursor
	if numDigits <= 2 {
		if v := parseGroup(s[cursor:], radix); v < uint32(len(smallNaturals)) {
			return smallNaturals[v], nil
		}
	}

	numBits := (uint64(numDigits)*bitsPerDigit[radix])>>10 + 1
	z := make(nat, (numBits+_W-1)/_W)

	// The first group absorbs the digits that do not fill a whole group.
	per := digitsPerWord[radix]
	first := numDigits % per
	if first == 0 {
		first = per
	}
	z[0] = parseGroup(s[cursor:cursor+first], radix)
	n := 1
	cursor += first

	superRadix := wordRadix[radix]
	for cursor < len(s) {
		g := parseGroup(s[cursor:cursor+per], radix)
		cursor += per
		c := mulAddVWW(z[:n], z[:n], superRadix, g)
		if c != 0 {
			z[n] = c
			n++
		}
	}
	return Natural{z[:n].norm()}, nil
}

// MustParse is like Parse but panics on error. It is intended for
// constants in tests and tables.
func MustParse(s string, radix int) Natural {
	x, err := Parse(s, radix)
	if err != nil {
		panic(err)
	}
	return x
}

// parseGroup converts a run of already validated digits that fits in a
// word.
func parseGroup(s string, radix int) uint32 {
	var v uint32
	for i := 0; i < len(s); i++ {
		v = v*uint32(radix) + digitValue(s[i])
	}
	return v
}

// Text returns x in the given radix using lower-case letters for digits
// above 9. As with strconv.FormatUint, an out-of-range radix is a
// programmer error and Text panics; use FormatText when the radix comes
// from user input.
func (x Natural) Text(radix int) string {
	s, err := x.FormatText(radix)
	if err != nil {
		panic(err)
	}
	return s
}

// FormatText is like Text but returns a PreconditionError instead of
// panicking when radix lies outside [MinRadix, MaxRadix].
func (x Natural) FormatText(radix int) (string, error) {
	if radix < MinRadix || radix > MaxRadix {
		return "", apperrors.NewPreconditionError("natural.Text", "radix %d out of range [%d, %d]", radix, MinRadix, MaxRadix)
	}
	return x.text(radix), nil
}

func (x Natural) text(radix int) string {
	if len(x.w) == 0 {
		return "0"
	}
	const digits = "0123456789abcdefghijklmnopqrstuvwxyz"
	per := digitsPerWord[radix]
	superRadix := wordRadix[radix]

	// Peel off digit groups from the bottom, most significant group last.
	var groups []uint32
	q := x.w.clone()
	for len(q) > 0 {
		var r uint32
		q, r = divW(q, superRadix)
		groups = append(groups, r)
	}

	var sb strings.Builder
	buf := make([]byte, per)
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		for j := per - 1; j >= 0; j-- {
			buf[j] = digits[g%uint32(radix)]
			g /= uint32(radix)
		}
		if i == len(groups)-1 {
			sb.WriteString(strings.TrimLeft(string(buf), "0"))
		} else {
			sb.Write(buf)
		}
	}
	return sb.String()
}

// String returns x in hexadecimal without a prefix.
func (x Natural) String() string { return x.Text(DefaultRadix) }

// Format implements fmt.Formatter. It supports %d, %x, %X, %o, %b, %s
// and %v (hexadecimal), and honors the '#' flag for base prefixes.
func (x Natural) Format(s fmt.State, ch rune) {
	var radix int
	var prefix string
	switch ch {
	case 'd':
		radix = 10
	case 'x', 'X', 's', 'v':
		radix, prefix = 16, "0x"
	case 'o':
		radix, prefix = 8, "0"
	case 'b':
		radix, prefix = 2, "0b"
	default:
		fmt.Fprintf(s, "%%!%c(natural.Natural=%s)", ch, x.String())
		return
	}
	text := x.Text(radix)
	if ch == 'X' {
		text = strings.ToUpper(text)
		prefix = "0X"
	}
	if s.Flag('#') {
		text = prefix + text
	}
	if w, ok := s.Width(); ok && len(text) < w {
		pad := " "
		if s.Flag('0') && !s.Flag('-') {
			pad = "0"
		}
		fill := strings.Repeat(pad, w-len(text))
		if s.Flag('-') {
			text += fill
		} else {
			text = fill + text
		}
	}
	fmt.Fprint(s, text)
}

func quote(s string) string {
	const maxQuoted = 32
	if len(s) > maxQuoted {
		s = s[:maxQuoted] + "..."
	}
	return fmt.Sprintf("%q", s)
}
