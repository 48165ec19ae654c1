package bigint

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	mu "github.com/avdva/bigint/internal/mathutil"
)

var (
	manyZeros = bytes.Repeat([]byte{'0'}, baseDigits)
)

// ParseError is returned for a malformed decimal string.
type ParseError struct {
	// Pos is the 1-based position of the offending byte, or 0 if the error
	// is not bound to a position.
	Pos int
	Err string
}

func newParseError(err string, pos int) *ParseError {
	return &ParseError{Err: err, Pos: pos}
}

func (pe *ParseError) Error() string {
	if pe.Pos <= 0 {
		return "parsing failed: " + pe.Err
	}
	return "parsing failed: " + pe.Err + fmt.Sprintf(" at pos %d", pe.Pos)
}

// FromString parses a decimal string with an optional leading sign.
// No spaces, separators or prefixes are allowed.
// The error is always of type *ParseError.
func FromString(s string) (Int, error) {
	if len(s) == 0 {
		return zero, newParseError("empty input", 0)
	}
	var neg bool
	start := 0
	switch s[0] {
	case '-':
		neg = true
		start = 1
	case '+':
		start = 1
	}
	if start == len(s) {
		return zero, newParseError("no digits after sign", start)
	}
	for i := start; i < len(s); i++ {
		if c := s[i]; c < '0' || c > '9' {
			// +1 to start indices from 1.
			return zero, newParseError(fmt.Sprintf("unexpected symbol %q", rune(c)), i+1)
		}
	}
	return makeInt(parseDigits(s[start:]), neg), nil
}

// MustFromString is like FromString, but panics on error.
func MustFromString(s string) Int {
	v, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// parseDigits converts a validated digit string into limbs, taking
// chunks of baseDigits from the least significant end.
func parseDigits(digits string) nat {
	result := make(nat, 0, (len(digits)+baseDigits-1)/baseDigits)
	for end := len(digits); end > 0; end -= baseDigits {
		start := end - baseDigits
		if start < 0 {
			start = 0
		}
		var limb uint32
		for _, c := range digits[start:end] {
			limb = limb*10 + uint32(c-'0')
		}
		result = append(result, limb)
	}
	return result
}

// String returns the decimal representation of x.
func (x Int) String() string {
	return string(x.AppendTo(nil))
}

// AppendTo appends the decimal representation of x to buf and returns the extended buffer.
func (x Int) AppendTo(buf []byte) []byte {
	n := x.mag()
	if x.Sign() < 0 {
		buf = append(buf, '-')
	}
	top := len(n) - 1
	buf = strconv.AppendUint(buf, uint64(n[top]), 10)
	for i := top - 1; i >= 0; i-- {
		limb := uint64(n[i])
		buf = append(buf, manyZeros[:baseDigits-mu.DecimalDigits(limb)]...)
		buf = strconv.AppendUint(buf, limb, 10)
	}
	return buf
}

// decimalLen returns the length of x's decimal representation without a sign.
func (x Int) decimalLen() int {
	n := x.mag()
	return (len(n)-1)*baseDigits + mu.DecimalDigits(uint64(n[len(n)-1]))
}

// WriteTo writes the decimal representation of x to w.
func (x Int) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, 0, x.decimalLen()+1)
	n, err := w.Write(x.AppendTo(buf))
	return int64(n), err
}

// Format implements fmt.Formatter.
// Verbs 'd', 's' and 'v' are supported along with the '+' flag and width.
func (x Int) Format(fs fmt.State, c rune) {
	switch c {
	case 'd', 's', 'v':
	default:
		fmt.Fprintf(fs, "%%!%c(bigint.Int=%s)", c, x.String())
		return
	}
	buf := make([]byte, 0, x.decimalLen()+1)
	if fs.Flag('+') && x.Sign() >= 0 {
		buf = append(buf, '+')
	}
	buf = x.AppendTo(buf)
	width, ok := fs.Width()
	if !ok || width <= len(buf) {
		fs.Write(buf)
		return
	}
	pad := bytes.Repeat([]byte{' '}, width-len(buf))
	if fs.Flag('-') {
		fs.Write(buf)
		fs.Write(pad)
		return
	}
	fs.Write(pad)
	fs.Write(buf)
}

// Scan implements fmt.Scanner.
// It reads one whitespace-delimited token and parses it with FromString.
func (z *Int) Scan(state fmt.ScanState, verb rune) error {
	switch verb {
	case 'd', 's', 'v':
	default:
		return fmt.Errorf("bigint: unsupported scan verb %%%c", verb)
	}
	tok, err := state.Token(true, nil)
	if err != nil {
		return err
	}
	if len(tok) == 0 {
		return io.ErrUnexpectedEOF
	}
	v, err := FromString(string(tok))
	if err != nil {
		return err
	}
	*z = v
	return nil
}
