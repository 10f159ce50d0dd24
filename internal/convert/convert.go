/*
PURPOSE:
  Entry points between the CLI and the numeral core.
  Turns raw user strings into conversions in either direction.

REQUIREMENTS:
  User-specified:
  - intToRoman: integer text -> canonical numeral.
  - romanToInt: numeral text -> integer.

  Implementation-discovered:
  - Integers the digit-place decomposition cannot represent (>= 10000)
    would silently wrap, so they are rejected.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli, internal/engine
  - Uses: internal/roman

ERROR HANDLING:
  - Decode surfaces *roman.ParseError unchanged.
  - Encode wraps numeric failures in *ConversionError.
  - Unknown operation tokens return ErrUnknownOperation.

IMPLEMENTATION RULES:
  - No I/O here. Callers print.

USAGE:
  out, err := convert.Run(convert.OpIntToRoman, "37") // "XXXVII"

RELATED FILES:
  - internal/roman/numeral.go
*/

package convert

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/daryltucker/roman-converter/internal/roman"
)

// Operation selects the conversion direction.
type Operation string

const (
	OpIntToRoman Operation = "intToRoman"
	OpRomanToInt Operation = "romanToInt"
)

// Limit is the first integer the encoder cannot represent.
const Limit = 10000

var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrOutOfRange       = errors.New("value out of range")
)

// ConversionError reports integer text that could not be encoded.
type ConversionError struct {
	Input string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %q: %v", e.Input, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// ParseOperation maps a selector token to an Operation.
func ParseOperation(token string) (Operation, error) {
	switch op := Operation(token); op {
	case OpIntToRoman, OpRomanToInt:
		return op, nil
	}
	return "", fmt.Errorf("%w: %q (expected %s or %s)", ErrUnknownOperation, token, OpIntToRoman, OpRomanToInt)
}

// Decode parses raw as a Roman numeral and evaluates it.
func Decode(raw string) (uint, error) {
	n, err := roman.Parse(raw)
	if err != nil {
		return 0, err
	}
	return n.Decimal(), nil
}

// Encode parses raw as a non-negative integer and renders its canonical numeral.
func Encode(raw string) (string, error) {
	v, err := strconv.ParseUint(raw, 10, strconv.IntSize)
	if err != nil {
		return "", &ConversionError{Input: raw, Err: err}
	}
	if v >= Limit {
		return "", &ConversionError{Input: raw, Err: fmt.Errorf("%w: must be below %d", ErrOutOfRange, Limit)}
	}
	return roman.FromDecimal(uint(v)).String(), nil
}

// Run performs op on value and returns the result text.
func Run(op Operation, value string) (string, error) {
	switch op {
	case OpIntToRoman:
		return Encode(value)
	case OpRomanToInt:
		n, err := Decode(value)
		if err != nil {
			return "", err
		}
		return strconv.FormatUint(uint64(n), 10), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, string(op))
}
