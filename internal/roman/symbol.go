/*
PURPOSE:
  Defines the seven Roman numeral symbols and their fixed decimal values.
  Provides lookup from a single character and rendering back to a letter.

REQUIREMENTS:
  User-specified:
  - I=1, V=5, X=10, L=50, C=100, D=500, M=1000.
  - Parsing is case-insensitive.

  Implementation-discovered:
  - Zero value must not be a valid symbol (catches uninitialized values).
  - Ordering is by decimal value, used by the decoder for subtractive pairs.

ARCHITECTURE INTEGRATION:
  - Used by: internal/roman (Numeral), internal/cli (list-symbols)

ERROR HANDLING:
  - ParseSymbol returns *ParseError carrying the uppercased token.

IMPLEMENTATION RULES:
  - Closed set. Exhaustive switches, no maps.
  - Constants are declared in ascending value order.

USAGE:
  s, err := roman.ParseSymbol('x')
  s.Value() // 10

RELATED FILES:
  - internal/roman/numeral.go
  - internal/roman/errors.go
*/

package roman

import (
	"cmp"
	"fmt"
	"strings"
	"unicode"
)

// Symbol is a single Roman numeral letter.
type Symbol uint8

const (
	I Symbol = iota + 1
	V
	X
	L
	C
	D
	M
)

// Symbols returns all seven symbols in ascending value order.
func Symbols() []Symbol {
	return []Symbol{I, V, X, L, C, D, M}
}

// Value returns the fixed decimal value of the symbol.
// Invalid symbols are worth 0.
func (s Symbol) Value() uint {
	switch s {
	case I:
		return 1
	case V:
		return 5
	case X:
		return 10
	case L:
		return 50
	case C:
		return 100
	case D:
		return 500
	case M:
		return 1000
	}
	return 0
}

// String renders the symbol as its uppercase letter.
func (s Symbol) String() string {
	switch s {
	case I:
		return "I"
	case V:
		return "V"
	case X:
		return "X"
	case L:
		return "L"
	case C:
		return "C"
	case D:
		return "D"
	case M:
		return "M"
	}
	return fmt.Sprintf("Symbol(%d)", uint8(s))
}

// Valid reports whether s is one of the seven symbols.
func (s Symbol) Valid() bool {
	return s >= I && s <= M
}

// ParseSymbol maps one character, in either case, to its symbol.
func ParseSymbol(r rune) (Symbol, error) {
	switch unicode.ToUpper(r) {
	case 'I':
		return I, nil
	case 'V':
		return V, nil
	case 'X':
		return X, nil
	case 'L':
		return L, nil
	case 'C':
		return C, nil
	case 'D':
		return D, nil
	case 'M':
		return M, nil
	}
	return 0, &ParseError{Token: strings.ToUpper(string(r))}
}

// Compare orders two symbols by decimal value.
func Compare(a, b Symbol) int {
	return cmp.Compare(a.Value(), b.Value())
}
