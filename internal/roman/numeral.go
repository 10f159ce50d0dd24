/*
PURPOSE:
  Numeral is an ordered sequence of symbols. Handles encoding from a decimal
  integer, evaluation back to decimal, and the textual form.

REQUIREMENTS:
  User-specified:
  - Encoding produces the canonical, minimal-length numeral.
  - Decoding is lenient: any symbol sequence evaluates to some integer.

  Implementation-discovered:
  - Each digit place is encoded independently from a fixed table.
  - Numeral is immutable: constructors and accessors copy the slice.

ARCHITECTURE INTEGRATION:
  - Used by: internal/convert

ERROR HANDLING:
  - Parse fails on the first character that is not a symbol.
  - Everything else is total.

IMPLEMENTATION RULES:
  - Thousands are plain repeated M, no reduction rule.
  - Hundreds, tens, ones use the (unit, five, ten) triad table.

USAGE:
  roman.FromDecimal(3497).String() // "MMMCDXCVII"
  n, err := roman.Parse("cv")      // n.Decimal() == 105

RELATED FILES:
  - internal/roman/symbol.go
*/

package roman

import (
	"slices"
	"strings"
)

// Numeral is a sequence of symbols in written order.
// Only FromDecimal guarantees canonical form.
type Numeral struct {
	symbols []Symbol
}

// New builds a numeral from an arbitrary symbol sequence.
func New(symbols ...Symbol) Numeral {
	return Numeral{symbols: slices.Clone(symbols)}
}

// Symbols returns a copy of the sequence.
func (n Numeral) Symbols() []Symbol {
	return slices.Clone(n.symbols)
}

// Len returns the number of symbols.
func (n Numeral) Len() int {
	return len(n.symbols)
}

// DigitAt extracts the decimal digit of n at place (1, 10, 100, 1000).
func DigitAt(n, place uint) uint {
	return n % (10 * place) / place
}

type slot uint8

const (
	unit slot = iota
	five
	ten
)

// digitTable holds the symbol pattern of every digit, relative to a triad.
var digitTable = [10][]slot{
	0: nil,
	1: {unit},
	2: {unit, unit},
	3: {unit, unit, unit},
	4: {unit, five},
	5: {five},
	6: {five, unit},
	7: {five, unit, unit},
	8: {five, unit, unit, unit},
	9: {unit, ten},
}

// places lists the triad places from most to least significant.
var places = []struct {
	place uint
	triad [3]Symbol
}{
	{100, [3]Symbol{C, D, M}},
	{10, [3]Symbol{X, L, C}},
	{1, [3]Symbol{I, V, X}},
}

// FromDecimal encodes n into its canonical numeral.
func FromDecimal(n uint) Numeral {
	var out []Symbol
	for i, k := uint(0), DigitAt(n, 1000); i < k; i++ {
		out = append(out, M)
	}
	for _, p := range places {
		out = appendDigit(out, DigitAt(n, p.place), p.triad)
	}
	return Numeral{symbols: out}
}

func appendDigit(out []Symbol, digit uint, triad [3]Symbol) []Symbol {
	for _, s := range digitTable[digit] {
		out = append(out, triad[s])
	}
	return out
}

// Decimal evaluates the numeral. A smaller symbol directly before a larger
// one is subtracted from it; everything else is added.
func (n Numeral) Decimal() uint {
	var total, pending uint
	for _, s := range n.symbols {
		v := s.Value()
		switch {
		case pending == 0:
			pending = v
		case pending < v:
			total += v - pending
			pending = 0
		default:
			total += pending
			pending = v
		}
	}
	return total + pending
}

// String renders the numeral as contiguous uppercase letters.
func (n Numeral) String() string {
	var b strings.Builder
	b.Grow(len(n.symbols))
	for _, s := range n.symbols {
		b.WriteString(s.String())
	}
	return b.String()
}

// Parse reads text one character at a time, preserving order.
func Parse(text string) (Numeral, error) {
	symbols := make([]Symbol, 0, len(text))
	for _, r := range text {
		s, err := ParseSymbol(r)
		if err != nil {
			return Numeral{}, err
		}
		symbols = append(symbols, s)
	}
	return Numeral{symbols: symbols}, nil
}
