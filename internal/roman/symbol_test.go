package roman

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolValue(t *testing.T) {
	cases := []struct {
		sym  Symbol
		want uint
	}{
		{I, 1}, {V, 5}, {X, 10}, {L, 50}, {C, 100}, {D, 500}, {M, 1000},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.sym.Value(), "value of %s", c.sym)
	}
	assert.Zero(t, Symbol(0).Value())
}

func TestParseSymbol_RoundTrip(t *testing.T) {
	for _, s := range Symbols() {
		got, err := ParseSymbol(rune(s.String()[0]))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestParseSymbol_CaseInsensitive(t *testing.T) {
	for in, want := range map[rune]Symbol{'i': I, 'v': V, 'x': X, 'l': L, 'c': C, 'd': D, 'm': M} {
		got, err := ParseSymbol(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParseSymbol_Invalid(t *testing.T) {
	_, err := ParseSymbol('a')
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "A", pe.Token)
	assert.Equal(t, "invalid characters: A", err.Error())
}

func TestSymbolOrdering(t *testing.T) {
	all := Symbols()
	for i := 1; i < len(all); i++ {
		assert.Equal(t, -1, Compare(all[i-1], all[i]), "%s < %s", all[i-1], all[i])
		assert.Equal(t, 1, Compare(all[i], all[i-1]))
	}
	assert.Zero(t, Compare(X, X))
}

func TestSymbolValid(t *testing.T) {
	for _, s := range Symbols() {
		assert.True(t, s.Valid())
	}
	assert.False(t, Symbol(0).Valid())
	assert.False(t, Symbol(8).Valid())
	assert.Equal(t, "Symbol(8)", Symbol(8).String())
}
