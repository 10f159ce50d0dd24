package convert

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/roman-converter/internal/roman"
)

func TestEncode(t *testing.T) {
	cases := map[string]string{
		"3":    "III",
		"4":    "IV",
		"6":    "VI",
		"37":   "XXXVII",
		"3497": "MMMCDXCVII",
		"0":    "",
		"9999": "MMMMMMMMMCMXCIX",
	}
	for in, want := range cases {
		got, err := Encode(in)
		require.NoError(t, err, "Encode(%q)", in)
		assert.Equal(t, want, got, "Encode(%q)", in)
	}
}

func TestEncode_NotANumber(t *testing.T) {
	for _, in := range []string{"abc", "", "-3", "3.5", " 3", "XII"} {
		_, err := Encode(in)
		require.Error(t, err, "Encode(%q)", in)

		var ce *ConversionError
		require.True(t, errors.As(err, &ce), "Encode(%q) returned %T", in, err)
		assert.Equal(t, in, ce.Input)

		var ne *strconv.NumError
		assert.True(t, errors.As(err, &ne), "Encode(%q) should wrap strconv error", in)
	}
}

func TestEncode_OutOfRange(t *testing.T) {
	_, err := Encode("10000")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfRange)

	var ce *ConversionError
	assert.True(t, errors.As(err, &ce))
}

func TestDecode(t *testing.T) {
	cases := map[string]uint{
		"MMMCDXCVII": 3497,
		"cv":         105,
		"IX":         9,
		"xiv":        14,
		"":           0,
	}
	for in, want := range cases {
		got, err := Decode(in)
		require.NoError(t, err, "Decode(%q)", in)
		assert.Equal(t, want, got, "Decode(%q)", in)
	}
}

func TestDecode_InvalidCharacter(t *testing.T) {
	_, err := Decode("XIb")
	var pe *roman.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "B", pe.Token)
	assert.EqualError(t, err, "invalid characters: B")
}

func TestParseOperation(t *testing.T) {
	op, err := ParseOperation("intToRoman")
	require.NoError(t, err)
	assert.Equal(t, OpIntToRoman, op)

	op, err = ParseOperation("romanToInt")
	require.NoError(t, err)
	assert.Equal(t, OpRomanToInt, op)

	_, err = ParseOperation("inttoroman")
	assert.ErrorIs(t, err, ErrUnknownOperation)
}

func TestRun(t *testing.T) {
	out, err := Run(OpIntToRoman, "37")
	require.NoError(t, err)
	assert.Equal(t, "XXXVII", out)

	out, err = Run(OpRomanToInt, "XXXVII")
	require.NoError(t, err)
	assert.Equal(t, "37", out)

	_, err = Run(Operation("nope"), "1")
	assert.ErrorIs(t, err, ErrUnknownOperation)
}
