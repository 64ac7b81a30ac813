package rtsyntax

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/irqkit/rtsyntax/syntax"
)

func TestIntDigits(t *testing.T) {
	tests := map[string]string{
		"0":           "0",
		"1_000":       "1000",
		"0x10":        "16",
		"0xffu8":      "255",
		"0o17":        "15",
		"0b1010_1010": "170",
		"340282366920938463463374607431768211456": "340282366920938463463374607431768211456",
	}
	for lit, expected := range tests {
		digits, ok := intDigits(lit)
		require.True(t, ok, lit)
		require.Equal(t, expected, digits, lit)
	}
}

func TestStream(t *testing.T) {
	trees, err := syntax.ParseTokens("", "a = ::x::y, [b];")
	require.NoError(t, err)
	s := newStream(trees, endOf(trees))

	ident, err := s.ident()
	require.NoError(t, err)
	require.Equal(t, "a", ident.Name)
	require.NoError(t, s.punct("="))
	path, err := s.path()
	require.NoError(t, err)
	require.True(t, path.Leading)
	require.Len(t, path.Segments, 2)
	require.NoError(t, s.separator())

	_, list, err := s.group("[")
	require.NoError(t, err)
	require.Len(t, list.until(), 1)
	require.True(t, list.empty())

	require.True(t, s.peekPunct(";"))
	require.Nil(t, s.peek())
	err = s.finish()
	require.EqualError(t, err, `1:16: unexpected token ";" (expected end of input)`)
	s.advance()
	require.NoError(t, s.finish())
	_, err = s.ident()
	require.EqualError(t, err, "1:16: unexpected end of input (expected identifier)")
}
