package tokenize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func tokenStrings(data []byte, spans []HashedSpan) []string {
	out := make([]string, len(spans))
	for i, s := range spans {
		out[i] = string(data[s.Offset : s.Offset+s.Length])
	}
	return out
}

func TestTokens_WordWhitespaceOther(t *testing.T) {
	data := []byte("foo bar, baz!")
	spans := Tokens(data, 0, len(data))
	require.Equal(t, []string{"foo", "bar", ",", "baz", "!"}, tokenStrings(data, spans))
}

func TestTokens_EmptyRange(t *testing.T) {
	data := []byte("   ")
	spans := Tokens(data, 0, len(data))
	require.Empty(t, spans)
}

func TestTokens_UnderscoreIsWordByte(t *testing.T) {
	data := []byte("my_var_1")
	spans := Tokens(data, 0, len(data))
	require.Equal(t, []string{"my_var_1"}, tokenStrings(data, spans))
}

func TestSkipMarkerAndIndent(t *testing.T) {
	data := []byte("-    foo bar")
	ofs := SkipMarkerAndIndent(data, 0, len(data))
	require.Equal(t, "foo bar", string(data[ofs:]))
}

func TestSkipMarkerAndIndent_NoIndent(t *testing.T) {
	data := []byte("+foo")
	ofs := SkipMarkerAndIndent(data, 0, len(data))
	require.Equal(t, "foo", string(data[ofs:]))
}

func TestEqual(t *testing.T) {
	a := []byte("foo bar")
	b := []byte("baz foo")
	sa := Tokens(a, 0, len(a))[0] // "foo"
	sb := Tokens(b, 0, len(b))[1] // "foo"
	require.True(t, Equal(a, sa, b, sb))

	sc := Tokens(b, 0, len(b))[0] // "baz"
	require.False(t, Equal(a, sa, b, sc))
}

func TestClassOf(t *testing.T) {
	require.Equal(t, ClassWhitespace, ClassOf(' '))
	require.Equal(t, ClassWhitespace, ClassOf('\t'))
	require.Equal(t, ClassWhitespace, ClassOf('\n'))
	require.Equal(t, ClassWord, ClassOf('a'))
	require.Equal(t, ClassWord, ClassOf('Z'))
	require.Equal(t, ClassWord, ClassOf('9'))
	require.Equal(t, ClassWord, ClassOf('_'))
	require.Equal(t, ClassOther, ClassOf(','))
	require.Equal(t, ClassOther, ClassOf('!'))
}
