package loxscan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentable/loxscan"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tokens, err := loxscan.Tokenize(`var answer = 42;`)
	require.NoError(t, err)
	require.Len(t, tokens, 5)
	assert.Equal(t, loxscan.Var, tokens[0].Kind)
	assert.Equal(t, loxscan.Identifier, tokens[1].Kind)
	assert.Equal(t, "answer", tokens[1].Text)
	assert.Equal(t, loxscan.Equal, tokens[2].Kind)
	assert.Equal(t, loxscan.Number, tokens[3].Kind)
	assert.Equal(t, int64(42), tokens[3].Num)
	assert.Equal(t, loxscan.SemiColon, tokens[4].Kind)
}

func TestTokenizeEmpty(t *testing.T) {
	t.Parallel()

	tokens, err := loxscan.Tokenize("  \n\t ")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestTokenizeError(t *testing.T) {
	t.Parallel()

	tokens, err := loxscan.Tokenize(`var s = "oops`)
	require.ErrorIs(t, err, loxscan.ErrUnterminatedString)
	assert.Nil(t, tokens)
}

func TestTokenizeFile(t *testing.T) {
	t.Parallel()

	tokens, err := loxscan.TokenizeFile("testdata/hello.lox")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, loxscan.Print, tokens[0].Kind)
	assert.Equal(t, loxscan.String, tokens[1].Kind)
	assert.Equal(t, "Hello, World!", tokens[1].Text)
	assert.Equal(t, loxscan.SemiColon, tokens[2].Kind)
}

func TestTokenizeFileMissing(t *testing.T) {
	t.Parallel()

	_, err := loxscan.TokenizeFile("testdata/missing.lox")
	require.ErrorIs(t, err, loxscan.ErrSource)
}

func TestValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", true},
		{"statement", `print 1 + 2;`, true},
		{"class", "class Foo { bar() { return nil; } }", true},
		{"unknown_char", "var x = #;", false},
		{"unterminated", `"open`, false},
		{"overflow", "99999999999999999999", false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, loxscan.Valid(tc.input))
		})
	}
}
