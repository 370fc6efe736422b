package lexer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/orlp/pyth5/lexer"
)

func tokensOf(t *testing.T, src string) []lexer.Token {
	t.Helper()
	lx, err := lexer.New([]byte(src))
	require.NoError(t, err)
	var out []lexer.Token
	for lx.HasToken() {
		out = append(out, lx.Get())
	}
	return out
}

func TestLexer_NumberAndString(t *testing.T) {
	got := tokensOf(t, `+3"hi"`)
	want := []lexer.Token{
		{Kind: lexer.Symb, Data: "+"},
		{Kind: lexer.Lit, Lit: lexer.LitNumber, Data: "3"},
		{Kind: lexer.Lit, Lit: lexer.LitString, Data: "hi"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestLexer_LeadingZeroSplitsIntoTwoNumbers(t *testing.T) {
	// "05" lexes as two number tokens, "0" and "5" — Pyth's numeric
	// tokenizer never treats a leading zero as part of a longer literal.
	got := tokensOf(t, `05`)
	want := []lexer.Token{
		{Kind: lexer.Lit, Lit: lexer.LitNumber, Data: "0"},
		{Kind: lexer.Lit, Lit: lexer.LitNumber, Data: "5"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestLexer_TrailingDotPushedBackIntoDottedOperator(t *testing.T) {
	// "5.<" is the number "5" followed by the dotted operator ".<", not
	// the malformed number "5." followed by "<".
	got := tokensOf(t, `5.<`)
	want := []lexer.Token{
		{Kind: lexer.Lit, Lit: lexer.LitNumber, Data: "5"},
		{Kind: lexer.Symb, Data: ".<"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestLexer_TrailingDotKeptWhenFollowedBySpace(t *testing.T) {
	got := tokensOf(t, "3. +2")
	want := []lexer.Token{
		{Kind: lexer.Lit, Lit: lexer.LitNumber, Data: "3."},
		{Kind: lexer.Symb, Data: " "},
		{Kind: lexer.Symb, Data: "+"},
		{Kind: lexer.Lit, Lit: lexer.LitNumber, Data: "2"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestLexer_DollarVariableIsTwoByteSymbol(t *testing.T) {
	got := tokensOf(t, `l$A`)
	want := []lexer.Token{
		{Kind: lexer.Symb, Data: "l"},
		{Kind: lexer.Symb, Data: "$A"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestLexer_NewlineInsideStringDecodesToNewline(t *testing.T) {
	// Stage 1 rewrites a literal newline inside a string to the two
	// bytes backslash-n; Stage 3 folds that back into a real newline in
	// the token payload.
	got := tokensOf(t, "\"a\nb\"")
	want := []lexer.Token{
		{Kind: lexer.Lit, Lit: lexer.LitString, Data: "a\nb"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestLexer_SpaceIsAnExplicitSymbolToken(t *testing.T) {
	got := tokensOf(t, `F Zb`)
	foundSpace := false
	for _, tok := range got {
		if tok.Kind == lexer.Symb && tok.Data == " " {
			foundSpace = true
		}
	}
	require.True(t, foundSpace, "expected an explicit space token")
}

func TestLexer_RoundTripIdempotence(t *testing.T) {
	// Re-preprocessing already-preprocessed source yields byte-identical
	// output.
	src := []byte("=a5\n  p a\n;a trailing comment\n5\n3")
	once := lexer.Preprocess(src)
	twice := lexer.Preprocess(once)
	require.Equal(t, string(once), string(twice))
}

func TestLexer_HashEndTruncatesSource(t *testing.T) {
	pre := lexer.Preprocess([]byte("p5\n;#end\np6"))
	require.NotContains(t, string(pre), "p6")
}

func TestLexer_SemicolonCommentStripped(t *testing.T) {
	pre := lexer.Preprocess([]byte("p5 ;this is dropped\np6"))
	require.NotContains(t, string(pre), "dropped")
}
