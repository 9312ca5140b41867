package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, src string) ([]Token, []string) {
	t.Helper()
	var diags []Diagnostic
	lx := NewLexer("t.py", []byte(src), func(kind DiagnosticKind, loc SourceLoc) {
		diags = append(diags, Diagnostic{Kind: kind, Loc: loc})
	})
	var toks []Token
	var lits []string
	for {
		tok := lx.Next()
		toks = append(toks, tok.Tok)
		lits = append(lits, tok.Lit)
		if tok.Tok == EOP {
			break
		}
		if len(toks) > 1000 {
			t.Fatal("lexer did not reach EOP")
		}
	}
	require.Empty(t, diags, "unexpected diagnostics: %v", diags)
	return toks, lits
}

func TestLexerSimpleAssignment(t *testing.T) {
	toks, lits := scanAll(t, "x = 1\n")
	assert.Equal(t, []Token{IDENTIFIER, ASSIGN, INTEGER_LITERAL, NEWLINE, EOP}, toks)
	assert.Equal(t, "x", lits[0])
	assert.Equal(t, "1", lits[2])
}

func TestLexerIndentation(t *testing.T) {
	src := "if x:\n    y = 1\n    z = 2\nw = 3\n"
	toks, _ := scanAll(t, src)
	assert.Equal(t, []Token{
		IF, IDENTIFIER, COLON, NEWLINE,
		INDENT,
		IDENTIFIER, ASSIGN, INTEGER_LITERAL, NEWLINE,
		IDENTIFIER, ASSIGN, INTEGER_LITERAL, NEWLINE,
		DEDENT,
		IDENTIFIER, ASSIGN, INTEGER_LITERAL, NEWLINE,
		EOP,
	}, toks)
}

// TestLexerNoSpuriousDedentAfterIndent guards against re-measuring a
// logical line's indentation after scanIndentation has already consumed
// it and returned an INDENT: that would see width 0 against the level
// just pushed and queue a bogus DEDENT before the line's first real token.
func TestLexerNoSpuriousDedentAfterIndent(t *testing.T) {
	toks, _ := scanAll(t, "if x:\n    y = 1\n")
	assert.Equal(t, []Token{
		IF, IDENTIFIER, COLON, NEWLINE,
		INDENT,
		IDENTIFIER, ASSIGN, INTEGER_LITERAL, NEWLINE,
		DEDENT,
		EOP,
	}, toks)
}

func TestLexerNestedDedent(t *testing.T) {
	src := "if a:\n    if b:\n        c\nd\n"
	toks, _ := scanAll(t, src)
	assert.Equal(t, []Token{
		IF, IDENTIFIER, COLON, NEWLINE,
		INDENT,
		IF, IDENTIFIER, COLON, NEWLINE,
		INDENT,
		IDENTIFIER, NEWLINE,
		DEDENT, DEDENT,
		IDENTIFIER, NEWLINE,
		EOP,
	}, toks)
}

func TestLexerBlankAndCommentLinesIgnored(t *testing.T) {
	src := "x = 1\n\n# a comment\n\ny = 2\n"
	toks, _ := scanAll(t, src)
	assert.Equal(t, []Token{
		IDENTIFIER, ASSIGN, INTEGER_LITERAL, NEWLINE,
		IDENTIFIER, ASSIGN, INTEGER_LITERAL, NEWLINE,
		EOP,
	}, toks)
}

func TestLexerParenSuppressesNewline(t *testing.T) {
	src := "x = (1,\n     2)\n"
	toks, _ := scanAll(t, src)
	assert.Equal(t, []Token{
		IDENTIFIER, ASSIGN, LPAREN, INTEGER_LITERAL, COMMA, INTEGER_LITERAL, RPAREN, NEWLINE, EOP,
	}, toks)
}

func TestLexerNumbers(t *testing.T) {
	cases := []struct {
		name string
		src  string
		tok  Token
		lit  string
	}{
		{"decimal", "42", INTEGER_LITERAL, "42"},
		{"float", "3.14", FLOAT_LITERAL, "3.14"},
		{"exponent", "1e10", FLOAT_LITERAL, "1e10"},
		{"hex", "0xFF", INTEGER_LITERAL, "0xFF"},
		{"octal", "0o17", INTEGER_LITERAL, "0o17"},
		{"binary", "0b101", INTEGER_LITERAL, "0b101"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, lits := scanAll(t, c.src+"\n")
			require.Equal(t, c.tok, toks[0])
			assert.Equal(t, c.lit, lits[0])
		})
	}
}

func TestLexerStringEscapes(t *testing.T) {
	toks, lits := scanAll(t, `"a\tb\n"` + "\n")
	require.Equal(t, STRING_LITERAL, toks[0])
	assert.Equal(t, "a\tb\n", lits[0])
}

func TestLexerTripleQuoted(t *testing.T) {
	src := "'''line one\nline two'''\n"
	toks, lits := scanAll(t, src)
	require.Equal(t, STRING_LITERAL, toks[0])
	assert.Equal(t, "line one\nline two", lits[0])
}

func TestLexerBacktickFoldsToStringLiteral(t *testing.T) {
	toks, lits := scanAll(t, "`x`\n")
	require.Equal(t, STRING_LITERAL, toks[0])
	assert.Equal(t, "x", lits[0])
}

func TestLexerOperators(t *testing.T) {
	toks, _ := scanAll(t, "a <= b and a >= c\n")
	assert.Equal(t, []Token{
		IDENTIFIER, LEQ, IDENTIFIER, AND_KW, IDENTIFIER, GEQ, IDENTIFIER, NEWLINE, EOP,
	}, toks)
}

func TestLexerKeywordsVsIdentifiers(t *testing.T) {
	toks, _ := scanAll(t, "class Foo:\n    pass\n")
	assert.Equal(t, []Token{
		CLASS, IDENTIFIER, COLON, NEWLINE, INDENT, PASS, NEWLINE, DEDENT, EOP,
	}, toks)
}

func TestLexerUnterminatedStringReportsDiagnostic(t *testing.T) {
	var diags []Diagnostic
	lx := NewLexer("t.py", []byte("x = \"unterminated\n"), func(kind DiagnosticKind, loc SourceLoc) {
		diags = append(diags, Diagnostic{Kind: kind, Loc: loc})
	})
	for {
		tok := lx.Next()
		if tok.Tok == EOP {
			break
		}
	}
	require.Len(t, diags, 1)
	assert.Equal(t, UnterminatedString, diags[0].Kind)
}
