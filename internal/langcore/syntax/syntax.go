package syntax

// Syntax is the per-language capability object described in
// SPEC_FULL.md §3/§4.2: a read-only set of pure predicates that
// parameterizes the shared sub-lexers. It carries no state of its own and
// is safe to share across concurrently running parses (SPEC_FULL.md §5).
type Syntax interface {
	// isIdentFirstChar reports whether ch may start an identifier.
	isIdentFirstChar(ch byte) bool
	// isIdentChar reports whether ch may continue an identifier already
	// in progress.
	isIdentChar(ch byte) bool
	// isOctalPrefix reports whether ch, following a leading '0', starts an
	// octal-literal prefix (e.g. 'o'/'O').
	isOctalPrefix(ch byte) bool
	// isHexPrefix reports whether ch, following a leading '0', starts a
	// hex-literal prefix (e.g. 'x'/'X').
	isHexPrefix(ch byte) bool
	// isBinPrefix reports whether ch, following a leading '0', starts a
	// binary-literal prefix (e.g. 'b'/'B').
	isBinPrefix(ch byte) bool
	// isExponent reports whether ch introduces a numeric exponent (e.g.
	// 'e'/'E').
	isExponent(ch byte) bool
	// classifyIdent returns the keyword token for ident if the language
	// reserves it, or IDENTIFIER otherwise.
	classifyIdent(ident string) Token
}

// ---------------------------------------------------------------------
// Python-2 dialect: the only Syntax with a hand-written Lexer/Parser pair
// in the CORE (SPEC_FULL.md §4.6).

type python2Syntax struct{}

// Python is the shared, read-only Syntax capability for the Python-2
// dialect grammar.
var Python Syntax = python2Syntax{}

func (python2Syntax) isIdentFirstChar(ch byte) bool {
	return ch == '_' || 'a' <= lower(ch) && lower(ch) <= 'z'
}

func (python2Syntax) isIdentChar(ch byte) bool {
	return python2Syntax{}.isIdentFirstChar(ch) || isDigit(ch)
}

func (python2Syntax) isOctalPrefix(ch byte) bool { return lower(ch) == 'o' }
func (python2Syntax) isHexPrefix(ch byte) bool   { return lower(ch) == 'x' }
func (python2Syntax) isBinPrefix(ch byte) bool   { return lower(ch) == 'b' }
func (python2Syntax) isExponent(ch byte) bool    { return lower(ch) == 'e' }

var pythonKeywords = map[string]Token{
	"def": DEF, "class": CLASS, "if": IF, "elif": ELIF, "else": ELSE,
	"while": WHILE, "for": FOR, "try": TRY, "except": EXCEPT, "finally": FINALLY,
	"with": WITH, "as": AS, "import": IMPORT, "from": FROM, "global": GLOBAL,
	"exec": EXEC, "assert": ASSERT, "break": BREAK, "continue": CONTINUE,
	"return": RETURN, "raise": RAISE, "yield": YIELD, "lambda": LAMBDA,
	"not": NOT, "and": AND_KW, "or": OR_KW, "in": IN, "is": IS,
	"pass": PASS, "del": DEL, "print": PRINT,
	"None": NULL_LITERAL, "True": TRUE_LITERAL, "False": FALSE_LITERAL,
}

func (python2Syntax) classifyIdent(ident string) Token {
	if tok, ok := pythonKeywords[ident]; ok {
		return tok
	}
	return IDENTIFIER
}

// ---------------------------------------------------------------------
// Go-like and D-like Syntax variants. These demonstrate that the shared
// LexerBase sub-lexers (identifiers, numbers, strings) generalize across
// languages whose parser is not hand-written in this CORE — per
// SPEC_FULL.md §4.6 and §9, makeLexer/makeParser are free to return nil
// for them while makeLang still exposes classification for tools that only
// need tokenization (e.g. a syntax-highlighter).

type goLikeSyntax struct{}

// GoLike is the Syntax capability for the illustrative Go-like language.
var GoLike Syntax = goLikeSyntax{}

func (goLikeSyntax) isIdentFirstChar(ch byte) bool {
	return ch == '_' || 'a' <= lower(ch) && lower(ch) <= 'z'
}
func (goLikeSyntax) isIdentChar(ch byte) bool {
	return goLikeSyntax{}.isIdentFirstChar(ch) || isDigit(ch)
}
func (goLikeSyntax) isOctalPrefix(ch byte) bool { return lower(ch) == 'o' }
func (goLikeSyntax) isHexPrefix(ch byte) bool   { return lower(ch) == 'x' }
func (goLikeSyntax) isBinPrefix(ch byte) bool   { return lower(ch) == 'b' }
func (goLikeSyntax) isExponent(ch byte) bool    { return lower(ch) == 'e' }

var goLikeKeywords = map[string]Token{
	"func": GO_FUNC, "package": GO_PACKAGE, "var": GO_VAR, "const": GO_CONST,
	"type": GO_TYPE, "struct": GO_STRUCT, "if": IF, "else": ELSE, "for": FOR,
	"return": RETURN, "break": BREAK, "continue": CONTINUE, "import": IMPORT,
}

func (goLikeSyntax) classifyIdent(ident string) Token {
	if tok, ok := goLikeKeywords[ident]; ok {
		return tok
	}
	return IDENTIFIER
}

type dLikeSyntax struct{}

// DLike is the Syntax capability for the illustrative D-like language.
var DLike Syntax = dLikeSyntax{}

func (dLikeSyntax) isIdentFirstChar(ch byte) bool {
	return ch == '_' || 'a' <= lower(ch) && lower(ch) <= 'z'
}
func (dLikeSyntax) isIdentChar(ch byte) bool {
	return dLikeSyntax{}.isIdentFirstChar(ch) || isDigit(ch)
}
func (dLikeSyntax) isOctalPrefix(ch byte) bool { return lower(ch) == 'o' }
func (dLikeSyntax) isHexPrefix(ch byte) bool   { return lower(ch) == 'x' }
func (dLikeSyntax) isBinPrefix(ch byte) bool   { return lower(ch) == 'b' }
func (dLikeSyntax) isExponent(ch byte) bool    { return lower(ch) == 'e' }

var dLikeKeywords = map[string]Token{
	"module": D_MODULE, "import": D_IMPORT, "struct": D_STRUCT, "auto": D_AUTO,
	"if": IF, "else": ELSE, "for": FOR, "while": WHILE, "return": RETURN,
	"break": BREAK, "continue": CONTINUE,
}

func (dLikeSyntax) classifyIdent(ident string) Token {
	if tok, ok := dLikeKeywords[ident]; ok {
		return tok
	}
	return IDENTIFIER
}
