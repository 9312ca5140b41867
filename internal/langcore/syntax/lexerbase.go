package syntax

import "strings"

// lexerBase holds the three shared sub-lexers described in
// SPEC_FULL.md §4.2 (identifier/keyword, numeric literal, string literal),
// parameterized by a Syntax capability. Every concrete per-language lexer
// embeds lexerBase and drives it by repeatedly calling the scanXxx methods
// once it has classified the current character.
//
// Each sub-lexer advances the embedded cursor in lockstep with the lexeme
// it recognizes, leaving the cursor positioned on the character
// immediately after the lexeme — the Go equivalent of the source's
// "advance the current-character reference" contract.
type lexerBase struct {
	cursor
	syntax Syntax
	report func(kind DiagnosticKind, loc SourceLoc)
}

func (lx *lexerBase) init(fileName string, buf []byte, syntax Syntax, report func(DiagnosticKind, SourceLoc)) {
	lx.setBuffer(fileName, buf)
	lx.syntax = syntax
	lx.report = report
}

func (lx *lexerBase) errorAt(loc SourceLoc, kind DiagnosticKind) {
	if lx.report != nil {
		lx.report(kind, loc)
	}
}

// scanIdentOrKeyword implements SPEC_FULL.md §4.2's identifier/keyword
// sub-lexer. Precondition: syntax.isIdentFirstChar(peekChar(0)).
func (lx *lexerBase) scanIdentOrKeyword() (tok Token, lit string) {
	start := lx.pos()
	var b strings.Builder
	b.WriteByte(lx.peekChar(0))
	lx.consumeChar(0)

	for lx.syntax.isIdentChar(lx.peekChar(0)) {
		b.WriteByte(lx.peekChar(0))
		lx.consumeChar(0)
	}

	lit = b.String()
	_ = start
	return lx.syntax.classifyIdent(lit), lit
}

// scanNumber implements SPEC_FULL.md §4.2's numeric-literal sub-lexer.
// Precondition: isDigit(peekChar(0)) || peekChar(0) == '.'.
func (lx *lexerBase) scanNumber() (tok Token, lit string) {
	var b strings.Builder

	if lx.peekChar(0) == '0' && (lx.syntax.isOctalPrefix(lx.peekChar(1)) ||
		lx.syntax.isHexPrefix(lx.peekChar(1)) || lx.syntax.isBinPrefix(lx.peekChar(1))) {
		return lx.scanPrefixedNumber(&b)
	}

	kind := IntLit
	lx.scanDecimalRun(&b)

	if lx.peekChar(0) == '.' {
		kind = FloatLit
		b.WriteByte('.')
		lx.consumeChar(0)
		lx.scanDecimalRun(&b)
	}
	if lx.syntax.isExponent(lx.peekChar(0)) {
		kind = FloatLit
		b.WriteByte(lx.peekChar(0))
		lx.consumeChar(0)
		if lx.peekChar(0) == '+' || lx.peekChar(0) == '-' {
			b.WriteByte(lx.peekChar(0))
			lx.consumeChar(0)
		}
		if !isDigit(lx.peekChar(0)) {
			return INVALID, b.String()
		}
		lx.scanDecimalRun(&b)
	}

	if kind == FloatLit {
		return FLOAT_LITERAL, b.String()
	}
	return INTEGER_LITERAL, b.String()
}

func (lx *lexerBase) scanDecimalRun(b *strings.Builder) {
	for isDigit(lx.peekChar(0)) {
		b.WriteByte(lx.peekChar(0))
		lx.consumeChar(0)
	}
}

func (lx *lexerBase) scanPrefixedNumber(b *strings.Builder) (Token, string) {
	b.WriteByte('0')
	lx.consumeChar(0)
	prefixCh := lx.peekChar(0)
	b.WriteByte(prefixCh)
	lx.consumeChar(0)

	var digitPred func(byte) bool
	switch {
	case lx.syntax.isOctalPrefix(prefixCh):
		digitPred = isOctalDigitChar
	case lx.syntax.isHexPrefix(prefixCh):
		digitPred = isHexDigit
	default:
		digitPred = isBinaryDigitChar
	}

	n := 0
	for digitPred(lx.peekChar(0)) {
		b.WriteByte(lx.peekChar(0))
		lx.consumeChar(0)
		n++
	}
	if n == 0 {
		return INVALID, b.String()
	}
	return INTEGER_LITERAL, b.String()
}

// scanString implements SPEC_FULL.md §4.2's string-literal sub-lexer.
// quote is the opening quote character already identified by the caller;
// mayBreak controls whether a bare newline inside the literal is legal
// (triple-quoted strings) or reported as UnterminatedString.
func (lx *lexerBase) scanString(quote byte, mayBreak bool) (tok Token, lit string) {
	startLoc := pointLoc(lx.fileName, lx.pos())
	lx.consumeChar(0) // opening quote

	var b strings.Builder
	for {
		ch := lx.peekChar(0)
		switch {
		case ch == quote:
			lx.consumeChar(0)
			return STRING_LITERAL, b.String()

		case ch == 0:
			lx.errorAt(startLoc, UnterminatedString)
			return STRING_LITERAL, b.String()

		case ch == '\n':
			if !mayBreak {
				lx.errorAt(startLoc, UnterminatedString)
				return STRING_LITERAL, b.String()
			}
			b.WriteByte(ch)
			lx.consumeChar(0)

		case ch == '\\':
			lx.scanEscape(&b)

		default:
			b.WriteByte(ch)
			lx.consumeChar(0)
		}
	}
}

var escapeTable = map[byte]byte{
	'n': '\n', 't': '\t', 'r': '\r', '\\': '\\', '\'': '\'', '"': '"', '0': 0,
}

// scanEscape consumes a backslash escape and appends the decoded byte(s)
// to b, per SPEC_FULL.md §4.2: the escape consumes the next character; if
// that character is neither control nor printable, UnknownEscape is
// reported. A line continuation (backslash-newline) swallows the newline.
// Characters with a recognized meaning (\n \t \r \\ \' \" \0, or \xHH) are
// decoded; any other printable character passes through verbatim, matching
// Python 2's behavior of keeping the backslash's escapee as-is.
func (lx *lexerBase) scanEscape(b *strings.Builder) {
	escLoc := pointLoc(lx.fileName, lx.pos())
	lx.consumeChar(0) // backslash
	ch := lx.peekChar(0)

	switch {
	case ch == 0:
		return // caller's loop will report UnterminatedString

	case ch == '\n':
		lx.consumeChar(0) // line continuation: newline is swallowed

	case ch == 'x':
		lx.consumeChar(0)
		lx.scanHexEscape(b)

	default:
		if decoded, ok := escapeTable[ch]; ok {
			b.WriteByte(decoded)
		} else {
			if !isControl(ch) && !isPrintable(ch) {
				lx.errorAt(escLoc, UnknownEscape)
			}
			b.WriteByte(ch)
		}
		lx.consumeChar(0)
	}
}

// scanHexEscape consumes up to two hex digits after \x and appends the
// decoded byte. Fewer than two hex digits is reported as UnknownEscape.
func (lx *lexerBase) scanHexEscape(b *strings.Builder) {
	escLoc := pointLoc(lx.fileName, lx.pos())
	var v byte
	n := 0
	for n < 2 && isHexDigit(lx.peekChar(0)) {
		v = v*16 + hexDigitValue(lx.peekChar(0))
		lx.consumeChar(0)
		n++
	}
	if n < 2 {
		lx.errorAt(escLoc, UnknownEscape)
		return
	}
	b.WriteByte(v)
}

func hexDigitValue(ch byte) byte {
	switch {
	case isDigit(ch):
		return ch - '0'
	case 'a' <= lower(ch) && lower(ch) <= 'f':
		return lower(ch) - 'a' + 10
	}
	return 0
}
