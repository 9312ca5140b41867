package syntax

import "fmt"

// DiagnosticKind is the closed taxonomy of error kinds from SPEC_FULL.md §7.
// Kinds are values, never thrown control flow: a syntactic or lexical
// problem is reported once and the producing rule carries on with
// whatever it already built (SPEC_FULL.md §9).
type DiagnosticKind uint8

const (
	// UnexpectedToken: the current token did not match what the grammar required.
	UnexpectedToken DiagnosticKind = iota
	// NameRequired: a production accepted an arbitrary expression where only an identifier is meaningful.
	NameRequired
	// UnterminatedString: a string literal ran off the end of its line (or the buffer) before its closing quote.
	UnterminatedString
	// UnknownEscape: a backslash escape's character was neither control nor printable.
	UnknownEscape
	// InvalidNumericDigit: a numeric literal's base prefix or exponent marker had no digits after it.
	InvalidNumericDigit
)

func (k DiagnosticKind) String() string {
	switch k {
	case UnexpectedToken:
		return "UnexpectedToken"
	case NameRequired:
		return "NameRequired"
	case UnterminatedString:
		return "UnterminatedString"
	case UnknownEscape:
		return "UnknownEscape"
	case InvalidNumericDigit:
		return "InvalidNumericDigit"
	}
	return fmt.Sprintf("DiagnosticKind(%d)", k)
}

// Diagnostic is a single reported problem: {kind, loc}, per SPEC_FULL.md §3.
type Diagnostic struct {
	Kind DiagnosticKind
	Loc  SourceLoc
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Loc, d.Kind)
}
