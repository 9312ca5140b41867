// Package lang is the language factory contract of SPEC_FULL.md §4.5/§6: a
// driver asks for the collaborator set belonging to one LangId without
// naming the language, and may get back nils for collaborators this CORE
// does not implement.
package lang

import (
	"fmt"

	"github.com/polyfront/polyfront/internal/langcore/syntax"
)

// LangId names a supported source language. D, Go, and Python are the
// minimum set required by SPEC_FULL.md §6; extending the enum and
// registering a Factory for it is the whole surface of adding a language.
type LangId uint8

const (
	Python LangId = iota
	Go
	D
)

func (id LangId) String() string {
	switch id {
	case Python:
		return "python"
	case Go:
		return "go"
	case D:
		return "d"
	}
	return fmt.Sprintf("LangId(%d)", uint8(id))
}

// Lexer is the pull-source contract the parser consumes (SPEC_FULL.md
// §4.3): a single Next() that advances the token stream. *syntax.Lexer
// satisfies this already.
type Lexer interface {
	Next() syntax.ScannedToken
}

// Parser runs a complete parse and returns the program root, taking
// ownership of it into the ParsingContext it was built with
// (SPEC_FULL.md §6's parse(lexer, context) → bool, expressed as a return
// value instead of a bool since the AST itself carries "did anything
// parse" via len(Stmts)).
type Parser interface {
	Parse() *syntax.Program
}

// Lang exposes the read-only Syntax capability object for a language, for
// collaborators (e.g. a syntax highlighter) that only need classification
// and never run a full parse.
type Lang interface {
	Name() LangId
	Syntax() syntax.Syntax
}

// Unit holds one source file's AST plus diagnostics once parsed — the
// CORE's "translation unit" (GLOSSARY). Semantic content (symbol tables,
// bound types) is out of scope (spec.md §1); this is the handle a
// consumer gets back.
type Unit interface {
	FileName() string
	Program() *syntax.Program
	Diagnostics() []syntax.Diagnostic
}

// Builtin, AstLocator, Sanitizer, and TypeSystem are named per
// SPEC_FULL.md §6. Builtin, Sanitizer and TypeSystem are semantic-analysis
// collaborators explicitly out of scope (spec.md §1's Out-of-scope list):
// every Factory in this package returns nil for them, which is the
// documented, legitimate "unavailable" response (SPEC_FULL.md §4.5).
// AstLocator has a default implementation (astlocator.go) that
// PythonFactory returns; GoFactory and DFactory return nil for it.
type (
	Builtin interface {
		// LookupBuiltin resolves a builtin name to its Unit of origin, or
		// reports ok=false. Left unimplemented in the CORE.
		LookupBuiltin(name string) (Unit, bool)
	}
	AstLocator interface {
		// NodeAt resolves the innermost AST node covering loc.
		NodeAt(loc syntax.SourceLoc) syntax.Node
	}
	Sanitizer interface {
		// Sanitize rewrites or validates a Unit before it's handed to
		// semantic analysis (escaping, normalization); out of scope here.
		Sanitize(u Unit) error
	}
	TypeSystem interface {
		// Resolve maps an Expr to its static type; out of scope here.
		Resolve(e syntax.Expr) (interface{}, error)
	}
)

// IncrementalLexer re-lexes a previously lexed buffer after an edit,
// exposing only the public lex(text) entry point spec.md §1 allows into
// the CORE (the state machine driving incremental re-lex is itself
// out of scope).
type IncrementalLexer interface {
	Lex(text []byte) []syntax.ScannedToken
}

// Factory identifies a language and produces, on demand, fresh owned
// instances of every collaborator. Any Make* method may legitimately
// return nil when the language has no hand-written implementation for
// that collaborator (SPEC_FULL.md §4.5) — callers must treat nil as
// "unavailable", never as an error. A Factory itself is stateless and
// carries no per-parse configuration; that flows entirely through the
// ParsingContext passed to whatever Parser it returns.
type Factory interface {
	LangName() LangId

	MakeLang() Lang
	MakeLexer(ctx *syntax.ParsingContext, src []byte) Lexer
	MakeParser(ctx *syntax.ParsingContext, src []byte) Parser
	MakeUnit(fileName string, prog *syntax.Program, diags []syntax.Diagnostic) Unit
	MakeBuiltin() Builtin
	MakeAstLocator(prog *syntax.Program) AstLocator
	MakeIncrementalLexer() IncrementalLexer
	MakeSanitizer() Sanitizer
	MakeTypeSystem() TypeSystem
}
