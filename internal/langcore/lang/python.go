package lang

import "github.com/polyfront/polyfront/internal/langcore/syntax"

// PythonFactory is the only Factory with a hand-written Lexer and Parser
// in the CORE (SPEC_FULL.md §4.4/§4.6): the Python-2 dialect grammar.
type PythonFactory struct{}

func (PythonFactory) LangName() LangId { return Python }

func (PythonFactory) MakeLang() Lang { return pythonLang{} }

func (PythonFactory) MakeLexer(ctx *syntax.ParsingContext, src []byte) Lexer {
	return syntax.NewLexer(ctx.FileName(), src, ctx.TrackReport)
}

func (PythonFactory) MakeParser(ctx *syntax.ParsingContext, src []byte) Parser {
	return syntax.NewParser(ctx, src)
}

// MakeUnit and MakeAstLocator return working defaults. Builtin,
// IncrementalLexer, Sanitizer and TypeSystem are semantic-analysis
// territory, explicitly out of scope (spec.md §1); nil is the documented
// "unavailable" answer for them.
func (PythonFactory) MakeUnit(fileName string, prog *syntax.Program, diags []syntax.Diagnostic) Unit {
	return &genericUnit{fileName: fileName, prog: prog, diags: diags}
}
func (PythonFactory) MakeBuiltin() Builtin                           { return nil }
func (PythonFactory) MakeAstLocator(prog *syntax.Program) AstLocator { return newAstLocator(prog) }
func (PythonFactory) MakeIncrementalLexer() IncrementalLexer         { return nil }
func (PythonFactory) MakeSanitizer() Sanitizer                       { return nil }
func (PythonFactory) MakeTypeSystem() TypeSystem                     { return nil }

type pythonLang struct{}

func (pythonLang) Name() LangId          { return Python }
func (pythonLang) Syntax() syntax.Syntax { return syntax.Python }

// genericUnit is the default Unit: just the triple a driver needs to go on
// to navigation/completion tooling, with no semantic content attached.
type genericUnit struct {
	fileName string
	prog     *syntax.Program
	diags    []syntax.Diagnostic
}

func (u *genericUnit) FileName() string                 { return u.fileName }
func (u *genericUnit) Program() *syntax.Program         { return u.prog }
func (u *genericUnit) Diagnostics() []syntax.Diagnostic { return u.diags }
