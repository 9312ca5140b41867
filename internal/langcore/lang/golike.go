package lang

import "github.com/polyfront/polyfront/internal/langcore/syntax"

// GoFactory is the illustrative Go-like language: it has a Syntax
// capability for classification (tokenizing, keyword recognition) but no
// hand-written Lexer or Parser, since its grammar is assumed generated
// externally (SPEC_FULL.md §4.6/§9's makeLexer/makeParser-may-be-nil
// rule). A driver asking MakeLexer/MakeParser for Go gets nil and must
// treat that as "unavailable", never as an error.
type GoFactory struct{}

func (GoFactory) LangName() LangId { return Go }
func (GoFactory) MakeLang() Lang   { return goLikeLang{} }

func (GoFactory) MakeLexer(ctx *syntax.ParsingContext, src []byte) Lexer { return nil }
func (GoFactory) MakeParser(ctx *syntax.ParsingContext, src []byte) Parser { return nil }

func (GoFactory) MakeUnit(fileName string, prog *syntax.Program, diags []syntax.Diagnostic) Unit {
	return &genericUnit{fileName: fileName, prog: prog, diags: diags}
}
func (GoFactory) MakeBuiltin() Builtin                           { return nil }
func (GoFactory) MakeAstLocator(prog *syntax.Program) AstLocator { return nil }
func (GoFactory) MakeIncrementalLexer() IncrementalLexer         { return nil }
func (GoFactory) MakeSanitizer() Sanitizer                       { return nil }
func (GoFactory) MakeTypeSystem() TypeSystem                     { return nil }

type goLikeLang struct{}

func (goLikeLang) Name() LangId          { return Go }
func (goLikeLang) Syntax() syntax.Syntax { return syntax.GoLike }
