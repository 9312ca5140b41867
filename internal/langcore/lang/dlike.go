package lang

import "github.com/polyfront/polyfront/internal/langcore/syntax"

// DFactory is the illustrative D-like language; see GoFactory's doc
// comment for why its Lexer/Parser are legitimately nil.
type DFactory struct{}

func (DFactory) LangName() LangId { return D }
func (DFactory) MakeLang() Lang   { return dLikeLang{} }

func (DFactory) MakeLexer(ctx *syntax.ParsingContext, src []byte) Lexer   { return nil }
func (DFactory) MakeParser(ctx *syntax.ParsingContext, src []byte) Parser { return nil }

func (DFactory) MakeUnit(fileName string, prog *syntax.Program, diags []syntax.Diagnostic) Unit {
	return &genericUnit{fileName: fileName, prog: prog, diags: diags}
}
func (DFactory) MakeBuiltin() Builtin                           { return nil }
func (DFactory) MakeAstLocator(prog *syntax.Program) AstLocator { return nil }
func (DFactory) MakeIncrementalLexer() IncrementalLexer         { return nil }
func (DFactory) MakeSanitizer() Sanitizer                       { return nil }
func (DFactory) MakeTypeSystem() TypeSystem                     { return nil }

type dLikeLang struct{}

func (dLikeLang) Name() LangId          { return D }
func (dLikeLang) Syntax() syntax.Syntax { return syntax.DLike }
