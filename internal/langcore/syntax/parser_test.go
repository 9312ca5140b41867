package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseProgram(t *testing.T, src string) (*Program, *ParsingContext) {
	t.Helper()
	ctx := NewParsingContext("t.py")
	p := NewParser(ctx, []byte(src))
	prog := p.Parse()
	require.NotNil(t, prog)
	return prog, ctx
}

func TestParseAssignment(t *testing.T) {
	prog, ctx := parseProgram(t, "x = 1\n")
	require.Empty(t, ctx.Diagnostics())
	require.Len(t, prog.Stmts, 1)

	es, ok := prog.Stmts[0].(*ExprStmt)
	require.True(t, ok, "stmt is %T", prog.Stmts[0])
	assign, ok := es.X.(*Assign)
	require.True(t, ok, "expr is %T", es.X)
	assert.Equal(t, ASSIGN, assign.Op)
	require.Len(t, assign.Targets, 1)
	assert.Equal(t, "x", assign.Targets[0].(*IdentExpr).Name.Value)
	lit := assign.Value.(*BasicLit)
	assert.Equal(t, IntLit, lit.Kind)
	assert.Equal(t, "1", lit.Value)
}

func TestParseChainedAssignment(t *testing.T) {
	prog, ctx := parseProgram(t, "a = b = 1\n")
	require.Empty(t, ctx.Diagnostics())
	assign := prog.Stmts[0].(*ExprStmt).X.(*Assign)
	require.Len(t, assign.Targets, 2)
	assert.Equal(t, "a", assign.Targets[0].(*IdentExpr).Name.Value)
	assert.Equal(t, "b", assign.Targets[1].(*IdentExpr).Name.Value)
}

func TestParseAugmentedAssignment(t *testing.T) {
	prog, ctx := parseProgram(t, "x += 1\n")
	require.Empty(t, ctx.Diagnostics())
	assign := prog.Stmts[0].(*ExprStmt).X.(*Assign)
	assert.Equal(t, ADD_ASSIGN, assign.Op)
}

func TestParseTupleAssignment(t *testing.T) {
	prog, ctx := parseProgram(t, "a, b = 1, 2\n")
	require.Empty(t, ctx.Diagnostics())
	assign := prog.Stmts[0].(*ExprStmt).X.(*Assign)
	tup, ok := assign.Targets[0].(*TupleExpr)
	require.True(t, ok, "target is %T", assign.Targets[0])
	assert.Equal(t, 2, tup.Elems.Len())
	val := assign.Value.(*TupleExpr)
	assert.Equal(t, 2, val.Elems.Len())
}

func TestParseIfElifElse(t *testing.T) {
	src := "if a:\n    x = 1\nelif b:\n    x = 2\nelse:\n    x = 3\n"
	prog, ctx := parseProgram(t, src)
	require.Empty(t, ctx.Diagnostics())
	top, ok := prog.Stmts[0].(*IfStmt)
	require.True(t, ok)
	elif, ok := top.Else.(*IfStmt)
	require.True(t, ok, "Else is %T, want nested *IfStmt", top.Else)
	_, ok = elif.Else.(*Block)
	assert.True(t, ok, "elif.Else is %T, want *Block", elif.Else)
}

func TestParseWhileElse(t *testing.T) {
	prog, ctx := parseProgram(t, "while x:\n    pass\nelse:\n    y = 1\n")
	require.Empty(t, ctx.Diagnostics())
	ws := prog.Stmts[0].(*WhileStmt)
	require.NotNil(t, ws.ElseBody)
}

func TestParseForLoop(t *testing.T) {
	prog, ctx := parseProgram(t, "for x in y:\n    print x\n")
	require.Empty(t, ctx.Diagnostics())
	fs := prog.Stmts[0].(*ForStmt)
	des, ok := fs.Target.(*DesignateExpr)
	require.True(t, ok, "target is %T", fs.Target)
	assert.Equal(t, "x", des.Target.(*IdentExpr).Name.Value)
	assert.Equal(t, "y", fs.Iter.(*IdentExpr).Name.Value)
}

func TestParseForTupleTarget(t *testing.T) {
	prog, ctx := parseProgram(t, "for k, v in d:\n    pass\n")
	require.Empty(t, ctx.Diagnostics())
	fs := prog.Stmts[0].(*ForStmt)
	des := fs.Target.(*DesignateExpr)
	tup, ok := des.Target.(*TupleExpr)
	require.True(t, ok, "target is %T", des.Target)
	assert.Equal(t, 2, tup.Elems.Len())
}

func TestParseTryExceptElseFinally(t *testing.T) {
	src := "try:\n    x = 1\nexcept ValueError as e:\n    y = 2\nelse:\n    z = 3\nfinally:\n    w = 4\n"
	prog, ctx := parseProgram(t, src)
	require.Empty(t, ctx.Diagnostics())
	ts := prog.Stmts[0].(*TryStmt)
	require.Len(t, ts.Catches, 1)
	assert.Equal(t, "ValueError", ts.Catches[0].Spec.(*IdentExpr).Name.Value)
	assert.Equal(t, "e", ts.Catches[0].Bind.Value)
	require.NotNil(t, ts.Else)
	require.NotNil(t, ts.Finally)
}

func TestParseWithStatement(t *testing.T) {
	prog, ctx := parseProgram(t, "with open(f) as h:\n    pass\n")
	require.Empty(t, ctx.Diagnostics())
	ws := prog.Stmts[0].(*WithStmt)
	require.Len(t, ws.Items, 1)
	require.NotNil(t, ws.Items[0].Bind)
	assert.Equal(t, "h", ws.Items[0].Bind.(*IdentExpr).Name.Value)
}

func TestParseFuncDecl(t *testing.T) {
	prog, ctx := parseProgram(t, "def f(a, b=1, *args, **kwargs):\n    return a\n")
	require.Empty(t, ctx.Diagnostics())
	ds := prog.Stmts[0].(*DeclStmt)
	fd, ok := ds.Decl.(*FuncDecl)
	require.True(t, ok, "decl is %T", ds.Decl)
	assert.Equal(t, "f", fd.Name.Value)
	require.Len(t, fd.Params.Params, 4)
	assert.Equal(t, NoVariadic, fd.Params.Params[0].Variadic)
	require.NotNil(t, fd.Params.Params[1].Default)
	assert.Equal(t, StarVariadic, fd.Params.Params[2].Variadic)
	assert.Equal(t, StarStarVariadic, fd.Params.Params[3].Variadic)
}

func TestParseDecoratedFunc(t *testing.T) {
	prog, ctx := parseProgram(t, "@staticmethod\ndef f():\n    pass\n")
	require.Empty(t, ctx.Diagnostics())
	ds := prog.Stmts[0].(*DeclStmt)
	fd := ds.Decl.(*FuncDecl)
	require.Len(t, fd.Decorators, 1)
	assert.Equal(t, "staticmethod", fd.Decorators[0].(*IdentExpr).Name.Value)
}

func TestParseClassDecl(t *testing.T) {
	prog, ctx := parseProgram(t, "class Foo(Base):\n    pass\n")
	require.Empty(t, ctx.Diagnostics())
	ds := prog.Stmts[0].(*DeclStmt)
	rd, ok := ds.Decl.(*RecordDecl)
	require.True(t, ok, "decl is %T", ds.Decl)
	assert.Equal(t, "Foo", rd.Name.Value)
	require.Len(t, rd.Bases, 1)
	assert.Equal(t, "Base", rd.Bases[0].Name.Value)
}

func TestParseImportPlain(t *testing.T) {
	prog, ctx := parseProgram(t, "import os, sys as system\n")
	require.Empty(t, ctx.Diagnostics())
	ds := prog.Stmts[0].(*DeclStmt)
	ic := ds.Decl.(*ImportClause)
	require.Len(t, ic.Modules, 2)
	assert.Equal(t, "os", ic.Modules[0].Name.Parts.Elems[0].Value)
	require.NotNil(t, ic.Modules[1].Alias)
	assert.Equal(t, "system", ic.Modules[1].Alias.Value)
}

func TestParseImportFrom(t *testing.T) {
	prog, ctx := parseProgram(t, "from pkg.sub import a, b as c\n")
	require.Empty(t, ctx.Diagnostics())
	ds := prog.Stmts[0].(*DeclStmt)
	ic := ds.Decl.(*ImportClause)
	require.Len(t, ic.Modules, 1)
	mod := ic.Modules[0]
	assert.True(t, mod.Selective)
	require.Len(t, mod.Members, 2)
	assert.Equal(t, "a", mod.Members[0].Name.Value)
	assert.Equal(t, "b", mod.Members[1].Name.Value)
	assert.Equal(t, "c", mod.Members[1].Alias.Value)
}

func TestParseExpressionPrecedence(t *testing.T) {
	prog, ctx := parseProgram(t, "x = 1 + 2 * 3\n")
	require.Empty(t, ctx.Diagnostics())
	assign := prog.Stmts[0].(*ExprStmt).X.(*Assign)
	top := assign.Value.(*BinaryExpr)
	assert.Equal(t, ADD, top.Op)
	_, ok := top.X.(*BasicLit)
	assert.True(t, ok)
	mul, ok := top.Y.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, MUL, mul.Op)
}

func TestParseNotIn(t *testing.T) {
	prog, ctx := parseProgram(t, "x = a not in b\n")
	require.Empty(t, ctx.Diagnostics())
	assign := prog.Stmts[0].(*ExprStmt).X.(*Assign)
	bin := assign.Value.(*BinaryExpr)
	assert.Equal(t, IN, bin.Op)
	assert.True(t, bin.Negated)
}

func TestParseIsNot(t *testing.T) {
	prog, ctx := parseProgram(t, "x = a is not b\n")
	require.Empty(t, ctx.Diagnostics())
	assign := prog.Stmts[0].(*ExprStmt).X.(*Assign)
	bin := assign.Value.(*BinaryExpr)
	assert.Equal(t, IS, bin.Op)
	assert.True(t, bin.Negated)
}

func TestParseTernary(t *testing.T) {
	prog, ctx := parseProgram(t, "x = a if cond else b\n")
	require.Empty(t, ctx.Diagnostics())
	assign := prog.Stmts[0].(*ExprStmt).X.(*Assign)
	cond, ok := assign.Value.(*Conditional)
	require.True(t, ok, "value is %T", assign.Value)
	assert.Equal(t, "a", cond.Then.(*IdentExpr).Name.Value)
	assert.Equal(t, "b", cond.Else.(*IdentExpr).Name.Value)
}

func TestParseLambda(t *testing.T) {
	prog, ctx := parseProgram(t, "f = lambda x, y=1: x + y\n")
	require.Empty(t, ctx.Diagnostics())
	assign := prog.Stmts[0].(*ExprStmt).X.(*Assign)
	fn, ok := assign.Value.(*FuncLit)
	require.True(t, ok, "value is %T", assign.Value)
	require.Len(t, fn.Params.Params, 2)
}

func TestParseListComprehension(t *testing.T) {
	prog, ctx := parseProgram(t, "x = [i for i in xs if i]\n")
	require.Empty(t, ctx.Diagnostics())
	assign := prog.Stmts[0].(*ExprStmt).X.(*Assign)
	lc, ok := assign.Value.(*ListCompre)
	require.True(t, ok, "value is %T", assign.Value)
	assert.Equal(t, ListCompreKind, lc.Kind)
	require.Len(t, lc.Generators, 1)
	require.Len(t, lc.Generators[0].Filters, 1)
}

func TestParseDictComprehension(t *testing.T) {
	prog, ctx := parseProgram(t, "x = {k: v for k, v in d}\n")
	require.Empty(t, ctx.Diagnostics())
	assign := prog.Stmts[0].(*ExprStmt).X.(*Assign)
	lc, ok := assign.Value.(*ListCompre)
	require.True(t, ok, "value is %T", assign.Value)
	assert.Equal(t, DictCompreKind, lc.Kind)
	_, ok = lc.Elem.(*KeyValueExpr)
	assert.True(t, ok)
}

func TestParseDictDisplay(t *testing.T) {
	prog, ctx := parseProgram(t, "x = {1: 2, 3: 4}\n")
	require.Empty(t, ctx.Diagnostics())
	assign := prog.Stmts[0].(*ExprStmt).X.(*Assign)
	d, ok := assign.Value.(*DictExpr)
	require.True(t, ok, "value is %T", assign.Value)
	assert.Equal(t, 2, d.Entries.Len())
}

func TestParseSetDisplay(t *testing.T) {
	prog, ctx := parseProgram(t, "x = {1, 2, 3}\n")
	require.Empty(t, ctx.Diagnostics())
	assign := prog.Stmts[0].(*ExprStmt).X.(*Assign)
	s, ok := assign.Value.(*SetExpr)
	require.True(t, ok, "value is %T", assign.Value)
	assert.Equal(t, 3, s.Elems.Len())
}

func TestParseSlice(t *testing.T) {
	prog, ctx := parseProgram(t, "x = a[1:2:3]\n")
	require.Empty(t, ctx.Diagnostics())
	assign := prog.Stmts[0].(*ExprStmt).X.(*Assign)
	idx := assign.Value.(*IndexExpr)
	sub, ok := idx.Index.(*Subrange)
	require.True(t, ok, "index is %T", idx.Index)
	require.NotNil(t, sub.Low)
	require.NotNil(t, sub.High)
	require.NotNil(t, sub.Step)
}

func TestParseCallWithKwargsAndStar(t *testing.T) {
	prog, ctx := parseProgram(t, "f(1, *args, key=2, **kwargs)\n")
	require.Empty(t, ctx.Diagnostics())
	es := prog.Stmts[0].(*ExprStmt)
	call := es.X.(*CallExpr)
	require.Equal(t, 4, call.Args.Len())
	_, ok := call.Args.Elems[1].(*UnpackExpr)
	assert.True(t, ok)
	kw, ok := call.Args.Elems[2].(*Assign)
	assert.True(t, ok)
	assert.Equal(t, "key", kw.Targets[0].(*IdentExpr).Name.Value)
	up := call.Args.Elems[3].(*UnpackExpr)
	assert.True(t, up.Double)
}

func TestParsePrintStatement(t *testing.T) {
	prog, ctx := parseProgram(t, "print x, y\n")
	require.Empty(t, ctx.Diagnostics())
	es := prog.Stmts[0].(*ExprStmt)
	call, ok := es.X.(*CallExpr)
	require.True(t, ok, "x is %T", es.X)
	assert.Equal(t, "print", call.Fun.(*IdentExpr).Name.Value)
	assert.Equal(t, 2, call.Args.Len())
}

func TestParseExecStatement(t *testing.T) {
	prog, ctx := parseProgram(t, "exec code in g, l\n")
	require.Empty(t, ctx.Diagnostics())
	ev, ok := prog.Stmts[0].(*EvalStmt)
	require.True(t, ok, "stmt is %T", prog.Stmts[0])
	require.NotNil(t, ev.Globals)
	require.NotNil(t, ev.Locals)
}

func TestParseBacktickAsStringLiteral(t *testing.T) {
	prog, ctx := parseProgram(t, "x = `repr me`\n")
	require.Empty(t, ctx.Diagnostics())
	assign := prog.Stmts[0].(*ExprStmt).X.(*Assign)
	lit := assign.Value.(*BasicLit)
	assert.Equal(t, StrLit, lit.Kind)
	assert.Equal(t, "repr me", lit.Value)
}

func TestParseIndentedBlock(t *testing.T) {
	src := "if a:\n    x = 1\n    y = 2\n"
	prog, ctx := parseProgram(t, src)
	require.Empty(t, ctx.Diagnostics())
	ifs := prog.Stmts[0].(*IfStmt)
	b := ifs.Then.(*Block)
	assert.Len(t, b.Stmts, 2)
}

func TestParseErrorReportsUnexpectedToken(t *testing.T) {
	_, ctx := parseProgram(t, "x = = 1\n")
	require.NotEmpty(t, ctx.Diagnostics())
	assert.Equal(t, UnexpectedToken, ctx.Diagnostics()[0].Kind)
}

func TestParseEmptyInputLeavesAstRootAbsent(t *testing.T) {
	ctx := NewParsingContext("t.py")
	p := NewParser(ctx, []byte(""))
	prog := p.Parse()
	require.NotNil(t, prog, "Parse itself always returns a Program")
	assert.Empty(t, prog.Stmts)
	assert.Nil(t, ctx.AstRoot(), "empty input must leave the context's AST root absent")
}

func TestParseLoneNewlinesLeaveAstRootAbsent(t *testing.T) {
	ctx := NewParsingContext("t.py")
	p := NewParser(ctx, []byte("\n\n\n"))
	prog := p.Parse()
	require.NotNil(t, prog)
	assert.Empty(t, prog.Stmts)
	assert.Nil(t, ctx.AstRoot(), "lone NEWLINEs must leave the context's AST root absent")
}

func TestParseDoesNotPanicOnTruncatedInput(t *testing.T) {
	badInputs := []string{
		"",
		"def",
		"if x:",
		"class Foo(",
		"x = (((",
		"for x in",
	}
	for _, src := range badInputs {
		src := src
		t.Run(src, func(t *testing.T) {
			assert.NotPanics(t, func() {
				ctx := NewParsingContext("fuzz.py")
				p := NewParser(ctx, []byte(src))
				_ = p.Parse()
			})
		})
	}
}

func TestWalkVisitsProgram(t *testing.T) {
	prog, ctx := parseProgram(t, "x = 1 + 2\n")
	require.Empty(t, ctx.Diagnostics())

	var nodeCount, identCount int
	Walk(prog, func(n Node) bool {
		nodeCount++
		if _, ok := n.(*IdentExpr); ok {
			identCount++
		}
		return true
	})
	assert.Greater(t, nodeCount, 0)
	assert.Equal(t, 1, identCount)
}

func TestInspectFindsIfStmt(t *testing.T) {
	src := "if x:\n    if y:\n        pass\n"
	prog, ctx := parseProgram(t, src)
	require.Empty(t, ctx.Diagnostics())

	var ifCount int
	Inspect(prog, func(n Node) bool {
		if _, ok := n.(*IfStmt); ok {
			ifCount++
		}
		return true
	})
	assert.Equal(t, 2, ifCount)
}
