package syntax

import "github.com/polyfront/polyfront/internal/langcore/logging"

// maxErrors bounds panic-mode recovery: once the parser has reported this
// many UnexpectedToken diagnostics, Parse stops trying to make further
// sense of the token stream and unwinds to EOP. Lexer diagnostics and
// NameRequired are not counted.
const maxErrors = 50

// Parser is the hand-written recursive-descent parser for the Python-2
// dialect grammar (SPEC_FULL.md §4.4). It consumes a Lexer's token
// stream one token of lookahead at a time and builds the AST family from
// nodes.go, reporting diagnostics through its ParsingContext rather than
// raising exceptions — a malformed construct is recorded and the parser
// recovers at the next statement boundary (SPEC_FULL.md §9).
type Parser struct {
	lx  *Lexer
	ctx *ParsingContext

	tok Token
	lit string
	loc SourceLoc

	errcnt int
	abort  bool

	fnest int // function-nesting depth, tracked for future use by collaborators
}

// NewParser creates a Parser over src, reporting diagnostics into ctx.
func NewParser(ctx *ParsingContext, src []byte) *Parser {
	logging.Parsing(ctx.FileName(), len(src))
	p := &Parser{ctx: ctx}
	p.lx = NewLexer(ctx.FileName(), src, p.report)
	p.next()
	return p
}

func (p *Parser) report(kind DiagnosticKind, loc SourceLoc) {
	p.ctx.TrackReport(kind, loc)
}

// ----------------------------------------------------------------------------
// Token navigation

func (p *Parser) next() {
	t := p.lx.Next()
	p.tok, p.lit, p.loc = t.Tok, t.Lit, t.Loc
}

// got reports whether the current token is tok, consuming it if so.
func (p *Parser) got(tok Token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it matches tok, otherwise reports
// UnexpectedToken and recovers via advance.
func (p *Parser) want(tok Token) SourceLoc {
	loc := p.loc
	if !p.got(tok) {
		p.syntaxError()
		p.advance()
	}
	return loc
}

func (p *Parser) syntaxError() {
	p.syntaxErrorAt(p.loc)
}

func (p *Parser) syntaxErrorAt(loc SourceLoc) {
	if p.abort {
		return
	}
	p.errcnt++
	p.report(UnexpectedToken, loc)
	if p.errcnt >= maxErrors {
		p.abort = true
		p.tok = EOP
	}
}

// syncTokens are the panic-mode recovery points: statement and suite
// boundaries the parser can always resume from.
var syncTokens = map[Token]bool{
	NEWLINE: true, DEDENT: true, EOP: true,
	DEF: true, CLASS: true, IF: true, WHILE: true, FOR: true,
	TRY: true, WITH: true, RETURN: true, IMPORT: true,
}

// advance skips tokens until a synchronization point, per SPEC_FULL.md
// §9's skip-to-synchronization-token recovery strategy.
func (p *Parser) advance() {
	for p.tok != EOP && !syncTokens[p.tok] {
		p.next()
	}
}

// ----------------------------------------------------------------------------
// Names

func (p *Parser) name() *Name {
	if p.tok != IDENTIFIER {
		p.ctx.TrackReport(NameRequired, p.loc)
		return &Name{nameNode: nameNode{node{p.loc}}, Value: "_"}
	}
	n := &Name{nameNode: nameNode{node{p.loc}}, Value: p.lit}
	p.next()
	return n
}

// nestedName parses a dotted name: NAME ('.' NAME)*.
func (p *Parser) nestedName() *NestedName {
	start := p.loc
	var parts DelimitedList[*Name]
	parts.append(p.name())
	for p.tok == DOT {
		parts.appendDelim(p.loc)
		p.next()
		parts.append(p.name())
	}
	return &NestedName{nameNode: nameNode{node{Join(start, parts.Elems[len(parts.Elems)-1].Loc())}}, Parts: parts}
}

// ----------------------------------------------------------------------------
// Entry point

// Parse parses a complete source file and hands the resulting Program to
// p's ParsingContext via TakeAst.
func (p *Parser) Parse() *Program {
	start := p.loc
	prog := &Program{node: node{start}}

	for p.tok != EOP {
		if p.tok == NEWLINE {
			p.next()
			continue
		}
		prog.Stmts = append(prog.Stmts, p.stmt())
	}
	prog.node.loc = Join(start, p.loc)

	// Empty input and lone-NEWLINE input produce no statements; the context
	// must report an absent AST root for those, not an empty Program, so a
	// driver checking AstRoot() != nil gets "nothing parsed" correctly.
	if len(prog.Stmts) > 0 {
		p.ctx.TakeAst(prog)
	}
	logging.Parsed(p.ctx.FileName(), len(p.ctx.Diagnostics()))
	return prog
}

// ----------------------------------------------------------------------------
// Statement dispatch

func (p *Parser) stmt() Stmt {
	switch p.tok {
	case IF:
		return p.ifStmt()
	case WHILE:
		return p.whileStmt()
	case FOR:
		return p.forStmt()
	case TRY:
		return p.tryStmt()
	case WITH:
		return p.withStmt()
	case DEF:
		return p.funcDeclStmt(nil)
	case CLASS:
		return p.classDeclStmt()
	case AT:
		return p.decoratedStmt()
	default:
		return p.simpleStmtLine()
	}
}

// suite parses either a single-line simple_stmt, or a NEWLINE-INDENT
// stmt+ DEDENT block.
func (p *Parser) suite() Stmt {
	if p.tok != NEWLINE {
		return p.simpleStmtLine()
	}
	start := p.loc
	p.next() // NEWLINE
	p.want(INDENT)

	b := &Block{stmt: stmt{node{start}}}
	for p.tok != DEDENT && p.tok != EOP {
		b.Stmts = append(b.Stmts, p.stmt())
	}
	end := p.loc
	p.want(DEDENT)
	b.node.loc = Join(start, end)
	return b
}

// simpleStmtLine parses small_stmt (';' small_stmt)* [';'] NEWLINE, and
// folds multiple small-stmts into a Block.
func (p *Parser) simpleStmtLine() Stmt {
	start := p.loc
	first := p.smallStmt()
	if p.tok != SEMI {
		p.want(NEWLINE)
		return first
	}

	b := &Block{stmt: stmt{node{start}}, Stmts: []Stmt{first}}
	for p.got(SEMI) {
		if p.tok == NEWLINE || p.tok == EOP {
			break
		}
		b.Stmts = append(b.Stmts, p.smallStmt())
	}
	b.node.loc = Join(start, p.loc)
	p.want(NEWLINE)
	return b
}

func (p *Parser) smallStmt() Stmt {
	switch p.tok {
	case PRINT:
		return p.keywordCallStmt(PRINT, "print")
	case DEL:
		return p.keywordCallStmt(DEL, "del")
	case PASS:
		loc := p.loc
		p.next()
		return &EmptyStmt{stmt{node{loc}}}
	case BREAK:
		loc := p.loc
		p.next()
		return &BreakStmt{stmt{node{loc}}}
	case CONTINUE:
		loc := p.loc
		p.next()
		return &ContinueStmt{stmt{node{loc}}}
	case RETURN:
		return p.returnStmt()
	case RAISE:
		return p.raiseStmt()
	case YIELD:
		return p.yieldStmt()
	case IMPORT, FROM:
		return &DeclStmt{stmt: stmt{node{p.loc}}, Decl: p.importStmt()}
	case GLOBAL:
		return p.keywordCallStmt(GLOBAL, "global")
	case EXEC:
		return p.execStmt()
	case ASSERT:
		return p.keywordCallStmt(ASSERT, "assert")
	default:
		return p.exprStmt()
	}
}

// keywordCallStmt folds a keyword-led simple statement (print/del/global
// /assert) into an ExprStmt over a synthetic call, so the closed statement
// node set of SPEC_FULL.md §3 needs no extra node types.
func (p *Parser) keywordCallStmt(tok Token, name string) Stmt {
	start := p.loc
	p.next()
	fun := &IdentExpr{expr: expr{node{start}}, Name: &Name{nameNode: nameNode{node{start}}, Value: name}}
	var args ExprList
	if !p.atSimpleStmtEnd() {
		args, _ = p.testlist()
	}
	call := &CallExpr{expr: expr{node{Join(start, p.loc)}}, Fun: fun, Args: args}
	return &ExprStmt{stmt: stmt{node{call.Loc()}}, X: call}
}

func (p *Parser) atSimpleStmtEnd() bool {
	return p.tok == NEWLINE || p.tok == SEMI || p.tok == EOP
}

func (p *Parser) returnStmt() Stmt {
	start := p.loc
	p.next()
	var val Expr
	if !p.atSimpleStmtEnd() {
		val = p.testlistAsExpr()
	}
	return &ReturnStmt{stmt: stmt{node{Join(start, p.loc)}}, Value: val}
}

func (p *Parser) raiseStmt() Stmt {
	start := p.loc
	p.next()
	var val Expr
	if !p.atSimpleStmtEnd() {
		val = p.testlistAsExpr()
	}
	return &ThrowStmt{stmt: stmt{node{Join(start, p.loc)}}, Value: val}
}

func (p *Parser) yieldStmt() Stmt {
	start := p.loc
	y := p.yieldExpr()
	return &YieldStmt{stmt: stmt{node{Join(start, p.loc)}}, Value: y.(*YieldExpr).Value}
}

// execStmt parses 'exec' expr ['in' test [',' test]]. The code operand
// is parsed at the arith() level rather than test()/orTest(), since
// those include the comparison grammar's own 'in' operator and would
// swallow the statement's trailing 'in globals[, locals]' clause.
func (p *Parser) execStmt() Stmt {
	start := p.loc
	p.next()
	code := p.arith(0)
	ev := &EvalStmt{stmt: stmt{node{start}}, Code: code}
	if p.got(IN) {
		ev.Globals = p.test()
		if p.got(COMMA) {
			ev.Locals = p.test()
		}
	}
	ev.node.loc = Join(start, p.loc)
	return ev
}

// exprStmt parses testlist (augassign testlist | ('=' testlist)*),
// producing an Assign for any '=' chain or augmented operator, or a bare
// ExprStmt otherwise.
func (p *Parser) exprStmt() Stmt {
	start := p.loc
	lhs := p.testlistAsExpr()

	if p.tok.isAugAssign() {
		op := p.tok
		p.next()
		rhs := p.yieldOrTestlistAsExpr()
		return &ExprStmt{stmt: stmt{node{Join(start, p.loc)}}, X: &Assign{
			expr: expr{node{Join(start, p.loc)}}, Op: op, Targets: []Expr{lhs}, Value: rhs,
		}}
	}

	if p.tok != ASSIGN {
		return &ExprStmt{stmt: stmt{node{lhs.Loc()}}, X: lhs}
	}

	targets := []Expr{lhs}
	var value Expr
	for p.got(ASSIGN) {
		value = p.yieldOrTestlistAsExpr()
		if p.tok == ASSIGN {
			targets = append(targets, value)
			continue
		}
	}
	assign := &Assign{expr: expr{node{Join(start, p.loc)}}, Op: ASSIGN, Targets: targets, Value: value}
	return &ExprStmt{stmt: stmt{node{assign.Loc()}}, X: assign}
}

func (p *Parser) yieldOrTestlistAsExpr() Expr {
	if p.tok == YIELD {
		return p.yieldExpr()
	}
	return p.testlistAsExpr()
}

// ----------------------------------------------------------------------------
// Compound statements

func (p *Parser) ifStmt() Stmt {
	start := p.loc
	p.next()
	cond := p.test()
	p.want(COLON)
	then := p.suite()

	s := &IfStmt{stmt: stmt{node{start}}, Cond: cond, Then: then}
	if p.tok == ELIF {
		s.Else = p.elifStmt()
	} else if p.got(ELSE) {
		p.want(COLON)
		s.Else = p.suite()
	}
	s.node.loc = Join(start, s.lastLoc())
	return s
}

func (s *IfStmt) lastLoc() SourceLoc {
	if s.Else != nil {
		return s.Else.Loc()
	}
	return s.Then.Loc()
}

// elifStmt parses a chained 'elif' as a nested IfStmt occupying the outer
// if's Else slot.
func (p *Parser) elifStmt() Stmt {
	start := p.loc
	p.next() // elif
	cond := p.test()
	p.want(COLON)
	then := p.suite()

	s := &IfStmt{stmt: stmt{node{start}}, Cond: cond, Then: then}
	if p.tok == ELIF {
		s.Else = p.elifStmt()
	} else if p.got(ELSE) {
		p.want(COLON)
		s.Else = p.suite()
	}
	s.node.loc = Join(start, s.lastLoc())
	return s
}

func (p *Parser) whileStmt() Stmt {
	start := p.loc
	p.next()
	cond := p.test()
	p.want(COLON)
	body := p.suite()

	s := &WhileStmt{stmt: stmt{node{start}}, Cond: cond, Body: body}
	if p.got(ELSE) {
		p.want(COLON)
		s.ElseBody = p.suite()
	}
	end := body.Loc()
	if s.ElseBody != nil {
		end = s.ElseBody.Loc()
	}
	s.node.loc = Join(start, end)
	return s
}

// forStmt parses 'for' exprlist 'in' testlist ':' suite ['else' ':' suite],
// reinterpreting the target list as a DesignateExpr per SPEC_FULL.md §4.4.
func (p *Parser) forStmt() Stmt {
	start := p.loc
	p.next()
	targetList := p.exprlist()
	folded := foldExprList(targetList)
	target := &DesignateExpr{expr: expr{node{folded.Loc()}}, Target: folded}
	p.want(IN)
	iter := p.testlistAsExpr()
	p.want(COLON)
	body := p.suite()

	s := &ForStmt{stmt: stmt{node{start}}, Target: target, Iter: iter, Body: body}
	if p.got(ELSE) {
		p.want(COLON)
		s.ElseBody = p.suite()
	}
	end := body.Loc()
	if s.ElseBody != nil {
		end = s.ElseBody.Loc()
	}
	s.node.loc = Join(start, end)
	return s
}

func (p *Parser) tryStmt() Stmt {
	start := p.loc
	p.next()
	p.want(COLON)
	body := p.suite()

	s := &TryStmt{stmt: stmt{node{start}}, Body: body}
	for p.tok == EXCEPT {
		s.Catches = append(s.Catches, p.exceptClause())
	}
	if len(s.Catches) > 0 && p.got(ELSE) {
		p.want(COLON)
		s.Else = p.suite()
	}
	if p.got(FINALLY) {
		p.want(COLON)
		s.Finally = p.suite()
	}
	end := body.Loc()
	switch {
	case s.Finally != nil:
		end = s.Finally.Loc()
	case s.Else != nil:
		end = s.Else.Loc()
	case len(s.Catches) > 0:
		end = s.Catches[len(s.Catches)-1].Body.Loc()
	}
	s.node.loc = Join(start, end)
	return s
}

// exceptClause parses 'except' [test [('as'|',') NAME]] ':' suite.
func (p *Parser) exceptClause() *Catch {
	start := p.loc
	p.next()
	c := &Catch{node: node{start}}
	if p.tok != COLON {
		c.Spec = p.test()
		if p.tok == AS || p.tok == COMMA {
			p.next()
			c.Bind = p.name()
		}
	}
	p.want(COLON)
	c.Body = p.suite()
	c.node.loc = Join(start, c.Body.Loc())
	return c
}

func (p *Parser) withStmt() Stmt {
	start := p.loc
	p.next()
	s := &WithStmt{stmt: stmt{node{start}}}
	s.Items = append(s.Items, p.withItem())
	for p.got(COMMA) {
		s.Items = append(s.Items, p.withItem())
	}
	p.want(COLON)
	s.Body = p.suite()
	s.node.loc = Join(start, s.Body.Loc())
	return s
}

func (p *Parser) withItem() *WithItem {
	start := p.loc
	ctx := p.test()
	item := &WithItem{node: node{start}, Ctx: ctx}
	if p.got(AS) {
		item.Bind = p.expr()
	}
	end := ctx.Loc()
	if item.Bind != nil {
		end = item.Bind.Loc()
	}
	item.node.loc = Join(start, end)
	return item
}

// ----------------------------------------------------------------------------
// Declarations: import

func (p *Parser) importStmt() Decl {
	if p.tok == FROM {
		return p.fromImport()
	}
	return p.plainImport()
}

// plainImport parses 'import' dotted_as_names.
func (p *Parser) plainImport() Decl {
	start := p.loc
	p.next()
	d := &ImportClause{decl: decl{node{start}}}
	d.Modules = append(d.Modules, p.dottedAsName())
	for p.got(COMMA) {
		d.Modules = append(d.Modules, p.dottedAsName())
	}
	d.node.loc = Join(start, p.loc)
	return d
}

func (p *Parser) dottedAsName() *ImportModule {
	start := p.loc
	name := p.nestedName()
	m := &ImportModule{node: node{start}, Name: name}
	if p.got(AS) {
		m.Alias = p.name()
	}
	end := name.Loc()
	if m.Alias != nil {
		end = m.Alias.Loc()
	}
	m.node.loc = Join(start, end)
	return m
}

// fromImport parses 'from' ('.'* dotted_name | '.'+) 'import'
// ('*' | '(' import_as_names ')' | import_as_names).
func (p *Parser) fromImport() Decl {
	start := p.loc
	p.next()

	depth := 0
	for p.tok == DOT || p.tok == ELLIPSIS {
		if p.tok == ELLIPSIS {
			depth += 3
		} else {
			depth++
		}
		p.next()
	}

	var modName *NestedName
	if p.tok == IDENTIFIER {
		modName = p.nestedName()
	}

	p.want(IMPORT)

	mod := &ImportModule{node: node{start}, Name: modName, Selective: true}
	switch {
	case p.tok == MUL:
		mod.Star = true
		p.next()
	case p.got(LPAREN):
		mod.Members = append(mod.Members, p.importAsName())
		for p.got(COMMA) {
			if p.tok == RPAREN {
				break
			}
			mod.Members = append(mod.Members, p.importAsName())
		}
		p.want(RPAREN)
	default:
		mod.Members = append(mod.Members, p.importAsName())
		for p.got(COMMA) {
			mod.Members = append(mod.Members, p.importAsName())
		}
	}
	mod.node.loc = Join(start, p.loc)

	return &ImportClause{decl: decl{node{Join(start, p.loc)}}, RelativeDepth: depth, Modules: []*ImportModule{mod}}
}

func (p *Parser) importAsName() *ImportMember {
	start := p.loc
	n := p.name()
	m := &ImportMember{node: node{start}, Name: n}
	if p.got(AS) {
		m.Alias = p.name()
	}
	end := n.Loc()
	if m.Alias != nil {
		end = m.Alias.Loc()
	}
	m.node.loc = Join(start, end)
	return m
}

// ----------------------------------------------------------------------------
// Declarations: def/class/decorators

func (p *Parser) decoratedStmt() Stmt {
	start := p.loc
	var decorators []Expr
	for p.tok == AT {
		decorators = append(decorators, p.decorator())
	}
	var d Decl
	switch p.tok {
	case DEF:
		d = p.funcDecl(decorators)
	case CLASS:
		d = p.classDecl()
	default:
		p.syntaxError()
		p.advance()
		return &EmptyStmt{stmt{node{start}}}
	}
	return &DeclStmt{stmt: stmt{node{Join(start, d.Loc())}}, Decl: d}
}

// decorator parses '@' dotted_name ['(' [arglist] ')'] NEWLINE. The call
// arguments are parsed (to stay in sync with the token stream) and then
// discarded: FuncDecl.Decorators records only the decorator expression
// itself, per DESIGN.md's resolution of SPEC_FULL.md §9's decorator-args
// Open Question.
func (p *Parser) decorator() Expr {
	start := p.loc
	p.next() // '@'
	name := p.nestedName()
	target := foldNestedName(name)
	if p.got(LPAREN) {
		if p.tok != RPAREN {
			p.arglist()
		}
		p.want(RPAREN)
	}
	p.want(NEWLINE)
	if id, ok := target.(*IdentExpr); ok {
		id.node.loc = Join(start, p.loc)
	}
	return target
}

func (p *Parser) funcDeclStmt(decorators []Expr) Stmt {
	d := p.funcDecl(decorators)
	return &DeclStmt{stmt: stmt{node{d.Loc()}}, Decl: d}
}

func (p *Parser) funcDecl(decorators []Expr) *FuncDecl {
	start := p.loc
	p.next() // def
	name := p.name()
	params := p.paramClause()
	p.want(COLON)
	p.fnest++
	body := p.suite()
	p.fnest--
	return &FuncDecl{decl: decl{node{Join(start, body.Loc())}}, Name: name, Params: params, Body: body, Decorators: decorators}
}

func (p *Parser) paramClause() *ParamClause {
	start := p.loc
	p.want(LPAREN)
	pc := &ParamClause{decl: decl{node{start}}}
	for p.tok != RPAREN && p.tok != EOP {
		pc.Params = append(pc.Params, p.param())
		if !p.got(COMMA) {
			break
		}
	}
	p.want(RPAREN)
	pc.node.loc = Join(start, p.loc)
	return pc
}

func (p *Parser) param() *Param {
	start := p.loc
	variadic := NoVariadic
	switch {
	case p.got(POW):
		variadic = StarStarVariadic
	case p.got(MUL):
		variadic = StarVariadic
	}
	name := p.name()
	pr := &Param{decl: decl{node{start}}, Name: name, Variadic: variadic}
	if variadic == NoVariadic && p.got(ASSIGN) {
		pr.Default = p.test()
	}
	end := name.Loc()
	if pr.Default != nil {
		end = pr.Default.Loc()
	}
	pr.node.loc = Join(start, end)
	return pr
}

func (p *Parser) classDeclStmt() Stmt {
	d := p.classDecl()
	return &DeclStmt{stmt: stmt{node{d.Loc()}}, Decl: d}
}

func (p *Parser) classDecl() *RecordDecl {
	start := p.loc
	p.next() // class
	name := p.name()
	d := &RecordDecl{decl: decl{node{start}}, Name: name}
	if p.got(LPAREN) {
		if p.tok != RPAREN {
			d.Bases = p.classBases()
		}
		p.want(RPAREN)
	}
	p.want(COLON)
	d.Body = p.suite()
	d.node.loc = Join(start, d.Body.Loc())
	return d
}

// classBases parses the comma-separated base-class list. Only bases that
// are plain identifiers are recorded as a BaseDecl; any other base
// expression (e.g. a member access like pkg.Base) is parsed and dropped,
// per DESIGN.md's resolution of SPEC_FULL.md §9's class-bases Open
// Question.
func (p *Parser) classBases() []*BaseDecl {
	var bases []*BaseDecl
	for {
		start := p.loc
		base := p.test()
		if id, ok := base.(*IdentExpr); ok {
			bases = append(bases, &BaseDecl{decl: decl{node{start}}, Name: id.Name})
		}
		if !p.got(COMMA) {
			break
		}
		if p.tok == RPAREN {
			break
		}
	}
	return bases
}
