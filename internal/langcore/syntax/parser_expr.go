package syntax

// This file implements the expression grammar of SPEC_FULL.md §4.4: the
// ternary/or/and/not/comparison layers, the precedence-climbing
// arithmetic/bitwise chain (Token.arithPrecedence), power/trailer/atom
// parsing, and the comprehension and argument-list sub-grammars.

// expr is the parser's general entry point for a single expression.
func (p *Parser) expr() Expr {
	return p.test()
}

// test: or_test ['if' or_test 'else' test] | lambdef
func (p *Parser) test() Expr {
	if p.tok == LAMBDA {
		return p.lambdef()
	}
	start := p.loc
	then := p.orTest()
	if !p.got(IF) {
		return then
	}
	cond := p.orTest()
	p.want(ELSE)
	els := p.test()
	return &Conditional{expr: expr{node{Join(start, els.Loc())}}, Then: then, Cond: cond, Else: els}
}

// oldTest is used by comp_if, which (per the historical grammar) excludes
// lambdef from its condition; here it is identical to orTest since this
// CORE does not distinguish the two contexts further.
func (p *Parser) oldTest() Expr {
	return p.orTest()
}

func (p *Parser) lambdef() Expr {
	start := p.loc
	p.next() // lambda
	params := &ParamClause{decl: decl{node{p.loc}}}
	if p.tok != COLON {
		for {
			params.Params = append(params.Params, p.param())
			if !p.got(COMMA) {
				break
			}
		}
	}
	p.want(COLON)
	bodyExpr := p.test()
	body := &ExprStmt{stmt: stmt{node{bodyExpr.Loc()}}, X: bodyExpr}
	return &FuncLit{expr: expr{node{Join(start, bodyExpr.Loc())}}, Params: params, Body: body}
}

// orTest: and_test ('or' and_test)*
func (p *Parser) orTest() Expr {
	x := p.andTest()
	for p.tok == OR_KW {
		p.next()
		y := p.andTest()
		x = &BinaryExpr{expr: expr{node{Join(x.Loc(), y.Loc())}}, Op: OR_KW, X: x, Y: y}
	}
	return x
}

// andTest: not_test ('and' not_test)*
func (p *Parser) andTest() Expr {
	x := p.notTest()
	for p.tok == AND_KW {
		p.next()
		y := p.notTest()
		x = &BinaryExpr{expr: expr{node{Join(x.Loc(), y.Loc())}}, Op: AND_KW, X: x, Y: y}
	}
	return x
}

// notTest: 'not' not_test | comparison
func (p *Parser) notTest() Expr {
	if p.tok == NOT {
		start := p.loc
		p.next()
		x := p.notTest()
		return &UnaryExpr{expr: expr{node{Join(start, x.Loc())}}, Op: NOT, X: x}
	}
	return p.comparison()
}

// comparison: expr (comp_op expr)*, where comp_op also covers the
// keyword-led 'in'/'not in'/'is'/'is not' forms.
func (p *Parser) comparison() Expr {
	x := p.arith(0)
	for {
		switch {
		case p.tok.isComparisonOp():
			op := p.tok
			p.next()
			y := p.arith(0)
			x = &BinaryExpr{expr: expr{node{Join(x.Loc(), y.Loc())}}, Op: op, X: x, Y: y}

		case p.tok == IN:
			p.next()
			y := p.arith(0)
			x = &BinaryExpr{expr: expr{node{Join(x.Loc(), y.Loc())}}, Op: IN, X: x, Y: y}

		case p.tok == NOT:
			// A bare 'not x' never reaches comparison() mid-chain (notTest
			// handles it before calling down here), so NOT at this point
			// always introduces the two-keyword 'not in' operator.
			p.next() // not
			p.want(IN)
			y := p.arith(0)
			x = &BinaryExpr{expr: expr{node{Join(x.Loc(), y.Loc())}}, Op: IN, Negated: true, X: x, Y: y}

		case p.tok == IS:
			p.next()
			negated := p.got(NOT)
			y := p.arith(0)
			x = &BinaryExpr{expr: expr{node{Join(x.Loc(), y.Loc())}}, Op: IS, Negated: negated, X: x, Y: y}

		default:
			return x
		}
	}
}

// arith implements the precedence-climbing loop over the arithmetic and
// bitwise operator chain (Or < Xor < And < Shift < Term < Factor).
func (p *Parser) arith(minPrec int) Expr {
	x := p.factor()
	for {
		prec := p.tok.arithPrecedence()
		if prec == 0 || prec <= minPrec {
			return x
		}
		op := p.tok
		p.next()
		y := p.arith(prec)
		x = &BinaryExpr{expr: expr{node{Join(x.Loc(), y.Loc())}}, Op: op, X: x, Y: y}
	}
}

// factor: ('+'|'-'|'~') factor | power
func (p *Parser) factor() Expr {
	switch p.tok {
	case ADD, SUB, TILDE:
		start := p.loc
		op := p.tok
		p.next()
		x := p.factor()
		return &UnaryExpr{expr: expr{node{Join(start, x.Loc())}}, Op: op, X: x}
	default:
		return p.power()
	}
}

// power: atom trailer* ['**' factor]
func (p *Parser) power() Expr {
	x := p.atomTrailer()
	if p.got(POW) {
		y := p.factor()
		return &BinaryExpr{expr: expr{node{Join(x.Loc(), y.Loc())}}, Op: POW, X: x, Y: y}
	}
	return x
}

func (p *Parser) atomTrailer() Expr {
	x := p.atom()
	for {
		switch p.tok {
		case LPAREN:
			x = p.callTrailer(x)
		case LBRACKET:
			x = p.subscriptTrailer(x)
		case DOT:
			x = p.memberTrailer(x)
		default:
			return x
		}
	}
}

func (p *Parser) callTrailer(fun Expr) Expr {
	p.next() // (
	var args ExprList
	if p.tok != RPAREN {
		args = p.arglist()
	}
	end := p.loc
	p.want(RPAREN)
	return &CallExpr{expr: expr{node{Join(fun.Loc(), end)}}, Fun: fun, Args: args}
}

func (p *Parser) subscriptTrailer(x Expr) Expr {
	p.next() // [
	idx := p.subscriptList()
	end := p.loc
	p.want(RBRACKET)
	return &IndexExpr{expr: expr{node{Join(x.Loc(), end)}}, X: x, Index: idx}
}

func (p *Parser) memberTrailer(x Expr) Expr {
	p.next() // .
	sel := p.name()
	return &MemberExpr{expr: expr{node{Join(x.Loc(), sel.Loc())}}, X: x, Sel: sel}
}

// subscriptList parses a comma-separated list of subscripts, each of
// which may be a plain test or a [low:high:step] Subrange. A single
// subscript is returned bare; more than one is wrapped in a TupleExpr.
func (p *Parser) subscriptList() Expr {
	first := p.subscript()
	if p.tok != COMMA {
		return first
	}
	list := ExprList{}
	list.append(first)
	for p.tok == COMMA {
		commaLoc := p.loc
		p.next()
		if p.tok == RBRACKET {
			break
		}
		list.appendDelim(commaLoc)
		list.append(p.subscript())
	}
	return foldExprList(list)
}

func (p *Parser) subscript() Expr {
	start := p.loc
	if p.tok == ELLIPSIS {
		p.next()
		return &Subrange{expr: expr{node{start}}, Ellipsis: true}
	}

	var low, high, step Expr
	if p.tok != COLON {
		low = p.test()
	}
	if p.tok != COLON {
		return low
	}
	p.next() // :
	if p.tok != COLON && p.tok != RBRACKET && p.tok != COMMA {
		high = p.test()
	}
	if p.got(COLON) {
		if p.tok != RBRACKET && p.tok != COMMA {
			step = p.test()
		}
	}
	return &Subrange{expr: expr{node{Join(start, p.loc)}}, Low: low, High: high, Step: step}
}

// atom: '(' [yield_expr|testlist_comp] ')' | '[' [listmaker] ']'
//
//	| '{' [dictorsetmaker] '}' | NAME | NUMBER | STRING+
//	| 'None' | 'True' | 'False'
func (p *Parser) atom() Expr {
	start := p.loc
	switch p.tok {
	case LPAREN:
		return p.parenAtom(start)
	case LBRACKET:
		return p.listAtom(start)
	case LBRACE:
		return p.braceAtom(start)
	case IDENTIFIER:
		n := p.name()
		return &IdentExpr{expr: expr{node{n.Loc()}}, Name: n}
	case INTEGER_LITERAL:
		lit := p.lit
		p.next()
		return &BasicLit{expr: expr{node{start}}, Value: lit, Kind: IntLit}
	case FLOAT_LITERAL:
		lit := p.lit
		p.next()
		return &BasicLit{expr: expr{node{start}}, Value: lit, Kind: FloatLit}
	case STRING_LITERAL:
		return p.stringAtom(start)
	case NULL_LITERAL:
		p.next()
		return &IdentExpr{expr: expr{node{start}}, Name: &Name{nameNode: nameNode{node{start}}, Value: "None"}}
	case TRUE_LITERAL:
		p.next()
		return &IdentExpr{expr: expr{node{start}}, Name: &Name{nameNode: nameNode{node{start}}, Value: "True"}}
	case FALSE_LITERAL:
		p.next()
		return &IdentExpr{expr: expr{node{start}}, Name: &Name{nameNode: nameNode{node{start}}, Value: "False"}}
	default:
		p.syntaxError()
		p.advance()
		return &IdentExpr{expr: expr{node{start}}, Name: &Name{nameNode: nameNode{node{start}}, Value: "_"}}
	}
}

// stringAtom folds adjacent string literals (implicit concatenation) into
// a single BasicLit.
func (p *Parser) stringAtom(start SourceLoc) Expr {
	lit := p.lit
	p.next()
	for p.tok == STRING_LITERAL {
		lit += p.lit
		p.next()
	}
	return &BasicLit{expr: expr{node{Join(start, p.loc)}}, Value: lit, Kind: StrLit}
}

// parenAtom parses '(' [yield_expr|testlist_comp] ')'.
func (p *Parser) parenAtom(start SourceLoc) Expr {
	p.next() // (
	if p.got(RPAREN) {
		return &TupleExpr{expr: expr{node{Join(start, p.loc)}}, Paren: true}
	}
	if p.tok == YIELD {
		y := p.yieldExpr()
		end := p.loc
		p.want(RPAREN)
		return &WrappedExpr{expr: expr{node{Join(start, end)}}, X: y}
	}

	first := p.test()
	if p.tok == FOR {
		gens := p.compFor()
		end := p.loc
		p.want(RPAREN)
		return &ListCompre{expr: expr{node{Join(start, end)}}, Kind: GenCompreKind, Elem: first, Generators: gens}
	}

	if p.tok != COMMA {
		end := p.loc
		p.want(RPAREN)
		return &WrappedExpr{expr: expr{node{Join(start, end)}}, X: first}
	}

	list := ExprList{}
	list.append(first)
	for p.tok == COMMA {
		commaLoc := p.loc
		p.next()
		if p.tok == RPAREN {
			break
		}
		list.appendDelim(commaLoc)
		list.append(p.test())
	}
	end := p.loc
	p.want(RPAREN)
	return &TupleExpr{expr: expr{node{Join(start, end)}}, Elems: list, Paren: true}
}

// listAtom parses '[' [listmaker] ']'.
func (p *Parser) listAtom(start SourceLoc) Expr {
	p.next() // [
	if p.got(RBRACKET) {
		return &ListExpr{expr: expr{node{Join(start, p.loc)}}}
	}

	first := p.test()
	if p.tok == FOR {
		gens := p.compFor()
		end := p.loc
		p.want(RBRACKET)
		return &ListCompre{expr: expr{node{Join(start, end)}}, Kind: ListCompreKind, Elem: first, Generators: gens}
	}

	list := ExprList{}
	list.append(first)
	for p.tok == COMMA {
		commaLoc := p.loc
		p.next()
		if p.tok == RBRACKET {
			break
		}
		list.appendDelim(commaLoc)
		list.append(p.test())
	}
	end := p.loc
	p.want(RBRACKET)
	return &ListExpr{expr: expr{node{Join(start, end)}}, Elems: list}
}

// braceAtom parses '{' [dictorsetmaker] '}': a dict display/comprehension
// when a ':' follows the first element, a set display/comprehension
// otherwise.
func (p *Parser) braceAtom(start SourceLoc) Expr {
	p.next() // {
	if p.got(RBRACE) {
		return &DictExpr{expr: expr{node{Join(start, p.loc)}}}
	}

	firstKey := p.test()
	if p.got(COLON) {
		firstVal := p.test()
		kv := &KeyValueExpr{expr: expr{node{Join(firstKey.Loc(), firstVal.Loc())}}, Key: firstKey, Value: firstVal}

		if p.tok == FOR {
			gens := p.compFor()
			end := p.loc
			p.want(RBRACE)
			return &ListCompre{expr: expr{node{Join(start, end)}}, Kind: DictCompreKind, Elem: kv, Generators: gens}
		}

		entries := DelimitedList[*KeyValueExpr]{}
		entries.append(kv)
		for p.tok == COMMA {
			commaLoc := p.loc
			p.next()
			if p.tok == RBRACE {
				break
			}
			entries.appendDelim(commaLoc)
			k := p.test()
			p.want(COLON)
			v := p.test()
			entries.append(&KeyValueExpr{expr: expr{node{Join(k.Loc(), v.Loc())}}, Key: k, Value: v})
		}
		end := p.loc
		p.want(RBRACE)
		return &DictExpr{expr: expr{node{Join(start, end)}}, Entries: entries}
	}

	if p.tok == FOR {
		gens := p.compFor()
		end := p.loc
		p.want(RBRACE)
		return &ListCompre{expr: expr{node{Join(start, end)}}, Kind: SetCompreKind, Elem: firstKey, Generators: gens}
	}

	elems := ExprList{}
	elems.append(firstKey)
	for p.tok == COMMA {
		commaLoc := p.loc
		p.next()
		if p.tok == RBRACE {
			break
		}
		elems.appendDelim(commaLoc)
		elems.append(p.test())
	}
	end := p.loc
	p.want(RBRACE)
	return &SetExpr{expr: expr{node{Join(start, end)}}, Elems: elems}
}

// compFor parses one or more trailing 'for ... in ... [if ...]' clauses
// shared by every comprehension kind.
func (p *Parser) compFor() []*Generator {
	var gens []*Generator
	for p.tok == FOR {
		start := p.loc
		p.next()
		pattern := p.exprlist()
		p.want(IN)
		iter := p.orTest()
		g := &Generator{node: node{start}, Pattern: pattern, Iterable: iter}
		for p.tok == IF {
			p.next()
			g.Filters = append(g.Filters, p.oldTest())
		}
		end := iter.Loc()
		if len(g.Filters) > 0 {
			end = g.Filters[len(g.Filters)-1].Loc()
		}
		g.node.loc = Join(start, end)
		gens = append(gens, g)
	}
	return gens
}

// yieldExpr parses 'yield' [testlist].
func (p *Parser) yieldExpr() Expr {
	start := p.loc
	p.next()
	var val Expr
	if !p.atSimpleStmtEnd() && p.tok != RPAREN {
		val = p.testlistAsExpr()
	}
	return &YieldExpr{expr: expr{node{Join(start, p.loc)}}, Value: val}
}

// ----------------------------------------------------------------------------
// Lists: testlist, exprlist, arglist

// isListEnd reports whether the current token can only mean "this
// delimited list is over" — used to recognize a trailing comma after
// consuming it, since none of these tokens can start a test/expr.
func (p *Parser) isListEnd() bool {
	switch p.tok {
	case NEWLINE, SEMI, EOP, RPAREN, RBRACKET, RBRACE, COLON, ASSIGN, IN, DEDENT:
		return true
	}
	return false
}

// testlist: test (',' test)* [',']. The bool result reports whether a
// trailing comma was present, which testlistAsExpr needs to distinguish
// "x," (a 1-tuple) from a bare "x".
func (p *Parser) testlist() (ExprList, bool) {
	list := ExprList{}
	list.append(p.test())
	trailing := false
	for p.tok == COMMA {
		commaLoc := p.loc
		p.next()
		if p.isListEnd() {
			trailing = true
			break
		}
		list.appendDelim(commaLoc)
		list.append(p.test())
	}
	return list, trailing
}

// testlistAsExpr parses a testlist and folds it to a bare Expr (single
// element, no trailing comma) or a TupleExpr (more than one element, or a
// lone trailing comma).
func (p *Parser) testlistAsExpr() Expr {
	start := p.loc
	list, trailing := p.testlist()
	if list.Len() == 1 && !trailing {
		return list.Elems[0]
	}
	return &TupleExpr{expr: expr{node{Join(start, p.loc)}}, Elems: list}
}

// exprlist: expr (',' expr)* [','] — used by for-loop targets and
// comprehension 'for' targets, where "expr" excludes the ternary/lambda
// forms that testlist allows.
func (p *Parser) exprlist() ExprList {
	list := ExprList{}
	list.append(p.orExprForTarget())
	for p.tok == COMMA {
		commaLoc := p.loc
		p.next()
		if p.isListEnd() {
			break
		}
		list.appendDelim(commaLoc)
		list.append(p.orExprForTarget())
	}
	return list
}

// orExprForTarget parses a single assignment-target expression: the
// arithmetic/bitwise/trailer grammar, plus an optional leading '*' splat.
func (p *Parser) orExprForTarget() Expr {
	if p.tok == MUL {
		start := p.loc
		p.next()
		x := p.arith(0)
		return &UnpackExpr{expr: expr{node{Join(start, x.Loc())}}, X: x}
	}
	return p.arith(0)
}

// arglist: (argument ',')* (argument [','] | '*' test [',' '**' test] | '**' test)
func (p *Parser) arglist() ExprList {
	list := ExprList{}
	list.append(p.argument())
	for p.tok == COMMA {
		commaLoc := p.loc
		p.next()
		if p.tok == RPAREN {
			break
		}
		list.appendDelim(commaLoc)
		list.append(p.argument())
	}
	return list
}

// argument: test [comp_for] | test '=' test | '*' test | '**' test
func (p *Parser) argument() Expr {
	start := p.loc
	if p.tok == POW {
		p.next()
		x := p.test()
		return &UnpackExpr{expr: expr{node{Join(start, x.Loc())}}, X: x, Double: true}
	}
	if p.tok == MUL {
		p.next()
		x := p.test()
		return &UnpackExpr{expr: expr{node{Join(start, x.Loc())}}, X: x}
	}

	first := p.test()
	if p.got(ASSIGN) {
		val := p.test()
		return &Assign{expr: expr{node{Join(start, val.Loc())}}, Op: ASSIGN, Targets: []Expr{first}, Value: val}
	}
	if p.tok == FOR {
		gens := p.compFor()
		return &ListCompre{expr: expr{node{Join(start, p.loc)}}, Kind: GenCompreKind, Elem: first, Generators: gens}
	}
	return first
}

// ----------------------------------------------------------------------------
// Folding helpers shared with parser.go

// foldExprList folds a delimited expression list to a bare Expr when it
// has exactly one element and no trailing comma, or a TupleExpr otherwise
// (e.g. a for-loop's reinterpreted target list).
func foldExprList(list ExprList) Expr {
	if list.Len() == 1 && len(list.Delims) == 0 {
		return list.Elems[0]
	}
	var loc SourceLoc
	if list.Len() > 0 {
		loc = Join(list.Elems[0].Loc(), list.Elems[list.Len()-1].Loc())
	}
	return &TupleExpr{expr: expr{node{loc}}, Elems: list}
}

// foldNestedName turns a dotted name into the MemberExpr chain (or bare
// IdentExpr for a single part) an expression context expects.
func foldNestedName(n *NestedName) Expr {
	var x Expr = &IdentExpr{expr: expr{node{n.Parts.Elems[0].Loc()}}, Name: n.Parts.Elems[0]}
	for _, part := range n.Parts.Elems[1:] {
		x = &MemberExpr{expr: expr{node{Join(x.Loc(), part.Loc())}}, X: x, Sel: part}
	}
	return x
}

