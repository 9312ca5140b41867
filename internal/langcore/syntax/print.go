package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented textual representation of node to w, walking
// children in declaration order. It is meant for debugging a parse, not
// for round-tripping source.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) block(label string, body Stmt) {
	p.printf("%s:\n", label)
	p.indent++
	p.print(body)
	p.indent--
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		p.printf("Program %s\n", n.loc)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *Name:
		p.printf("Name %s %q\n", n.loc, n.Value)

	case *NestedName:
		parts := make([]string, len(n.Parts.Elems))
		for i, part := range n.Parts.Elems {
			parts[i] = part.Value
		}
		p.printf("NestedName %s %s\n", n.loc, strings.Join(parts, "."))

	case *BasicLit:
		p.printf("BasicLit %s %s %q\n", n.loc, n.Kind, n.Value)

	case *IdentExpr:
		p.printf("IdentExpr %s %q\n", n.loc, n.Name.Value)

	case *UnaryExpr:
		p.printf("UnaryExpr %s %s\n", n.loc, n.Op)
		p.indent++
		p.print(n.X)
		p.indent--

	case *BinaryExpr:
		neg := ""
		if n.Negated {
			neg = " negated"
		}
		p.printf("BinaryExpr %s %s%s\n", n.loc, n.Op, neg)
		p.indent++
		p.print(n.X)
		p.print(n.Y)
		p.indent--

	case *CallExpr:
		p.printf("CallExpr %s\n", n.loc)
		p.indent++
		p.printf("Fun:\n")
		p.indent++
		p.print(n.Fun)
		p.indent--
		if n.Args.Len() > 0 {
			p.printf("Args:\n")
			p.indent++
			for _, a := range n.Args.Elems {
				p.print(a)
			}
			p.indent--
		}
		p.indent--

	case *MemberExpr:
		p.printf("MemberExpr %s .%s\n", n.loc, n.Sel.Value)
		p.indent++
		p.print(n.X)
		p.indent--

	case *IndexExpr:
		p.printf("IndexExpr %s\n", n.loc)
		p.indent++
		p.print(n.X)
		p.print(n.Index)
		p.indent--

	case *Subrange:
		p.printf("Subrange %s ellipsis=%v\n", n.loc, n.Ellipsis)
		p.indent++
		if n.Low != nil {
			p.print(n.Low)
		}
		if n.High != nil {
			p.print(n.High)
		}
		if n.Step != nil {
			p.print(n.Step)
		}
		p.indent--

	case *DictExpr:
		p.printf("DictExpr %s\n", n.loc)
		p.indent++
		for _, kv := range n.Entries.Elems {
			p.print(kv)
		}
		p.indent--

	case *KeyValueExpr:
		p.printf("KeyValueExpr %s\n", n.loc)
		p.indent++
		p.print(n.Key)
		p.print(n.Value)
		p.indent--

	case *SetExpr:
		p.printf("SetExpr %s\n", n.loc)
		p.indent++
		for _, e := range n.Elems.Elems {
			p.print(e)
		}
		p.indent--

	case *ListExpr:
		p.printf("ListExpr %s\n", n.loc)
		p.indent++
		for _, e := range n.Elems.Elems {
			p.print(e)
		}
		p.indent--

	case *TupleExpr:
		p.printf("TupleExpr %s paren=%v\n", n.loc, n.Paren)
		p.indent++
		for _, e := range n.Elems.Elems {
			p.print(e)
		}
		p.indent--

	case *ListCompre:
		p.printf("ListCompre %s kind=%d\n", n.loc, n.Kind)
		p.indent++
		p.printf("Elem:\n")
		p.indent++
		p.print(n.Elem)
		p.indent--
		for _, g := range n.Generators {
			p.print(g)
		}
		p.indent--

	case *Generator:
		p.printf("Generator %s\n", n.loc)
		p.indent++
		for _, pat := range n.Pattern.Elems {
			p.print(pat)
		}
		p.print(n.Iterable)
		for _, f := range n.Filters {
			p.print(f)
		}
		p.indent--

	case *Assign:
		p.printf("Assign %s %s\n", n.loc, n.Op)
		p.indent++
		p.printf("Targets:\n")
		p.indent++
		for _, t := range n.Targets {
			p.print(t)
		}
		p.indent--
		if n.Value != nil {
			p.printf("Value:\n")
			p.indent++
			p.print(n.Value)
			p.indent--
		}
		p.indent--

	case *Conditional:
		p.printf("Conditional %s\n", n.loc)
		p.indent++
		p.print(n.Then)
		p.print(n.Cond)
		p.print(n.Else)
		p.indent--

	case *WrappedExpr:
		p.printf("WrappedExpr %s\n", n.loc)
		p.indent++
		p.print(n.X)
		p.indent--

	case *YieldExpr:
		p.printf("YieldExpr %s\n", n.loc)
		if n.Value != nil {
			p.indent++
			p.print(n.Value)
			p.indent--
		}

	case *UnpackExpr:
		p.printf("UnpackExpr %s double=%v\n", n.loc, n.Double)
		p.indent++
		p.print(n.X)
		p.indent--

	case *DesignateExpr:
		p.printf("DesignateExpr %s\n", n.loc)
		p.indent++
		p.print(n.Target)
		p.indent--

	case *FuncLit:
		p.printf("FuncLit %s\n", n.loc)
		p.indent++
		p.print(n.Params)
		p.print(n.Body)
		p.indent--

	case *Block:
		p.printf("Block %s\n", n.loc)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *IfStmt:
		p.printf("IfStmt %s\n", n.loc)
		p.indent++
		p.printf("Cond:\n")
		p.indent++
		p.print(n.Cond)
		p.indent--
		p.block("Then", n.Then)
		if n.Else != nil {
			p.block("Else", n.Else)
		}
		p.indent--

	case *WhileStmt:
		p.printf("WhileStmt %s\n", n.loc)
		p.indent++
		p.printf("Cond:\n")
		p.indent++
		p.print(n.Cond)
		p.indent--
		p.block("Body", n.Body)
		if n.ElseBody != nil {
			p.block("Else", n.ElseBody)
		}
		p.indent--

	case *ForStmt:
		p.printf("ForStmt %s\n", n.loc)
		p.indent++
		p.printf("Target:\n")
		p.indent++
		p.print(n.Target)
		p.indent--
		p.printf("Iter:\n")
		p.indent++
		p.print(n.Iter)
		p.indent--
		p.block("Body", n.Body)
		if n.ElseBody != nil {
			p.block("Else", n.ElseBody)
		}
		p.indent--

	case *TryStmt:
		p.printf("TryStmt %s\n", n.loc)
		p.indent++
		p.block("Body", n.Body)
		for _, c := range n.Catches {
			p.print(c)
		}
		if n.Else != nil {
			p.block("Else", n.Else)
		}
		if n.Finally != nil {
			p.block("Finally", n.Finally)
		}
		p.indent--

	case *Catch:
		p.printf("Catch %s\n", n.loc)
		p.indent++
		if n.Spec != nil {
			p.printf("Spec:\n")
			p.indent++
			p.print(n.Spec)
			p.indent--
		}
		if n.Bind != nil {
			p.printf("Bind: %s\n", n.Bind.Value)
		}
		p.block("Body", n.Body)
		p.indent--

	case *WithStmt:
		p.printf("WithStmt %s\n", n.loc)
		p.indent++
		for _, item := range n.Items {
			p.print(item)
		}
		p.block("Body", n.Body)
		p.indent--

	case *WithItem:
		p.printf("WithItem %s\n", n.loc)
		p.indent++
		p.print(n.Ctx)
		if n.Bind != nil {
			p.print(n.Bind)
		}
		p.indent--

	case *ReturnStmt:
		p.printf("ReturnStmt %s\n", n.loc)
		if n.Value != nil {
			p.indent++
			p.print(n.Value)
			p.indent--
		}

	case *BreakStmt:
		p.printf("BreakStmt %s\n", n.loc)

	case *ContinueStmt:
		p.printf("ContinueStmt %s\n", n.loc)

	case *ThrowStmt:
		p.printf("ThrowStmt %s\n", n.loc)
		if n.Value != nil {
			p.indent++
			p.print(n.Value)
			p.indent--
		}

	case *YieldStmt:
		p.printf("YieldStmt %s\n", n.loc)
		if n.Value != nil {
			p.indent++
			p.print(n.Value)
			p.indent--
		}

	case *EmptyStmt:
		p.printf("EmptyStmt %s\n", n.loc)

	case *EvalStmt:
		p.printf("EvalStmt %s\n", n.loc)
		p.indent++
		p.print(n.Code)
		if n.Globals != nil {
			p.print(n.Globals)
		}
		if n.Locals != nil {
			p.print(n.Locals)
		}
		p.indent--

	case *DeclStmt:
		p.printf("DeclStmt %s\n", n.loc)
		p.indent++
		p.print(n.Decl)
		p.indent--

	case *ExprStmt:
		p.printf("ExprStmt %s\n", n.loc)
		p.indent++
		p.print(n.X)
		p.indent--

	case *ImportClause:
		p.printf("ImportClause %s depth=%d\n", n.loc, n.RelativeDepth)
		p.indent++
		for _, m := range n.Modules {
			p.print(m)
		}
		p.indent--

	case *ImportModule:
		p.printf("ImportModule %s star=%v\n", n.loc, n.Star)
		p.indent++
		if n.Name != nil {
			p.print(n.Name)
		}
		if n.Alias != nil {
			p.printf("Alias: %s\n", n.Alias.Value)
		}
		for _, m := range n.Members {
			p.print(m)
		}
		p.indent--

	case *ImportMember:
		p.printf("ImportMember %s %s\n", n.loc, n.Name.Value)
		if n.Alias != nil {
			p.indent++
			p.printf("Alias: %s\n", n.Alias.Value)
			p.indent--
		}

	case *RecordDecl:
		p.printf("RecordDecl %s %q\n", n.loc, n.Name.Value)
		p.indent++
		for _, b := range n.Bases {
			p.print(b)
		}
		p.block("Body", n.Body)
		p.indent--

	case *BaseDecl:
		p.printf("BaseDecl %s %s\n", n.loc, n.Name.Value)

	case *FuncDecl:
		p.printf("FuncDecl %s %q\n", n.loc, n.Name.Value)
		p.indent++
		p.print(n.Params)
		for _, d := range n.Decorators {
			p.print(d)
		}
		p.block("Body", n.Body)
		p.indent--

	case *ParamClause:
		p.printf("ParamClause %s\n", n.loc)
		p.indent++
		for _, pr := range n.Params {
			p.print(pr)
		}
		p.indent--

	case *Param:
		p.printf("Param %s %s variadic=%d\n", n.loc, n.Name.Value, n.Variadic)
		if n.Default != nil {
			p.indent++
			p.print(n.Default)
			p.indent--
		}

	default:
		p.printf("<%T>\n", node)
	}
}
