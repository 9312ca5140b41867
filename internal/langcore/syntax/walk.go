package syntax

// Visitor is called for each node during Walk. If it returns false, the
// node's children are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order, calling v for every node
// reachable from node (including node itself). If v returns false for a
// node, that node's children are skipped.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	// Names

	case *Name:
		// leaf

	case *NestedName:
		for _, p := range n.Parts.Elems {
			Walk(p, v)
		}

	// Expressions

	case *BasicLit:
		// leaf

	case *IdentExpr:
		Walk(n.Name, v)

	case *UnaryExpr:
		Walk(n.X, v)

	case *BinaryExpr:
		Walk(n.X, v)
		Walk(n.Y, v)

	case *CallExpr:
		Walk(n.Fun, v)
		for _, a := range n.Args.Elems {
			Walk(a, v)
		}

	case *MemberExpr:
		Walk(n.X, v)
		Walk(n.Sel, v)

	case *IndexExpr:
		Walk(n.X, v)
		Walk(n.Index, v)

	case *Subrange:
		if n.Low != nil {
			Walk(n.Low, v)
		}
		if n.High != nil {
			Walk(n.High, v)
		}
		if n.Step != nil {
			Walk(n.Step, v)
		}

	case *DictExpr:
		for _, kv := range n.Entries.Elems {
			Walk(kv, v)
		}

	case *KeyValueExpr:
		Walk(n.Key, v)
		Walk(n.Value, v)

	case *SetExpr:
		for _, e := range n.Elems.Elems {
			Walk(e, v)
		}

	case *ListExpr:
		for _, e := range n.Elems.Elems {
			Walk(e, v)
		}

	case *TupleExpr:
		for _, e := range n.Elems.Elems {
			Walk(e, v)
		}

	case *ListCompre:
		Walk(n.Elem, v)
		for _, g := range n.Generators {
			Walk(g, v)
		}

	case *Generator:
		for _, p := range n.Pattern.Elems {
			Walk(p, v)
		}
		Walk(n.Iterable, v)
		for _, f := range n.Filters {
			Walk(f, v)
		}

	case *Assign:
		for _, t := range n.Targets {
			Walk(t, v)
		}
		if n.Value != nil {
			Walk(n.Value, v)
		}

	case *Conditional:
		Walk(n.Then, v)
		Walk(n.Cond, v)
		Walk(n.Else, v)

	case *WrappedExpr:
		Walk(n.X, v)

	case *YieldExpr:
		if n.Value != nil {
			Walk(n.Value, v)
		}

	case *UnpackExpr:
		Walk(n.X, v)

	case *DesignateExpr:
		Walk(n.Target, v)

	case *FuncLit:
		Walk(n.Params, v)
		Walk(n.Body, v)

	// Statements

	case *Block:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	case *IfStmt:
		Walk(n.Cond, v)
		Walk(n.Then, v)
		if n.Else != nil {
			Walk(n.Else, v)
		}

	case *WhileStmt:
		Walk(n.Cond, v)
		Walk(n.Body, v)
		if n.ElseBody != nil {
			Walk(n.ElseBody, v)
		}

	case *ForStmt:
		Walk(n.Target, v)
		Walk(n.Iter, v)
		Walk(n.Body, v)
		if n.ElseBody != nil {
			Walk(n.ElseBody, v)
		}

	case *TryStmt:
		Walk(n.Body, v)
		for _, c := range n.Catches {
			Walk(c, v)
		}
		if n.Else != nil {
			Walk(n.Else, v)
		}
		if n.Finally != nil {
			Walk(n.Finally, v)
		}

	case *Catch:
		if n.Spec != nil {
			Walk(n.Spec, v)
		}
		if n.Bind != nil {
			Walk(n.Bind, v)
		}
		Walk(n.Body, v)

	case *WithStmt:
		for _, item := range n.Items {
			Walk(item, v)
		}
		Walk(n.Body, v)

	case *WithItem:
		Walk(n.Ctx, v)
		if n.Bind != nil {
			Walk(n.Bind, v)
		}

	case *ReturnStmt:
		if n.Value != nil {
			Walk(n.Value, v)
		}

	case *BreakStmt, *ContinueStmt, *EmptyStmt:
		// leaf

	case *ThrowStmt:
		if n.Value != nil {
			Walk(n.Value, v)
		}

	case *YieldStmt:
		if n.Value != nil {
			Walk(n.Value, v)
		}

	case *EvalStmt:
		Walk(n.Code, v)
		if n.Globals != nil {
			Walk(n.Globals, v)
		}
		if n.Locals != nil {
			Walk(n.Locals, v)
		}

	case *DeclStmt:
		Walk(n.Decl, v)

	case *ExprStmt:
		Walk(n.X, v)

	// Declarations

	case *ImportClause:
		for _, m := range n.Modules {
			Walk(m, v)
		}

	case *ImportModule:
		if n.Name != nil {
			Walk(n.Name, v)
		}
		if n.Alias != nil {
			Walk(n.Alias, v)
		}
		for _, m := range n.Members {
			Walk(m, v)
		}

	case *ImportMember:
		Walk(n.Name, v)
		if n.Alias != nil {
			Walk(n.Alias, v)
		}

	case *RecordDecl:
		Walk(n.Name, v)
		for _, b := range n.Bases {
			Walk(b, v)
		}
		Walk(n.Body, v)

	case *BaseDecl:
		Walk(n.Name, v)

	case *FuncDecl:
		Walk(n.Name, v)
		Walk(n.Params, v)
		for _, d := range n.Decorators {
			Walk(d, v)
		}
		Walk(n.Body, v)

	case *ParamClause:
		for _, p := range n.Params {
			Walk(p, v)
		}

	case *Param:
		Walk(n.Name, v)
		if n.Default != nil {
			Walk(n.Default, v)
		}

	}
}

// Inspect traverses an AST and calls f for each node; a convenience
// wrapper around Walk for callers that don't need a named Visitor.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}
