package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of node to w, one value per
// node kind; used by cmd/polyfrontdump to hand a parse off to tools that
// don't link against this package.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Program:
		return map[string]interface{}{
			"type":  "Program",
			"loc":   n.loc.String(),
			"stmts": mapStmts(n.Stmts),
		}

	case *Name:
		return map[string]interface{}{
			"type":  "Name",
			"loc":   n.loc.String(),
			"value": n.Value,
		}

	case *NestedName:
		return map[string]interface{}{
			"type":  "NestedName",
			"loc":   n.loc.String(),
			"parts": mapNames(n.Parts.Elems),
		}

	case *BasicLit:
		return map[string]interface{}{
			"type":  "BasicLit",
			"loc":   n.loc.String(),
			"kind":  n.Kind.String(),
			"value": n.Value,
		}

	case *IdentExpr:
		return map[string]interface{}{
			"type": "IdentExpr",
			"loc":  n.loc.String(),
			"name": n.Name.Value,
		}

	case *UnaryExpr:
		return map[string]interface{}{
			"type": "UnaryExpr",
			"loc":  n.loc.String(),
			"op":   n.Op.String(),
			"x":    toJSON(n.X),
		}

	case *BinaryExpr:
		return map[string]interface{}{
			"type":    "BinaryExpr",
			"loc":     n.loc.String(),
			"op":      n.Op.String(),
			"negated": n.Negated,
			"x":       toJSON(n.X),
			"y":       toJSON(n.Y),
		}

	case *CallExpr:
		return map[string]interface{}{
			"type": "CallExpr",
			"loc":  n.loc.String(),
			"fun":  toJSON(n.Fun),
			"args": mapExprs(n.Args.Elems),
		}

	case *MemberExpr:
		return map[string]interface{}{
			"type": "MemberExpr",
			"loc":  n.loc.String(),
			"x":    toJSON(n.X),
			"sel":  n.Sel.Value,
		}

	case *IndexExpr:
		return map[string]interface{}{
			"type":  "IndexExpr",
			"loc":   n.loc.String(),
			"x":     toJSON(n.X),
			"index": toJSON(n.Index),
		}

	case *Subrange:
		m := map[string]interface{}{
			"type":     "Subrange",
			"loc":      n.loc.String(),
			"ellipsis": n.Ellipsis,
		}
		if n.Low != nil {
			m["low"] = toJSON(n.Low)
		}
		if n.High != nil {
			m["high"] = toJSON(n.High)
		}
		if n.Step != nil {
			m["step"] = toJSON(n.Step)
		}
		return m

	case *DictExpr:
		entries := make([]interface{}, len(n.Entries.Elems))
		for i, kv := range n.Entries.Elems {
			entries[i] = toJSON(kv)
		}
		return map[string]interface{}{
			"type":    "DictExpr",
			"loc":     n.loc.String(),
			"entries": entries,
		}

	case *KeyValueExpr:
		return map[string]interface{}{
			"type":  "KeyValueExpr",
			"loc":   n.loc.String(),
			"key":   toJSON(n.Key),
			"value": toJSON(n.Value),
		}

	case *SetExpr:
		return map[string]interface{}{
			"type":  "SetExpr",
			"loc":   n.loc.String(),
			"elems": mapExprs(n.Elems.Elems),
		}

	case *ListExpr:
		return map[string]interface{}{
			"type":  "ListExpr",
			"loc":   n.loc.String(),
			"elems": mapExprs(n.Elems.Elems),
		}

	case *TupleExpr:
		return map[string]interface{}{
			"type":  "TupleExpr",
			"loc":   n.loc.String(),
			"paren": n.Paren,
			"elems": mapExprs(n.Elems.Elems),
		}

	case *ListCompre:
		gens := make([]interface{}, len(n.Generators))
		for i, g := range n.Generators {
			gens[i] = toJSON(g)
		}
		return map[string]interface{}{
			"type":       "ListCompre",
			"loc":        n.loc.String(),
			"kind":       int(n.Kind),
			"elem":       toJSON(n.Elem),
			"generators": gens,
		}

	case *Generator:
		return map[string]interface{}{
			"type":     "Generator",
			"loc":      n.loc.String(),
			"pattern":  mapExprs(n.Pattern.Elems),
			"iterable": toJSON(n.Iterable),
			"filters":  mapExprs(n.Filters),
		}

	case *Assign:
		return map[string]interface{}{
			"type":    "Assign",
			"loc":     n.loc.String(),
			"op":      n.Op.String(),
			"targets": mapExprs(n.Targets),
			"value":   toJSON(n.Value),
		}

	case *Conditional:
		return map[string]interface{}{
			"type": "Conditional",
			"loc":  n.loc.String(),
			"then": toJSON(n.Then),
			"cond": toJSON(n.Cond),
			"else": toJSON(n.Else),
		}

	case *WrappedExpr:
		return map[string]interface{}{
			"type": "WrappedExpr",
			"loc":  n.loc.String(),
			"x":    toJSON(n.X),
		}

	case *YieldExpr:
		m := map[string]interface{}{
			"type": "YieldExpr",
			"loc":  n.loc.String(),
		}
		if n.Value != nil {
			m["value"] = toJSON(n.Value)
		}
		return m

	case *UnpackExpr:
		return map[string]interface{}{
			"type":   "UnpackExpr",
			"loc":    n.loc.String(),
			"double": n.Double,
			"x":      toJSON(n.X),
		}

	case *DesignateExpr:
		return map[string]interface{}{
			"type":   "DesignateExpr",
			"loc":    n.loc.String(),
			"target": toJSON(n.Target),
		}

	case *FuncLit:
		return map[string]interface{}{
			"type":   "FuncLit",
			"loc":    n.loc.String(),
			"params": toJSON(n.Params),
			"body":   toJSON(n.Body),
		}

	case *Block:
		return map[string]interface{}{
			"type":  "Block",
			"loc":   n.loc.String(),
			"stmts": mapStmts(n.Stmts),
		}

	case *IfStmt:
		m := map[string]interface{}{
			"type": "IfStmt",
			"loc":  n.loc.String(),
			"cond": toJSON(n.Cond),
			"then": toJSON(n.Then),
		}
		if n.Else != nil {
			m["else"] = toJSON(n.Else)
		}
		return m

	case *WhileStmt:
		m := map[string]interface{}{
			"type": "WhileStmt",
			"loc":  n.loc.String(),
			"cond": toJSON(n.Cond),
			"body": toJSON(n.Body),
		}
		if n.ElseBody != nil {
			m["else"] = toJSON(n.ElseBody)
		}
		return m

	case *ForStmt:
		m := map[string]interface{}{
			"type":   "ForStmt",
			"loc":    n.loc.String(),
			"target": toJSON(n.Target),
			"iter":   toJSON(n.Iter),
			"body":   toJSON(n.Body),
		}
		if n.ElseBody != nil {
			m["else"] = toJSON(n.ElseBody)
		}
		return m

	case *TryStmt:
		catches := make([]interface{}, len(n.Catches))
		for i, c := range n.Catches {
			catches[i] = toJSON(c)
		}
		m := map[string]interface{}{
			"type":    "TryStmt",
			"loc":     n.loc.String(),
			"body":    toJSON(n.Body),
			"catches": catches,
		}
		if n.Else != nil {
			m["else"] = toJSON(n.Else)
		}
		if n.Finally != nil {
			m["finally"] = toJSON(n.Finally)
		}
		return m

	case *Catch:
		m := map[string]interface{}{
			"type": "Catch",
			"loc":  n.loc.String(),
			"body": toJSON(n.Body),
		}
		if n.Spec != nil {
			m["spec"] = toJSON(n.Spec)
		}
		if n.Bind != nil {
			m["bind"] = n.Bind.Value
		}
		return m

	case *WithStmt:
		items := make([]interface{}, len(n.Items))
		for i, it := range n.Items {
			items[i] = toJSON(it)
		}
		return map[string]interface{}{
			"type":  "WithStmt",
			"loc":   n.loc.String(),
			"items": items,
			"body":  toJSON(n.Body),
		}

	case *WithItem:
		m := map[string]interface{}{
			"type": "WithItem",
			"loc":  n.loc.String(),
			"ctx":  toJSON(n.Ctx),
		}
		if n.Bind != nil {
			m["bind"] = toJSON(n.Bind)
		}
		return m

	case *ReturnStmt:
		m := map[string]interface{}{
			"type": "ReturnStmt",
			"loc":  n.loc.String(),
		}
		if n.Value != nil {
			m["value"] = toJSON(n.Value)
		}
		return m

	case *BreakStmt:
		return map[string]interface{}{"type": "BreakStmt", "loc": n.loc.String()}

	case *ContinueStmt:
		return map[string]interface{}{"type": "ContinueStmt", "loc": n.loc.String()}

	case *ThrowStmt:
		m := map[string]interface{}{
			"type": "ThrowStmt",
			"loc":  n.loc.String(),
		}
		if n.Value != nil {
			m["value"] = toJSON(n.Value)
		}
		return m

	case *YieldStmt:
		m := map[string]interface{}{
			"type": "YieldStmt",
			"loc":  n.loc.String(),
		}
		if n.Value != nil {
			m["value"] = toJSON(n.Value)
		}
		return m

	case *EmptyStmt:
		return map[string]interface{}{"type": "EmptyStmt", "loc": n.loc.String()}

	case *EvalStmt:
		m := map[string]interface{}{
			"type": "EvalStmt",
			"loc":  n.loc.String(),
			"code": toJSON(n.Code),
		}
		if n.Globals != nil {
			m["globals"] = toJSON(n.Globals)
		}
		if n.Locals != nil {
			m["locals"] = toJSON(n.Locals)
		}
		return m

	case *DeclStmt:
		return map[string]interface{}{
			"type": "DeclStmt",
			"loc":  n.loc.String(),
			"decl": toJSON(n.Decl),
		}

	case *ExprStmt:
		return map[string]interface{}{
			"type": "ExprStmt",
			"loc":  n.loc.String(),
			"x":    toJSON(n.X),
		}

	case *ImportClause:
		modules := make([]interface{}, len(n.Modules))
		for i, m := range n.Modules {
			modules[i] = toJSON(m)
		}
		return map[string]interface{}{
			"type":    "ImportClause",
			"loc":     n.loc.String(),
			"depth":   n.RelativeDepth,
			"modules": modules,
		}

	case *ImportModule:
		m := map[string]interface{}{
			"type":      "ImportModule",
			"loc":       n.loc.String(),
			"selective": n.Selective,
			"star":      n.Star,
		}
		if n.Name != nil {
			m["name"] = toJSON(n.Name)
		}
		if n.Alias != nil {
			m["alias"] = n.Alias.Value
		}
		if len(n.Members) > 0 {
			members := make([]interface{}, len(n.Members))
			for i, mem := range n.Members {
				members[i] = toJSON(mem)
			}
			m["members"] = members
		}
		return m

	case *ImportMember:
		m := map[string]interface{}{
			"type": "ImportMember",
			"loc":  n.loc.String(),
			"name": n.Name.Value,
		}
		if n.Alias != nil {
			m["alias"] = n.Alias.Value
		}
		return m

	case *RecordDecl:
		bases := make([]interface{}, len(n.Bases))
		for i, b := range n.Bases {
			bases[i] = toJSON(b)
		}
		return map[string]interface{}{
			"type":  "RecordDecl",
			"loc":   n.loc.String(),
			"name":  n.Name.Value,
			"bases": bases,
			"body":  toJSON(n.Body),
		}

	case *BaseDecl:
		return map[string]interface{}{
			"type": "BaseDecl",
			"loc":  n.loc.String(),
			"name": n.Name.Value,
		}

	case *FuncDecl:
		decorators := make([]interface{}, len(n.Decorators))
		for i, d := range n.Decorators {
			decorators[i] = toJSON(d)
		}
		return map[string]interface{}{
			"type":       "FuncDecl",
			"loc":        n.loc.String(),
			"name":       n.Name.Value,
			"params":     toJSON(n.Params),
			"decorators": decorators,
			"body":       toJSON(n.Body),
		}

	case *ParamClause:
		params := make([]interface{}, len(n.Params))
		for i, pr := range n.Params {
			params[i] = toJSON(pr)
		}
		return map[string]interface{}{
			"type":   "ParamClause",
			"loc":    n.loc.String(),
			"params": params,
		}

	case *Param:
		m := map[string]interface{}{
			"type":     "Param",
			"loc":      n.loc.String(),
			"name":     n.Name.Value,
			"variadic": int(n.Variadic),
		}
		if n.Default != nil {
			m["default"] = toJSON(n.Default)
		}
		return m

	default:
		return map[string]interface{}{"type": "Unknown"}
	}
}

func mapStmts(s []Stmt) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = toJSON(v)
	}
	return result
}

func mapExprs(s []Expr) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = toJSON(v)
	}
	return result
}

func mapNames(s []*Name) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = toJSON(v)
	}
	return result
}
