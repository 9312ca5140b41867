package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// Four families — Name, Expr, Stmt, Decl — cover every production in the
// Python-2 dialect grammar (SPEC_FULL.md §3). Every concrete type embeds
// the matching marker struct, which restricts external implementations to
// this package (the sealed-variant family described in SPEC_FULL.md §9).

// Node is implemented by every AST node.
type Node interface {
	Loc() SourceLoc
	aNode()
}

// NameNode is implemented by the two NameAst variants (Name, NestedName).
type NameNode interface {
	Node
	aName()
}

// Expr is implemented by every ExprAst variant.
type Expr interface {
	Node
	aExpr()
}

// Stmt is implemented by every StmtAst variant.
type Stmt interface {
	Node
	aStmt()
}

// Decl is implemented by every DeclAst variant.
type Decl interface {
	Node
	aDecl()
}

type node struct{ loc SourceLoc }

func (n *node) Loc() SourceLoc { return n.loc }
func (*node) aNode()           {}

type nameNode struct{ node }

func (*nameNode) aName() {}

type expr struct{ node }

func (*expr) aExpr() {}

type stmt struct{ node }

func (*stmt) aStmt() {}

type decl struct{ node }

func (*decl) aDecl() {}

// ----------------------------------------------------------------------------
// DelimitedList is the owned, ordered sequence of children — the Go
// realization of SPEC_FULL.md §3's "owned singly-linked list of children
// carrying inter-element delimiter locations". len(Delims) is always
// len(Elems)-1 once the list is complete (or 0 for an empty/singleton
// list); Delims[i] is the location of the delimiter between Elems[i] and
// Elems[i+1].
type DelimitedList[T any] struct {
	Elems  []T
	Delims []SourceLoc
}

func (l *DelimitedList[T]) append(elem T) {
	l.Elems = append(l.Elems, elem)
}

func (l *DelimitedList[T]) appendDelim(delim SourceLoc) {
	l.Delims = append(l.Delims, delim)
}

// Len reports the number of elements.
func (l DelimitedList[T]) Len() int { return len(l.Elems) }

// ExprList is a delimited list of expressions (testlist, exprlist, arglist).
type ExprList = DelimitedList[Expr]

// ----------------------------------------------------------------------------
// Names

// Name is a simple identifier.
type Name struct {
	nameNode
	Value string
}

// NestedName is a dotted name (module.sub.member): at least one simple
// Name, joined by dots whose locations are preserved for navigation.
type NestedName struct {
	nameNode
	Parts DelimitedList[*Name]
}

// ----------------------------------------------------------------------------
// Program — the parse root handed to ParsingContext.TakeAst.

// Program is the root of a parsed file: the statements accepted at the
// top level before EOP.
type Program struct {
	node
	Stmts []Stmt
}

// ----------------------------------------------------------------------------
// Expressions

// BasicLit is a literal value: integer, float, or string (Kind
// distinguishes which). NULL_LITERAL/TRUE_LITERAL/FALSE_LITERAL are
// represented by IdentExpr over the corresponding keyword spelling, since
// they behave as identifier-like atoms in the Python-2 grammar.
type BasicLit struct {
	expr
	Value string
	Kind  LitKind
}

// IdentExpr is an identifier used in expression position.
type IdentExpr struct {
	expr
	Name *Name
}

// UnaryExpr is a prefix unary operation: +x, -x, ~x, not x.
type UnaryExpr struct {
	expr
	Op Token
	X  Expr
}

// BinaryExpr is a left-associative binary operation covering arithmetic,
// bitwise, shift, comparison, and logical (and/or) operators, plus the
// keyword-led "in"/"is" comparisons (Negated covers "not in"/"is not").
type BinaryExpr struct {
	expr
	Op      Token
	Negated bool
	X, Y    Expr
}

// CallExpr is a function call: Fun(Args...). Keyword arguments are
// represented as an Assign in Args; splats as Unpack.
type CallExpr struct {
	expr
	Fun  Expr
	Args ExprList
}

// MemberExpr is attribute access: X.Sel.
type MemberExpr struct {
	expr
	X   Expr
	Sel *Name
}

// IndexExpr is subscripting: X[Index]. Index is a Subrange for slice
// syntax, or the bare expression for simple indexing.
type IndexExpr struct {
	expr
	X     Expr
	Index Expr
}

// Subrange is a slice expression's subscript: [Low:High:Step], any
// endpoint optional. A bare "..." subscript is represented with all three
// nil and Ellipsis set.
type Subrange struct {
	expr
	Low, High, Step Expr
	Ellipsis        bool
}

// DictExpr is a dict display: {k: v, ...}.
type DictExpr struct {
	expr
	Entries DelimitedList[*KeyValueExpr]
}

// KeyValueExpr is one key:value pair, in a dict display or dict comprehension.
type KeyValueExpr struct {
	expr
	Key, Value Expr
}

// SetExpr is a set display: {a, b, ...} (distinguished from DictExpr by
// the absence of any ':' between elements).
type SetExpr struct {
	expr
	Elems ExprList
}

// ListExpr is a list display: [a, b, ...].
type ListExpr struct {
	expr
	Elems ExprList
}

// TupleExpr is a tuple display. Parenthesized or bare, per context; Paren
// records whether explicit parentheses were present (affects only
// presentation, not structure).
type TupleExpr struct {
	expr
	Elems ExprList
	Paren bool
}

// CompreKind distinguishes what a ListCompre's yielded expression means.
type CompreKind uint8

const (
	ListCompreKind CompreKind = iota
	SetCompreKind
	DictCompreKind
	GenCompreKind
)

// ListCompre is the single comprehension node shared by list, set, dict,
// and generator comprehensions (SPEC_FULL.md §4.4): Elem holds the yielded
// expression (a *KeyValueExpr when Kind == DictCompreKind), and Generators
// holds one or more nested for/if clauses.
type ListCompre struct {
	expr
	Kind       CompreKind
	Elem       Expr
	Generators []*Generator
}

// Generator is one "for pattern in iterable [if filter]*" clause of a
// comprehension.
type Generator struct {
	node
	Pattern  ExprList
	Iterable Expr
	Filters  []Expr
}

func (*Generator) aNode() {}

// Assign is both plain chained assignment (a = b = value) and augmented
// assignment (a += value), distinguished by Op. For a chain, Targets holds
// every intermediate left side in left-to-right order and Value the final
// right side; for keyword arguments Op is ASSIGN and Targets has exactly
// one element.
type Assign struct {
	expr
	Op      Token
	Targets []Expr
	Value   Expr
}

// Conditional is the ternary: Then if Cond else Else.
type Conditional struct {
	expr
	Then, Cond, Else Expr
}

// WrappedExpr is an explicitly parenthesized expression, kept distinct
// from its inner expression so tools can tell "(x)" from "x".
type WrappedExpr struct {
	expr
	X Expr
}

// YieldExpr is a yield used in expression position (e.g. on a yield
// expression's RHS); Value is nil for a bare "yield".
type YieldExpr struct {
	expr
	Value Expr
}

// UnpackExpr is a *expr or **expr splat in an argument list or assignment
// target list. Double is true for **.
type UnpackExpr struct {
	expr
	X      Expr
	Double bool
}

// DesignateExpr marks a for-loop statement's target as an expression in
// binding position, distinct from the same expression read as a value.
// With-item "as" bindings, except-clause captures and comprehension
// targets are not wrapped in a DesignateExpr. This gives
// downstream tools (completion, navigation) a place to recognize "this
// occurrence introduces a name" without re-deriving it from statement
// shape.
type DesignateExpr struct {
	expr
	Target Expr
}

// FuncLit is a lambda: its Body is always a single expression statement.
type FuncLit struct {
	expr
	Params *ParamClause
	Body   Stmt
}

// ----------------------------------------------------------------------------
// Statements

// Block is a sequence of statements: either several ';'-separated
// small-stmts on one line, or an indented suite's stmt+.
type Block struct {
	stmt
	Stmts []Stmt
}

// IfStmt is "if Cond : Then [else Else]". A chained "elif" is represented
// by Else holding a nested *IfStmt; a trailing "else" suite is a *Block.
type IfStmt struct {
	stmt
	Cond Expr
	Then Stmt
	Else Stmt
}

// WhileStmt is "while Cond : Body [else : ElseBody]". Unlike the
// original source (SPEC_FULL.md §9 Open Question), the trailing else
// clause is preserved rather than discarded.
type WhileStmt struct {
	stmt
	Cond     Expr
	Body     Stmt
	ElseBody Stmt
}

// ForStmt is "for Target in Iter : Body [else : ElseBody]". Target is a
// DesignateExpr wrapping the folded target expression (a single name or a
// TupleExpr), marking it as a binding occurrence rather than a value read.
type ForStmt struct {
	stmt
	Target   Expr
	Iter     Expr
	Body     Stmt
	ElseBody Stmt
}

// TryStmt is "try : Body except ... [else : ElseBody] [finally : Final]".
type TryStmt struct {
	stmt
	Body    Stmt
	Catches []*Catch
	Else    Stmt
	Finally Stmt
}

// Catch is one "except [Spec [as Bind]] : Body" clause.
type Catch struct {
	node
	Spec Expr
	Bind *Name
	Body Stmt
}

func (*Catch) aNode() {}

// WithStmt is "with Item (, Item)* : Body".
type WithStmt struct {
	stmt
	Items []*WithItem
	Body  Stmt
}

// WithItem is one "test [as expr]" with-clause entry.
type WithItem struct {
	node
	Ctx  Expr
	Bind Expr
}

func (*WithItem) aNode() {}

// ReturnStmt is "return [Value]".
type ReturnStmt struct {
	stmt
	Value Expr
}

// BreakStmt is "break".
type BreakStmt struct{ stmt }

// ContinueStmt is "continue".
type ContinueStmt struct{ stmt }

// ThrowStmt is "raise [Value]".
type ThrowStmt struct {
	stmt
	Value Expr
}

// YieldStmt is a bare "yield [Value]" used as a whole statement.
type YieldStmt struct {
	stmt
	Value Expr
}

// EmptyStmt is "pass"; the parser also leaves one in place of a decorator
// list that is not followed by def or class.
type EmptyStmt struct{ stmt }

// EvalStmt is the "exec code [in Globals[, Locals]]" statement.
type EvalStmt struct {
	stmt
	Code    Expr
	Globals Expr
	Locals  Expr
}

// DeclStmt lifts a Decl (a nested def or class) into statement position.
type DeclStmt struct {
	stmt
	Decl Decl
}

// ExprStmt wraps an expression used as a whole statement. print/del/global
// /assert statements are represented as an ExprStmt over a CallExpr whose
// Fun is an IdentExpr named after the keyword, so the closed statement
// node set needs no node type of its own for them.
type ExprStmt struct {
	stmt
	X Expr
}

// ----------------------------------------------------------------------------
// Declarations

// ImportClause is the decl produced by both import shapes: "import
// dotted_as_names" (RelativeDepth == 0) and "from (.*dotted_name|.+)
// import sub_import" (RelativeDepth counts the leading dots).
type ImportClause struct {
	decl
	RelativeDepth int
	Modules       []*ImportModule
}

// ImportModule is one imported module, optionally carrying the selective
// "from X import a, b" member list.
type ImportModule struct {
	node
	Name      *NestedName
	Alias     *Name // local alias from "as", nil if none
	Selective bool
	Star      bool // "from X import *"
	Members   []*ImportMember
}

func (*ImportModule) aNode() {}

// ImportMember is one selectively-imported name, with its optional alias.
type ImportMember struct {
	node
	Name  *Name
	Alias *Name
}

func (*ImportMember) aNode() {}

// RecordDecl is a class declaration.
type RecordDecl struct {
	decl
	Name  *Name
	Bases []*BaseDecl
	Body  Stmt
}

// BaseDecl is one class base expression. Only identifier-expression bases
// are recorded (SPEC_FULL.md §9 Open Question, resolved in DESIGN.md);
// other base expressions are parsed and dropped.
type BaseDecl struct {
	decl
	Name *Name
}

// FuncDecl is a function declaration. Decorators holds each decorator's
// dotted name as an IdentExpr or MemberExpr chain; a decorator's call
// arguments are parsed and discarded (SPEC_FULL.md §9 Open Question,
// resolved in DESIGN.md).
type FuncDecl struct {
	decl
	Name       *Name
	Params     *ParamClause
	Body       Stmt
	Decorators []Expr
}

// ParamVariadic marks a parameter as the *args or **kwargs catch-all.
type ParamVariadic uint8

const (
	NoVariadic ParamVariadic = iota
	StarVariadic
	StarStarVariadic
)

// Param is the single collapsed parameter variant described in
// SPEC_FULL.md §9 (replacing the template-based ParamDeclAst__<...>
// hierarchy): a name, an optional default, and a variadic marker.
type Param struct {
	decl
	Name     *Name
	Default  Expr
	Variadic ParamVariadic
}

// ParamClause is a function or lambda's full parameter list.
type ParamClause struct {
	decl
	Params []*Param
}

