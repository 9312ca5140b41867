package lang

import "github.com/polyfront/polyfront/internal/langcore/syntax"

// astLocator is the default AstLocator: a linear Walk that keeps the
// innermost node whose span contains the query position, grounded on the
// Walk/Visitor pattern in internal/langcore/syntax/walk.go. It is not the
// kind of index a large-file IDE wants, but it needs no additional state
// beyond the Program it was built over.
type astLocator struct {
	prog *syntax.Program
}

func newAstLocator(prog *syntax.Program) AstLocator {
	return &astLocator{prog: prog}
}

// NodeAt returns the innermost node covering loc.Start(), or nil if none
// does (loc falls outside the program, or the program is empty).
func (a *astLocator) NodeAt(loc syntax.SourceLoc) syntax.Node {
	pos := loc.Start()
	var found syntax.Node
	syntax.Inspect(a.prog, func(n syntax.Node) bool {
		if !n.Loc().Contains(pos) {
			return false
		}
		found = n
		return true
	})
	return found
}
