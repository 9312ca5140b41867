package syntax

import "fmt"

// SourceLoc is an immutable span: {fileName, firstLine, firstCol, lastLine,
// lastCol}, per SPEC_FULL.md §3. The zero value is distinguishable from any
// real location (IsValid reports false). Two locations can be Joined into
// the smallest span covering both, which is how the parser builds a
// multi-token AST node's location out of its first and last consumed
// token's own spans.
type SourceLoc struct {
	fileName            string
	firstLine, firstCol uint32
	lastLine, lastCol   uint32
}

// NoLoc is the zero/invalid SourceLoc.
var NoLoc = SourceLoc{}

// NewSourceLoc builds a span running from start to end (both inclusive,
// end taken from the last character belonging to the span).
func NewSourceLoc(fileName string, start, end Pos) SourceLoc {
	return SourceLoc{
		fileName:  fileName,
		firstLine: start.line, firstCol: start.col,
		lastLine: end.line, lastCol: end.col,
	}
}

// pointLoc builds a span that starts and ends at a single position, used
// for INDENT/DEDENT/EOP tokens and for string-literal diagnostics.
func pointLoc(fileName string, at Pos) SourceLoc {
	return NewSourceLoc(fileName, at, at)
}

// IsValid reports whether l is a real location.
func (l SourceLoc) IsValid() bool {
	return l.firstLine > 0
}

// FileName returns the source file this span belongs to.
func (l SourceLoc) FileName() string { return l.fileName }

// Start returns the position of the span's first character.
func (l SourceLoc) Start() Pos { return NewPos(l.fileName, l.firstLine, l.firstCol) }

// End returns the position of the span's last character.
func (l SourceLoc) End() Pos { return NewPos(l.fileName, l.lastLine, l.lastCol) }

// Contains reports whether pos falls within l, inclusive of both endpoints.
// Used by tooling (e.g. an AstLocator) that needs the innermost node
// covering a cursor position rather than a node's own reported span.
func (l SourceLoc) Contains(pos Pos) bool {
	if !l.IsValid() || !pos.IsValid() {
		return false
	}
	return !before(pos.line, pos.col, l.firstLine, l.firstCol) &&
		!before(l.lastLine, l.lastCol, pos.line, pos.col)
}

// Join returns the smallest span covering both a and b. Either may be
// invalid, in which case the other is returned unchanged; if both are
// invalid the result is invalid.
func Join(a, b SourceLoc) SourceLoc {
	if !a.IsValid() {
		return b
	}
	if !b.IsValid() {
		return a
	}
	j := SourceLoc{fileName: a.fileName}
	if before(a.firstLine, a.firstCol, b.firstLine, b.firstCol) {
		j.firstLine, j.firstCol = a.firstLine, a.firstCol
	} else {
		j.firstLine, j.firstCol = b.firstLine, b.firstCol
	}
	if before(a.lastLine, a.lastCol, b.lastLine, b.lastCol) {
		j.lastLine, j.lastCol = b.lastLine, b.lastCol
	} else {
		j.lastLine, j.lastCol = a.lastLine, a.lastCol
	}
	return j
}

func before(l1, c1, l2, c2 uint32) bool {
	if l1 != l2 {
		return l1 < l2
	}
	return c1 < c2
}

// String renders "filename:firstLine:firstCol" for diagnostics; the full
// span is recoverable via Start/End for tools that need it.
func (l SourceLoc) String() string {
	if !l.IsValid() {
		return "<invalid>"
	}
	if l.fileName != "" {
		return fmt.Sprintf("%s:%d:%d", l.fileName, l.firstLine, l.firstCol)
	}
	return fmt.Sprintf("%d:%d", l.firstLine, l.firstCol)
}
