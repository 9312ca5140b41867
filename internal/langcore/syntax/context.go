package syntax

// ParsingContext is the per-parse mutable context described in
// SPEC_FULL.md §3: a file name, a diagnostic sink, and the AST root's
// ownership slot. A context's FileName must be non-empty before parsing
// begins — the zero ParsingContext is not usable, callers must go through
// NewParsingContext.
type ParsingContext struct {
	fileName    string
	diagnostics []Diagnostic
	root        *Program

	// onReport, if set, observes every diagnostic in addition to the
	// in-memory list — the hook internal/langcore/diag's Attach installs a
	// Sink through.
	onReport func(Diagnostic)
}

// NewParsingContext creates a context for parsing the named file.
func NewParsingContext(fileName string) *ParsingContext {
	return &ParsingContext{fileName: fileName}
}

// FileName returns the source file name this context parses.
func (c *ParsingContext) FileName() string {
	return c.fileName
}

// OnReport installs a callback invoked for every diagnostic, in addition to
// appending it to Diagnostics(). Passing nil detaches any existing hook.
func (c *ParsingContext) OnReport(fn func(Diagnostic)) {
	c.onReport = fn
}

// TrackReport appends a diagnostic at the given kind and location, in the
// strict textual order the parser encounters problems (SPEC_FULL.md §5).
func (c *ParsingContext) TrackReport(kind DiagnosticKind, loc SourceLoc) {
	d := Diagnostic{Kind: kind, Loc: loc}
	c.diagnostics = append(c.diagnostics, d)
	if c.onReport != nil {
		c.onReport(d)
	}
}

// Diagnostics returns every diagnostic reported so far, in source order.
func (c *ParsingContext) Diagnostics() []Diagnostic {
	return c.diagnostics
}

// TakeAst transfers ownership of the program root to the context. Once
// called, AstRoot returns root; root must not be reachable from any other
// owner afterward (SPEC_FULL.md §3's no-shared-node invariant).
func (c *ParsingContext) TakeAst(root *Program) {
	c.root = root
}

// AstRoot returns the program root taken by TakeAst, or nil if parsing
// never got far enough to produce one.
func (c *ParsingContext) AstRoot() *Program {
	return c.root
}
