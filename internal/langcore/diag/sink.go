// Package diag provides a pluggable sink for the diagnostics a parse
// reports, decoupling internal/langcore/syntax's ParsingContext from any
// particular presentation (in-memory collection, logging, both).
package diag

import (
	"fmt"
	"sync"

	"github.com/polyfront/polyfront/internal/langcore/syntax"
)

// Sink facilitates pluggable diagnostic collection, mirroring the shape of
// pulumi's diag.Sink: callers attach one to a ParsingContext via OnReport
// and can ask it for everything observed so far once a parse completes.
type Sink interface {
	// Report records a single diagnostic.
	Report(d syntax.Diagnostic)
	// Diagnostics returns every diagnostic recorded so far, in the order
	// Report was called.
	Diagnostics() []syntax.Diagnostic
}

// memSink is the default in-memory Sink: it just accumulates. It needs its
// own mutex because, unlike ParsingContext (confined to one parse, one
// thread, per SPEC_FULL.md §5), a Sink may be shared across multiple
// ParsingContexts to aggregate diagnostics for several files at once.
type memSink struct {
	mu   sync.Mutex
	diag []syntax.Diagnostic
}

// NewSink returns a default in-memory Sink with no backing store beyond its
// own slice. Attach it to a ParsingContext with Attach.
func NewSink() Sink {
	return &memSink{}
}

func (s *memSink) Report(d syntax.Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diag = append(s.diag, d)
}

func (s *memSink) Diagnostics() []syntax.Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]syntax.Diagnostic, len(s.diag))
	copy(out, s.diag)
	return out
}

// Attach wires sink as ctx's OnReport hook, so every diagnostic the parser
// tracks also reaches sink in addition to ctx's own Diagnostics() list.
func Attach(ctx *syntax.ParsingContext, sink Sink) {
	ctx.OnReport(sink.Report)
}

// Format renders a diagnostic the way a driver would print it. SourceLoc
// already carries the file name it was stamped with, so this is just a
// stable "loc: kind" form shared by every caller instead of each inlining
// its own fmt.Sprintf.
func Format(d syntax.Diagnostic) string {
	return fmt.Sprintf("%s: %s", d.Loc, d.Kind)
}
