// Package logging is a thin wrapper over glog for the trace-level
// observational logging the parser, the language registry, and the
// polyfrontdump token dump emit —
// mirrored on the glog.Infof/glog.V(2) calls bracketing pulumi's own
// compiler phases (pkg/compiler/parser.go, pkg/compiler/compiler.go).
// None of this is wired into control flow: every call here is a side
// effect a caller could delete without changing behavior.
package logging

import (
	"fmt"

	"github.com/golang/glog"
)

// Verbosity levels used throughout the CORE. Named rather than inlined so
// a caller enabling -v=2 at the flag level gets a predictable meaning.
const (
	// Trace logs per-token/per-production detail; expensive, rarely wanted.
	Trace glog.Level = 5
	// Phase logs entry/exit of a parse and its diagnostic tally.
	Phase glog.Level = 2
)

// Parsing logs that a parse of fileName is starting.
func Parsing(fileName string, size int) {
	if glog.V(Phase) {
		glog.V(Phase).Infof("parsing %v (%d bytes)", fileName, size)
	}
}

// Parsed logs that a parse of fileName finished, with its diagnostic tally.
func Parsed(fileName string, diagCount int) {
	if glog.V(Phase) {
		glog.V(Phase).Infof("parsed %v: %d diagnostic(s)", fileName, diagCount)
	}
}

// Token logs a single lexed token at Trace verbosity; callers that drive a
// lexer token-by-token (e.g. a token-dump command) call this once per
// Next(), and the V(Trace) guard keeps formatting off the hot path when
// nothing will use it.
func Token(fileName string, tok, loc fmt.Stringer) {
	if glog.V(Trace) {
		glog.V(Trace).Infof("%v: lexed %v at %v", fileName, tok, loc)
	}
}

// Factory logs that lang resolved a LanguageFactory for id.
func Factory(id fmt.Stringer) {
	if glog.V(Phase) {
		glog.V(Phase).Infof("resolved language factory for %v", id)
	}
}
