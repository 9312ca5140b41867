package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyfront/polyfront/internal/langcore/syntax"
)

func loc(fileName string, line, col uint32) syntax.SourceLoc {
	p := syntax.NewPos(fileName, line, col)
	return syntax.NewSourceLoc(fileName, p, p)
}

func TestSinkCollectsInOrder(t *testing.T) {
	s := NewSink()
	loc1 := loc("a.py", 1, 1)
	loc2 := loc("a.py", 2, 1)

	s.Report(syntax.Diagnostic{Kind: syntax.UnexpectedToken, Loc: loc1})
	s.Report(syntax.Diagnostic{Kind: syntax.UnterminatedString, Loc: loc2})

	got := s.Diagnostics()
	require.Len(t, got, 2)
	assert.Equal(t, syntax.UnexpectedToken, got[0].Kind)
	assert.Equal(t, syntax.UnterminatedString, got[1].Kind)
}

func TestAttachForwardsParserDiagnostics(t *testing.T) {
	ctx := syntax.NewParsingContext("a.py")
	s := NewSink()
	Attach(ctx, s)

	ctx.TrackReport(syntax.NameRequired, loc("a.py", 1, 1))

	assert.Len(t, s.Diagnostics(), 1)
	assert.Equal(t, ctx.Diagnostics(), s.Diagnostics())
}

func TestFormatIncludesKindAndLoc(t *testing.T) {
	d := syntax.Diagnostic{Kind: syntax.InvalidNumericDigit, Loc: loc("a.py", 3, 4)}
	out := Format(d)
	assert.Contains(t, out, "InvalidNumericDigit")
	assert.Contains(t, out, "a.py:3:4")
}
