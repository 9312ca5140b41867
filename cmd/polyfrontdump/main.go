// Command polyfrontdump is a small demo driver over the CORE: point it at
// a source file, get back its token stream or its AST, text or JSON. It is
// not part of CORE (spec.md §1 excludes CLI/driver glue) — it exists only
// to exercise internal/langcore/lang end to end the way yoruc exercises
// internal/syntax.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/polyfront/polyfront/internal/langcore/diag"
	"github.com/polyfront/polyfront/internal/langcore/lang"
	"github.com/polyfront/polyfront/internal/langcore/logging"
	"github.com/polyfront/polyfront/internal/langcore/syntax"
)

var (
	langFlag   = flag.String("lang", "", "source language: python, go, or d (default: guess from the file extension)")
	emitTokens = flag.Bool("emit-tokens", false, "print the token stream instead of the AST")
	astFormat  = flag.String("ast-format", "text", "AST output format: text or json")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: polyfrontdump [options] <file>\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "polyfrontdump: %v\n", err)
		os.Exit(1)
	}
}

func run(fileName string) error {
	id, err := resolveLangId(*langFlag, fileName)
	if err != nil {
		return err
	}

	factory, ok := lang.Lookup(id)
	if !ok {
		return errors.Errorf("no factory registered for %v", id)
	}

	src, err := os.ReadFile(fileName)
	if err != nil {
		return errors.Wrapf(err, "reading %s", fileName)
	}

	ctx := syntax.NewParsingContext(fileName)
	sink := diag.NewSink()
	diag.Attach(ctx, sink)

	if *emitTokens {
		return dumpTokens(factory, ctx, src)
	}
	return dumpAST(factory, ctx, src, sink)
}

// resolveLangId honors an explicit -lang flag; absent that, it guesses
// from fileName's extension the way a driver with per-extension factory
// selection would, defaulting to Python when neither is conclusive (the
// CORE's one hand-written grammar).
func resolveLangId(flagVal, fileName string) (lang.LangId, error) {
	if flagVal != "" {
		return parseLangId(flagVal)
	}
	switch filepath.Ext(fileName) {
	case ".go":
		return lang.Go, nil
	case ".d":
		return lang.D, nil
	default:
		return lang.Python, nil
	}
}

func parseLangId(s string) (lang.LangId, error) {
	switch s {
	case "python", "py":
		return lang.Python, nil
	case "go":
		return lang.Go, nil
	case "d":
		return lang.D, nil
	}
	return 0, errors.Errorf("unrecognized -lang %q", s)
}

func dumpTokens(factory lang.Factory, ctx *syntax.ParsingContext, src []byte) error {
	lx := factory.MakeLexer(ctx, src)
	if lx == nil {
		return errors.Errorf("%v has no hand-written lexer in this CORE", factory.LangName())
	}
	for {
		tok := lx.Next()
		logging.Token(ctx.FileName(), tok.Tok, tok.Loc)
		fmt.Printf("%-24s %-16s %q\n", tok.Loc, tok.Tok, tok.Lit)
		if tok.Tok == syntax.EOP {
			break
		}
	}
	return nil
}

func dumpAST(factory lang.Factory, ctx *syntax.ParsingContext, src []byte, sink diag.Sink) error {
	p := factory.MakeParser(ctx, src)
	if p == nil {
		return errors.Errorf("%v has no hand-written parser in this CORE", factory.LangName())
	}
	prog := p.Parse()

	for _, d := range sink.Diagnostics() {
		fmt.Fprintln(os.Stderr, diag.Format(d))
	}

	switch *astFormat {
	case "json":
		if err := syntax.FprintJSON(os.Stdout, prog); err != nil {
			return errors.Wrap(err, "writing JSON AST")
		}
	default:
		syntax.Fprint(os.Stdout, prog)
	}

	if len(sink.Diagnostics()) > 0 {
		return errors.Errorf("%d diagnostic(s) reported", len(sink.Diagnostics()))
	}
	return nil
}
