package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunEmitsTextASTForPython(t *testing.T) {
	filename := writeTempSrcFile(t, "x = 1 + 2\n")
	*langFlag, *emitTokens, *astFormat = "python", false, "text"

	out, errOut, err := captureRun(t, filename)
	if err != nil {
		t.Fatalf("run: %v\nstderr:\n%s", err, errOut)
	}
	if !strings.Contains(out, "Program") || !strings.Contains(out, "Assign") {
		t.Fatalf("text AST missing expected nodes:\n%s", out)
	}
}

func TestRunEmitsJSONASTForPython(t *testing.T) {
	filename := writeTempSrcFile(t, "x = 1\n")
	*langFlag, *emitTokens, *astFormat = "python", false, "json"

	out, errOut, err := captureRun(t, filename)
	if err != nil {
		t.Fatalf("run: %v\nstderr:\n%s", err, errOut)
	}
	if !strings.Contains(out, `"type": "Program"`) {
		t.Fatalf("json AST missing Program node:\n%s", out)
	}
}

func TestRunEmitTokensForPython(t *testing.T) {
	filename := writeTempSrcFile(t, "x = 1\n")
	*langFlag, *emitTokens, *astFormat = "python", true, "text"

	out, errOut, err := captureRun(t, filename)
	if err != nil {
		t.Fatalf("run: %v\nstderr:\n%s", err, errOut)
	}
	if !strings.Contains(out, "IDENTIFIER") {
		t.Fatalf("token dump missing IDENTIFIER:\n%s", out)
	}
}

func TestRunRejectsUnknownLanguage(t *testing.T) {
	filename := writeTempSrcFile(t, "x = 1\n")
	*langFlag, *emitTokens, *astFormat = "rust", false, "text"

	if err := run(filename); err == nil {
		t.Fatal("expected an error for an unrecognized -lang")
	}
}

func TestRunReportsGoHasNoHandWrittenParser(t *testing.T) {
	filename := writeTempSrcFile(t, "package main\n")
	*langFlag, *emitTokens, *astFormat = "go", false, "text"

	if err := run(filename); err == nil {
		t.Fatal("expected an error since GoFactory has no hand-written parser")
	}
}

func writeTempSrcFile(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	filename := filepath.Join(dir, "input.src")
	if err := os.WriteFile(filename, []byte(src), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return filename
}

func captureRun(t *testing.T, filename string) (stdout, stderr string, runErr error) {
	t.Helper()

	oldStdout, oldStderr := os.Stdout, os.Stderr
	rOut, wOut, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe stdout: %v", err)
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe stderr: %v", err)
	}
	os.Stdout, os.Stderr = wOut, wErr

	runErr = run(filename)

	_ = wOut.Close()
	_ = wErr.Close()
	os.Stdout, os.Stderr = oldStdout, oldStderr

	outBytes, _ := io.ReadAll(rOut)
	errBytes, _ := io.ReadAll(rErr)
	_ = rOut.Close()
	_ = rErr.Close()

	return string(outBytes), string(errBytes), runErr
}
