package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/candlekit/gguf2st/internal/scaffold"
)

func scaffoldDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	gguf := filepath.Join(dir, "model.gguf")
	if err := os.WriteFile(gguf, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out")
	if err := scaffold.Run(gguf, out, io.Discard); err != nil {
		t.Fatalf("scaffold.Run() error = %v", err)
	}
	return out
}

func TestVerifyScaffoldOK(t *testing.T) {
	out := scaffoldDir(t)
	bad, err := verifyScaffold(out)
	if err != nil {
		t.Fatalf("verifyScaffold() error = %v", err)
	}
	if len(bad) != 0 {
		t.Fatalf("fresh scaffold failed verification: %v", bad)
	}
}

func TestVerifyScaffoldDetectsTampering(t *testing.T) {
	out := scaffoldDir(t)
	path := filepath.Join(out, scaffold.ConfigFile)
	if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	bad, err := verifyScaffold(out)
	if err != nil {
		t.Fatalf("verifyScaffold() error = %v", err)
	}
	if len(bad) != 1 || bad[0] != scaffold.ConfigFile {
		t.Fatalf("bad = %v, want [%s]", bad, scaffold.ConfigFile)
	}
}

func TestVerifyScaffoldDetectsMissingFile(t *testing.T) {
	out := scaffoldDir(t)
	if err := os.Remove(filepath.Join(out, scaffold.TokenizerFile)); err != nil {
		t.Fatal(err)
	}
	bad, err := verifyScaffold(out)
	if err != nil {
		t.Fatalf("verifyScaffold() error = %v", err)
	}
	if len(bad) != 1 || bad[0] != scaffold.TokenizerFile {
		t.Fatalf("bad = %v, want [%s]", bad, scaffold.TokenizerFile)
	}
}

func TestVerifyScaffoldNoManifest(t *testing.T) {
	if _, err := verifyScaffold(t.TempDir()); err == nil {
		t.Fatal("expected error when manifest.json is absent")
	}
}
