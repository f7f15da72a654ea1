// Package scaffold generates a Candle-style model directory skeleton for a
// GGUF file: a fixed Gemma config.json, a minimal tokenizer.json and a
// manifest with checksums of the emitted files. It does not read tensor data
// from the input; obtaining real SafeTensors weights is left to the user (see
// Guidance).
package scaffold

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/candlekit/gguf2st/internal/logs"
)

const (
	ConfigFile    = "config.json"
	TokenizerFile = "tokenizer.json"
	ManifestFile  = "manifest.json"
)

var (
	ErrInputNotFound = errors.New("gguf file not found")
	ErrNotGGUF       = errors.New("file does not appear to be a GGUF file")
)

// ValidateInput checks that path exists and carries a .gguf suffix. The file
// contents are deliberately not examined: the scaffold output is the same for
// every input.
func ValidateInput(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return err
	}
	if !strings.HasSuffix(filepath.Base(path), ".gguf") {
		return fmt.Errorf("%w: %s", ErrNotGGUF, path)
	}
	return nil
}

// Run validates ggufPath, creates outDir (with parents) and writes the
// scaffold files into it, then prints guidance to w. Validation failures
// happen before any filesystem mutation; existing files are overwritten.
func Run(ggufPath, outDir string, w io.Writer) error {
	if err := ValidateInput(ggufPath); err != nil {
		return err
	}
	fmt.Fprintf(w, "Scaffolding model directory for: %s\n", ggufPath)
	fmt.Fprintf(w, "Output directory: %s\n\n", outDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	cfg := ConfigJSON()
	if err := atomicWrite(filepath.Join(outDir, ConfigFile), cfg); err != nil {
		return fmt.Errorf("write %s: %w", ConfigFile, err)
	}
	logs.Debug("wrote config", "path", filepath.Join(outDir, ConfigFile), "bytes", len(cfg))
	fmt.Fprintf(w, "Created %s\n", filepath.Join(outDir, ConfigFile))

	tok := TokenizerJSON()
	if err := atomicWrite(filepath.Join(outDir, TokenizerFile), tok); err != nil {
		return fmt.Errorf("write %s: %w", TokenizerFile, err)
	}
	logs.Debug("wrote tokenizer", "path", filepath.Join(outDir, TokenizerFile), "bytes", len(tok))
	fmt.Fprintf(w, "Created %s\n", filepath.Join(outDir, TokenizerFile))

	man := NewManifest(filepath.Base(ggufPath))
	man.Add(ConfigFile, cfg)
	man.Add(TokenizerFile, tok)
	if err := man.Write(outDir); err != nil {
		return fmt.Errorf("write %s: %w", ManifestFile, err)
	}
	fmt.Fprintf(w, "Created %s\n", filepath.Join(outDir, ManifestFile))

	Guidance(w)
	return nil
}

// atomicWrite writes data to a temp file then renames it into place, so a
// crash never leaves a half-written document.
func atomicWrite(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// marshalDoc renders a document with 2-space indentation and a trailing
// newline, without HTML-escaping (tokenizer special tokens use <...>).
func marshalDoc(v any) []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		panic(err) // static documents, cannot fail
	}
	return buf.Bytes()
}
