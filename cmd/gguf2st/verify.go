package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/candlekit/gguf2st/internal/scaffold"
)

func cmdVerify() {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	fs.Parse(os.Args[2:])
	if fs.NArg() < 1 {
		fmt.Println("usage: gguf2st verify <dir>")
		os.Exit(1)
	}
	bad, err := verifyScaffold(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "verify: %v\n", err)
		os.Exit(1)
	}
	if len(bad) == 0 {
		fmt.Println("scaffold verify: OK")
		return
	}
	for _, name := range bad {
		fmt.Fprintf(os.Stderr, "verify: %s does not match manifest\n", name)
	}
	fmt.Fprintln(os.Stderr, "scaffold verify: FAILED")
	os.Exit(3)
}

// verifyScaffold rechecks every file listed in dir's manifest and returns the
// names that are missing or whose size/hash no longer match.
func verifyScaffold(dir string) ([]string, error) {
	m, err := scaffold.ReadManifest(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(m.Files))
	for name := range m.Files {
		names = append(names, name)
	}
	sort.Strings(names)
	var bad []string
	for _, name := range names {
		want := m.Files[name]
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			bad = append(bad, name)
			continue
		}
		if int64(len(b)) != want.Size || scaffold.HashHex(b) != want.XXH3 {
			bad = append(bad, name)
		}
	}
	return bad, nil
}
