package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/candlekit/gguf2st/internal/scaffold"
)

func cmdScaffold(args []string) {
	fs := flag.NewFlagSet("scaffold", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() < 2 {
		fmt.Println("usage: gguf2st scaffold <model.gguf> <output-dir>")
		os.Exit(1)
	}
	if err := scaffold.Run(fs.Arg(0), fs.Arg(1), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "scaffold: %v\n", err)
		os.Exit(1)
	}
}
