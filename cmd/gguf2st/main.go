package main

import (
	"fmt"
	"os"

	"github.com/candlekit/gguf2st/internal/logs"
	"github.com/candlekit/gguf2st/internal/version"
)

func main() {
	logs.Init(nil, os.Getenv("GGUF2ST_DEBUG") != "")
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	switch os.Args[1] {
	case "scaffold":
		cmdScaffold(os.Args[2:])
	case "inspect":
		cmdInspect()
	case "pull":
		cmdPull()
	case "verify":
		cmdVerify()
	case "version":
		fmt.Println("gguf2st", version.Version)
	case "help", "-h", "--help":
		usage()
	default:
		// compat surface: gguf2st <model.gguf> <output-dir>
		if len(os.Args) == 3 {
			cmdScaffold(os.Args[1:])
			return
		}
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("gguf2st - scaffold a Candle model directory from a GGUF file")
	fmt.Println("usage: gguf2st <model.gguf> <output-dir>")
	fmt.Println("       gguf2st <command> [args]")
	fmt.Println("  scaffold <model.gguf> <output-dir>  write config.json, tokenizer.json and manifest.json")
	fmt.Println("  inspect  <file.{gguf,safetensors}>  print file header info")
	fmt.Println("  verify   <dir>                      recheck scaffold files against manifest.json")
	fmt.Println("  pull     <url> [--out dir]          download a pre-converted model file")
	fmt.Println("  version                             print version")
	fmt.Println()
	fmt.Println("gguf2st does not convert tensor data; it emits fixed Gemma config and")
	fmt.Println("tokenizer metadata and points at manual ways to obtain real weights.")
}
