package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/candlekit/gguf2st/internal/fileformat"
	"github.com/candlekit/gguf2st/internal/safetensors"
)

func cmdInspect() {
	if len(os.Args) < 3 {
		fmt.Println("usage: gguf2st inspect <file.{gguf,safetensors}>")
		os.Exit(1)
	}
	path := os.Args[2]
	var err error
	switch filepath.Ext(path) {
	case ".gguf":
		err = inspectGGUF(path)
	case ".safetensors":
		err = inspectSafetensors(path)
	default:
		err = fmt.Errorf("unknown extension %q", filepath.Ext(path))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "inspect: %v\n", err)
		os.Exit(1)
	}
}

func inspectGGUF(path string) error {
	info, err := fileformat.InspectGGUF(path)
	if err != nil {
		return err
	}
	fmt.Printf("GGUF: magic=%q version=%d tensors=%d kv=%d\n",
		string(info.Magic[:]), info.Version, info.TensorCount, info.KVCount)
	return nil
}

func inspectSafetensors(path string) error {
	h, err := safetensors.Open(path)
	if err != nil {
		return err
	}
	fmt.Printf("safetensors: %d tensors\n", len(h))
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		m := h[name]
		fmt.Printf("  %s dtype=%s shape=%v\n", name, m.Dtype, m.Shape)
	}
	return nil
}
