package main

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/candlekit/gguf2st/internal/downloader"
)

func cmdPull() {
	fs := flag.NewFlagSet("pull", flag.ExitOnError)
	out := fs.String("out", ".", "output directory")
	fs.Parse(os.Args[2:])
	if fs.NArg() < 1 {
		fmt.Println("usage: gguf2st pull <url> [--out dir]")
		os.Exit(1)
	}
	rawurl := fs.Arg(0)
	name, err := destName(rawurl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pull: %v\n", err)
		os.Exit(1)
	}
	godotenv.Load() // optional .env for HF_TOKEN
	if err := os.MkdirAll(*out, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "pull: %v\n", err)
		os.Exit(1)
	}
	dest := filepath.Join(*out, name)
	res, err := downloader.Download(rawurl, dest, downloader.Options{Token: os.Getenv("HF_TOKEN")})
	if err != nil {
		fmt.Fprintf(os.Stderr, "pull: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Downloaded: %s (%d bytes, xxh3=%016x)\n", dest, res.Bytes, res.XXH3)
}

// destName derives the local file name from the URL path, so query strings
// like ?download=true never end up in the name.
func destName(rawurl string) (string, error) {
	u, err := url.Parse(rawurl)
	if err != nil {
		return "", err
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return "", fmt.Errorf("cannot derive a file name from %s", rawurl)
	}
	return name, nil
}
