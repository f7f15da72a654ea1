// Package downloader fetches model files over HTTP, e.g. pre-converted
// SafeTensors weights from a HuggingFace resolve URL.
package downloader

import (
	"fmt"
	"io"
	"net/http"
	"os"

	xxh3 "github.com/zeebo/xxh3"

	"github.com/candlekit/gguf2st/internal/logs"
	"github.com/candlekit/gguf2st/internal/version"
)

type Options struct {
	// Token, when set, is sent as a bearer token (gated HuggingFace repos).
	Token string
	// Client overrides http.DefaultClient, mainly for tests.
	Client *http.Client
}

type Result struct {
	Bytes int64
	XXH3  uint64
}

// Download streams url into the file at out, hashing the body as it goes.
// A partial file is removed on error.
func Download(url, out string, opts Options) (*Result, error) {
	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", version.UserAgent())
	if opts.Token != "" {
		req.Header.Set("Authorization", "Bearer "+opts.Token)
	}
	logs.Debug("downloading", "url", url, "out", out)
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http error: %s", resp.Status)
	}
	f, err := os.Create(out)
	if err != nil {
		return nil, err
	}
	h := xxh3.New()
	n, err := io.Copy(io.MultiWriter(f, h), resp.Body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		if rerr := os.Remove(out); rerr != nil {
			logs.Warn("could not remove partial download", "path", out, "err", rerr)
		}
		return nil, err
	}
	return &Result{Bytes: n, XXH3: h.Sum64()}, nil
}
