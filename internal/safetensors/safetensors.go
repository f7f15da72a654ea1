// Package safetensors reads .safetensors headers for inspection.
// File layout: [header_len:u64 LE][header_json][tensor_data...]
// Tensor data is never loaded; only the JSON header is parsed.
package safetensors

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// maxHeaderLen guards against reading a garbage length from a corrupt file.
const maxHeaderLen = 100 << 20

type TensorMeta struct {
	Dtype       string  `json:"dtype"`
	Shape       []int64 `json:"shape"`
	DataOffsets []int64 `json:"data_offsets"`
}

type Header map[string]TensorMeta

func Open(path string) (Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadHeader(f)
}

func ReadHeader(r io.Reader) (Header, error) {
	var b8 [8]byte
	if _, err := io.ReadFull(r, b8[:]); err != nil {
		return nil, fmt.Errorf("read header length: %w", err)
	}
	hlen := binary.LittleEndian.Uint64(b8[:])
	if hlen == 0 || hlen > maxHeaderLen {
		return nil, fmt.Errorf("implausible header length %d", hlen)
	}
	hb := make([]byte, hlen)
	if _, err := io.ReadFull(r, hb); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(hb, &raw); err != nil {
		return nil, fmt.Errorf("invalid header: %w", err)
	}
	header := make(Header, len(raw))
	for name, msg := range raw {
		if name == "__metadata__" {
			continue
		}
		var m TensorMeta
		if err := json.Unmarshal(msg, &m); err != nil {
			return nil, fmt.Errorf("tensor %s: %w", name, err)
		}
		header[name] = m
	}
	return header, nil
}
