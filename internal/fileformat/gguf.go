// Package fileformat reads GGUF file headers for inspection. Only the fixed
// header is parsed (magic, version, counts); metadata KV pairs and tensor
// data are never touched.
package fileformat

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

type GGUFInfo struct {
	Magic       [4]byte
	Version     uint32
	TensorCount uint64
	KVCount     uint64
}

func InspectGGUF(path string) (*GGUFInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadGGUFHeader(f)
}

// ReadGGUFHeader parses the GGUF fixed header. Version 1 stores tensor and KV
// counts as uint32; versions 2 and 3 as uint64.
func ReadGGUFHeader(r io.Reader) (*GGUFInfo, error) {
	var info GGUFInfo
	if _, err := io.ReadFull(r, info.Magic[:]); err != nil {
		return nil, fmt.Errorf("read magic: %w", err)
	}
	if string(info.Magic[:]) != "GGUF" {
		return nil, fmt.Errorf("not a GGUF file (magic %q)", string(info.Magic[:]))
	}
	if err := binary.Read(r, binary.LittleEndian, &info.Version); err != nil {
		return nil, fmt.Errorf("read version: %w", err)
	}
	switch info.Version {
	case 1:
		var tensors, kv uint32
		if err := binary.Read(r, binary.LittleEndian, &tensors); err != nil {
			return nil, fmt.Errorf("read tensor count: %w", err)
		}
		if err := binary.Read(r, binary.LittleEndian, &kv); err != nil {
			return nil, fmt.Errorf("read kv count: %w", err)
		}
		info.TensorCount, info.KVCount = uint64(tensors), uint64(kv)
	case 2, 3:
		if err := binary.Read(r, binary.LittleEndian, &info.TensorCount); err != nil {
			return nil, fmt.Errorf("read tensor count: %w", err)
		}
		if err := binary.Read(r, binary.LittleEndian, &info.KVCount); err != nil {
			return nil, fmt.Errorf("read kv count: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported GGUF version %d", info.Version)
	}
	return &info, nil
}
