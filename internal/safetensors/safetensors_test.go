package safetensors

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"testing"
)

func buildFile(t *testing.T, header map[string]any, data []byte) []byte {
	t.Helper()
	hb, err := json.Marshal(header)
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, uint64(len(hb)))
	buf.Write(hb)
	buf.Write(data)
	return buf.Bytes()
}

func TestReadHeader(t *testing.T) {
	data := make([]byte, 8*16*4)
	file := buildFile(t, map[string]any{
		"__metadata__": map[string]any{"format": "pt"},
		"toy.weight": map[string]any{
			"dtype":        "F32",
			"shape":        []int64{8, 16},
			"data_offsets": []int64{0, int64(len(data))},
		},
	}, data)

	h, err := ReadHeader(bytes.NewReader(file))
	if err != nil {
		t.Fatalf("ReadHeader() error = %v", err)
	}
	if len(h) != 1 {
		t.Fatalf("header has %d tensors, want 1 (__metadata__ skipped)", len(h))
	}
	m := h["toy.weight"]
	if m.Dtype != "F32" {
		t.Errorf("Dtype = %q, want F32", m.Dtype)
	}
	if len(m.Shape) != 2 || m.Shape[0] != 8 || m.Shape[1] != 16 {
		t.Errorf("Shape = %v, want [8 16]", m.Shape)
	}
}

func TestReadHeaderBadLength(t *testing.T) {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, uint64(1<<40))
	if _, err := ReadHeader(buf); err == nil {
		t.Fatal("expected error for implausible header length")
	}
}

func TestReadHeaderInvalidJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, uint64(4))
	buf.WriteString("nope")
	if _, err := ReadHeader(buf); err == nil {
		t.Fatal("expected error for invalid header JSON")
	}
}
