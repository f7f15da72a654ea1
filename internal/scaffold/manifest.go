package scaffold

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	xxh3 "github.com/zeebo/xxh3"

	"github.com/candlekit/gguf2st/internal/version"
)

// Manifest records what a scaffold run produced, with xxh3-64 hashes so the
// output can be rechecked later (gguf2st verify).
type Manifest struct {
	FormatVersion int                      `json:"format_version"`
	Generator     string                   `json:"generator"`
	SourceGGUF    string                   `json:"source_gguf"`
	Files         map[string]ManifestEntry `json:"files"`
}

type ManifestEntry struct {
	Size int64  `json:"size"`
	XXH3 string `json:"xxh3_64"`
}

func NewManifest(sourceName string) *Manifest {
	return &Manifest{
		FormatVersion: 1,
		Generator:     "gguf2st/" + version.Version,
		SourceGGUF:    sourceName,
		Files:         make(map[string]ManifestEntry),
	}
}

func (m *Manifest) Add(name string, data []byte) {
	m.Files[name] = ManifestEntry{
		Size: int64(len(data)),
		XXH3: HashHex(data),
	}
}

func (m *Manifest) Write(dir string) error {
	return atomicWrite(filepath.Join(dir, ManifestFile), marshalDoc(m))
}

// ReadManifest loads the manifest from a scaffolded directory.
func ReadManifest(dir string) (*Manifest, error) {
	b, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	return &m, nil
}

// HashHex returns the xxh3-64 of data as a fixed-width hex string, hex to
// avoid JSON float precision loss on 64-bit values.
func HashHex(data []byte) string {
	return fmt.Sprintf("%016x", xxh3.Hash(data))
}
