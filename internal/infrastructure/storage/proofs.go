package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ProofStore writes uploaded transfer proofs to a local directory, keyed by
// transaction code and upload timestamp. Files are trusted as-is beyond their
// extension; there is no cleanup.
type ProofStore struct {
	dir string
}

func NewProofStore(dir string) (*ProofStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating proofs dir: %w", err)
	}
	return &ProofStore{dir: dir}, nil
}

// Path builds the destination path for a proof upload. ext falls back to
// "jpg" for photos; document names keep whatever extension they carry.
func (s *ProofStore) Path(txCode, ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		ext = "jpg"
	}
	stamp := time.Now().UTC().Format("20060102150405")
	return filepath.Join(s.dir, fmt.Sprintf("%s_%s.%s", txCode, stamp, ext))
}

// ExtFromName extracts the extension of an uploaded document name, defaulting
// to pdf when the name has none.
func ExtFromName(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 && i < len(name)-1 {
		return name[i+1:]
	}
	return "pdf"
}

func (s *ProofStore) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
