package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"cddproof/internal/domain"
	"cddproof/internal/util/hexcodec"
)

const proofsDir = "proofs"

// ProofFileStore persists proof records as plain JSON, one file per
// (claim, scope) pair.
type ProofFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewProofFileStore returns a ProofFileStore rooted at dir.
func NewProofFileStore(dir string) *ProofFileStore {
	return &ProofFileStore{dir: filepath.Join(dir, proofsDir)}
}

// Dir returns the directory records are written to.
func (s *ProofFileStore) Dir() string { return s.dir }

// SaveProof writes record for name and returns the file path.
func (s *ProofFileStore) SaveProof(name domain.ClaimName, record domain.ProofRecord) (string, error) {
	if err := checkName(name.String()); err != nil {
		return "", err
	}
	if err := record.Scope.Validate(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(name, record.Scope)
	if err := WriteProofRecord(path, record); err != nil {
		return "", err
	}
	return path, nil
}

// LoadProof retrieves the record for (name, scope) and whether it was present.
func (s *ProofFileStore) LoadProof(
	name domain.ClaimName,
	scope domain.ScopeContext,
) (domain.ProofRecord, bool, error) {
	if err := checkName(name.String()); err != nil {
		return domain.ProofRecord{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := ReadProofRecord(s.path(name, scope))
	if errors.Is(err, os.ErrNotExist) {
		return domain.ProofRecord{}, false, nil
	}
	if err != nil {
		return domain.ProofRecord{}, false, err
	}
	return rec, true, nil
}

// path keys the file on the hex of the scope label so any UTF-8 label maps
// to a safe file name.
func (s *ProofFileStore) path(name domain.ClaimName, scope domain.ScopeContext) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s.%s.json", name, hexcodec.HexFromBytes(scope.Bytes())))
}

// Compile-time assertion that ProofFileStore implements domain.ProofStore.
var _ domain.ProofStore = (*ProofFileStore)(nil)
