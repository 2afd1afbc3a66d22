package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"cddproof/internal/domain"
	"cddproof/internal/util/memzero"
)

const (
	claimsDir    = "claims"
	claimFileExt = ".json.enc"
)

// ClaimFileStore persists claims to disk, each encrypted under a passphrase.
type ClaimFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewClaimFileStore returns a ClaimFileStore rooted at dir.
func NewClaimFileStore(dir string) *ClaimFileStore {
	return &ClaimFileStore{dir: filepath.Join(dir, claimsDir)}
}

// SaveClaim writes the encrypted claim, replacing any claim of the same name.
func (s *ClaimFileStore) SaveClaim(passphrase string, name domain.ClaimName, claim domain.ClaimData) error {
	if err := checkName(name.String()); err != nil {
		return err
	}
	if err := claim.Validate(); err != nil {
		return err
	}

	raw, err := json.Marshal(claim)
	if err != nil {
		return err
	}
	defer memzero.Zero(raw)

	// Key derivation runs outside the lock so concurrent callers do not
	// queue behind scrypt.
	N, r, p := scryptParamsDefault()
	ct, err := encrypt(passphrase, name.String(), raw, N, r, p)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return writeFile(s.path(name), ct, 0o600)
}

// LoadClaim reads and decrypts the claim stored under name.
func (s *ClaimFileStore) LoadClaim(passphrase string, name domain.ClaimName) (domain.ClaimData, error) {
	if err := checkName(name.String()); err != nil {
		return domain.ClaimData{}, err
	}

	s.mu.Lock()
	b, err := readFile(s.path(name))
	s.mu.Unlock()
	if err != nil {
		return domain.ClaimData{}, err
	}
	if b == nil {
		return domain.ClaimData{}, fmt.Errorf("%w: %s", domain.ErrClaimNotFound, name)
	}
	pt, err := decrypt(passphrase, name.String(), b)
	if err != nil {
		return domain.ClaimData{}, err
	}
	defer memzero.Zero(pt)

	var claim domain.ClaimData
	if err := json.Unmarshal(pt, &claim); err != nil {
		return domain.ClaimData{}, err
	}
	if err := claim.Validate(); err != nil {
		return domain.ClaimData{}, err
	}
	return claim, nil
}

// ListClaims returns the stored claim names in lexical order.
func (s *ClaimFileStore) ListClaims() ([]domain.ClaimName, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var names []domain.ClaimName
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), claimFileExt) {
			continue
		}
		names = append(names, domain.ClaimName(strings.TrimSuffix(e.Name(), claimFileExt)))
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names, nil
}

func (s *ClaimFileStore) path(name domain.ClaimName) string {
	return filepath.Join(s.dir, name.String()+claimFileExt)
}

// Compile-time assertion that ClaimFileStore implements domain.ClaimStore.
var _ domain.ClaimStore = (*ClaimFileStore)(nil)
