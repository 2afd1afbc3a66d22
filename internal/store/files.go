package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cddproof/internal/domain"
)

// ReadClaimFile loads a plaintext claim written by an issuer:
//
//	{"investor_did": "<64 hex>", "investor_unique_id": "<32 hex>", "payload": "<hex>"}
func ReadClaimFile(path string) (domain.ClaimData, error) {
	var claim domain.ClaimData
	if err := readJSON(path, &claim); err != nil {
		if errors.Is(err, domain.ErrInvalidHexFormat) {
			return domain.ClaimData{}, fmt.Errorf("%w: %w", domain.ErrMalformedClaim, err)
		}
		return domain.ClaimData{}, err
	}
	if err := claim.Validate(); err != nil {
		return domain.ClaimData{}, err
	}
	return claim, nil
}

// ReadScopeFile loads a scope label, trimming surrounding whitespace.
func ReadScopeFile(path string) (domain.ScopeContext, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return domain.NewScopeContext(strings.TrimSpace(string(b)))
}

// ReadProofRecord loads a proof record. Hex or width errors in any field
// wrap domain.ErrInvalidHexFormat; a missing or empty scope is
// domain.ErrMalformedScope.
func ReadProofRecord(path string) (domain.ProofRecord, error) {
	var rec domain.ProofRecord
	if err := readJSON(path, &rec); err != nil {
		return domain.ProofRecord{}, err
	}
	if err := rec.Scope.Validate(); err != nil {
		return domain.ProofRecord{}, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// WriteProofRecord atomically writes rec to path.
func WriteProofRecord(path string, rec domain.ProofRecord) error {
	if err := rec.Scope.Validate(); err != nil {
		return err
	}
	return writeJSON(path, rec, 0o644)
}

// ListProofFiles returns the *.json files directly under dir, sorted.
func ListProofFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	sort.Strings(out)
	return out, nil
}
