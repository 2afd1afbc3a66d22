package interfaces

import domaintypes "cddproof/internal/domain/types"

// ClaimStore persists claims encrypted under a passphrase.
type ClaimStore interface {
	SaveClaim(passphrase string, name domaintypes.ClaimName, claim domaintypes.ClaimData) error
	LoadClaim(passphrase string, name domaintypes.ClaimName) (domaintypes.ClaimData, error)
	ListClaims() ([]domaintypes.ClaimName, error)
}

// ProofStore persists proof records. Records hold no secrets and are stored
// in the clear.
type ProofStore interface {
	SaveProof(
		name domaintypes.ClaimName,
		record domaintypes.ProofRecord,
	) (path string, err error)
	LoadProof(
		name domaintypes.ClaimName,
		scope domaintypes.ScopeContext,
	) (domaintypes.ProofRecord, bool, error)
}
