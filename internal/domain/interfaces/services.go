package interfaces

import (
	"context"

	domaintypes "cddproof/internal/domain/types"
)

// ClaimService issues, imports and inspects CDD claims.
type ClaimService interface {
	IssueClaim(
		passphrase string,
		name domaintypes.ClaimName,
		subject domaintypes.InvestorDID,
		payload []byte,
	) (domaintypes.ClaimData, domaintypes.CddIdentifier, error)
	ImportClaim(
		passphrase string,
		name domaintypes.ClaimName,
		claim domaintypes.ClaimData,
	) (domaintypes.CddIdentifier, error)
	LoadClaim(passphrase string, name domaintypes.ClaimName) (domaintypes.ClaimData, error)
	ListClaims() ([]domaintypes.ClaimName, error)
}

// ProofService creates and checks identity proofs.
type ProofService interface {
	Prove(
		ctx context.Context,
		passphrase string,
		name domaintypes.ClaimName,
		scope domaintypes.ScopeContext,
	) (domaintypes.ProofOutcome, error)
	ProveAll(
		ctx context.Context,
		passphrase string,
		scope domaintypes.ScopeContext,
	) ([]domaintypes.ProofOutcome, error)
	Verify(record domaintypes.ProofRecord) error
	VerifyStored(
		name domaintypes.ClaimName,
		scope domaintypes.ScopeContext,
	) (domaintypes.ProofRecord, error)
	VerifyDir(ctx context.Context, dir string) ([]domaintypes.VerificationResult, error)
}
