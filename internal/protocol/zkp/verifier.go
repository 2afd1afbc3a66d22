package zkp

import (
	"crypto/subtle"
	"fmt"

	"github.com/bwesterb/go-ristretto"

	"cddproof/internal/crypto"
	"cddproof/internal/domain"
	"cddproof/internal/protocol/commit"
)

// VerifyBytes checks raw byte inputs, rejecting any of the wrong length.
func VerifyBytes(cddID, scopeID []byte, scope domain.ScopeContext, proof []byte) error {
	if len(cddID) != domain.IdentifierSize {
		return fmt.Errorf("%w: cdd identifier must be %d bytes, got %d",
			domain.ErrInvalidProof, domain.IdentifierSize, len(cddID))
	}
	if len(scopeID) != domain.IdentifierSize {
		return fmt.Errorf("%w: scope identifier must be %d bytes, got %d",
			domain.ErrInvalidProof, domain.IdentifierSize, len(scopeID))
	}
	if len(proof) != domain.ProofSize {
		return fmt.Errorf("%w: proof must be %d bytes, got %d",
			domain.ErrInvalidProof, domain.ProofSize, len(proof))
	}
	var (
		c domain.CddIdentifier
		s domain.ScopeIdentifier
		p domain.Proof
	)
	copy(c[:], cddID)
	copy(s[:], scopeID)
	copy(p[:], proof)
	return Verify(c, s, scope, p)
}

// Verify accepts proof iff it was produced for exactly (cddID, scopeID) in
// scope by someone who knows the identity behind both.
//
// The scope base is always recomputed from the label. The copy carried in
// the proof must match it; a prover who picks its own base can make any
// point look like its scope identifier.
func Verify(
	cddID domain.CddIdentifier,
	scopeID domain.ScopeIdentifier,
	scope domain.ScopeContext,
	proof domain.Proof,
) error {
	base, err := commit.ScopeBase(scope)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidProof, err)
	}
	wantBase := crypto.EncodePoint(base)
	if subtle.ConstantTimeCompare(wantBase[:], proof[0:32]) != 1 {
		return fmt.Errorf("%w: proof was made for a different scope", domain.ErrInvalidProof)
	}

	cddPoint, err := crypto.DecodePoint(cddID[:])
	if err != nil {
		return fmt.Errorf("%w: cdd identifier: %w", domain.ErrInvalidProof, err)
	}
	scopePoint, err := crypto.DecodePoint(scopeID[:])
	if err != nil {
		return fmt.Errorf("%w: scope identifier: %w", domain.ErrInvalidProof, err)
	}
	c, err := crypto.DecodeScalar(proof[32:64])
	if err != nil {
		return fmt.Errorf("%w: challenge: %w", domain.ErrInvalidProof, err)
	}
	zu, err := crypto.DecodeScalar(proof[64:96])
	if err != nil {
		return fmt.Errorf("%w: identity response: %w", domain.ErrInvalidProof, err)
	}
	zk, err := crypto.DecodeScalar(proof[96:128])
	if err != nil {
		return fmt.Errorf("%w: blinding response: %w", domain.ErrInvalidProof, err)
	}

	// A = z_u·G_id + z_k·G_blind − c·CDD
	var t1, t2, t3, sum, a ristretto.Point
	t1.ScalarMult(crypto.IdentityGenerator, zu)
	t2.ScalarMult(crypto.BlindingGenerator, zk)
	t3.ScalarMult(cddPoint, c)
	sum.Add(&t1, &t2)
	a.Sub(&sum, &t3)

	// B = z_u·S_base − c·SCOPE
	var s1, s2, b ristretto.Point
	s1.ScalarMult(base, zu)
	s2.ScalarMult(scopePoint, c)
	b.Sub(&s1, &s2)

	st := &statement{cdd: cddID, scope: scopeID, base: wantBase}
	if !st.challenge(crypto.EncodePoint(&a), crypto.EncodePoint(&b)).Equals(c) {
		return fmt.Errorf("%w: verification equation failed", domain.ErrInvalidProof)
	}
	return nil
}
