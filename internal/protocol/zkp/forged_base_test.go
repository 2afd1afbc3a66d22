package zkp

import (
	"bytes"
	"testing"

	"github.com/bwesterb/go-ristretto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cddproof/internal/crypto"
	"cddproof/internal/domain"
	"cddproof/internal/protocol/commit"
)

func claimWith(t *testing.T, subjectByte, uidByte byte) domain.ClaimData {
	t.Helper()
	c, err := domain.NewClaimData(
		bytes.Repeat([]byte{subjectByte}, domain.InvestorDIDSize),
		bytes.Repeat([]byte{uidByte}, domain.PrivateIdentitySize),
		nil,
	)
	require.NoError(t, err)
	return c
}

// proveWithBase runs the honest sigma protocol for opening against a base
// of the caller's choosing and claims target as the scope identifier. It
// succeeds algebraically whenever u·base == target.
func proveWithBase(
	t *testing.T,
	opening commit.Opening,
	base *ristretto.Point,
	target domain.ScopeIdentifier,
) (domain.CddIdentifier, domain.Proof) {
	t.Helper()
	st := &statement{
		cdd:   crypto.EncodePoint(opening.Commit()),
		scope: target,
		base:  crypto.EncodePoint(base),
	}

	var ru, rk ristretto.Scalar
	ru.Rand()
	rk.Rand()

	var a1, a2, a, b ristretto.Point
	a1.ScalarMult(crypto.IdentityGenerator, &ru)
	a2.ScalarMult(crypto.BlindingGenerator, &rk)
	a.Add(&a1, &a2)
	b.ScalarMult(base, &ru)
	c := st.challenge(crypto.EncodePoint(&a), crypto.EncodePoint(&b))

	var cu, ck, zu, zk ristretto.Scalar
	cu.Mul(c, opening.Identity)
	ck.Mul(c, opening.Blinding)
	zu.Add(&ru, &cu)
	zk.Add(&rk, &ck)

	var proof domain.Proof
	copy(proof[0:32], st.base[:])
	copy(proof[32:64], c.Bytes())
	copy(proof[64:96], zu.Bytes())
	copy(proof[96:128], zk.Bytes())
	return domain.CddIdentifier(st.cdd), proof
}

func TestVerify_RejectsProverChosenBase(t *testing.T) {
	attacker := claimWith(t, 1, 0x11)
	victim := claimWith(t, 2, 0x22)

	victimScope, err := commit.DeriveScopeIdentifier(victim.Identity, "ACME")
	require.NoError(t, err)
	victimPoint, err := crypto.DecodePoint(victimScope[:])
	require.NoError(t, err)

	opening, err := commit.Open(attacker)
	require.NoError(t, err)

	// base' = u_A⁻¹·SCOPE_victim, so u_A·base' == SCOPE_victim.
	var inv ristretto.Scalar
	inv.Inverse(opening.Identity)
	var forgedBase, check ristretto.Point
	forgedBase.ScalarMult(victimPoint, &inv)
	require.True(t, check.ScalarMult(&forgedBase, opening.Identity).Equals(victimPoint))

	cddID, proof := proveWithBase(t, opening, &forgedBase, victimScope)

	err = Verify(cddID, victimScope, "ACME", proof)
	assert.ErrorIs(t, err, domain.ErrInvalidProof)
	assert.ErrorContains(t, err, "different scope")

	err = VerifyBytes(cddID.Slice(), victimScope.Slice(), "ACME", proof.Slice())
	assert.ErrorIs(t, err, domain.ErrInvalidProof)
}

func TestVerify_RejectsArbitraryScopeIdentifier(t *testing.T) {
	opening, err := commit.Open(claimWith(t, 1, 0x11))
	require.NoError(t, err)

	// Any point can be passed off as a scope identifier when the base is free.
	target := crypto.HashToPoint([]byte("arbitrary"))
	var inv ristretto.Scalar
	inv.Inverse(opening.Identity)
	var forgedBase ristretto.Point
	forgedBase.ScalarMult(target, &inv)

	scopeID := domain.ScopeIdentifier(crypto.EncodePoint(target))
	cddID, proof := proveWithBase(t, opening, &forgedBase, scopeID)

	assert.ErrorIs(t, Verify(cddID, scopeID, "ACME", proof), domain.ErrInvalidProof)
}

func TestVerify_HonestBaseStillAccepted(t *testing.T) {
	claim := claimWith(t, 1, 0x11)
	opening, err := commit.Open(claim)
	require.NoError(t, err)
	base, err := commit.ScopeBase("ACME")
	require.NoError(t, err)
	scopeID, err := commit.DeriveScopeIdentifier(claim.Identity, "ACME")
	require.NoError(t, err)

	cddID, proof := proveWithBase(t, opening, base, scopeID)
	assert.NoError(t, Verify(cddID, scopeID, "ACME", proof))
}
