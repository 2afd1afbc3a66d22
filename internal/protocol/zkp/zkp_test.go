package zkp_test

import (
	"bytes"
	"crypto/rand"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cddproof/internal/domain"
	"cddproof/internal/protocol/commit"
	"cddproof/internal/protocol/zkp"
)

const sampleUID = "98191f46e5830216445436978803697a"

func sampleClaim(t *testing.T, subjectByte byte) domain.ClaimData {
	t.Helper()
	var c domain.ClaimData
	require.NoError(t, c.Identity.UnmarshalText([]byte(sampleUID)))
	for i := range c.Subject {
		c.Subject[i] = subjectByte
	}
	return c
}

func randomClaim(t *testing.T) domain.ClaimData {
	t.Helper()
	did := make([]byte, domain.InvestorDIDSize)
	uid := make([]byte, domain.PrivateIdentitySize)
	_, err := rand.Read(did)
	require.NoError(t, err)
	_, err = rand.Read(uid)
	require.NoError(t, err)
	c, err := domain.NewClaimData(did, uid, nil)
	require.NoError(t, err)
	return c
}

func TestCreateProof_Verifies(t *testing.T) {
	claim := sampleClaim(t, 1)

	cddID, scopeID, proof, err := zkp.CreateProof(claim, "ACME")
	require.NoError(t, err)

	require.NoError(t, zkp.Verify(cddID, scopeID, "ACME", proof))
	require.NoError(t, zkp.VerifyBytes(cddID.Slice(), scopeID.Slice(), "ACME", proof.Slice()))

	// Verification is idempotent.
	require.NoError(t, zkp.Verify(cddID, scopeID, "ACME", proof))
}

func TestCreateProof_IdentifiersMatchDerivations(t *testing.T) {
	claim := sampleClaim(t, 1)

	cddID, scopeID, _, err := zkp.CreateProof(claim, "ACME")
	require.NoError(t, err)

	wantCdd, err := commit.DeriveCddIdentifier(claim)
	require.NoError(t, err)
	wantScope, err := commit.DeriveScopeIdentifier(claim.Identity, "ACME")
	require.NoError(t, err)

	assert.Equal(t, wantCdd, cddID)
	assert.Equal(t, wantScope, scopeID)
}

func TestCreateProof_FreshRandomness(t *testing.T) {
	claim := sampleClaim(t, 1)

	cdd1, scope1, proof1, err := zkp.CreateProof(claim, "ACME")
	require.NoError(t, err)
	cdd2, scope2, proof2, err := zkp.CreateProof(claim, "ACME")
	require.NoError(t, err)

	assert.Equal(t, cdd1, cdd2)
	assert.Equal(t, scope1, scope2)
	assert.NotEqual(t, proof1, proof2)

	require.NoError(t, zkp.Verify(cdd1, scope1, "ACME", proof2))
	require.NoError(t, zkp.Verify(cdd2, scope2, "ACME", proof1))
}

func TestVerify_RejectsOtherSubject(t *testing.T) {
	cddA, scopeA, proofA, err := zkp.CreateProof(randomClaim(t), "ACME")
	require.NoError(t, err)
	cddB, scopeB, proofB, err := zkp.CreateProof(randomClaim(t), "ACME")
	require.NoError(t, err)

	assert.ErrorIs(t, zkp.Verify(cddB, scopeB, "ACME", proofA), domain.ErrInvalidProof)
	assert.ErrorIs(t, zkp.Verify(cddA, scopeA, "ACME", proofB), domain.ErrInvalidProof)

	// Mixed pairs from two identities never verify.
	assert.ErrorIs(t, zkp.Verify(cddA, scopeB, "ACME", proofA), domain.ErrInvalidProof)
	assert.ErrorIs(t, zkp.Verify(cddB, scopeA, "ACME", proofA), domain.ErrInvalidProof)
}

func TestVerify_RejectsReplayAcrossScopes(t *testing.T) {
	claim := sampleClaim(t, 1)

	cddID, scopeACME, proof, err := zkp.CreateProof(claim, "ACME")
	require.NoError(t, err)
	_, scopeOther, _, err := zkp.CreateProof(claim, "OTHER")
	require.NoError(t, err)

	assert.ErrorIs(t, zkp.Verify(cddID, scopeOther, "ACME", proof), domain.ErrInvalidProof)
	assert.ErrorIs(t, zkp.Verify(cddID, scopeOther, "OTHER", proof), domain.ErrInvalidProof)
	assert.ErrorIs(t, zkp.Verify(cddID, scopeACME, "OTHER", proof), domain.ErrInvalidProof)
}

func TestVerify_RejectsSameIdentityDifferentSubject(t *testing.T) {
	// Same UID, different subjects: the scope identifier is shared but the
	// CDD identifiers differ, so a proof for one subject must not verify
	// for the other.
	cddA, scope, proofA, err := zkp.CreateProof(sampleClaim(t, 1), "ACME")
	require.NoError(t, err)
	cddB, scopeB, _, err := zkp.CreateProof(sampleClaim(t, 2), "ACME")
	require.NoError(t, err)
	require.Equal(t, scope, scopeB)
	require.NotEqual(t, cddA, cddB)

	assert.ErrorIs(t, zkp.Verify(cddB, scope, "ACME", proofA), domain.ErrInvalidProof)
}

func TestVerify_RejectsTampering(t *testing.T) {
	cddID, scopeID, proof, err := zkp.CreateProof(sampleClaim(t, 1), "ACME")
	require.NoError(t, err)

	for _, i := range []int{0, 31, 32, 40, 63, 64, 80, 95, 96, 127} {
		bad := proof
		bad[i] ^= 0x01
		assert.ErrorIs(t, zkp.Verify(cddID, scopeID, "ACME", bad), domain.ErrInvalidProof, "byte %d", i)
	}

	badCdd := cddID
	badCdd[5] ^= 0x10
	assert.ErrorIs(t, zkp.Verify(badCdd, scopeID, "ACME", proof), domain.ErrInvalidProof)

	var zeroProof domain.Proof
	assert.ErrorIs(t, zkp.Verify(cddID, scopeID, "ACME", zeroProof), domain.ErrInvalidProof)
}

func TestVerifyBytes_RejectsMalformedLengths(t *testing.T) {
	cddID, scopeID, proof, err := zkp.CreateProof(sampleClaim(t, 1), "ACME")
	require.NoError(t, err)

	assert.ErrorIs(t, zkp.VerifyBytes(cddID[:31], scopeID[:], "ACME", proof[:]), domain.ErrInvalidProof)
	assert.ErrorIs(t, zkp.VerifyBytes(cddID[:], append(scopeID[:], 0), "ACME", proof[:]), domain.ErrInvalidProof)
	assert.ErrorIs(t, zkp.VerifyBytes(cddID[:], scopeID[:], "ACME", proof[:65]), domain.ErrInvalidProof)
	assert.ErrorIs(t, zkp.VerifyBytes(nil, nil, "ACME", nil), domain.ErrInvalidProof)
}

func TestVerify_RequiresScope(t *testing.T) {
	cddID, scopeID, proof, err := zkp.CreateProof(sampleClaim(t, 1), "ACME")
	require.NoError(t, err)

	err = zkp.Verify(cddID, scopeID, "", proof)
	assert.ErrorIs(t, err, domain.ErrInvalidProof)
	assert.ErrorIs(t, err, domain.ErrMalformedScope)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

type constReader struct{ b byte }

func (r constReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.b
	}
	return len(p), nil
}

func TestProver_RandomnessFailures(t *testing.T) {
	claim := sampleClaim(t, 1)

	t.Run("read error", func(t *testing.T) {
		_, _, _, err := zkp.NewProver(failingReader{}).CreateProof(claim, "ACME")
		assert.ErrorIs(t, err, domain.ErrProofGeneration)
	})

	t.Run("short read", func(t *testing.T) {
		p := zkp.NewProver(bytes.NewReader(make([]byte, 10)))
		_, _, _, err := p.CreateProof(claim, "ACME")
		assert.ErrorIs(t, err, domain.ErrProofGeneration)
	})

	t.Run("all zero", func(t *testing.T) {
		_, _, _, err := zkp.NewProver(constReader{0}).CreateProof(claim, "ACME")
		assert.ErrorIs(t, err, domain.ErrProofGeneration)
	})

	t.Run("repeated draw", func(t *testing.T) {
		p := zkp.NewProver(constReader{0x5a})
		cddID, scopeID, proof, err := p.CreateProof(claim, "ACME")
		require.NoError(t, err)
		require.NoError(t, zkp.Verify(cddID, scopeID, "ACME", proof))

		_, _, _, err = p.CreateProof(claim, "ACME")
		assert.ErrorIs(t, err, domain.ErrProofGeneration)
	})
}

func TestProver_RejectsMalformedInput(t *testing.T) {
	_, _, _, err := zkp.CreateProof(domain.ClaimData{}, "ACME")
	assert.ErrorIs(t, err, domain.ErrMalformedClaim)

	_, _, _, err = zkp.CreateProof(sampleClaim(t, 1), "")
	assert.ErrorIs(t, err, domain.ErrMalformedScope)
}

func TestProver_ConcurrentUse(t *testing.T) {
	prover := zkp.NewProver(nil)

	claims := make([]domain.ClaimData, 16)
	for i := range claims {
		claims[i] = randomClaim(t)
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(claims))
	for _, claim := range claims {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cddID, scopeID, proof, err := prover.CreateProof(claim, "ACME")
			if err != nil {
				errs <- err
				return
			}
			errs <- zkp.Verify(cddID, scopeID, "ACME", proof)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}
