package commit

import (
	"fmt"

	"github.com/bwesterb/go-ristretto"

	"cddproof/internal/crypto"
	"cddproof/internal/domain"
)

var (
	labelIdentity = []byte("cdd/identity")
	labelBlinding = []byte("cdd/blinding")
)

// Opening is the secret witness behind a CddIdentifier.
type Opening struct {
	Identity *ristretto.Scalar
	Blinding *ristretto.Scalar
}

// Open validates claim and returns its commitment witness.
func Open(claim domain.ClaimData) (Opening, error) {
	if err := claim.Validate(); err != nil {
		return Opening{}, err
	}
	return Opening{
		Identity: identityScalar(claim.Identity),
		Blinding: crypto.HashToScalar(labelBlinding, claim.Subject[:], claim.Identity[:]),
	}, nil
}

// Commit returns u·G_id + k·G_blind.
func (o Opening) Commit() *ristretto.Point {
	var a, b, c ristretto.Point
	a.ScalarMult(crypto.IdentityGenerator, o.Identity)
	b.ScalarMult(crypto.BlindingGenerator, o.Blinding)
	return c.Add(&a, &b)
}

// ScopeTag returns u·base.
func (o Opening) ScopeTag(base *ristretto.Point) *ristretto.Point {
	var p ristretto.Point
	return p.ScalarMult(base, o.Identity)
}

// DeriveCddIdentifier commits to the claim's subject and private identity.
// The payload does not take part, so claims that differ only in payload
// share an identifier.
func DeriveCddIdentifier(claim domain.ClaimData) (domain.CddIdentifier, error) {
	o, err := Open(claim)
	if err != nil {
		return domain.CddIdentifier{}, err
	}
	p := o.Commit()
	if crypto.IsIdentity(p) {
		return domain.CddIdentifier{}, fmt.Errorf("%w: degenerate commitment", domain.ErrMalformedClaim)
	}
	return domain.CddIdentifier(crypto.EncodePoint(p)), nil
}

func identityScalar(id domain.PrivateIdentity) *ristretto.Scalar {
	return crypto.HashToScalar(labelIdentity, id[:])
}
