package commit

import (
	"fmt"

	"github.com/bwesterb/go-ristretto"

	"cddproof/internal/crypto"
	"cddproof/internal/domain"
)

var labelScopeBase = []byte("scope/base")

// ScopeBase returns the public generator for scope.
func ScopeBase(scope domain.ScopeContext) (*ristretto.Point, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	return crypto.HashToPoint(labelScopeBase, scope.Bytes()), nil
}

// DeriveScopeIdentifier binds identity to scope.
func DeriveScopeIdentifier(
	identity domain.PrivateIdentity,
	scope domain.ScopeContext,
) (domain.ScopeIdentifier, error) {
	if identity.IsZero() {
		return domain.ScopeIdentifier{}, fmt.Errorf("%w: private identity is empty", domain.ErrMalformedClaim)
	}
	base, err := ScopeBase(scope)
	if err != nil {
		return domain.ScopeIdentifier{}, err
	}
	var p ristretto.Point
	p.ScalarMult(base, identityScalar(identity))
	return domain.ScopeIdentifier(crypto.EncodePoint(&p)), nil
}
