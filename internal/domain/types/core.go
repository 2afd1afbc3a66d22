package types

import "cddproof/internal/util/hexcodec"

// Encoded widths of the fixed-size values.
const (
	PrivateIdentitySize = 16
	InvestorDIDSize     = 32
	IdentifierSize      = 32
	ProofSize           = 4 * IdentifierSize
)

// ClaimName is the local handle a claim is stored under.
type ClaimName string

// String returns the string form of the claim name.
func (n ClaimName) String() string { return string(n) }

// CddIdentifier is a compressed Ristretto255 point committing to an
// investor's identity.
type CddIdentifier [IdentifierSize]byte

// Slice returns the identifier as a []byte.
func (id CddIdentifier) Slice() []byte { return id[:] }

// String returns the lowercase hex form.
func (id CddIdentifier) String() string { return hexcodec.HexFromBytes(id[:]) }

// MarshalText encodes the identifier as hex.
func (id CddIdentifier) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UnmarshalText decodes a hex identifier of exactly IdentifierSize bytes.
func (id *CddIdentifier) UnmarshalText(text []byte) error {
	return hexcodec.DecodeFixed(id[:], string(text))
}

// ParseCddIdentifier decodes a hex CDD identifier.
func ParseCddIdentifier(text string) (CddIdentifier, error) {
	var id CddIdentifier
	err := id.UnmarshalText([]byte(text))
	return id, err
}

// ScopeIdentifier is a compressed Ristretto255 point binding an investor's
// identity to one scope.
type ScopeIdentifier [IdentifierSize]byte

// Slice returns the identifier as a []byte.
func (id ScopeIdentifier) Slice() []byte { return id[:] }

// String returns the lowercase hex form.
func (id ScopeIdentifier) String() string { return hexcodec.HexFromBytes(id[:]) }

// MarshalText encodes the identifier as hex.
func (id ScopeIdentifier) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UnmarshalText decodes a hex identifier of exactly IdentifierSize bytes.
func (id *ScopeIdentifier) UnmarshalText(text []byte) error {
	return hexcodec.DecodeFixed(id[:], string(text))
}

// ParseScopeIdentifier decodes a hex scope identifier.
func ParseScopeIdentifier(text string) (ScopeIdentifier, error) {
	var id ScopeIdentifier
	err := id.UnmarshalText([]byte(text))
	return id, err
}

// Proof is a non-interactive proof that a CddIdentifier and a
// ScopeIdentifier hide the same identity.
//
// Layout: scope base || challenge || identity response || blinding response.
type Proof [ProofSize]byte

// Slice returns the proof as a []byte.
func (p Proof) Slice() []byte { return p[:] }

// String returns the lowercase hex form.
func (p Proof) String() string { return hexcodec.HexFromBytes(p[:]) }

// MarshalText encodes the proof as hex.
func (p Proof) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText decodes a hex proof of exactly ProofSize bytes.
func (p *Proof) UnmarshalText(text []byte) error {
	return hexcodec.DecodeFixed(p[:], string(text))
}

// ParseProof decodes a hex proof.
func ParseProof(text string) (Proof, error) {
	var p Proof
	err := p.UnmarshalText([]byte(text))
	return p, err
}
