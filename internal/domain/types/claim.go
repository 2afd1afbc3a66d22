package types

import (
	"errors"
	"fmt"

	"cddproof/internal/util/hexcodec"
)

// ErrMalformedClaim is returned when claim data is missing a field or a
// field has the wrong width.
var ErrMalformedClaim = errors.New("malformed claim")

// PrivateIdentity is the investor unique ID. It is the secret every derived
// identifier hides.
type PrivateIdentity [PrivateIdentitySize]byte

// Slice returns the identity as a []byte.
func (p PrivateIdentity) Slice() []byte { return p[:] }

// IsZero reports whether the identity is unset.
func (p PrivateIdentity) IsZero() bool { return p == PrivateIdentity{} }

// String keeps the identity out of logs and error messages.
func (p PrivateIdentity) String() string { return "PrivateIdentity(redacted)" }

// MarshalText encodes the identity as hex. Only claim files and the
// encrypted keystore serialise it.
func (p PrivateIdentity) MarshalText() ([]byte, error) {
	return []byte(hexcodec.HexFromBytes(p[:])), nil
}

// UnmarshalText decodes a hex identity of exactly PrivateIdentitySize bytes.
func (p *PrivateIdentity) UnmarshalText(text []byte) error {
	return hexcodec.DecodeFixed(p[:], string(text))
}

// InvestorDID is the public identifier of the claim subject.
type InvestorDID [InvestorDIDSize]byte

// Slice returns the DID as a []byte.
func (d InvestorDID) Slice() []byte { return d[:] }

// IsZero reports whether the DID is unset.
func (d InvestorDID) IsZero() bool { return d == InvestorDID{} }

// String returns the lowercase hex form.
func (d InvestorDID) String() string { return hexcodec.HexFromBytes(d[:]) }

// MarshalText encodes the DID as hex.
func (d InvestorDID) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText decodes a hex DID of exactly InvestorDIDSize bytes.
func (d *InvestorDID) UnmarshalText(text []byte) error {
	return hexcodec.DecodeFixed(d[:], string(text))
}

// ParseInvestorDID decodes a hex investor DID.
func ParseInvestorDID(text string) (InvestorDID, error) {
	var d InvestorDID
	err := d.UnmarshalText([]byte(text))
	return d, err
}

// Payload carries auxiliary claim bytes, hex encoded in JSON.
type Payload []byte

// MarshalText encodes the payload as hex.
func (p Payload) MarshalText() ([]byte, error) { return []byte(hexcodec.HexFromBytes(p)), nil }

// UnmarshalText decodes a hex payload of any even length.
func (p *Payload) UnmarshalText(text []byte) error {
	b, err := hexcodec.BytesFromHex(string(text))
	if err != nil {
		return err
	}
	*p = b
	return nil
}

// ClaimData is a CDD claim: a subject, the subject's private identity and
// optional auxiliary payload. Only Subject and Identity enter the CDD
// commitment.
type ClaimData struct {
	Subject  InvestorDID     `json:"investor_did"`
	Identity PrivateIdentity `json:"investor_unique_id"`
	Payload  Payload         `json:"payload,omitempty"`
}

// NewClaimData validates raw field bytes and assembles a ClaimData.
func NewClaimData(subject, identity, payload []byte) (ClaimData, error) {
	if len(subject) != InvestorDIDSize {
		return ClaimData{}, fmt.Errorf(
			"%w: investor DID must be %d bytes, got %d", ErrMalformedClaim, InvestorDIDSize, len(subject))
	}
	if len(identity) != PrivateIdentitySize {
		return ClaimData{}, fmt.Errorf(
			"%w: private identity must be %d bytes, got %d",
			ErrMalformedClaim, PrivateIdentitySize, len(identity))
	}
	var c ClaimData
	copy(c.Subject[:], subject)
	copy(c.Identity[:], identity)
	if len(payload) > 0 {
		c.Payload = append(Payload(nil), payload...)
	}
	if err := c.Validate(); err != nil {
		return ClaimData{}, err
	}
	return c, nil
}

// Validate checks that both committed fields are set.
func (c ClaimData) Validate() error {
	if c.Subject.IsZero() {
		return fmt.Errorf("%w: investor DID is empty", ErrMalformedClaim)
	}
	if c.Identity.IsZero() {
		return fmt.Errorf("%w: private identity is empty", ErrMalformedClaim)
	}
	return nil
}
