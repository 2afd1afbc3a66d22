package crypto

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/bwesterb/go-ristretto"
	"golang.org/x/crypto/blake2b"
)

const (
	// PointBytes is the width of a compressed Ristretto255 point.
	PointBytes = 32
	// ScalarBytes is the width of an encoded scalar.
	ScalarBytes = 32

	domainLabel = "cddproof/v1/"
)

var (
	ErrPointEncoding  = errors.New("invalid point encoding")
	ErrIdentityPoint  = errors.New("point is the group identity")
	ErrScalarEncoding = errors.New("non-canonical scalar encoding")
)

var (
	// IdentityGenerator carries the identity scalar in a CDD commitment.
	IdentityGenerator = HashToPoint([]byte("generator"), []byte("identity"))
	// BlindingGenerator carries the blinding scalar in a CDD commitment.
	BlindingGenerator = HashToPoint([]byte("generator"), []byte("blinding"))
)

// HashToPoint maps parts to a group element nobody knows a discrete log of.
func HashToPoint(parts ...[]byte) *ristretto.Point {
	sum := digest(parts)
	var p ristretto.Point
	return p.Derive(sum[:])
}

// HashToScalar maps parts to a uniformly distributed scalar.
func HashToScalar(parts ...[]byte) *ristretto.Scalar {
	sum := digest(parts)
	var s ristretto.Scalar
	return s.SetReduced(&sum)
}

func digest(parts [][]byte) [blake2b.Size]byte {
	buf := make([]byte, 0, 128)
	buf = append(buf, domainLabel...)
	for _, p := range parts {
		buf = binary.BigEndian.AppendUint64(buf, uint64(len(p)))
		buf = append(buf, p...)
	}
	return blake2b.Sum512(buf)
}

// EncodePoint returns the compressed form of p.
func EncodePoint(p *ristretto.Point) (out [PointBytes]byte) {
	copy(out[:], p.Bytes())
	return out
}

// DecodePoint parses a compressed point and rejects the identity element.
func DecodePoint(b []byte) (*ristretto.Point, error) {
	if len(b) != PointBytes {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrPointEncoding, PointBytes, len(b))
	}
	var buf [PointBytes]byte
	copy(buf[:], b)
	var p ristretto.Point
	if !p.SetBytes(&buf) {
		return nil, ErrPointEncoding
	}
	if IsIdentity(&p) {
		return nil, ErrIdentityPoint
	}
	return &p, nil
}

// IsIdentity reports whether p is the neutral element.
func IsIdentity(p *ristretto.Point) bool {
	var zero ristretto.Point
	return p.Equals(zero.SetZero())
}

// EncodeScalar returns the canonical little-endian encoding of s.
func EncodeScalar(s *ristretto.Scalar) (out [ScalarBytes]byte) {
	copy(out[:], s.Bytes())
	return out
}

// DecodeScalar parses a scalar and rejects encodings that are not fully
// reduced.
func DecodeScalar(b []byte) (*ristretto.Scalar, error) {
	if len(b) != ScalarBytes {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrScalarEncoding, ScalarBytes, len(b))
	}
	var buf [ScalarBytes]byte
	copy(buf[:], b)
	var s ristretto.Scalar
	s.SetBytes(&buf)
	if !bytes.Equal(s.Bytes(), b) {
		return nil, ErrScalarEncoding
	}
	return &s, nil
}

// IsZeroScalar reports whether s is zero.
func IsZeroScalar(s *ristretto.Scalar) bool {
	var zero ristretto.Scalar
	return s.Equals(zero.SetZero())
}
