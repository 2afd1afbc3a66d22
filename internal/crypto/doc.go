// Package crypto exposes the group primitives the commitment and proof
// engines are built on.
//
// Contents
//
//   - Ristretto255 generators with unknown mutual discrete logs
//     (IdentityGenerator, BlindingGenerator, HashToPoint)
//   - Domain-separated hash-to-scalar (HashToScalar)
//   - Strict decoding of points and scalars (DecodePoint, DecodeScalar)
//   - Short identifier fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Every hash input is prefixed with a versioned domain label and each part is
// length-prefixed, so distinct tuples never collide on concatenation.
package crypto
