package crypto

import (
	"golang.org/x/crypto/blake2b"

	"cddproof/internal/util/hexcodec"
)

// Fingerprint returns a short hex fingerprint of a public identifier.
//
// It hashes with BLAKE2b-256 and truncates to 8 bytes (16 hex chars).
func Fingerprint(id []byte) string {
	sum := blake2b.Sum256(id)
	return hexcodec.HexFromBytes(sum[:8])
}
