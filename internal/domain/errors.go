package domain

import (
	"errors"

	types "cddproof/internal/domain/types"
	"cddproof/internal/util/hexcodec"
)

// Error taxonomy. Every failure the engine, stores and services return wraps
// one of these; match with errors.Is.
var (
	ErrInvalidHexFormat = hexcodec.ErrInvalidHexFormat
	ErrMalformedClaim   = types.ErrMalformedClaim
	ErrMalformedScope   = types.ErrMalformedScope

	// ErrProofGeneration is fatal for the subject being proven. The caller
	// decides whether to retry with a fresh prover.
	ErrProofGeneration = errors.New("proof generation failed")
	ErrInvalidProof    = errors.New("invalid proof")

	ErrClaimNotFound   = errors.New("claim not found")
	ErrProofNotFound   = errors.New("proof not found")
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted claim")
)
