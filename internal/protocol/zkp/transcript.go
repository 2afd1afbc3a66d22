package zkp

import (
	"github.com/bwesterb/go-ristretto"
	"github.com/gtank/merlin"

	"cddproof/internal/crypto"
)

const transcriptLabel = "cddproof identity equality v1"

// statement is the public input both roles feed into the transcript.
type statement struct {
	cdd   [crypto.PointBytes]byte
	scope [crypto.PointBytes]byte
	base  [crypto.PointBytes]byte
}

func (s *statement) transcript() *merlin.Transcript {
	t := merlin.NewTranscript(transcriptLabel)
	t.AppendMessage([]byte("cdd_id"), s.cdd[:])
	t.AppendMessage([]byte("scope_id"), s.scope[:])
	t.AppendMessage([]byte("scope_base"), s.base[:])
	return t
}

// challenge binds the statement and the prover's first message.
func (s *statement) challenge(a, b [crypto.PointBytes]byte) *ristretto.Scalar {
	t := s.transcript()
	t.AppendMessage([]byte("A"), a[:])
	t.AppendMessage([]byte("B"), b[:])

	var wide [64]byte
	copy(wide[:], t.ExtractBytes([]byte("challenge"), len(wide)))
	var c ristretto.Scalar
	return c.SetReduced(&wide)
}
