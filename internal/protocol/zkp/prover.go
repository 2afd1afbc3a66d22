package zkp

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"
	"sync"

	"github.com/bwesterb/go-ristretto"
	"golang.org/x/crypto/blake2b"

	"cddproof/internal/crypto"
	"cddproof/internal/domain"
	"cddproof/internal/protocol/commit"
	"cddproof/internal/util/memzero"
)

const seedBytes = 64

// Prover creates identity proofs from a randomness source. A Prover is safe
// for concurrent use; draws from its source are serialised.
type Prover struct {
	rng io.Reader

	mu       sync.Mutex
	lastSeed [32]byte
	drawn    bool
}

// NewProver returns a Prover reading nonces from rng, or from crypto/rand
// when rng is nil.
func NewProver(rng io.Reader) *Prover {
	if rng == nil {
		rng = rand.Reader
	}
	return &Prover{rng: rng}
}

var defaultProver = NewProver(nil)

// CreateProof derives both identifiers for claim and scope and proves they
// hide the same identity, using crypto/rand.
func CreateProof(
	claim domain.ClaimData,
	scope domain.ScopeContext,
) (domain.CddIdentifier, domain.ScopeIdentifier, domain.Proof, error) {
	return defaultProver.CreateProof(claim, scope)
}

// CreateProof derives both identifiers for claim and scope and proves they
// hide the same identity. Every call consumes fresh randomness, so two
// proofs for the same input differ.
func (p *Prover) CreateProof(
	claim domain.ClaimData,
	scope domain.ScopeContext,
) (domain.CddIdentifier, domain.ScopeIdentifier, domain.Proof, error) {
	var (
		cddID   domain.CddIdentifier
		scopeID domain.ScopeIdentifier
		proof   domain.Proof
	)

	opening, err := commit.Open(claim)
	if err != nil {
		return cddID, scopeID, proof, err
	}
	base, err := commit.ScopeBase(scope)
	if err != nil {
		return cddID, scopeID, proof, err
	}
	cddPoint := opening.Commit()
	scopePoint := opening.ScopeTag(base)
	if crypto.IsIdentity(cddPoint) || crypto.IsIdentity(scopePoint) {
		return cddID, scopeID, proof, fmt.Errorf("%w: identifier is the identity element", domain.ErrProofGeneration)
	}
	st := &statement{
		cdd:   crypto.EncodePoint(cddPoint),
		scope: crypto.EncodePoint(scopePoint),
		base:  crypto.EncodePoint(base),
	}

	seed, err := p.draw()
	if err != nil {
		return cddID, scopeID, proof, err
	}
	defer memzero.Zero(seed[:])

	u := crypto.EncodeScalar(opening.Identity)
	k := crypto.EncodeScalar(opening.Blinding)
	defer memzero.Zero(u[:])
	defer memzero.Zero(k[:])

	ru, err := nonce(&seed, "r_identity", st, u[:], k[:])
	if err != nil {
		return cddID, scopeID, proof, err
	}
	rk, err := nonce(&seed, "r_blinding", st, u[:], k[:])
	if err != nil {
		return cddID, scopeID, proof, err
	}

	var a1, a2, a, b ristretto.Point
	a1.ScalarMult(crypto.IdentityGenerator, ru)
	a2.ScalarMult(crypto.BlindingGenerator, rk)
	a.Add(&a1, &a2)
	b.ScalarMult(base, ru)

	c := st.challenge(crypto.EncodePoint(&a), crypto.EncodePoint(&b))

	var cu, ck, zu, zk ristretto.Scalar
	cu.Mul(c, opening.Identity)
	ck.Mul(c, opening.Blinding)
	zu.Add(ru, &cu)
	zk.Add(rk, &ck)

	copy(proof[0:32], st.base[:])
	copy(proof[32:64], c.Bytes())
	copy(proof[64:96], zu.Bytes())
	copy(proof[96:128], zk.Bytes())

	return domain.CddIdentifier(st.cdd), domain.ScopeIdentifier(st.scope), proof, nil
}

// draw reads one seed and refuses zero or repeated output.
func (p *Prover) draw() ([seedBytes]byte, error) {
	var seed [seedBytes]byte

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, err := io.ReadFull(p.rng, seed[:]); err != nil {
		return seed, fmt.Errorf("%w: read randomness: %w", domain.ErrProofGeneration, err)
	}
	var zero [seedBytes]byte
	if subtle.ConstantTimeCompare(seed[:], zero[:]) == 1 {
		return seed, fmt.Errorf("%w: randomness source returned zeros", domain.ErrProofGeneration)
	}
	sum := blake2b.Sum256(seed[:])
	if p.drawn && subtle.ConstantTimeCompare(sum[:], p.lastSeed[:]) == 1 {
		memzero.Zero(seed[:])
		return seed, fmt.Errorf("%w: randomness source repeated its output", domain.ErrProofGeneration)
	}
	p.lastSeed = sum
	p.drawn = true
	return seed, nil
}

// nonce derives one commitment nonce keyed by seed over the statement and
// the witness.
func nonce(
	seed *[seedBytes]byte,
	label string,
	st *statement,
	witness ...[]byte,
) (*ristretto.Scalar, error) {
	h, err := blake2b.New512(seed[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrProofGeneration, err)
	}
	h.Write([]byte(label))
	h.Write(st.cdd[:])
	h.Write(st.scope[:])
	h.Write(st.base[:])
	for _, w := range witness {
		h.Write(w)
	}

	var wide [64]byte
	h.Sum(wide[:0])
	defer memzero.Zero(wide[:])

	var r ristretto.Scalar
	r.SetReduced(&wide)
	if crypto.IsZeroScalar(&r) {
		return nil, fmt.Errorf("%w: zero nonce", domain.ErrProofGeneration)
	}
	return &r, nil
}
