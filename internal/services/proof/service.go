package proof

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"cddproof/internal/crypto"
	"cddproof/internal/domain"
	"cddproof/internal/protocol/zkp"
	"cddproof/internal/store"
)

// Service proves and verifies claims.
type Service struct {
	claims  domain.ClaimStore
	proofs  domain.ProofStore
	prover  *zkp.Prover
	workers int
	logger  *slog.Logger
}

// Option configures a Service.
type Option func(s *Service)

// WithLogger sets the logger used for proof and verification events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithProver replaces the crypto/rand backed prover.
func WithProver(p *zkp.Prover) Option {
	return func(s *Service) {
		s.prover = p
	}
}

// WithWorkers bounds batch concurrency. Values below one fall back to
// GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(s *Service) {
		s.workers = n
	}
}

// New returns a proof service over the given stores.
func New(claims domain.ClaimStore, proofs domain.ProofStore, opts ...Option) *Service {
	s := &Service{
		claims: claims,
		proofs: proofs,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.prover == nil {
		s.prover = zkp.NewProver(nil)
	}
	if s.workers < 1 {
		s.workers = runtime.GOMAXPROCS(0)
	}
	return s
}

// Prove creates a proof for the claim stored under name and saves the
// resulting record.
func (s *Service) Prove(
	ctx context.Context,
	passphrase string,
	name domain.ClaimName,
	scope domain.ScopeContext,
) (domain.ProofOutcome, error) {
	out := domain.ProofOutcome{Claim: name}
	if err := ctx.Err(); err != nil {
		return out, err
	}
	if err := scope.Validate(); err != nil {
		return out, err
	}

	claim, err := s.claims.LoadClaim(passphrase, name)
	if err != nil {
		return out, err
	}
	cddID, scopeID, proof, err := s.prover.CreateProof(claim, scope)
	if err != nil {
		return out, fmt.Errorf("prove %s: %w", name, err)
	}

	out.Record = domain.ProofRecord{CddID: cddID, ScopeID: scopeID, Proof: proof, Scope: scope}
	out.Path, err = s.proofs.SaveProof(name, out.Record)
	if err != nil {
		return out, err
	}
	s.logger.InfoContext(ctx, "proof created",
		"claim", name,
		"scope", scope,
		"cdd_id", cddID,
		"scope_id", scopeID,
		"path", out.Path,
	)
	return out, nil
}

// ProveAll proves every stored claim for scope. A failing claim is reported
// in its outcome and does not stop the others; the returned error is set
// only when the claims cannot be listed or ctx is cancelled.
func (s *Service) ProveAll(
	ctx context.Context,
	passphrase string,
	scope domain.ScopeContext,
) ([]domain.ProofOutcome, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	names, err := s.claims.ListClaims()
	if err != nil {
		return nil, err
	}

	runID := uuid.New()
	logger := s.logger.With("run_id", runID.String(), "scope", scope)
	logger.InfoContext(ctx, "batch proving started", "claims", len(names), "workers", s.workers)

	outcomes := make([]domain.ProofOutcome, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := s.Prove(gctx, passphrase, name, scope)
			out.Err = err
			outcomes[i] = out
			if err != nil {
				logger.WarnContext(gctx, "proof failed", "claim", name, "error", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return outcomes, err
	}

	logger.InfoContext(ctx, "batch proving finished", "failed", countFailedOutcomes(outcomes))
	return outcomes, nil
}

// Verify checks record against the scope it names. A record without a
// scope never verifies.
func (s *Service) Verify(record domain.ProofRecord) error {
	return zkp.Verify(record.CddID, record.ScopeID, record.Scope, record.Proof)
}

// VerifyStored verifies the record saved for (name, scope) and returns it.
func (s *Service) VerifyStored(name domain.ClaimName, scope domain.ScopeContext) (domain.ProofRecord, error) {
	if err := scope.Validate(); err != nil {
		return domain.ProofRecord{}, err
	}
	rec, ok, err := s.proofs.LoadProof(name, scope)
	if err != nil {
		return domain.ProofRecord{}, err
	}
	if !ok {
		return domain.ProofRecord{}, fmt.Errorf("%w: %s in scope %q", domain.ErrProofNotFound, name, scope)
	}
	// The file name keys the scope; the record must agree with it.
	if rec.Scope != scope {
		return rec, fmt.Errorf("%w: record names scope %q", domain.ErrInvalidProof, rec.Scope)
	}
	return rec, s.Verify(rec)
}

// VerifyDir verifies every proof record file in dir. Each file gets a
// result, whether it failed to parse or failed to verify; the returned error
// is set only when dir cannot be read or ctx is cancelled.
func (s *Service) VerifyDir(ctx context.Context, dir string) ([]domain.VerificationResult, error) {
	files, err := store.ListProofFiles(dir)
	if err != nil {
		return nil, err
	}

	runID := uuid.New()
	logger := s.logger.With("run_id", runID.String(), "dir", dir)
	logger.InfoContext(ctx, "batch verification started", "files", len(files), "workers", s.workers)

	results := make([]domain.VerificationResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.verifyFile(path)
			if err := results[i].Err; err != nil {
				logger.WarnContext(gctx, "proof rejected", "file", path, "error", err)
			} else {
				logger.DebugContext(gctx, "proof accepted",
					"file", path,
					"cdd_fingerprint", crypto.Fingerprint(results[i].Record.CddID.Slice()),
				)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	logger.InfoContext(ctx, "batch verification finished", "rejected", countRejected(results))
	return results, nil
}

func (s *Service) verifyFile(path string) domain.VerificationResult {
	res := domain.VerificationResult{Source: path}
	rec, err := store.ReadProofRecord(path)
	if err != nil {
		res.Err = fmt.Errorf("%w: %w", domain.ErrInvalidProof, err)
		return res
	}
	res.Record = rec
	res.Err = s.Verify(rec)
	return res
}

func countFailedOutcomes(outcomes []domain.ProofOutcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}

func countRejected(results []domain.VerificationResult) int {
	n := 0
	for _, r := range results {
		if !r.OK() {
			n++
		}
	}
	return n
}

// Compile-time assertion that Service implements domain.ProofService.
var _ domain.ProofService = (*Service)(nil)
