package claim

import (
	"crypto/rand"
	"fmt"
	"io"
	"log/slog"
	"unicode"

	"cddproof/internal/crypto"
	"cddproof/internal/domain"
	"cddproof/internal/protocol/commit"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)
)

// Service manages claim creation and access using a backing store.
type Service struct {
	store  domain.ClaimStore
	rng    io.Reader
	logger *slog.Logger
}

// Option configures a Service.
type Option func(s *Service)

// WithLogger sets the logger used for issuance events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithRandom replaces crypto/rand as the source of new investor unique IDs.
func WithRandom(r io.Reader) Option {
	return func(s *Service) {
		s.rng = r
	}
}

// New returns a claim service backed by the given store.
func New(store domain.ClaimStore, opts ...Option) *Service {
	s := &Service{store: store, rng: rand.Reader, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IssueClaim creates a claim for subject with a freshly drawn investor
// unique ID, saves it encrypted under passphrase and returns it together
// with its CDD identifier.
func (s *Service) IssueClaim(
	passphrase string,
	name domain.ClaimName,
	subject domain.InvestorDID,
	payload []byte,
) (domain.ClaimData, domain.CddIdentifier, error) {
	if !isSecurePassphrase(passphrase) {
		return domain.ClaimData{}, domain.CddIdentifier{}, ErrWeakPassphrase
	}

	var uid domain.PrivateIdentity
	if _, err := io.ReadFull(s.rng, uid[:]); err != nil {
		return domain.ClaimData{}, domain.CddIdentifier{}, fmt.Errorf("draw investor unique id: %w", err)
	}
	claim, err := domain.NewClaimData(subject.Slice(), uid.Slice(), payload)
	if err != nil {
		return domain.ClaimData{}, domain.CddIdentifier{}, err
	}

	cddID, err := s.save(passphrase, name, claim)
	if err != nil {
		return domain.ClaimData{}, domain.CddIdentifier{}, err
	}
	s.logger.Info("claim issued",
		"claim", name,
		"subject", subject,
		"cdd_fingerprint", crypto.Fingerprint(cddID.Slice()),
	)
	return claim, cddID, nil
}

// ImportClaim stores an externally issued claim under name.
func (s *Service) ImportClaim(
	passphrase string,
	name domain.ClaimName,
	claim domain.ClaimData,
) (domain.CddIdentifier, error) {
	if !isSecurePassphrase(passphrase) {
		return domain.CddIdentifier{}, ErrWeakPassphrase
	}
	cddID, err := s.save(passphrase, name, claim)
	if err != nil {
		return domain.CddIdentifier{}, err
	}
	s.logger.Info("claim imported",
		"claim", name,
		"subject", claim.Subject,
		"cdd_fingerprint", crypto.Fingerprint(cddID.Slice()),
	)
	return cddID, nil
}

// LoadClaim decrypts and returns the claim stored under name.
func (s *Service) LoadClaim(passphrase string, name domain.ClaimName) (domain.ClaimData, error) {
	return s.store.LoadClaim(passphrase, name)
}

// ListClaims returns the names of all stored claims.
func (s *Service) ListClaims() ([]domain.ClaimName, error) {
	return s.store.ListClaims()
}

// save derives the CDD identifier first so a claim that cannot be
// committed to is never written.
func (s *Service) save(
	passphrase string,
	name domain.ClaimName,
	claim domain.ClaimData,
) (domain.CddIdentifier, error) {
	cddID, err := commit.DeriveCddIdentifier(claim)
	if err != nil {
		return domain.CddIdentifier{}, err
	}
	if err := s.store.SaveClaim(passphrase, name, claim); err != nil {
		return domain.CddIdentifier{}, err
	}
	return cddID, nil
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.ClaimService.
var _ domain.ClaimService = (*Service)(nil)
