package app

import "cddproof/internal/domain"

// App is the handle commands run against.
type App struct {
	Claims   domain.ClaimService
	Proofs   domain.ProofService
	ProofDir string
}

// New builds the dependency graph for cfg and returns the command handle.
func New(cfg Config) (*App, error) {
	w, err := NewWire(cfg)
	if err != nil {
		return nil, err
	}
	return &App{
		Claims:   w.Claims,
		Proofs:   w.Proofs,
		ProofDir: w.ProofStore.Dir(),
	}, nil
}
