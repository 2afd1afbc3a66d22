package app

import (
	"fmt"
	"log/slog"
	"os"

	"cddproof/internal/domain"
	"cddproof/internal/protocol/zkp"
	claimsvc "cddproof/internal/services/claim"
	proofsvc "cddproof/internal/services/proof"
	"cddproof/internal/store"
)

// Wire bundles all stores and services for the CLI.
type Wire struct {
	ClaimStore domain.ClaimStore
	ProofStore *store.ProofFileStore
	Claims     domain.ClaimService
	Proofs     domain.ProofService
	Logger     *slog.Logger
}

// NewWire constructs the dependency graph from cfg, creating cfg.Home if
// needed.
func NewWire(cfg Config) (*Wire, error) {
	if cfg.Home == "" {
		return nil, fmt.Errorf("app: home directory not set")
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	// File-based stores
	claimStore := store.NewClaimFileStore(cfg.Home)
	proofStore := store.NewProofFileStore(cfg.Home)

	// High-level services
	claims := claimsvc.New(claimStore, claimsvc.WithLogger(logger))
	proofs := proofsvc.New(claimStore, proofStore,
		proofsvc.WithProver(zkp.NewProver(nil)),
		proofsvc.WithWorkers(cfg.Workers),
		proofsvc.WithLogger(logger),
	)

	return &Wire{
		ClaimStore: claimStore,
		ProofStore: proofStore,
		Claims:     claims,
		Proofs:     proofs,
		Logger:     logger,
	}, nil
}
