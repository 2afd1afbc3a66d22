package domain

import (
	interfaces "cddproof/internal/domain/interfaces"
	types "cddproof/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	ClaimName          = types.ClaimName
	PrivateIdentity    = types.PrivateIdentity
	InvestorDID        = types.InvestorDID
	Payload            = types.Payload
	ClaimData          = types.ClaimData
	ScopeContext       = types.ScopeContext
	CddIdentifier      = types.CddIdentifier
	ScopeIdentifier    = types.ScopeIdentifier
	Proof              = types.Proof
	ProofRecord        = types.ProofRecord
	ProofOutcome       = types.ProofOutcome
	VerificationResult = types.VerificationResult
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	ClaimStore   = interfaces.ClaimStore
	ProofStore   = interfaces.ProofStore
	ClaimService = interfaces.ClaimService
	ProofService = interfaces.ProofService
)

// Encoded widths.
const (
	PrivateIdentitySize = types.PrivateIdentitySize
	InvestorDIDSize     = types.InvestorDIDSize
	IdentifierSize      = types.IdentifierSize
	ProofSize           = types.ProofSize
)

// Constructors and parsers.
var (
	NewClaimData         = types.NewClaimData
	NewScopeContext      = types.NewScopeContext
	ParseCddIdentifier   = types.ParseCddIdentifier
	ParseScopeIdentifier = types.ParseScopeIdentifier
	ParseProof           = types.ParseProof
	ParseInvestorDID     = types.ParseInvestorDID
)
