package types

// ProofRecord is the persisted output of one proof run. Scope is required:
// a proof only verifies against the label it was made for.
type ProofRecord struct {
	CddID   CddIdentifier   `json:"cdd_id"`
	ScopeID ScopeIdentifier `json:"scope_id"`
	Proof   Proof           `json:"proof"`
	Scope   ScopeContext    `json:"scope"`
}

// ProofOutcome reports one claim of a batch proving run.
type ProofOutcome struct {
	Claim  ClaimName   `json:"claim"`
	Record ProofRecord `json:"record"`
	Path   string      `json:"path,omitempty"`
	Err    error       `json:"-"`
}

// VerificationResult reports one record of a batch verification run.
type VerificationResult struct {
	Source string      `json:"source"`
	Record ProofRecord `json:"record"`
	Err    error       `json:"-"`
}

// OK reports whether the record verified.
func (r VerificationResult) OK() bool { return r.Err == nil }
