// Package proof creates and verifies identity proofs for stored claims.
//
// Proving loads a claim from the domain.ClaimStore, derives its CDD and
// scope identifiers, proves they share one identity and saves the record
// via the domain.ProofStore. Batch runs fan out over a bounded worker pool
// and report one outcome per claim or file, continuing past individual
// failures.
package proof
