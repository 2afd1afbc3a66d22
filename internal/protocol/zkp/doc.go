// Package zkp proves and verifies that a CDD identifier and a scope
// identifier hide the same private identity.
//
// # Protocol
//
// Statement: CDD = u·G_id + k·G_blind and SCOPE = u·S_base for secret (u, k).
//
// Prover:
//  1. Draw 64 fresh bytes and hash them with the statement and the witness
//     into nonces r_u, r_k (hedged nonces).
//  2. A = r_u·G_id + r_k·G_blind, B = r_u·S_base.
//  3. c = Merlin transcript challenge over (CDD, SCOPE, S_base, A, B).
//  4. z_u = r_u + c·u, z_k = r_k + c·k.
//
// The proof is S_base || c || z_u || z_k. The verifier recomputes
// A = z_u·G_id + z_k·G_blind − c·CDD and B = z_u·S_base − c·SCOPE and accepts
// iff the transcript reproduces c.
//
// # Errors
//
// Proving failures wrap domain.ErrProofGeneration and are never retried
// internally: a failing or repeating randomness source aborts the call.
// Verification failures wrap domain.ErrInvalidProof.
//
// # Scope
//
// The verifier takes the scope label and derives S_base itself. The base
// carried in the proof must equal it: with a base of its own choosing, a
// prover holding (u, k) could pair its CDD identifier with any scope
// identifier P by using u⁻¹·P.
package zkp
