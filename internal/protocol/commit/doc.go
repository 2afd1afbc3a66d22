// Package commit derives the two deterministic identifiers of a CDD claim.
//
// # Identifiers
//
// For a claim with subject DID d and private identity uid:
//
//	u   = H("cdd/identity", uid)
//	k   = H("cdd/blinding", d, uid)
//	CDD = u·G_id + k·G_blind
//
// and for a scope label s:
//
//	S_base = HashToPoint("scope/base", s)
//	SCOPE  = u·S_base
//
// CDD is a hiding Pedersen commitment: without k it reveals nothing about u.
// SCOPE depends only on uid and s, so every claim of one investor yields the
// same scope identifier while two scopes yield unrelated ones.
//
// Both derivations are pure functions of their inputs and never consume
// randomness; the randomized proof lives in package zkp.
package commit
