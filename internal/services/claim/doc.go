// Package claim issues, imports and loads CDD claims.
//
// It enforces passphrase policy, draws fresh investor unique IDs, persists
// claims via the domain.ClaimStore and reports the CDD identifier each claim
// commits to.
package claim
