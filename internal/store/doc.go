// Package store provides file-based persistence for claims and proofs.
//
// Claims hold a private identity and are always encrypted at rest with a
// passphrase-derived key (scrypt + ChaCha20-Poly1305). Proof records hold
// only public identifiers and are written as plain JSON with hex fields.
// All writes go through a temp file and an atomic rename, and all stores
// are concurrency-safe via internal locking.
//
// The package includes:
//   - Encrypted claims (ClaimFileStore)
//   - Proof records (ProofFileStore)
//   - Loaders and writers for externally exchanged claim, scope and proof
//     files (ReadClaimFile, ReadScopeFile, ReadProofRecord, WriteProofRecord)
package store
