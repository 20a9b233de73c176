// Package crypto exposes the minimal primitives used by edsign.
//
// Contents
//
//   - Seed sampling from a caller-supplied random source (ReadSeed)
//   - Ed25519 derivation, signing and verification over fixed-size arrays
//     (ExpandSeed, DerivePublic, SignEd25519, VerifyEd25519)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//   - Lowercase hex and base64 helpers (Hex, B64)
//
// # Notes
//
// Private keys enter as 32-byte seeds. The 64-byte expanded form that
// crypto/ed25519 needs is rebuilt per call in a scratch array and wiped
// before returning, so no long-lived copy of it exists.
package crypto
