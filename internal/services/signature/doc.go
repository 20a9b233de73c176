// Package signature implements the SignatureEngine.
//
// Sign takes the 32-byte seed form of a private key and is deterministic:
// the same message and key always give the same 64-byte signature.
//
// Verify is total over arbitrary byte input. It reports false for any
// signature or key that is the wrong size or does not decode; it returns an
// error only when the key or signature is missing altogether.
package signature
