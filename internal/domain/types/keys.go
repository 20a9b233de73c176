package types

import "encoding/hex"

const (
	// SeedSize is the length of an Ed25519 seed, the private key as it
	// crosses the public interface.
	SeedSize = 32
	// PublicKeySize is the length of an Ed25519 public key.
	PublicKeySize = 32
	// PrivateKeySize is the length of an expanded private key (seed || public).
	PrivateKeySize = 64
	// SignatureSize is the length of an Ed25519 signature.
	SignatureSize = 64
)

// Seed is the 32-byte secret from which an Ed25519 keypair is derived.
type Seed [SeedSize]byte

// Slice returns the seed as a []byte aliasing the array.
func (s *Seed) Slice() []byte { return s[:] }

// Ed25519Public is an Ed25519 signing public key.
type Ed25519Public [PublicKeySize]byte

// Slice returns the key as a []byte.
func (p Ed25519Public) Slice() []byte { return p[:] }

// Hex returns the key as lowercase hex.
func (p Ed25519Public) Hex() string { return hex.EncodeToString(p[:]) }

// Ed25519Private is an expanded Ed25519 private key: seed followed by public key.
type Ed25519Private [PrivateKeySize]byte

// Slice returns the key as a []byte aliasing the array.
func (k *Ed25519Private) Slice() []byte { return k[:] }

// Signature is a detached Ed25519 signature.
type Signature [SignatureSize]byte

// Slice returns the signature as a []byte.
func (s Signature) Slice() []byte { return s[:] }

// Hex returns the signature as lowercase hex.
func (s Signature) Hex() string { return hex.EncodeToString(s[:]) }
