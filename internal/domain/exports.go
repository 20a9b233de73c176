package domain

import (
	interfaces "edsign/internal/domain/interfaces"
	types "edsign/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Fingerprint    = types.Fingerprint
	Seed           = types.Seed
	Ed25519Public  = types.Ed25519Public
	Ed25519Private = types.Ed25519Private
	Signature      = types.Signature
	Keypair        = types.Keypair
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeyManager      = interfaces.KeyManager
	SignatureEngine = interfaces.SignatureEngine
)

// Sizes of the fixed-length values, in bytes.
const (
	SeedSize       = types.SeedSize
	PublicKeySize  = types.PublicKeySize
	PrivateKeySize = types.PrivateKeySize
	SignatureSize  = types.SignatureSize
)

// NewKeypair is re-exported for KeyManager implementations.
var NewKeypair = types.NewKeypair
