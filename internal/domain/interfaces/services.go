package interfaces

import (
	domaintypes "edsign/internal/domain/types"
)

// KeyManager creates Ed25519 keypairs, either fresh or from an existing seed.
type KeyManager interface {
	Generate() (*domaintypes.Keypair, error)
	FromPrivateKey(privateKey []byte) (*domaintypes.Keypair, error)
}

// SignatureEngine signs messages and verifies detached signatures.
type SignatureEngine interface {
	Sign(message, privateKey []byte) (domaintypes.Signature, error)
	Verify(message, signature, publicKey []byte) (bool, error)
}
