// Package edsign is the stable, language-neutral surface of the signing core.
//
// Every function takes and returns plain byte slices so that foreign-function
// layers can marshal them as arrays of unsigned 8-bit values:
//
//	GenerateKeypair()                                 -> Keypair
//	KeypairFromPrivateKey(private_key)                -> Keypair
//	SignMessage(message, private_key)                 -> 64-byte signature
//	VerifySignature(message, signature, public_key)   -> bool
//	Keypair.PublicKey / PrivateKey / PublicKeyHex / PrivateKeyHex
//
// Private keys are 32-byte seeds. Hex strings are lowercase with no prefix.
// All functions are safe for concurrent use.
package edsign

import (
	"edsign/internal/domain"
	"edsign/internal/services/keys"
	"edsign/internal/services/signature"
)

// Sizes of the values crossing the interface, in bytes.
const (
	PrivateKeySize = domain.SeedSize
	PublicKeySize  = domain.PublicKeySize
	SignatureSize  = domain.SignatureSize
)

// Errors returned by the package. Use errors.Is to test for them.
var (
	ErrInvalidKeyLength       = domain.ErrInvalidKeyLength
	ErrInvalidSignatureLength = domain.ErrInvalidSignatureLength
	ErrRandomnessFailure      = domain.ErrRandomnessFailure
)

// Keypair holds an Ed25519 seed and its public key. Call Destroy to wipe the
// seed once the keypair is no longer needed.
type Keypair = domain.Keypair

var (
	keyManager      = keys.New()
	signatureEngine = signature.New()
)

// GenerateKeypair returns a keypair from a fresh seed drawn from the
// operating system's CSPRNG.
func GenerateKeypair() (*Keypair, error) {
	return keyManager.Generate()
}

// KeypairFromPrivateKey rebuilds the keypair for a 32-byte private key.
func KeypairFromPrivateKey(privateKey []byte) (*Keypair, error) {
	return keyManager.FromPrivateKey(privateKey)
}

// SignMessage signs message with a 32-byte private key and returns the
// 64-byte signature.
func SignMessage(message, privateKey []byte) ([]byte, error) {
	sig, err := signatureEngine.Sign(message, privateKey)
	if err != nil {
		return nil, err
	}
	return sig.Slice(), nil
}

// VerifySignature reports whether signature is valid for message under
// publicKey. Malformed signatures and keys give false; only an empty key or
// signature gives an error.
func VerifySignature(message, signature, publicKey []byte) (bool, error) {
	return signatureEngine.Verify(message, signature, publicKey)
}
