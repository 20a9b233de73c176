package keyio

import (
	"crypto/ed25519"
	"encoding/pem"
	"fmt"

	"golang.org/x/crypto/ssh"

	"edsign/internal/crypto"
	"edsign/internal/domain"
	"edsign/internal/util/memzero"
)

// Encoding names a text form for keys and signatures.
type Encoding string

const (
	Hex     Encoding = "hex"
	Base64  Encoding = "base64"
	SSH     Encoding = "ssh"
	OpenSSH Encoding = "openssh"
)

// ParseEncoding validates s against the encodings allowed for a given use.
func ParseEncoding(s string, allowed ...Encoding) (Encoding, error) {
	for _, e := range allowed {
		if Encoding(s) == e {
			return e, nil
		}
	}
	return "", fmt.Errorf("unsupported encoding %q (want one of %v)", s, allowed)
}

// Encode returns b as lowercase hex or standard base64.
func Encode(b []byte, enc Encoding) (string, error) {
	switch enc {
	case Hex:
		return crypto.Hex(b), nil
	case Base64:
		return crypto.B64(b), nil
	default:
		return "", fmt.Errorf("encoding %q does not apply to raw bytes", enc)
	}
}

// AuthorizedKey returns pub as a single authorized_keys line, without the
// trailing newline.
func AuthorizedKey(pub domain.Ed25519Public) (string, error) {
	key, err := ssh.NewPublicKey(ed25519.PublicKey(pub.Slice()))
	if err != nil {
		return "", err
	}
	line := ssh.MarshalAuthorizedKey(key)
	return string(line[:len(line)-1]), nil
}

// SSHFingerprint returns the OpenSSH SHA256 fingerprint of pub.
func SSHFingerprint(pub domain.Ed25519Public) (string, error) {
	key, err := ssh.NewPublicKey(ed25519.PublicKey(pub.Slice()))
	if err != nil {
		return "", err
	}
	return ssh.FingerprintSHA256(key), nil
}

// MarshalOpenSSH returns seed as an unencrypted OpenSSH private key PEM.
func MarshalOpenSSH(seed []byte, comment string) ([]byte, error) {
	if len(seed) != domain.SeedSize {
		return nil, &domain.KeyLengthError{Kind: "private key", Want: domain.SeedSize, Got: len(seed)}
	}
	sk := ed25519.NewKeyFromSeed(seed)
	defer memzero.Zero(sk)

	block, err := ssh.MarshalPrivateKey(sk, comment)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(block.Bytes)
	return pem.EncodeToMemory(block), nil
}
