package crypto

import (
	"crypto/ed25519"
	"fmt"
	"io"

	"edsign/internal/domain"
)

// ReadSeed fills seed with bytes from r. A short read or any error from r is
// reported as domain.ErrRandomnessFailure; there is no fallback source.
func ReadSeed(r io.Reader, seed *domain.Seed) error {
	if _, err := io.ReadFull(r, seed[:]); err != nil {
		Wipe(seed[:])
		return fmt.Errorf("%w: %v", domain.ErrRandomnessFailure, err)
	}
	return nil
}

// ExpandSeed writes the expanded private key (seed || public) for seed into out.
func ExpandSeed(seed []byte, out *domain.Ed25519Private) error {
	if len(seed) != domain.SeedSize {
		return &domain.KeyLengthError{Kind: "private key", Want: domain.SeedSize, Got: len(seed)}
	}
	sk := ed25519.NewKeyFromSeed(seed)
	copy(out[:], sk)
	Wipe(sk)
	return nil
}

// DerivePublic returns the public key for seed.
func DerivePublic(seed []byte) (pub domain.Ed25519Public, err error) {
	var sk domain.Ed25519Private
	defer Wipe(sk.Slice())
	if err = ExpandSeed(seed, &sk); err != nil {
		return pub, err
	}
	copy(pub[:], sk[domain.SeedSize:])
	return pub, nil
}

// SignEd25519 signs msg with the key derived from seed.
func SignEd25519(seed, msg []byte) (sig domain.Signature, err error) {
	var sk domain.Ed25519Private
	defer Wipe(sk.Slice())
	if err = ExpandSeed(seed, &sk); err != nil {
		return sig, err
	}
	copy(sig[:], ed25519.Sign(ed25519.PrivateKey(sk.Slice()), msg))
	return sig, nil
}

// VerifyEd25519 verifies sig over msg with pub. Encodings that do not
// decode to a valid point or scalar yield false.
func VerifyEd25519(pub domain.Ed25519Public, msg []byte, sig domain.Signature) bool {
	return ed25519.Verify(ed25519.PublicKey(pub[:]), msg, sig[:])
}
