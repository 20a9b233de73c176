package domain

// SeedFromBytes copies b into a Seed. The caller keeps ownership of b.
func SeedFromBytes(b []byte) (Seed, error) {
	var out Seed
	if len(b) != SeedSize {
		return out, &KeyLengthError{Kind: "private key", Want: SeedSize, Got: len(b)}
	}
	copy(out[:], b)
	return out, nil
}

// PublicFromBytes copies b into an Ed25519Public.
func PublicFromBytes(b []byte) (Ed25519Public, error) {
	var out Ed25519Public
	if len(b) != PublicKeySize {
		return out, &KeyLengthError{Kind: "public key", Want: PublicKeySize, Got: len(b)}
	}
	copy(out[:], b)
	return out, nil
}

// SignatureFromBytes copies b into a Signature.
func SignatureFromBytes(b []byte) (Signature, error) {
	var out Signature
	if len(b) != SignatureSize {
		return out, &SignatureLengthError{Got: len(b)}
	}
	copy(out[:], b)
	return out, nil
}
