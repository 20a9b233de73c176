package types

import (
	"encoding/hex"
	"runtime"

	"edsign/internal/util/memzero"
)

// Keypair pairs an Ed25519 seed with the public key derived from it.
//
// The seed lives in its own buffer, locked in memory where the platform
// allows it, and is wiped by Destroy or when the Keypair is collected.
// Keypairs are built by a KeyManager; the public half must be the point
// derived from the seed.
type Keypair struct {
	public Ed25519Public
	secret *memzero.Buffer
}

// NewKeypair copies seed into a fresh secret buffer and pairs it with public.
// The caller remains responsible for wiping seed.
func NewKeypair(seed *Seed, public Ed25519Public, lock bool) *Keypair {
	buf := memzero.NewBuffer(SeedSize, lock)
	copy(buf.Bytes(), seed[:])
	kp := &Keypair{public: public, secret: buf}
	runtime.AddCleanup(kp, func(b *memzero.Buffer) { b.Destroy() }, buf)
	return kp
}

// Public returns the public key as a fixed-size array.
func (k *Keypair) Public() Ed25519Public { return k.public }

// PublicKey returns a copy of the 32-byte public key.
func (k *Keypair) PublicKey() []byte {
	out := make([]byte, PublicKeySize)
	copy(out, k.public[:])
	return out
}

// PrivateKey returns a copy of the 32-byte seed. The caller owns the copy
// and should wipe it when done.
func (k *Keypair) PrivateKey() []byte {
	out := make([]byte, SeedSize)
	copy(out, k.secret.Bytes())
	return out
}

// PublicKeyHex returns the public key as lowercase hex.
func (k *Keypair) PublicKeyHex() string { return k.public.Hex() }

// PrivateKeyHex returns the seed as lowercase hex.
func (k *Keypair) PrivateKeyHex() string { return hex.EncodeToString(k.secret.Bytes()) }

// WithSeed calls fn with the seed in place, without copying it out of the
// secret buffer. fn must not retain the slice.
func (k *Keypair) WithSeed(fn func(seed []byte)) { fn(k.secret.Bytes()) }

// Locked reports whether the seed buffer is pinned in RAM.
func (k *Keypair) Locked() bool { return k.secret.Locked() }

// Destroy wipes the seed. The Keypair must not be used afterwards.
func (k *Keypair) Destroy() { k.secret.Destroy() }
