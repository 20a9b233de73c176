package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKeyLength is returned when a key or seed is not the expected size.
	ErrInvalidKeyLength = errors.New("invalid key length")
	// ErrInvalidSignatureLength is returned when a signature is absent.
	ErrInvalidSignatureLength = errors.New("invalid signature length")
	// ErrRandomnessFailure is returned when the secure random source fails.
	ErrRandomnessFailure = errors.New("secure random source unavailable")
)

// KeyLengthError describes a key of the wrong size. It matches
// ErrInvalidKeyLength under errors.Is.
type KeyLengthError struct {
	Kind string // "private key", "public key", "seed"
	Want int
	Got  int
}

func (e *KeyLengthError) Error() string {
	return fmt.Sprintf("%s must be exactly %d bytes, got %d", e.Kind, e.Want, e.Got)
}

// Is reports whether target is ErrInvalidKeyLength.
func (e *KeyLengthError) Is(target error) bool { return target == ErrInvalidKeyLength }

// SignatureLengthError describes a signature of the wrong size. It matches
// ErrInvalidSignatureLength under errors.Is.
type SignatureLengthError struct {
	Got int
}

func (e *SignatureLengthError) Error() string {
	return fmt.Sprintf("signature must be exactly %d bytes, got %d", SignatureSize, e.Got)
}

// Is reports whether target is ErrInvalidSignatureLength.
func (e *SignatureLengthError) Is(target error) bool { return target == ErrInvalidSignatureLength }
