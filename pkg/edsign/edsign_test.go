package edsign_test

import (
	"errors"
	"testing"

	"edsign/pkg/edsign"
)

func TestSignMessageRejectsBadKeyLengths(t *testing.T) {
	for _, n := range []int{31, 33} {
		if _, err := edsign.SignMessage([]byte("m"), make([]byte, n)); !errors.Is(err, edsign.ErrInvalidKeyLength) {
			t.Fatalf("len %d: want ErrInvalidKeyLength, got %v", n, err)
		}
	}
}

func TestVerifySignatureNeverPanics(t *testing.T) {
	kp, err := edsign.GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair: %v", err)
	}
	defer kp.Destroy()

	sig, err := edsign.SignMessage([]byte("m"), kp.PrivateKey())
	if err != nil {
		t.Fatalf("SignMessage: %v", err)
	}
	if len(sig) != edsign.SignatureSize {
		t.Fatalf("want %d-byte signature, got %d", edsign.SignatureSize, len(sig))
	}

	ok, err := edsign.VerifySignature([]byte("m"), sig[:63], kp.PublicKey())
	if ok || err != nil {
		t.Fatalf("63-byte signature: ok=%v err=%v", ok, err)
	}
	if _, err := edsign.VerifySignature([]byte("m"), sig, nil); !errors.Is(err, edsign.ErrInvalidKeyLength) {
		t.Fatalf("empty key: want ErrInvalidKeyLength, got %v", err)
	}
	if _, err := edsign.VerifySignature([]byte("m"), nil, kp.PublicKey()); !errors.Is(err, edsign.ErrInvalidSignatureLength) {
		t.Fatalf("empty signature: want ErrInvalidSignatureLength, got %v", err)
	}
}
