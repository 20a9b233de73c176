package memzero

import (
	"bytes"
	"testing"
)

func TestZero(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	Zero(b)
	if !bytes.Equal(b, make([]byte, 4)) {
		t.Fatalf("want zeroed buffer, got %x", b)
	}
	Zero(nil)
}

func TestBufferDestroy(t *testing.T) {
	for _, lock := range []bool{false, true} {
		buf := NewBuffer(32, lock)
		copy(buf.Bytes(), bytes.Repeat([]byte{0xAA}, 32))

		buf.Destroy()
		if !bytes.Equal(buf.Bytes(), make([]byte, 32)) {
			t.Fatalf("lock=%v: buffer not wiped: %x", lock, buf.Bytes())
		}
		if buf.Locked() {
			t.Fatalf("lock=%v: buffer still locked after Destroy", lock)
		}
		// Second call is a no-op.
		buf.Destroy()
	}
}

func TestBufferUnlockedWhenNotRequested(t *testing.T) {
	buf := NewBuffer(16, false)
	defer buf.Destroy()
	if buf.Locked() {
		t.Fatal("buffer locked without request")
	}
	if len(buf.Bytes()) != 16 {
		t.Fatalf("want 16 bytes, got %d", len(buf.Bytes()))
	}
}
