// Package memzero wipes and pins secret byte buffers.
package memzero

import (
	"crypto/subtle"
	"runtime"
	"sync"
)

// Zero overwrites b with zeros in a constant-time friendly way.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
	runtime.KeepAlive(&b)
}

// Buffer is a fixed-size secret buffer. When locking is requested and the
// platform supports it, the backing memory is excluded from swap until
// Destroy is called.
type Buffer struct {
	mu     sync.Mutex
	b      []byte
	locked bool
	done   bool
}

// NewBuffer allocates n bytes. Locking is best-effort: if mlock is refused
// (for example by RLIMIT_MEMLOCK) the buffer is still usable, only unpinned.
func NewBuffer(n int, lock bool) *Buffer {
	buf := &Buffer{b: make([]byte, n)}
	if lock && n > 0 {
		buf.locked = lockMemory(buf.b) == nil
	}
	return buf
}

// Bytes returns the buffer contents in place.
func (b *Buffer) Bytes() []byte { return b.b }

// Locked reports whether the buffer is currently pinned.
func (b *Buffer) Locked() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.locked
}

// Destroy zeroes the buffer and releases any lock. It is safe to call more
// than once.
func (b *Buffer) Destroy() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.done {
		return
	}
	Zero(b.b)
	if b.locked {
		_ = unlockMemory(b.b)
		b.locked = false
	}
	b.done = true
}
