package crypto

import "edsign/internal/util/memzero"

// Wipe zeroes the provided buffer. This is best-effort; Go may have copied
// the data elsewhere before the call.
func Wipe(b []byte) { memzero.Zero(b) }
