//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package memzero

import "errors"

var errLockUnsupported = errors.New("memory locking not supported on this platform")

func lockMemory([]byte) error   { return errLockUnsupported }
func unlockMemory([]byte) error { return nil }
