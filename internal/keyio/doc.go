// Package keyio decodes and encodes key material for the command line.
//
// Private keys are accepted as a raw 32-byte seed, a raw 64-byte expanded
// key, hex or base64 of either (optionally prefixed with "hex:" or
// "base64:"), or an unencrypted OpenSSH private key. Public keys are
// accepted as hex, base64 or an "ssh-ed25519" authorized_keys line.
//
// Everything decodes down to the fixed-size domain types; 64-byte inputs
// are only accepted when their public half matches the seed.
package keyio
