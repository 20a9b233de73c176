// Package keys implements the KeyManager: it generates Ed25519 keypairs from
// a secure random source and rebuilds keypairs from an existing 32-byte seed.
//
// Seeds are copied straight into a wipeable Keypair buffer; every
// intermediate copy is zeroed before the call returns.
package keys
