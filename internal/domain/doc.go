// Package domain defines the core values and contracts of edsign.
//
// It holds plain fixed-size types (seeds, keys, signatures), the Keypair
// value, the error taxonomy shared by every layer, and the KeyManager and
// SignatureEngine interfaces. It contains no cryptography.
package domain
