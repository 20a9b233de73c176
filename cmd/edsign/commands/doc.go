// Package commands defines the edsign CLI and wires dependencies for subcommands.
//
// Commands
//
//   - keygen       Generate a keypair and print or write it
//   - pubkey       Print the public key for a private key file
//   - fingerprint  Print short and OpenSSH fingerprints of a key
//   - sign         Sign a message with a private key
//   - verify       Verify a signature; exits non-zero when invalid
//
// # Implementation
//
// The root command loads the optional YAML config and builds the dependency
// graph (logger, metrics, key and signature services) before any subcommand
// runs. Values given as "@path" are read from files, "-" reads stdin.
package commands
