package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"edsign/internal/keyio"
)

// errInvalidSignature makes the process exit non-zero for a bad signature.
var errInvalidSignature = errors.New("signature is invalid")

func stdinUsers(args ...string) int {
	n := 0
	for _, a := range args {
		if a == "-" {
			n++
		}
	}
	return n
}

func verifyCmd(opts *rootOptions) *cobra.Command {
	var pubArg, sigArg, message, in string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pubArg == "" || sigArg == "" {
				return fmt.Errorf("--pub and --sig are required")
			}
			if stdinUsers(pubArg, sigArg, in) > 1 {
				return fmt.Errorf("only one of --pub, --sig and --in can read stdin")
			}
			msg, err := readMessage(cmd, message, in)
			if err != nil {
				return err
			}
			rawPub, err := readArg(cmd, pubArg)
			if err != nil {
				return err
			}
			pub, err := keyio.DecodePublicKey(rawPub)
			if err != nil {
				return fmt.Errorf("decode public key: %w", err)
			}
			rawSig, err := readArg(cmd, sigArg)
			if err != nil {
				return err
			}
			sig, err := keyio.DecodeSignature(rawSig)
			if err != nil {
				return fmt.Errorf("decode signature: %w", err)
			}

			ok, err := opts.wire.Signer.Verify(msg, sig, pub.Slice())
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "invalid")
				return errInvalidSignature
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
	cmd.Flags().StringVar(&pubArg, "pub", "", "public key (hex, base64, ssh-ed25519 line) or @file")
	cmd.Flags().StringVar(&sigArg, "sig", "", "signature (hex or base64) or @file")
	cmd.Flags().StringVarP(&message, "message", "m", "", "signed message")
	cmd.Flags().StringVarP(&in, "in", "i", "", "signed file (- for stdin)")
	return cmd
}
