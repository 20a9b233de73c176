package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"edsign/internal/keyio"
)

func signCmd(opts *rootOptions) *cobra.Command {
	var keyPath, message, in, out string
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if keyPath == "-" && in == "-" {
				return fmt.Errorf("--key and --in cannot both read stdin")
			}
			msg, err := readMessage(cmd, message, in)
			if err != nil {
				return err
			}
			kp, err := loadKeypair(cmd, opts, keyPath)
			if err != nil {
				return err
			}
			defer kp.Destroy()

			sig, err := opts.wire.Signer.SignWith(kp, msg)
			if err != nil {
				return err
			}
			s, err := keyio.Encode(sig.Slice(), opts.wire.Encoding)
			if err != nil {
				return err
			}
			if out != "" {
				return keyio.WriteFile(out, []byte(s+"\n"), 0o644, true)
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().StringVarP(&keyPath, "key", "k", "", "private key file (- for stdin)")
	cmd.Flags().StringVarP(&message, "message", "m", "", "message to sign")
	cmd.Flags().StringVarP(&in, "in", "i", "", "file to sign (- for stdin)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the signature to FILE")
	return cmd
}
