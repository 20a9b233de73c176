package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"edsign/internal/keyio"
)

func pubkeyCmd(opts *rootOptions) *cobra.Command {
	var (
		keyPath string
		format  string
	)
	cmd := &cobra.Command{
		Use:   "pubkey",
		Short: "Print the public key for a private key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = string(opts.wire.Encoding)
			}
			enc, err := keyio.ParseEncoding(format, keyio.Hex, keyio.Base64, keyio.SSH)
			if err != nil {
				return err
			}
			kp, err := loadKeypair(cmd, opts, keyPath)
			if err != nil {
				return err
			}
			defer kp.Destroy()

			var s string
			if enc == keyio.SSH {
				s, err = keyio.AuthorizedKey(kp.Public())
			} else {
				s, err = keyio.Encode(kp.PublicKey(), enc)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().StringVarP(&keyPath, "key", "k", "", "private key file (- for stdin)")
	cmd.Flags().StringVar(&format, "format", "", "hex, base64 or ssh")
	return cmd
}
