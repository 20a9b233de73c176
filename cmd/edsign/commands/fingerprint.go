package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"edsign/internal/crypto"
	"edsign/internal/domain"
	"edsign/internal/keyio"
)

func fingerprintCmd(opts *rootOptions) *cobra.Command {
	var keyPath, pubArg string
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print key fingerprints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var pub domain.Ed25519Public
			switch {
			case keyPath != "" && pubArg != "":
				return fmt.Errorf("use either --key or --pub, not both")
			case pubArg != "":
				raw, err := readArg(cmd, pubArg)
				if err != nil {
					return err
				}
				if pub, err = keyio.DecodePublicKey(raw); err != nil {
					return fmt.Errorf("decode public key: %w", err)
				}
			default:
				kp, err := loadKeypair(cmd, opts, keyPath)
				if err != nil {
					return err
				}
				pub = kp.Public()
				kp.Destroy()
			}

			sshFP, err := keyio.SSHFingerprint(pub)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", crypto.Fingerprint(pub))
			fmt.Fprintf(cmd.OutOrStdout(), "SSH fingerprint: %s\n", sshFP)
			return nil
		},
	}
	cmd.Flags().StringVarP(&keyPath, "key", "k", "", "private key file (- for stdin)")
	cmd.Flags().StringVar(&pubArg, "pub", "", "public key, or @file")
	return cmd
}
