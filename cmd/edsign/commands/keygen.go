package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"edsign/internal/keyio"
	"edsign/internal/util/memzero"
)

func keygenCmd(opts *rootOptions) *cobra.Command {
	var (
		out     string
		format  string
		comment string
		force   bool
	)
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a new Ed25519 keypair",
		Long: "Generate a new Ed25519 keypair from the system CSPRNG.\n\n" +
			"With --out the private key is written to FILE (mode 0600) and the\n" +
			"public key to FILE.pub; otherwise both are printed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := opts.wire
			if format == "" {
				format = string(w.Encoding)
			}
			enc, err := keyio.ParseEncoding(format, keyio.Hex, keyio.Base64, keyio.OpenSSH)
			if err != nil {
				return err
			}

			kp, err := w.Keys.Generate()
			if err != nil {
				return err
			}
			defer kp.Destroy()

			var private, public []byte
			kp.WithSeed(func(seed []byte) {
				if enc == keyio.OpenSSH {
					private, err = keyio.MarshalOpenSSH(seed, comment)
					return
				}
				var s string
				s, err = keyio.Encode(seed, enc)
				private = []byte(s + "\n")
			})
			if err != nil {
				return err
			}
			defer memzero.Zero(private)

			if enc == keyio.OpenSSH {
				line, err := keyio.AuthorizedKey(kp.Public())
				if err != nil {
					return err
				}
				if comment != "" {
					line += " " + comment
				}
				public = []byte(line + "\n")
			} else {
				s, _ := keyio.Encode(kp.PublicKey(), enc)
				public = []byte(s + "\n")
			}

			stdout := cmd.OutOrStdout()
			fmt.Fprintf(stdout, "Public key: %s", public)
			fmt.Fprintf(stdout, "Fingerprint: %s\n", w.Keys.Fingerprint(kp))

			if out == "" {
				fmt.Fprintf(stdout, "Private key: %s", private)
				return nil
			}
			if err := keyio.WriteFile(out, private, 0o600, force); err != nil {
				return err
			}
			if err := keyio.WriteFile(out+".pub", public, 0o644, force); err != nil {
				_ = os.Remove(out)
				return err
			}
			w.Log.WithField("path", out).Info("wrote keypair")
			fmt.Fprintf(stdout, "Private key written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the private key to FILE and the public key to FILE.pub")
	cmd.Flags().StringVar(&format, "format", "", "hex, base64 or openssh")
	cmd.Flags().StringVar(&comment, "comment", "", "comment for openssh output")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")
	return cmd
}
