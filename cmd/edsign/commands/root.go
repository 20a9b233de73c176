package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"edsign/internal/app"
	"edsign/internal/domain"
	"edsign/internal/keyio"
	"edsign/internal/util/memzero"
)

type rootOptions struct {
	configPath      string
	verbose         bool
	encoding        string
	metricsTextfile string

	wire *app.Wire
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the edsign command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "edsign",
		Short:        "Ed25519 key generation, signing and verification",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.DefaultConfig()
			if opts.configPath != "" {
				loaded, err := app.LoadConfig(opts.configPath)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cfg = loaded
			}
			if opts.verbose {
				cfg.LogLevel = "debug"
			}
			if opts.encoding != "" {
				cfg.Encoding = opts.encoding
			}
			if opts.metricsTextfile != "" {
				cfg.MetricsTextfile = opts.metricsTextfile
			}

			w, err := app.NewWire(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			opts.wire = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging to stderr")
	root.PersistentFlags().StringVar(&opts.encoding, "encoding", "", "hex or base64 for keys and signatures (default from config, hex)")
	root.PersistentFlags().StringVar(&opts.metricsTextfile, "metrics-textfile", "", "write Prometheus counters to this file on exit")

	root.AddCommand(
		keygenCmd(opts),
		pubkeyCmd(opts),
		fingerprintCmd(opts),
		signCmd(opts),
		verifyCmd(opts),
	)
	// PersistentPostRunE is skipped when RunE fails, so each subcommand
	// closes the wire itself and failed runs still reach the textfile.
	for _, c := range root.Commands() {
		c.RunE = closingRunE(opts, c.RunE)
	}
	return root
}

func closingRunE(opts *rootOptions, run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if opts.wire == nil {
				return
			}
			if cerr := opts.wire.Close(); err == nil {
				err = cerr
			}
		}()
		return run(cmd, args)
	}
}

// readArg resolves a flag value: "@path" reads a file, "-" reads stdin,
// anything else is taken literally.
func readArg(cmd *cobra.Command, v string) ([]byte, error) {
	switch {
	case v == "-":
		return io.ReadAll(cmd.InOrStdin())
	case strings.HasPrefix(v, "@"):
		return keyio.ReadFile(strings.TrimPrefix(v, "@"))
	default:
		return []byte(v), nil
	}
}

// loadKeypair reads and decodes a private key file into a keypair.
func loadKeypair(cmd *cobra.Command, opts *rootOptions, path string) (*domain.Keypair, error) {
	if path == "" {
		return nil, fmt.Errorf("--key is required")
	}
	var raw []byte
	var err error
	if path == "-" {
		raw, err = io.ReadAll(cmd.InOrStdin())
	} else {
		raw, err = keyio.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(raw)

	seed, err := keyio.DecodePrivateKey(raw)
	defer memzero.Zero(seed.Slice())
	if err != nil {
		return nil, fmt.Errorf("decode private key: %w", err)
	}
	return opts.wire.Keys.FromPrivateKey(seed.Slice())
}

// readMessage returns the message from --message or --in.
func readMessage(cmd *cobra.Command, message, in string) ([]byte, error) {
	switch {
	case message != "" && in != "":
		return nil, fmt.Errorf("use either --message or --in, not both")
	case in == "-":
		return io.ReadAll(cmd.InOrStdin())
	case in != "":
		// #nosec G304 -- path is operator-provided.
		return os.ReadFile(in)
	case cmd.Flags().Changed("message"):
		return []byte(message), nil
	default:
		return nil, fmt.Errorf("--message or --in is required")
	}
}
