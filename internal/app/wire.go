package app

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"edsign/internal/domain"
	"edsign/internal/keyio"
	"edsign/internal/metrics"
	"edsign/internal/services/keys"
	"edsign/internal/services/signature"
)

// Wire bundles the logger, metrics and services for the CLI.
type Wire struct {
	Config   Config
	Encoding keyio.Encoding
	Log      *logrus.Logger
	Metrics  *metrics.Recorder
	Keys     *keys.Service
	Signer   *signature.Service
}

// NewWire constructs the dependency graph from cfg. Logs go to logOut, or
// stderr when logOut is nil.
func NewWire(cfg Config, logOut io.Writer) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	enc, _ := keyio.ParseEncoding(cfg.Encoding, keyio.Hex, keyio.Base64)
	level, _ := logrus.ParseLevel(cfg.LogLevel)

	if logOut == nil {
		logOut = os.Stderr
	}
	log := logrus.New()
	log.SetOutput(logOut)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	rec := metrics.New()

	keySvc := keys.New(
		keys.WithLogger(log.WithField("component", "keys")),
		keys.WithMetrics(rec),
		keys.WithLockedMemory(cfg.LockMemory),
	)
	sigSvc := signature.New(
		signature.WithLogger(log.WithField("component", "signature")),
		signature.WithMetrics(rec),
	)

	return &Wire{
		Config:   cfg,
		Encoding: enc,
		Log:      log,
		Metrics:  rec,
		Keys:     keySvc,
		Signer:   sigSvc,
	}, nil
}

// Close flushes the metrics textfile, if configured.
func (w *Wire) Close() error {
	if w.Config.MetricsTextfile == "" {
		return nil
	}
	return w.Metrics.WriteTextfile(w.Config.MetricsTextfile)
}

// Compile-time assertions that the wired services satisfy the domain contracts.
var (
	_ domain.KeyManager      = (*keys.Service)(nil)
	_ domain.SignatureEngine = (*signature.Service)(nil)
)
