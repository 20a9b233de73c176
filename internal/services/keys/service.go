package keys

import (
	"crypto/rand"
	"io"

	"github.com/sirupsen/logrus"

	"edsign/internal/crypto"
	"edsign/internal/domain"
	"edsign/internal/metrics"
	"edsign/internal/util/memzero"
)

// Service creates keypairs.
type Service struct {
	random  io.Reader
	log     logrus.FieldLogger
	metrics *metrics.Recorder
	lock    bool
}

// Option configures a Service.
type Option func(*Service)

// WithRandom replaces crypto/rand.Reader as the seed source.
func WithRandom(r io.Reader) Option { return func(s *Service) { s.random = r } }

// WithLogger sets the logger used for debug events.
func WithLogger(l logrus.FieldLogger) Option { return func(s *Service) { s.log = l } }

// WithMetrics sets the recorder for operation counters.
func WithMetrics(m *metrics.Recorder) Option { return func(s *Service) { s.metrics = m } }

// WithLockedMemory asks for keypair seeds to be mlocked where supported.
func WithLockedMemory(lock bool) Option { return func(s *Service) { s.lock = lock } }

// New returns a key service. Without options it reads crypto/rand.Reader,
// discards logs and locks seed memory.
func New(opts ...Option) *Service {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	s := &Service{random: rand.Reader, log: discard, lock: true}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate samples a fresh seed and derives its keypair.
func (s *Service) Generate() (*domain.Keypair, error) {
	var seed domain.Seed
	defer memzero.Zero(seed.Slice())

	if err := crypto.ReadSeed(s.random, &seed); err != nil {
		s.metrics.Failed(metrics.OpGenerate)
		s.log.WithError(err).Error("seed generation failed")
		return nil, err
	}
	kp, err := s.build(&seed)
	if err != nil {
		s.metrics.Failed(metrics.OpGenerate)
		return nil, err
	}
	s.metrics.Succeeded(metrics.OpGenerate)
	s.log.WithFields(logrus.Fields{
		"fingerprint": crypto.Fingerprint(kp.Public()),
		"locked":      kp.Locked(),
	}).Debug("generated keypair")
	return kp, nil
}

// FromPrivateKey rebuilds the keypair for a 32-byte seed. The result is
// fully determined by privateKey.
func (s *Service) FromPrivateKey(privateKey []byte) (*domain.Keypair, error) {
	seed, err := domain.SeedFromBytes(privateKey)
	defer memzero.Zero(seed.Slice())
	if err != nil {
		s.metrics.Failed(metrics.OpImport)
		return nil, err
	}
	kp, err := s.build(&seed)
	if err != nil {
		s.metrics.Failed(metrics.OpImport)
		return nil, err
	}
	s.metrics.Succeeded(metrics.OpImport)
	s.log.WithField("fingerprint", crypto.Fingerprint(kp.Public())).Debug("imported keypair")
	return kp, nil
}

// Fingerprint returns the short display fingerprint of kp's public key.
func (s *Service) Fingerprint(kp *domain.Keypair) domain.Fingerprint {
	return crypto.Fingerprint(kp.Public())
}

func (s *Service) build(seed *domain.Seed) (*domain.Keypair, error) {
	pub, err := crypto.DerivePublic(seed.Slice())
	if err != nil {
		return nil, err
	}
	return domain.NewKeypair(seed, pub, s.lock), nil
}

// Compile-time assertion that Service implements domain.KeyManager.
var _ domain.KeyManager = (*Service)(nil)
