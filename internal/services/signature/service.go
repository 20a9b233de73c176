package signature

import (
	"io"

	"github.com/sirupsen/logrus"

	"edsign/internal/crypto"
	"edsign/internal/domain"
	"edsign/internal/metrics"
)

// Service signs and verifies messages. It holds no key material.
type Service struct {
	log     logrus.FieldLogger
	metrics *metrics.Recorder
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for debug events.
func WithLogger(l logrus.FieldLogger) Option { return func(s *Service) { s.log = l } }

// WithMetrics sets the recorder for operation counters.
func WithMetrics(m *metrics.Recorder) Option { return func(s *Service) { s.metrics = m } }

// New returns a signature service.
func New(opts ...Option) *Service {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	s := &Service{log: discard}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sign signs message with the 32-byte seed privateKey.
func (s *Service) Sign(message, privateKey []byte) (domain.Signature, error) {
	sig, err := crypto.SignEd25519(privateKey, message)
	if err != nil {
		s.metrics.Failed(metrics.OpSign)
		return domain.Signature{}, err
	}
	s.metrics.Succeeded(metrics.OpSign)
	s.log.WithField("message_len", len(message)).Debug("signed message")
	return sig, nil
}

// SignWith signs message with kp's seed without copying it out of the keypair.
func (s *Service) SignWith(kp *domain.Keypair, message []byte) (sig domain.Signature, err error) {
	kp.WithSeed(func(seed []byte) {
		sig, err = s.Sign(message, seed)
	})
	return sig, err
}

// Verify reports whether signature is a valid signature of message under
// publicKey.
//
// An empty publicKey yields domain.ErrInvalidKeyLength and an empty
// signature yields domain.ErrInvalidSignatureLength. Every other malformed
// input, including wrong lengths, yields false with a nil error.
func (s *Service) Verify(message, signature, publicKey []byte) (bool, error) {
	switch {
	case len(publicKey) == 0:
		s.metrics.Failed(metrics.OpVerify)
		return false, &domain.KeyLengthError{Kind: "public key", Want: domain.PublicKeySize, Got: 0}
	case len(signature) == 0:
		s.metrics.Failed(metrics.OpVerify)
		return false, &domain.SignatureLengthError{Got: 0}
	}

	pub, err := domain.PublicFromBytes(publicKey)
	if err != nil {
		s.log.WithField("public_key_len", len(publicKey)).Debug("rejecting malformed public key")
		s.metrics.Verified(false)
		return false, nil
	}
	sig, err := domain.SignatureFromBytes(signature)
	if err != nil {
		s.log.WithField("signature_len", len(signature)).Debug("rejecting malformed signature")
		s.metrics.Verified(false)
		return false, nil
	}

	ok := crypto.VerifyEd25519(pub, message, sig)
	s.metrics.Verified(ok)
	s.log.WithFields(logrus.Fields{
		"fingerprint": crypto.Fingerprint(pub),
		"valid":       ok,
	}).Debug("verified signature")
	return ok, nil
}

// Compile-time assertion that Service implements domain.SignatureEngine.
var _ domain.SignatureEngine = (*Service)(nil)
