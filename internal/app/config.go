package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"edsign/internal/keyio"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Encoding        string `yaml:"encoding"`         // hex or base64 for keys and signatures
	LogLevel        string `yaml:"log_level"`        // logrus level name
	LockMemory      bool   `yaml:"lock_memory"`      // mlock seed buffers
	MetricsTextfile string `yaml:"metrics_textfile"` // optional Prometheus textfile path
}

// DefaultConfig is used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Encoding:   string(keyio.Hex),
		LogLevel:   "warning",
		LockMemory: true,
	}
}

// LoadConfig reads a YAML config file, expanding ${VAR} references, on top
// of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	// #nosec G304 -- path is operator-provided config path.
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	expanded := os.ExpandEnv(string(raw))
	expanded = strings.ReplaceAll(expanded, "\r\n", "\n")

	cfg := DefaultConfig()
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Validate checks field values.
func (c Config) Validate() error {
	if _, err := keyio.ParseEncoding(c.Encoding, keyio.Hex, keyio.Base64); err != nil {
		return fmt.Errorf("encoding: %w", err)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}
