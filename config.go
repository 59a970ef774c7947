package signedlink

import (
	"errors"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds signer configuration loadable from the environment.
type Config struct {
	Secret  string        `env:"SIGNED_LINK_SECRET" envDefault:""`
	BaseURL string        `env:"SIGNED_LINK_BASE_URL" envDefault:"/download"`
	TTL     time.Duration `env:"SIGNED_LINK_TTL" envDefault:"60m"`
}

// DefaultConfig returns the default signer configuration.
func DefaultConfig() Config {
	return Config{
		Secret:  "",
		BaseURL: DefaultBaseURL,
		TTL:     DefaultTTL,
	}
}

// NewFromConfig creates a Signer from the provided Config.
// Only non-zero values from the config are applied; explicit options take
// precedence over config values.
func NewFromConfig(cfg Config, opts ...Option) (*Signer, error) {
	configOpts := make([]Option, 0, 2)

	if cfg.BaseURL != "" {
		configOpts = append(configOpts, WithBaseURL(cfg.BaseURL))
	}
	if cfg.TTL > 0 {
		configOpts = append(configOpts, WithTTL(cfg.TTL))
	}

	// Append any additional options provided
	configOpts = append(configOpts, opts...)

	return NewFromString(cfg.Secret, configOpts...)
}

var defaultEnvLoaded sync.Once

// LoadConfig populates a Config from environment variables, loading the
// default .env file first if one exists.
//
// The core Issue/Verify path reads no environment itself; this helper is for
// application wiring only.
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}

	return cfg, nil
}
