package redcap

import (
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/redcap-tools/redcap-go/internal/types"
)

// envConfig is the environment surface for NewFromEnv. All variables are
// prefixed REDCAP_ (REDCAP_URL, REDCAP_TOKEN, ...).
type envConfig struct {
	URL         string        `envconfig:"URL" required:"true"`
	Token       string        `envconfig:"TOKEN" required:"true"`
	VerifySSL   bool          `envconfig:"VERIFY_SSL" default:"true"`
	CABundle    string        `envconfig:"CA_BUNDLE"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	UserAgent   string        `envconfig:"USER_AGENT"`
}

// NewFromEnv constructs a Project from REDCAP_* environment variables.
// Explicit options are applied after the environment-derived ones and
// therefore win.
func NewFromEnv(opts ...Option) (*Project, error) {
	var cfg envConfig
	if err := envconfig.Process("redcap", &cfg); err != nil {
		return nil, types.Validationf("reading environment: %v", err)
	}

	envOpts := []Option{WithHTTPTimeout(cfg.HTTPTimeout)}
	if !cfg.VerifySSL {
		envOpts = append(envOpts, WithInsecureSkipVerify())
	}
	if cfg.CABundle != "" {
		pem, err := os.ReadFile(cfg.CABundle)
		if err != nil {
			return nil, types.Validationf("reading ca bundle %s: %v", cfg.CABundle, err)
		}
		envOpts = append(envOpts, WithCABundle(pem))
	}
	if cfg.UserAgent != "" {
		envOpts = append(envOpts, WithUserAgent(cfg.UserAgent))
	}

	return New(cfg.URL, cfg.Token, append(envOpts, opts...)...)
}
