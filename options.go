package redcap

// This file defines functional options that configure the Project during
// construction. Keeping them in a standalone file makes it easy to
// discover all available knobs at a glance.

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"time"
)

// Option configures a Project during construction in New.
//
// Options are applied before the User-Agent transport wrapper is
// installed, so transport-related options (like debug logging) end up
// underneath it. Options must be deterministic and side-effect free.
type Option func(*Project) error

// WithHTTPTimeout sets the underlying http.Client Timeout.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP
// request. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(p *Project) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		p.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying HTTP client entirely. The caller
// is then responsible for timeouts and TLS configuration.
func WithHTTPClient(c *http.Client) Option {
	return func(p *Project) error {
		if c == nil {
			return fmt.Errorf("http client must not be nil")
		}
		p.http = c
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response
// is dumped to the log when enabled is true. Bodies include the project
// token, so do not enable this in production environments.
func WithDebugLogging(enabled bool) Option {
	return func(p *Project) error {
		if enabled {
			p.http.Transport = &debugTransport{base: p.http.Transport}
		}
		return nil
	}
}

// WithInsecureSkipVerify disables TLS certificate verification. Meant for
// servers with self-signed certificates on closed networks.
func WithInsecureSkipVerify() Option {
	return func(p *Project) error {
		t, err := tlsTransport(p)
		if err != nil {
			return err
		}
		t.TLSClientConfig.InsecureSkipVerify = true
		return nil
	}
}

// WithCABundle trusts exactly the PEM-encoded certificates in bundle
// instead of the system roots.
func WithCABundle(bundle []byte) Option {
	return func(p *Project) error {
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(bundle) {
			return fmt.Errorf("ca bundle contains no valid certificates")
		}
		t, err := tlsTransport(p)
		if err != nil {
			return err
		}
		t.TLSClientConfig.RootCAs = pool
		return nil
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(agent string) Option {
	return func(p *Project) error {
		if agent == "" {
			return fmt.Errorf("user agent must not be empty")
		}
		p.userAgent = agent
		return nil
	}
}

// tlsTransport digs out the *http.Transport so TLS options can be applied,
// creating an empty tls.Config when needed.
func tlsTransport(p *Project) (*http.Transport, error) {
	t, ok := p.http.Transport.(*http.Transport)
	if !ok {
		return nil, fmt.Errorf("TLS options require an *http.Transport (got %T)", p.http.Transport)
	}
	if t.TLSClientConfig == nil {
		t.TLSClientConfig = &tls.Config{}
	}
	return t, nil
}
