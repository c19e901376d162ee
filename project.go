package redcap

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/redcap-tools/redcap-go/internal/rcrequest"
	"github.com/redcap-tools/redcap-go/internal/types"
)

const defaultUserAgent = "redcap-go/1.0"

// Project is a handle on one REDCap project. All methods are safe for
// concurrent use: each call is stateless apart from the lazily populated
// snapshot, which is immutable once built.
type Project struct {
	url       string
	token     string
	userAgent string
	http      *http.Client

	mu   sync.Mutex
	snap *snapshot
}

// New constructs a Project for the given API endpoint URL and project
// token. The URL must end with /api/ and the token must be a 32-character
// project API token. Additional behavior is configured via options.
func New(url, token string, opts ...Option) (*Project, error) {
	if err := types.ValidateProjectURL(url); err != nil {
		return nil, err
	}
	if err := types.ValidateToken(token); err != nil {
		return nil, err
	}

	p := &Project{
		url:       url,
		token:     token,
		userAgent: defaultUserAgent,
		http: &http.Client{
			Timeout:   30 * time.Second,
			Transport: cleanhttp.DefaultPooledTransport(),
		},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	p.wrapTransportWithUserAgent()

	return p, nil
}

// wrapTransportWithUserAgent wraps the HTTP client's transport so every
// request carries the client's User-Agent. Auth is not header-based: the
// token travels as a form parameter on each payload.
func (p *Project) wrapTransportWithUserAgent() {
	base := p.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	p.http.Transport = &userAgentTransport{base: base, agent: p.userAgent}
}

// userAgentTransport wraps an http.RoundTripper to stamp the User-Agent
// header on all requests.
type userAgentTransport struct {
	base  http.RoundTripper
	agent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	cloned := req.Clone(req.Context())
	cloned.Header.Set("User-Agent", t.agent)
	return t.base.RoundTrip(cloned)
}

// URL reports the configured API endpoint.
func (p *Project) URL() string { return p.url }

// --------------------------------------------------------------------
// Call plumbing shared by all resource methods
// --------------------------------------------------------------------

// payload seeds a request payload with the project token and content kind.
func (p *Project) payload(content string) *rcrequest.Payload {
	return rcrequest.NewPayload(p.token, content)
}

// call performs one form-encoded POST and records request metrics.
func (p *Project) call(ctx context.Context, pl *rcrequest.Payload, cfg rcrequest.Config) (*rcrequest.Response, error) {
	requestsTotal.WithLabelValues(cfg.Content, actionLabel(cfg)).Inc()
	resp, err := rcrequest.Execute(ctx, p.http, p.url, pl, cfg)
	if err != nil {
		requestErrorsTotal.WithLabelValues(cfg.Content, errorKind(err)).Inc()
	}
	return resp, err
}

// callMultipart performs one multipart POST (file uploads).
func (p *Project) callMultipart(ctx context.Context, pl *rcrequest.Payload, filename string, file io.Reader, cfg rcrequest.Config) (*rcrequest.Response, error) {
	requestsTotal.WithLabelValues(cfg.Content, actionLabel(cfg)).Inc()
	resp, err := rcrequest.ExecuteMultipart(ctx, p.http, p.url, pl, filename, file, cfg)
	if err != nil {
		requestErrorsTotal.WithLabelValues(cfg.Content, errorKind(err)).Inc()
	}
	return resp, err
}

// decodeJSON unmarshals a JSON body into v, mapping failures onto the
// decode side of the error taxonomy.
func decodeJSON(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return &rcrequest.DecodeError{Format: "json", Err: err}
	}
	return nil
}

// exportJSON runs a JSON export call and decodes the body into v.
func (p *Project) exportJSON(ctx context.Context, pl *rcrequest.Payload, content string, v any) error {
	pl.Format("json")
	resp, err := p.call(ctx, pl, rcrequest.Config{Content: content, Format: "json"})
	if err != nil {
		return err
	}
	return decodeJSON(resp.Body, v)
}

// exportRaw runs a csv/xml export call and returns the body verbatim.
func (p *Project) exportRaw(ctx context.Context, pl *rcrequest.Payload, content, format string) (string, error) {
	if err := types.ValidateRawFormat(format); err != nil {
		return "", err
	}
	pl.Format(format)
	resp, err := p.call(ctx, pl, rcrequest.Config{Content: content, Format: format})
	if err != nil {
		return "", err
	}
	return string(resp.Body), nil
}

// exportCSV fetches csv text for the dataframe conversion path.
func (p *Project) exportCSV(ctx context.Context, pl *rcrequest.Payload, content string) (string, error) {
	pl.Format("csv")
	resp, err := p.call(ctx, pl, rcrequest.Config{Content: content, Format: "csv"})
	if err != nil {
		return "", err
	}
	return string(resp.Body), nil
}

// importCount runs an import/delete call whose acknowledgment is a bare
// JSON count.
func (p *Project) importCount(ctx context.Context, pl *rcrequest.Payload, content, action string) (int, error) {
	pl.ReturnFormat("json")
	resp, err := p.call(ctx, pl, rcrequest.Config{Content: content, Action: action, Format: "json"})
	if err != nil {
		return 0, err
	}
	var n int
	if err := decodeJSON(resp.Body, &n); err != nil {
		return 0, err
	}
	return n, nil
}

// importJSONData marshals rows compactly into the payload's data field.
func importJSONData(pl *rcrequest.Payload, rows any) error {
	data, err := json.Marshal(rows)
	if err != nil {
		return types.Validationf("encoding import data: %v", err)
	}
	pl.Set("format", "json")
	pl.Set("data", string(data))
	return nil
}
