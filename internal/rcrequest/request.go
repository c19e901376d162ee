// Package rcrequest implements the low-level request/response layer of the
// REDCap API: one form-encoded HTTP POST per logical operation against a
// single endpoint URL, with per-call format negotiation and a uniform
// translation of server-signalled failures.
package rcrequest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
)

// Doer is the minimal HTTP client surface the transport needs.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config declares how the response body for one call is interpreted.
type Config struct {
	// Content and Action identify the operation for diagnostics and metrics.
	Content string
	Action  string

	// Format is the wire format the payload requested (json, csv, xml).
	// Empty for file downloads, which return raw bytes.
	Format string

	// ReturnBytes skips all text decoding and hands back the raw body,
	// together with any header-derived filename. Used for file exports.
	ReturnBytes bool

	// ExpectEmptyBody marks calls that legitimately answer 2xx with no
	// body at all (file import/delete); an empty body is then success,
	// not a decode failure.
	ExpectEmptyBody bool
}

// Response is the decoded envelope for one API call.
type Response struct {
	StatusCode  int
	Body        []byte
	ContentType string

	// Filename is populated for file downloads, parsed from the
	// Content-Disposition header or the name= parameter REDCap embeds
	// in Content-Type.
	Filename string
}

// Execute performs one synchronous POST with a form-encoded body and maps
// the response by cfg. A single attempt is made: failures are surfaced,
// never retried.
func Execute(ctx context.Context, doer Doer, apiURL string, payload *Payload, cfg Config) (*Response, error) {
	body := strings.NewReader(payload.Values().Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return roundTrip(doer, req, cfg)
}

// ExecuteMultipart performs one POST with a multipart body: every payload
// key becomes an ordinary form field and file is attached as the single
// "file" part. Used for uploads (record files, repository documents).
func ExecuteMultipart(ctx context.Context, doer Doer, apiURL string, payload *Payload, filename string, file io.Reader, cfg Config) (*Response, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, vals := range payload.Values() {
		for _, v := range vals {
			if err := w.WriteField(key, v); err != nil {
				return nil, err
			}
		}
	}
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return roundTrip(doer, req, cfg)
}

func roundTrip(doer Doer, req *http.Request, cfg Config) (*Response, error) {
	httpResp, err := doer.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = httpResp.Body.Close() }()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		StatusCode:  httpResp.StatusCode,
		Body:        raw,
		ContentType: httpResp.Header.Get("Content-Type"),
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, &ServerError{
			StatusCode: httpResp.StatusCode,
			Message:    serverMessage(raw),
		}
	}

	if cfg.ReturnBytes {
		resp.Filename = extractFilename(httpResp.Header)
		return resp, nil
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		if cfg.ExpectEmptyBody {
			return resp, nil
		}
		if cfg.Format == "json" {
			return nil, &DecodeError{Format: cfg.Format, Err: io.ErrUnexpectedEOF}
		}
		return resp, nil
	}

	if cfg.Format == "json" {
		if msg, found := embeddedError(raw); found {
			return nil, &ServerError{StatusCode: httpResp.StatusCode, Message: msg}
		}
		if !json.Valid(raw) {
			return nil, &DecodeError{Format: cfg.Format, Err: errInvalidJSON}
		}
	}
	return resp, nil
}

var errInvalidJSON = &jsonSyntaxError{}

type jsonSyntaxError struct{}

func (*jsonSyntaxError) Error() string { return "body is not valid JSON" }

// embeddedError detects the server's in-band failure convention: a JSON
// object whose "error" key carries the rejection message, even under a
// 2xx status.
func embeddedError(raw []byte) (string, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return "", false
	}
	var envelope struct {
		Error *string `json:"error"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return "", false
	}
	if envelope.Error == nil {
		return "", false
	}
	return *envelope.Error, true
}

// serverMessage extracts a readable message from an error body. The server
// reports errors in the requested returnFormat, so a JSON error object is
// unwrapped; anything else is passed through verbatim.
func serverMessage(raw []byte) string {
	if msg, found := embeddedError(raw); found {
		return msg
	}
	return strings.TrimSpace(string(raw))
}

// extractFilename pulls the download filename from Content-Disposition,
// falling back to the name= parameter REDCap embeds in Content-Type.
func extractFilename(h http.Header) string {
	if cd := h.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			if name := params["filename"]; name != "" {
				return name
			}
		}
	}
	if ct := h.Get("Content-Type"); ct != "" {
		if _, params, err := mime.ParseMediaType(ct); err == nil {
			if name := params["name"]; name != "" {
				return name
			}
		}
	}
	return ""
}
