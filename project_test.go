package redcap

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestNew_ValidatesURLAndToken(t *testing.T) {
	t.Parallel()
	if _, err := New("https://redcap.example.org/api", testToken); !IsValidationError(err) {
		t.Fatalf("bad url: want ValidationError, got %v", err)
	}
	if _, err := New("https://redcap.example.org/api/", "short"); !IsValidationError(err) {
		t.Fatalf("bad token: want ValidationError, got %v", err)
	}
	p, err := New("https://redcap.example.org/api/", testToken)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if p.URL() != "https://redcap.example.org/api/" {
		t.Fatalf("URL = %q", p.URL())
	}
}

func TestNew_AppliesOptions(t *testing.T) {
	t.Parallel()
	p, err := New("https://redcap.example.org/api/", testToken,
		WithHTTPTimeout(5*time.Second),
		WithUserAgent("study-pipeline/2.1"),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if p.http.Timeout != 5*time.Second {
		t.Fatalf("timeout = %v", p.http.Timeout)
	}
	if p.userAgent != "study-pipeline/2.1" {
		t.Fatalf("user agent = %q", p.userAgent)
	}
}

func TestNew_RejectsBadOptions(t *testing.T) {
	t.Parallel()
	if _, err := New("https://redcap.example.org/api/", testToken, WithHTTPTimeout(0)); err == nil {
		t.Fatal("expected error for zero timeout")
	}
	if _, err := New("https://redcap.example.org/api/", testToken, WithHTTPClient(nil)); err == nil {
		t.Fatal("expected error for nil http client")
	}
	if _, err := New("https://redcap.example.org/api/", testToken, WithUserAgent("")); err == nil {
		t.Fatal("expected error for empty user agent")
	}
	if _, err := New("https://redcap.example.org/api/", testToken, WithCABundle([]byte("not pem"))); err == nil {
		t.Fatal("expected error for junk ca bundle")
	}
}

func TestNew_WrapsTransportWithUserAgent(t *testing.T) {
	t.Parallel()
	agent := make(chan string, 1)
	p := newTestProject(t, func(w http.ResponseWriter, r *http.Request) {
		agent <- r.Header.Get("User-Agent")
	})
	if _, err := p.ExportUsersRaw(context.Background(), FormatCSV); err != nil {
		t.Fatalf("ExportUsersRaw: %v", err)
	}
	if got := <-agent; got != defaultUserAgent {
		t.Fatalf("User-Agent = %q", got)
	}
}

func TestNew_AutoEnableDebugViaEnv(t *testing.T) {
	t.Setenv("REDCAP_DEBUG", "true")
	p, err := New("https://redcap.example.org/api/", testToken)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ua, ok := p.http.Transport.(*userAgentTransport)
	if !ok {
		t.Fatalf("outer transport = %T", p.http.Transport)
	}
	if _, ok := ua.base.(*debugTransport); !ok {
		t.Fatalf("expected debugTransport under the user-agent wrapper, got %T", ua.base)
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("REDCAP_URL", "https://redcap.example.org/api/")
	t.Setenv("REDCAP_TOKEN", testToken)
	t.Setenv("REDCAP_HTTP_TIMEOUT", "9s")
	p, err := NewFromEnv()
	if err != nil {
		t.Fatalf("NewFromEnv: %v", err)
	}
	if p.http.Timeout != 9*time.Second {
		t.Fatalf("timeout = %v", p.http.Timeout)
	}
}

func TestNewFromEnv_MissingToken(t *testing.T) {
	t.Setenv("REDCAP_URL", "https://redcap.example.org/api/")
	t.Setenv("REDCAP_TOKEN", "")
	if _, err := NewFromEnv(); err == nil {
		t.Fatal("expected error when REDCAP_TOKEN is empty")
	}
}
