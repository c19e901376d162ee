package types

import (
	"errors"
	"testing"
)

func TestValidateProjectURL(t *testing.T) {
	t.Parallel()
	if err := ValidateProjectURL("https://redcap.example.org/api/"); err != nil {
		t.Fatalf("valid url rejected: %v", err)
	}
	for _, url := range []string{"", "https://redcap.example.org", "https://redcap.example.org/api"} {
		err := ValidateProjectURL(url)
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("url %q: want ValidationError, got %v", url, err)
		}
	}
}

func TestValidateToken(t *testing.T) {
	t.Parallel()
	if err := ValidateToken("0123456789ABCDEF0123456789ABCDEF"); err != nil {
		t.Fatalf("valid token rejected: %v", err)
	}
	for _, token := range []string{"", "short", "0123456789ABCDEF0123456789ABCDEF00"} {
		err := ValidateToken(token)
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("token %q: want ValidationError, got %v", token, err)
		}
	}
}

func TestValidateRawFormat(t *testing.T) {
	t.Parallel()
	for _, format := range []string{"csv", "xml"} {
		if err := ValidateRawFormat(format); err != nil {
			t.Fatalf("format %q rejected: %v", format, err)
		}
	}
	for _, format := range []string{"", "json", "df"} {
		if err := ValidateRawFormat(format); err == nil {
			t.Fatalf("format %q accepted", format)
		}
	}
}

func TestRequireArg(t *testing.T) {
	t.Parallel()
	if err := RequireArg("record", "1"); err != nil {
		t.Fatalf("present arg rejected: %v", err)
	}
	err := RequireArg("record", "")
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}
