package redcap

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"
)

func TestErrorClassification(t *testing.T) {
	t.Parallel()
	p := newTestProject(t, contentHandler(t, false, func(w http.ResponseWriter, form url.Values) {
		switch form.Get("content") {
		case "user":
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":"You do not have permissions to use the API"}`))
		case "instrument":
			_, _ = w.Write([]byte(`this is not json`))
		}
	}))

	ctx := context.Background()

	_, err := p.ExportUsers(ctx)
	if !IsServerError(err) {
		t.Fatalf("want ServerError, got %v", err)
	}
	if IsDecodeError(err) || IsValidationError(err) {
		t.Fatalf("misclassified: %v", err)
	}
	var serverErr *ServerError
	if errors.As(err, &serverErr) && serverErr.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d", serverErr.StatusCode)
	}

	_, err = p.ExportInstruments(ctx)
	if !IsDecodeError(err) {
		t.Fatalf("want DecodeError, got %v", err)
	}
	if IsServerError(err) {
		t.Fatalf("misclassified: %v", err)
	}

	_, err = p.ExportUsersRaw(ctx, FormatJSON)
	if !IsValidationError(err) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if IsServerError(err) || IsDecodeError(err) {
		t.Fatalf("misclassified: %v", err)
	}
}

func TestClassifiersRejectForeignErrors(t *testing.T) {
	t.Parallel()
	err := errors.New("plain")
	if IsServerError(err) || IsDecodeError(err) || IsValidationError(err) {
		t.Fatalf("plain error classified: %v", err)
	}
	if IsServerError(nil) || IsDecodeError(nil) || IsValidationError(nil) {
		t.Fatal("nil classified")
	}
}
