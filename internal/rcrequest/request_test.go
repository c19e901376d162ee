package rcrequest

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestExecute_FormEncodedPOST(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("content type = %s", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if got := r.PostFormValue("token"); got != "tok" {
			t.Errorf("token = %q", got)
		}
		if got := r.PostFormValue("records[1]"); got != "2" {
			t.Errorf("records[1] = %q", got)
		}
		_, _ = io.WriteString(w, `[{"study_id":"1"}]`)
	}))
	defer srv.Close()

	pl := NewPayload("tok", "record").SetList("records", []string{"1", "2"}).Format("json")
	resp, err := Execute(context.Background(), srv.Client(), srv.URL, pl, Config{Content: "record", Format: "json"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if string(resp.Body) != `[{"study_id":"1"}]` {
		t.Fatalf("body = %s", resp.Body)
	}
}

func TestExecute_NonOKStatusIsServerError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"error":"You do not have permissions to use the API"}`)
	}))
	defer srv.Close()

	pl := NewPayload("tok", "record").Format("json")
	_, err := Execute(context.Background(), srv.Client(), srv.URL, pl, Config{Content: "record", Format: "json"})
	var srvErr *ServerError
	if !errors.As(err, &srvErr) {
		t.Fatalf("want ServerError, got %v", err)
	}
	if srvErr.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d", srvErr.StatusCode)
	}
	if !strings.Contains(srvErr.Message, "permissions") {
		t.Fatalf("message = %q", srvErr.Message)
	}
}

func TestExecute_EmbeddedErrorUnder200IsServerError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"error":"invalid token"}`)
	}))
	defer srv.Close()

	pl := NewPayload("tok", "record").Format("json")
	_, err := Execute(context.Background(), srv.Client(), srv.URL, pl, Config{Content: "record", Format: "json"})
	var srvErr *ServerError
	if !errors.As(err, &srvErr) {
		t.Fatalf("want ServerError, got %v", err)
	}
	if srvErr.Message != "invalid token" {
		t.Fatalf("message = %q", srvErr.Message)
	}
	if srvErr.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", srvErr.StatusCode)
	}
}

func TestExecute_InvalidJSONIsDecodeError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `<html>gateway timeout`)
	}))
	defer srv.Close()

	pl := NewPayload("tok", "record").Format("json")
	_, err := Execute(context.Background(), srv.Client(), srv.URL, pl, Config{Content: "record", Format: "json"})
	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("want DecodeError, got %v", err)
	}
	var srvErr *ServerError
	if errors.As(err, &srvErr) {
		t.Fatal("decode failures must not classify as server errors")
	}
}

func TestExecute_EmptyJSONBody(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	pl := NewPayload("tok", "file").ReturnFormat("json")
	// File import/delete answer 2xx with no body at all.
	if _, err := Execute(context.Background(), srv.Client(), srv.URL, pl, Config{Content: "file", Format: "json", ExpectEmptyBody: true}); err != nil {
		t.Fatalf("expected empty body to be accepted: %v", err)
	}
	_, err := Execute(context.Background(), srv.Client(), srv.URL, pl, Config{Content: "record", Format: "json"})
	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("want DecodeError for unexpected empty json, got %v", err)
	}
}

func TestExecute_FileDownloadFilename(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		header func(h http.Header)
		want   string
	}{
		{
			name: "content disposition",
			header: func(h http.Header) {
				h.Set("Content-Disposition", `attachment; filename="scan.pdf"`)
			},
			want: "scan.pdf",
		},
		{
			name: "content type name param",
			header: func(h http.Header) {
				h.Set("Content-Type", `application/pdf; name="upload.pdf"`)
			},
			want: "upload.pdf",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.header(w.Header())
				_, _ = w.Write([]byte{0x25, 0x50, 0x44, 0x46})
			}))
			defer srv.Close()

			pl := NewPayload("tok", "file").Action("export")
			resp, err := Execute(context.Background(), srv.Client(), srv.URL, pl, Config{Content: "file", ReturnBytes: true})
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if resp.Filename != tt.want {
				t.Fatalf("filename = %q, want %q", resp.Filename, tt.want)
			}
			if len(resp.Body) != 4 {
				t.Fatalf("body length = %d", len(resp.Body))
			}
		})
	}
}

func TestExecuteMultipart_FileAndFields(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			return
		}
		if got := r.FormValue("record"); got != "1" {
			t.Errorf("record = %q", got)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("form file: %v", err)
			return
		}
		defer func() { _ = file.Close() }()
		if header.Filename != "consent.txt" {
			t.Errorf("filename = %q", header.Filename)
		}
		data, _ := io.ReadAll(file)
		if string(data) != "signed" {
			t.Errorf("file content = %q", data)
		}
	}))
	defer srv.Close()

	pl := NewPayload("tok", "file").Action("import").Set("record", "1")
	cfg := Config{Content: "file", Action: "import", Format: "json", ExpectEmptyBody: true}
	if _, err := ExecuteMultipart(context.Background(), srv.Client(), srv.URL, pl, "consent.txt", strings.NewReader("signed"), cfg); err != nil {
		t.Fatalf("ExecuteMultipart: %v", err)
	}
}

func TestExecute_NetworkErrorPassesThrough(t *testing.T) {
	t.Parallel()
	client := &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("boom")
	})}
	pl := NewPayload("tok", "record").Format("json")
	_, err := Execute(context.Background(), client, "http://example.invalid/api/", pl, Config{Content: "record", Format: "json"})
	if err == nil {
		t.Fatal("expected network error")
	}
	var srvErr *ServerError
	if errors.As(err, &srvErr) {
		t.Fatal("network failures must not classify as server errors")
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }
