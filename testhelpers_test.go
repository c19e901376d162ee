package redcap

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

const testToken = "0123456789ABCDEF0123456789ABCDEF"

// testMetadata is a small classic-project dictionary: study_id is the
// identifier, consent_file is the only file-type field.
const testMetadata = `[
	{"field_name":"study_id","form_name":"demographics","field_type":"text","field_label":"Study ID"},
	{"field_name":"age","form_name":"demographics","field_type":"text","field_label":"Age"},
	{"field_name":"sex","form_name":"demographics","field_type":"radio","field_label":"Sex"},
	{"field_name":"consent_file","form_name":"consent","field_type":"file","field_label":"Consent"}
]`

const testEvents = `[
	{"event_name":"Baseline","arm_num":1,"unique_event_name":"baseline_arm_1"},
	{"event_name":"Followup","arm_num":1,"unique_event_name":"followup_arm_1"}
]`

const testArms = `[{"arm_num":1,"name":"Arm 1"}]`

const testFEM = `[{"arm_num":1,"unique_event_name":"baseline_arm_1","form":"demographics"}]`

// apiForm decodes the request body of the fake server, handling both
// form-encoded and multipart calls.
func apiForm(t *testing.T, r *http.Request) url.Values {
	t.Helper()
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart form: %v", err)
		}
		return url.Values(r.MultipartForm.Value)
	}
	if err := r.ParseForm(); err != nil {
		t.Fatalf("parse form: %v", err)
	}
	return r.PostForm
}

// contentHandler routes fake API calls on the content parameter.
// Classic-project plumbing (metadata, longitudinality probe) is built in
// so snapshot-dependent methods work; everything else goes to next.
func contentHandler(t *testing.T, longitudinal bool, next func(w http.ResponseWriter, form url.Values)) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		form := apiForm(t, r)
		switch form.Get("content") {
		case "metadata":
			_, _ = io.WriteString(w, testMetadata)
		case "formEventMapping":
			if longitudinal {
				_, _ = io.WriteString(w, testFEM)
			} else {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = io.WriteString(w, `{"error":"This is not a longitudinal project"}`)
			}
		case "event":
			_, _ = io.WriteString(w, testEvents)
		case "arm":
			_, _ = io.WriteString(w, testArms)
		default:
			if next == nil {
				t.Fatalf("unexpected content %q", form.Get("content"))
				return
			}
			next(w, form)
		}
	}
}

func newTestProject(t *testing.T, handler http.HandlerFunc, opts ...Option) *Project {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	p, err := New(srv.URL+"/api/", testToken, append([]Option{WithHTTPClient(srv.Client())}, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}
