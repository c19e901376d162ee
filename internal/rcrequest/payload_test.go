package rcrequest

import "testing"

func TestPayload_SeedsTokenAndContent(t *testing.T) {
	t.Parallel()
	pl := NewPayload("tok", "record")
	if got := pl.Values().Get("token"); got != "tok" {
		t.Fatalf("token = %q", got)
	}
	if got := pl.Values().Get("content"); got != "record" {
		t.Fatalf("content = %q", got)
	}
}

func TestPayload_SetDropsEmptyValues(t *testing.T) {
	t.Parallel()
	pl := NewPayload("tok", "record").Set("filterLogic", "")
	if pl.Has("filterLogic") {
		t.Fatal("empty value should be omitted so server defaults apply")
	}
}

func TestPayload_SetListUsesIndexedKeys(t *testing.T) {
	t.Parallel()
	pl := NewPayload("tok", "record").SetList("fields", []string{"age", "sex"})
	if got := pl.Values().Get("fields[0]"); got != "age" {
		t.Fatalf("fields[0] = %q", got)
	}
	if got := pl.Values().Get("fields[1]"); got != "sex" {
		t.Fatalf("fields[1] = %q", got)
	}
	if pl.Has("fields") {
		t.Fatal("lists must not be comma-joined under the bare key")
	}
}

func TestPayload_SetListEmptyIsOmitted(t *testing.T) {
	t.Parallel()
	pl := NewPayload("tok", "record").SetList("records", nil)
	if pl.Has("records[0]") || pl.Has("records") {
		t.Fatal("empty list should produce no keys")
	}
}

func TestPayload_SetBoolOnlyWhenTrue(t *testing.T) {
	t.Parallel()
	pl := NewPayload("tok", "record").
		SetBool("exportCheckboxLabel", true).
		SetBool("exportSurveyFields", false)
	if got := pl.Values().Get("exportCheckboxLabel"); got != "true" {
		t.Fatalf("exportCheckboxLabel = %q", got)
	}
	if pl.Has("exportSurveyFields") {
		t.Fatal("false flags should be omitted")
	}
}

func TestPayload_SetIntSkipsZero(t *testing.T) {
	t.Parallel()
	pl := NewPayload("tok", "file").SetInt("repeat_instance", 0).SetInt("doc_id", 7)
	if pl.Has("repeat_instance") {
		t.Fatal("zero int should be omitted")
	}
	if got := pl.Values().Get("doc_id"); got != "7" {
		t.Fatalf("doc_id = %q", got)
	}
}
