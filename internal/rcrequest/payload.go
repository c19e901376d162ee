package rcrequest

import (
	"fmt"
	"net/url"
	"strconv"
)

// Payload holds the form parameters for a single API call. Every call
// carries at least the auth token and a content identifier; resource
// methods add their operation-specific keys on top.
type Payload struct {
	values url.Values
}

// NewPayload returns a payload seeded with the token and content pair the
// REDCap API requires on every request.
func NewPayload(token, content string) *Payload {
	v := url.Values{}
	v.Set("token", token)
	v.Set("content", content)
	return &Payload{values: v}
}

// Set stores a single-valued parameter. Empty values are dropped so the
// server applies its own defaults for absent filters.
func (p *Payload) Set(key, value string) *Payload {
	if value != "" {
		p.values.Set(key, value)
	}
	return p
}

// SetList stores a list-valued parameter as indexed keys (fields[0],
// fields[1], ...), the convention current REDCap versions expect.
// Comma-joining is not used: values themselves may contain commas.
func (p *Payload) SetList(key string, values []string) *Payload {
	for i, v := range values {
		p.values.Set(fmt.Sprintf("%s[%d]", key, i), v)
	}
	return p
}

// SetBool stores "true" only; false means "let the server default apply"
// and produces no key at all.
func (p *Payload) SetBool(key string, value bool) *Payload {
	if value {
		p.values.Set(key, "true")
	}
	return p
}

// SetInt stores a non-zero integer parameter.
func (p *Payload) SetInt(key string, value int) *Payload {
	if value != 0 {
		p.values.Set(key, strconv.Itoa(value))
	}
	return p
}

// Format sets the export wire format (json, csv, xml).
func (p *Payload) Format(format string) *Payload { return p.Set("format", format) }

// ReturnFormat sets the format of error bodies for import/delete/file calls.
func (p *Payload) ReturnFormat(format string) *Payload { return p.Set("returnFormat", format) }

// Action sets the action parameter (import, delete, export, switch, ...).
func (p *Payload) Action(action string) *Payload { return p.Set("action", action) }

// Values exposes the accumulated parameters for encoding.
func (p *Payload) Values() url.Values { return p.values }

// Has reports whether the key is present, mainly for tests and guards.
func (p *Payload) Has(key string) bool { return p.values.Has(key) }
