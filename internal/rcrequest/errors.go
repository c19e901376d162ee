package rcrequest

import "fmt"

// ServerError is the uniform error for any request the REDCap server
// rejected: a non-2xx HTTP status, or a 2xx JSON body carrying an
// {"error": "..."} object. The server's own message is preserved so
// callers can inspect the rejection reason.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("redcap: server error (status %d): %s", e.StatusCode, e.Message)
}

// DecodeError reports a response body that could not be parsed under the
// requested format. It is deliberately distinct from ServerError so callers
// can tell "server rejected it" from "server sent garbage".
type DecodeError struct {
	Format string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("redcap: decoding %s response: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
