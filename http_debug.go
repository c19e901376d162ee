package redcap

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// debugTransport provides detailed HTTP request/response logging for
// debugging API communication problems.
//
// Activation: set REDCAP_DEBUG=true or DEBUG=true, or pass
// WithDebugLogging(true). Every dump includes the form-encoded body, which
// carries the project token, so only enable this against non-production
// projects and keep the log output secured.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}
	requestID := uuid.NewString()

	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("request_id", requestID).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("request_id", requestID).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("request_id", requestID).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks whether HTTP debug logging should be
// enabled from the environment. Both variables must be exactly "true":
// REDCAP_DEBUG for targeted client debugging, DEBUG for broader
// application debugging that includes HTTP traffic.
func debugLoggingRequested() bool {
	return os.Getenv("REDCAP_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
