package redcap

import (
	"context"
	"strings"

	goversion "github.com/hashicorp/go-version"

	"github.com/redcap-tools/redcap-go/internal/rcrequest"
)

// ExportVersion returns the REDCap version running behind the endpoint.
// The server answers with a bare version string; it is parsed so callers
// can compare against feature thresholds.
func (p *Project) ExportVersion(ctx context.Context) (*goversion.Version, error) {
	pl := p.payload("version")
	resp, err := p.call(ctx, pl, rcrequest.Config{Content: "version"})
	if err != nil {
		return nil, err
	}
	raw := strings.TrimSpace(string(resp.Body))
	v, err := goversion.NewVersion(raw)
	if err != nil {
		return nil, &rcrequest.DecodeError{Format: "version", Err: err}
	}
	return v, nil
}
