package redcap

import "context"

// ExportProjectInfo exports the project-level attribute block. Unlike
// list-shaped exports this endpoint answers with a single object.
func (p *Project) ExportProjectInfo(ctx context.Context) (*ProjectInfo, error) {
	var info ProjectInfo
	if err := p.exportJSON(ctx, p.payload("project"), "project", &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// ExportProjectInfoRaw exports the project attributes as csv or xml text.
func (p *Project) ExportProjectInfoRaw(ctx context.Context, format Format) (string, error) {
	return p.exportRaw(ctx, p.payload("project"), "project", string(format))
}
