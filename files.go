package redcap

import (
	"context"
	"io"
	"slices"

	"github.com/redcap-tools/redcap-go/internal/rcrequest"
	"github.com/redcap-tools/redcap-go/internal/types"
)

// File operations act on exactly one (record, field, optional event)
// triple at a time; the API has no batch form of them. The target field
// must be of type "file" in the cached dictionary, checked locally before
// any network traffic.

// ExportFile downloads the file stored in a record's file field. The
// returned FileResult carries the raw bytes and the server-declared
// filename. When the server rejects the call, the rejection body is the
// *ServerError message so callers can inspect the failure text.
func (p *Project) ExportFile(ctx context.Context, record, field string, opts *FileOptions) (*FileResult, error) {
	if err := p.checkFileField(ctx, field); err != nil {
		return nil, err
	}
	if err := types.RequireArg("record", record); err != nil {
		return nil, err
	}
	pl := p.filePayload(record, field, opts).Action("export")

	cfg := rcrequest.Config{Content: "file", Action: "export", ReturnBytes: true}
	resp, err := p.call(ctx, pl, cfg)
	if err != nil {
		return nil, err
	}
	return &FileResult{
		Content:     resp.Body,
		Filename:    resp.Filename,
		ContentType: resp.ContentType,
	}, nil
}

// ImportFile uploads the bytes read from file into a record's file field.
// filename is the name shown in the UI. The server sends no positive
// acknowledgment body: success is the absence of an error.
func (p *Project) ImportFile(ctx context.Context, record, field, filename string, file io.Reader, opts *FileOptions) error {
	if err := p.checkFileField(ctx, field); err != nil {
		return err
	}
	if err := types.RequireArg("record", record); err != nil {
		return err
	}
	if err := types.RequireArg("filename", filename); err != nil {
		return err
	}
	pl := p.filePayload(record, field, opts).Action("import")

	cfg := rcrequest.Config{Content: "file", Action: "import", Format: "json", ExpectEmptyBody: true}
	_, err := p.callMultipart(ctx, pl, filename, file, cfg)
	return err
}

// DeleteFile removes the file stored in a record's file field. There is
// no undo.
func (p *Project) DeleteFile(ctx context.Context, record, field string, opts *FileOptions) error {
	if err := p.checkFileField(ctx, field); err != nil {
		return err
	}
	if err := types.RequireArg("record", record); err != nil {
		return err
	}
	pl := p.filePayload(record, field, opts).Action("delete")

	cfg := rcrequest.Config{Content: "file", Action: "delete", Format: "json", ExpectEmptyBody: true}
	_, err := p.call(ctx, pl, cfg)
	return err
}

func (p *Project) filePayload(record, field string, opts *FileOptions) *rcrequest.Payload {
	pl := p.payload("file").ReturnFormat("json")
	pl.Set("record", record)
	pl.Set("field", field)
	if opts != nil {
		pl.Set("event", opts.Event)
		pl.SetInt("repeat_instance", opts.RepeatInstance)
	}
	return pl
}

// checkFileField fails fast when field is absent from the cached
// dictionary or is not a file-type field.
func (p *Project) checkFileField(ctx context.Context, field string) error {
	if err := types.RequireArg("field", field); err != nil {
		return err
	}
	snap, err := p.ensureSnapshot(ctx)
	if err != nil {
		return err
	}
	if !slices.Contains(snap.fieldNames, field) {
		return types.Validationf("%q is not a field in this project", field)
	}
	fieldType, _ := p.FieldType(ctx, field)
	if fieldType != "file" {
		return types.Validationf("%q is not a 'file' field", field)
	}
	return nil
}
