package redcap

import (
	"context"
	"io"

	"github.com/redcap-tools/redcap-go/internal/rcrequest"
	"github.com/redcap-tools/redcap-go/internal/types"
)

// CreateRepositoryFolder creates a folder in the project's file
// repository and returns its server-assigned id. opts may scope the
// folder under a parent folder or restrict it to a DAG or role.
func (p *Project) CreateRepositoryFolder(ctx context.Context, name string, opts *RepositoryFolderOptions) (int, error) {
	if err := types.RequireArg("name", name); err != nil {
		return 0, err
	}
	pl := p.payload("fileRepository").Action("createFolder").ReturnFormat("json")
	pl.Set("name", name)
	if opts != nil {
		pl.SetInt("folder_id", opts.ParentFolderID)
		pl.SetInt("dag_id", opts.DAGID)
		pl.SetInt("role_id", opts.RoleID)
	}

	resp, err := p.call(ctx, pl, rcrequest.Config{Content: "fileRepository", Action: "createFolder", Format: "json"})
	if err != nil {
		return 0, err
	}
	var created []RepositoryItem
	if err := decodeJSON(resp.Body, &created); err != nil {
		return 0, err
	}
	if len(created) == 0 {
		return 0, &rcrequest.DecodeError{Format: "json", Err: io.ErrUnexpectedEOF}
	}
	id, err := created[0].FolderID.Int64()
	if err != nil {
		return 0, &rcrequest.DecodeError{Format: "json", Err: err}
	}
	return int(id), nil
}

// ListRepository lists the folders and files directly under one folder of
// the file repository; folderID 0 means the top level.
func (p *Project) ListRepository(ctx context.Context, folderID int) ([]RepositoryItem, error) {
	pl := p.payload("fileRepository").Action("list")
	pl.SetInt("folder_id", folderID)
	var items []RepositoryItem
	if err := p.exportJSON(ctx, pl, "fileRepository", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ExportRepositoryFile downloads one document from the file repository.
func (p *Project) ExportRepositoryFile(ctx context.Context, docID int) (*FileResult, error) {
	if docID == 0 {
		return nil, types.Validationf("doc_id is required")
	}
	pl := p.payload("fileRepository").Action("export").ReturnFormat("json")
	pl.SetInt("doc_id", docID)

	cfg := rcrequest.Config{Content: "fileRepository", Action: "export", ReturnBytes: true}
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

// ImportRepositoryFile uploads a document into the file repository,
// optionally into a specific folder. The server sends no acknowledgment
// body on success.
func (p *Project) ImportRepositoryFile(ctx context.Context, filename string, file io.Reader, folderID int) error {
	if err := types.RequireArg("filename", filename); err != nil {
		return err
	}
	pl := p.payload("fileRepository").Action("import").ReturnFormat("json")
	pl.SetInt("folder_id", folderID)

	cfg := rcrequest.Config{Content: "fileRepository", Action: "import", Format: "json", ExpectEmptyBody: true}
	_, err := p.callMultipart(ctx, pl, filename, file, cfg)
	return err
}

// DeleteRepositoryFile moves a document to the repository's recycle bin,
// from which the server purges it after 30 days.
func (p *Project) DeleteRepositoryFile(ctx context.Context, docID int) error {
	if docID == 0 {
		return types.Validationf("doc_id is required")
	}
	pl := p.payload("fileRepository").Action("delete").ReturnFormat("json")
	pl.SetInt("doc_id", docID)

	cfg := rcrequest.Config{Content: "fileRepository", Action: "delete", Format: "json", ExpectEmptyBody: true}
	_, err := p.call(ctx, pl, cfg)
	return err
}
