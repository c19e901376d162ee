package redcap

import (
	"context"

	"github.com/go-gota/gota/dataframe"

	"github.com/redcap-tools/redcap-go/internal/rcrequest"
	"github.com/redcap-tools/redcap-go/internal/types"
)

// ExportMetadata exports the project's data dictionary, optionally
// narrowed to specific fields or forms. This call bypasses the snapshot:
// it always reflects the live project.
func (p *Project) ExportMetadata(ctx context.Context, opts ExportMetadataOptions) ([]FieldMetadata, error) {
	var meta []FieldMetadata
	if err := p.exportJSON(ctx, p.metadataPayload(opts), "metadata", &meta); err != nil {
		return nil, err
	}
	return meta, nil
}

// ExportMetadataRaw exports the data dictionary as csv or xml text.
func (p *Project) ExportMetadataRaw(ctx context.Context, format Format, opts ExportMetadataOptions) (string, error) {
	return p.exportRaw(ctx, p.metadataPayload(opts), "metadata", string(format))
}

// ExportMetadataDataFrame exports the data dictionary as a dataframe
// ordered by field_name.
func (p *Project) ExportMetadataDataFrame(ctx context.Context, opts ExportMetadataOptions, dfOpts *DataFrameOptions) (dataframe.DataFrame, error) {
	csvText, err := p.exportCSV(ctx, p.metadataPayload(opts), "metadata")
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	return toDataFrame(csvText, dfOpts, []string{"field_name"})
}

// ImportMetadata replaces the project's data dictionary and returns the
// number of fields imported. The cached snapshot is not refreshed
// automatically; call Refresh afterwards if you rely on it.
func (p *Project) ImportMetadata(ctx context.Context, fields []FieldMetadata) (int, error) {
	if len(fields) == 0 {
		return 0, types.Validationf("no metadata rows to import")
	}
	pl := p.payload("metadata")
	if err := importJSONData(pl, fields); err != nil {
		return 0, err
	}
	return p.importCount(ctx, pl, "metadata", "import")
}

func (p *Project) metadataPayload(opts ExportMetadataOptions) *rcrequest.Payload {
	pl := p.payload("metadata")
	pl.SetList("fields", opts.Fields)
	pl.SetList("forms", opts.Forms)
	return pl
}
