package redcap

import (
	"context"

	"github.com/go-gota/gota/dataframe"
)

// ExportFieldNames exports the mapping from survey field names to export
// column names. Checkbox fields expand to one row per choice. Pass a
// non-empty field to limit the export to that single field.
func (p *Project) ExportFieldNames(ctx context.Context, field string) ([]ExportFieldName, error) {
	pl := p.payload("exportFieldNames").Set("field", field)
	var names []ExportFieldName
	if err := p.exportJSON(ctx, pl, "exportFieldNames", &names); err != nil {
		return nil, err
	}
	return names, nil
}

// ExportFieldNamesRaw exports the field name mapping as csv or xml text.
func (p *Project) ExportFieldNamesRaw(ctx context.Context, format Format, field string) (string, error) {
	pl := p.payload("exportFieldNames").Set("field", field)
	return p.exportRaw(ctx, pl, "exportFieldNames", string(format))
}

// ExportFieldNamesDataFrame exports the field name mapping as a dataframe
// ordered by original_field_name.
func (p *Project) ExportFieldNamesDataFrame(ctx context.Context, field string, dfOpts *DataFrameOptions) (dataframe.DataFrame, error) {
	pl := p.payload("exportFieldNames").Set("field", field)
	csvText, err := p.exportCSV(ctx, pl, "exportFieldNames")
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	return toDataFrame(csvText, dfOpts, []string{"original_field_name"})
}
