package redcap

import (
	"context"

	"github.com/go-gota/gota/dataframe"

	"github.com/redcap-tools/redcap-go/internal/rcrequest"
	"github.com/redcap-tools/redcap-go/internal/types"
)

// ExportReport exports the rows of a saved report. Rows come back ordered
// by the project's identifier and then by event.
func (p *Project) ExportReport(ctx context.Context, opts ExportReportOptions) ([]Record, error) {
	pl, err := p.reportPayload(opts)
	if err != nil {
		return nil, err
	}
	var rows []Record
	if err := p.exportJSON(ctx, pl, "report", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ExportReportRaw exports a saved report as csv or xml text.
func (p *Project) ExportReportRaw(ctx context.Context, format Format, opts ExportReportOptions) (string, error) {
	pl, err := p.reportPayload(opts)
	if err != nil {
		return "", err
	}
	return p.exportRaw(ctx, pl, "report", string(format))
}

// ExportReportDataFrame exports a saved report as a dataframe keyed the
// same way record exports are.
func (p *Project) ExportReportDataFrame(ctx context.Context, opts ExportReportOptions, dfOpts *DataFrameOptions) (dataframe.DataFrame, error) {
	pl, err := p.reportPayload(opts)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	csvText, err := p.exportCSV(ctx, pl, "report")
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	sortCols, err := p.recordSortColumns(ctx)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	return toDataFrame(csvText, dfOpts, sortCols)
}

func (p *Project) reportPayload(opts ExportReportOptions) (*rcrequest.Payload, error) {
	if err := types.RequireArg("report_id", opts.ReportID); err != nil {
		return nil, err
	}
	pl := p.payload("report")
	pl.Set("report_id", opts.ReportID)
	pl.Set("rawOrLabel", opts.RawOrLabel)
	pl.Set("rawOrLabelHeaders", opts.RawOrLabelHeaders)
	pl.SetBool("exportCheckboxLabel", opts.ExportCheckboxLabels)
	pl.Set("decimalCharacter", opts.DecimalCharacter)
	return pl, nil
}
