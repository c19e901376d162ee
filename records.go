package redcap

import (
	"context"
	"slices"

	"github.com/go-gota/gota/dataframe"

	"github.com/redcap-tools/redcap-go/internal/rcrequest"
	"github.com/redcap-tools/redcap-go/internal/types"
)

const timestampLayout = "2006-01-02 15:04:05"

// ExportRecords exports project data as decoded rows.
//
// When Fields or Forms are set, the identifier field is always added to
// the request before dispatch, so exported rows carry the project's
// unique key even if it was not asked for. Unknown field names are passed
// through untouched; the server decides what they mean.
func (p *Project) ExportRecords(ctx context.Context, opts ExportRecordsOptions) ([]Record, error) {
	pl, err := p.recordsPayload(ctx, opts)
	if err != nil {
		return nil, err
	}
	var records []Record
	if err := p.exportJSON(ctx, pl, "record", &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ExportRecordsRaw exports project data as csv or xml text, verbatim from
// the server. Cross-row structure (csv headers, xml envelopes) is kept
// intact, which is why raw exports cannot be chunked safely client-side.
func (p *Project) ExportRecordsRaw(ctx context.Context, format Format, opts ExportRecordsOptions) (string, error) {
	pl, err := p.recordsPayload(ctx, opts)
	if err != nil {
		return "", err
	}
	return p.exportRaw(ctx, pl, "record", string(format))
}

// ExportRecordsDataFrame exports project data as a dataframe built from
// the csv wire format. On longitudinal projects the table is ordered by
// (identifier, redcap_event_name).
func (p *Project) ExportRecordsDataFrame(ctx context.Context, opts ExportRecordsOptions, dfOpts *DataFrameOptions) (dataframe.DataFrame, error) {
	pl, err := p.recordsPayload(ctx, opts)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	csvText, err := p.exportCSV(ctx, pl, "record")
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	var sortCols []string
	if opts.RecordType != "eav" {
		if sortCols, err = p.recordSortColumns(ctx); err != nil {
			return dataframe.DataFrame{}, err
		}
	}
	return toDataFrame(csvText, dfOpts, sortCols)
}

// ImportRecords imports decoded rows into the project. The acknowledgment
// shape follows opts.ReturnContent; by default the server reports how many
// records it stored. A rejected import surfaces the server's reason as a
// *ServerError; there is no partial-commit tracking.
func (p *Project) ImportRecords(ctx context.Context, records []Record, opts ImportRecordsOptions) (*ImportResult, error) {
	if len(records) == 0 {
		return nil, types.Validationf("no records to import")
	}
	pl := p.payload("record").Set("type", "flat")
	if err := importJSONData(pl, records); err != nil {
		return nil, err
	}
	return p.dispatchRecordImport(ctx, pl, opts)
}

// ImportRecordsRaw imports a csv or xml document exactly as supplied.
func (p *Project) ImportRecordsRaw(ctx context.Context, data string, format Format, opts ImportRecordsOptions) (*ImportResult, error) {
	if err := types.ValidateRawFormat(string(format)); err != nil {
		return nil, err
	}
	if data == "" {
		return nil, types.Validationf("no data to import")
	}
	pl := p.payload("record").Set("type", "flat")
	pl.Set("format", string(format))
	pl.Set("data", data)
	return p.dispatchRecordImport(ctx, pl, opts)
}

// DeleteRecords deletes whole records. Arm optionally restricts the
// deletion to one arm of a longitudinal project. Returns the number of
// records deleted.
func (p *Project) DeleteRecords(ctx context.Context, records []string, arm string) (int, error) {
	if len(records) == 0 {
		return 0, types.Validationf("no records to delete")
	}
	pl := p.payload("record").Action("delete")
	pl.SetList("records", records)
	pl.Set("arm", arm)
	return p.importCount(ctx, pl, "record", "delete")
}

func (p *Project) dispatchRecordImport(ctx context.Context, pl *rcrequest.Payload, opts ImportRecordsOptions) (*ImportResult, error) {
	pl.Set("overwriteBehavior", opts.Overwrite)
	pl.Set("returnContent", opts.ReturnContent)
	pl.Set("dateFormat", opts.DateFormat)
	pl.SetBool("forceAutoNumber", opts.ForceAutoNumber)
	pl.ReturnFormat("json")

	cfg := rcrequest.Config{
		Content:         "record",
		Action:          "import",
		Format:          "json",
		ExpectEmptyBody: opts.ReturnContent == "nothing",
	}
	resp, err := p.call(ctx, pl, cfg)
	if err != nil {
		return nil, err
	}
	return parseImportAck(resp.Body, opts.ReturnContent)
}

// parseImportAck decodes the acknowledgment of a record import according
// to the requested return content.
func parseImportAck(body []byte, returnContent string) (*ImportResult, error) {
	switch returnContent {
	case "", "count":
		var ack struct {
			Count int `json:"count"`
		}
		if err := decodeJSON(body, &ack); err != nil {
			return nil, err
		}
		return &ImportResult{Count: ack.Count}, nil
	case "ids", "auto_ids":
		var ids []string
		if err := decodeJSON(body, &ids); err != nil {
			return nil, err
		}
		return &ImportResult{Count: len(ids), IDs: ids}, nil
	case "nothing":
		return &ImportResult{}, nil
	default:
		return nil, types.Validationf("unknown return content %q", returnContent)
	}
}

// recordsPayload normalizes export filters into the wire parameter set.
func (p *Project) recordsPayload(ctx context.Context, opts ExportRecordsOptions) (*rcrequest.Payload, error) {
	fields, err := p.backfillFields(ctx, opts.Fields, opts.Forms)
	if err != nil {
		return nil, err
	}

	pl := p.payload("record")
	recordType := opts.RecordType
	if recordType == "" {
		recordType = "flat"
	}
	pl.Set("type", recordType)
	pl.SetList("records", opts.Records)
	pl.SetList("fields", fields)
	pl.SetList("forms", opts.Forms)
	pl.SetList("events", opts.Events)
	pl.Set("rawOrLabel", opts.RawOrLabel)
	pl.Set("rawOrLabelHeaders", opts.RawOrLabelHeaders)
	pl.Set("eventName", opts.EventName)
	pl.SetBool("exportSurveyFields", opts.ExportSurveyFields)
	pl.SetBool("exportDataAccessGroups", opts.ExportDataAccessGroups)
	pl.SetBool("exportCheckboxLabel", opts.ExportCheckboxLabels)
	pl.SetBool("exportBlankForGrayFormStatus", opts.ExportBlankForGrayFormStatus)
	pl.Set("filterLogic", opts.FilterLogic)
	pl.Set("decimalCharacter", opts.DecimalCharacter)
	if !opts.DateBegin.IsZero() {
		pl.Set("dateRangeBegin", opts.DateBegin.Format(timestampLayout))
	}
	if !opts.DateEnd.IsZero() {
		pl.Set("dateRangeEnd", opts.DateEnd.Format(timestampLayout))
	}
	return pl, nil
}

// backfillFields widens an explicit field/form selection so the response
// always carries the identifier field. The server does not guarantee this
// on its own: requesting a form that the identifier is not on would
// otherwise drop it. Requested names are never checked against the cached
// dictionary; the live schema is authoritative and may have drifted.
func (p *Project) backfillFields(ctx context.Context, fields, forms []string) ([]string, error) {
	if len(fields) == 0 && len(forms) == 0 {
		return nil, nil
	}
	defField, err := p.IdentifierField(ctx)
	if err != nil {
		return nil, err
	}

	if len(forms) > 0 && len(fields) == 0 {
		out := make([]string, 0, len(forms)+1)
		for _, form := range forms {
			out = append(out, form+"_complete")
		}
		return append(out, defField), nil
	}
	if !slices.Contains(fields, defField) {
		out := make([]string, len(fields), len(fields)+1)
		copy(out, fields)
		return append(out, defField), nil
	}
	return fields, nil
}
