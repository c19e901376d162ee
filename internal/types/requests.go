package types

import "time"

// ------------------------------
// Export / import option blocks
// ------------------------------

// ExportRecordsOptions narrows a record export. Zero values mean "no
// filter": the corresponding parameter is omitted entirely so the server
// applies its defaults (all records, all fields, all events).
type ExportRecordsOptions struct {
	Records []string
	Fields  []string
	Forms   []string
	Events  []string

	// RawOrLabel selects raw coded values ("raw", server default),
	// labels ("label") or both ("both") for multiple choice fields.
	RawOrLabel string
	// RawOrLabelHeaders selects raw or labeled CSV column headers.
	RawOrLabelHeaders string
	// EventName selects the unique event name ("unique") or its label.
	EventName string
	// RecordType selects the output structure: "flat" (default) or "eav".
	RecordType string

	ExportSurveyFields           bool
	ExportDataAccessGroups       bool
	ExportCheckboxLabels         bool
	ExportBlankForGrayFormStatus bool

	// FilterLogic narrows rows using the server's conditional syntax,
	// e.g. "[age] > 30".
	FilterLogic string

	// DateBegin/DateEnd restrict to records created inside the range.
	DateBegin time.Time
	DateEnd   time.Time

	// DecimalCharacter forces all numbers into one decimal format
	// ("," or ".").
	DecimalCharacter string
}

// ImportRecordsOptions controls a record import.
type ImportRecordsOptions struct {
	// ReturnContent selects the acknowledgment shape: "count" (default),
	// "ids", "auto_ids" or "nothing".
	ReturnContent string
	// Overwrite is "normal" (blanks ignored, default) or "overwrite"
	// (blanks erase stored values).
	Overwrite string
	// DateFormat declares the date layout of the imported data:
	// "YMD" (default), "DMY" or "MDY".
	DateFormat      string
	ForceAutoNumber bool
}

// FileOptions locates a file field instance in longitudinal or repeating
// projects.
type FileOptions struct {
	Event          string
	RepeatInstance int
}

// ExportMetadataOptions narrows a data dictionary export.
type ExportMetadataOptions struct {
	Fields []string
	Forms  []string
}

// ExportReportOptions identifies and shapes a report export.
type ExportReportOptions struct {
	// ReportID is the number shown next to the report name in the UI.
	ReportID string

	RawOrLabel           string
	RawOrLabelHeaders    string
	ExportCheckboxLabels bool
	DecimalCharacter     string
}

// ExportLoggingOptions filters the audit log export.
type ExportLoggingOptions struct {
	// Type filters by event type (export, manage, user, record, ...).
	Type   string
	User   string
	Record string
	DAG    string
	Begin  time.Time
	End    time.Time
}

// RepositoryFolderOptions scopes a new file repository folder.
type RepositoryFolderOptions struct {
	ParentFolderID int
	DAGID          int
	RoleID         int
}

// ------------------------------
// Response envelopes
// ------------------------------

// ImportResult is the acknowledgment of an import call. Exactly one of
// Count/IDs is meaningful, matching the requested return content.
type ImportResult struct {
	Count int      `json:"count"`
	IDs   []string `json:"-"`
}

// FileResult is a downloaded file: raw bytes plus the header-derived name.
type FileResult struct {
	Content     []byte
	Filename    string
	ContentType string
}
