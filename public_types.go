package redcap

import "github.com/redcap-tools/redcap-go/internal/types"

// Public type aliases so SDK consumers can import only the redcap package.
type (
	// Domain entities
	Record             = types.Record
	FieldMetadata      = types.FieldMetadata
	User               = types.User
	UserRole           = types.UserRole
	UserRoleAssignment = types.UserRoleAssignment
	DAG                = types.DAG
	UserDAGAssignment  = types.UserDAGAssignment
	Event              = types.Event
	Arm                = types.Arm
	Instrument         = types.Instrument
	FormEventMapping   = types.FormEventMapping
	ExportFieldName    = types.ExportFieldName
	RepeatingFormEvent = types.RepeatingFormEvent
	SurveyParticipant  = types.SurveyParticipant
	LogEntry           = types.LogEntry
	RepositoryItem     = types.RepositoryItem
	ProjectInfo        = types.ProjectInfo

	// Option blocks
	ExportRecordsOptions    = types.ExportRecordsOptions
	ImportRecordsOptions    = types.ImportRecordsOptions
	FileOptions             = types.FileOptions
	ExportMetadataOptions   = types.ExportMetadataOptions
	ExportReportOptions     = types.ExportReportOptions
	ExportLoggingOptions    = types.ExportLoggingOptions
	RepositoryFolderOptions = types.RepositoryFolderOptions

	// Response envelopes
	ImportResult = types.ImportResult
	FileResult   = types.FileResult
)

// Format selects the wire format of raw exports and of import payloads.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXML  Format = "xml"
)
