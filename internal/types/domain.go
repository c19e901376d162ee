package types

import "encoding/json"

// ------------------------------
// Core domain entities
// ------------------------------

// Record is one flat row of project data. The schema is per-project, so
// rows stay dynamic; values are strings for most fields but the server
// emits bare numbers for a few bookkeeping columns (repeat instance).
type Record = map[string]any

// FieldMetadata is one row of the project's data dictionary.
type FieldMetadata struct {
	FieldName         string `json:"field_name"`
	FormName          string `json:"form_name"`
	SectionHeader     string `json:"section_header,omitempty"`
	FieldType         string `json:"field_type"`
	FieldLabel        string `json:"field_label"`
	SelectChoices     string `json:"select_choices_or_calculations,omitempty"`
	FieldNote         string `json:"field_note,omitempty"`
	TextValidation    string `json:"text_validation_type_or_show_slider_number,omitempty"`
	TextValidationMin string `json:"text_validation_min,omitempty"`
	TextValidationMax string `json:"text_validation_max,omitempty"`
	Identifier        string `json:"identifier,omitempty"`
	BranchingLogic    string `json:"branching_logic,omitempty"`
	RequiredField     string `json:"required_field,omitempty"`
	CustomAlignment   string `json:"custom_alignment,omitempty"`
	QuestionNumber    string `json:"question_number,omitempty"`
	MatrixGroupName   string `json:"matrix_group_name,omitempty"`
	MatrixRanking     string `json:"matrix_ranking,omitempty"`
	FieldAnnotation   string `json:"field_annotation,omitempty"`
}

// User is one project user with access rights.
type User struct {
	Username        string                 `json:"username"`
	Email           string                 `json:"email"`
	Firstname       string                 `json:"firstname,omitempty"`
	Lastname        string                 `json:"lastname,omitempty"`
	Expiration      string                 `json:"expiration,omitempty"`
	DataAccessGroup string                 `json:"data_access_group,omitempty"`
	DataExport      json.Number            `json:"data_export,omitempty"`
	Forms           map[string]json.Number `json:"forms,omitempty"`
}

// UserRole is one project user role and its privileges.
type UserRole struct {
	UniqueRoleName   string                 `json:"unique_role_name,omitempty"`
	RoleLabel        string                 `json:"role_label"`
	Design           json.Number            `json:"design,omitempty"`
	UserRights       json.Number            `json:"user_rights,omitempty"`
	DataAccessGroups json.Number            `json:"data_access_groups,omitempty"`
	DataExport       json.Number            `json:"data_export,omitempty"`
	Forms            map[string]json.Number `json:"forms,omitempty"`
}

// UserRoleAssignment maps a username onto a role.
type UserRoleAssignment struct {
	Username       string `json:"username"`
	UniqueRoleName string `json:"unique_role_name"`
}

// DAG is one data access group.
type DAG struct {
	DataAccessGroupName string      `json:"data_access_group_name"`
	UniqueGroupName     string      `json:"unique_group_name,omitempty"`
	DataAccessGroupID   json.Number `json:"data_access_group_id,omitempty"`
}

// UserDAGAssignment maps a username onto a data access group.
type UserDAGAssignment struct {
	Username              string `json:"username"`
	RedcapDataAccessGroup string `json:"redcap_data_access_group"`
}

// Event is one event of a longitudinal project.
type Event struct {
	EventName        string      `json:"event_name"`
	ArmNum           json.Number `json:"arm_num"`
	UniqueEventName  string      `json:"unique_event_name,omitempty"`
	CustomEventLabel string      `json:"custom_event_label,omitempty"`
	EventID          json.Number `json:"event_id,omitempty"`
	DayOffset        json.Number `json:"day_offset,omitempty"`
}

// Arm is one arm of a longitudinal project.
type Arm struct {
	ArmNum json.Number `json:"arm_num"`
	Name   string      `json:"name"`
}

// Instrument is one data collection instrument (form).
type Instrument struct {
	InstrumentName  string `json:"instrument_name"`
	InstrumentLabel string `json:"instrument_label"`
}

// FormEventMapping maps an instrument onto a longitudinal event.
type FormEventMapping struct {
	ArmNum          json.Number `json:"arm_num"`
	UniqueEventName string      `json:"unique_event_name"`
	Form            string      `json:"form"`
}

// ExportFieldName maps a survey field name onto its export column name(s);
// checkbox fields expand to one row per choice.
type ExportFieldName struct {
	OriginalFieldName string `json:"original_field_name"`
	ChoiceValue       string `json:"choice_value,omitempty"`
	ExportFieldName   string `json:"export_field_name"`
}

// RepeatingFormEvent is one repeating instrument/event configuration row.
type RepeatingFormEvent struct {
	EventName       string `json:"event_name,omitempty"`
	FormName        string `json:"form_name,omitempty"`
	CustomFormLabel string `json:"custom_form_label,omitempty"`
}

// SurveyParticipant is one row of a survey participant list.
type SurveyParticipant struct {
	Email            string `json:"email"`
	Record           string `json:"record,omitempty"`
	InvitationSent   string `json:"invitation_sent_status,omitempty"`
	ResponseStatus   string `json:"response_status,omitempty"`
	SurveyAccessCode string `json:"survey_access_code,omitempty"`
	SurveyLink       string `json:"survey_link,omitempty"`
}

// LogEntry is one row of the project's audit log.
type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Username  string `json:"username"`
	Action    string `json:"action"`
	Details   string `json:"details,omitempty"`
	Record    string `json:"record,omitempty"`
}

// RepositoryItem is one folder or document in the file repository listing.
type RepositoryItem struct {
	FolderID json.Number `json:"folder_id,omitempty"`
	DocID    json.Number `json:"doc_id,omitempty"`
	Name     string      `json:"name"`
}

// ProjectInfo is the project-level attribute block.
type ProjectInfo struct {
	ProjectID                  json.Number `json:"project_id"`
	ProjectTitle               string      `json:"project_title"`
	CreationTime               string      `json:"creation_time,omitempty"`
	InProduction               json.Number `json:"in_production,omitempty"`
	ProjectLanguage            string      `json:"project_language,omitempty"`
	IsLongitudinal             json.Number `json:"is_longitudinal,omitempty"`
	HasRepeatingInstruments    json.Number `json:"has_repeating_instruments_or_events,omitempty"`
	SurveysEnabled             json.Number `json:"surveys_enabled,omitempty"`
	RecordAutonumberingEnabled json.Number `json:"record_autonumbering_enabled,omitempty"`
	RandomizationEnabled       json.Number `json:"randomization_enabled,omitempty"`
	SecondaryUniqueField       string      `json:"secondary_unique_field,omitempty"`
	CustomRecordLabel          string      `json:"custom_record_label,omitempty"`
}
