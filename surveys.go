package redcap

import (
	"context"
	"strings"

	"github.com/redcap-tools/redcap-go/internal/rcrequest"
	"github.com/redcap-tools/redcap-go/internal/types"
)

// ExportSurveyLink returns the survey URL for one record and instrument.
// Event locates the instrument on longitudinal projects; repeatInstance
// selects the instance on repeating instruments (0 means not repeating).
func (p *Project) ExportSurveyLink(ctx context.Context, record, instrument, event string, repeatInstance int) (string, error) {
	if err := types.RequireArg("record", record); err != nil {
		return "", err
	}
	if err := types.RequireArg("instrument", instrument); err != nil {
		return "", err
	}
	pl := p.payload("surveyLink").ReturnFormat("json")
	pl.Set("record", record)
	pl.Set("instrument", instrument)
	pl.Set("event", event)
	pl.SetInt("repeat_instance", repeatInstance)

	resp, err := p.call(ctx, pl, rcrequest.Config{Content: "surveyLink"})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(resp.Body)), nil
}

// ExportSurveyParticipants exports the participant list of a survey
// instrument.
func (p *Project) ExportSurveyParticipants(ctx context.Context, instrument, event string) ([]SurveyParticipant, error) {
	if err := types.RequireArg("instrument", instrument); err != nil {
		return nil, err
	}
	pl := p.payload("participantList")
	pl.Set("instrument", instrument)
	pl.Set("event", event)
	var participants []SurveyParticipant
	if err := p.exportJSON(ctx, pl, "participantList", &participants); err != nil {
		return nil, err
	}
	return participants, nil
}
