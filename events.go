package redcap

import (
	"context"

	"github.com/redcap-tools/redcap-go/internal/types"
)

// ExportEvents exports the events of a longitudinal project, optionally
// limited to the given arm numbers. Classic projects answer with a
// *ServerError.
func (p *Project) ExportEvents(ctx context.Context, arms []string) ([]Event, error) {
	pl := p.payload("event")
	pl.SetList("arms", arms)
	var events []Event
	if err := p.exportJSON(ctx, pl, "event", &events); err != nil {
		return nil, err
	}
	return events, nil
}

// ExportEventsRaw exports the event list as csv or xml text.
func (p *Project) ExportEventsRaw(ctx context.Context, format Format, arms []string) (string, error) {
	pl := p.payload("event")
	pl.SetList("arms", arms)
	return p.exportRaw(ctx, pl, "event", string(format))
}

// ImportEvents adds or renames events and returns how many were affected.
// With override set, the server first erases all existing events, turning
// the call into a delete-all-and-import.
func (p *Project) ImportEvents(ctx context.Context, events []Event, override bool) (int, error) {
	if len(events) == 0 {
		return 0, types.Validationf("no events to import")
	}
	pl := p.payload("event").Action("import")
	if err := importJSONData(pl, events); err != nil {
		return 0, err
	}
	pl.Set("override", overrideFlag(override))
	return p.importCount(ctx, pl, "event", "import")
}

// DeleteEvents deletes events by unique event name and returns how many
// were deleted. Data collected under a deleted event is lost with it.
func (p *Project) DeleteEvents(ctx context.Context, events []string) (int, error) {
	if len(events) == 0 {
		return 0, types.Validationf("no events to delete")
	}
	pl := p.payload("event").Action("delete")
	pl.SetList("events", events)
	return p.importCount(ctx, pl, "event", "delete")
}

func overrideFlag(override bool) string {
	if override {
		return "1"
	}
	return "0"
}
