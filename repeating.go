package redcap

import (
	"context"

	"github.com/redcap-tools/redcap-go/internal/types"
)

// ExportRepeatingFormsEvents exports the repeating instrument and event
// configuration.
func (p *Project) ExportRepeatingFormsEvents(ctx context.Context) ([]RepeatingFormEvent, error) {
	var rows []RepeatingFormEvent
	if err := p.exportJSON(ctx, p.payload("repeatingFormsEvents"), "repeatingFormsEvents", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ImportRepeatingFormsEvents replaces the repeating instrument and event
// configuration and returns how many rows were stored.
func (p *Project) ImportRepeatingFormsEvents(ctx context.Context, rows []RepeatingFormEvent) (int, error) {
	if len(rows) == 0 {
		return 0, types.Validationf("no repeating configuration rows to import")
	}
	pl := p.payload("repeatingFormsEvents")
	if err := importJSONData(pl, rows); err != nil {
		return 0, err
	}
	return p.importCount(ctx, pl, "repeatingFormsEvents", "import")
}
