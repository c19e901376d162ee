package redcap

import (
	"context"

	"github.com/go-gota/gota/dataframe"

	"github.com/redcap-tools/redcap-go/internal/rcrequest"
)

// ExportInstruments exports the project's data collection instruments.
func (p *Project) ExportInstruments(ctx context.Context) ([]Instrument, error) {
	var instruments []Instrument
	if err := p.exportJSON(ctx, p.payload("instrument"), "instrument", &instruments); err != nil {
		return nil, err
	}
	return instruments, nil
}

// ExportInstrumentEventMappings exports the instrument-to-event mapping of
// a longitudinal project, optionally limited to the given arm numbers.
func (p *Project) ExportInstrumentEventMappings(ctx context.Context, arms []string) ([]FormEventMapping, error) {
	var fems []FormEventMapping
	if err := p.exportJSON(ctx, p.femPayload(arms), "formEventMapping", &fems); err != nil {
		return nil, err
	}
	return fems, nil
}

// ExportInstrumentEventMappingsRaw exports the mapping as csv or xml text.
func (p *Project) ExportInstrumentEventMappingsRaw(ctx context.Context, format Format, arms []string) (string, error) {
	return p.exportRaw(ctx, p.femPayload(arms), "formEventMapping", string(format))
}

// ExportInstrumentEventMappingsDataFrame exports the mapping as a
// dataframe.
func (p *Project) ExportInstrumentEventMappingsDataFrame(ctx context.Context, arms []string, dfOpts *DataFrameOptions) (dataframe.DataFrame, error) {
	csvText, err := p.exportCSV(ctx, p.femPayload(arms), "formEventMapping")
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	return toDataFrame(csvText, dfOpts, nil)
}

func (p *Project) femPayload(arms []string) *rcrequest.Payload {
	pl := p.payload("formEventMapping")
	pl.SetList("arms", arms)
	return pl
}
