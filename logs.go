package redcap

import "context"

const logTimeLayout = "2006-01-02 15:04"

// ExportLogging exports the project's audit log, newest first. All
// filters are optional and combine conjunctively.
func (p *Project) ExportLogging(ctx context.Context, opts ExportLoggingOptions) ([]LogEntry, error) {
	pl := p.payload("log")
	pl.Set("logtype", opts.Type)
	pl.Set("user", opts.User)
	pl.Set("record", opts.Record)
	pl.Set("dag", opts.DAG)
	if !opts.Begin.IsZero() {
		pl.Set("beginTime", opts.Begin.Format(logTimeLayout))
	}
	if !opts.End.IsZero() {
		pl.Set("endTime", opts.End.Format(logTimeLayout))
	}

	var entries []LogEntry
	if err := p.exportJSON(ctx, pl, "log", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
