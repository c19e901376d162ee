package redcap

import (
	"context"
	"errors"

	"github.com/redcap-tools/redcap-go/internal/rcrequest"
	"github.com/redcap-tools/redcap-go/internal/types"
)

// snapshot caches project-level attributes derived from one metadata
// export (plus event/arm exports for longitudinal projects). It has two
// states: unpopulated and populated. Once populated it is never mutated;
// only Refresh replaces it.
type snapshot struct {
	metadata     []types.FieldMetadata
	fieldNames   []string
	fieldLabels  []string
	forms        []string
	defField     string
	longitudinal bool
	events       []types.Event
	arms         []types.Arm
}

// ensureSnapshot returns the populated snapshot, fetching it on first use.
func (p *Project) ensureSnapshot(ctx context.Context) (*snapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.snap != nil {
		return p.snap, nil
	}
	snap, err := p.fetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	p.snap = snap
	return snap, nil
}

// Refresh discards the cached snapshot and fetches it again. Nothing else
// ever invalidates the cache, so call this after changing the project's
// data dictionary or event structure.
func (p *Project) Refresh(ctx context.Context) error {
	snap, err := p.fetchSnapshot(ctx)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.snap = snap
	p.mu.Unlock()
	return nil
}

func (p *Project) fetchSnapshot(ctx context.Context) (*snapshot, error) {
	var meta []types.FieldMetadata
	if err := p.exportJSON(ctx, p.payload("metadata"), "metadata", &meta); err != nil {
		return nil, err
	}
	if len(meta) == 0 {
		return nil, types.Validationf("project metadata is empty; check your URL and token")
	}

	snap := &snapshot{
		metadata: meta,
		defField: meta[0].FieldName,
	}
	seenForms := map[string]bool{}
	for _, row := range meta {
		snap.fieldNames = append(snap.fieldNames, row.FieldName)
		snap.fieldLabels = append(snap.fieldLabels, row.FieldLabel)
		if !seenForms[row.FormName] {
			seenForms[row.FormName] = true
			snap.forms = append(snap.forms, row.FormName)
		}
	}

	// The form-event mapping export answers with an error on classic
	// projects, which is how longitudinality is probed.
	var fem []types.FormEventMapping
	err := p.exportJSON(ctx, p.payload("formEventMapping"), "formEventMapping", &fem)
	var srvErr *rcrequest.ServerError
	switch {
	case err == nil:
		snap.longitudinal = true
	case errors.As(err, &srvErr):
		snap.longitudinal = false
	default:
		return nil, err
	}

	if snap.longitudinal {
		if err := p.exportJSON(ctx, p.payload("event"), "event", &snap.events); err != nil {
			return nil, err
		}
		if err := p.exportJSON(ctx, p.payload("arm"), "arm", &snap.arms); err != nil {
			return nil, err
		}
	}
	return snap, nil
}

// --------------------------------------------------------------------
// Snapshot-derived accessors
// --------------------------------------------------------------------

// Metadata returns the cached data dictionary.
func (p *Project) Metadata(ctx context.Context) ([]FieldMetadata, error) {
	snap, err := p.ensureSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]FieldMetadata, len(snap.metadata))
	copy(out, snap.metadata)
	return out, nil
}

// FieldNames returns the project's field names in dictionary order. These
// are survey field names, not export column names.
func (p *Project) FieldNames(ctx context.Context) ([]string, error) {
	snap, err := p.ensureSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(snap.fieldNames))
	copy(out, snap.fieldNames)
	return out, nil
}

// FieldLabels returns the labels matching FieldNames.
func (p *Project) FieldLabels(ctx context.Context) ([]string, error) {
	snap, err := p.ensureSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(snap.fieldLabels))
	copy(out, snap.fieldLabels)
	return out, nil
}

// Forms returns the project's form names.
func (p *Project) Forms(ctx context.Context) ([]string, error) {
	snap, err := p.ensureSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(snap.forms))
	copy(out, snap.forms)
	return out, nil
}

// IdentifierField returns the project's unique-key field: the first field
// of the data dictionary.
func (p *Project) IdentifierField(ctx context.Context) (string, error) {
	snap, err := p.ensureSnapshot(ctx)
	if err != nil {
		return "", err
	}
	return snap.defField, nil
}

// IsLongitudinal reports whether the project has events/arms configured.
func (p *Project) IsLongitudinal(ctx context.Context) (bool, error) {
	snap, err := p.ensureSnapshot(ctx)
	if err != nil {
		return false, err
	}
	return snap.longitudinal, nil
}

// EventNames returns the unique event names of a longitudinal project.
func (p *Project) EventNames(ctx context.Context) ([]string, error) {
	snap, err := p.ensureSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(snap.events))
	for _, ev := range snap.events {
		out = append(out, ev.UniqueEventName)
	}
	return out, nil
}

// ArmNums returns the arm numbers of a longitudinal project.
func (p *Project) ArmNums(ctx context.Context) ([]string, error) {
	snap, err := p.ensureSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(snap.arms))
	for _, arm := range snap.arms {
		out = append(out, arm.ArmNum.String())
	}
	return out, nil
}

// ArmNames returns the arm names of a longitudinal project.
func (p *Project) ArmNames(ctx context.Context) ([]string, error) {
	snap, err := p.ensureSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(snap.arms))
	for _, arm := range snap.arms {
		out = append(out, arm.Name)
	}
	return out, nil
}

// FieldType returns the metadata field_type of one field, or "" when the
// field is not in the cached dictionary.
func (p *Project) FieldType(ctx context.Context, field string) (string, error) {
	snap, err := p.ensureSnapshot(ctx)
	if err != nil {
		return "", err
	}
	for _, row := range snap.metadata {
		if row.FieldName == field {
			return row.FieldType, nil
		}
	}
	return "", nil
}
